package pagination

import (
	"fmt"
	"net/http"
	"strconv"
)

// Params represents pagination query parameters from an HTTP request.
type Params struct {
	Limit  int // Items per page
	Offset int // Items to skip
}

// ParseQueryParams parses limit and offset from the query string.
//
// Query parameters:
//   - limit: Items per page (must be between 1 and config.MaxLimit)
//   - offset: Items to skip (must be a non-negative integer)
func ParseQueryParams(r *http.Request, config Config) (Params, error) {
	config = config.WithDefaults()
	params := Params{Limit: config.DefaultLimit}

	limit, err := ParseLimit(r, config.DefaultLimit, config.MaxLimit)
	if err != nil {
		return params, err
	}
	params.Limit = limit

	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			return params, fmt.Errorf("invalid query parameter: offset must be a non-negative integer")
		}
		params.Offset = offset
	}

	return params, nil
}

// ParseLimit reads the limit parameter alone, for endpoints that return a
// fixed-size selection such as featured or popular articles.
func ParseLimit(r *http.Request, defaultLimit, maxLimit int) (int, error) {
	limitStr := r.URL.Query().Get("limit")
	if limitStr == "" {
		return defaultLimit, nil
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 || limit > maxLimit {
		return defaultLimit, fmt.Errorf("invalid query parameter: limit must be between 1 and %d", maxLimit)
	}
	return limit, nil
}
