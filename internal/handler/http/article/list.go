package article

import (
	"context"
	"net/http"

	"cahaya-digital/internal/common/pagination"
	"cahaya-digital/internal/domain/entity"
	"cahaya-digital/internal/handler/http/respond"
	"cahaya-digital/internal/repository"
	artUC "cahaya-digital/internal/usecase/article"
)

type ListHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
}

// ServeHTTP lists articles.
// @Summary      List articles
// @Description  Returns published articles, newest first. A storage failure yields an empty list.
// @Tags         articles
// @Produce      json
// @Param        limit  query int false "Items per page (1-100)" default(10)
// @Param        offset query int false "Items to skip" default(0)
// @Success      200 {array} DTO
// @Failure      400 {object} respond.ErrorResponse "Invalid limit or offset"
// @Router       /api/articles [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		pagination.RecordError("articles")
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	pagination.RecordRequest("articles", params)

	list := h.Svc.List(r.Context(), repository.Page{Limit: params.Limit, Offset: params.Offset})
	respond.JSON(w, http.StatusOK, toDTOs(list))
}

type CategoryHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
}

// ServeHTTP lists one category.
// @Summary      List articles by category
// @Tags         articles
// @Produce      json
// @Param        category path  string true  "Category slug" Enums(politik, ekonomi, teknologi, olahraga, hiburan, pendidikan, kesehatan, gaya_hidup, otomotif, properti)
// @Param        limit    query int    false "Items per page (1-100)" default(10)
// @Param        offset   query int    false "Items to skip" default(0)
// @Success      200 {array} DTO
// @Failure      400 {object} respond.ErrorResponse "Unknown category or invalid paging"
// @Router       /api/articles/category/{category} [get]
func (h CategoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		pagination.RecordError("articles_by_category")
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	pagination.RecordRequest("articles_by_category", params)

	list, err := h.Svc.ByCategory(r.Context(), r.PathValue("category"),
		repository.Page{Limit: params.Limit, Offset: params.Offset})
	if err != nil {
		respond.DomainError(w, "category", err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(list))
}

// SelectionHandler serves one of the fixed homepage selections.
type SelectionHandler struct {
	Name         string
	List         func(ctx context.Context, limit int) []*entity.Article
	DefaultLimit int
	MaxLimit     int
}

// ServeHTTP lists a homepage selection.
// @Summary      Homepage selections
// @Description  featured (default 3), breaking (default 1), editors-pick (default 1) and popular (default 5, by views)
// @Tags         articles
// @Produce      json
// @Param        selection path  string true  "Selection" Enums(featured, breaking, editors-pick, popular)
// @Param        limit     query int    false "Number of articles"
// @Success      200 {array} DTO
// @Failure      400 {object} respond.ErrorResponse "Invalid limit"
// @Router       /api/articles/{selection} [get]
func (h SelectionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	limit, err := pagination.ParseLimit(r, h.DefaultLimit, h.MaxLimit)
	if err != nil {
		pagination.RecordError(h.Name)
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(h.List(r.Context(), limit)))
}
