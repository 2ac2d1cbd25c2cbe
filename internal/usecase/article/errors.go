// Package article provides the article use cases of the portal: the public
// list and read paths, which degrade to empty results when storage fails,
// and the editorial create, update and delete operations.
package article

import (
	"fmt"

	"cahaya-digital/internal/domain/entity"
)

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that the requested article was not found.
	ErrArticleNotFound = fmt.Errorf("article: %w", entity.ErrNotFound)

	// ErrInvalidArticleID indicates that the provided article ID is not a positive integer.
	ErrInvalidArticleID = fmt.Errorf("invalid article ID: %w", entity.ErrInvalidInput)

	// ErrEmptyPatch indicates an update request without any field to change.
	ErrEmptyPatch = fmt.Errorf("no fields to update: %w", entity.ErrInvalidInput)
)
