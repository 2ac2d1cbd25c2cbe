package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"cahaya-digital/internal/handler/http/pathutil"
	"cahaya-digital/internal/handler/http/respond"
	artUC "cahaya-digital/internal/usecase/article"
)

type UpdateHandler struct{ Svc *artUC.Service }

// ServeHTTP partially updates an article.
// @Summary      Update article
// @Description  Changes only the supplied fields. The publication time and view count are not editable.
// @Tags         articles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id      path int           true "Article ID"
// @Param        article body updateRequest true "Fields to change"
// @Success      200 {object} DTO
// @Failure      400 {object} respond.ErrorResponse "Validation failed"
// @Failure      401 {object} respond.ErrorResponse "Authentication required"
// @Failure      403 {object} respond.ErrorResponse "Editor role required"
// @Failure      404 {object} respond.ErrorResponse "Article not found"
// @Router       /api/articles/{id} [patch]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	a, err := h.Svc.Update(r.Context(), id, req.patch())
	if err != nil {
		respond.DomainError(w, "article", err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(a))
}
