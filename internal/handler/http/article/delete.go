package article

import (
	"net/http"

	"cahaya-digital/internal/handler/http/pathutil"
	"cahaya-digital/internal/handler/http/respond"
	artUC "cahaya-digital/internal/usecase/article"
)

type DeleteHandler struct{ Svc *artUC.Service }

// ServeHTTP deletes an article.
// @Summary      Delete article
// @Tags         articles
// @Security     BearerAuth
// @Param        id path int true "Article ID"
// @Success      204 "No Content"
// @Failure      400 {object} respond.ErrorResponse "Invalid article ID"
// @Failure      401 {object} respond.ErrorResponse "Authentication required"
// @Failure      403 {object} respond.ErrorResponse "Editor role required"
// @Failure      404 {object} respond.ErrorResponse "Article not found"
// @Router       /api/articles/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.DomainError(w, "article", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
