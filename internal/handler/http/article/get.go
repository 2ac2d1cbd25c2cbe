package article

import (
	"net/http"

	"cahaya-digital/internal/handler/http/pathutil"
	"cahaya-digital/internal/handler/http/respond"
	artUC "cahaya-digital/internal/usecase/article"
)

type GetHandler struct{ Svc *artUC.Service }

// ServeHTTP reads one article and counts the view.
// @Summary      Get article
// @Description  Returns the article and increments its view counter
// @Tags         articles
// @Produce      json
// @Param        id path int true "Article ID"
// @Success      200 {object} DTO
// @Failure      400 {object} respond.ErrorResponse "Invalid article ID"
// @Failure      404 {object} respond.ErrorResponse "Article not found"
// @Failure      503 {object} respond.ErrorResponse "Storage unavailable"
// @Router       /api/articles/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	a, err := h.Svc.Read(r.Context(), id)
	if err != nil {
		respond.DomainError(w, "article", err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(a))
}
