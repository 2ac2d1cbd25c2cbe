package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"cahaya-digital/internal/handler/http/respond"
	artUC "cahaya-digital/internal/usecase/article"
)

type CreateHandler struct{ Svc *artUC.Service }

// ServeHTTP creates an article.
// @Summary      Create article
// @Tags         articles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        article body createRequest true "Article"
// @Success      201 {object} DTO
// @Failure      400 {object} respond.ErrorResponse "Validation failed"
// @Failure      401 {object} respond.ErrorResponse "Authentication required"
// @Failure      403 {object} respond.ErrorResponse "Editor role required"
// @Router       /api/articles [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	a, err := h.Svc.Create(r.Context(), req.input())
	if err != nil {
		respond.DomainError(w, "article", err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(a))
}
