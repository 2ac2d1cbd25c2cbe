// Package stats serves the admin dashboard counters.
package stats

import (
	"net/http"

	"cahaya-digital/internal/domain/entity"
	"cahaya-digital/internal/handler/http/auth"
	"cahaya-digital/internal/handler/http/respond"
	statsUC "cahaya-digital/internal/usecase/stats"
)

// DTO is the dashboard summary.
type DTO struct {
	TotalArticles    int64 `json:"totalArticles" example:"12"`
	TotalUsers       int64 `json:"totalUsers" example:"3"`
	TotalSubscribers int64 `json:"totalSubscribers" example:"150"`
	PopularViews     int64 `json:"popularViews" example:"4200"`
}

func Register(mux *http.ServeMux, svc *statsUC.Service, tokens *auth.TokenIssuer) {
	mux.Handle("GET /api/stats", tokens.Require(entity.RoleModerator)(Handler{svc}))
}

type Handler struct{ Svc *statsUC.Service }

// ServeHTTP godoc
// @Summary      Dashboard statistics
// @Description  Article, user and subscriber counts plus the views of the most popular articles
// @Tags         stats
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} DTO
// @Failure      401 {object} respond.ErrorResponse
// @Failure      403 {object} respond.ErrorResponse
// @Failure      500 {object} respond.ErrorResponse
// @Router       /api/stats [get]
func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	d, err := h.Svc.Dashboard(r.Context())
	if err != nil {
		respond.DomainError(w, "stats", err)
		return
	}
	respond.JSON(w, http.StatusOK, DTO{
		TotalArticles:    d.Articles,
		TotalUsers:       d.Users,
		TotalSubscribers: d.Subscribers,
		PopularViews:     d.PopularViews,
	})
}
