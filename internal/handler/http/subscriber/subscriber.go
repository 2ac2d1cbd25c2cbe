// Package subscriber provides the newsletter subscription HTTP handlers.
package subscriber

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"cahaya-digital/internal/common/pagination"
	"cahaya-digital/internal/domain/entity"
	"cahaya-digital/internal/handler/http/auth"
	"cahaya-digital/internal/handler/http/respond"
	"cahaya-digital/internal/repository"
	subUC "cahaya-digital/internal/usecase/subscriber"
)

// DTO is the public shape of a subscription.
type DTO struct {
	ID           int64     `json:"id" example:"1"`
	Email        string    `json:"email" example:"pembaca@example.com"`
	SubscribedAt time.Time `json:"subscribedAt" example:"2025-10-26T10:00:00Z"`
}

type subscribeRequest struct {
	Email string `json:"email" example:"pembaca@example.com"`
}

func toDTO(s *entity.Subscriber) DTO {
	return DTO{ID: s.ID, Email: s.Email, SubscribedAt: s.SubscribedAt}
}

// Register registers POST /api/subscribers behind limit and GET /api/subscribers
// for moderators and admins. A nil limit disables rate limiting.
func Register(mux *http.ServeMux, svc *subUC.Service, paginationCfg pagination.Config, tokens *auth.TokenIssuer, limit func(http.Handler) http.Handler) {
	if limit == nil {
		limit = func(h http.Handler) http.Handler { return h }
	}
	h := Handler{Svc: svc, PaginationCfg: paginationCfg.WithDefaults()}
	mux.Handle("POST /api/subscribers", limit(http.HandlerFunc(h.Subscribe)))
	mux.Handle("GET /api/subscribers", tokens.Require(entity.RoleModerator)(http.HandlerFunc(h.List)))
}

type Handler struct {
	Svc           *subUC.Service
	PaginationCfg pagination.Config
}

// Subscribe godoc
// @Summary      Subscribe to the newsletter
// @Description  Idempotent: subscribing an address twice returns the existing subscription
// @Tags         subscribers
// @Accept       json
// @Produce      json
// @Param        request body subscribeRequest true "Email address"
// @Success      201 {object} DTO
// @Failure      400 {object} respond.ErrorResponse "Invalid email"
// @Failure      429 {object} respond.ErrorResponse "Too many requests"
// @Header       429 {integer} Retry-After "Seconds until the client should retry"
// @Router       /api/subscribers [post]
func (h Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	sub, _, err := h.Svc.Subscribe(r.Context(), req.Email)
	if err != nil {
		respond.DomainError(w, "subscriber", err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(sub))
}

// List godoc
// @Summary      List subscribers
// @Tags         subscribers
// @Security     BearerAuth
// @Produce      json
// @Param        limit  query int false "Items per page (1-100)" default(10)
// @Param        offset query int false "Items to skip" default(0)
// @Success      200 {array} DTO
// @Failure      401 {object} respond.ErrorResponse
// @Failure      403 {object} respond.ErrorResponse
// @Router       /api/subscribers [get]
func (h Handler) List(w http.ResponseWriter, r *http.Request) {
	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		pagination.RecordError("subscribers")
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	pagination.RecordRequest("subscribers", params)

	subs, err := h.Svc.List(r.Context(), repository.Page{Limit: params.Limit, Offset: params.Offset})
	if err != nil {
		respond.DomainError(w, "subscriber", err)
		return
	}
	out := make([]DTO, 0, len(subs))
	for _, s := range subs {
		out = append(out, toDTO(s))
	}
	respond.JSON(w, http.StatusOK, out)
}
