// Package settings provides the HTTP handlers for the site branding.
package settings

import (
	"encoding/json"
	"errors"
	"net/http"

	"cahaya-digital/internal/domain/entity"
	"cahaya-digital/internal/handler/http/auth"
	"cahaya-digital/internal/handler/http/respond"
	settingsUC "cahaya-digital/internal/usecase/settings"
)

// DTO is the public shape of the branding settings.
type DTO struct {
	ID             int64  `json:"id" example:"1"`
	SiteName       string `json:"siteName" example:"CahayaDigital25"`
	LogoText       string `json:"logoText" example:"CD"`
	PrimaryColor   string `json:"primaryColor" example:"#e53e3e"`
	SecondaryColor string `json:"secondaryColor" example:"#333333"`
	AccentColor    string `json:"accentColor" example:"#f6ad55"`
}

type updateRequest struct {
	SiteName       *string `json:"siteName"`
	LogoText       *string `json:"logoText"`
	PrimaryColor   *string `json:"primaryColor"`
	SecondaryColor *string `json:"secondaryColor"`
	AccentColor    *string `json:"accentColor"`
}

func toDTO(s *entity.Settings) DTO {
	return DTO{
		ID:             s.ID,
		SiteName:       s.SiteName,
		LogoText:       s.LogoText,
		PrimaryColor:   s.PrimaryColor,
		SecondaryColor: s.SecondaryColor,
		AccentColor:    s.AccentColor,
	}
}

// Register registers GET (public) and PATCH (admin) /api/settings.
func Register(mux *http.ServeMux, svc *settingsUC.Service, tokens *auth.TokenIssuer) {
	h := Handler{Svc: svc}
	mux.Handle("GET /api/settings", http.HandlerFunc(h.Get))
	mux.Handle("PATCH /api/settings", tokens.Require(entity.RoleAdmin)(http.HandlerFunc(h.Update)))
}

type Handler struct{ Svc *settingsUC.Service }

// Get godoc
// @Summary      Get site settings
// @Description  Returns the branding; the default record is created on first read
// @Tags         settings
// @Produce      json
// @Success      200 {object} DTO
// @Failure      503 {object} respond.ErrorResponse
// @Router       /api/settings [get]
func (h Handler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.Svc.Get(r.Context())
	if err != nil {
		respond.DomainError(w, "settings", err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(s))
}

// Update godoc
// @Summary      Update site settings
// @Tags         settings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        settings body updateRequest true "Fields to change"
// @Success      200 {object} DTO
// @Failure      400 {object} respond.ErrorResponse
// @Failure      401 {object} respond.ErrorResponse
// @Failure      403 {object} respond.ErrorResponse
// @Router       /api/settings [patch]
func (h Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	s, err := h.Svc.Update(r.Context(), entity.SettingsPatch(req))
	if err != nil {
		respond.DomainError(w, "settings", err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(s))
}
