// Package user provides the admin-only HTTP handlers for panel accounts.
// Responses never include the password hash.
package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"cahaya-digital/internal/common/pagination"
	"cahaya-digital/internal/domain/entity"
	"cahaya-digital/internal/handler/http/auth"
	"cahaya-digital/internal/handler/http/pathutil"
	"cahaya-digital/internal/handler/http/respond"
	"cahaya-digital/internal/repository"
	userUC "cahaya-digital/internal/usecase/user"
)

// DTO is the public shape of a user.
type DTO struct {
	ID        int64       `json:"id" example:"1"`
	Username  string      `json:"username" example:"redaktur"`
	FullName  *string     `json:"fullName,omitempty" example:"Sari Dewi"`
	Email     *string     `json:"email,omitempty" example:"sari@example.com"`
	Role      entity.Role `json:"role" example:"editor"`
	IsActive  bool        `json:"isActive" example:"true"`
	CreatedAt time.Time   `json:"createdAt" example:"2025-10-26T10:00:00Z"`
}

func toDTO(u *entity.User) DTO {
	return DTO{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

type createRequest struct {
	Username string      `json:"username" example:"redaktur"`
	Password string      `json:"password" example:"rahasia-sekali"`
	FullName *string     `json:"fullName"`
	Email    *string     `json:"email"`
	Role     entity.Role `json:"role" example:"editor"`
	IsActive *bool       `json:"isActive"`
}

type updateRequest struct {
	Username *string      `json:"username"`
	Password *string      `json:"password"`
	FullName *string      `json:"fullName"`
	Email    *string      `json:"email"`
	Role     *entity.Role `json:"role"`
	IsActive *bool        `json:"isActive"`
}

// Register registers the user routes. Every route requires the admin role.
func Register(mux *http.ServeMux, svc *userUC.Service, paginationCfg pagination.Config, tokens *auth.TokenIssuer) {
	admin := tokens.Require(entity.RoleAdmin)
	h := Handler{Svc: svc, PaginationCfg: paginationCfg.WithDefaults()}

	mux.Handle("GET /api/users", admin(http.HandlerFunc(h.List)))
	mux.Handle("POST /api/users", admin(http.HandlerFunc(h.Create)))
	mux.Handle("GET /api/users/{id}", admin(http.HandlerFunc(h.Get)))
	mux.Handle("PATCH /api/users/{id}", admin(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /api/users/{id}", admin(http.HandlerFunc(h.Delete)))
}

type Handler struct {
	Svc           *userUC.Service
	PaginationCfg pagination.Config
}

// List godoc
// @Summary      List users
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Param        limit  query int false "Items per page (1-100)" default(10)
// @Param        offset query int false "Items to skip" default(0)
// @Success      200 {array} DTO
// @Failure      400 {object} respond.ErrorResponse
// @Failure      401 {object} respond.ErrorResponse
// @Failure      403 {object} respond.ErrorResponse
// @Router       /api/users [get]
func (h Handler) List(w http.ResponseWriter, r *http.Request) {
	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		pagination.RecordError("users")
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	pagination.RecordRequest("users", params)

	users, err := h.Svc.List(r.Context(), repository.Page{Limit: params.Limit, Offset: params.Offset})
	if err != nil {
		respond.DomainError(w, "user", err)
		return
	}
	out := make([]DTO, 0, len(users))
	for _, u := range users {
		out = append(out, toDTO(u))
	}
	respond.JSON(w, http.StatusOK, out)
}

// Get godoc
// @Summary      Get user
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200 {object} DTO
// @Failure      400 {object} respond.ErrorResponse
// @Failure      404 {object} respond.ErrorResponse
// @Router       /api/users/{id} [get]
func (h Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	u, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.DomainError(w, "user", err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(u))
}

// Create godoc
// @Summary      Create user
// @Description  The password is stored as a bcrypt hash. The role defaults to editor.
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        user body createRequest true "User"
// @Success      201 {object} DTO
// @Failure      400 {object} respond.ErrorResponse
// @Failure      409 {object} respond.ErrorResponse "Username already exists"
// @Router       /api/users [post]
func (h Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	u, err := h.Svc.Create(r.Context(), userUC.CreateInput{
		Username: req.Username,
		Password: req.Password,
		FullName: req.FullName,
		Email:    req.Email,
		Role:     req.Role,
		IsActive: req.IsActive,
	})
	if err != nil {
		respond.DomainError(w, "user", err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(u))
}

// Update godoc
// @Summary      Update user
// @Description  Changes only the supplied fields. A supplied password is re-hashed.
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id   path int           true "User ID"
// @Param        user body updateRequest true "Fields to change"
// @Success      200 {object} DTO
// @Failure      400 {object} respond.ErrorResponse
// @Failure      404 {object} respond.ErrorResponse
// @Failure      409 {object} respond.ErrorResponse
// @Router       /api/users/{id} [patch]
func (h Handler) Update(w http.ResponseWriter, r *http.Request) {
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
	u, err := h.Svc.Update(r.Context(), id, userUC.UpdateInput(req))
	if err != nil {
		respond.DomainError(w, "user", err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(u))
}

// Delete godoc
// @Summary      Delete user
// @Tags         users
// @Security     BearerAuth
// @Param        id path int true "User ID"
// @Success      204 "No Content"
// @Failure      400 {object} respond.ErrorResponse
// @Failure      404 {object} respond.ErrorResponse
// @Router       /api/users/{id} [delete]
func (h Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.DomainError(w, "user", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
