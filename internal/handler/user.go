package handler

import (
	"net/http"

	"github.com/ritualnet/backend/internal/logger"
	"github.com/ritualnet/backend/internal/user"
)

// RegisterRequest represents the body of a registration request
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// LoginRequest represents the body of a login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued access token
type LoginResponse struct {
	Token string `json:"token"`
}

// HandleRegister handles account creation
// @Summary Register a new account
// @Description Create an account with zero balances
// @Tags user
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account details"
// @Success 201 {object} domain.User
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /user/register [post]
func HandleRegister(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Register"); err != nil {
			return
		}

		created, err := svc.Register(r.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			logger.FromContext(r.Context()).Error("Registration failed", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleLogin handles credential verification and token issuance
// @Summary Log in
// @Description Verify credentials and return a bearer token
// @Tags user
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 401 {object} ErrorResponse
// @Router /user/login [post]
func HandleLogin(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Login"); err != nil {
			return
		}

		token, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, LoginResponse{Token: token})
	}
}

// HandleGetProfile returns the caller's account with owned items
// @Summary Get own profile
// @Description Return the authenticated account, its balances and owned items
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} user.Profile
// @Failure 404 {object} ErrorResponse
// @Router /user/profile [get]
func HandleGetProfile(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := RequirePrincipal(r, w)
		if !ok {
			return
		}

		profile, err := svc.GetProfile(r.Context(), principal.UserID)
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to get profile", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, profile)
	}
}
