package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"skylog/flightdeck/internal/common"
	"skylog/flightdeck/internal/constants"
	"skylog/flightdeck/internal/models/dtos"
	"skylog/flightdeck/internal/services"
)

// AuthenticationService is the surface of services.AuthService the handlers
// use; tests swap in a mock.
type AuthenticationService interface {
	Register(ctx context.Context, req dtos.RegisterRequest) (*dtos.AuthResponse, error)
	Login(ctx context.Context, req dtos.LoginRequest) (*dtos.AuthResponse, error)
}

// RegisterHandler handles POST /api/v1/auth/register
func RegisterHandler(authSvc AuthenticationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, "Invalid request body", http.StatusBadRequest)
			return
		}

		resp, err := authSvc.Register(r.Context(), req)
		if err != nil {
			respondAuthError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Account created", resp, http.StatusCreated)
	}
}

// LoginHandler handles POST /api/v1/auth/login
func LoginHandler(authSvc AuthenticationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, "Invalid request body", http.StatusBadRequest)
			return
		}

		resp, err := authSvc.Login(r.Context(), req)
		if err != nil {
			respondAuthError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Logged in", resp)
	}
}

func respondAuthError(w http.ResponseWriter, initTime time.Time, err error) {
	var authErr *services.AuthError
	if errors.As(err, &authErr) {
		status := http.StatusUnauthorized
		if authErr.Code == constants.ErrCodeUsernameTaken {
			status = http.StatusConflict
		}
		common.RespondErrorCode(w, initTime, authErr.Code, authErr.Message, status)
		return
	}
	common.RespondError(w, initTime, err, "Authentication failed", http.StatusInternalServerError)
}
