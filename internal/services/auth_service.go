package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"skylog/flightdeck/internal/auth"
	"skylog/flightdeck/internal/constants"
	"skylog/flightdeck/internal/db/repositories"
	"skylog/flightdeck/internal/metrics"
	"skylog/flightdeck/internal/models/dtos"
	"skylog/flightdeck/internal/models/entities"
	gormModels "skylog/flightdeck/internal/models/gorm"
	"skylog/flightdeck/internal/workers"

	"golang.org/x/crypto/bcrypt"
)

// AuthError is a credential or registration failure with an API error code.
type AuthError struct {
	Code    string
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// UserStore is the slice of the user repository the auth service needs.
type UserStore interface {
	Create(ctx context.Context, user *gormModels.User) error
	GetByUsername(ctx context.Context, username string) (*gormModels.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}

type AuthService struct {
	users   UserStore
	metrics *metrics.MetricsRegistry
}

func NewAuthService(users UserStore, reg *metrics.MetricsRegistry) *AuthService {
	return &AuthService{users: users, metrics: reg}
}

// Register creates a pilot account and returns a fresh token so the client
// can log straight in.
func (s *AuthService) Register(ctx context.Context, req dtos.RegisterRequest) (*dtos.AuthResponse, error) {
	username := strings.TrimSpace(strings.ToLower(req.Username))
	if username == "" || len(req.Password) < 8 {
		return nil, &AuthError{
			Code:    constants.ErrCodeInvalidCredentials,
			Message: "username and a password of at least 8 characters are required",
		}
	}

	taken, err := s.users.UsernameExists(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return nil, &AuthError{
			Code:    constants.ErrCodeUsernameTaken,
			Message: constants.MsgUsernameTaken,
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &gormModels.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         constants.RolePilot,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	workers.EnqueueAudit(s.metrics, entities.AuditEvent{
		ActorID:    user.ID,
		Action:     entities.AuditActionRegister,
		EntityType: "user",
		EntityID:   user.ID,
	})

	return s.issue(user)
}

// Login verifies credentials and issues a token. Unknown user and wrong
// password return the same error so usernames cannot be probed.
func (s *AuthService) Login(ctx context.Context, req dtos.LoginRequest) (*dtos.AuthResponse, error) {
	username := strings.TrimSpace(strings.ToLower(req.Username))

	invalid := &AuthError{
		Code:    constants.ErrCodeInvalidCredentials,
		Message: constants.MsgInvalidCredentials,
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			s.metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return nil, invalid
		}
		return nil, err
	}

	if !user.IsActive {
		s.metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, invalid
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		s.metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, invalid
	}

	s.metrics.LoginsTotal.WithLabelValues("success").Inc()

	workers.EnqueueAudit(s.metrics, entities.AuditEvent{
		ActorID:    user.ID,
		Action:     entities.AuditActionLogin,
		EntityType: "user",
		EntityID:   user.ID,
	})

	return s.issue(user)
}

func (s *AuthService) issue(user *gormModels.User) (*dtos.AuthResponse, error) {
	token, expiresAt, err := auth.IssueToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, err
	}

	return &dtos.AuthResponse{
		Token:     token,
		UserID:    user.ID,
		Username:  user.Username,
		Role:      string(user.Role),
		ExpiresAt: expiresAt,
	}, nil
}
