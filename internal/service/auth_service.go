package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fleet-telemetry-service/internal/auth"
	"fleet-telemetry-service/internal/cache"
	"fleet-telemetry-service/internal/model"
	"fleet-telemetry-service/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("token is invalid or expired")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidRole        = errors.New("invalid role")
	ErrPermissionDenied   = errors.New("permission denied")
)

type AuthService struct {
	users     *repository.UserRepository
	tokens    *auth.Manager
	blacklist *cache.TokenBlacklist
}

func NewAuthService(users *repository.UserRepository, tokens *auth.Manager, blacklist *cache.TokenBlacklist) *AuthService {
	return &AuthService{users: users, tokens: tokens, blacklist: blacklist}
}

// TokenPair is the login response body.
type TokenPair struct {
	User    model.User `json:"user"`
	Refresh string     `json:"refresh"`
	Access  string     `json:"access"`
}

func (s *AuthService) Register(ctx context.Context, username, email, password, role string) (*model.User, error) {
	if role == "" {
		role = model.RoleFleetOwner
	}
	if !model.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := model.User{
		Username: username,
		Email:    email,
		Password: hash,
		Role:     role,
	}
	if err := s.users.Create(ctx, &user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	user, err := s.users.ByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(user.Password, password) {
		return nil, ErrInvalidCredentials
	}

	access, err := s.tokens.GenerateAccess(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.GenerateRefresh(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &TokenPair{User: *user, Refresh: refresh, Access: access}, nil
}

// Refresh exchanges a valid, non-blacklisted refresh token for a new
// access token. The refresh token itself is not rotated.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return "", ErrInvalidToken
	}

	revoked, err := s.blacklist.Contains(ctx, claims.ID)
	if err != nil {
		return "", err
	}
	if revoked {
		return "", ErrInvalidToken
	}

	return s.tokens.GenerateAccess(claims.UserID, claims.Email, claims.Role)
}

// Logout blacklists the refresh token for its remaining lifetime.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return ErrInvalidToken
	}
	return s.blacklist.Add(ctx, claims.ID, auth.RemainingLifetime(claims))
}

func (s *AuthService) Me(ctx context.Context, userID uint) (*model.User, error) {
	user, err := s.users.ByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// ListUsers is restricted to superusers.
func (s *AuthService) ListUsers(ctx context.Context, requesterRole string) ([]model.User, error) {
	if requesterRole != model.RoleSuperuser {
		return nil, ErrPermissionDenied
	}
	return s.users.List(ctx)
}
