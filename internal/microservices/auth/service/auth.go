package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"coffeeos/internal/config"
	"coffeeos/internal/domain"
	"coffeeos/internal/microservices/auth/repository"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, branchID string, req domain.RegisterRequest) (domain.User, error)
	Login(ctx context.Context, branchID string, req domain.LoginRequest) (domain.AuthResponse, error)
}

type Claims struct {
	Role     string `json:"role"`
	BranchID string `json:"branch_id"`
	jwt.RegisteredClaims
}

type AuthService struct {
	users  repository.UserRepositoryInterface
	secret []byte
	ttl    time.Duration
}

func NewAuthService(users repository.UserRepositoryInterface, cfg config.AuthConfig) AuthServiceInterface {
	return &AuthService{
		users:  users,
		secret: []byte(cfg.JWTSecret),
		ttl:    time.Duration(cfg.TokenTTL) * time.Minute,
	}
}

func (s *AuthService) Register(ctx context.Context, branchID string, req domain.RegisterRequest) (domain.User, error) {
	if branchID == "" {
		return domain.User{}, domain.ErrMissingContext
	}

	if _, err := s.users.GetByUsername(ctx, branchID, req.Username); err == nil {
		return domain.User{}, fmt.Errorf("username %s is taken: %w", req.Username, domain.ErrInvalidState)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	u := domain.User{
		ID:           uuid.NewString(),
		BranchID:     branchID,
		Username:     req.Username,
		PasswordHash: string(hash),
		DisplayName:  req.DisplayName,
		Role:         req.Role,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.CreateUser(ctx, &u); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

func (s *AuthService) Login(ctx context.Context, branchID string, req domain.LoginRequest) (domain.AuthResponse, error) {
	if branchID == "" {
		return domain.AuthResponse{}, domain.ErrMissingContext
	}

	u, err := s.users.GetByUsername(ctx, branchID, req.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.AuthResponse{}, domain.ErrUnauthorized
		}
		return domain.AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return domain.AuthResponse{}, domain.ErrUnauthorized
	}

	token, err := s.issueToken(u)
	if err != nil {
		return domain.AuthResponse{}, err
	}
	return domain.AuthResponse{Token: token, Role: u.Role}, nil
}

func (s *AuthService) issueToken(u domain.User) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Role:     u.Role,
		BranchID: u.BranchID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ParseToken validates a token and returns its claims; used by the HTTP
// middleware.
func ParseToken(tokenStr string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}
