package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"timebill-api/ent"
	"timebill-api/internal/storage"
	"timebill-api/internal/transport/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

const refreshKeyPrefix = "refresh:"

type userService struct {
	repo              storage.UserRepository
	rdb               *redis.Client
	jwtSecret         string
	jwtExpiration     time.Duration
	refreshExpiration time.Duration
}

// NewUserService creates a new instance of UserService. Refresh tokens are
// opaque and live in Redis; only access tokens are JWTs.
func NewUserService(repo storage.UserRepository, rdb *redis.Client, jwtSecret string, jwtExpiration, refreshExpiration time.Duration) UserService {
	return &userService{
		repo:              repo,
		rdb:               rdb,
		jwtSecret:         jwtSecret,
		jwtExpiration:     jwtExpiration,
		refreshExpiration: refreshExpiration,
	}
}

func (s *userService) Register(ctx context.Context, req *dto.RegisterRequest) (*ent.User, error) {
	createReq := dto.CreateUserRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}

	user, err := s.repo.Create(ctx, &createReq)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) || errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%w: %w", ErrConflict, err)
		}
		log.Printf("UserService: Error creating user: %v", err)
		return nil, fmt.Errorf("internal error creating user: %w", err)
	}
	return user, nil
}

func (s *userService) Login(ctx context.Context, req *dto.LoginRequest) (*ent.User, *dto.TokenResponse, error) {
	emailReq := dto.GetUserByEmailRequest{Email: req.Email}
	user, err := s.repo.GetByEmail(ctx, &emailReq)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Printf("Login attempt failed for email %s: user not found", req.Email)
			return nil, nil, ErrInvalidCredentials
		}
		log.Printf("Error fetching user by email %s during login: %v", req.Email, err)
		return nil, nil, fmt.Errorf("internal error during login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Printf("Login attempt failed for email %s: invalid password", req.Email)
		return nil, nil, ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	return user, tokens, nil
}

// Refresh rotates a refresh token: the old one is atomically consumed and a
// fresh pair is issued. A reused or unknown token yields ErrInvalidToken.
func (s *userService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenResponse, error) {
	userIDStr, err := s.rdb.GetDel(ctx, refreshKeyPrefix+req.RefreshToken).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			log.Println("Refresh attempt with unknown or expired token")
			return nil, ErrInvalidToken
		}
		log.Printf("Error consuming refresh token: %v", err)
		return nil, fmt.Errorf("internal error during token refresh: %w", err)
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		log.Printf("Refresh token maps to invalid user ID %q: %v", userIDStr, err)
		return nil, ErrInvalidToken
	}

	return s.issueTokens(ctx, userID)
}

// Logout revokes a refresh token. Revoking an already-dead token is not an
// error; the outcome is the same.
func (s *userService) Logout(ctx context.Context, req *dto.LogoutRequest) error {
	if err := s.rdb.Del(ctx, refreshKeyPrefix+req.RefreshToken).Err(); err != nil {
		log.Printf("Error revoking refresh token: %v", err)
		return fmt.Errorf("internal error during logout: %w", err)
	}
	return nil
}

func (s *userService) GetByID(ctx context.Context, req *dto.GetUserByIdRequest) (*ent.User, error) {
	user, err := s.repo.GetByID(ctx, req)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNotFound
	}
	return user, err
}

func (s *userService) Update(ctx context.Context, req *dto.UpdateUserRequest) (*ent.User, error) {
	user, err := s.repo.Update(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "updating user")
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, req *dto.DeleteUserRequest) error {
	if err := s.repo.Delete(ctx, req); err != nil {
		return mapRepoError(err, "deleting user")
	}
	return nil
}

func (s *userService) issueTokens(ctx context.Context, userID uuid.UUID) (*dto.TokenResponse, error) {
	expirationTime := time.Now().Add(s.jwtExpiration)
	claims := &jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(expirationTime),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	accessToken, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		log.Printf("Error generating JWT token for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to generate login token: %w", err)
	}

	refreshToken := uuid.NewString()
	if err := s.rdb.Set(ctx, refreshKeyPrefix+refreshToken, userID.String(), s.refreshExpiration).Err(); err != nil {
		log.Printf("Error storing refresh token for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.jwtExpiration.Seconds()),
	}, nil
}
