package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quizhub/internal/common"
	"quizhub/internal/common/security"
	"quizhub/internal/domain/model"
	"quizhub/internal/domain/repository"

	"github.com/google/uuid"
)

// AuthService is the session issuer: it validates credentials, mints session
// tokens and decides the carrier for each login.
type AuthService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	IsTeacher bool   `json:"isTeacher"`
}

type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

// LoginResult pairs the authenticated user with the carrier chosen for this
// login. The handler threads the carrier through delivery exactly once.
type LoginResult struct {
	User    *model.User
	Carrier security.Carrier
}

// Register creates a user record. It never issues a token; a new account still
// has to log in.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*model.User, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, common.ErrBadRequest
	}

	if _, err := s.userRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("user already exists: %w", common.ErrConflict)
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &model.User{
		ID:             uuid.NewString(),
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: hashedPassword,
		IsTeacher:      req.IsTeacher,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	// The unique email index closes the race left by the pre-check; the repo
	// maps a duplicate key to common.ErrConflict.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	user.HashedPassword = ""
	return user, nil
}

// Login authenticates an email/password pair. Unknown email and wrong password
// collapse into the same error so callers cannot probe which accounts exist.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	if req.Email == "" || req.Password == "" {
		return nil, common.ErrBadRequest
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !security.CheckPasswordHash(req.Password, user.HashedPassword) {
		return nil, common.ErrInvalidCredentials
	}

	token, err := security.GenerateToken(user.ID, user.IsTeacher)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	carrier := security.BearerCarrier(token)
	if req.RememberMe {
		carrier = security.CookieCarrier(token)
	}

	user.HashedPassword = ""
	return &LoginResult{User: user, Carrier: carrier}, nil
}

// CurrentUser resolves a verified token's subject to a live user record. A
// token naming a deleted user yields common.ErrNotFound.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.HashedPassword = ""
	return user, nil
}
