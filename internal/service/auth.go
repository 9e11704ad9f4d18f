package service

import (
	"context"
	"errors"
	"time"

	"github.com/TsaqifHasbi/todo-api-go/internal/crypto"
	"github.com/TsaqifHasbi/todo-api-go/internal/model"
	"github.com/TsaqifHasbi/todo-api-go/internal/store"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUsernameRequired   = errors.New("username is required")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrUsernameTooLong    = errors.New("username must be at most 50 characters")
	ErrEmailTooLong       = errors.New("email must be at most 100 characters")
	ErrIdentityTaken      = errors.New("username or email already taken")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService handles registration, login, and account lookup.
type AuthService struct {
	users     store.UserStore
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(users store.UserStore, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Register creates a new user account and returns an auth token. The plaintext
// password is hashed immediately and never stored or logged.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error) {
	if req.Username == "" {
		return model.AuthResponse{}, ErrUsernameRequired
	}
	if req.Email == "" {
		return model.AuthResponse{}, ErrEmailRequired
	}
	if req.Password == "" {
		return model.AuthResponse{}, ErrPasswordRequired
	}
	if len(req.Username) > 50 {
		return model.AuthResponse{}, ErrUsernameTooLong
	}
	if len(req.Email) > 100 {
		return model.AuthResponse{}, ErrEmailTooLong
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.AuthResponse{}, err
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicateUser) {
			return model.AuthResponse{}, ErrIdentityTaken
		}
		return model.AuthResponse{}, err
	}

	return s.authResponse(user)
}

// Login authenticates a user and returns an auth token. An unknown email and
// a wrong password both fail with the same ErrInvalidCredentials, so a caller
// cannot probe which accounts exist.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	user, err := s.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}

	if !crypto.VerifyPassword(req.Password, user.PasswordHash) {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	return s.authResponse(user)
}

// GetUser retrieves a user by ID and returns safe user data.
func (s *AuthService) GetUser(ctx context.Context, userID string) (model.UserResponse, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return model.UserResponse{}, ErrUserNotFound
		}
		return model.UserResponse{}, err
	}

	return userToResponse(user), nil
}

// DeleteAccount removes a user and, through the store, every task they own.
func (s *AuthService) DeleteAccount(ctx context.Context, userID string) error {
	err := s.users.DeleteUser(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		return ErrUserNotFound
	}
	return err
}

func (s *AuthService) authResponse(user *model.User) (model.AuthResponse, error) {
	token, err := crypto.GenerateToken(user.ID, user.Username, user.Email, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{
		Token: token,
		User:  userToResponse(user),
	}, nil
}

func userToResponse(user *model.User) model.UserResponse {
	return model.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
