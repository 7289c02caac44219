package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"fishparque/internal/domain"
	"fishparque/internal/dto"
	apperrors "fishparque/internal/errors"

	"go.uber.org/zap"
)

type UserRepository interface {
	Lookup(ctx context.Context, email string) (*domain.User, error)
	InsertIfAbsent(ctx context.Context, user *domain.User) error
}

type AuthService struct {
	users  UserRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewAuthService(users UserRepository, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:  users,
		logger: logger,
		now:    time.Now,
	}
}

// Register creates a new user record. All fields are required; a duplicate
// email is a conflict. Returns the confirmation message shown to the user.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (string, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" || req.Phone == "" || req.Address == "" {
		return "", apperrors.NewValidationError("All fields are required")
	}

	user := &domain.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  HashPassword(req.Password),
		Phone:     req.Phone,
		Address:   req.Address,
		CreatedAt: s.now().UTC().Format("2006-01-02T15:04:05.000Z"),
	}

	if err := s.users.InsertIfAbsent(ctx, user); err != nil {
		return "", err
	}

	s.logger.Info("user registered", zap.String("email", req.Email))
	return "Registration successful! Please login.", nil
}

// Login verifies the password hash and issues a fresh session token. Unknown
// email and wrong password return the same error so the response does not
// reveal which one failed. The token is not persisted anywhere.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResult, error) {
	user, err := s.users.Lookup(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	if user == nil || user.Password != HashPassword(req.Password) {
		return nil, apperrors.NewUnauthorizedError("Invalid email or password")
	}

	token, err := generateToken()
	if err != nil {
		return nil, fmt.Errorf("generating session token: %w", err)
	}

	s.logger.Info("user logged in", zap.String("email", req.Email))
	return &dto.LoginResult{
		User: dto.UserProfile{
			Name:    user.Name,
			Email:   user.Email,
			Phone:   user.Phone,
			Address: user.Address,
		},
		Token: token,
	}, nil
}

// HashPassword returns the hex-encoded sha256 digest of the password.
// Deterministic and unsalted, for compatibility with existing credential
// documents. Not a password-hardening KDF.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
