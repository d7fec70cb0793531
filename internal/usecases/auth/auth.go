package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/VivXwan/astrology-app/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials неверные учётные данные или токен
var ErrInvalidCredentials = errors.New("invalid credentials")

const minPasswordLength = 8

// Register создаёт нового пользователя с bcrypt-хэшем пароля
func (s *Service) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if name == "" || email == "" {
		return nil, domain.NewValidationError("name and email are required")
	}
	if len(password) < minPasswordLength {
		return nil, domain.NewValidationError("password must be at least %d characters", minPasswordLength)
	}

	if _, err := s.UserRepo.GetByEmail(ctx, email); err == nil {
		return nil, domain.NewValidationError("email already exists")
	} else if !errors.Is(err, domain.ErrNotFound) {
		s.Log.Error("failed to check existing user", "error", err, "email", email)
		return nil, domain.WrapBusinessError(fmt.Errorf("failed to check existing user: %w", err))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.UserRepo.Create(ctx, user); err != nil {
		s.Log.Error("failed to create user", "error", err, "email", email)
		return nil, domain.WrapBusinessError(fmt.Errorf("failed to create user: %w", err))
	}

	s.Log.Info("user registered", "user_id", user.ID)
	return user, nil
}

// Login проверяет пароль и выдаёт пару access/refresh токенов
func (s *Service) Login(ctx context.Context, email, password string) (*domain.TokenPair, error) {
	user, err := s.UserRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.Log.Error("failed to fetch user", "error", err, "email", email)
		return nil, domain.WrapBusinessError(fmt.Errorf("failed to fetch user: %w", err))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	pair, err := s.issueTokens(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.Log.Info("user logged in", "user_id", user.ID)
	return pair, nil
}

// Refresh обменивает действующий refresh-токен на новую пару (с ротацией)
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	stored, err := s.TokenRepo.Get(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.Log.Error("failed to fetch refresh token", "error", err)
		return nil, domain.WrapBusinessError(fmt.Errorf("failed to fetch refresh token: %w", err))
	}

	if time.Now().After(stored.ExpiresAt) {
		_ = s.TokenRepo.Delete(ctx, refreshToken)
		return nil, ErrInvalidCredentials
	}

	if err := s.TokenRepo.Delete(ctx, refreshToken); err != nil {
		s.Log.Warn("failed to rotate refresh token", "error", err)
	}

	return s.issueTokens(ctx, stored.UserID)
}

// Logout отзывает refresh-токен; незнакомый токен не считается ошибкой
func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	if err := s.TokenRepo.Delete(ctx, refreshToken); err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.Log.Error("failed to revoke refresh token", "error", err)
		return domain.WrapBusinessError(fmt.Errorf("failed to revoke refresh token: %w", err))
	}
	return nil
}

// ParseAccessToken проверяет подпись и срок access-токена, возвращает user_id
func (s *Service) ParseAccessToken(token string) (uuid.UUID, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.Cfg.JWTSecret), nil
	})
	if err != nil || !parsed.Valid {
		return uuid.Nil, ErrInvalidCredentials
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return uuid.Nil, ErrInvalidCredentials
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidCredentials
	}
	return userID, nil
}

func (s *Service) issueTokens(ctx context.Context, userID uuid.UUID) (*domain.TokenPair, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.Cfg.AccessTTL)),
	}

	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.Cfg.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refresh := &domain.RefreshToken{
		Token:     uuid.NewString(),
		UserID:    userID,
		ExpiresAt: now.Add(s.Cfg.RefreshTTL),
		CreatedAt: now,
	}
	if err := s.TokenRepo.Save(ctx, refresh); err != nil {
		s.Log.Error("failed to save refresh token", "error", err, "user_id", userID)
		return nil, domain.WrapBusinessError(fmt.Errorf("failed to save refresh token: %w", err))
	}

	return &domain.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh.Token,
		TokenType:    "bearer",
	}, nil
}
