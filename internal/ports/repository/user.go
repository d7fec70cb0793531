package repository

import (
	"context"

	"github.com/VivXwan/astrology-app/internal/domain"
	"github.com/google/uuid"
)

// IUserRepo интерфейс для работы с пользователями
type IUserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// ITokenRepo интерфейс для хранения refresh-токенов
type ITokenRepo interface {
	Save(ctx context.Context, token *domain.RefreshToken) error
	Get(ctx context.Context, token string) (*domain.RefreshToken, error)
	Delete(ctx context.Context, token string) error
}
