package usecase

import (
	"context"
	"encoding/json"

	"github.com/VivXwan/astrology-app/internal/domain"
	"github.com/google/uuid"
)

// IChartUsecase интерфейс оркестратора расчёта карт
type IChartUsecase interface {
	Generate(ctx context.Context, userID uuid.UUID, req *domain.ChartRequest) (*domain.ChartResult, error)
	GetByID(ctx context.Context, userID, chartID uuid.UUID) (json.RawMessage, error)
}

// IAuthUsecase интерфейс аутентификации
type IAuthUsecase interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	ParseAccessToken(token string) (uuid.UUID, error)
}
