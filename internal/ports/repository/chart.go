package repository

import (
	"context"

	"github.com/VivXwan/astrology-app/internal/domain"
	"github.com/google/uuid"
)

// IChartRepo интерфейс для хранения рассчитанных карт.
// Хранилище непрозрачно для ядра: блобы сохраняются и читаются как есть.
type IChartRepo interface {
	Store(ctx context.Context, chart *domain.Chart) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Chart, error)
}
