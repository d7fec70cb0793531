package chartRepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"log/slog"

	"github.com/VivXwan/astrology-app/internal/domain"
	"github.com/VivXwan/astrology-app/internal/ports/persistence"
	ports "github.com/VivXwan/astrology-app/internal/ports/repository"
	"github.com/google/uuid"
)

type chartColumns struct {
	TableName string
	ID        string
	UserID    string
	BirthData string
	ChartData string
	CreatedAt string
}

type Repository struct {
	db      persistence.Persistence
	Log     *slog.Logger
	columns chartColumns
}

// New создаёт репозиторий для хранения рассчитанных карт
func New(db persistence.Persistence, log *slog.Logger) ports.IChartRepo {
	cols := chartColumns{
		TableName: "charts",
		ID:        "id",
		UserID:    "user_id",
		BirthData: "birth_data",
		ChartData: "chart_data",
		CreatedAt: "created_at",
	}
	return &Repository{
		db:      db,
		Log:     log,
		columns: cols,
	}
}

func (r *Repository) allColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s",
		r.columns.ID,
		r.columns.UserID,
		r.columns.BirthData,
		r.columns.ChartData,
		r.columns.CreatedAt)
}

// Store сохраняет карту; блобы записываются как есть, без разбора
func (r *Repository) Store(ctx context.Context, chart *domain.Chart) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5)`,
		r.columns.TableName, r.allColumns())

	err := r.db.Exec(ctx, query,
		chart.ID,
		chart.UserID,
		chart.BirthData,
		chart.ChartData,
		chart.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert chart: %w", err)
	}
	return nil
}

// GetByID возвращает карту по идентификатору
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Chart, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1`,
		r.allColumns(), r.columns.TableName, r.columns.ID)

	var chart domain.Chart
	err := r.db.Get(ctx, &chart, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get chart by id: %w", err)
	}
	return &chart, nil
}
