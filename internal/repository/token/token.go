package tokenRepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"log/slog"

	"github.com/VivXwan/astrology-app/internal/domain"
	"github.com/VivXwan/astrology-app/internal/ports/persistence"
	ports "github.com/VivXwan/astrology-app/internal/ports/repository"
)

type tokenColumns struct {
	TableName string
	Token     string
	UserID    string
	ExpiresAt string
	CreatedAt string
}

type Repository struct {
	db      persistence.Persistence
	Log     *slog.Logger
	columns tokenColumns
}

// New создаёт репозиторий refresh-токенов
func New(db persistence.Persistence, log *slog.Logger) ports.ITokenRepo {
	cols := tokenColumns{
		TableName: "refresh_tokens",
		Token:     "token",
		UserID:    "user_id",
		ExpiresAt: "expires_at",
		CreatedAt: "created_at",
	}
	return &Repository{
		db:      db,
		Log:     log,
		columns: cols,
	}
}

// Save сохраняет выданный refresh-токен
func (r *Repository) Save(ctx context.Context, token *domain.RefreshToken) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)`,
		r.columns.TableName, r.columns.Token, r.columns.UserID, r.columns.ExpiresAt, r.columns.CreatedAt)

	err := r.db.Exec(ctx, query, token.Token, token.UserID, token.ExpiresAt, token.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert refresh token: %w", err)
	}
	return nil
}

// Get возвращает refresh-токен
func (r *Repository) Get(ctx context.Context, token string) (*domain.RefreshToken, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		WHERE %s = $1`,
		r.columns.Token, r.columns.UserID, r.columns.ExpiresAt, r.columns.CreatedAt,
		r.columns.TableName, r.columns.Token)

	var stored domain.RefreshToken
	err := r.db.Get(ctx, &stored, query, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}
	return &stored, nil
}

// Delete отзывает refresh-токен
func (r *Repository) Delete(ctx context.Context, token string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE %s = $1`,
		r.columns.TableName, r.columns.Token)

	affected, err := r.db.ExecWithResult(ctx, query, token)
	if err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
