package events

import (
	"context"

	"github.com/google/uuid"
)

// Producer порт публикации событий сервиса. Публикация best-effort:
// сбой логируется использующей стороной и не прерывает запрос.
type Producer interface {
	ChartGenerated(ctx context.Context, chartID, userID uuid.UUID) error
	Close() error
}
