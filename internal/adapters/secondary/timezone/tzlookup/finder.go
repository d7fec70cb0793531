package tzlookup

import (
	"fmt"
	"time"

	"log/slog"

	"github.com/ringsaturn/tzf"
)

// Finder определяет смещение UTC по координатам через встроенную
// карту часовых поясов, реализует порт timezone.Finder
type Finder struct {
	finder tzf.F
	log    *slog.Logger
}

func NewFinder(log *slog.Logger) (*Finder, error) {
	f, err := tzf.NewDefaultFinder()
	if err != nil {
		return nil, fmt.Errorf("failed to init timezone finder: %w", err)
	}
	return &Finder{finder: f, log: log}, nil
}

// OffsetHours текущее смещение UTC в часах для точки (lat, lon).
// Смещение берётся на текущий момент: историческая таблица переходов
// на летнее время для даты рождения здесь не применяется.
func (f *Finder) OffsetHours(latitude, longitude float64) (float64, error) {
	name := f.finder.GetTimezoneName(longitude, latitude)
	if name == "" {
		return 0, fmt.Errorf("no timezone found for lat=%f lon=%f", latitude, longitude)
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return 0, fmt.Errorf("failed to load timezone %s: %w", name, err)
	}

	_, offsetSeconds := time.Now().In(loc).Zone()
	return float64(offsetSeconds) / 3600.0, nil
}
