package chart

import (
	"log/slog"

	"github.com/VivXwan/astrology-app/internal/ports/cache"
	"github.com/VivXwan/astrology-app/internal/ports/ephemeris"
	"github.com/VivXwan/astrology-app/internal/ports/events"
	"github.com/VivXwan/astrology-app/internal/ports/repository"
	"github.com/VivXwan/astrology-app/internal/ports/timezone"
	"github.com/VivXwan/astrology-app/internal/services/dasha"
	"github.com/VivXwan/astrology-app/internal/services/planetary"
)

// Service оркестратор расчёта карт: нормализация, позиции, варги, даша,
// транзиты, бала и сборка результата одним проходом
type Service struct {
	Eph       ephemeris.Engine
	Planetary *planetary.Service
	Dasha     *dasha.Service
	TzFinder  timezone.Finder
	ChartRepo repository.IChartRepo
	Cache     cache.Cache     // опционально: кэш результатов
	Events    events.Producer // опционально: события chart.generated
	Log       *slog.Logger
}

// New создаёт оркестратор. Cache и Events допускают nil.
func New(
	eph ephemeris.Engine,
	planetarySvc *planetary.Service,
	dashaSvc *dasha.Service,
	tzFinder timezone.Finder,
	chartRepo repository.IChartRepo,
	resultCache cache.Cache,
	producer events.Producer,
	log *slog.Logger,
) *Service {
	return &Service{
		Eph:       eph,
		Planetary: planetarySvc,
		Dasha:     dashaSvc,
		TzFinder:  tzFinder,
		ChartRepo: chartRepo,
		Cache:     resultCache,
		Events:    producer,
		Log:       log,
	}
}
