// Package dasha считает таймлайн Вимшоттари-даши: 120-летний цикл от
// накшатры Луны с рекурсивным подразбиением до шести уровней.
package dasha

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/VivXwan/astrology-app/internal/domain"
	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	// daysPerYearBalance используется только для начального шага
	// elapsed/balance первого периода; daysPerYearCycle - для всех
	// рекурсивных подразбиений. Расхождение унаследовано от исходных
	// сохранённых карт, унификация - продуктовое решение.
	daysPerYearBalance = 365.2422
	daysPerYearCycle   = 365.25

	defaultMaxLevel  = 2
	maxLevel         = 5
	defaultCacheSize = 256
)

// Service расчёт таймлайна с мемоизацией. Кэш ограничен LRU-вытеснением;
// записи - чистые функции своего ключа, инвалидация не нужна.
type Service struct {
	log   *slog.Logger
	cache *lru.Cache[string, []*domain.DashaPeriod]
}

// New создаёт сервис с кэшем на cacheSize записей
func New(log *slog.Logger, cacheSize int) (*Service, error) {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	cache, err := lru.New[string, []*domain.DashaPeriod](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create dasha cache: %w", err)
	}
	return &Service{
		log:   log,
		cache: cache,
	}, nil
}

// Timeline полный 120-летний таймлайн от даты рождения и сидерической долготы
// Луны. level ограничивает вложенность (1=Antardasha .. 5=Deha); значение вне
// [1,5] сводится ко 2 (до Pratyantardasha). Возвращаемый слайс разделяется
// между вызовами с одинаковым ключом - вызывающие не должны его мутировать.
func (s *Service) Timeline(birthDate time.Time, moonLongitude float64, level int) ([]*domain.DashaPeriod, error) {
	if moonLongitude < 0 || moonLongitude >= 360 {
		return nil, domain.NewCalculationError(
			fmt.Sprintf("moon longitude %.6f outside [0, 360)", moonLongitude), nil)
	}
	if level <= 0 || level > maxLevel {
		level = defaultMaxLevel
	}

	key := fmt.Sprintf("%s|%.6f|%d", birthDate.Format("2006-01-02"), moonLongitude, level)
	if cached, ok := s.cache.Get(key); ok {
		if s.log != nil {
			s.log.Debug("dasha timeline served from cache", "key", key)
		}
		return cached, nil
	}

	timeline := compute(birthDate, moonLongitude, level)
	s.cache.Add(key, timeline)
	return timeline, nil
}

func compute(birthDate time.Time, moonLongitude float64, level int) []*domain.DashaPeriod {
	nakIdx := int(moonLongitude / domain.NakshatraSpan)
	if nakIdx > 26 {
		nakIdx = 26 // Revati при долготе, упирающейся в 360°
	}
	nakDeg := moonLongitude - float64(nakIdx)*domain.NakshatraSpan

	startIdx := nakIdx % 9
	startPlanet := domain.VimshottariOrder[startIdx]
	totalYears := domain.VimshottariYears[startPlanet]

	// Баланс первого периода пропорционален непройденной части накшатры
	remainingDeg := domain.NakshatraSpan - nakDeg
	balanceYears := remainingDeg / domain.NakshatraSpan * totalYears
	elapsedYears := totalYears - balanceYears

	start := birthDate.Add(-durationDays(elapsedYears * daysPerYearBalance))

	var timeline []*domain.DashaPeriod
	remaining := domain.VimshottariTotalYears
	current := start

	for i := startIdx; remaining > 1e-9; i++ {
		planet := domain.VimshottariOrder[i%9]
		years := domain.VimshottariYears[planet]
		if years > remaining {
			years = remaining
		}
		days := years * daysPerYearCycle
		end := current.Add(durationDays(days))

		period := &domain.DashaPeriod{
			Planet:        planet,
			Level:         domain.DashaLevelNames[0],
			StartDate:     domain.CivilDate{Time: current},
			EndDate:       domain.CivilDate{Time: end},
			DurationYears: years,
			DurationDays:  days,
		}
		if level >= 1 {
			period.SubPeriods = subdivide(current, years, i%9, 1, level)
		}

		timeline = append(timeline, period)
		current = end
		remaining -= years
	}

	return timeline
}

// subdivide делит период на 9 детей; последовательность детей начинается
// с собственного правителя родителя, длительности взвешены по годам планет
func subdivide(start time.Time, parentYears float64, parentIdx, level, limit int) []*domain.DashaPeriod {
	children := make([]*domain.DashaPeriod, 0, 9)
	current := start

	for i := 0; i < 9; i++ {
		idx := (parentIdx + i) % 9
		planet := domain.VimshottariOrder[idx]
		years := parentYears * domain.VimshottariYears[planet] / domain.VimshottariTotalYears
		days := years * daysPerYearCycle
		end := current.Add(durationDays(days))

		child := &domain.DashaPeriod{
			Planet:        planet,
			Level:         domain.DashaLevelNames[level],
			StartDate:     domain.CivilDate{Time: current},
			EndDate:       domain.CivilDate{Time: end},
			DurationYears: years,
			DurationDays:  days,
		}
		if level < limit {
			child.SubPeriods = subdivide(current, years, idx, level+1, limit)
		}

		children = append(children, child)
		current = end
	}

	return children
}

func durationDays(days float64) time.Duration {
	return time.Duration(days * 24 * float64(time.Hour))
}
