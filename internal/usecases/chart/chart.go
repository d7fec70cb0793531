package chart

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/VivXwan/astrology-app/internal/domain"
	"github.com/VivXwan/astrology-app/internal/services/bala"
	"github.com/VivXwan/astrology-app/internal/services/normalize"
	"github.com/VivXwan/astrology-app/internal/services/varga"
	"github.com/google/uuid"
)

const (
	defaultDashaLevel = 2
	maxDashaLevel     = 5
	resultCacheTTL    = 24 * time.Hour
)

// Generate считает полную карту и сохраняет её. Любая ошибка валидации или
// расчёта прерывает оркестрацию целиком - частичная карта не возвращается.
func (s *Service) Generate(ctx context.Context, userID uuid.UUID, req *domain.ChartRequest) (*domain.ChartResult, error) {
	if req == nil {
		return nil, domain.NewValidationError("chart request is empty")
	}

	level := req.DashaLevel
	if level <= 0 || level > maxDashaLevel {
		level = defaultDashaLevel
	}

	tzOffset := s.resolveTzOffset(ctx, req)

	sanitized, err := normalize.Sanitize(req.Birth, tzOffset)
	if err != nil {
		return nil, err
	}

	if req.TransitDate != nil {
		year := req.TransitDate.Year()
		if year < 1 || year > 9999 {
			return nil, domain.NewValidationError("transit date year must be between 1 and 9999")
		}
	}

	mode := domain.ParseAyanamsaMode(req.AyanamsaType)

	// Явная дата транзита делает запрос детерминированным и кэшируемым
	cacheable := req.TransitDate != nil
	cacheKey := s.cacheKey(userID, sanitized, mode, level, req.TransitDate)
	if cacheable {
		if cached := s.cachedResult(ctx, cacheKey); cached != nil {
			return cached, nil
		}
	}

	utc := sanitized.UTC
	jd := s.Eph.JulianDay(utc.Year, utc.Month, utc.Day, utc.FractionalHour())

	kundali, err := s.Planetary.Natal(jd, utc.Latitude, utc.Longitude, mode)
	if err != nil {
		return nil, err
	}
	kundali.TzOffset = tzOffset

	vargas, err := varga.All(kundali)
	if err != nil {
		return nil, err
	}

	moon, ok := kundali.Planets[domain.Moon]
	if !ok {
		return nil, domain.NewCalculationError("natal chart is missing Moon", nil)
	}
	dashaTimeline, err := s.Dasha.Timeline(utc.Date(), moon.Longitude, level)
	if err != nil {
		return nil, err
	}

	transitAt := time.Now().UTC()
	if req.TransitDate != nil {
		transitAt = req.TransitDate.UTC()
	}
	transits, err := s.Planetary.KundaliAt(transitAt, utc.Latitude, utc.Longitude, mode)
	if err != nil {
		return nil, err
	}
	transits.TzOffset = tzOffset

	sthanaBala, err := bala.Sthana(kundali, vargas)
	if err != nil {
		return nil, err
	}
	digBala, err := bala.Dig(kundali)
	if err != nil {
		return nil, err
	}

	birthRecord := domain.BirthRecord{
		BirthInput:   sanitized.Original,
		TzOffset:     tzOffset,
		AyanamsaType: string(mode),
		DashaLevel:   level,
	}

	result := &domain.ChartResult{
		ChartID:          uuid.New(),
		UserID:           userID,
		Kundali:          kundali,
		VimshottariDasha: dashaTimeline,
		Transits:         transits,
		Vargas:           vargas,
		SthanaBala:       sthanaBala,
		DigBala:          digBala,
		BirthData:        birthRecord,
	}

	if err := s.store(ctx, result); err != nil {
		return nil, err
	}

	if cacheable {
		s.cacheResult(ctx, cacheKey, result)
	}
	s.publishGenerated(ctx, result)

	return result, nil
}

// GetByID возвращает сохранённую карту как непрозрачный блоб.
// Чужая карта неотличима от несуществующей.
func (s *Service) GetByID(ctx context.Context, userID, chartID uuid.UUID) (json.RawMessage, error) {
	chart, err := s.ChartRepo.GetByID(ctx, chartID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		s.Log.Error("failed to fetch chart", "error", err, "chart_id", chartID)
		return nil, domain.WrapBusinessError(fmt.Errorf("failed to fetch chart: %w", err))
	}

	if chart.UserID != userID {
		return nil, domain.ErrNotFound
	}

	return chart.ChartData, nil
}

// resolveTzOffset смещение из запроса либо из координат; сбой поиска пояса -
// мягкий откат на UTC, не ошибка
func (s *Service) resolveTzOffset(ctx context.Context, req *domain.ChartRequest) float64 {
	if req.TzOffset != nil {
		return *req.TzOffset
	}
	if s.TzFinder == nil {
		return 0
	}

	offset, err := s.TzFinder.OffsetHours(req.Birth.Latitude, req.Birth.Longitude)
	if err != nil {
		s.Log.Warn("timezone lookup failed, defaulting to UTC",
			"error", err,
			"latitude", req.Birth.Latitude,
			"longitude", req.Birth.Longitude,
		)
		return 0
	}
	return offset
}

func (s *Service) store(ctx context.Context, result *domain.ChartResult) error {
	birthBlob, err := json.Marshal(result.BirthData)
	if err != nil {
		return fmt.Errorf("failed to marshal birth data: %w", err)
	}
	chartBlob, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal chart result: %w", err)
	}

	record := &domain.Chart{
		ID:        result.ChartID,
		UserID:    result.UserID,
		BirthData: birthBlob,
		ChartData: chartBlob,
		CreatedAt: time.Now(),
	}
	if err := s.ChartRepo.Store(ctx, record); err != nil {
		s.Log.Error("failed to store chart", "error", err, "chart_id", result.ChartID)
		return domain.WrapBusinessError(fmt.Errorf("failed to store chart: %w", err))
	}

	s.Log.Info("chart stored",
		"chart_id", result.ChartID,
		"user_id", result.UserID,
		"ayanamsa_type", result.BirthData.AyanamsaType,
		"dasha_level", result.BirthData.DashaLevel,
	)
	return nil
}

func (s *Service) cacheKey(userID uuid.UUID, sanitized *normalize.Result, mode domain.AyanamsaMode, level int, transitDate *time.Time) string {
	payload, _ := json.Marshal(map[string]any{
		"user":     userID.String(),
		"birth":    sanitized.Original,
		"tz":       sanitized.TzOffset,
		"ayanamsa": mode,
		"level":    level,
		"transit":  transitDate,
	})
	sum := sha256.Sum256(payload)
	return "charts:result:" + hex.EncodeToString(sum[:])
}

func (s *Service) cachedResult(ctx context.Context, key string) *domain.ChartResult {
	if s.Cache == nil {
		return nil
	}

	raw, err := s.Cache.Get(ctx, key)
	if err != nil {
		return nil
	}

	var result domain.ChartResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		s.Log.Warn("failed to decode cached chart, recomputing", "error", err, "cache_key", key)
		return nil
	}

	s.Log.Debug("chart served from cache", "cache_key", key, "chart_id", result.ChartID)
	return &result
}

func (s *Service) cacheResult(ctx context.Context, key string, result *domain.ChartResult) {
	if s.Cache == nil {
		return
	}

	blob, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, key, string(blob), resultCacheTTL); err != nil {
		s.Log.Warn("failed to cache chart result",
			"error", err,
			"cache_key", key,
			"chart_id", result.ChartID,
		)
	}
}

func (s *Service) publishGenerated(ctx context.Context, result *domain.ChartResult) {
	if s.Events == nil {
		return
	}
	if err := s.Events.ChartGenerated(ctx, result.ChartID, result.UserID); err != nil {
		s.Log.Warn("failed to publish chart.generated event",
			"error", err,
			"chart_id", result.ChartID,
		)
	}
}
