package swiss

import (
	"fmt"
	"sync"

	"log/slog"

	"github.com/mshafiee/swephgo"

	"github.com/VivXwan/astrology-app/internal/domain"
	"github.com/VivXwan/astrology-app/internal/ports/ephemeris"
)

// Константы Swiss Ephemeris, используемые адаптером
const (
	seGregorianCalendar = 1

	seflgSwieph = 2
	seflgMoseph = 4
	seflgSpeed  = 256

	sidmLahiri       = 1
	sidmRaman        = 3
	sidmKrishnamurti = 5
	sidmTrueCitra    = 27

	// Планеты в нумерации Swiss Ephemeris
	seSun      = 0
	seMoon     = 1
	seMercury  = 2
	seVenus    = 3
	seMars     = 4
	seJupiter  = 5
	seSaturn   = 6
	seTrueNode = 11

	// Система домов Плацидуса
	hsysPlacidus = 'P'

	serrLen = 256
)

var bodyIDs = map[ephemeris.Body]int{
	ephemeris.Sun:      seSun,
	ephemeris.Moon:     seMoon,
	ephemeris.Mercury:  seMercury,
	ephemeris.Venus:    seVenus,
	ephemeris.Mars:     seMars,
	ephemeris.Jupiter:  seJupiter,
	ephemeris.Saturn:   seSaturn,
	ephemeris.TrueNode: seTrueNode,
}

var sidModes = map[domain.AyanamsaMode]int32{
	domain.AyanamsaTrueChitra:   sidmTrueCitra,
	domain.AyanamsaLahiri:       sidmLahiri,
	domain.AyanamsaRaman:        sidmRaman,
	domain.AyanamsaKrishnamurti: sidmKrishnamurti,
}

// Engine адаптер Swiss Ephemeris, реализует порт ephemeris.Engine.
// Библиотека хранит режим айанамсы в глобальном состоянии, поэтому
// все вызовы сериализуются мьютексом.
type Engine struct {
	mu    sync.Mutex
	flags int32
	log   *slog.Logger
}

// NewEngine создаёт движок эфемерид. При пустом EphePath используются
// встроенные эфемериды Moshier (без файлов данных, чуть ниже точность).
func NewEngine(cfg *Config, log *slog.Logger) *Engine {
	flags := int32(seflgMoseph | seflgSpeed)
	if cfg.EphePath != "" {
		swephgo.SetEphePath([]byte(cfg.EphePath))
		flags = seflgSwieph | seflgSpeed
		log.Info("swiss ephemeris initialized", "ephe_path", cfg.EphePath)
	} else {
		log.Info("swiss ephemeris initialized with built-in moshier ephemeris")
	}

	return &Engine{flags: flags, log: log}
}

// JulianDay юлианский день для григорианской даты и дробного часа UT
func (e *Engine) JulianDay(year, month, day int, hourUT float64) float64 {
	return swephgo.Julday(year, month, day, hourUT, seGregorianCalendar)
}

// Ayanamsa значение айанамсы в градусах для момента jd и режима mode
func (e *Engine) Ayanamsa(jd float64, mode domain.AyanamsaMode) (float64, error) {
	sidMode, ok := sidModes[mode]
	if !ok {
		return 0, domain.NewCalculationError(fmt.Sprintf("unsupported ayanamsa mode: %s", mode), nil)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	swephgo.SetSidMode(sidMode, 0, 0)
	return swephgo.GetAyanamsaUt(jd), nil
}

// Houses куспиды домов (Плацидус), асцендент и MC в тропическом зодиаке
func (e *Engine) Houses(jd, latitude, longitude float64) (*ephemeris.HousePositions, error) {
	cusps := make([]float64, 13)
	ascmc := make([]float64, 10)

	e.mu.Lock()
	ret := swephgo.Houses(jd, latitude, longitude, hsysPlacidus, cusps, ascmc)
	e.mu.Unlock()

	if ret < 0 {
		return nil, domain.NewCalculationError(
			fmt.Sprintf("house calculation failed for jd=%f lat=%f lon=%f", jd, latitude, longitude), nil)
	}

	pos := &ephemeris.HousePositions{
		Ascendant: ascmc[0],
		Midheaven: ascmc[1],
	}
	// cusps[0] не используется библиотекой, дома нумеруются с 1
	copy(pos.Cusps[:], cusps[1:13])
	return pos, nil
}

// Body тропическая долгота и скорость тела для момента jd
func (e *Engine) Body(jd float64, body ephemeris.Body) (*ephemeris.BodyPosition, error) {
	id, ok := bodyIDs[body]
	if !ok {
		return nil, domain.NewCalculationError(fmt.Sprintf("unknown body: %d", body), nil)
	}

	xx := make([]float64, 6)
	serr := make([]byte, serrLen)

	e.mu.Lock()
	ret := swephgo.CalcUt(jd, id, e.flags, xx, serr)
	e.mu.Unlock()

	if ret < 0 {
		return nil, domain.NewCalculationError(
			fmt.Sprintf("ephemeris query failed for body %d: %s", id, cString(serr)), nil)
	}

	return &ephemeris.BodyPosition{
		Longitude:      xx[0],
		LongitudeSpeed: xx[3],
	}, nil
}

// Close освобождает ресурсы библиотеки
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	swephgo.Close()
	return nil
}

func cString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
