// Package planetary считает сидерические позиции тел карты.
package planetary

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/VivXwan/astrology-app/internal/domain"
	"github.com/VivXwan/astrology-app/internal/ports/ephemeris"
)

// queriedBodies 8 тел, запрашиваемых у эфемерид; Кету выводится из Раху
var queriedBodies = []struct {
	ID   ephemeris.Body
	Name string
}{
	{ephemeris.Sun, domain.Sun},
	{ephemeris.Moon, domain.Moon},
	{ephemeris.Mercury, domain.Mercury},
	{ephemeris.Venus, domain.Venus},
	{ephemeris.Mars, domain.Mars},
	{ephemeris.Jupiter, domain.Jupiter},
	{ephemeris.Saturn, domain.Saturn},
	{ephemeris.TrueNode, domain.Rahu},
}

// Service расчёт сидерических позиций через эфемеридный порт
type Service struct {
	Eph ephemeris.Engine
	Log *slog.Logger
}

// New создаёт сервис расчёта позиций
func New(eph ephemeris.Engine, log *slog.Logger) *Service {
	return &Service{
		Eph: eph,
		Log: log,
	}
}

// Kundali сидерическая карта на момент jd: асцендент/MC, куспиды домов, 10 тел.
// Одна айанамса применяется ко всем долготам карты без исключений.
func (s *Service) Kundali(jd, latitude, longitude, ayanamsa float64, ayanamsaType domain.AyanamsaMode) (*domain.Kundali, error) {
	houses, err := s.Eph.Houses(jd, latitude, longitude)
	if err != nil {
		return nil, domain.NewCalculationError("houses calculation failed", err)
	}

	sidAsc := domain.Norm360(houses.Ascendant - ayanamsa)
	sidMC := domain.Norm360(houses.Midheaven - ayanamsa)

	var sidCusps [12]float64
	for i, cusp := range houses.Cusps {
		sidCusps[i] = domain.Norm360(cusp - ayanamsa)
	}

	lagna, err := buildPosition(sidAsc, 0, false)
	if err != nil {
		return nil, err
	}
	lagna.House = 1
	lagnaSignIdx := lagna.SignIndex

	planets := map[string]*domain.PlanetPosition{
		domain.Lagna: lagna,
	}

	for _, body := range queriedBodies {
		pos, err := s.Eph.Body(jd, body.ID)
		if err != nil {
			return nil, domain.NewCalculationError(fmt.Sprintf("ephemeris query failed for %s", body.Name), err)
		}

		sidLon := domain.Norm360(pos.Longitude - ayanamsa)
		planet, err := buildPosition(sidLon, lagnaSignIdx, pos.LongitudeSpeed < 0)
		if err != nil {
			return nil, err
		}
		planets[body.Name] = planet
	}

	// Кету всегда строго напротив Раху и всегда ретрограден
	ketuLon := domain.Norm360(planets[domain.Rahu].Longitude + 180)
	ketu, err := buildPosition(ketuLon, lagnaSignIdx, true)
	if err != nil {
		return nil, err
	}
	planets[domain.Ketu] = ketu

	return &domain.Kundali{
		Ayanamsa:     ayanamsa,
		AyanamsaType: string(ayanamsaType),
		Ascendant: domain.Ascendant{
			Longitude:    sidAsc,
			LongitudeDMS: domain.FormatDMS(sidAsc),
			Sign:         domain.ZodiacSigns[lagnaSignIdx],
		},
		Midheaven:    sidMC,
		MidheavenDMS: domain.FormatDMS(sidMC),
		HouseCusps:   sidCusps,
		Planets:      planets,
	}, nil
}

// Natal карта на момент jd: айанамса запрашивается у движка для выбранного
// режима и применяется ко всей карте
func (s *Service) Natal(jd, latitude, longitude float64, mode domain.AyanamsaMode) (*domain.Kundali, error) {
	ayanamsa, err := s.Eph.Ayanamsa(jd, mode)
	if err != nil {
		return nil, domain.NewCalculationError("ayanamsa calculation failed", err)
	}
	return s.Kundali(jd, latitude, longitude, ayanamsa, mode)
}

// KundaliAt карта на произвольный момент времени UTC (для транзитов).
// Айанамса пересчитывается на момент транзита, не натала.
func (s *Service) KundaliAt(at time.Time, latitude, longitude float64, mode domain.AyanamsaMode) (*domain.Kundali, error) {
	at = at.UTC()
	hourUT := float64(at.Hour()) + float64(at.Minute())/60.0 + float64(at.Second())/3600.0
	jd := s.Eph.JulianDay(at.Year(), int(at.Month()), at.Day(), hourUT)

	kundali, err := s.Natal(jd, latitude, longitude, mode)
	if err != nil {
		return nil, err
	}
	kundali.TransitDate = at.Format("2006-01-02 15:04:05")
	return kundali, nil
}

// buildPosition заполняет атрибуты позиции из сидерической долготы.
// Дом считается относительно знака асцендента.
func buildPosition(sidLon float64, lagnaSignIdx int, retrograde bool) (*domain.PlanetPosition, error) {
	signIdx := int(sidLon / 30)
	nakIdx := int(sidLon / domain.NakshatraSpan)
	if signIdx < 0 || signIdx > 11 || nakIdx < 0 || nakIdx > 26 {
		return nil, domain.NewCalculationError(
			fmt.Sprintf("longitude %.6f is outside the zodiac", sidLon), nil)
	}

	degInSign := math.Mod(sidLon, 30)
	pada := int(math.Mod(sidLon, domain.NakshatraSpan)/domain.NakshatraPadaSpan) + 1

	return &domain.PlanetPosition{
		Longitude:        sidLon,
		LongitudeDMS:     domain.FormatDMS(sidLon),
		Sign:             domain.ZodiacSigns[signIdx],
		SignIndex:        signIdx,
		House:            (signIdx-lagnaSignIdx+12)%12 + 1,
		DegreesInSign:    degInSign,
		DegreesInSignDMS: domain.FormatDMS(degInSign),
		Nakshatra:        domain.Nakshatras[nakIdx],
		NakshatraIndex:   nakIdx,
		Pada:             pada,
		Retrograde:       retrograde,
	}, nil
}
