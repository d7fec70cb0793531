package ephemeris

import "github.com/VivXwan/astrology-app/internal/domain"

// Body идентификатор тела для запроса к эфемеридам
type Body int

const (
	Sun Body = iota
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	// TrueNode истинный лунный узел (Раху); Кету выводится без запроса
	TrueNode
)

// HousePositions куспиды домов и асцендент/MC в тропической системе (Плацидус)
type HousePositions struct {
	Cusps     [12]float64
	Ascendant float64
	Midheaven float64
}

// BodyPosition тропическая позиция тела; LongitudeSpeed < 0 означает ретроградность
type BodyPosition struct {
	Longitude      float64
	LongitudeSpeed float64
}

// Engine порт эфемеридного движка. Режим айанамсы передаётся явным параметром
// в каждый запрос: глобальное состояние нижележащей библиотеки - забота адаптера.
type Engine interface {
	// JulianDay юлианский день для года/месяца/дня и дробного часа UT
	JulianDay(year, month, day int, hourUT float64) float64
	// Ayanamsa значение айанамсы (в градусах) для момента jd и режима mode
	Ayanamsa(jd float64, mode domain.AyanamsaMode) (float64, error)
	// Houses куспиды домов и асцендент/MC для момента и места
	Houses(jd, latitude, longitude float64) (*HousePositions, error)
	// Body тропическая долгота и скорость тела
	Body(jd float64, body Body) (*BodyPosition, error)
	Close() error
}
