package domain

import (
	"fmt"
	"math"
	"strings"
)

// ZodiacSigns 12 знаков зодиака, по 30° каждый, начиная с Овна
var ZodiacSigns = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// Nakshatras 27 лунных стоянок, по 13°20' каждая
var Nakshatras = [27]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni", "Uttara Phalguni",
	"Hasta", "Chitra", "Swati", "Vishakha", "Anuradha", "Jyeshtha",
	"Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana", "Dhanishta",
	"Shatabhisha", "Purva Bhadrapada", "Uttara Bhadrapada", "Revati",
}

const (
	// NakshatraSpan 13°20'
	NakshatraSpan = 13.0 + 20.0/60.0
	// NakshatraPadaSpan 3°20', четверть накшатры
	NakshatraPadaSpan = 3.0 + 20.0/60.0
)

// Имена тел. Раху и Кету - лунные узлы, Лагна - асцендент как виртуальная "планета"
const (
	Sun     = "Sun"
	Moon    = "Moon"
	Mercury = "Mercury"
	Venus   = "Venus"
	Mars    = "Mars"
	Jupiter = "Jupiter"
	Saturn  = "Saturn"
	Rahu    = "Rahu"
	Ketu    = "Ketu"
	Lagna   = "Lagna"
)

// ChartBodies порядок тел в карте. Лагна первой: дома дивизионных карт
// считаются относительно её позиции, поэтому она всегда вычисляется до остальных.
var ChartBodies = [10]string{Lagna, Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn, Rahu, Ketu}

// AyanamsaMode режим айанамсы (сидерической поправки)
type AyanamsaMode string

const (
	AyanamsaTrueChitra   AyanamsaMode = "true_chitra"
	AyanamsaLahiri       AyanamsaMode = "lahiri"
	AyanamsaRaman        AyanamsaMode = "raman"
	AyanamsaKrishnamurti AyanamsaMode = "krishnamurti"
)

// ParseAyanamsaMode разбирает имя режима. Неизвестное или пустое имя
// сводится к true_chitra - намеренная мягкость, не отказ (см. политику валидации)
func ParseAyanamsaMode(name string) AyanamsaMode {
	switch AyanamsaMode(strings.ToLower(name)) {
	case AyanamsaLahiri:
		return AyanamsaLahiri
	case AyanamsaRaman:
		return AyanamsaRaman
	case AyanamsaKrishnamurti:
		return AyanamsaKrishnamurti
	default:
		return AyanamsaTrueChitra
	}
}

// Norm360 нормализует долготу в [0, 360)
func Norm360(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// FormatDMS форматирует десятичные градусы как `13° 4' 57"`
func FormatDMS(decimal float64) string {
	degrees := int(decimal)
	minutesDecimal := (decimal - float64(degrees)) * 60
	minutes := int(minutesDecimal)
	seconds := int((minutesDecimal - float64(minutes)) * 60)
	return fmt.Sprintf("%d° %d' %d\"", degrees, minutes, seconds)
}
