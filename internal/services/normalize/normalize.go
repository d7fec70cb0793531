// Package normalize приводит гражданское время рождения к UTC.
package normalize

import (
	"time"

	"github.com/VivXwan/astrology-app/internal/domain"
)

const (
	minTzOffset = -12.0
	maxTzOffset = 14.0
)

// Result исходные и UTC-сдвинутые данные рождения
type Result struct {
	Original domain.BirthInput
	UTC      domain.BirthInput
	TzOffset float64
}

// Sanitize валидирует данные рождения и конвертирует локальное гражданское
// время в UTC календарно-корректным вычитанием смещения (с переносом через
// границы дня/месяца/года). Дробные части часа/минуты/секунды усекаются до
// целых секунд перед конвертацией; юлианский день далее считается из UTC-полей.
func Sanitize(birth domain.BirthInput, tzOffset float64) (*Result, error) {
	if tzOffset < minTzOffset || tzOffset > maxTzOffset {
		return nil, domain.NewValidationError("timezone offset must be between %g and %g hours", minTzOffset, maxTzOffset)
	}
	tzOffset = roundTo2(tzOffset)

	if err := birth.Validate(); err != nil {
		return nil, err
	}

	localDt := time.Date(
		birth.Year, time.Month(birth.Month), birth.Day,
		int(birth.Hour), int(birth.Minute), int(birth.Second), 0,
		time.UTC,
	)

	// Смещение в целых секундах, чтобы не терять пол-часовые и 45-минутные пояса
	offset := time.Duration(tzOffset * float64(time.Hour))
	utcDt := localDt.Add(-offset)

	utc := domain.BirthInput{
		Year:      utcDt.Year(),
		Month:     int(utcDt.Month()),
		Day:       utcDt.Day(),
		Hour:      float64(utcDt.Hour()),
		Minute:    float64(utcDt.Minute()),
		Second:    float64(utcDt.Second()),
		Latitude:  birth.Latitude,
		Longitude: birth.Longitude,
	}

	return &Result{
		Original: birth,
		UTC:      utc,
		TzOffset: tzOffset,
	}, nil
}

func roundTo2(v float64) float64 {
	if v < 0 {
		return float64(int(v*100-0.5)) / 100
	}
	return float64(int(v*100+0.5)) / 100
}
