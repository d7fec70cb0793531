package domain

import (
	"math"
	"time"
)

// BirthInput дата, время и место рождения. После Validate значения округлены
// (время до 2 знаков, координаты до 6) и больше не меняются.
type BirthInput struct {
	Year      int     `json:"year"`
	Month     int     `json:"month"`
	Day       int     `json:"day"`
	Hour      float64 `json:"hour"`
	Minute    float64 `json:"minute"`
	Second    float64 `json:"second,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validate округляет и проверяет поля. Округление идёт первым, чтобы
// значение вроде 23.999 не проскочило диапазон, став 24.0 уже после проверки.
// Дата проверяется как реальная календарная (31 февраля не пройдёт).
func (b *BirthInput) Validate() error {
	b.Hour = roundTo(b.Hour, 2)
	b.Minute = roundTo(b.Minute, 2)
	b.Second = roundTo(b.Second, 2)
	b.Latitude = roundTo(b.Latitude, 6)
	b.Longitude = roundTo(b.Longitude, 6)

	if b.Month < 1 || b.Month > 12 {
		return NewValidationError("month must be an integer between 1 and 12")
	}
	if b.Day < 1 || b.Day > daysIn(b.Year, b.Month) {
		return NewValidationError("day %d is invalid for month %d and year %d", b.Day, b.Month, b.Year)
	}
	if b.Hour < 0 || b.Hour >= 24 {
		return NewValidationError("hour must be a number between 0 and 23.99")
	}
	if b.Minute < 0 || b.Minute >= 60 {
		return NewValidationError("minute must be a number between 0 and 59.99")
	}
	if b.Second < 0 || b.Second >= 60 {
		return NewValidationError("second must be a number between 0 and 59.99")
	}
	if b.Latitude < -90 || b.Latitude > 90 {
		return NewValidationError("latitude must be a number between -90 and 90")
	}
	if b.Longitude < -180 || b.Longitude > 180 {
		return NewValidationError("longitude must be a number between -180 and 180")
	}
	return nil
}

// FractionalHour час с долями для расчёта юлианского дня: hour + minute/60 + second/3600
func (b *BirthInput) FractionalHour() float64 {
	return b.Hour + b.Minute/60.0 + b.Second/3600.0
}

// Date календарная дата рождения в UTC (полночь)
func (b *BirthInput) Date() time.Time {
	return time.Date(b.Year, time.Month(b.Month), b.Day, 0, 0, 0, 0, time.UTC)
}

func daysIn(year, month int) int {
	// день 0 следующего месяца = последний день текущего
	return time.Date(year, time.Month(month+1), 0, 0, 0, 0, 0, time.UTC).Day()
}

func roundTo(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
