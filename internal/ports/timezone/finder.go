package timezone

// Finder порт вывода смещения часового пояса из географических координат.
// Сбой здесь - мягкий: вызывающая сторона откатывается на UTC (0), не падает.
type Finder interface {
	// OffsetHours смещение в часах (например, 5.5 для IST)
	OffsetHours(latitude, longitude float64) (float64, error)
}
