package domain

import (
	"fmt"
	"time"
)

// VimshottariYears фиксированные длительности периодов, в сумме 120 лет
var VimshottariYears = map[string]float64{
	Ketu: 7, Venus: 20, Sun: 6, Moon: 10, Mars: 7,
	Rahu: 18, Jupiter: 16, Saturn: 19, Mercury: 17,
}

// VimshottariOrder фиксированная последовательность правителей периодов
var VimshottariOrder = [9]string{Ketu, Venus, Sun, Moon, Mars, Rahu, Jupiter, Saturn, Mercury}

// VimshottariTotalYears полный цикл Вимшоттари
const VimshottariTotalYears = 120.0

// DashaLevelNames уровни вложенности, от внешнего к внутреннему
var DashaLevelNames = [6]string{"Mahadasha", "Antardasha", "Pratyantardasha", "Sookshma", "Prana", "Deha"}

// CivilDate календарная дата, сериализуется как "2006-01-02"
type CivilDate struct {
	time.Time
}

func (d CivilDate) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.Format("2006-01-02"))), nil
}

func (d *CivilDate) UnmarshalJSON(data []byte) error {
	t, err := time.Parse(`"2006-01-02"`, string(data))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// DashaPeriod один период таймлайна. Инварианты: длительности 9 подпериодов
// в сумме равны длительности родителя; верхний уровень всегда даёт ровно 120 лет.
type DashaPeriod struct {
	Planet        string         `json:"planet"`
	Level         string         `json:"level"`
	StartDate     CivilDate      `json:"start_date"`
	EndDate       CivilDate      `json:"end_date"`
	DurationYears float64        `json:"duration_years"`
	DurationDays  float64        `json:"duration_days"`
	SubPeriods    []*DashaPeriod `json:"sub_periods,omitempty"`
}
