package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ChartRequest запрос на расчёт карты. TzOffset nil - смещение выводится из
// координат; TransitDate nil - транзиты на текущий момент; AyanamsaType и
// DashaLevel мягко сводятся к дефолтам при невалидных значениях.
type ChartRequest struct {
	Birth        BirthInput `json:"birth_data"`
	TzOffset     *float64   `json:"tz_offset,omitempty"`
	TransitDate  *time.Time `json:"transit_date,omitempty"`
	AyanamsaType string     `json:"ayanamsa_type,omitempty"`
	DashaLevel   int        `json:"dasha_level,omitempty"`
}

// BirthRecord исходные данные рождения, сохраняемые вместе с картой
type BirthRecord struct {
	BirthInput
	TzOffset     float64 `json:"tz_offset"`
	AyanamsaType string  `json:"ayanamsa_type"`
	DashaLevel   int     `json:"dasha_level"`
}

// ChartResult полный результат расчёта. Собирается один раз на запрос и
// после возврата не мутируется; персистится как непрозрачный JSON-блоб.
type ChartResult struct {
	ChartID          uuid.UUID              `json:"chart_id,omitempty"`
	UserID           uuid.UUID              `json:"user_id,omitempty"`
	Kundali          *Kundali               `json:"kundali"`
	VimshottariDasha []*DashaPeriod         `json:"vimshottari_dasha"`
	Transits         *Kundali               `json:"transits"`
	Vargas           VargaSet               `json:"vargas"`
	SthanaBala       map[string]*SthanaBala `json:"sthana_bala"`
	DigBala          map[string]BalaScore   `json:"dig_bala"`
	BirthData        BirthRecord            `json:"birth_data"`
}

// Chart запись карты в хранилище: блобы данных рождения и результата
type Chart struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	UserID    uuid.UUID       `json:"user_id" db:"user_id"`
	BirthData json.RawMessage `json:"birth_data" db:"birth_data"`
	ChartData json.RawMessage `json:"chart_data" db:"chart_data"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}
