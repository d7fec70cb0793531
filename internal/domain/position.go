package domain

// PlanetPosition сидерическая позиция одного тела в карте.
// Инварианты: долгота всегда в [0, 360); Кету = Раху + 180° mod 360,
// Кету всегда ретрограден, Лагна - никогда.
type PlanetPosition struct {
	Longitude        float64 `json:"longitude"`
	LongitudeDMS     string  `json:"longitude_dms"`
	Sign             string  `json:"sign"`
	SignIndex        int     `json:"sign_index"`
	House            int     `json:"house"`
	DegreesInSign    float64 `json:"degrees_in_sign"`
	DegreesInSignDMS string  `json:"degrees_in_sign_dms"`
	Nakshatra        string  `json:"nakshatra"`
	NakshatraIndex   int     `json:"nakshatra_index"`
	Pada             int     `json:"pada"`
	Retrograde       bool    `json:"retrograde"`
}

// Ascendant сводка по асценденту карты
type Ascendant struct {
	Longitude    float64 `json:"longitude"`
	LongitudeDMS string  `json:"longitude_dms"`
	Sign         string  `json:"sign"`
}

// Kundali сидерическая карта на момент времени: одна айанамса на всю карту,
// асцендент/MC, куспиды домов (Плацидус) и позиции 10 тел (включая Лагну)
type Kundali struct {
	Ayanamsa     float64                    `json:"ayanamsa"`
	AyanamsaType string                     `json:"ayanamsa_type"`
	Ascendant    Ascendant                  `json:"ascendant"`
	Midheaven    float64                    `json:"midheaven"`
	MidheavenDMS string                     `json:"midheaven_dms"`
	HouseCusps   [12]float64                `json:"house_cusps"`
	Planets      map[string]*PlanetPosition `json:"planets"`
	TzOffset     float64                    `json:"tz_offset"`
	TransitDate  string                     `json:"transit_date,omitempty"`
}
