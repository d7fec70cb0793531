package domain

// VargaType тип дивизионной (гармонической) карты
type VargaType string

const (
	VargaHora       VargaType = "D-2"
	VargaDrekkana   VargaType = "D-3"
	VargaSaptamsa   VargaType = "D-7"
	VargaNavamsa    VargaType = "D-9"
	VargaDwadasamsa VargaType = "D-12"
	VargaTrimsamsa  VargaType = "D-30"
)

// DivisionalPosition позиция тела в дивизионной карте. Дом считается
// относительно дивизионной позиции самой Лагны, не наследуется из раси.
type DivisionalPosition struct {
	Sign      string `json:"sign"`
	SignIndex int    `json:"sign_index"`
	House     int    `json:"house"`
}

// VargaChart позиции всех тел в одной дивизионной карте
type VargaChart map[string]DivisionalPosition

// VargaSet все шесть дивизионных карт
type VargaSet map[VargaType]VargaChart
