package domain

// BalaScore сила в двух эквивалентных единицах:
// шаштиамши (шкала 60) и рупы (= шаштиамши / 60)
type BalaScore struct {
	Rupas         float64 `json:"rupas"`
	Shashtiamshas float64 `json:"shashtiamshas"`
}

// SthanaBala позиционная сила планеты: пять компонент и их сумма
type SthanaBala struct {
	Uchcha       BalaScore `json:"uchcha_bala"`
	Saptavargaja BalaScore `json:"saptavargaja_bala"`
	OjaYugma     BalaScore `json:"oja_yugma_bala"`
	Kendradi     BalaScore `json:"kendradi_bala"`
	Drekkana     BalaScore `json:"drekkana_bala"`
	Total        BalaScore `json:"total"`
}
