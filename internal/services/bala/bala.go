// Package bala считает силу планет: позиционную (Стхана Бала, пять компонент)
// и направленную (Диг Бала).
package bala

import (
	"fmt"
	"math"

	"github.com/VivXwan/astrology-app/internal/domain"
)

// exaltationPoint точка экзальтации: знак и градус внутри знака
type exaltationPoint struct {
	SignIndex int
	Degree    float64
}

var exaltationPoints = map[string]exaltationPoint{
	domain.Sun:     {0, 10},
	domain.Moon:    {1, 3},
	domain.Mars:    {9, 28},
	domain.Mercury: {5, 15},
	domain.Jupiter: {3, 5},
	domain.Venus:   {11, 27},
	domain.Saturn:  {6, 20},
	domain.Rahu:    {1, 20},
	domain.Ketu:    {7, 20},
}

// Очки достоинств для Саптаваргаджа Балы. enemy(4) > great_enemy(3) -
// унаследованная асимметрия исходной шкалы, сохранена сознательно.
const (
	pointsExaltation   = 30.0
	pointsMoolatrikona = 25.0
	pointsOwn          = 20.0
	pointsGreatFriend  = 15.0
	pointsFriend       = 10.0
	pointsNeutral      = 5.0
	pointsEnemy        = 4.0
	pointsGreatEnemy   = 3.0
)

var moolatrikonaSigns = map[string]string{
	domain.Sun:     "Leo",
	domain.Moon:    "Taurus",
	domain.Mars:    "Aries",
	domain.Mercury: "Virgo",
	domain.Jupiter: "Sagittarius",
	domain.Venus:   "Libra",
	domain.Saturn:  "Aquarius",
}

var ownSigns = map[string][]string{
	domain.Sun:     {"Leo"},
	domain.Moon:    {"Cancer"},
	domain.Mars:    {"Aries", "Scorpio"},
	domain.Mercury: {"Gemini", "Virgo"},
	domain.Jupiter: {"Sagittarius", "Pisces"},
	domain.Venus:   {"Taurus", "Libra"},
	domain.Saturn:  {"Capricorn", "Aquarius"},
}

// signLords управители знаков; достоинство в чужом знаке определяется
// отношением планеты к его управителю
var signLords = map[string]string{
	"Aries":       domain.Mars,
	"Taurus":      domain.Venus,
	"Gemini":      domain.Mercury,
	"Cancer":      domain.Moon,
	"Leo":         domain.Sun,
	"Virgo":       domain.Mercury,
	"Libra":       domain.Venus,
	"Scorpio":     domain.Mars,
	"Sagittarius": domain.Jupiter,
	"Capricorn":   domain.Saturn,
	"Aquarius":    domain.Saturn,
	"Pisces":      domain.Jupiter,
}

// Таблицы дружбы/вражды между планетами
var friends = map[string][]string{
	domain.Sun:     {domain.Moon, domain.Mars, domain.Jupiter},
	domain.Moon:    {domain.Sun, domain.Mercury},
	domain.Mars:    {domain.Sun, domain.Moon, domain.Jupiter},
	domain.Mercury: {domain.Sun, domain.Venus},
	domain.Jupiter: {domain.Sun, domain.Moon, domain.Mars},
	domain.Venus:   {domain.Mercury, domain.Saturn},
	domain.Saturn:  {domain.Mercury, domain.Venus},
}

var enemies = map[string][]string{
	domain.Sun:     {domain.Venus, domain.Saturn},
	domain.Moon:    {domain.Mars, domain.Jupiter, domain.Saturn, domain.Venus},
	domain.Mars:    {domain.Mercury},
	domain.Mercury: {domain.Moon},
	domain.Jupiter: {domain.Mercury, domain.Venus},
	domain.Venus:   {domain.Sun, domain.Moon},
	domain.Saturn:  {domain.Sun, domain.Moon, domain.Mars},
}

var greatFriends = map[string][]string{
	domain.Sun:     {domain.Jupiter},
	domain.Moon:    {domain.Mercury},
	domain.Mars:    {domain.Jupiter},
	domain.Mercury: {domain.Venus},
	domain.Jupiter: {domain.Sun},
	domain.Venus:   {domain.Saturn},
	domain.Saturn:  {domain.Venus},
}

var greatEnemies = map[string][]string{
	domain.Sun:    {domain.Saturn},
	domain.Saturn: {domain.Mars},
}

var malePlanets = map[string]bool{domain.Sun: true, domain.Mars: true, domain.Jupiter: true}
var femalePlanets = map[string]bool{domain.Moon: true, domain.Venus: true}

// Предпочтительные дома для Диг Балы; тела без предпочтения получают 0
var preferredHouses = map[string]int{
	domain.Sun:     10,
	domain.Moon:    4,
	domain.Mars:    10,
	domain.Mercury: 1,
	domain.Jupiter: 1,
	domain.Venus:   4,
	domain.Saturn:  7,
}

// Sthana позиционная сила каждого тела карты по пяти компонентам.
// Требует раси-карту и все шесть дивизионных карт.
func Sthana(k *domain.Kundali, vargas domain.VargaSet) (map[string]*domain.SthanaBala, error) {
	if k == nil || len(k.Planets) == 0 {
		return nil, domain.NewCalculationError("natal chart has no planet positions", nil)
	}

	result := make(map[string]*domain.SthanaBala, len(domain.ChartBodies))

	for _, planet := range domain.ChartBodies {
		pos, ok := k.Planets[planet]
		if !ok {
			return nil, domain.NewCalculationError(fmt.Sprintf("natal chart is missing %s", planet), nil)
		}

		uchcha := uchchaBala(planet, pos)

		saptavargaja, err := saptavargajaBala(planet, pos, vargas)
		if err != nil {
			return nil, err
		}

		navamsaSign, err := vargaSign(vargas, domain.VargaNavamsa, planet)
		if err != nil {
			return nil, err
		}
		ojaYugma := ojaYugmaBala(planet, pos.SignIndex, signIndex(navamsaSign))

		kendradi := kendradiBala(pos.House)
		drekkana := drekkanaBala(planet, pos.DegreesInSign)

		total := uchcha + saptavargaja + ojaYugma + kendradi + drekkana

		result[planet] = &domain.SthanaBala{
			Uchcha:       score(uchcha),
			Saptavargaja: score(saptavargaja),
			OjaYugma:     score(ojaYugma),
			Kendradi:     score(kendradi),
			Drekkana:     score(drekkana),
			Total:        score(total),
		}
	}

	return result, nil
}

// Dig направленная сила: 1 - (угловое расстояние до предпочтительного дома)/180
func Dig(k *domain.Kundali) (map[string]domain.BalaScore, error) {
	if k == nil || len(k.Planets) == 0 {
		return nil, domain.NewCalculationError("natal chart has no planet positions", nil)
	}

	result := make(map[string]domain.BalaScore, len(domain.ChartBodies))

	for _, planet := range domain.ChartBodies {
		pos, ok := k.Planets[planet]
		if !ok {
			return nil, domain.NewCalculationError(fmt.Sprintf("natal chart is missing %s", planet), nil)
		}

		preferred, ok := preferredHouses[planet]
		if !ok {
			result[planet] = domain.BalaScore{}
			continue
		}

		diff := math.Abs(float64(pos.House - preferred))
		angular := math.Min(diff, 12-diff) * 30
		rupas := 1 - angular/180
		result[planet] = score(rupas * 60)
	}

	return result, nil
}

// uchchaBala сила от экзальтации: 60 в точке экзальтации, 0 в противостоянии
func uchchaBala(planet string, pos *domain.PlanetPosition) float64 {
	exalt, ok := exaltationPoints[planet]
	if !ok {
		return 0
	}
	exaltLon := float64(exalt.SignIndex)*30 + exalt.Degree
	planetLon := float64(pos.SignIndex)*30 + pos.DegreesInSign
	angular := math.Min(domain.Norm360(planetLon-exaltLon), domain.Norm360(exaltLon-planetLon))
	return 60 * (1 - angular/180)
}

// saptavargajaBala среднее очков достоинства по 7 картам (раси + 6 варг)
func saptavargajaBala(planet string, pos *domain.PlanetPosition, vargas domain.VargaSet) (float64, error) {
	signs := make([]string, 0, 7)
	signs = append(signs, pos.Sign)
	for _, vt := range []domain.VargaType{
		domain.VargaHora, domain.VargaDrekkana, domain.VargaSaptamsa,
		domain.VargaNavamsa, domain.VargaDwadasamsa, domain.VargaTrimsamsa,
	} {
		sign, err := vargaSign(vargas, vt, planet)
		if err != nil {
			return 0, err
		}
		signs = append(signs, sign)
	}

	total := 0.0
	for _, sign := range signs {
		total += dignityPoints(planet, sign)
	}
	return total / 7, nil
}

// dignityPoints очки за достоинство планеты в одном знаке; порядок проверок
// от сильнейшего к слабейшему. В чужом знаке отношение определяется по его
// управителю, остаток - нейтрально.
func dignityPoints(planet, sign string) float64 {
	if exalt, ok := exaltationPoints[planet]; ok && domain.ZodiacSigns[exalt.SignIndex] == sign {
		return pointsExaltation
	}
	if moolatrikonaSigns[planet] == sign {
		return pointsMoolatrikona
	}
	if contains(ownSigns[planet], sign) {
		return pointsOwn
	}

	lord := signLords[sign]
	if contains(greatFriends[planet], lord) {
		return pointsGreatFriend
	}
	if contains(friends[planet], lord) {
		return pointsFriend
	}
	if contains(greatEnemies[planet], lord) {
		return pointsGreatEnemy
	}
	if contains(enemies[planet], lord) {
		return pointsEnemy
	}
	return pointsNeutral
}

// ojaYugmaBala бонус чётности: мужские (и нейтральные) планеты в нечётных
// знаках раси/навамши, женские - в чётных; по 15 за каждую проверку
func ojaYugmaBala(planet string, rasiIdx, navamsaIdx int) float64 {
	rasiOdd := rasiIdx%2 == 0
	navamsaOdd := navamsaIdx%2 == 0

	wantOdd := true
	if femalePlanets[planet] {
		wantOdd = false
	}

	total := 0.0
	if rasiOdd == wantOdd {
		total += 15
	}
	if navamsaOdd == wantOdd {
		total += 15
	}
	return total
}

// kendradiBala бонус за квадрант: кендры 60, панапары 30, апоклимы 15
func kendradiBala(house int) float64 {
	switch house {
	case 1, 4, 7, 10:
		return 60
	case 2, 5, 8, 11:
		return 30
	default:
		return 15
	}
}

// drekkanaBala бонус за треть знака, сопоставленную гендерной категории планеты
func drekkanaBala(planet string, degreesInSign float64) float64 {
	part := int(math.Ceil(degreesInSign / 10))
	if part < 1 {
		part = 1
	}
	switch {
	case malePlanets[planet] && part == 1:
		return 15
	case femalePlanets[planet] && part == 2:
		return 15
	case !malePlanets[planet] && !femalePlanets[planet] && part == 3:
		return 15
	}
	return 0
}

func vargaSign(vargas domain.VargaSet, vt domain.VargaType, planet string) (string, error) {
	chart, ok := vargas[vt]
	if !ok {
		return "", domain.NewCalculationError(fmt.Sprintf("varga set is missing %s", vt), nil)
	}
	pos, ok := chart[planet]
	if !ok {
		return "", domain.NewCalculationError(fmt.Sprintf("varga %s is missing %s", vt, planet), nil)
	}
	return pos.Sign, nil
}

func signIndex(sign string) int {
	for i, s := range domain.ZodiacSigns {
		if s == sign {
			return i
		}
	}
	return 0
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// score выражает шаштиамши в обеих единицах с округлением до 3 знаков
func score(shashtiamshas float64) domain.BalaScore {
	return domain.BalaScore{
		Rupas:         round3(shashtiamshas / 60),
		Shashtiamshas: round3(shashtiamshas),
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
