// Package varga строит дивизионные (гармонические) карты из натальных позиций.
// Все расчёты - чистые замкнутые формулы над знаком и градусами в знаке,
// без повторных запросов к эфемеридам.
package varga

import (
	"fmt"
	"math"

	"github.com/VivXwan/astrology-app/internal/domain"
)

// signFunc правило отображения натальной позиции в знак дивизионной карты
type signFunc func(pos *domain.PlanetPosition) (int, error)

// build общий каркас: сначала дивизионная позиция Лагны, затем остальных тел.
// Дома считаются относительно дивизионной Лагны, не наследуются из раси.
func build(k *domain.Kundali, fn signFunc) (domain.VargaChart, error) {
	if k == nil || len(k.Planets) == 0 {
		return nil, domain.NewCalculationError("natal chart has no planet positions", nil)
	}

	lagnaPos, ok := k.Planets[domain.Lagna]
	if !ok {
		return nil, domain.NewCalculationError("natal chart is missing Lagna", nil)
	}
	lagnaIdx, err := fn(lagnaPos)
	if err != nil {
		return nil, err
	}

	chart := make(domain.VargaChart, len(domain.ChartBodies))
	for _, name := range domain.ChartBodies {
		pos, ok := k.Planets[name]
		if !ok {
			return nil, domain.NewCalculationError(fmt.Sprintf("natal chart is missing %s", name), nil)
		}
		idx, err := fn(pos)
		if err != nil {
			return nil, err
		}
		chart[name] = domain.DivisionalPosition{
			Sign:      domain.ZodiacSigns[idx],
			SignIndex: idx,
			House:     (idx-lagnaIdx+12)%12 + 1,
		}
	}
	return chart, nil
}

// part номер доли в знаке при делении на size градусов, в [1, n].
// Нижний клэмп закрывает ровно 0° (ceil(0) = 0), верхний - ровно 30°.
func part(degrees, size float64, n int) int {
	p := int(math.Ceil(degrees / size))
	if p < 1 {
		p = 1
	}
	if p > n {
		p = n
	}
	return p
}

func isOddSign(idx int) bool {
	return idx%2 == 0 // Овен (0) - нечётный знак
}

// Hora D-2: знак по половине (0-15°/15-30°) и чётности знака
func Hora(k *domain.Kundali) (domain.VargaChart, error) {
	const leo, cancer = 4, 3
	return build(k, func(pos *domain.PlanetPosition) (int, error) {
		p := part(pos.DegreesInSign, 15, 2)
		if isOddSign(pos.SignIndex) {
			if p == 1 {
				return leo, nil
			}
			return cancer, nil
		}
		if p == 1 {
			return cancer, nil
		}
		return leo, nil
	})
}

// Drekkana D-3: треть знака, целевой знак = (раси + (часть-1)*4) mod 12
func Drekkana(k *domain.Kundali) (domain.VargaChart, error) {
	return build(k, func(pos *domain.PlanetPosition) (int, error) {
		p := part(pos.DegreesInSign, 10, 3)
		return (pos.SignIndex + (p-1)*4) % 12, nil
	})
}

// Saptamsa D-7: седьмая часть знака; нечётные знаки считают от себя,
// чётные - от седьмого знака
func Saptamsa(k *domain.Kundali) (domain.VargaChart, error) {
	return build(k, func(pos *domain.PlanetPosition) (int, error) {
		p := part(pos.DegreesInSign, 30.0/7, 7)
		if isOddSign(pos.SignIndex) {
			return (pos.SignIndex + p - 1) % 12, nil
		}
		return (pos.SignIndex + 6 + p - 1) % 12, nil
	})
}

// элементные якоря навамши: огонь - Овен, земля - Козерог, воздух - Весы, вода - Рак
var navamsaAnchors = [4]int{0, 9, 6, 3}

// Navamsa D-9: девятая часть знака, отсчёт от якоря стихии натального знака
func Navamsa(k *domain.Kundali) (domain.VargaChart, error) {
	return build(k, func(pos *domain.PlanetPosition) (int, error) {
		segment := int(pos.DegreesInSign / (30.0 / 9))
		if segment > 8 {
			segment = 8
		}
		start := navamsaAnchors[pos.SignIndex%4]
		return (start + segment) % 12, nil
	})
}

// Dwadasamsa D-12: двенадцатая часть знака, отсчёт от самого знака
func Dwadasamsa(k *domain.Kundali) (domain.VargaChart, error) {
	return build(k, func(pos *domain.PlanetPosition) (int, error) {
		p := part(pos.DegreesInSign, 2.5, 12)
		return (pos.SignIndex + p - 1) % 12, nil
	})
}

// trimsamsaRange градусный диапазон [Start, End) со своим целевым знаком
type trimsamsaRange struct {
	Start float64
	End   float64
	Sign  int
}

// Неравные диапазоны тримшамши; таблицы нечётных и чётных знаков различаются
var (
	trimsamsaOdd = [5]trimsamsaRange{
		{0, 5, 0}, {5, 10, 1}, {10, 18, 2}, {18, 25, 5}, {25, 30, 6},
	}
	trimsamsaEven = [5]trimsamsaRange{
		{0, 5, 7}, {5, 12, 8}, {12, 20, 11}, {20, 25, 9}, {25, 30, 10},
	}
)

// Trimsamsa D-30: градус попадает в один из 5 неравных диапазонов по чётности
// знака. Ровно 30° (не возникает после нормализации, но путь определён)
// отображается в последний диапазон таблицы.
func Trimsamsa(k *domain.Kundali) (domain.VargaChart, error) {
	return build(k, func(pos *domain.PlanetPosition) (int, error) {
		ranges := trimsamsaEven
		if isOddSign(pos.SignIndex) {
			ranges = trimsamsaOdd
		}
		for _, r := range ranges {
			if pos.DegreesInSign >= r.Start && pos.DegreesInSign < r.End {
				return r.Sign, nil
			}
		}
		if pos.DegreesInSign == 30 {
			return ranges[len(ranges)-1].Sign, nil
		}
		return 0, domain.NewCalculationError(
			fmt.Sprintf("degrees in sign %.6f outside trimsamsa ranges", pos.DegreesInSign), nil)
	})
}

// All строит все шесть дивизионных карт
func All(k *domain.Kundali) (domain.VargaSet, error) {
	type entry struct {
		vargaType domain.VargaType
		fn        func(*domain.Kundali) (domain.VargaChart, error)
	}
	entries := []entry{
		{domain.VargaHora, Hora},
		{domain.VargaDrekkana, Drekkana},
		{domain.VargaSaptamsa, Saptamsa},
		{domain.VargaNavamsa, Navamsa},
		{domain.VargaDwadasamsa, Dwadasamsa},
		{domain.VargaTrimsamsa, Trimsamsa},
	}

	set := make(domain.VargaSet, len(entries))
	for _, e := range entries {
		chart, err := e.fn(k)
		if err != nil {
			return nil, fmt.Errorf("varga %s: %w", e.vargaType, err)
		}
		set[e.vargaType] = chart
	}
	return set, nil
}
