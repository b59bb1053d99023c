package aggregate

import (
	"fmt"
	"math"
)

// Intensity bounds for marker scaling
const (
	minIntensity = 0.3
	maxIntensity = 1.0
)

// MarkerStyle - визуальное кодирование одной точки: CSS-цвет и
// интенсивность для радиуса маркера
type MarkerStyle struct {
	Color     string  `json:"color"`
	Intensity float64 `json:"intensity"`
}

// Colorize отображает длительность в цвет и интенсивность относительно
// min/max текущей выборки. Градиент двухсегментный: зеленый -> желтый
// на [0, 0.5], желтый -> красный на [0.5, 1]. Шкала относительная:
// min выборки всегда зеленый, max всегда красный.
func Colorize(duration, min, max float64) MarkerStyle {
	n := Normalize(duration, min, max)

	var red, green int
	if n <= 0.5 {
		red = int(math.Round(510 * n))
		green = 255
	} else {
		red = 255
		green = int(math.Round(255 * (2 - 2*n)))
	}

	return MarkerStyle{
		Color:     fmt.Sprintf("rgb(%d,%d,%d)", red, green, 0),
		Intensity: minIntensity + (maxIntensity-minIntensity)*n,
	}
}

// Normalize линейно нормализует длительность в [0,1] по диапазону выборки.
// Вырожденный диапазон (max == min) дает 0, деления на ноль нет.
func Normalize(duration, min, max float64) float64 {
	if max <= min {
		return 0
	}
	n := (duration - min) / (max - min)
	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}
