package util

import (
	"github.com/aquilax/go-perlin"
)

// NoiseField — двумерное поле шума Перлина с нормализованными значениями
type NoiseField struct {
	p *perlin.Perlin
}

// NewNoiseField создаёт поле шума с указанным сидом
func NewNoiseField(seed int64) *NoiseField {
	alpha := 2.0  // Сглаживание шума
	beta := 2.0   // Частота шума
	n := int32(3) // Количество октав
	return &NoiseField{p: perlin.NewPerlin(alpha, beta, n, seed)}
}

// At возвращает значение шума для указанных координат (от 0 до 1)
func (nf *NoiseField) At(x, y float64) float64 {
	// Значение шума лежит в диапазоне от -1 до 1
	noise := nf.p.Noise2D(x, y)

	// Преобразуем в диапазон от 0 до 1
	return (noise + 1.0) / 2.0
}
