package world

import (
	"github.com/annel0/voxel-perception/internal/vec"
)

// Grid — плотный результат запроса блоков по боксу [Min..Max] (включительно).
// Данные хранятся в порядке осей (y, z, x) — в том виде, в каком их отдаёт
// транспорт мира. Перевод локальных индексов в мировые координаты (x, y, z)
// выполняется только методом World — единственной точкой перестановки осей.
type Grid struct {
	Min vec.Vec3 // Минимальный угол бокса в мировых координатах

	sy, sz, sx int
	blocks     []Block
}

// NewGrid создаёт пустую (воздушную) сетку по включительным границам бокса
func NewGrid(min, max vec.Vec3) *Grid {
	sy := max.Y - min.Y + 1
	sz := max.Z - min.Z + 1
	sx := max.X - min.X + 1
	if sy < 1 || sz < 1 || sx < 1 {
		return &Grid{Min: min}
	}
	return &Grid{
		Min:    min,
		sy:     sy,
		sz:     sz,
		sx:     sx,
		blocks: make([]Block, sy*sz*sx),
	}
}

// Dims возвращает размеры сетки в порядке хранения (y, z, x)
func (g *Grid) Dims() (sy, sz, sx int) {
	return g.sy, g.sz, g.sx
}

// Contains проверяет, что локальный индекс лежит внутри сетки
func (g *Grid) Contains(y, z, x int) bool {
	return y >= 0 && y < g.sy && z >= 0 && z < g.sz && x >= 0 && x < g.sx
}

// At возвращает блок по локальному индексу (y, z, x)
func (g *Grid) At(y, z, x int) Block {
	return g.blocks[(y*g.sz+z)*g.sx+x]
}

// Set записывает блок по локальному индексу (y, z, x)
func (g *Grid) Set(y, z, x int, b Block) {
	g.blocks[(y*g.sz+z)*g.sx+x] = b
}

// World переводит локальный индекс (y, z, x) в мировую координату (x, y, z)
func (g *Grid) World(y, z, x int) vec.Vec3 {
	return vec.Vec3{X: g.Min.X + x, Y: g.Min.Y + y, Z: g.Min.Z + z}
}

// Local переводит мировую координату в локальный индекс сетки
func (g *Grid) Local(p vec.Vec3) (y, z, x int, ok bool) {
	y = p.Y - g.Min.Y
	z = p.Z - g.Min.Z
	x = p.X - g.Min.X
	return y, z, x, g.Contains(y, z, x)
}
