package world

import (
	"testing"

	"github.com/annel0/voxel-perception/internal/vec"
	"github.com/stretchr/testify/assert"
)

func TestGrid_Dims(t *testing.T) {
	g := NewGrid(vec.Vec3{X: -1, Y: 0, Z: 2}, vec.Vec3{X: 1, Y: 3, Z: 4})
	sy, sz, sx := g.Dims()

	assert.Equal(t, 4, sy, "размер по Y должен быть 4")
	assert.Equal(t, 3, sz, "размер по Z должен быть 3")
	assert.Equal(t, 3, sx, "размер по X должен быть 3")
}

func TestGrid_SetAt(t *testing.T) {
	g := NewGrid(vec.Vec3{X: 0, Y: 0, Z: 0}, vec.Vec3{X: 2, Y: 2, Z: 2})

	b := Block{ID: StoneID, Meta: 3}
	g.Set(1, 2, 0, b)

	assert.Equal(t, b, g.At(1, 2, 0), "блок должен читаться по тому же индексу")
	assert.True(t, g.At(0, 0, 0).IsAir(), "незаписанные ячейки должны быть воздухом")
}

func TestGrid_WorldLocal(t *testing.T) {
	// Локальные индексы хранятся в порядке (y, z, x); World — единственная
	// точка перестановки осей в мировой порядок (x, y, z).
	min := vec.Vec3{X: -5, Y: 10, Z: 3}
	g := NewGrid(min, vec.Vec3{X: 0, Y: 15, Z: 8})

	p := g.World(2, 1, 3)
	assert.Equal(t, vec.Vec3{X: -2, Y: 12, Z: 4}, p, "World должен переставлять оси")

	y, z, x, ok := g.Local(p)
	assert.True(t, ok, "координата внутри бокса")
	assert.Equal(t, 2, y)
	assert.Equal(t, 1, z)
	assert.Equal(t, 3, x)

	_, _, _, ok = g.Local(vec.Vec3{X: 100, Y: 100, Z: 100})
	assert.False(t, ok, "координата вне бокса")
}

func TestGrid_RoundTrip(t *testing.T) {
	g := NewGrid(vec.Vec3{X: 1, Y: 2, Z: 3}, vec.Vec3{X: 4, Y: 5, Z: 6})
	sy, sz, sx := g.Dims()

	for y := 0; y < sy; y++ {
		for z := 0; z < sz; z++ {
			for x := 0; x < sx; x++ {
				ly, lz, lx, ok := g.Local(g.World(y, z, x))
				assert.True(t, ok)
				assert.Equal(t, [3]int{y, z, x}, [3]int{ly, lz, lx},
					"World и Local должны быть взаимно обратны")
			}
		}
	}
}
