package vec

import (
	"math"
	"testing"
)

// TestVec3_ChunkCoords тестирует перевод мировых координат в чанковые
func TestVec3_ChunkCoords(t *testing.T) {
	cases := []struct {
		pos   Vec3
		chunk Vec3
		local Vec3
	}{
		{Vec3{X: 0, Y: 0, Z: 0}, Vec3{X: 0, Y: 0, Z: 0}, Vec3{X: 0, Y: 0, Z: 0}},
		{Vec3{X: 15, Y: 15, Z: 15}, Vec3{X: 0, Y: 0, Z: 0}, Vec3{X: 15, Y: 15, Z: 15}},
		{Vec3{X: 16, Y: 32, Z: 17}, Vec3{X: 1, Y: 2, Z: 1}, Vec3{X: 0, Y: 0, Z: 1}},
		// Отрицательные координаты: деление с округлением вниз
		{Vec3{X: -1, Y: -16, Z: -17}, Vec3{X: -1, Y: -1, Z: -2}, Vec3{X: 15, Y: 0, Z: 15}},
	}

	for _, c := range cases {
		if got := c.pos.ToChunkCoords(); !got.Equals(c.chunk) {
			t.Errorf("ToChunkCoords(%v) = %v, ожидалось %v", c.pos, got, c.chunk)
		}
		if got := c.pos.LocalInChunk(); !got.Equals(c.local) {
			t.Errorf("LocalInChunk(%v) = %v, ожидалось %v", c.pos, got, c.local)
		}
	}
}

// TestVec3_Distances тестирует метрики расстояний
func TestVec3_Distances(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: 4, Y: -2, Z: 3}

	if got := a.ManhattanDistanceTo(b); got != 7 {
		t.Errorf("ManhattanDistanceTo = %d, ожидалось 7", got)
	}
	if got := a.DistanceTo(b); math.Abs(got-5) > 1e-9 {
		t.Errorf("DistanceTo = %f, ожидалось 5", got)
	}
}

// TestCentroid тестирует вычисление средней координаты
func TestCentroid(t *testing.T) {
	points := []Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 2, Y: 4, Z: 6},
	}
	c := Centroid(points)
	if c.X != 1 || c.Y != 2 || c.Z != 3 {
		t.Errorf("Centroid = %v, ожидалось (1, 2, 3)", c)
	}

	// Пустой набор не должен паниковать
	empty := Centroid(nil)
	if empty.X != 0 || empty.Y != 0 || empty.Z != 0 {
		t.Errorf("Centroid(nil) = %v, ожидался нулевой вектор", empty)
	}
}

// TestVec3Float_Axis тестирует доступ к компонентам по индексу оси
func TestVec3Float_Axis(t *testing.T) {
	v := Vec3Float{X: 1, Y: 2, Z: 3}

	for i, want := range []float64{1, 2, 3} {
		if got := v.Axis(i); got != want {
			t.Errorf("Axis(%d) = %f, ожидалось %f", i, got, want)
		}
	}

	w := v.WithAxis(1, 9)
	if w.Y != 9 || v.Y != 2 {
		t.Errorf("WithAxis должен возвращать копию: w=%v, v=%v", w, v)
	}
}

// TestVec3Float_Round тестирует округление к блоку
func TestVec3Float_Round(t *testing.T) {
	v := Vec3Float{X: 1.4, Y: -1.6, Z: 2.5}
	r := v.Round()
	want := Vec3{X: 1, Y: -2, Z: 3}
	if !r.Equals(want) {
		t.Errorf("Round(%v) = %v, ожидалось %v", v, r, want)
	}
}
