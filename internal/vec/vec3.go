package vec

import "math"

// Vec3 представляет трехмерный вектор с целочисленными координатами блока
type Vec3 struct {
	X int
	Y int
	Z int
}

// Add складывает два вектора
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Sub вычитает вектор
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
	}
}

// Equals проверяет равенство векторов
func (v Vec3) Equals(other Vec3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

// ToChunkCoords преобразует глобальные координаты блока в координаты чанка
func (v Vec3) ToChunkCoords() Vec3 {
	return Vec3{X: v.X >> 4, Y: v.Y >> 4, Z: v.Z >> 4} // Деление на 16
}

// LocalInChunk возвращает локальные координаты внутри чанка
func (v Vec3) LocalInChunk() Vec3 {
	return Vec3{X: v.X & 0xF, Y: v.Y & 0xF, Z: v.Z & 0xF} // Модуль 16
}

// ToFloat преобразует в вектор с плавающей точкой
func (v Vec3) ToFloat() Vec3Float {
	return Vec3Float{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

// DistanceTo вычисляет евклидово расстояние до другой точки
func (v Vec3) DistanceTo(other Vec3) float64 {
	dx := float64(v.X - other.X)
	dy := float64(v.Y - other.Y)
	dz := float64(v.Z - other.Z)
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// ManhattanDistanceTo вычисляет манхэттенское расстояние до другой точки
func (v Vec3) ManhattanDistanceTo(other Vec3) int {
	return absInt(v.X-other.X) + absInt(v.Y-other.Y) + absInt(v.Z-other.Z)
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// Centroid возвращает среднюю координату набора точек.
// Для пустого набора возвращает нулевой вектор.
func Centroid(points []Vec3) Vec3Float {
	if len(points) == 0 {
		return Vec3Float{}
	}
	var sx, sy, sz float64
	for _, p := range points {
		sx += float64(p.X)
		sy += float64(p.Y)
		sz += float64(p.Z)
	}
	n := float64(len(points))
	return Vec3Float{X: sx / n, Y: sy / n, Z: sz / n}
}
