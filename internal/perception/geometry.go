package perception

import (
	"sort"
	"time"

	"github.com/annel0/voxel-perception/internal/entity"
	"github.com/annel0/voxel-perception/internal/vec"
)

// Геометрические эвристики отношений "между" и "внутри".
// Все тесты чисто геометрические: мир не запрашивается, работа идёт
// по координатам, извлечённым из ссылок на сущности. Ссылка без
// извлекаемых координат деградирует в false/none, а не в ошибку.

// axisVal возвращает компоненту координаты по индексу оси (0=X, 1=Y, 2=Z)
func axisVal(p vec.Vec3, axis int) int {
	switch axis {
	case 0:
		return p.X
	case 1:
		return p.Y
	default:
		return p.Z
	}
}

// fatten "раздувает" набор точек: для каждой оси крайняя точка сдвигается
// наружу на fat вдоль этой оси. Одиночная точка остаётся как есть.
// Раздувание прощает неточную геометрию: "между двумя стенами" не должно
// требовать попадания строго в выпуклую оболочку их блоков.
func fatten(locs []vec.Vec3, fat float64) []vec.Vec3Float {
	if len(locs) == 1 {
		return []vec.Vec3Float{locs[0].ToFloat()}
	}

	out := make([]vec.Vec3Float, 0, 6)
	for axis := 0; axis < 3; axis++ {
		maxP := locs[0]
		for _, p := range locs[1:] {
			if axisVal(p, axis) > axisVal(maxP, axis) {
				maxP = p
			}
		}
		f := maxP.ToFloat()
		out = append(out, f.WithAxis(axis, f.Axis(axis)+fat))
	}
	for axis := 0; axis < 3; axis++ {
		minP := locs[0]
		for _, p := range locs[1:] {
			if axisVal(p, axis) < axisVal(minP, axis) {
				minP = p
			}
		}
		f := minP.ToFloat()
		out = append(out, f.WithAxis(axis, f.Axis(axis)-fat))
	}
	return out
}

// CheckBetween эвристически проверяет, находится ли e0 между e1 и e2:
// центроид e0 должен лежать в выпуклой оболочке объединения раздутых
// точек e1 и e2. Масштаб раздувания — fatScale от расстояния между
// центроидами e1 и e2.
func CheckBetween(e0, e1, e2 entity.Ref, fatScale float64) bool {
	locs0, ok := entity.LocsOf(e0)
	if !ok {
		return false
	}
	locs1, ok := entity.LocsOf(e1)
	if !ok {
		return false
	}
	locs2, ok := entity.LocsOf(e2)
	if !ok {
		return false
	}

	fat := fatScale * vec.Centroid(locs1).DistanceTo(vec.Centroid(locs2))
	points := append(fatten(locs1, fat), fatten(locs2, fat)...)
	return InHull(points, vec.Centroid(locs0))
}

// CheckBetween — вариант с настроенным FatScale движка
func (e *Engine) CheckBetween(e0, e1, e2 entity.Ref) bool {
	defer e.observe("check_between", time.Now())
	return CheckBetween(e0, e1, e2, e.fatScale)
}

// FindBetween возвращает точку между двумя сущностями — середину отрезка
// между их центроидами. Достижимость точки не проверяется.
func FindBetween(e0, e1 entity.Ref) (vec.Vec3Float, bool) {
	locs0, ok := entity.LocsOf(e0)
	if !ok {
		return vec.Vec3Float{}, false
	}
	locs1, ok := entity.LocsOf(e1)
	if !ok {
		return vec.Vec3Float{}, false
	}
	return vec.Centroid(locs0).Add(vec.Centroid(locs1)).Mul(0.5), true
}

// CheckInside эвристически проверяет, находится ли e0 внутри e1: есть ли у
// e0 координата, которую в каком-нибудь 2D-срезе точки e1 строго окружают
// по обеим оставшимся осям. Эвристика распознаёт кольца и открытые
// цилиндры, но не "диагональные" кольца.
func CheckInside(e0, e1 entity.Ref) bool {
	locs0, ok := entity.LocsOf(e0)
	if !ok {
		return false
	}
	locs1, ok := entity.LocsOf(e1)
	if !ok {
		return false
	}

	for _, b := range locs0 {
		for axis := 0; axis < 3; axis++ {
			if bracketedInSlice(b, axis, locs1) {
				return true
			}
		}
	}
	return false
}

// bracketedInSlice проверяет строгое окружение точки b точками locs в
// 2D-срезе, зафиксированном по оси axis: вдоль каждой из двух оставшихся
// осей должны найтись коллинеарные точки строго по обе стороны от b.
func bracketedInSlice(b vec.Vec3, axis int, locs []vec.Vec3) bool {
	var coplanar []vec.Vec3
	for _, c := range locs {
		if axisVal(c, axis) == axisVal(b, axis) {
			coplanar = append(coplanar, c)
		}
	}

	for j := 0; j < 2; j++ {
		fixed := (axis + 2*j - 1 + 3) % 3
		toCheck := (axis + 1 - 2*j + 3) % 3

		lo, hi := 0, 0
		found := false
		for _, c := range coplanar {
			if axisVal(c, fixed) != axisVal(b, fixed) {
				continue
			}
			v := axisVal(c, toCheck)
			if !found {
				lo, hi = v, v
				found = true
				continue
			}
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		if !found {
			return false
		}
		if hi <= axisVal(b, toCheck) || lo >= axisVal(b, toCheck) {
			return false
		}
	}
	return true
}

// FindInside перебирает ограничивающий бокс сущности и возвращает ячейки,
// прошедшие CheckInside, отсортированные по расстоянию до округлённого
// центроида.
func FindInside(e entity.Ref) []vec.Vec3 {
	locs, ok := entity.LocsOf(e)
	if !ok {
		return nil
	}

	center := vec.Centroid(locs).Round()
	min, max := boundingBox(locs)

	var inside []vec.Vec3
	for x := min.X; x <= max.X; x++ {
		for y := min.Y; y <= max.Y; y++ {
			for z := min.Z; z <= max.Z; z++ {
				p := vec.Vec3{X: x, Y: y, Z: z}
				if CheckInside(entity.Point(p), e) {
					inside = append(inside, p)
				}
			}
		}
	}

	sort.SliceStable(inside, func(i, j int) bool {
		return inside[i].DistanceTo(center) < inside[j].DistanceTo(center)
	})
	return inside
}
