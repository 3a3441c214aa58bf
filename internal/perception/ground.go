package perception

import (
	"sort"
	"time"

	"github.com/annel0/voxel-perception/internal/vec"
)

// Эвристика высоты земли: ищет в каждой колонке первый "просвет" — высоту,
// вокруг которой в вертикальном окне нет блоков грунта, — и сглаживает
// полученную карту двумерным медианным фильтром. Может обманываться
// висящей кучей земли или крупным закопанным объектом.

const (
	groundYFilter  = 5 // Высота вертикального окна поиска просвета
	groundXZFilter = 5 // Размер окна медианного сглаживания
)

// GroundHeight возвращает карту высоты земли (2·radius+1)² вокруг pos,
// индексированную [dx][dz] от северо-западного угла окна.
func (e *Engine) GroundHeight(pos vec.Vec3, radius int) [][]int {
	defer e.observe("ground_height", time.Now())

	size := radius*2 + 1
	top := pos.Y + 80
	min := vec.Vec3{X: pos.X - radius, Y: 0, Z: pos.Z - radius}
	max := vec.Vec3{X: pos.X + radius, Y: top, Z: pos.Z + radius}
	g := e.accessor.GetBlocks(min, max)

	sy, _, _ := g.Dims()
	half := groundYFilter / 2

	heights := make([][]int, size)
	for i := range heights {
		heights[i] = make([]int, size)
		for j := range heights[i] {
			// Число блоков грунта в вертикальном окне, центрированном на y
			counts := make([]int, sy)
			for y := 0; y < sy; y++ {
				if e.ground.has(g.At(y, j, i).ID) {
					for w := y - half; w <= y+half; w++ {
						if w >= 0 && w < sy {
							counts[w]++
						}
					}
				}
			}
			for y := 0; y < sy; y++ {
				if counts[y] == 0 {
					heights[i][j] = y
					break
				}
			}
		}
	}

	return medianFilter2D(heights, groundXZFilter, half)
}

// medianFilter2D сглаживает карту медианой окна size×size (края
// достраиваются ближайшими значениями) и вычитает offset.
func medianFilter2D(m [][]int, size, offset int) [][]int {
	n := len(m)
	half := size / 2

	clamp := func(v int) int {
		if v < 0 {
			return 0
		}
		if v >= n {
			return n - 1
		}
		return v
	}

	out := make([][]int, n)
	window := make([]int, 0, size*size)
	for i := 0; i < n; i++ {
		out[i] = make([]int, n)
		for j := 0; j < n; j++ {
			window = window[:0]
			for di := -half; di <= half; di++ {
				for dj := -half; dj <= half; dj++ {
					window = append(window, m[clamp(i+di)][clamp(j+dj)])
				}
			}
			sort.Ints(window)
			out[i][j] = window[len(window)/2] - offset
		}
	}
	return out
}
