package perception

import (
	"github.com/annel0/voxel-perception/internal/world"
)

// accessibleInterestingMask строит булеву маску достижимых примечательных
// блоков в сетке. Блок попадает в маску, если он примечателен (вне множества
// скучных) И существует путь от стартовой ячейки только через проходимые или
// примечательные блоки. Примечательный блок, наглухо замурованный в скучном
// ландшафте, в маску не попадает: о нём нельзя отчитываться как об объекте.
func (e *Engine) accessibleInterestingMask(g *world.Grid, start cell) ([]bool, dims) {
	sy, sz, sx := g.Dims()
	d := dims{sy: sy, sz: sz, sx: sx}

	admit := func(c cell) bool {
		id := g.At(c.y, c.z, c.x).ID
		return e.passable.has(id) || e.interesting(id)
	}

	visited, _ := floodFill(d, start, admit, adjacency6)

	// Маска = посещённые ∧ примечательные
	mask := make([]bool, d.volume())
	for i := range visited {
		if !visited[i] {
			continue
		}
		c := cellAt(d, i)
		if e.interesting(g.At(c.y, c.z, c.x).ID) {
			mask[i] = true
		}
	}
	return mask, d
}

// cellAt восстанавливает ячейку по плоскому индексу
func cellAt(d dims, i int) cell {
	x := i % d.sx
	zy := i / d.sx
	return cell{y: zy / d.sz, z: zy % d.sz, x: x}
}
