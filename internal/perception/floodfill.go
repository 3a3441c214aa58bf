package perception

// Пакет perception реализует движок пространственного восприятия:
// превращает запросы блоков и мобов к снапшоту мира в структурированные
// факты — связные компоненты примечательных блоков, замкнутые ямы под
// засыпку и геометрические отношения ("между", "внутри").

// cell — локальный индекс в сетке запроса, в порядке хранения (y, z, x)
type cell struct {
	y, z, x int
}

// add возвращает сумму индексов
func (c cell) add(o cell) cell {
	return cell{y: c.y + o.y, z: c.z + o.z, x: c.x + o.x}
}

// adjacency6 — смещения 6-связности (грани)
var adjacency6 = buildAdjacency(false)

// adjacency26 — смещения 26-связности (грани, рёбра, углы)
var adjacency26 = buildAdjacency(true)

func buildAdjacency(diagonal bool) []cell {
	var offsets []cell
	for dy := -1; dy <= 1; dy++ {
		for dz := -1; dz <= 1; dz++ {
			for dx := -1; dx <= 1; dx++ {
				if dy == 0 && dz == 0 && dx == 0 {
					continue
				}
				if !diagonal && absInt(dy)+absInt(dz)+absInt(dx) != 1 {
					continue
				}
				offsets = append(offsets, cell{y: dy, z: dz, x: dx})
			}
		}
	}
	return offsets
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// dims — размеры локального окна в порядке (y, z, x)
type dims struct {
	sy, sz, sx int
}

func (d dims) contains(c cell) bool {
	return c.y >= 0 && c.y < d.sy && c.z >= 0 && c.z < d.sz && c.x >= 0 && c.x < d.sx
}

func (d dims) volume() int {
	return d.sy * d.sz * d.sx
}

func (d dims) index(c cell) int {
	return (c.y*d.sz+c.z)*d.sx + c.x
}

// floodFill обходит решётку в глубину от стартовой ячейки, переходя только
// в ячейки, принятые предикатом admit. Возвращает битовую карту посещённых
// принятых ячеек и их список в порядке обхода. Каждый сосед проверяется на
// границы окна; выход за границы не заворачивается. Обход ведётся на явном
// стеке: глубина рекурсии не зависит от размера окна.
func floodFill(d dims, start cell, admit func(cell) bool, adjacency []cell) ([]bool, []cell) {
	visited := make([]bool, d.volume())
	var admitted []cell

	if !d.contains(start) || !admit(start) {
		return visited, admitted
	}

	stack := []cell{start}
	visited[d.index(start)] = true
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		admitted = append(admitted, cur)

		for _, off := range adjacency {
			next := cur.add(off)
			if !d.contains(next) || visited[d.index(next)] {
				continue
			}
			if !admit(next) {
				continue
			}
			visited[d.index(next)] = true
			stack = append(stack, next)
		}
	}

	return visited, admitted
}
