package perception

import (
	"container/heap"
	"fmt"
	"math"
	"time"

	"github.com/annel0/voxel-perception/internal/logging"
	"github.com/annel0/voxel-perception/internal/vec"
	"github.com/annel0/voxel-perception/internal/world"
)

// Hole — замкнутая яма: воздушные ячейки котлована и материал засыпки,
// выведенный из кромки.
type Hole struct {
	Coords []vec.Vec3
	Fill   world.Block
}

const (
	holeCeilingMargin = 5  // Запас высоты над точкой отсчёта при скане поверхности
	holeScanDepth     = 64 // Глубина скана колонн вниз от точки отсчёта
)

// candidate — кандидат заметания: колонка окна и высота воздушной ячейки
type candidate struct {
	h, i, j int
}

// candidateHeap — min-куча кандидатов; порядок (h, i, j) фиксирует
// детерминированность заметания.
type candidateHeap []candidate

func (q candidateHeap) Len() int { return len(q) }
func (q candidateHeap) Less(a, b int) bool {
	if q[a].h != q[b].h {
		return q[a].h < q[b].h
	}
	if q[a].i != q[b].i {
		return q[a].i < q[b].i
	}
	return q[a].j < q[b].j
}
func (q candidateHeap) Swap(a, b int)       { q[a], q[b] = q[b], q[a] }
func (q *candidateHeap) Push(x interface{}) { *q = append(*q, x.(candidate)) }
func (q *candidateHeap) Pop() interface{} {
	old := *q
	n := len(old)
	c := old[n-1]
	*q = old[:n-1]
	return c
}

// vcell — посещённая ячейка заметания: колонка окна и высота
type vcell struct {
	i, y, j int
}

// holeSweep — состояние одного запроса поиска ям. Вся изменяемая часть
// алгоритма живёт здесь и умирает вместе с запросом.
type holeSweep struct {
	loc     vec.Vec3
	radius  int
	size    int
	ceiling int

	heightMap [][]int
	fillMap   [][]world.Block
	colHole   [][]int // Индекс последней ямы, принявшей колонку (-1 — нет)

	visited map[vcell]struct{}
	queue   candidateHeap

	holes  []holeAccum
	parent []int // Union-find по индексам ям; объединение при общей колонке
}

// holeAccum — накопитель одной принятой ямы
type holeAccum struct {
	coords []vec.Vec3
	fill   world.Block
}

// AllNearbyHoles находит замкнутые углубления возле loc в окне радиуса
// HoleRadius. Яма — это плоское дно, все кромки которого не ниже уровня
// засыпки; ямы, касающиеся границы окна, не возвращаются, поскольку их
// истинный размер не наблюдаем. Возвращаемые координаты — исключительно
// воздушные ячейки. Ошибка означает рассинхронизацию очереди и карты
// высот — нарушение инварианта алгоритма, а не свойство мира.
func (e *Engine) AllNearbyHoles(loc vec.Vec3) ([]Hole, error) {
	defer e.observe("all_nearby_holes", time.Now())

	radius := e.holeRadius
	size := radius*2 + 1

	s := &holeSweep{
		loc:     loc,
		radius:  radius,
		size:    size,
		ceiling: loc.Y + holeCeilingMargin,
		visited: make(map[vcell]struct{}),
	}

	e.buildHeightMap(s)
	if err := e.sweep(s); err != nil {
		return nil, err
	}

	holes := e.resolveHoles(s)
	holes = e.dropNonAir(holes)

	logging.Debug("AllNearbyHoles: найдено %d ям возле %v", len(holes), loc)
	return holes, nil
}

// buildHeightMap строит карту поверхности окна одним объёмным запросом:
// для каждой колонки — высота и (id, meta) первого сверху твёрдого блока,
// не являющегося подвижным, ячейкой точки отсчёта или ячейкой агента.
func (e *Engine) buildHeightMap(s *holeSweep) {
	floor := s.loc.Y - holeScanDepth
	min := vec.Vec3{X: s.loc.X - s.radius, Y: floor, Z: s.loc.Z - s.radius}
	max := vec.Vec3{X: s.loc.X + s.radius, Y: s.ceiling, Z: s.loc.Z + s.radius}
	g := e.accessor.GetBlocks(min, max)

	var agent vec.Vec3
	hasAgent := false
	if e.agentPos != nil {
		agent, hasAgent = e.agentPos()
	}

	s.heightMap = make([][]int, s.size)
	s.fillMap = make([][]world.Block, s.size)
	s.colHole = make([][]int, s.size)
	for i := 0; i < s.size; i++ {
		s.heightMap[i] = make([]int, s.size)
		s.fillMap[i] = make([]world.Block, s.size)
		s.colHole[i] = make([]int, s.size)
		for j := 0; j < s.size; j++ {
			s.colHole[i][j] = -1

			wx := s.loc.X - s.radius + i
			wz := s.loc.Z - s.radius + j

			height := floor - 1 // Поверхность ниже наблюдаемой глубины
			surface := e.defaultFill
			for y := s.ceiling; y >= floor; y-- {
				p := vec.Vec3{X: wx, Y: y, Z: wz}
				ly, lz, lx, ok := g.Local(p)
				if !ok {
					continue
				}
				b := g.At(ly, lz, lx)
				if b.IsAir() || e.mobile.has(b.ID) {
					continue
				}
				if p.Equals(s.loc) {
					continue
				}
				if hasAgent && p.Equals(agent) {
					continue
				}
				height = y
				surface = b
				break
			}

			s.heightMap[i][j] = height
			s.fillMap[i][j] = surface
			heap.Push(&s.queue, candidate{h: height + 1, i: i, j: j})
		}
	}
}

// sweep выполняет заметание снизу вверх: пока очередь не пуста, достаёт
// самого низкого кандидата, заливает его плоское дно и, если кромки не
// ниже уровня кандидата, принимает котлован как яму, поднимая дно на один
// блок (моделирует послойную засыпку). Ямы, делящие колонку, объединяются
// через union-find.
func (e *Engine) sweep(s *holeSweep) error {
	for s.queue.Len() > 0 {
		c := heap.Pop(&s.queue).(candidate)
		if _, ok := s.visited[vcell{i: c.i, y: c.h, j: c.j}]; ok {
			continue
		}
		if c.h > s.ceiling {
			continue
		}
		if c.h != s.heightMap[c.i][c.j]+1 {
			return fmt.Errorf(
				"рассинхронизация заметания: кандидат h=%d при карте высот %d в колонке (%d,%d)",
				c.h, s.heightMap[c.i][c.j], c.i, c.j)
		}

		members, minRim, rimFill, boundary := s.fillFloor(c, e.defaultFill)
		if boundary || minRim < c.h {
			continue // Открытый уступ или край окна — не яма
		}

		s.acceptHole(c.h, members, rimFill)
	}
	return nil
}

// fillFloor заливает плоское дно (4-связность, одна высота) от колонки
// кандидата. Возвращает колонки дна, минимальную высоту кромки, материал
// кромки и признак касания границы окна. Сосед вне окна означает, что
// истинный размер котлована не наблюдаем: такой регион заведомо
// отвергается.
func (s *holeSweep) fillFloor(c candidate, defaultFill world.Block) (members []candidate, minRim int, rimFill world.Block, boundary bool) {
	minRim = math.MaxInt
	rimFill = defaultFill

	floorHeight := s.heightMap[c.i][c.j]

	stack := []candidate{c}
	s.visited[vcell{i: c.i, y: c.h, j: c.j}] = struct{}{}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		members = append(members, cur)

		for _, d := range [4][2]int{{0, 1}, {0, -1}, {-1, 0}, {1, 0}} {
			ni, nj := cur.i+d[0], cur.j+d[1]
			if ni < 0 || nj < 0 || ni >= s.size || nj >= s.size {
				boundary = true
				continue
			}
			if s.heightMap[ni][nj] == floorHeight {
				v := vcell{i: ni, y: c.h, j: nj}
				if _, ok := s.visited[v]; !ok {
					s.visited[v] = struct{}{}
					stack = append(stack, candidate{h: c.h, i: ni, j: nj})
				}
			} else {
				// Кромка: ограничивает уровень засыпки и даёт материал
				if s.heightMap[ni][nj] < minRim {
					minRim = s.heightMap[ni][nj]
				}
				rimFill = s.fillMap[ni][nj]
			}
		}
	}
	return members, minRim, rimFill, boundary
}

// acceptHole регистрирует принятый котлован, поднимает дно его колонн и
// возвращает их в очередь кандидатами на один блок выше. Колонка, уже
// принадлежащая более ранней яме, объединяет обе ямы (новая становится
// представителем — её материал засыпки выигрывает).
func (s *holeSweep) acceptHole(h int, members []candidate, fill world.Block) {
	idx := len(s.holes)

	coords := make([]vec.Vec3, len(members))
	for n, m := range members {
		coords[n] = vec.Vec3{
			X: m.i - s.radius + s.loc.X,
			Y: h,
			Z: m.j - s.radius + s.loc.Z,
		}
	}
	s.holes = append(s.holes, holeAccum{coords: coords, fill: fill})
	s.parent = append(s.parent, idx)

	for _, m := range members {
		s.heightMap[m.i][m.j]++
		heap.Push(&s.queue, candidate{h: h + 1, i: m.i, j: m.j})

		if prev := s.colHole[m.i][m.j]; prev != -1 {
			s.union(prev, idx)
		}
		s.colHole[m.i][m.j] = idx
	}
}

// find возвращает представителя ямы с сжатием пути
func (s *holeSweep) find(k int) int {
	for s.parent[k] != k {
		s.parent[k] = s.parent[s.parent[k]]
		k = s.parent[k]
	}
	return k
}

// union подвешивает группу старой ямы под новую
func (s *holeSweep) union(old, cur int) {
	s.parent[s.find(old)] = s.find(cur)
}

// resolveHoles сводит union-find к финальному списку ям: координаты группы
// собираются у представителя, материал — представителя группы.
func (e *Engine) resolveHoles(s *holeSweep) []Hole {
	grouped := make(map[int][]vec.Vec3)
	for k := range s.holes {
		root := s.find(k)
		grouped[root] = append(grouped[root], s.holes[k].coords...)
	}

	var holes []Hole
	for k := range s.holes {
		if s.find(k) != k {
			continue
		}
		holes = append(holes, Hole{Coords: grouped[k], Fill: s.holes[k].fill})
	}
	return holes
}

// dropNonAir перезапрашивает координаты каждой ямы и выбрасывает ячейки,
// не являющиеся воздухом; опустевшие ямы отбрасываются. Страховка от
// артефактов заметания: наружу уходят только воздушные ячейки.
func (e *Engine) dropNonAir(holes []Hole) []Hole {
	result := holes[:0]
	for _, h := range holes {
		if len(h.Coords) == 0 {
			continue
		}
		min, max := boundingBox(h.Coords)
		g := e.accessor.GetBlocks(min, max)

		var air []vec.Vec3
		for _, p := range h.Coords {
			y, z, x, ok := g.Local(p)
			if ok && g.At(y, z, x).IsAir() {
				air = append(air, p)
			}
		}
		if len(air) > 0 {
			result = append(result, Hole{Coords: air, Fill: h.Fill})
		}
	}
	return result
}

// boundingBox возвращает включительный бокс набора координат
func boundingBox(coords []vec.Vec3) (min, max vec.Vec3) {
	min, max = coords[0], coords[0]
	for _, p := range coords[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.Z < min.Z {
			min.Z = p.Z
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
		if p.Z > max.Z {
			max.Z = p.Z
		}
	}
	return min, max
}
