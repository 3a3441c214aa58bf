package perception

// connectedComponents разбивает булеву маску на максимальные 26-связные
// компоненты. Решётка сканируется во вложенном порядке (y, z, x); каждая
// непосещённая истинная ячейка порождает заливку, открывающую ровно одну
// компоненту. Ячейки компоненты перечисляются в порядке обхода заливки,
// поэтому результат детерминирован для фиксированной маски.
// Пустая маска даёт пустой список.
func connectedComponents(d dims, mask []bool) [][]cell {
	visited := make([]bool, d.volume())
	var components [][]cell

	admit := func(c cell) bool {
		return mask[d.index(c)]
	}

	for y := 0; y < d.sy; y++ {
		for z := 0; z < d.sz; z++ {
			for x := 0; x < d.sx; x++ {
				c := cell{y: y, z: z, x: x}
				i := d.index(c)
				if visited[i] {
					continue
				}
				visited[i] = true
				if !mask[i] {
					continue
				}

				// Найдена новая компонента
				filled, members := floodFill(d, c, admit, adjacency26)
				for j, f := range filled {
					if f {
						visited[j] = true
					}
				}
				components = append(components, members)
			}
		}
	}

	return components
}
