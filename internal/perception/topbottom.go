package perception

import (
	"math"
	"sort"

	"github.com/annel0/voxel-perception/internal/world"
)

// TopBottomLabels — разметка списка блоков на верх/низ/остальное
type TopBottomLabels struct {
	Top     []world.VoxelBlock
	Bottom  []world.VoxelBlock
	Neither []world.VoxelBlock
}

// LabelTopBottomBlocks размечает блоки объекта: верхние — первые topPct%
// списка, отсортированного по (z, y, x) по убыванию, нижние — последние
// bottomPct%, остальные — Neither. Проценты по умолчанию: 15 и 25.
func LabelTopBottomBlocks(blocks []world.VoxelBlock, topPct, bottomPct int) TopBottomLabels {
	if topPct <= 0 {
		topPct = 15
	}
	if bottomPct <= 0 {
		bottomPct = 25
	}

	sorted := make([]world.VoxelBlock, len(blocks))
	copy(sorted, blocks)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Pos, sorted[j].Pos
		if a.Z != b.Z {
			return a.Z > b.Z
		}
		if a.Y != b.Y {
			return a.Y > b.Y
		}
		return a.X > b.X
	})

	n := len(sorted)
	cntTop := int(math.Ceil(float64(topPct) / 100 * float64(n)))
	cntBottom := int(math.Ceil(float64(bottomPct) / 100 * float64(n)))
	if cntTop+cntBottom > n {
		cntBottom = n - cntTop
	}

	return TopBottomLabels{
		Top:     sorted[:cntTop],
		Bottom:  sorted[n-cntBottom:],
		Neither: sorted[cntTop : n-cntBottom],
	}
}
