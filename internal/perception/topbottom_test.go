package perception

import (
	"testing"

	"github.com/annel0/voxel-perception/internal/vec"
	"github.com/annel0/voxel-perception/internal/world"
	"github.com/stretchr/testify/assert"
)

func column(n int) []world.VoxelBlock {
	blocks := make([]world.VoxelBlock, n)
	for i := range blocks {
		blocks[i] = world.VoxelBlock{
			Pos:   vec.Vec3{X: 0, Y: 0, Z: i},
			Block: world.Block{ID: world.PlanksID},
		}
	}
	return blocks
}

func TestLabelTopBottomBlocks(t *testing.T) {
	labels := LabelTopBottomBlocks(column(10), 0, 0)

	// Дефолтные проценты: 15% верх, 25% низ, с округлением вверх
	assert.Len(t, labels.Top, 2)
	assert.Len(t, labels.Bottom, 3)
	assert.Len(t, labels.Neither, 5)

	assert.Equal(t, 9, labels.Top[0].Pos.Z, "верх начинается с наибольшего Z")
	assert.Equal(t, 0, labels.Bottom[len(labels.Bottom)-1].Pos.Z, "низ кончается наименьшим Z")
}

func TestLabelTopBottomBlocks_Custom(t *testing.T) {
	labels := LabelTopBottomBlocks(column(10), 50, 50)

	assert.Len(t, labels.Top, 5)
	assert.Len(t, labels.Bottom, 5)
	assert.Empty(t, labels.Neither)
}

func TestLabelTopBottomBlocks_Small(t *testing.T) {
	// Один блок: проценты с округлением вверх не должны дать пересечение
	labels := LabelTopBottomBlocks(column(1), 0, 0)

	assert.Len(t, labels.Top, 1)
	assert.Empty(t, labels.Bottom)
	assert.Empty(t, labels.Neither)
}
