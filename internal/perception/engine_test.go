package perception

import (
	"testing"

	"github.com/annel0/voxel-perception/internal/config"
	"github.com/annel0/voxel-perception/internal/world"
	"github.com/stretchr/testify/assert"
)

func TestNewEngine_DefaultConfig(t *testing.T) {
	e := NewEngine(world.NewMemoryWorld(), nil)

	assert.Equal(t, 20, e.objectRadius, "nil конфигурация заменяется дефолтной")
	assert.Equal(t, 15, e.holeRadius)
	assert.Equal(t, world.BlockID(2), e.defaultFill.ID)
}

func TestEngine_Interesting(t *testing.T) {
	e := NewEngine(world.NewMemoryWorld(), config.Default())

	assert.False(t, e.interesting(world.AirID), "воздух скучен")
	assert.False(t, e.interesting(world.StoneID), "камень скучен")
	assert.True(t, e.interesting(world.PlanksID), "доски примечательны")
	assert.True(t, e.interesting(world.GoldOreID), "золото примечательно")
}

func TestBlockSet(t *testing.T) {
	s := newBlockSet([]int{1, 5, 9})

	assert.True(t, s.has(1))
	assert.True(t, s.has(9))
	assert.False(t, s.has(2))
	assert.False(t, newBlockSet(nil).has(0))
}
