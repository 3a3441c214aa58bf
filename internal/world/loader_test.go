package world

import (
	"path/filepath"
	"testing"

	"github.com/annel0/voxel-perception/internal/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixture_RoundTrip(t *testing.T) {
	for _, name := range []string{"world.yaml", "world.yaml.gz"} {
		t.Run(name, func(t *testing.T) {
			w := NewMemoryWorld()
			w.SetBlock(vec.Vec3{X: 1, Y: 10, Z: -3}, Block{ID: StoneID, Meta: 1})
			w.SetBlock(vec.Vec3{X: -4, Y: 12, Z: 7}, Block{ID: PlanksID})
			w.SpawnMob(90, vec.Vec3Float{X: 1.5, Y: 11, Z: -3.5})

			path := filepath.Join(t.TempDir(), name)
			min := vec.Vec3{X: -10, Y: 0, Z: -10}
			max := vec.Vec3{X: 10, Y: 20, Z: 10}
			require.NoError(t, SaveFixture(path, w, min, max))

			loaded, err := LoadFixture(path)
			require.NoError(t, err)

			assert.Equal(t, Block{ID: StoneID, Meta: 1},
				loaded.GetBlock(vec.Vec3{X: 1, Y: 10, Z: -3}), "блок должен пережить дамп")
			assert.Equal(t, PlanksID,
				loaded.GetBlock(vec.Vec3{X: -4, Y: 12, Z: 7}).ID)

			mobs := loaded.GetMobs()
			require.Len(t, mobs, 1, "моб должен пережить дамп")
			assert.Equal(t, MobTypeID(90), mobs[0].Type)
			assert.Equal(t, vec.Vec3Float{X: 1.5, Y: 11, Z: -3.5}, mobs[0].Pos)
		})
	}
}

func TestLoadFixture_Missing(t *testing.T) {
	_, err := LoadFixture("/nonexistent/world.yaml")
	assert.Error(t, err, "несуществующий дамп должен давать ошибку")
}
