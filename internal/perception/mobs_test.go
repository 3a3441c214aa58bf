package perception

import (
	"testing"

	"github.com/annel0/voxel-perception/internal/config"
	"github.com/annel0/voxel-perception/internal/vec"
	"github.com/annel0/voxel-perception/internal/world"
	"github.com/stretchr/testify/assert"
)

func TestFindNearbyMobs(t *testing.T) {
	w := world.NewMemoryWorld()
	pigID := w.SpawnMob(90, vec.Vec3Float{X: 3, Y: 10, Z: 0})
	w.SpawnMob(92, vec.Vec3Float{X: 50, Y: 10, Z: 0})  // Корова далеко
	w.SpawnMob(999, vec.Vec3Float{X: 1, Y: 10, Z: 0})  // Тип вне таблицы

	e := NewEngine(w, config.Default())
	origin := vec.Vec3Float{X: 0, Y: 10, Z: 0}

	found := e.FindNearbyMobs(origin, 20)
	assert.Len(t, found, 1, "в радиусе только свинья с известным типом")
	assert.Len(t, found["pig"], 1)
	assert.Equal(t, pigID, found["pig"][0].ID)
	assert.Equal(t, vec.Vec3Float{X: 3, Y: 10, Z: 0}, found["pig"][0].Pos)
}

func TestFindNearbyMobs_NameFilter(t *testing.T) {
	w := world.NewMemoryWorld()
	w.SpawnMob(90, vec.Vec3Float{X: 1, Y: 0, Z: 0})
	w.SpawnMob(92, vec.Vec3Float{X: 2, Y: 0, Z: 0})

	e := NewEngine(w, config.Default())
	origin := vec.Vec3Float{}

	found := e.FindNearbyMobs(origin, 20, "cow")
	assert.Len(t, found, 1, "фильтр имён должен отсечь свинью")
	assert.Len(t, found["cow"], 1)

	assert.Empty(t, e.FindNearbyMobs(origin, 20, "wolf"), "нет мобов с таким именем")
}

func TestFindNearbyMobs_StrictRadius(t *testing.T) {
	w := world.NewMemoryWorld()
	w.SpawnMob(90, vec.Vec3Float{X: 20, Y: 0, Z: 0})

	e := NewEngine(w, config.Default())

	assert.Empty(t, e.FindNearbyMobs(vec.Vec3Float{}, 20),
		"моб ровно на границе радиуса исключается")
	assert.Len(t, e.FindNearbyMobs(vec.Vec3Float{}, 20.5), 1)
}
