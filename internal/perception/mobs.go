package perception

import (
	"time"

	"github.com/annel0/voxel-perception/internal/vec"
)

// MobSighting — найденный моб: идентификатор сущности и позиция
type MobSighting struct {
	ID  uint64
	Pos vec.Vec3Float
}

// FindNearbyMobs возвращает мобов в евклидовом радиусе radius от pos,
// сгруппированных по имени из настроенной таблицы типов. Если передан
// список имён, возвращаются только мобы с этими именами. Мобы с типом
// вне таблицы пропускаются.
func (e *Engine) FindNearbyMobs(pos vec.Vec3Float, radius float64, names ...string) map[string][]MobSighting {
	defer e.observe("find_nearby_mobs", time.Now())

	var filter map[string]struct{}
	if len(names) > 0 {
		filter = make(map[string]struct{}, len(names))
		for _, n := range names {
			filter[n] = struct{}{}
		}
	}

	found := make(map[string][]MobSighting)
	for _, m := range e.accessor.GetMobs() {
		if m.Pos.DistanceTo(pos) >= radius {
			continue
		}
		name, ok := e.mobNames[m.Type]
		if !ok {
			continue
		}
		if filter != nil {
			if _, ok := filter[name]; !ok {
				continue
			}
		}
		found[name] = append(found[name], MobSighting{ID: m.ID, Pos: m.Pos})
	}
	return found
}
