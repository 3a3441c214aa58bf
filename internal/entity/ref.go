package entity

import (
	"github.com/annel0/voxel-perception/internal/vec"
	"github.com/annel0/voxel-perception/internal/world"
)

// Ref — непрозрачная ссылка на сущность для геометрических эвристик.
// Единственная способность — выдать список занимаемых координат.
// Пустой список означает, что сущности нельзя приписать геометрию:
// эвристики деградируют в false/none, а не в ошибку.
type Ref interface {
	Locs() []vec.Vec3
}

// Point — сущность из одной координаты (например, цель команды)
type Point vec.Vec3

// Locs возвращает единственную координату точки
func (p Point) Locs() []vec.Vec3 {
	return []vec.Vec3{vec.Vec3(p)}
}

// Blocks — сущность из набора блоков (компонента, постройка)
type Blocks []vec.Vec3

// Locs возвращает координаты блоков сущности
func (b Blocks) Locs() []vec.Vec3 {
	return []vec.Vec3(b)
}

// MobRef — ссылка на моба; позиция округляется до блока
type MobRef struct {
	Mob world.Mob
}

// Locs возвращает координату блока, занимаемого мобом
func (m MobRef) Locs() []vec.Vec3 {
	return []vec.Vec3{m.Mob.Pos.Round()}
}

// LocsOf извлекает координаты из ссылки; (nil, false) для nil-ссылки
// и ссылок без геометрии.
func LocsOf(ref Ref) ([]vec.Vec3, bool) {
	if ref == nil {
		return nil, false
	}
	locs := ref.Locs()
	if len(locs) == 0 {
		return nil, false
	}
	return locs, true
}
