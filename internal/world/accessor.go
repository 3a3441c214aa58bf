package world

import (
	"github.com/annel0/voxel-perception/internal/vec"
)

// Accessor — интерфейс доступа движка восприятия к снапшоту мира.
// GetBlocks возвращает плотную сетку блоков по включительному боксу,
// GetMobs — список мобов. Реализация отвечает за консистентность снапшота;
// движок никогда не мутирует мир.
type Accessor interface {
	GetBlocks(min, max vec.Vec3) *Grid
	GetMobs() []Mob
}
