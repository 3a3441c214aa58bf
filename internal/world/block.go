package world

import (
	"github.com/annel0/voxel-perception/internal/vec"
)

// BlockID представляет идентификатор типа блока
type BlockID uint16

// Известные идентификаторы блоков
const (
	AirID     BlockID = 0
	StoneID   BlockID = 1
	GrassID   BlockID = 2
	DirtID    BlockID = 3
	PlanksID  BlockID = 5
	BedrockID BlockID = 7
	WaterID   BlockID = 8
	SandID    BlockID = 12
	GoldOreID BlockID = 14
	IronOreID BlockID = 15
	CoalOreID BlockID = 16
	LogID     BlockID = 17
	LeavesID  BlockID = 18
	FlowerID  BlockID = 37
)

// Block представляет собой блок игрового мира: тип и метаданные
type Block struct {
	ID   BlockID // Идентификатор типа блока
	Meta uint8   // Метаданные блока (вариант, ориентация)
}

// IsAir возвращает true для пустого блока
func (b Block) IsAir() bool {
	return b.ID == AirID
}

// VoxelBlock связывает блок с его мировой координатой
type VoxelBlock struct {
	Pos   vec.Vec3
	Block Block
}

// MobTypeID представляет тип моба
type MobTypeID uint16

// Mob представляет подвижную сущность, видимую движку восприятия
type Mob struct {
	ID   uint64        // Уникальный идентификатор сущности
	Type MobTypeID     // Тип моба (ключ таблицы имён)
	Pos  vec.Vec3Float // Позиция в мире
}
