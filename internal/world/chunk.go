package world

import (
	"sync"

	"github.com/annel0/voxel-perception/internal/vec"
)

// ChunkSize размер чанка по каждой оси
const ChunkSize = 16

// Chunk представляет кубический участок мира 16x16x16 блоков
type Chunk struct {
	Coords vec.Vec3 // Координаты чанка в мире

	// Blocks[x][y][z] — локальные координаты внутри чанка
	Blocks [ChunkSize][ChunkSize][ChunkSize]Block

	Mu sync.RWMutex // Мьютекс для безопасного доступа
}

// NewChunk создаёт новый чанк с указанными координатами
func NewChunk(coords vec.Vec3) *Chunk {
	return &Chunk{Coords: coords}
}

// GetBlock возвращает блок по локальным координатам
func (c *Chunk) GetBlock(local vec.Vec3) Block {
	c.Mu.RLock()
	defer c.Mu.RUnlock()

	return c.Blocks[local.X][local.Y][local.Z]
}

// SetBlock устанавливает блок по локальным координатам
func (c *Chunk) SetBlock(local vec.Vec3, b Block) {
	c.Mu.Lock()
	defer c.Mu.Unlock()

	c.Blocks[local.X][local.Y][local.Z] = b
}
