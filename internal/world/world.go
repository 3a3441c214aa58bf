package world

import (
	"sort"
	"sync"

	"github.com/annel0/voxel-perception/internal/vec"
)

// MemoryWorld — чанковый снапшот мира в памяти, реализующий Accessor.
// Пропущенные чанки либо генерируются на лету (если задан генератор),
// либо считаются воздухом.
type MemoryWorld struct {
	mu        sync.RWMutex
	chunks    map[vec.Vec3]*Chunk
	generator *Generator
	mobs      map[uint64]Mob
	nextMobID uint64
}

// NewMemoryWorld создаёт пустой мир без генератора
func NewMemoryWorld() *MemoryWorld {
	return &MemoryWorld{
		chunks:    make(map[vec.Vec3]*Chunk),
		mobs:      make(map[uint64]Mob),
		nextMobID: 1000, // Начинаем с 1000, чтобы избежать конфликтов с малыми ID
	}
}

// NewGeneratedWorld создаёт мир, дозаполняемый генератором ландшафта
func NewGeneratedWorld(gen *Generator) *MemoryWorld {
	w := NewMemoryWorld()
	w.generator = gen
	return w
}

// chunkAt возвращает чанк по координатам чанка.
// При create == true отсутствующий чанк создаётся (через генератор, если он есть).
func (w *MemoryWorld) chunkAt(coords vec.Vec3, create bool) *Chunk {
	w.mu.RLock()
	c, ok := w.chunks[coords]
	w.mu.RUnlock()
	if ok || !create {
		return c
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	// Повторная проверка: чанк мог появиться между блокировками
	if c, ok = w.chunks[coords]; ok {
		return c
	}

	if w.generator != nil {
		c = w.generator.GenerateChunk(coords)
	} else {
		c = NewChunk(coords)
	}
	w.chunks[coords] = c
	return c
}

// SetBlock устанавливает блок по мировым координатам
func (w *MemoryWorld) SetBlock(pos vec.Vec3, b Block) {
	c := w.chunkAt(pos.ToChunkCoords(), true)
	c.SetBlock(pos.LocalInChunk(), b)
}

// GetBlock возвращает блок по мировым координатам
func (w *MemoryWorld) GetBlock(pos vec.Vec3) Block {
	c := w.chunkAt(pos.ToChunkCoords(), w.generator != nil)
	if c == nil {
		return Block{}
	}
	return c.GetBlock(pos.LocalInChunk())
}

// Fill заполняет включительный бокс одним блоком
func (w *MemoryWorld) Fill(min, max vec.Vec3, b Block) {
	for y := min.Y; y <= max.Y; y++ {
		for z := min.Z; z <= max.Z; z++ {
			for x := min.X; x <= max.X; x++ {
				w.SetBlock(vec.Vec3{X: x, Y: y, Z: z}, b)
			}
		}
	}
}

// GetBlocks возвращает плотную сетку блоков по включительному боксу.
// Порядок хранения (y, z, x) — см. Grid.
func (w *MemoryWorld) GetBlocks(min, max vec.Vec3) *Grid {
	g := NewGrid(min, max)
	sy, sz, sx := g.Dims()
	for y := 0; y < sy; y++ {
		for z := 0; z < sz; z++ {
			for x := 0; x < sx; x++ {
				g.Set(y, z, x, w.GetBlock(g.World(y, z, x)))
			}
		}
	}
	return g
}

// SpawnMob добавляет моба в мир и возвращает его идентификатор
func (w *MemoryWorld) SpawnMob(mobType MobTypeID, pos vec.Vec3Float) uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextMobID
	w.nextMobID++
	w.mobs[id] = Mob{ID: id, Type: mobType, Pos: pos}
	return id
}

// RemoveMob удаляет моба по идентификатору
func (w *MemoryWorld) RemoveMob(id uint64) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.mobs[id]; !ok {
		return false
	}
	delete(w.mobs, id)
	return true
}

// GetMobs возвращает всех мобов в детерминированном порядке (по ID)
func (w *MemoryWorld) GetMobs() []Mob {
	w.mu.RLock()
	defer w.mu.RUnlock()

	mobs := make([]Mob, 0, len(w.mobs))
	for _, m := range w.mobs {
		mobs = append(mobs, m)
	}
	sort.Slice(mobs, func(i, j int) bool { return mobs[i].ID < mobs[j].ID })
	return mobs
}
