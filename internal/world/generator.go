package world

import (
	"math/rand"

	"github.com/annel0/voxel-perception/internal/util"
	"github.com/annel0/voxel-perception/internal/vec"
)

// Generator генерирует ландшафт мира по шуму Перлина.
// Колонка (x, z) получает высоту поверхности из шума; ниже идут слои
// камень/земля/трава, под уровнем моря — вода. Руды и деревья
// расставляются детерминированным rng по сиду чанка.
type Generator struct {
	Seed        int64   // Сид для генерации шума
	NoiseScale  float64 // Масштаб основного шума (высота)
	BaseHeight  int     // Минимальная высота поверхности
	HeightRange int     // Диапазон высот поверхности
	SeaLevel    int     // Уровень воды
	TreeChance  float64 // Шанс дерева на колонку поверхности
	OreChance   float64 // Шанс рудной жилы на колонку

	noise *util.NoiseField
}

// NewGenerator создаёт новый генератор мира
func NewGenerator(seed int64) *Generator {
	return &Generator{
		Seed:        seed,
		NoiseScale:  0.05, // Настройка сглаженности ландшафта
		BaseHeight:  4,
		HeightRange: 24,
		SeaLevel:    10,
		TreeChance:  0.02,
		OreChance:   0.01,
		noise:       util.NewNoiseField(seed),
	}
}

// SurfaceHeight возвращает высоту поверхности для колонки (x, z)
func (g *Generator) SurfaceHeight(x, z int) int {
	h := g.noise.At(float64(x)*g.NoiseScale, float64(z)*g.NoiseScale)
	return g.BaseHeight + int(h*float64(g.HeightRange))
}

// GenerateChunk генерирует чанк по его координатам
func (g *Generator) GenerateChunk(coords vec.Vec3) *Chunk {
	chunk := NewChunk(coords)

	// Локальный rng для детерминированности: уникальный сид на чанк
	chunkSeed := g.Seed + int64(coords.X*31) + int64(coords.Y*53) + int64(coords.Z*17)
	rng := rand.New(rand.NewSource(chunkSeed))

	baseX := coords.X << 4
	baseY := coords.Y << 4
	baseZ := coords.Z << 4

	for lx := 0; lx < ChunkSize; lx++ {
		for lz := 0; lz < ChunkSize; lz++ {
			surface := g.SurfaceHeight(baseX+lx, baseZ+lz)
			ore := rng.Float64() < g.OreChance
			tree := surface > g.SeaLevel && rng.Float64() < g.TreeChance

			for ly := 0; ly < ChunkSize; ly++ {
				y := baseY + ly
				b := g.columnBlock(y, surface, ore, rng)
				if b.IsAir() && tree && y > surface && y <= surface+4 {
					b = Block{ID: LogID}
				}
				if !b.IsAir() {
					chunk.Blocks[lx][ly][lz] = b
				}
			}
		}
	}

	return chunk
}

// columnBlock возвращает блок колонки на высоте y при заданной поверхности
func (g *Generator) columnBlock(y, surface int, ore bool, rng *rand.Rand) Block {
	switch {
	case y < 0:
		return Block{ID: BedrockID}
	case y < surface-3:
		if ore && y > surface-8 {
			return g.oreBlock(rng)
		}
		return Block{ID: StoneID}
	case y < surface:
		return Block{ID: DirtID}
	case y == surface:
		if surface <= g.SeaLevel {
			return Block{ID: SandID}
		}
		return Block{ID: GrassID}
	case y <= g.SeaLevel:
		return Block{ID: WaterID}
	default:
		return Block{} // воздух
	}
}

// oreBlock выбирает тип руды
func (g *Generator) oreBlock(rng *rand.Rand) Block {
	switch rng.Intn(3) {
	case 0:
		return Block{ID: GoldOreID}
	case 1:
		return Block{ID: IronOreID}
	default:
		return Block{ID: CoalOreID}
	}
}
