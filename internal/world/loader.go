package world

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"gopkg.in/yaml.v3"

	"github.com/annel0/voxel-perception/internal/vec"
)

// Формат дампа мира: YAML (опционально gzip) со списком непустых блоков и мобов.
// Используется демо-сервером и утилитой worldgen для воспроизводимых сцен.

type fixtureFile struct {
	Seed   int64          `yaml:"seed,omitempty"`
	Blocks []fixtureBlock `yaml:"blocks"`
	Mobs   []fixtureMob   `yaml:"mobs,omitempty"`
}

type fixtureBlock struct {
	Pos  [3]int `yaml:"pos"` // (x, y, z)
	ID   int    `yaml:"id"`
	Meta int    `yaml:"meta,omitempty"`
}

type fixtureMob struct {
	Type int        `yaml:"type"`
	Pos  [3]float64 `yaml:"pos"`
}

// LoadFixture читает дамп мира из YAML файла (".gz" — с распаковкой)
func LoadFixture(path string) (*MemoryWorld, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("открытие дампа мира: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("распаковка дампа мира: %w", err)
		}
		defer gz.Close()
		r = gz
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var fx fixtureFile
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("разбор дампа мира: %w", err)
	}

	var w *MemoryWorld
	if fx.Seed != 0 {
		w = NewGeneratedWorld(NewGenerator(fx.Seed))
	} else {
		w = NewMemoryWorld()
	}

	for _, b := range fx.Blocks {
		pos := vec.Vec3{X: b.Pos[0], Y: b.Pos[1], Z: b.Pos[2]}
		w.SetBlock(pos, Block{ID: BlockID(b.ID), Meta: uint8(b.Meta)})
	}
	for _, m := range fx.Mobs {
		w.SpawnMob(MobTypeID(m.Type), vec.Vec3Float{X: m.Pos[0], Y: m.Pos[1], Z: m.Pos[2]})
	}

	return w, nil
}

// SaveFixture записывает непустые блоки региона и всех мобов в YAML файл.
// Сид не сохраняется: дамп самодостаточен в пределах региона.
func SaveFixture(path string, w *MemoryWorld, min, max vec.Vec3) error {
	var fx fixtureFile

	g := w.GetBlocks(min, max)
	sy, sz, sx := g.Dims()
	for y := 0; y < sy; y++ {
		for z := 0; z < sz; z++ {
			for x := 0; x < sx; x++ {
				b := g.At(y, z, x)
				if b.IsAir() {
					continue
				}
				p := g.World(y, z, x)
				fx.Blocks = append(fx.Blocks, fixtureBlock{
					Pos:  [3]int{p.X, p.Y, p.Z},
					ID:   int(b.ID),
					Meta: int(b.Meta),
				})
			}
		}
	}

	for _, m := range w.GetMobs() {
		fx.Mobs = append(fx.Mobs, fixtureMob{
			Type: int(m.Type),
			Pos:  [3]float64{m.Pos.X, m.Pos.Y, m.Pos.Z},
		})
	}

	data, err := yaml.Marshal(&fx)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("создание дампа мира: %w", err)
	}
	defer f.Close()

	if strings.HasSuffix(path, ".gz") {
		gz := gzip.NewWriter(f)
		if _, err := gz.Write(data); err != nil {
			gz.Close()
			return err
		}
		return gz.Close()
	}

	_, err = f.Write(data)
	return err
}
