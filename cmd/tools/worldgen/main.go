package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/annel0/voxel-perception/internal/vec"
	"github.com/annel0/voxel-perception/internal/world"
)

// worldgen генерирует фрагмент мира по сиду и сохраняет его в YAML дамп.
// Дамп потом скармливается серверу через world.fixture или тестам.

func main() {
	var (
		seed   = flag.Int64("seed", 12345, "сид генератора мира")
		radius = flag.Int("radius", 32, "радиус региона вокруг начала координат (в блоках)")
		height = flag.Int("height", 64, "верхняя граница региона по Y")
		out    = flag.String("out", "world.yaml.gz", "выходной файл (.yaml или .yaml.gz)")
		mobs   = flag.Int("mobs", 0, "сколько мобов-свиней расставить на поверхности")
	)
	flag.Parse()

	if *radius <= 0 || *height <= 0 {
		fmt.Fprintln(os.Stderr, "радиус и высота должны быть положительными")
		os.Exit(1)
	}

	gen := world.NewGenerator(*seed)
	w := world.NewGeneratedWorld(gen)

	min := vec.Vec3{X: -*radius, Y: 0, Z: -*radius}
	max := vec.Vec3{X: *radius, Y: *height, Z: *radius}

	// Прогреваем регион: GetBlocks генерирует недостающие чанки
	_ = w.GetBlocks(min, max)

	// Расставляем мобов по диагонали региона на поверхности
	for i := 0; i < *mobs; i++ {
		x := -*radius + (2*(*radius)*i)/(*mobs)
		z := x
		y := gen.SurfaceHeight(x, z) + 1
		w.SpawnMob(90, vec.Vec3Float{X: float64(x), Y: float64(y), Z: float64(z)})
	}

	if err := world.SaveFixture(*out, w, min, max); err != nil {
		log.Fatalf("сохранение дампа: %v", err)
	}

	fmt.Printf("Дамп мира сохранён: %s (сид=%d, регион %v..%v)\n", *out, *seed, min, max)
}
