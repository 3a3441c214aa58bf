package perception

import (
	"time"

	"github.com/annel0/voxel-perception/internal/entity"
	"github.com/annel0/voxel-perception/internal/logging"
	"github.com/annel0/voxel-perception/internal/vec"
	"github.com/annel0/voxel-perception/internal/world"
)

// BlockObject — связная компонента примечательных блоков с их (id, meta)
type BlockObject []world.VoxelBlock

// Coords возвращает мировые координаты блоков объекта
func (o BlockObject) Coords() []vec.Vec3 {
	coords := make([]vec.Vec3, len(o))
	for i, b := range o {
		coords[i] = b.Pos
	}
	return coords
}

// Centroid возвращает среднюю координату объекта
func (o BlockObject) Centroid() vec.Vec3Float {
	return vec.Centroid(o.Coords())
}

// Ref возвращает ссылку на объект для геометрических эвристик
func (o BlockObject) Ref() entity.Ref {
	return entity.Blocks(o.Coords())
}

// AllNearbyObjects возвращает связные компоненты достижимых примечательных
// блоков в окне радиуса ObjectRadius вокруг pos. Каждая компонента — список
// (мировая координата, (id, meta)).
func (e *Engine) AllNearbyObjects(pos vec.Vec3) []BlockObject {
	defer e.observe("all_nearby_objects", time.Now())

	g, start := e.closeBlocksWindow(pos, e.objectRadius)
	mask, d := e.accessibleInterestingMask(g, start)
	components := connectedComponents(d, mask)

	logging.Debug("AllNearbyObjects: найдено %d объектов возле %v", len(components), pos)

	objects := make([]BlockObject, 0, len(components))
	for _, members := range components {
		obj := make(BlockObject, 0, len(members))
		for _, c := range members {
			obj = append(obj, world.VoxelBlock{
				Pos:   g.World(c.y, c.z, c.x),
				Block: g.At(c.y, c.z, c.x),
			})
		}
		objects = append(objects, obj)
	}
	return objects
}

// ClosestNearbyObject возвращает объект, центроид которого ближе всего к pos
// по манхэттенскому расстоянию, или (nil, false), если объектов нет.
func (e *Engine) ClosestNearbyObject(pos vec.Vec3) (BlockObject, bool) {
	objects := e.AllNearbyObjects(pos)
	if len(objects) == 0 {
		return nil, false
	}

	best := 0
	bestDist := objects[0].Centroid().ManhattanDistanceTo(pos.ToFloat())
	for i := 1; i < len(objects); i++ {
		if d := objects[i].Centroid().ManhattanDistanceTo(pos.ToFloat()); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return objects[best], true
}

// FindNearbyBlocks возвращает все непустые блоки окна радиуса radius
// вокруг pos как пары (мировая координата, (id, meta)).
func (e *Engine) FindNearbyBlocks(pos vec.Vec3, radius int) []world.VoxelBlock {
	defer e.observe("find_nearby_blocks", time.Now())

	if radius <= 0 {
		radius = e.objectRadius
	}
	r := vec.Vec3{X: radius, Y: radius, Z: radius}
	g := e.accessor.GetBlocks(pos.Sub(r), pos.Add(r))

	var blocks []world.VoxelBlock
	sy, sz, sx := g.Dims()
	for y := 0; y < sy; y++ {
		for z := 0; z < sz; z++ {
			for x := 0; x < sx; x++ {
				b := g.At(y, z, x)
				if b.IsAir() {
					continue
				}
				blocks = append(blocks, world.VoxelBlock{Pos: g.World(y, z, x), Block: b})
			}
		}
	}
	return blocks
}

// closeBlocksWindow запрашивает окно блоков радиуса radius вокруг pos
// и возвращает сетку вместе с локальной ячейкой стартовой позиции.
func (e *Engine) closeBlocksWindow(pos vec.Vec3, radius int) (*world.Grid, cell) {
	r := vec.Vec3{X: radius, Y: radius, Z: radius}
	g := e.accessor.GetBlocks(pos.Sub(r), pos.Add(r))
	y, z, x, _ := g.Local(pos)
	return g, cell{y: y, z: z, x: x}
}
