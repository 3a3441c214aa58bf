package perception

import (
	"time"

	"github.com/annel0/voxel-perception/internal/config"
	"github.com/annel0/voxel-perception/internal/vec"
	"github.com/annel0/voxel-perception/internal/world"
)

// blockSet — множество идентификаторов блоков
type blockSet map[world.BlockID]struct{}

func newBlockSet(ids []int) blockSet {
	s := make(blockSet, len(ids))
	for _, id := range ids {
		s[world.BlockID(id)] = struct{}{}
	}
	return s
}

func (s blockSet) has(id world.BlockID) bool {
	_, ok := s[id]
	return ok
}

// Engine — движок восприятия над снапшотом мира.
// Все операции синхронны, не кешируют результаты и не мутируют мир;
// каждый вызов работает по свежему запросу к Accessor.
type Engine struct {
	accessor world.Accessor

	boring   blockSet // Блоки, не образующие объекты
	passable blockSet // Блоки, сквозь которые агент проходит
	ground   blockSet // Блоки грунта для оценки высоты земли
	mobile   blockSet // Подвижные блоки, не считающиеся поверхностью

	mobNames map[world.MobTypeID]string

	objectRadius int
	holeRadius   int
	fatScale     float64
	defaultFill  world.Block

	metrics  *Metrics
	agentPos func() (vec.Vec3, bool)
}

// NewEngine создаёт движок восприятия над указанным миром и конфигурацией
func NewEngine(accessor world.Accessor, cfg *config.Config) *Engine {
	if cfg == nil {
		cfg = config.Default()
	}
	p := cfg.Perception

	mobNames := make(map[world.MobTypeID]string, len(cfg.Mobs))
	for id, name := range cfg.Mobs {
		mobNames[world.MobTypeID(id)] = name
	}

	return &Engine{
		accessor:     accessor,
		boring:       newBlockSet(p.BoringBlocks),
		passable:     newBlockSet(p.PassableBlocks),
		ground:       newBlockSet(p.GroundBlocks),
		mobile:       newBlockSet(p.MobileBlocks),
		mobNames:     mobNames,
		objectRadius: p.ObjectRadius,
		holeRadius:   p.HoleRadius,
		fatScale:     p.FatScale,
		defaultFill: world.Block{
			ID:   world.BlockID(p.DefaultFill.ID),
			Meta: uint8(p.DefaultFill.Meta),
		},
	}
}

// SetMetrics включает сбор метрик выполнения запросов
func (e *Engine) SetMetrics(m *Metrics) {
	e.metrics = m
}

// SetAgentProvider задаёт источник позиции агента.
// Поиск ям исключает колонку агента из карты поверхности.
func (e *Engine) SetAgentProvider(f func() (vec.Vec3, bool)) {
	e.agentPos = f
}

// interesting возвращает true для блока вне множества скучных
func (e *Engine) interesting(id world.BlockID) bool {
	return !e.boring.has(id)
}

// observe фиксирует выполнение запроса в метриках (если они включены)
func (e *Engine) observe(op string, start time.Time) {
	if e.metrics != nil {
		e.metrics.Observe(op, time.Since(start))
	}
}
