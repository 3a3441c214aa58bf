package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации сервиса восприятия.
type Config struct {
	Perception PerceptionConfig `yaml:"perception"`
	World      WorldConfig      `yaml:"world"`
	Server     ServerConfig     `yaml:"server"`
	Mobs       map[int]string   `yaml:"mobs"`
}

// BlockSpec описывает пару (id, meta) блока в конфигурации.
type BlockSpec struct {
	ID   int `yaml:"id"`
	Meta int `yaml:"meta"`
}

// PerceptionConfig содержит статические таблицы и радиусы движка восприятия.
type PerceptionConfig struct {
	ObjectRadius int     `yaml:"object_radius"` // Радиус поиска объектов (по умолчанию 20)
	HoleRadius   int     `yaml:"hole_radius"`   // Радиус поиска ям (по умолчанию 15)
	FatScale     float64 `yaml:"fat_scale"`     // Доля расстояния для "раздувания" точек в CheckBetween

	BoringBlocks   []int `yaml:"boring_blocks"`   // Блоки ландшафта, не образующие объекты
	PassableBlocks []int `yaml:"passable_blocks"` // Блоки, сквозь которые агент проходит
	GroundBlocks   []int `yaml:"ground_blocks"`   // Блоки грунта для оценки высоты земли
	MobileBlocks   []int `yaml:"mobile_blocks"`   // Подвижные блоки (мобы), не считающиеся поверхностью

	DefaultFill BlockSpec `yaml:"default_fill"` // Материал заполнения ямы, если кромка не дала кандидата
}

// WorldConfig настраивает снапшот-мир демо-сервера.
type WorldConfig struct {
	Seed    int64  `yaml:"seed"`
	Fixture string `yaml:"fixture"` // Путь к .yaml/.yaml.gz дампу мира; пусто — генерировать по сиду
}

// ServerConfig содержит порты сервиса.
type ServerConfig struct {
	RESTPort    int `yaml:"rest_port"`
	MetricsPort int `yaml:"metrics_port"`
}

// GetRESTPort возвращает REST API порт с поддержкой fallback значений
func (s *ServerConfig) GetRESTPort() int {
	return getPortWithEnvFallback(s.RESTPort, "PERCEPT_REST_PORT", 8090)
}

// GetMetricsPort возвращает Prometheus метрики порт с поддержкой fallback значений
func (s *ServerConfig) GetMetricsPort() int {
	return getPortWithEnvFallback(s.MetricsPort, "PERCEPT_METRICS_PORT", 2112)
}

// getPortWithEnvFallback возвращает порт с приоритетом: config -> env -> default
func getPortWithEnvFallback(configPort int, envVar string, defaultPort int) int {
	// Если порт задан в конфиге и больше 0, используем его
	if configPort > 0 {
		return configPort
	}

	// Пробуем прочитать из environment variable
	if envVal := os.Getenv(envVar); envVal != "" {
		if port, err := strconv.Atoi(envVal); err == nil && port > 0 {
			return port
		}
	}

	// Используем дефолтное значение
	return defaultPort
}

// Default возвращает конфигурацию по умолчанию.
// Таблицы блоков соответствуют стандартному словарю идентификаторов:
// скучные — блоки ландшафта (камень, земля, вода, песок, листва),
// проходимые — воздух, жидкости и растительность.
func Default() *Config {
	return &Config{
		Perception: PerceptionConfig{
			ObjectRadius: 20,
			HoleRadius:   15,
			FatScale:     0.2,
			BoringBlocks: []int{
				0, 1, 2, 3, 6, 7, 8, 9, 10, 11, 12, 13, 16, 17, 18, 24, 31, 32, 78, 79,
			},
			PassableBlocks: []int{
				0, 8, 9, 31, 32, 37, 38, 50, 78,
			},
			GroundBlocks: []int{1, 2, 3, 7, 8, 9, 12, 79, 80},
			MobileBlocks: []int{383},
			DefaultFill:  BlockSpec{ID: 2, Meta: 0},
		},
		World: WorldConfig{
			Seed: 12345,
		},
		Mobs: map[int]string{
			50: "ghost",
			51: "skeleton",
			52: "spider",
			54: "zombie",
			65: "bat",
			90: "pig",
			91: "sheep",
			92: "cow",
			93: "chicken",
			95: "wolf",
		},
	}
}

// Load читает YAML файл конфигурации и накладывает его на дефолты.
// Если path == "", пытается прочитать из ENV PERCEPT_CONFIG
// или возвращает конфигурацию по умолчанию.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("PERCEPT_CONFIG")
		if path == "" {
			return cfg, nil // конфиг не задан — использовать дефолты
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
