package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDefault тестирует конфигурацию по умолчанию
func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Perception.ObjectRadius != 20 {
		t.Errorf("ObjectRadius = %d, ожидалось 20", cfg.Perception.ObjectRadius)
	}
	if cfg.Perception.HoleRadius != 15 {
		t.Errorf("HoleRadius = %d, ожидалось 15", cfg.Perception.HoleRadius)
	}
	if cfg.Perception.FatScale != 0.2 {
		t.Errorf("FatScale = %f, ожидалось 0.2", cfg.Perception.FatScale)
	}
	if cfg.Perception.DefaultFill.ID != 2 {
		t.Errorf("DefaultFill.ID = %d, ожидалось 2", cfg.Perception.DefaultFill.ID)
	}
	if len(cfg.Perception.BoringBlocks) == 0 || len(cfg.Perception.PassableBlocks) == 0 {
		t.Error("таблицы блоков не должны быть пустыми")
	}
	if cfg.Mobs[90] != "pig" {
		t.Errorf("Mobs[90] = %q, ожидалось pig", cfg.Mobs[90])
	}
}

// TestLoad тестирует наложение YAML файла на дефолты
func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := []byte(`
perception:
  object_radius: 7
  hole_radius: 5
world:
  seed: 99
server:
  rest_port: 9000
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("запись временного конфига: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Perception.ObjectRadius != 7 {
		t.Errorf("ObjectRadius = %d, ожидалось 7", cfg.Perception.ObjectRadius)
	}
	if cfg.Perception.HoleRadius != 5 {
		t.Errorf("HoleRadius = %d, ожидалось 5", cfg.Perception.HoleRadius)
	}
	if cfg.World.Seed != 99 {
		t.Errorf("Seed = %d, ожидалось 99", cfg.World.Seed)
	}
	if cfg.Server.GetRESTPort() != 9000 {
		t.Errorf("GetRESTPort = %d, ожидалось 9000", cfg.Server.GetRESTPort())
	}

	// Незатронутые поля сохраняют дефолты
	if cfg.Perception.FatScale != 0.2 {
		t.Errorf("FatScale = %f, дефолт не сохранён", cfg.Perception.FatScale)
	}
}

// TestLoad_Missing тестирует ошибку на несуществующем файле
func TestLoad_Missing(t *testing.T) {
	if _, err := Load("/nonexistent/config.yml"); err == nil {
		t.Error("ожидалась ошибка для несуществующего файла")
	}
}

// TestPortFallback тестирует приоритет config -> env -> default
func TestPortFallback(t *testing.T) {
	var s ServerConfig

	if got := s.GetRESTPort(); got != 8090 {
		t.Errorf("дефолтный REST порт = %d, ожидалось 8090", got)
	}
	if got := s.GetMetricsPort(); got != 2112 {
		t.Errorf("дефолтный порт метрик = %d, ожидалось 2112", got)
	}

	t.Setenv("PERCEPT_REST_PORT", "8123")
	if got := s.GetRESTPort(); got != 8123 {
		t.Errorf("REST порт из ENV = %d, ожидалось 8123", got)
	}

	s.RESTPort = 9001
	if got := s.GetRESTPort(); got != 9001 {
		t.Errorf("REST порт из конфига = %d, ожидалось 9001 (конфиг важнее ENV)", got)
	}
}
