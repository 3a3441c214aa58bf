package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/annel0/voxel-perception/internal/api"
	"github.com/annel0/voxel-perception/internal/config"
	"github.com/annel0/voxel-perception/internal/logging"
	"github.com/annel0/voxel-perception/internal/observability"
	"github.com/annel0/voxel-perception/internal/perception"
	"github.com/annel0/voxel-perception/internal/world"
)

func main() {
	configPath := flag.String("config", "", "путь к YAML конфигурации (или ENV PERCEPT_CONFIG)")
	enableOTLP := flag.Bool("otlp", false, "включить экспорт трассировок OTLP")
	flag.Parse()

	// Инициализируем систему логирования
	if err := logging.InitDefaultLogger("server"); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseDefaultLogger()

	logging.Info("🧠 Запуск сервиса восприятия воксельного мира...")

	// === КОНФИГУРАЦИЯ ===
	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Error("❌ Ошибка загрузки конфигурации: %v", err)
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}

	restPort := fmt.Sprintf(":%d", cfg.Server.GetRESTPort())
	logging.Info("📡 Конфигурация сервера: REST API=%s, радиус объектов=%d, радиус ям=%d",
		restPort, cfg.Perception.ObjectRadius, cfg.Perception.HoleRadius)

	// === OBSERVABILITY ===
	if *enableOTLP {
		shutdown, err := observability.InitTelemetry(context.Background(), "voxel-perception")
		if err != nil {
			logging.Error("Ошибка инициализации OpenTelemetry: %v", err)
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logging.Error("Ошибка остановки OpenTelemetry: %v", err)
				}
			}()
		}
	}

	// === МИР ===
	var w *world.MemoryWorld
	if cfg.World.Fixture != "" {
		logging.Debug("Загрузка мира из дампа %s...", cfg.World.Fixture)
		w, err = world.LoadFixture(cfg.World.Fixture)
		if err != nil {
			logging.Error("❌ Ошибка загрузки дампа мира: %v", err)
			log.Fatalf("❌ Ошибка загрузки дампа мира: %v", err)
		}
		logging.Info("✅ Мир загружен из дампа %s", cfg.World.Fixture)
	} else {
		logging.Debug("Генерация мира по сиду %d...", cfg.World.Seed)
		w = world.NewGeneratedWorld(world.NewGenerator(cfg.World.Seed))
		logging.Info("✅ Мир генерируется лениво, сид=%d", cfg.World.Seed)
	}

	// === ДВИЖОК ВОСПРИЯТИЯ ===
	engine := perception.NewEngine(w, cfg)
	engine.SetMetrics(perception.NewMetrics("perception"))

	// === REST API ===
	restServer := api.NewRestServer(api.Config{
		Port:   restPort,
		Engine: engine,
	})
	restServer.Start()

	logging.Info("✅ Все сервисы запущены")
	logging.Info("   🌐 REST API: http://localhost%s", restPort)
	logging.Info("   📊 Метрики: http://localhost%s/metrics", restPort)
	logging.Info("💡 Пример запроса:")
	logging.Info("   curl 'http://localhost%s/api/perception/objects?x=0&y=20&z=0'", restPort)

	// Канал для получения сигналов ОС
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logging.Info("📡 Получен сигнал %v, завершение работы...", sig)
	logging.Info("👋 Сервис успешно остановлен")
}
