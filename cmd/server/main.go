package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/ckoehne/hurdler/pkg/api"
	"github.com/ckoehne/hurdler/pkg/game"
	"github.com/ckoehne/hurdler/pkg/game/config"
	"github.com/ckoehne/hurdler/pkg/log"
	"github.com/ckoehne/hurdler/pkg/queue"
	"github.com/ckoehne/hurdler/pkg/repositories"
	"github.com/ckoehne/hurdler/pkg/state"
	"github.com/ckoehne/hurdler/pkg/version"
	"github.com/ckoehne/hurdler/pkg/workers"
)

func main() {
	apiPort := flag.Int("api-port", 8080, "API port to listen on")
	logLevel := flag.String("log-level", "info", "Log level")
	configPath := flag.String("config", "", "Path to a yaml tuning config (defaults apply when empty)")
	sqlitePath := flag.String("sqlite-path", "hurdler.db", "Path to the sqlite database")
	migrationsPath := flag.String("migrations-path", "migrations", "Path to the sqlite migrations directory")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting server version %s", version.Get())
	ctx := context.Background()

	cfg := config.Default()
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
		if err != nil {
			panic(fmt.Sprintf("Failed to load config: %v", err))
		}
		log.Info("Loaded tuning config from %s", *configPath)
	}

	var repository repositories.Repository
	if connStr := os.Getenv("DATABASE_URL"); connStr != "" {
		repository, err = repositories.NewPostgresRepository(ctx, connStr)
		if err != nil {
			panic(fmt.Sprintf("Failed to create postgres repository: %v", err))
		}
	} else {
		repository, err = repositories.NewSQLiteRepository(ctx, *sqlitePath, *migrationsPath)
		if err != nil {
			panic(fmt.Sprintf("Failed to create sqlite repository: %v", err))
		}
	}
	defer repository.Close(ctx)

	inputQueue := queue.NewInMemoryQueue(1024)
	stateManager := state.NewInMemoryManager()

	saveRunChan := make(chan workers.SaveRunRequest, 100)
	saveRunWorker := workers.NewSaveRunWorker(workers.NewSaveRunWorkerOptions{
		Repository:  repository,
		SaveRunChan: saveRunChan,
	})
	go saveRunWorker.Start(ctx)

	gameLoopInterval := 100 * time.Millisecond // 10 ticks per second
	apiServer := api.NewAPIServer(api.NewAPIServerOptions{
		Port:          *apiPort,
		Repository:    repository,
		StateManager:  stateManager,
		InputQueue:    inputQueue,
		WatchInterval: gameLoopInterval,
	})
	go apiServer.Start()
	defer apiServer.Stop(ctx)

	sim := game.NewSimulation(game.NewSimulationOptions{
		Config: cfg,
		Rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
	})
	gameManager := game.NewGameManager(game.NewGameManagerOptions{
		Simulation:       sim,
		InputQueue:       inputQueue,
		StateManager:     stateManager,
		SaveRunChan:      saveRunChan,
		GameLoopInterval: gameLoopInterval,
	})

	log.Info("Starting game manager")
	if err := gameManager.Start(ctx); err != nil {
		panic(fmt.Sprintf("Game manager exited: %v", err))
	}
}
