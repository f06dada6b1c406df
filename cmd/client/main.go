package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	clientgame "github.com/ckoehne/hurdler/client/game"
	"github.com/ckoehne/hurdler/pkg/game"
	"github.com/ckoehne/hurdler/pkg/game/config"
	"github.com/ckoehne/hurdler/pkg/log"
	"github.com/ckoehne/hurdler/pkg/version"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	logLevel := flag.String("log-level", "info", "Log level")
	configPath := flag.String("config", "", "Path to a yaml tuning config (defaults apply when empty)")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)

	log.Info("Starting client version %s", version.Get())

	cfg := config.Default()
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
		if err != nil {
			panic(fmt.Sprintf("Failed to load config: %v", err))
		}
		log.Info("Loaded tuning config from %s", *configPath)
	}

	sim := game.NewSimulation(game.NewSimulationOptions{
		Config: cfg,
		Rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
	})

	ebiten.SetWindowSize(clientgame.ScreenWidth, clientgame.ScreenHeight)
	ebiten.SetWindowTitle("Hurdler")

	if err := ebiten.RunGame(clientgame.NewGame(sim, cfg.Player.GroundY)); err != nil {
		if err == ebiten.Termination {
			return
		}
		panic(fmt.Sprintf("Failed to run game: %v", err))
	}
}
