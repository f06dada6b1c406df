package game

import (
	"math/rand"

	"github.com/ckoehne/hurdler/pkg/game/config"
	"github.com/ckoehne/hurdler/pkg/game/obstacles"
	"github.com/ckoehne/hurdler/pkg/game/types"
	"github.com/ckoehne/hurdler/pkg/input"
	"github.com/ckoehne/hurdler/pkg/log"
	"github.com/google/uuid"
)

// Simulation is one game session: the player, the camera/time state and the
// obstacle sequence, advanced tick by tick. It replaces any notion of
// process-wide game state: construct one per session and pass it into the
// update loop.
//
// Simulation is single-writer: Step and QueueJump-consuming updates must
// only run on the game loop goroutine. The input controller is the sole
// thread-safe entry point for other goroutines.
type Simulation struct {
	cfg        config.Config
	state      *types.GameState
	obstacles  *obstacles.Manager
	controller input.Controller

	runID            string
	runStartTime     float64
	runStartX        float64
	obstaclesCleared int
}

type NewSimulationOptions struct {
	Config config.Config
	// Controller is the input collaborator. Defaults to a fresh input.State.
	Controller input.Controller
	// Rand is the randomness source for obstacle spacing. Must not be nil.
	Rand *rand.Rand
}

func NewSimulation(opts NewSimulationOptions) *Simulation {
	controller := opts.Controller
	if controller == nil {
		controller = input.NewState()
	}

	player := types.NewPlayerState(opts.Config.Player)
	state := types.NewGameState(player)

	sim := &Simulation{
		cfg:        opts.Config,
		state:      state,
		controller: controller,
		obstacles: obstacles.NewManager(obstacles.NewManagerOptions{
			State:   state,
			Tuning:  opts.Config.Obstacles,
			GroundY: opts.Config.Player.GroundY,
			Rand:    opts.Rand,
		}),
	}
	sim.beginRun()

	return sim
}

// State returns the live game state. Read-only outside the game loop.
func (s *Simulation) State() *types.GameState {
	return s.state
}

// Obstacles returns the live obstacles in ascending x order.
func (s *Simulation) Obstacles() []*types.ObstacleState {
	return s.obstacles.Obstacles()
}

// Controller returns the input collaborator driving the player.
func (s *Simulation) Controller() input.Controller {
	return s.controller
}

// RunID identifies the run in progress.
func (s *Simulation) RunID() string {
	return s.runID
}

// Distance is how far the player has run since the current run started.
func (s *Simulation) Distance() float64 {
	return s.state.Player.Position.X - s.runStartX
}

// ObstaclesCleared counts obstacles passed in the current run.
func (s *Simulation) ObstaclesCleared() int {
	return s.obstaclesCleared
}

// Step advances the simulation by dt seconds in the fixed tick order:
// player kinematics, camera/time aggregation, obstacle expiry, obstacle
// spawning, then collision queries between the player and all live
// obstacles. If the player hit an obstacle the finished run's summary is
// returned and a fresh run begins; otherwise Step returns nil.
func (s *Simulation) Step(dt float64) *types.RunSummary {
	if dt < 0 {
		log.Warn("Negative dt %f clamped to 0", dt)
		dt = 0
	}

	s.state.Player.Update(dt, s.controller, s.cfg.Player)
	s.state.Update(dt)
	s.obstaclesCleared += s.obstacles.ExpireBehind(s.state.CameraPosition)
	s.obstacles.FillAhead(s.state.CameraPosition)

	for _, obstacle := range s.obstacles.Obstacles() {
		if s.state.Player.CollidesWith(&obstacle.Collider) {
			return s.endRun()
		}
	}

	return nil
}

func (s *Simulation) beginRun() {
	s.runID = uuid.NewString()
	s.state.Player.Reset(s.cfg.Player)
	s.state.CameraPosition = s.state.Player.Position.X
	s.runStartTime = s.state.TotalTimePlayed
	s.runStartX = s.state.Player.Position.X
	s.obstaclesCleared = 0
	s.obstacles.Reset()
	s.obstacles.FillAhead(s.state.CameraPosition)
}

func (s *Simulation) endRun() *types.RunSummary {
	summary := &types.RunSummary{
		RunID:            s.runID,
		Distance:         s.Distance(),
		Duration:         s.state.TotalTimePlayed - s.runStartTime,
		ObstaclesCleared: s.obstaclesCleared,
	}
	log.Debug("Run %s ended: distance %.3f, duration %.2fs, %d obstacles cleared",
		summary.RunID, summary.Distance, summary.Duration, summary.ObstaclesCleared)
	s.beginRun()
	return summary
}
