package obstacles

import (
	"math"
	"math/rand"

	"github.com/ckoehne/hurdler/pkg/game/types"
	"github.com/ckoehne/hurdler/pkg/log"
	queue "gopkg.in/eapache/queue.v1"
)

// Manager owns the sequence of live obstacles, ordered by ascending x.
// Obstacles are only ever appended at the tail (spawn) and removed from the
// head (expiry), so the sequence is held in a ring-buffer deque. The order
// is enforced by the placement algorithm, never by sorting.
//
// Manager is not safe for concurrent use: like the rest of the simulation
// it must only be mutated from the game loop goroutine.
type Manager struct {
	obstacles *queue.Queue
	state     *types.GameState
	tuning    types.ObstacleTuning
	groundY   float64
	rng       *rand.Rand
}

type NewManagerOptions struct {
	// State is the game state the manager consults for spawn decisions.
	State *types.GameState
	// Tuning holds the placement and expiry constants.
	Tuning types.ObstacleTuning
	// GroundY is the y coordinate obstacles rest at.
	GroundY float64
	// Rand is the randomness source for spacing draws. Must not be nil.
	Rand *rand.Rand
}

func NewManager(opts NewManagerOptions) *Manager {
	return &Manager{
		obstacles: queue.New(),
		state:     opts.State,
		tuning:    opts.Tuning,
		groundY:   opts.GroundY,
		rng:       opts.Rand,
	}
}

// Len returns the number of live obstacles.
func (m *Manager) Len() int {
	return m.obstacles.Length()
}

// Head returns the leftmost (oldest) live obstacle, or nil.
func (m *Manager) Head() *types.ObstacleState {
	if m.obstacles.Length() == 0 {
		return nil
	}
	return m.obstacles.Peek().(*types.ObstacleState)
}

// Tail returns the rightmost (newest) live obstacle, or nil.
func (m *Manager) Tail() *types.ObstacleState {
	if m.obstacles.Length() == 0 {
		return nil
	}
	return m.obstacles.Get(m.obstacles.Length() - 1).(*types.ObstacleState)
}

// Obstacles returns the live obstacles in ascending x order.
func (m *Manager) Obstacles() []*types.ObstacleState {
	out := make([]*types.ObstacleState, m.obstacles.Length())
	for i := 0; i < m.obstacles.Length(); i++ {
		out[i] = m.obstacles.Get(i).(*types.ObstacleState)
	}
	return out
}

// Add appends an obstacle to the tail of the sequence and assigns it a spawn
// position to the right of the previous tail.
func (m *Manager) Add(obstacle *types.ObstacleState) {
	m.obstacles.Add(obstacle)
	m.setRandomPosition(obstacle)
}

// Spawn creates an obstacle with the configured extents and adds it.
func (m *Manager) Spawn() *types.ObstacleState {
	obstacle := types.NewObstacleState(m.groundY, m.tuning.Extents)
	m.Add(obstacle)
	return obstacle
}

// setRandomPosition places the obstacle at a random offset to the right of
// the current tail. Only the previous tail needs checking for overlap:
// obstacles are added left to right, so earlier obstacles are strictly
// further left. The offset is drawn from a half-normal distribution; on
// overlap the deviation is halved and the offset redrawn. The retry loop is
// bounded: if it does not converge the obstacle is placed at a fixed
// clearance past the tail's right edge so placement always terminates with
// non-overlapping boxes.
func (m *Manager) setRandomPosition(obstacle *types.ObstacleState) {
	if m.obstacles.Length() <= 1 {
		m.placeRightOfPlayer(obstacle)
		return
	}

	last := m.obstacles.Get(m.obstacles.Length() - 2).(*types.ObstacleState)
	sigma := m.tuning.SpacingStd
	obstacle.Position.X = last.Position.X + m.halfNormal(sigma)

	retries := 0
	for types.ObstaclesOverlap(&obstacle.Collider, &last.Collider) {
		if retries >= m.tuning.MaxPlacementRetries {
			obstacle.Position.X = last.RightEdge() + obstacle.Extents.LowerX + m.tuning.FallbackClearance
			log.Warn("Obstacle placement did not converge after %d retries, using fallback clearance", retries)
			break
		}
		sigma *= 0.5
		obstacle.Position.X = last.Position.X + m.halfNormal(sigma)
		retries++
	}
}

// placeRightOfPlayer puts the first obstacle of a run just ahead of the
// player, outside the visible range.
func (m *Manager) placeRightOfPlayer(obstacle *types.ObstacleState) {
	obstacle.Position.X = m.state.Player.Position.X + m.tuning.FirstOffsetX
}

// halfNormal draws a non-negative offset: |N(0, sigma)|.
func (m *Manager) halfNormal(sigma float64) float64 {
	return math.Abs(m.rng.NormFloat64() * sigma)
}

// ExpireBehind removes obstacles that have scrolled behind the camera by the
// destruct offset and returns how many were removed. Only the head ever
// needs checking: the sequence is x-ordered, so the leftmost obstacle is
// always the first eligible for expiry.
func (m *Manager) ExpireBehind(cameraX float64) int {
	removed := 0
	for m.obstacles.Length() > 0 {
		head := m.obstacles.Peek().(*types.ObstacleState)
		if head.Position.X > cameraX-m.tuning.DestructOffsetX {
			break
		}
		m.obstacles.Remove()
		removed++
	}
	return removed
}

// FillAhead spawns obstacles until the tail is at least the spawn-ahead
// distance past the camera, and returns how many were spawned. The fallback
// clearance guarantees every spawn makes forward progress, so the loop
// terminates.
func (m *Manager) FillAhead(cameraX float64) int {
	spawned := 0
	for {
		tail := m.Tail()
		if tail != nil && tail.Position.X >= cameraX+m.tuning.SpawnAheadX {
			break
		}
		m.Spawn()
		spawned++
	}
	return spawned
}

// Reset drops all live obstacles, the start of a fresh run.
func (m *Manager) Reset() {
	for m.obstacles.Length() > 0 {
		m.obstacles.Remove()
	}
}
