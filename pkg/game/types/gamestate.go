package types

// GameState aggregates the per-session view state: the camera position
// (rigidly following the player, no smoothing) and the accumulated play time.
// It holds a non-owning reference to the player; the obstacle sequence is
// owned by the simulation's obstacle manager.
type GameState struct {
	// Timestamp is the time at which the game state was generated
	Timestamp int64
	// CameraPosition is the horizontal world coordinate the view is centered on
	CameraPosition float64
	// TotalTimePlayed accumulates dt across the whole session, including
	// across run resets
	TotalTimePlayed float64
	// Player is the single player of the session
	Player *PlayerState
}

func NewGameState(player *PlayerState) *GameState {
	return &GameState{
		Player:         player,
		CameraPosition: player.Position.X,
	}
}

// Update recomputes the camera from the player position and accrues play time.
func (g *GameState) Update(dt float64) {
	if dt < 0 {
		dt = 0
	}
	g.CameraPosition = g.Player.Position.X
	g.TotalTimePlayed += dt
}
