package messages

// ClientInput is a control message from an input collaborator (local poller
// or remote /play connection).
type ClientInput struct {
	// Timestamp is the client time the input was captured, unix millis.
	Timestamp int64 `json:"timestamp"`
	// Jump requests a jump on the next possible tick.
	Jump bool `json:"jump"`
}

// PlayerSnapshot is the renderable view of the player.
type PlayerSnapshot struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	VelocityX  float64 `json:"velocityX"`
	VelocityY  float64 `json:"velocityY"`
	IsAirborne bool    `json:"isAirborne"`
}

// ObstacleSnapshot is the renderable view of one obstacle.
type ObstacleSnapshot struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	LowerX  float64 `json:"lowerX"`
	HigherX float64 `json:"higherX"`
	LowerY  float64 `json:"lowerY"`
	HigherY float64 `json:"higherY"`
}

// GameSnapshot is the per-tick view of the whole simulation, consumed by
// renderers and spectators as pure readers of position state.
type GameSnapshot struct {
	// Timestamp is the server time the snapshot was generated, unix millis.
	Timestamp int64 `json:"timestamp"`
	// RunID identifies the run in progress.
	RunID string `json:"runId"`
	// CameraX is the horizontal world coordinate the view is centered on.
	CameraX float64 `json:"cameraX"`
	// TimePlayed is the accumulated session play time in seconds.
	TimePlayed float64 `json:"timePlayed"`
	// Distance is the distance covered in the current run.
	Distance float64 `json:"distance"`
	// ObstaclesCleared counts obstacles passed in the current run.
	ObstaclesCleared int `json:"obstaclesCleared"`

	Player    PlayerSnapshot     `json:"player"`
	Obstacles []ObstacleSnapshot `json:"obstacles"`
}
