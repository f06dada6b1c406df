package models

// Run is one finished run: how far the player got before hitting an
// obstacle, and how long it took.
type Run struct {
	ID               string  `json:"id"`
	EndedAt          int64   `json:"endedAt"`
	Duration         float64 `json:"duration"`
	Distance         float64 `json:"distance"`
	ObstaclesCleared int     `json:"obstaclesCleared"`
}
