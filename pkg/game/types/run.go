package types

// RunSummary describes a finished run.
type RunSummary struct {
	RunID            string
	Distance         float64
	Duration         float64
	ObstaclesCleared int
}
