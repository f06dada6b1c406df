package constants

// World units are abstract (roughly one screen height = 2 units); times are seconds.
const (

	// GroundYLevel is the y coordinate of the ground
	GroundYLevel float64 = -0.8
	// InitialJumpSpeedY is the vertical speed applied when a jump starts
	InitialJumpSpeedY float64 = 0.3
	// Gravity is the downward acceleration applied while airborne
	Gravity float64 = 0.2
	// PlayerSpeedX is the constant horizontal speed of the player
	PlayerSpeedX float64 = 0.1
	// PlayerStartX is the x coordinate the player starts a run at
	PlayerStartX float64 = 0.0
	// PlayerExtent is the default collision extent of the player on all sides
	PlayerExtent float64 = 0.1

	// ObstacleSpacingStd is the standard deviation of the half-normal
	// horizontal gap between consecutive obstacles
	ObstacleSpacingStd float64 = 0.3
	// FirstObstacleOffsetX is how far ahead of the player the first obstacle spawns
	FirstObstacleOffsetX float64 = 0.8
	// DestructOffsetX is how far behind the camera an obstacle must be to expire
	DestructOffsetX float64 = 1.0
	// SpawnAheadX is how far ahead of the camera the obstacle sequence is kept filled
	SpawnAheadX float64 = 2.0
	// MaxPlacementRetries bounds the shrinking-offset placement loop
	MaxPlacementRetries int = 16
	// FallbackClearance is the gap used when placement does not converge
	FallbackClearance float64 = 0.05
	// ObstacleExtentX is the default horizontal collision extent of obstacles
	ObstacleExtentX float64 = 0.1
	// ObstacleExtentY is the default vertical collision extent of obstacles
	ObstacleExtentY float64 = 0.1
)
