package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeSnapshot_RoundTrip(t *testing.T) {
	snapshot := &GameSnapshot{
		Timestamp:        1700000000000,
		RunID:            "run-1",
		CameraX:          4.2,
		TimePlayed:       12.5,
		Distance:         4.2,
		ObstaclesCleared: 3,
		Player: PlayerSnapshot{
			X:          4.2,
			Y:          -0.6,
			VelocityX:  0.1,
			VelocityY:  0.24,
			IsAirborne: true,
		},
		Obstacles: []ObstacleSnapshot{
			{X: 4.8, Y: -0.8, LowerX: 0.1, HigherX: 0.1, LowerY: 0.1, HigherY: 0.1},
			{X: 5.3, Y: -0.8, LowerX: 0.1, HigherX: 0.1, LowerY: 0.1, HigherY: 0.1},
		},
	}

	payload, err := SerializeSnapshot(snapshot)
	require.NoError(t, err)
	require.NotEmpty(t, payload)

	decoded, err := DeserializeSnapshot(payload)
	require.NoError(t, err)
	assert.Equal(t, snapshot, decoded)
}

func TestDeserializeSnapshot_RejectsGarbage(t *testing.T) {
	_, err := DeserializeSnapshot([]byte("not a zstd frame"))
	assert.Error(t, err)
}
