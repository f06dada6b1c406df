package types

import (
	"testing"

	"github.com/ckoehne/hurdler/pkg/kinematic"
	"github.com/stretchr/testify/assert"
)

func collider(x, y float64, extents Extents) *Collider {
	return &Collider{
		Position: kinematic.Vector{X: x, Y: y},
		Extents:  extents,
	}
}

func uniformExtents(e float64) Extents {
	return Extents{LowerX: e, HigherX: e, LowerY: e, HigherY: e}
}

func TestCollider_CollidesWith(t *testing.T) {
	box := uniformExtents(0.1)

	tests := []struct {
		name  string
		probe *Collider
		other *Collider
		want  bool
	}{
		{
			name:  "centered on the box",
			probe: collider(0, 0, uniformExtents(0.5)),
			other: collider(0, 0, box),
			want:  true,
		},
		{
			name:  "inside on both axes",
			probe: collider(0.05, -0.05, uniformExtents(0.5)),
			other: collider(0, 0, box),
			want:  true,
		},
		{
			name:  "touching the right edge",
			probe: collider(0.1, 0, uniformExtents(0.5)),
			other: collider(0, 0, box),
			want:  true,
		},
		{
			name:  "just past the right edge",
			probe: collider(0.101, 0, uniformExtents(0.5)),
			other: collider(0, 0, box),
			want:  false,
		},
		{
			name:  "touching the lower edge",
			probe: collider(0, -0.1, uniformExtents(0.5)),
			other: collider(0, 0, box),
			want:  true,
		},
		{
			name:  "inside in x only",
			probe: collider(0.05, 0.2, uniformExtents(0.5)),
			other: collider(0, 0, box),
			want:  false,
		},
		{
			name:  "inside in y only",
			probe: collider(-0.2, 0.05, uniformExtents(0.5)),
			other: collider(0, 0, box),
			want:  false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.probe.CollidesWith(tt.other))
		})
	}
}

// The probe test only consults the other object's extents, so it is not
// symmetric: a wide object can contain a narrow one's position while the
// reverse probe misses.
func TestCollider_CollidesWith_Asymmetry(t *testing.T) {
	wide := collider(0, 0, uniformExtents(1.0))
	narrow := collider(0.5, 0, uniformExtents(0.1))

	assert.False(t, narrow.CollidesWith(wide) == wide.CollidesWith(narrow))
	assert.True(t, narrow.CollidesWith(wide))
	assert.False(t, wide.CollidesWith(narrow))
}

func TestObstaclesOverlap(t *testing.T) {
	box := uniformExtents(0.1)

	tests := []struct {
		name string
		a    *Collider
		b    *Collider
		want bool
	}{
		{
			name: "same position",
			a:    collider(0, 0, box),
			b:    collider(0, 0, box),
			want: true,
		},
		{
			name: "close enough to overlap in x",
			a:    collider(0, 0, box),
			b:    collider(0.15, 0, box),
			want: true,
		},
		{
			name: "edges touching",
			a:    collider(0, 0, box),
			b:    collider(0.2, 0, box),
			want: true,
		},
		{
			name: "separated in x",
			a:    collider(0, 0, box),
			b:    collider(0.25, 0, box),
			want: false,
		},
		{
			name: "overlapping in x but stacked apart in y",
			a:    collider(0, 0, box),
			b:    collider(0.05, 0.5, box),
			want: false,
		},
		{
			name: "overlapping on both axes with offset",
			a:    collider(0, 0, box),
			b:    collider(0.1, 0.1, box),
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ObstaclesOverlap(tt.a, tt.b))
			// The relation does not depend on argument order.
			assert.Equal(t, tt.want, ObstaclesOverlap(tt.b, tt.a))
		})
	}
}
