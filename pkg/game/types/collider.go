package types

import "github.com/ckoehne/hurdler/pkg/kinematic"

// Extents are the four directional limits of an axis-aligned collision box
// around an object's position. All four values must be non-negative: the
// lower extents are magnitudes below/left of the position, not coordinates.
type Extents struct {
	LowerX  float64 `yaml:"lowerX"`
	HigherX float64 `yaml:"higherX"`
	LowerY  float64 `yaml:"lowerY"`
	HigherY float64 `yaml:"higherY"`
}

// Collider is an axis-aligned bounding-box entity: a position plus the
// extents of its box of influence.
type Collider struct {
	Position kinematic.Vector
	Extents  Extents
}

// CollidesWith reports whether the collider's position probes inside the
// other collider's box. Only the other object's extents are consulted: the
// caller is treated as a point and the receiver's own extents are ignored.
// The asymmetry is intentional and relied on by the simulation, so
// CollidesWith(a, b) is not generally equal to CollidesWith(b, a).
func (c *Collider) CollidesWith(other *Collider) bool {
	dx := c.Position.X - other.Position.X
	dy := c.Position.Y - other.Position.Y
	collidesInX := -other.Extents.LowerX <= dx && dx <= other.Extents.HigherX
	collidesInY := -other.Extents.LowerY <= dy && dy <= other.Extents.HigherY
	return collidesInX && collidesInY
}

// LeftEdge returns the x coordinate of the left side of the box.
func (c *Collider) LeftEdge() float64 {
	return c.Position.X - c.Extents.LowerX
}

// RightEdge returns the x coordinate of the right side of the box.
func (c *Collider) RightEdge() float64 {
	return c.Position.X + c.Extents.HigherX
}

// ObstaclesOverlap reports whether two boxes overlap on both axes. Unlike
// CollidesWith this is a genuine box-vs-box relation: each axis compares the
// near edge of the leading box against the near edge of the trailing one,
// with the comparison direction depending on which box leads.
func ObstaclesOverlap(a, b *Collider) bool {
	var xOverlap, yOverlap bool

	if a.Position.X <= b.Position.X {
		xOverlap = a.RightEdge() >= b.LeftEdge()
	} else {
		xOverlap = b.RightEdge() >= a.LeftEdge()
	}

	aOnTop := a.Position.Y >= b.Position.Y
	if aOnTop {
		yOverlap = a.Position.Y-a.Extents.LowerY <= b.Position.Y+b.Extents.HigherY
	} else {
		yOverlap = b.Position.Y-b.Extents.LowerY <= a.Position.Y+a.Extents.HigherY
	}

	return xOverlap && yOverlap
}
