package kinematic

// This package includes vector math and kinematic equations for the simulation.

import (
	"math"
)

// Vector is a 2D vector in world units.
type Vector struct {
	X float64
	Y float64
}

// Add returns the sum of the vector and another vector.
func (v Vector) Add(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y}
}

// Scale returns the vector scaled by a factor.
func (v Vector) Scale(factor float64) Vector {
	return Vector{X: v.X * factor, Y: v.Y * factor}
}

// Displacement returns the displacement of an object given its initial velocity, time, and acceleration.
func Displacement(initialVelocity float64, time float64, acceleration float64) float64 {
	return initialVelocity*time + 0.5*acceleration*math.Pow(time, 2)
}

// FinalVelocity returns the final velocity of an object given its initial velocity, time, and acceleration.
func FinalVelocity(initialVelocity float64, time float64, acceleration float64) float64 {
	return initialVelocity + acceleration*time
}
