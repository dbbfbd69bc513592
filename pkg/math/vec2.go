// Package math provides small vector and matrix types for mesh building and rendering.
package math

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float32
}
