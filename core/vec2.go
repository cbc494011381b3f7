package core

import "fmt"

// Vec2 is a 2D terminal coordinate, X column and Y row, 0-based
type Vec2 struct {
	X, Y int
}

// V2 builds a Vec2 from x and y
func V2(x, y int) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the component-wise sum of v and o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// In reports whether v lies inside a region of the given size anchored at the origin
func (v Vec2) In(size Vec2) bool {
	return v.X >= 0 && v.Y >= 0 && v.X < size.X && v.Y < size.Y
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}
