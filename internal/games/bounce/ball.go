package bounce

import "github.com/vovakirdan/bounce-arcade/internal/core"

// Bounds is the playfield a ball moves in, in world units.
type Bounds struct {
	Width, Height float64
}

// Contact reports which edges a ball touched during one Advance.
type Contact struct {
	Left  bool
	Right bool
	Top   bool
	Floor bool // Ball reached the bottom edge; position is not corrected
}

// Wall returns true if the ball was reflected off any wall.
func (c Contact) Wall() bool {
	return c.Left || c.Right || c.Top
}

// Ball is a circle moving through the field.
type Ball struct {
	X, Y    float64 // Center
	DX, DY  float64 // Velocity per tick
	Radius  float64
	Gravity float64 // Added to DY every tick before moving; 0 disables
	Color   core.Color
}

// Pos returns the ball center.
func (b *Ball) Pos() core.Vec {
	return core.Vec{X: b.X, Y: b.Y}
}

// Advance moves the ball one tick and reflects it off the side and top walls.
// Each axis is handled on its own, so a corner hit reflects both.
// The floor is never corrected here: Contact.Floor tells the caller to
// apply its own rules and reposition the ball.
func (b *Ball) Advance(bounds Bounds) Contact {
	b.DY += b.Gravity
	b.X += b.DX
	b.Y += b.DY

	var c Contact

	if b.X-b.Radius <= 0 {
		b.X = b.Radius
		b.DX = -b.DX
		c.Left = true
	}
	if b.X+b.Radius >= bounds.Width {
		b.X = bounds.Width - b.Radius
		b.DX = -b.DX
		c.Right = true
	}

	if b.Y-b.Radius <= 0 {
		b.Y = b.Radius
		b.DY = -b.DY
		c.Top = true
	}
	if b.Y+b.Radius >= bounds.Height {
		c.Floor = true
	}

	return c
}

// Scale multiplies both velocity components by k.
func (b *Ball) Scale(k float64) {
	b.DX *= k
	b.DY *= k
}
