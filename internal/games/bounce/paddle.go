package bounce

import "github.com/vovakirdan/bounce-arcade/internal/core"

// Paddle is the player's bat at the bottom of the field.
type Paddle struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
	Speed         float64 // Horizontal distance per move
	MinWidth      float64 // Shrinking stops here
	FieldWidth    float64
	FieldHeight   float64 // Zero leaves Y unbounded
	Color         core.Color
}

// Rect returns the paddle's bounding box.
func (p *Paddle) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// MoveLeft moves the paddle left by its speed, stopping at the left wall.
func (p *Paddle) MoveLeft() {
	p.X -= p.Speed
	p.clampX()
}

// MoveRight moves the paddle right by its speed, stopping at the right wall.
func (p *Paddle) MoveRight() {
	p.X += p.Speed
	p.clampX()
}

// clampX keeps 0 <= X <= FieldWidth-Width.
func (p *Paddle) clampX() {
	p.X = core.ClampF(p.X, 0, p.FieldWidth-p.Width)
}

// Shrink narrows the paddle by step, never below MinWidth.
// Returns false if the paddle was already at the floor.
func (p *Paddle) Shrink(step float64) bool {
	if p.Width <= p.MinWidth {
		return false
	}
	p.Width = max(p.Width-step, p.MinWidth)
	p.clampX()
	return true
}

// KeepBelow pushes the paddle down so its top is never above the top edge
// of the lowest ball. It only moves the paddle; balls are not touched.
// The paddle's bottom edge stays inside the field.
func (p *Paddle) KeepBelow(balls []*Ball) {
	for _, b := range balls {
		if top := b.Y - b.Radius; p.Y < top {
			p.Y = top
		}
	}
	if p.FieldHeight > 0 {
		p.Y = min(p.Y, p.FieldHeight-p.Height)
	}
}
