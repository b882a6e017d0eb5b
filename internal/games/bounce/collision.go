package bounce

import (
	"math"

	"github.com/vovakirdan/bounce-arcade/internal/core"
)

// ResolvePaddle bounces a falling ball off the paddle.
// The ball must be moving down, its bottom edge must have reached the
// paddle's top while its top edge is still above the paddle's bottom, and
// its center must lie within the paddle's horizontal span. The response
// always sends the ball up, so a ball already leaving the paddle cannot
// trigger again.
func ResolvePaddle(b *Ball, p *Paddle) bool {
	if b.DY <= 0 {
		return false
	}

	r := p.Rect()
	if b.Y+b.Radius < r.Y || b.Y-b.Radius > r.Bottom() {
		return false
	}
	if b.X < r.X || b.X > r.Right() {
		return false
	}

	b.DY = -math.Abs(b.DY)
	return true
}

// ResolveBalls swaps the velocities of two overlapping balls.
// Equal masses are assumed and overlap is left alone: the balls may stay
// visually interpenetrated for a few ticks after the swap.
func ResolveBalls(a, b *Ball) bool {
	if core.Dist(a.Pos(), b.Pos()) >= a.Radius+b.Radius {
		return false
	}
	a.DX, b.DX = b.DX, a.DX
	a.DY, b.DY = b.DY, a.DY
	return true
}

// resolveAllPairs applies ResolveBalls to every unordered pair once.
// Returns the number of swaps.
func resolveAllPairs(balls []*Ball) int {
	n := 0
	for i := 0; i < len(balls); i++ {
		for j := i + 1; j < len(balls); j++ {
			if ResolveBalls(balls[i], balls[j]) {
				n++
			}
		}
	}
	return n
}
