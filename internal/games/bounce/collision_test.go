package bounce

import "testing"

func newTestPaddle() *Paddle {
	return &Paddle{X: 350, Y: 580, Width: 100, Height: 15, Speed: 7, MinWidth: 50, FieldWidth: 800}
}

func TestResolvePaddle(t *testing.T) {
	tests := []struct {
		name   string
		ball   Ball
		hit    bool
		wantDY float64
	}{
		{"falling onto paddle", Ball{X: 400, Y: 585, DY: 3, Radius: 15}, true, -3},
		{"edge touching paddle top", Ball{X: 400, Y: 565, DY: 2, Radius: 15}, true, -2},
		{"paddle left end", Ball{X: 350, Y: 580, DY: 5, Radius: 15}, true, -5},
		{"paddle right end", Ball{X: 450, Y: 580, DY: 5, Radius: 15}, true, -5},
		{"moving up through paddle", Ball{X: 400, Y: 585, DY: -3, Radius: 15}, false, -3},
		{"horizontal only", Ball{X: 400, Y: 585, DX: 4, Radius: 15}, false, 0},
		{"above paddle", Ball{X: 400, Y: 500, DY: 3, Radius: 15}, false, 3},
		{"left of paddle", Ball{X: 340, Y: 585, DY: 3, Radius: 15}, false, 3},
		{"right of paddle", Ball{X: 460, Y: 585, DY: 3, Radius: 15}, false, 3},
		{"below paddle", Ball{X: 400, Y: 620, DY: 3, Radius: 4}, false, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.ball
			got := ResolvePaddle(&b, newTestPaddle())

			if got != tt.hit {
				t.Errorf("ResolvePaddle = %v, want %v", got, tt.hit)
			}
			if b.DY != tt.wantDY {
				t.Errorf("dy = %v, want %v", b.DY, tt.wantDY)
			}
		})
	}
}

func TestResolvePaddleDoesNotRetrigger(t *testing.T) {
	b := &Ball{X: 400, Y: 585, DY: 3, Radius: 15}
	p := newTestPaddle()

	if !ResolvePaddle(b, p) {
		t.Fatal("First contact should bounce")
	}
	// Still overlapping the paddle, now moving up
	if ResolvePaddle(b, p) {
		t.Error("A ball moving up must not bounce again")
	}
	if b.DY >= 0 {
		t.Errorf("Ball should keep moving up, dy = %v", b.DY)
	}
}

func TestResolveBallsSwapsVelocities(t *testing.T) {
	// Overlapping balls trade velocities; they may stay overlapped afterwards
	a := &Ball{X: 100, Y: 100, DX: 2, DY: 3, Radius: 15}
	b := &Ball{X: 120, Y: 100, DX: -1, DY: 4, Radius: 15}

	if !ResolveBalls(a, b) {
		t.Fatal("Balls 20 apart with radii 15 should collide")
	}
	if a.DX != -1 || a.DY != 4 {
		t.Errorf("Ball a velocity = (%v, %v), want (-1, 4)", a.DX, a.DY)
	}
	if b.DX != 2 || b.DY != 3 {
		t.Errorf("Ball b velocity = (%v, %v), want (2, 3)", b.DX, b.DY)
	}
	if a.X != 100 || b.X != 120 {
		t.Error("Positions should not be separated")
	}
}

func TestResolveBallsHeadOn(t *testing.T) {
	a := &Ball{X: 100, Y: 100, DX: 2, DY: 0, Radius: 15}
	b := &Ball{X: 105, Y: 100, DX: -2, DY: 0, Radius: 15}

	if !ResolveBalls(a, b) {
		t.Fatal("Balls 5 apart with radii 15 should collide")
	}
	if a.DX != -2 || a.DY != 0 || b.DX != 2 || b.DY != 0 {
		t.Errorf("Velocities = (%v, %v) and (%v, %v), want (-2, 0) and (2, 0)", a.DX, a.DY, b.DX, b.DY)
	}
	if a.X != 100 || b.X != 105 {
		t.Error("Positions should be unchanged")
	}
}

func TestResolveBallsApart(t *testing.T) {
	tests := []struct {
		name string
		dist float64
		hit  bool
	}{
		{"overlapping", 29, true},
		{"exactly touching", 30, false},
		{"apart", 50, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Ball{X: 100, Y: 100, DX: 1, Radius: 15}
			b := &Ball{X: 100 + tt.dist, Y: 100, DX: -1, Radius: 15}

			if got := ResolveBalls(a, b); got != tt.hit {
				t.Errorf("ResolveBalls = %v, want %v", got, tt.hit)
			}
		})
	}
}

func TestResolveAllPairs(t *testing.T) {
	balls := []*Ball{
		{X: 100, Y: 100, DX: 1, Radius: 15},
		{X: 110, Y: 100, DX: 2, Radius: 15},
		{X: 500, Y: 100, DX: 3, Radius: 15},
	}

	if n := resolveAllPairs(balls); n != 1 {
		t.Errorf("Expected 1 swap, got %d", n)
	}
	if balls[0].DX != 2 || balls[1].DX != 1 || balls[2].DX != 3 {
		t.Errorf("Unexpected velocities %v %v %v", balls[0].DX, balls[1].DX, balls[2].DX)
	}
}

func TestPaddleStaysInBounds(t *testing.T) {
	p := newTestPaddle()

	for range 200 {
		p.MoveLeft()
		if p.X < 0 {
			t.Fatalf("Paddle left the field: x = %v", p.X)
		}
	}
	if p.X != 0 {
		t.Errorf("Paddle should stop at the left wall, x = %v", p.X)
	}

	for range 200 {
		p.MoveRight()
		if p.X+p.Width > p.FieldWidth {
			t.Fatalf("Paddle left the field: x = %v", p.X)
		}
	}
	if p.X != p.FieldWidth-p.Width {
		t.Errorf("Paddle should stop at the right wall, x = %v", p.X)
	}
}

func TestPaddleShrink(t *testing.T) {
	p := newTestPaddle()
	prev := p.Width

	for i := range 10 {
		p.Shrink(10)
		if p.Width > prev {
			t.Fatalf("Shrink %d grew the paddle: %v -> %v", i, prev, p.Width)
		}
		if p.Width < p.MinWidth {
			t.Fatalf("Shrink %d went below the minimum: %v", i, p.Width)
		}
		prev = p.Width
	}

	if p.Width != 50 {
		t.Errorf("Expected width 50 after repeated shrinking, got %v", p.Width)
	}
	if p.Shrink(10) {
		t.Error("Shrink at the minimum should report false")
	}
}

func TestPaddleShrinkStopsAtMinimum(t *testing.T) {
	p := newTestPaddle()
	p.Width = 55

	if !p.Shrink(10) {
		t.Fatal("Shrink above the minimum should report true")
	}
	if p.Width != 50 {
		t.Errorf("Expected width clamped to 50, got %v", p.Width)
	}
}

func TestPaddleKeepBelow(t *testing.T) {
	p := newTestPaddle()
	p.Y = 300

	balls := []*Ball{
		{X: 100, Y: 200, Radius: 15},
		{X: 200, Y: 400, Radius: 15},
	}
	p.KeepBelow(balls)

	if p.Y != 385 {
		t.Errorf("Paddle top should follow the lowest ball top 385, got %v", p.Y)
	}
	if balls[1].Y != 400 {
		t.Error("KeepBelow must not move balls")
	}
}

func TestPaddleKeepBelowStaysInField(t *testing.T) {
	p := newTestPaddle()
	p.FieldHeight = 600

	p.KeepBelow([]*Ball{{X: 400, Y: 605, DY: -3, Radius: 15}})

	if p.Y != 585 {
		t.Errorf("Paddle top should stop at 585, got %v", p.Y)
	}
	if p.Y+p.Height > p.FieldHeight {
		t.Errorf("Paddle bottom %v is below the field", p.Y+p.Height)
	}
}
