package bounce

import (
	"math"
	"testing"
)

var field = Bounds{Width: 800, Height: 600}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestBallAdvanceGravity(t *testing.T) {
	b := &Ball{X: 100, Y: 100, DX: 2, DY: 0, Radius: 15, Gravity: 0.2}

	c := b.Advance(field)

	if c != (Contact{}) {
		t.Errorf("Expected no contact, got %+v", c)
	}
	if !almostEqual(b.DY, 0.2) {
		t.Errorf("Gravity should be added before moving, dy = %v", b.DY)
	}
	if !almostEqual(b.X, 102) || !almostEqual(b.Y, 100.2) {
		t.Errorf("Expected position (102, 100.2), got (%v, %v)", b.X, b.Y)
	}
}

func TestBallAdvanceNoGravity(t *testing.T) {
	b := &Ball{X: 400, Y: 300, DX: -3, DY: 2, Radius: 15}

	for range 10 {
		b.Advance(field)
	}

	if b.DX != -3 || b.DY != 2 {
		t.Errorf("Velocity should not change without gravity, got (%v, %v)", b.DX, b.DY)
	}
	if b.X != 370 || b.Y != 320 {
		t.Errorf("Expected position (370, 320), got (%v, %v)", b.X, b.Y)
	}
}

func TestBallAdvanceWalls(t *testing.T) {
	tests := []struct {
		name   string
		ball   Ball
		want   Contact
		wantX  float64
		wantY  float64
		wantDX float64
		wantDY float64
	}{
		{
			name:   "left wall",
			ball:   Ball{X: 16, Y: 300, DX: -4, DY: 0, Radius: 15},
			want:   Contact{Left: true},
			wantX:  15,
			wantY:  300,
			wantDX: 4,
			wantDY: 0,
		},
		{
			name:   "right wall",
			ball:   Ball{X: 784, Y: 300, DX: 4, DY: 0, Radius: 15},
			want:   Contact{Right: true},
			wantX:  785,
			wantY:  300,
			wantDX: -4,
			wantDY: 0,
		},
		{
			name:   "top wall",
			ball:   Ball{X: 400, Y: 16, DX: 0, DY: -4, Radius: 15},
			want:   Contact{Top: true},
			wantX:  400,
			wantY:  15,
			wantDX: 0,
			wantDY: 4,
		},
		{
			name:   "corner reflects both axes",
			ball:   Ball{X: 16, Y: 16, DX: -4, DY: -4, Radius: 15},
			want:   Contact{Left: true, Top: true},
			wantX:  15,
			wantY:  15,
			wantDX: 4,
			wantDY: 4,
		},
		{
			name:   "floor is reported but not corrected",
			ball:   Ball{X: 400, Y: 584, DX: 0, DY: 3, Radius: 15},
			want:   Contact{Floor: true},
			wantX:  400,
			wantY:  587,
			wantDX: 0,
			wantDY: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.ball
			got := b.Advance(field)

			if got != tt.want {
				t.Errorf("Contact = %+v, want %+v", got, tt.want)
			}
			if b.X != tt.wantX || b.Y != tt.wantY {
				t.Errorf("Position = (%v, %v), want (%v, %v)", b.X, b.Y, tt.wantX, tt.wantY)
			}
			if b.DX != tt.wantDX || b.DY != tt.wantDY {
				t.Errorf("Velocity = (%v, %v), want (%v, %v)", b.DX, b.DY, tt.wantDX, tt.wantDY)
			}
		})
	}
}

func TestBallStaysInsideSideAndTopWalls(t *testing.T) {
	b := &Ball{X: 400, Y: 300, DX: 7, DY: -5, Radius: 15}

	for i := range 1000 {
		c := b.Advance(field)
		if c.Floor {
			b.DY = -math.Abs(b.DY)
		}
		if b.X-b.Radius < 0 || b.X+b.Radius > field.Width || b.Y-b.Radius < 0 {
			t.Fatalf("Tick %d: ball escaped to (%v, %v)", i, b.X, b.Y)
		}
	}
}

func TestContactWall(t *testing.T) {
	if (Contact{Floor: true}).Wall() {
		t.Error("Floor alone should not count as a wall bounce")
	}
	if !(Contact{Right: true}).Wall() {
		t.Error("Right wall should count as a wall bounce")
	}
}

func TestBallScale(t *testing.T) {
	b := &Ball{DX: 4, DY: -4}
	b.Scale(1.5)

	if b.DX != 6 || b.DY != -6 {
		t.Errorf("Expected velocity (6, -6), got (%v, %v)", b.DX, b.DY)
	}
}
