package breakout

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/pixel-arcade/internal/config"
)

// fixedRand returns the same Float64 every call.
type fixedRand float64

func (r fixedRand) Intn(int) int      { return 0 }
func (r fixedRand) Float64() float64 { return float64(r) }

const noJitter = fixedRand(0.5)

func openingState() State {
	return NewState(config.DefaultBreakoutConfig())
}

func withBall(x, y, vx, vy float64) State {
	s := openingState()
	s.Ball.X, s.Ball.Y, s.Ball.VX, s.Ball.VY = x, y, vx, vy
	return s
}

func TestNewStateLayout(t *testing.T) {
	s := openingState()

	if s.Ball != (Ball{X: 400, Y: 570, VX: 4, VY: -4, R: 8}) {
		t.Errorf("ball = %+v", s.Ball)
	}
	if s.Paddle.X != 350 || s.Paddle.Y != 580 || s.Paddle.W != 100 || s.Paddle.H != 10 {
		t.Errorf("paddle = %+v", s.Paddle)
	}
	if len(s.Bricks) != 40 {
		t.Fatalf("bricks = %d, want 40", len(s.Bricks))
	}

	tests := []struct {
		idx  int
		x, y float64
	}{
		{0, 10, 40},
		{1, 10, 70},
		{4, 10, 160},
		{5, 100, 40},
		{35, 640, 40},
		{39, 640, 160},
	}
	for _, tt := range tests {
		b := s.Bricks[tt.idx]
		if b.Rect.X != tt.x || b.Rect.Y != tt.y || b.Rect.W != 80 || b.Rect.H != 20 {
			t.Errorf("brick %d = %+v, want at (%v,%v)", tt.idx, b.Rect, tt.x, tt.y)
		}
	}
}

func TestStepFreeFlight(t *testing.T) {
	s := Step(withBall(400, 300, 4, -4), 1, noJitter)
	if s.Ball.X != 404 || s.Ball.Y != 296 {
		t.Errorf("ball at (%v,%v), want (404,296)", s.Ball.X, s.Ball.Y)
	}
	if s.Ball.VX != 4 || s.Ball.VY != -4 {
		t.Errorf("velocity changed to (%v,%v)", s.Ball.VX, s.Ball.VY)
	}
}

func TestStepWalls(t *testing.T) {
	tests := []struct {
		name           string
		x, y, vx, vy   float64
		wantX, wantY   float64
		wantVX, wantVY float64
	}{
		{"left", 5, 300, -4, 4, 8, 304, 4, 4},
		{"left already flipped", 5, 300, 4, 4, 9, 304, 4, 4},
		{"right", 795, 300, 4, 4, 792, 304, -4, 4},
		{"top", 400, 10, 4, -4, 404, 8, 4, 4},
		{"corner", 5, 10, -4, -4, 8, 8, 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Step(withBall(tt.x, tt.y, tt.vx, tt.vy), 1, noJitter)
			b := s.Ball
			if b.X != tt.wantX || b.Y != tt.wantY || b.VX != tt.wantVX || b.VY != tt.wantVY {
				t.Errorf("ball = (%v,%v v %v,%v), want (%v,%v v %v,%v)",
					b.X, b.Y, b.VX, b.VY, tt.wantX, tt.wantY, tt.wantVX, tt.wantVY)
			}
		})
	}
}

func TestStepLeftWallVelocityPositive(t *testing.T) {
	for _, vx := range []float64{-1, -4, -9.5} {
		s := Step(withBall(8, 300, vx, 0), 1, noJitter)
		if s.Ball.VX <= 0 || s.Ball.X != 8 {
			t.Errorf("vx %v: ball x=%v vx=%v", vx, s.Ball.X, s.Ball.VX)
		}
	}
}

func TestStepPaddleBounce(t *testing.T) {
	tests := []struct {
		name   string
		vy     float64
		startY float64
	}{
		{"falling", 4, 570},
		{"already rising", -4, 578},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Step(withBall(400, tt.startY, 3, tt.vy), 1, noJitter)
			if s.Ball.VY >= 0 {
				t.Errorf("vy = %v, want negative", s.Ball.VY)
			}
			if s.Ball.Y != 572 {
				t.Errorf("y = %v, want 572 (on the paddle top)", s.Ball.Y)
			}
			if s.Ball.VX != 3 {
				t.Errorf("vx = %v, want 3 with centered jitter", s.Ball.VX)
			}
			if s.Lost {
				t.Error("bounce counted as a miss")
			}
		})
	}
}

func TestStepPaddleJitter(t *testing.T) {
	tests := []struct {
		r      fixedRand
		jitter float64
		want   float64
	}{
		{0, 1, 2},
		{1, 1, 4},
		{0.75, 2, 4},
	}
	for _, tt := range tests {
		s := Step(withBall(400, 570, 3, 4), tt.jitter, tt.r)
		if s.Ball.VX != tt.want {
			t.Errorf("rand %v jitter %v: vx = %v, want %v", tt.r, tt.jitter, s.Ball.VX, tt.want)
		}
	}
}

func TestStepPaddleEdgeIsStrict(t *testing.T) {
	// Center lands exactly on the paddle's left edge: no bounce.
	s := Step(withBall(346, 570, 4, 4), 1, noJitter)
	if s.Ball.VY <= 0 {
		t.Errorf("ball bounced on the paddle edge: vy = %v", s.Ball.VY)
	}
}

func TestStepMissLoses(t *testing.T) {
	prev := withBall(100, 590, 2, 4)
	prev.Bricks[0].Alive = false
	s := Step(prev, 1, noJitter)

	if !s.Lost || s.Won {
		t.Fatalf("lost=%v won=%v", s.Lost, s.Won)
	}
	if s.Ball.X != 102 || s.Ball.Y != 594 {
		t.Errorf("ball = (%v,%v), want committed move to (102,594)", s.Ball.X, s.Ball.Y)
	}

	again := Step(s, 1, noJitter)
	if again.Ball != s.Ball || again.Score != s.Score {
		t.Error("terminal state changed")
	}
	if MovePaddle(s, 0).Paddle != s.Paddle {
		t.Error("paddle moved after loss")
	}
}

func TestStepBrickHitFromBelow(t *testing.T) {
	prev := withBall(50, 71, 0, -4)
	s := Step(prev, 1, noJitter)

	if s.Bricks[0].Alive {
		t.Fatal("brick 0 should be destroyed")
	}
	if s.Score != 1 {
		t.Errorf("score = %d, want 1", s.Score)
	}
	if s.Ball.VY != 4 || s.Ball.VX != 0 {
		t.Errorf("velocity = (%v,%v), want (0,4)", s.Ball.VX, s.Ball.VY)
	}
	if !prev.Bricks[0].Alive {
		t.Error("previous state was modified")
	}
}

func TestStepBrickHitFromSide(t *testing.T) {
	s := Step(withBall(730, 50, -4, 0), 1, noJitter)

	if s.Bricks[35].Alive {
		t.Fatal("brick 35 (row 0, column 7) should be destroyed")
	}
	if s.Ball.VX != 4 || s.Ball.VY != 0 {
		t.Errorf("velocity = (%v,%v), want (4,0)", s.Ball.VX, s.Ball.VY)
	}
}

func TestStepOneBrickPerTick(t *testing.T) {
	// Between rows 0 and 1 of column 0, touching both.
	s := Step(withBall(50, 65, 0, 0), 1, noJitter)

	if got := 40 - s.Bricks.CountAlive(); got != 1 {
		t.Errorf("destroyed %d bricks, want 1", got)
	}
	if s.Bricks[0].Alive || !s.Bricks[1].Alive {
		t.Error("expected the first brick in order to break")
	}
	if s.Score != 1 {
		t.Errorf("score = %d, want 1", s.Score)
	}
}

func TestStepOverlapPrefersColumnOrder(t *testing.T) {
	// Brick (0,0) is gone. The ball ends up touching both (0,1) and (1,0);
	// column 0 is scanned first.
	prev := withBall(95, 69, 0, -4)
	prev.Bricks[0].Alive = false
	s := Step(prev, 1, noJitter)

	if got := prev.Bricks.CountAlive() - s.Bricks.CountAlive(); got != 1 {
		t.Fatalf("destroyed %d bricks, want 1", got)
	}
	for i, b := range s.Bricks {
		if prev.Bricks[i].Alive && !b.Alive {
			if b.Rect.X != 10 || b.Rect.Y != 70 {
				t.Errorf("destroyed brick at (%v,%v), want (10,70)", b.Rect.X, b.Rect.Y)
			}
		}
	}
}

func TestStepLastBrickWins(t *testing.T) {
	prev := withBall(50, 71, 0, -4)
	for i := 1; i < len(prev.Bricks); i++ {
		prev.Bricks[i].Alive = false
	}
	s := Step(prev, 1, noJitter)

	if !s.Won || s.Lost {
		t.Fatalf("won=%v lost=%v", s.Won, s.Lost)
	}
	if !s.Terminal() {
		t.Error("Terminal() = false")
	}
	if again := Step(s, 1, noJitter); again.Ball != s.Ball {
		t.Error("won state changed")
	}
}

func TestMovePaddle(t *testing.T) {
	tests := []struct {
		px, want float64
	}{
		{400, 350},
		{0, 0},
		{30, 0},
		{800, 700},
		{760, 700},
		{123, 73},
	}
	for _, tt := range tests {
		s := MovePaddle(openingState(), tt.px)
		if s.Paddle.X != tt.want {
			t.Errorf("MovePaddle(%v) x = %v, want %v", tt.px, s.Paddle.X, tt.want)
		}
	}
}

func TestRandomPlayStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7)) //#nosec G404 -- test input
	s := openingState()
	score := 0

	for i := 0; i < 5000 && !s.Terminal(); i++ {
		// Track the ball so the paddle keeps it in play most of the time.
		s = MovePaddle(s, s.Ball.X+rng.Float64()*40-20)
		s = Step(s, 1, rng)

		if s.Ball.X < s.Ball.R || s.Ball.X > s.Field.W-s.Ball.R {
			t.Fatalf("tick %d: ball x %v outside walls", i, s.Ball.X)
		}
		if s.Ball.Y < s.Ball.R {
			t.Fatalf("tick %d: ball y %v above top", i, s.Ball.Y)
		}
		if s.Paddle.X < 0 || s.Paddle.Right() > s.Field.W {
			t.Fatalf("tick %d: paddle %v off field", i, s.Paddle)
		}
		if s.Score < score {
			t.Fatalf("tick %d: score dropped %d -> %d", i, score, s.Score)
		}
		score = s.Score
	}
}
