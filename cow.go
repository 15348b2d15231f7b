package corral

import (
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

// wanderRate is the expected number of behavior changes per second for a cow
// in its random walk. The per-tick toggle probability is wanderRate * dt, so
// the rate is independent of frame rate.
const wanderRate = 0.1

// Cow is an animating sprite with two behavior modes. Without a target it
// wanders: at random moments it either stops or strikes out in a random
// cardinal direction. With a target set it walks toward the target one axis
// at a time, X before Y, and stops once it is within the target padding on
// both axes. Movement is never diagonal in either mode.
type Cow struct {
	AnimSprite
	cfg       CowConfig
	rng       *rand.Rand
	hasTarget bool
	target    Vec2
}

// NewCow creates a cow at pos using the given frame sequences and rng for
// its random walk.
func NewCow(frames [headingCount][]*ebiten.Image, pos Vec2, cfg CowConfig, rng *rand.Rand) *Cow {
	return &Cow{
		AnimSprite: *NewAnimSprite(frames, Vec2{cfg.Width, cfg.Height}, pos, cfg.DistancePerFrame),
		cfg:        cfg,
		rng:        rng,
	}
}

// SetTarget switches the cow to following mode. The target may be replaced
// every tick to track a moving point.
func (c *Cow) SetTarget(p Vec2) {
	c.hasTarget = true
	c.target = p
}

// ClearTarget returns the cow to its random walk.
func (c *Cow) ClearTarget() {
	c.hasTarget = false
}

// Following reports whether the cow currently has a target.
func (c *Cow) Following() bool { return c.hasTarget }

// Tick resolves the active behavior into a velocity, then delegates to the
// animation and position update.
func (c *Cow) Tick(dt float64) {
	if c.hasTarget {
		c.pursue()
	} else {
		c.wander(dt)
	}
	c.AnimSprite.Tick(dt)
}

// pursue moves toward the target one axis at a time. The X axis is resolved
// first; only when the cow is within padding on X does the Y axis drive the
// velocity.
func (c *Cow) pursue() {
	pad := c.cfg.TargetPadding
	switch {
	case c.target.X > c.pos.X+pad:
		c.vel = VecRight.Scale(c.cfg.TargetSpeed)
	case c.target.X < c.pos.X-pad:
		c.vel = VecLeft.Scale(c.cfg.TargetSpeed)
	case c.target.Y < c.pos.Y-pad:
		c.vel = VecUp.Scale(c.cfg.TargetSpeed)
	case c.target.Y > c.pos.Y+pad:
		c.vel = VecDown.Scale(c.cfg.TargetSpeed)
	default:
		c.vel = VecZero
	}
}

// wander toggles between standing and walking at an expected rate of
// wanderRate changes per second.
func (c *Cow) wander(dt float64) {
	if c.rng.Float64() >= wanderRate*dt {
		return
	}
	if c.vel != VecZero {
		c.vel = VecZero
		return
	}
	dirs := [4]Vec2{VecLeft, VecRight, VecUp, VecDown}
	c.vel = dirs[c.rng.IntN(len(dirs))].Scale(c.cfg.NormalSpeed)
}
