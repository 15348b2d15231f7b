package corral

import "github.com/hajimehoshi/ebiten/v2"

// Person is the player-controlled herder. It has no behavior of its own: each
// tick the game feeds it the currently held direction and it moves at a fixed
// speed.
type Person struct {
	AnimSprite
	speed float64
}

// NewPerson creates the herder at pos.
func NewPerson(frames [headingCount][]*ebiten.Image, pos Vec2, cfg PersonConfig) *Person {
	return &Person{
		AnimSprite: *NewAnimSprite(frames, Vec2{cfg.Width, cfg.Height}, pos, cfg.DistancePerFrame),
		speed:      cfg.Speed,
	}
}

// SetHeadingInput sets the velocity to dir scaled by the walk speed. dir is
// expected to be a canonical unit vector or zero.
func (p *Person) SetHeadingInput(dir Vec2) {
	p.vel = dir.Scale(p.speed)
}
