package corral

import "github.com/hajimehoshi/ebiten/v2"

// Sprite is the base game entity: an image drawn centered at a position,
// advanced by a velocity each tick. All entity kinds embed it.
type Sprite struct {
	img  *ebiten.Image
	size Vec2
	pos  Vec2
	vel  Vec2
}

// NewSprite creates a sprite with the given image, on-screen size, and
// initial position. A nil image is allowed; the sprite then draws nothing,
// which keeps simulation code runnable without a window.
func NewSprite(img *ebiten.Image, size, pos Vec2) *Sprite {
	return &Sprite{img: img, size: size, pos: pos}
}

// Tick advances the position by velocity * dt.
func (s *Sprite) Tick(dt float64) {
	s.pos = s.pos.Add(s.vel.Scale(dt))
}

// Draw renders the sprite's image scaled to its size and centered at
// origin + position.
func (s *Sprite) Draw(dst *ebiten.Image, origin Vec2) {
	s.drawImage(dst, s.img, origin)
}

func (s *Sprite) drawImage(dst, img *ebiten.Image, origin Vec2) {
	if img == nil {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s.size.X/float64(b.Dx()), s.size.Y/float64(b.Dy()))
	op.GeoM.Translate(origin.X+s.pos.X-s.size.X/2, origin.Y+s.pos.Y-s.size.Y/2)
	dst.DrawImage(img, op)
}

// Position returns the current position.
func (s *Sprite) Position() Vec2 { return s.pos }

// SetPosition replaces the current position.
func (s *Sprite) SetPosition(p Vec2) { s.pos = p }

// Velocity returns the current velocity.
func (s *Sprite) Velocity() Vec2 { return s.vel }

// SetVelocity replaces the current velocity.
func (s *Sprite) SetVelocity(v Vec2) { s.vel = v }

// Size returns the on-screen size.
func (s *Sprite) Size() Vec2 { return s.size }

// SetSize replaces the on-screen size.
func (s *Sprite) SetSize(sz Vec2) { s.size = sz }
