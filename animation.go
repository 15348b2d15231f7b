package corral

import "github.com/hajimehoshi/ebiten/v2"

// Heading indexes a direction-keyed frame sequence.
type Heading int

const (
	HeadingLeft Heading = iota
	HeadingRight
	HeadingUp
	HeadingDown
	headingCount
)

// String returns the lowercase name used in the asset manifest.
func (h Heading) String() string {
	switch h {
	case HeadingLeft:
		return "left"
	case HeadingRight:
		return "right"
	case HeadingUp:
		return "up"
	case HeadingDown:
		return "down"
	}
	return "unknown"
}

// AnimSprite is a Sprite with one frame sequence per heading. The displayed
// frame is chosen by distance traveled rather than elapsed time, so a fast
// walk cycles legs faster than a slow one.
//
// Heading is resolved from the velocity sign with the X axis checked before
// the Y axis: a diagonal velocity faces left or right. While the velocity is
// zero on both axes the previously chosen frame persists, so an entity keeps
// facing the way it last moved.
type AnimSprite struct {
	Sprite
	frames           [headingCount][]*ebiten.Image
	distancePerFrame float64
	elapsed          float64
	current          *ebiten.Image
}

// NewAnimSprite creates an animating sprite. distancePerFrame is the distance
// in world units an entity travels before the next frame of its sequence is
// shown. The initial resting frame is the first downward-facing frame.
func NewAnimSprite(frames [headingCount][]*ebiten.Image, size, pos Vec2, distancePerFrame float64) *AnimSprite {
	a := &AnimSprite{
		Sprite:           Sprite{size: size, pos: pos},
		frames:           frames,
		distancePerFrame: distancePerFrame,
	}
	if len(frames[HeadingDown]) > 0 {
		a.current = frames[HeadingDown][0]
	}
	return a
}

// Tick accumulates elapsed time, selects the displayed frame, then performs
// the base position update.
func (a *AnimSprite) Tick(dt float64) {
	a.elapsed += dt
	if h, ok := a.heading(); ok {
		if seq := a.frames[h]; len(seq) > 0 && a.distancePerFrame > 0 {
			idx := int(a.elapsed*a.vel.Magnitude()/a.distancePerFrame) % len(seq)
			a.current = seq[idx]
		}
	}
	a.Sprite.Tick(dt)
}

// heading resolves the facing direction from the velocity sign. The X axis
// takes priority; ok is false when the velocity is exactly zero.
func (a *AnimSprite) heading() (Heading, bool) {
	switch {
	case a.vel.X < 0:
		return HeadingLeft, true
	case a.vel.X > 0:
		return HeadingRight, true
	case a.vel.Y < 0:
		return HeadingUp, true
	case a.vel.Y > 0:
		return HeadingDown, true
	}
	return 0, false
}

// Draw renders the currently selected frame.
func (a *AnimSprite) Draw(dst *ebiten.Image, origin Vec2) {
	a.drawImage(dst, a.current, origin)
}
