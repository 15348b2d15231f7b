package corral

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	instructionsText = "Herd the cows into the pen!\nArrows move, space picks up the nearest cow."
	successText      = "The herd is home!"

	instructionsScale = 2.0
	successScale      = 4.0
	popDuration       = 0.4 // seconds for the success pop
)

// bannerImgW/H fit the longest banner line rendered by ebitenutil.DebugPrint
// (6x16 pixels per glyph) before scaling.
const (
	bannerImgW = 320
	bannerImgH = 40
)

// Banner is the description text under the title. It has two states:
// instructions, shown from setup, and success, entered once when every cow is
// in the pen. The success transition pops the text to a larger scale with a
// short tween.
//
// The text is rasterized into a small offscreen image and blitted with a
// scale transform. The image is allocated lazily on first draw, so the
// simulation can run without a window.
type Banner struct {
	text  string
	scale float64
	pos   Vec2 // offset from the screen-center origin

	tween *gween.Tween

	img   *ebiten.Image
	drawn string // text currently rasterized into img
}

// NewBanner creates the banner in its instructional state.
func NewBanner(pos Vec2) *Banner {
	return &Banner{
		text:  instructionsText,
		scale: instructionsScale,
		pos:   pos,
	}
}

// Success switches the banner to its success state. The switch is one-way;
// calling Success again restarts nothing.
func (b *Banner) Success() {
	if b.text == successText {
		return
	}
	b.text = successText
	b.tween = gween.New(float32(b.scale), successScale, popDuration, ease.OutBack)
}

// Text returns the currently displayed text.
func (b *Banner) Text() string { return b.text }

// Scale returns the current text scale.
func (b *Banner) Scale() float64 { return b.scale }

// Update advances the pop tween, if one is running.
func (b *Banner) Update(dt float64) {
	if b.tween == nil {
		return
	}
	v, done := b.tween.Update(float32(dt))
	b.scale = float64(v)
	if done {
		b.tween = nil
	}
}

// Draw blits the banner centered horizontally at origin + pos.
func (b *Banner) Draw(dst *ebiten.Image, origin Vec2) {
	if b.img == nil {
		b.img = ebiten.NewImage(bannerImgW, bannerImgH)
	}
	if b.drawn != b.text {
		b.img.Clear()
		ebitenutil.DebugPrint(b.img, b.text)
		b.drawn = b.text
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(b.scale, b.scale)
	op.GeoM.Translate(
		origin.X+b.pos.X-bannerImgW*b.scale/2,
		origin.Y+b.pos.Y-bannerImgH*b.scale/2,
	)
	dst.DrawImage(b.img, op)
}
