package corral

import "github.com/hajimehoshi/ebiten/v2"

// Fence is the enclosure. Its collision region is a hollow rectangular ring:
// inside the outer bound, outside the inner bound, with one gap centered at
// the top-middle through which entities pass freely.
type Fence struct {
	Sprite
	edgeWidth float64
	opening   Vec2 // full extents of the gap
}

// NewFence creates the fence at pos.
func NewFence(img *ebiten.Image, pos Vec2, cfg FenceConfig) *Fence {
	return &Fence{
		Sprite:    Sprite{img: img, size: Vec2{cfg.Width, cfg.Height}, pos: pos},
		edgeWidth: cfg.EdgeWidth,
		opening:   Vec2{cfg.OpeningWidth, cfg.EdgeWidth},
	}
}

// Overlaps reports whether p lies on the fence's collision ring. The ring
// spans half the edge width to either side of the fence footprint, minus the
// opening.
func (f *Fence) Overlaps(p Vec2) bool {
	half := Vec2{f.edgeWidth / 2, f.edgeWidth / 2}
	if !InBounds(p, f.pos, f.size.Add(half)) {
		return false
	}
	if InBounds(p, f.pos, f.size.Sub(half)) {
		return false
	}
	return !InBounds(p, f.openingCenter(), f.opening)
}

// Interior reports whether p lies inside the pen itself, strictly within the
// inner bound of the ring. The win condition counts cows by this check.
func (f *Fence) Interior(p Vec2) bool {
	half := Vec2{f.edgeWidth / 2, f.edgeWidth / 2}
	return InBounds(p, f.pos, f.size.Sub(half))
}

// openingCenter is the middle of the gap: top-middle of the footprint.
func (f *Fence) openingCenter() Vec2 {
	return f.pos.Add(Vec2{0, -f.size.Y / 2})
}
