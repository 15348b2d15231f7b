package corral

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

// Entity is anything the game ticks and draws each frame.
type Entity interface {
	Tick(dt float64)
	Draw(dst *ebiten.Image, origin Vec2)
}

// pastureGreen is the background fill.
var pastureGreen = color.RGBA{R: 88, G: 148, B: 74, A: 255}

// Game owns every entity and runs the per-frame simulation: input, movement,
// fence collision, and the win check. It is deterministic for a given rng and
// input sequence, and runs without a window; only Draw touches the screen.
type Game struct {
	cfg Config
	rng *rand.Rand

	person *Person
	fence  *Fence
	cows   []*Cow
	title  *Sprite

	// drawList holds every entity in its fixed draw order: title, fence,
	// person, then cows. Later entries draw on top.
	drawList []Entity

	// followed indexes the cow currently tracking the herder, -1 for none.
	followed int

	won    bool
	banner *Banner
}

// NewGame builds the world: the herder left of the pen, the pen in the lower
// half of the field, the title along the top edge, and cows scattered at
// random positions within the play bounds. A few warm-up ticks are run at the
// nominal dt so the herd has already wandered apart on the first frame.
//
// assets may hold nil images; the game then simulates without rendering,
// which is how the tests run.
func NewGame(cfg Config, assets *AssetSet, rng *rand.Rand) *Game {
	if rng == nil {
		rng = rand.New(rand.NewPCG(0, 1))
	}
	g := &Game{
		cfg:      cfg,
		rng:      rng,
		followed: -1,
	}

	h := float64(cfg.World.Height)
	g.fence = NewFence(assets.Fence, Vec2{0, 80}, cfg.Fence)
	g.person = NewPerson(assets.Person, Vec2{-250, 0}, cfg.Person)
	g.title = NewSprite(assets.Title, Vec2{300, 80}, Vec2{0, -h/2 + 70})
	g.banner = NewBanner(Vec2{0, -h/2 + 140})

	play := g.playBounds()
	for i := 0; i < cfg.World.CowCount; i++ {
		pos := Vec2{
			X: (g.rng.Float64()*2 - 1) * play.X / 2,
			Y: (g.rng.Float64()*2 - 1) * play.Y / 2,
		}
		g.cows = append(g.cows, NewCow(assets.Cow, pos, cfg.Cow, g.rng))
	}

	g.drawList = append(g.drawList, g.title, g.fence, g.person)
	for _, c := range g.cows {
		g.drawList = append(g.drawList, c)
	}

	settleDT := 1.0 / float64(cfg.World.TPS)
	for i := 0; i < cfg.World.SettleTicks; i++ {
		g.Advance(settleDT, InputFrame{})
	}
	return g
}

// Advance runs one simulation step. A dt that is zero, infinite, or NaN skips
// the step entirely; no state mutates. This covers the first frames of a run,
// where the measured frame rate is not yet stable.
func (g *Game) Advance(dt float64, in InputFrame) {
	if dt == 0 || math.IsInf(dt, 0) || math.IsNaN(dt) {
		return
	}

	if in.Space {
		g.toggleFollow()
	}
	g.person.SetHeadingInput(in.Heading())
	if g.followed >= 0 {
		g.cows[g.followed].SetTarget(g.person.Position())
	}

	for _, e := range g.drawList {
		e.Tick(dt)
	}

	play := g.playBounds()
	for _, c := range g.cows {
		// The re-tick after inverting compensates for the step already taken,
		// pushing the cow back where it came from. Only the movement half of
		// the tick re-runs; behavior has already been resolved this frame.
		if g.fence.Overlaps(c.Position()) {
			c.SetVelocity(c.Velocity().Scale(-1))
			c.AnimSprite.Tick(dt)
		}
		if !InBounds(c.Position(), VecZero, play) {
			c.SetVelocity(c.Velocity().Scale(-1))
			c.AnimSprite.Tick(dt)
		}
	}

	if g.fence.Overlaps(g.person.Position()) {
		// Hard stop: undo the step and stand still, no bounce.
		g.person.SetPosition(g.person.Position().Sub(g.person.Velocity().Scale(dt)))
		g.person.SetVelocity(VecZero)
	}

	g.banner.Update(dt)

	if !g.won && g.cowsOutside() == 0 {
		g.won = true
		g.banner.Success()
	}
}

// Draw paints the background, shifts the origin to the screen center, and
// renders the banner followed by every entity in draw order.
func (g *Game) Draw(dst *ebiten.Image) {
	dst.Fill(pastureGreen)
	origin := Vec2{float64(g.cfg.World.Width) / 2, float64(g.cfg.World.Height) / 2}
	g.banner.Draw(dst, origin)
	for _, e := range g.drawList {
		e.Draw(dst, origin)
	}
}

// Won reports whether every cow has been herded into the pen at least once.
// The flag never resets.
func (g *Game) Won() bool { return g.won }

// FollowedCow returns the index of the cow currently tracking the herder,
// or -1.
func (g *Game) FollowedCow() int { return g.followed }

// toggleFollow releases the followed cow, or, when none is followed, picks up
// the first cow in creation order within follow range of the herder. No cow
// in range leaves the state unchanged.
func (g *Game) toggleFollow() {
	if g.followed >= 0 {
		g.cows[g.followed].ClearTarget()
		g.followed = -1
		return
	}
	for i, c := range g.cows {
		if c.Position().Distance(g.person.Position()) < g.cfg.World.FollowRange {
			g.followed = i
			c.SetTarget(g.person.Position())
			return
		}
	}
}

// cowsOutside counts cows not yet inside the pen.
func (g *Game) cowsOutside() int {
	n := 0
	for _, c := range g.cows {
		if !g.fence.Interior(c.Position()) {
			n++
		}
	}
	return n
}

// playBounds is the full extents of the area entities may occupy, centered on
// the origin and inset from the screen edges by the edge margin.
func (g *Game) playBounds() Vec2 {
	return Vec2{
		X: float64(g.cfg.World.Width) - 2*g.cfg.World.EdgeMargin,
		Y: float64(g.cfg.World.Height) - 2*g.cfg.World.EdgeMargin,
	}
}
