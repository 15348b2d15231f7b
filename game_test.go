package corral

import (
	"math"
	"math/rand/v2"
	"testing"
)

const testDT = 1.0 / 60.0

// newTestGame builds a game with no warm-up ticks so entity positions are
// exactly where each test puts them.
func newTestGame(cows int) *Game {
	cfg := DefaultConfig()
	cfg.World.SettleTicks = 0
	cfg.World.CowCount = cows
	return NewGame(cfg, &AssetSet{}, rand.New(rand.NewPCG(11, 11)))
}

// parkCows moves every cow well away from the fence and the play-area edges
// and stands it still, so only the entity under test moves.
func parkCows(g *Game) {
	for i, c := range g.cows {
		c.SetPosition(Vec2{-400 + float64(i)*40, -250})
		c.SetVelocity(VecZero)
		c.ClearTarget()
	}
}

func TestGameSetup(t *testing.T) {
	g := newTestGame(6)

	if len(g.cows) != 6 {
		t.Fatalf("cow count = %d, want 6", len(g.cows))
	}
	if len(g.drawList) != 9 { // title, fence, person, 6 cows
		t.Errorf("draw list length = %d, want 9", len(g.drawList))
	}
	if g.FollowedCow() != -1 {
		t.Errorf("followed = %d, want -1", g.FollowedCow())
	}
	if g.Won() {
		t.Error("new game should not be won")
	}

	play := g.playBounds()
	for i, c := range g.cows {
		p := c.Position()
		if math.Abs(p.X) > play.X/2 || math.Abs(p.Y) > play.Y/2 {
			t.Errorf("cow %d spawned at %v, outside play bounds %v", i, p, play)
		}
	}
}

func TestGameSettleScattersCows(t *testing.T) {
	cfg := DefaultConfig()
	g := NewGame(cfg, &AssetSet{}, rand.New(rand.NewPCG(11, 11)))

	// The warm-up ran; the game is still in a playable state.
	if g.FollowedCow() != -1 {
		t.Errorf("followed = %d, want -1", g.FollowedCow())
	}
	if len(g.cows) != cfg.World.CowCount {
		t.Errorf("cow count = %d, want %d", len(g.cows), cfg.World.CowCount)
	}
}

func TestGameInvalidDtSkipsTick(t *testing.T) {
	g := newTestGame(3)
	parkCows(g)
	g.person.SetVelocity(Vec2{10, 0})

	type snapshot struct {
		positions  []Vec2
		velocities []Vec2
		personPos  Vec2
		personVel  Vec2
		followed   int
		won        bool
		banner     string
	}
	take := func() snapshot {
		s := snapshot{
			personPos: g.person.Position(),
			personVel: g.person.Velocity(),
			followed:  g.FollowedCow(),
			won:       g.Won(),
			banner:    g.banner.Text(),
		}
		for _, c := range g.cows {
			s.positions = append(s.positions, c.Position())
			s.velocities = append(s.velocities, c.Velocity())
		}
		return s
	}

	before := take()
	in := InputFrame{Right: true, Space: true}
	for _, dt := range []float64{0, math.NaN(), math.Inf(1), math.Inf(-1)} {
		g.Advance(dt, in)
	}
	after := take()

	if after.personPos != before.personPos || after.personVel != before.personVel {
		t.Errorf("person changed: %+v -> %+v", before.personPos, after.personPos)
	}
	if after.followed != before.followed {
		t.Errorf("followed changed: %d -> %d", before.followed, after.followed)
	}
	if after.won != before.won || after.banner != before.banner {
		t.Error("win state changed on an invalid tick")
	}
	for i := range before.positions {
		if after.positions[i] != before.positions[i] || after.velocities[i] != before.velocities[i] {
			t.Errorf("cow %d changed on an invalid tick", i)
		}
	}
}

func TestGameSpacePicksUpNearbyCow(t *testing.T) {
	g := newTestGame(1)
	parkCows(g)
	g.person.SetPosition(Vec2{-300, -200})
	g.cows[0].SetPosition(Vec2{-270, -200}) // distance 30, within range 50

	g.Advance(testDT, InputFrame{Space: true})

	if g.FollowedCow() != 0 {
		t.Fatalf("followed = %d, want 0", g.FollowedCow())
	}
	if !g.cows[0].Following() {
		t.Fatal("cow should be following")
	}
	if g.cows[0].target != g.person.Position() {
		t.Errorf("target = %v, want person position %v", g.cows[0].target, g.person.Position())
	}
}

func TestGameSpaceSelectsFirstCowInCreationOrder(t *testing.T) {
	g := newTestGame(3)
	parkCows(g)
	g.person.SetPosition(Vec2{-300, -210})
	g.cows[0].SetPosition(Vec2{100, 100})   // far out of range
	g.cows[1].SetPosition(Vec2{-290, -200}) // in range
	g.cows[2].SetPosition(Vec2{-300, -205}) // in range and closer

	g.Advance(testDT, InputFrame{Space: true})

	if g.FollowedCow() != 1 {
		t.Errorf("followed = %d, want 1 (first in creation order)", g.FollowedCow())
	}
}

func TestGameSpaceWithNoCowInRange(t *testing.T) {
	g := newTestGame(2)
	parkCows(g)
	g.person.SetPosition(Vec2{300, 200})

	g.Advance(testDT, InputFrame{Space: true})

	if g.FollowedCow() != -1 {
		t.Errorf("followed = %d, want -1", g.FollowedCow())
	}
}

func TestGameSpaceReleasesFollowedCow(t *testing.T) {
	g := newTestGame(1)
	parkCows(g)
	g.person.SetPosition(Vec2{-300, -200})
	g.cows[0].SetPosition(Vec2{-270, -200})

	g.Advance(testDT, InputFrame{Space: true})
	if g.FollowedCow() != 0 {
		t.Fatal("precondition: cow should be followed")
	}

	g.Advance(testDT, InputFrame{Space: true})

	if g.FollowedCow() != -1 {
		t.Errorf("followed = %d, want -1 after release", g.FollowedCow())
	}
	if g.cows[0].Following() {
		t.Error("cow should no longer be following")
	}
}

func TestGameFollowedCowApproachesAndStops(t *testing.T) {
	g := newTestGame(1)
	parkCows(g)
	g.person.SetPosition(Vec2{-300, -200})
	g.cows[0].SetPosition(Vec2{-270, -200})

	g.Advance(testDT, InputFrame{Space: true})
	if g.FollowedCow() != 0 {
		t.Fatal("precondition: cow should be followed")
	}

	// Teleport the herder away; the target tracks it every tick and the cow
	// closes the gap along a single axis.
	g.person.SetPosition(Vec2{-100, -200})
	for i := 0; i < 200; i++ {
		g.Advance(testDT, InputFrame{})
		v := g.cows[0].Velocity()
		if v.X != 0 && v.Y != 0 {
			t.Fatalf("tick %d: diagonal velocity %v", i, v)
		}
	}

	if got := g.cows[0].Velocity(); got != VecZero {
		t.Errorf("cow velocity = %v, want zero once within padding", got)
	}
	p := g.cows[0].Position()
	if math.Abs(-100-p.X) > 40+1e-9 || math.Abs(-200-p.Y) > 40+1e-9 {
		t.Errorf("cow stopped at %v, not within padding of the herder", p)
	}
}

func TestGameCowBouncesOffFence(t *testing.T) {
	g := newTestGame(1)
	parkCows(g)
	g.fence.SetPosition(Vec2{0, 0})
	// Following a far-left target makes the cow's behavior deterministic.
	g.cows[0].SetPosition(Vec2{136.5, 0})
	g.cows[0].SetTarget(Vec2{-10000, 0})

	g.Advance(testDT, InputFrame{})

	// One step left lands on the ring; the velocity inverts and the re-tick
	// undoes the step exactly.
	if got := g.cows[0].Velocity(); got != (Vec2{90, 0}) {
		t.Errorf("velocity = %v, want {90 0}", got)
	}
	if got := g.cows[0].Position(); math.Abs(got.X-136.5) > 1e-9 || got.Y != 0 {
		t.Errorf("position = %v, want {136.5 0}", got)
	}
}

func TestGameCowBouncesOffPlayBounds(t *testing.T) {
	g := newTestGame(1)
	parkCows(g)
	// Play bounds are 860x540 centered on the origin: the right edge is 430.
	g.cows[0].SetPosition(Vec2{429, 0})
	g.cows[0].SetTarget(Vec2{10000, 0})

	g.Advance(testDT, InputFrame{})

	if got := g.cows[0].Velocity(); got != (Vec2{-90, 0}) {
		t.Errorf("velocity = %v, want {-90 0}", got)
	}
	if got := g.cows[0].Position(); math.Abs(got.X-429) > 1e-9 || got.Y != 0 {
		t.Errorf("position = %v, want {429 0}", got)
	}
}

func TestGamePersonHardStopsOnFence(t *testing.T) {
	g := newTestGame(1)
	parkCows(g)
	g.fence.SetPosition(Vec2{0, 0})
	g.person.SetPosition(Vec2{166, 0}) // just beyond the ring's outer bound

	g.Advance(testDT, InputFrame{Left: true})

	// The step into the ring is rolled back and the herder stands still.
	if got := g.person.Position(); got != (Vec2{166, 0}) {
		t.Errorf("position = %v, want {166 0}", got)
	}
	if got := g.person.Velocity(); got != VecZero {
		t.Errorf("velocity = %v, want zero", got)
	}
}

func TestGameWinsWhenAllCowsInside(t *testing.T) {
	g := newTestGame(2)
	parkCows(g)
	g.cows[0].SetPosition(g.fence.Position())
	g.cows[1].SetPosition(g.fence.Position().Add(Vec2{20, 10}))

	if g.Won() {
		t.Fatal("precondition: game not yet won")
	}

	g.Advance(testDT, InputFrame{})

	if !g.Won() {
		t.Fatal("game should be won with every cow inside the pen")
	}
	if g.banner.Text() != successText {
		t.Errorf("banner text = %q, want success text", g.banner.Text())
	}
}

func TestGameWinIsOneWay(t *testing.T) {
	g := newTestGame(2)
	parkCows(g)
	g.cows[0].SetPosition(g.fence.Position())
	g.cows[1].SetPosition(g.fence.Position())
	g.Advance(testDT, InputFrame{})
	if !g.Won() {
		t.Fatal("precondition: game should be won")
	}

	// A cow escaping later does not revert the win.
	g.cows[0].SetPosition(Vec2{400, -250})
	g.cows[0].SetVelocity(VecZero)
	g.Advance(testDT, InputFrame{})

	if !g.Won() {
		t.Error("win state should never revert")
	}
	if g.banner.Text() != successText {
		t.Errorf("banner text = %q, want success text", g.banner.Text())
	}
}

func TestGameWinPopCompletes(t *testing.T) {
	g := newTestGame(1)
	parkCows(g)
	g.cows[0].SetPosition(g.fence.Position())

	g.Advance(testDT, InputFrame{})
	if !g.Won() {
		t.Fatal("precondition: game should be won")
	}

	// Run well past the pop duration; the banner settles at the success
	// scale.
	for i := 0; i < 60; i++ {
		g.Advance(testDT, InputFrame{})
	}
	if math.Abs(g.banner.Scale()-successScale) > 0.01 {
		t.Errorf("banner scale = %f, want %f", g.banner.Scale(), successScale)
	}
}

func TestGameScriptedWalk(t *testing.T) {
	g := newTestGame(1)
	parkCows(g)
	start := g.person.Position()

	script, err := LoadScript([]byte(`{"steps": [
		{"action": "hold", "key": "down"},
		{"action": "wait", "frames": 30},
		{"action": "release", "key": "down"},
		{"action": "wait", "frames": 10}
	]}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}

	script.Run(g, testDT)

	// 30 frames at 150 units/s and 60 TPS is 75 units of travel; the last 10
	// frames stand still.
	want := start.Add(Vec2{0, 75})
	if got := g.person.Position(); math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Errorf("position = %v, want %v", got, want)
	}
}
