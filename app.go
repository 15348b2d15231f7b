package corral

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// App implements ebiten.Game around a Game. It measures dt from the actual
// tick rate, feeds keyboard input to the simulation, and optionally shows a
// frame-stats overlay.
type App struct {
	game      *Game
	showStats bool

	fps       fpsOverlay
	statClock float64
}

// NewApp wraps game for ebiten.RunGame.
func NewApp(game *Game, showStats bool) *App {
	return &App{game: game, showStats: showStats}
}

// Update runs one simulation step. ebiten.ActualTPS reads zero on the first
// frames of a run, which makes dt infinite; Game.Advance skips those steps.
func (a *App) Update() error {
	dt := 1.0 / ebiten.ActualTPS()
	a.game.Advance(dt, ReadKeyboard())

	if a.showStats {
		a.fps.update(1.0 / float64(ebiten.TPS()))
		a.logStats(1.0 / float64(ebiten.TPS()))
	}
	return nil
}

// Draw renders the game and, when enabled, the stats overlay.
func (a *App) Draw(screen *ebiten.Image) {
	a.game.Draw(screen)
	if a.showStats {
		a.fps.draw(screen)
	}
}

// Layout fixes the logical screen size regardless of the window size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.cfg.World.Width, a.game.cfg.World.Height
}

// logStats writes a frame-stats line to stderr every ~2 seconds.
func (a *App) logStats(dt float64) {
	a.statClock += dt
	if a.statClock < 2 {
		return
	}
	a.statClock = 0
	_, _ = fmt.Fprintf(os.Stderr,
		"[corral] fps: %.1f | tps: %.1f | cows out: %d | following: %d\n",
		ebiten.ActualFPS(), ebiten.ActualTPS(), a.game.cowsOutside(), a.game.FollowedCow())
}
