// Package corral is a small herding game for [Ebitengine]: steer the herder
// around the pasture and coax wandering cows through the gap in the fence
// until the whole herd is penned.
//
// The simulation is deterministic for a given random source and input
// sequence, and runs without a window; only the Draw methods touch the
// screen. [NewGame] builds the world, [Game.Advance] runs one step, and
// [App] adapts the whole thing to ebiten.RunGame:
//
//	cfg, _ := corral.LoadConfig("")
//	assets, _ := corral.DefaultAssets()
//	game := corral.NewGame(cfg, assets, rng)
//	ebiten.RunGame(corral.NewApp(game, false))
//
// Gameplay tuning lives in [Config]; every constant can be overridden from a
// YAML file via [LoadConfig].
//
// [Ebitengine]: https://ebitengine.org
package corral
