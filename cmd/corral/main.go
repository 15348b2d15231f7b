// Corral is a cow-herding game: steer the herder with the arrow keys, tap
// space next to a cow to make it follow you, and lead the whole herd through
// the gap in the fence.
package main

import (
	"flag"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/pasturegames/corral"
)

func main() {
	tuning := flag.String("tuning", "", "path to a YAML tuning file overriding gameplay constants")
	stats := flag.Bool("stats", false, "show the FPS/TPS overlay and log frame stats to stderr")
	seed := flag.Uint64("seed", 0, "seed for cow behavior (0 picks a random seed)")
	flag.Parse()

	cfg, err := corral.LoadConfig(*tuning)
	if err != nil {
		log.Fatal(err)
	}
	assets, err := corral.DefaultAssets()
	if err != nil {
		log.Fatal(err)
	}

	s := *seed
	if s == 0 {
		s = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(s, s))

	game := corral.NewGame(cfg, assets, rng)

	ebiten.SetWindowSize(cfg.World.Width, cfg.World.Height)
	ebiten.SetWindowTitle("Corral")
	ebiten.SetTPS(cfg.World.TPS)
	if err := ebiten.RunGame(corral.NewApp(game, *stats)); err != nil {
		log.Fatal(err)
	}
}
