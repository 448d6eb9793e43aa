package main

import (
	"flag"
	"log"

	"github.com/decker502/powershooter/pkg/app"
	"github.com/decker502/powershooter/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	screenWidth  = 800
	screenHeight = 600
)

var (
	verbose = flag.Bool("verbose", false, "Enable verbose logging")
	level   = flag.Int("level", 0, "Level to start on (1-11, 0 = first level)")
	dataDir = flag.String("data", "", "Read data files from this directory instead of the embedded copy")
	watch   = flag.Bool("watch", false, "Reload data files when they change (needs -data)")
	seed    = flag.Int64("seed", 0, "Random seed (0 = time based)")
)

func main() {
	flag.Parse()

	if *dataDir != "" {
		if err := embedded.InitDir(*dataDir); err != nil {
			log.Fatalf("Failed to open data directory: %v", err)
		}
	} else if err := embedded.Init(dataFS); err != nil {
		log.Fatalf("Failed to load embedded data: %v", err)
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose: *verbose,
		Level:   *level,
		Watch:   *watch,
		Seed:    *seed,
	})
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Power Shooter")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err = ebiten.RunGame(gameApp)
	gameApp.Close()
	if err != nil {
		log.Fatal(err)
	}
}
