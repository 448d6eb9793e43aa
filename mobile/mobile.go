//go:build mobile

// Package mobile is the ebitenmobile binding entry point.
//
//	cp -r data mobile/ && ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.powershooter -o build/android/powershooter.aar -v ./mobile
//	cp -r data mobile/ && ebitenmobile bind -target ios -tags mobile -o build/ios/PowerShooter.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/powershooter/pkg/app"
	"github.com/decker502/powershooter/pkg/embedded"
)

func init() {
	if err := embedded.Init(dataFS); err != nil {
		log.Fatalf("Failed to load embedded data: %v", err)
	}

	gameApp, err := app.NewApp(app.Config{Verbose: true})
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}
	mobile.SetGame(gameApp)
}

// Dummy keeps the package exported for ebitenmobile.
func Dummy() {}
