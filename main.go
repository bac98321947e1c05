package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	if err := run(); err != nil {
		log.Fatalln(err)
	}
}

func run() error {
	settings, err := platformSettings()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	ebiten.SetWindowSize(settings.WindowW, settings.WindowH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("gadgets")

	a, err := NewApp(settings)
	if err != nil {
		return fmt.Errorf("set up app: %w", err)
	}
	return fmt.Errorf("run game: %w", ebiten.RunGame(a))
}
