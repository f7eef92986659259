package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/rigmotion/config"
	"github.com/automoto/rigmotion/scenes"
	"github.com/automoto/rigmotion/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(saved *systems.SavedSettings) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewSandboxScene(saved),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	tuning := flag.String("tuning", "", "YAML file with weapon, gait, blend and cache overrides")
	joints := flag.Bool("joints", false, "Start with joint markers and reach boxes visible")
	flag.Parse()

	config.Debug.TuningPath = *tuning
	config.Debug.ShowJoints = *joints

	if config.Debug.TuningPath != "" {
		if err := config.LoadTuning(config.Debug.TuningPath); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, err := systems.LoadSettings()
	if err != nil {
		saved = nil
	}

	if err := ebiten.RunGame(NewGame(saved)); err != nil {
		log.Fatal(err)
	}
}
