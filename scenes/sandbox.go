package scenes

import (
	"log"
	"sync"

	cfg "github.com/automoto/rigmotion/config"
	"github.com/automoto/rigmotion/systems"
	"github.com/automoto/rigmotion/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SandboxScene shows a player, patrolling enemies and birds on one ground line.
type SandboxScene struct {
	ecs   *ecs.ECS
	saved *systems.SavedSettings
	once  sync.Once
}

// NewSandboxScene creates the sandbox. saved may be nil.
func NewSandboxScene(saved *systems.SavedSettings) *SandboxScene {
	return &SandboxScene{saved: saved}
}

func (s *SandboxScene) Update() {
	s.once.Do(s.configure)
	s.ecs.Update()
}

func (s *SandboxScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Background)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

func (s *SandboxScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateInput)
	AddAnimationSystems(e)

	e.AddRenderer(systems.LayerDefault, systems.DrawBackground)
	e.AddRenderer(systems.LayerDefault, systems.DrawSkeletons)
	e.AddRenderer(systems.LayerDefault, systems.DrawDebug)
	e.AddRenderer(systems.LayerOverlay, systems.DrawHUD)

	PopulateSandbox(e, 1/float64(ebiten.TPS()))
	systems.ApplySavedSettings(e, s.saved)

	s.ecs = e
}

// AddAnimationSystems registers everything after raw input polling, in
// frame order.
func AddAnimationSystems(e *ecs.ECS) {
	e.AddSystem(systems.UpdatePlayerInput)
	e.AddSystem(systems.UpdateClock)
	e.AddSystem(systems.UpdatePatrols)
	e.AddSystem(systems.UpdateObjects)
	e.AddSystem(systems.UpdateReach)
	e.AddSystem(systems.UpdateLocomotion)
	e.AddSystem(systems.UpdateAttacks)
	e.AddSystem(systems.UpdateBlends)
	e.AddSystem(systems.UpdateSkeletons)
}

// PopulateSandbox spawns the session, reach space and every character
// from cfg.Sandbox. frameDelta is seconds per update.
func PopulateSandbox(e *ecs.ECS, frameDelta float64) {
	factory.CreateSession(e, frameDelta)
	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, cfg.Sandbox.CellSize, cfg.Sandbox.CellSize)

	factory.CreatePlayer(e, cfg.Sandbox.PlayerX, cfg.WeaponSword)
	for _, spawn := range cfg.Sandbox.Enemies {
		factory.CreateEnemy(e, spawn)
	}
	for _, spawn := range cfg.Sandbox.Birds {
		factory.CreateBird(e, spawn)
	}

	log.Printf("[sandbox] spawned %d enemies and %d birds", len(cfg.Sandbox.Enemies), len(cfg.Sandbox.Birds))
}
