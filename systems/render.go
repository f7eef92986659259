package systems

import (
	"image/color"
	"math"

	"github.com/automoto/rigmotion/components"
	cfg "github.com/automoto/rigmotion/config"
	"github.com/automoto/rigmotion/rig"
	"github.com/automoto/rigmotion/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	boneWidth   = 2
	weaponWidth = 3
	headRadius  = 5
)

// DrawBackground draws the ground strip.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())
	gy := float32(cfg.Sandbox.GroundY)
	vector.FillRect(screen, 0, gy, w, h-gy, cfg.Ground, false)
}

// DrawSkeletons solves every rig in the side view and strokes its bones.
func DrawSkeletons(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Skeleton.Each(ecs.World, func(entry *donburi.Entry) {
		skel := components.Skeleton.Get(entry)
		char := components.Character.Get(entry)
		obj := components.Object.Get(entry)

		hipX := obj.X + obj.W/2
		hipY := obj.Y + obj.H - skel.Rig.ChainLength(rig.LeftKnee)*skel.Scale

		segs := skel.Rig.Solve2D(hipX, hipY, skel.Scale, facingOf(char))
		c := characterColor(entry)
		for _, s := range segs {
			vector.StrokeLine(screen, float32(s.X0), float32(s.Y0), float32(s.X1), float32(s.Y1), boneWidth, c, true)
		}

		if skel.Rig.Has(rig.Head) {
			x, y := skel.Rig.End(rig.Head)
			vector.DrawFilledCircle(screen, float32(x), float32(y), headRadius*float32(skel.Scale)/2.5, c, true)
		}
		if char.HasWeapon && skel.Rig.Has(rig.RightHand) {
			drawWeapon(screen, skel, char)
		}
		if entry.HasComponent(components.Bow) && components.Bow.Get(entry).Charge > 0 {
			drawBow(screen, skel, components.Bow.Get(entry).Charge)
		}
	})
}

func drawWeapon(screen *ebiten.Image, skel *components.SkeletonData, char *components.CharacterData) {
	w, ok := cfg.Weapons[char.Weapon]
	if !ok {
		return
	}
	x, y := skel.Rig.End(rig.RightHand)
	angle := skel.Rig.Heading(rig.RightHand)
	length := w.Length * skel.Scale
	x1 := x + math.Sin(angle)*length
	y1 := y + math.Cos(angle)*length
	vector.StrokeLine(screen, float32(x), float32(y), float32(x1), float32(y1), weaponWidth, w.Color, true)
}

func drawBow(screen *ebiten.Image, skel *components.SkeletonData, charge float64) {
	x, y := skel.Rig.End(rig.LeftHand)
	r := float32(6 * skel.Scale)
	alpha := uint8(120 + 135*charge)
	c := color.RGBA{R: cfg.Wood.R, G: cfg.Wood.G, B: cfg.Wood.B, A: alpha}
	vector.StrokeCircle(screen, float32(x), float32(y), r, 1.5, c, true)
}

func facingOf(char *components.CharacterData) float64 {
	if char.Facing < 0 {
		return cfg.DirectionLeft
	}
	return cfg.DirectionRight
}

func characterColor(entry *donburi.Entry) color.Color {
	switch {
	case entry.HasComponent(tags.Player):
		return cfg.LightBlue
	case entry.HasComponent(tags.Enemy):
		if components.Attack.Get(entry).Timeline.IsAttacking() {
			return cfg.Orange
		}
		return cfg.White
	case entry.HasComponent(tags.Bird):
		return cfg.Yellow
	}
	return cfg.White
}
