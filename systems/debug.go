package systems

import (
	"image/color"

	"github.com/automoto/rigmotion/components"
	cfg "github.com/automoto/rigmotion/config"
	"github.com/automoto/rigmotion/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var reachColor = color.RGBA{255, 0, 0, 120}

// DrawDebug outlines body boxes, enemy reach and joint positions.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	_, settings, ok := getSession(ecs)
	if !ok || !settings.ShowJoints {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255}
			} else if obj.HasTags(tags.ResolvEnemy) {
				c = color.RGBA{255, 0, 0, 255}
			}
			vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	tags.Enemy.Each(ecs.World, func(entry *donburi.Entry) {
		char := components.Character.Get(entry)
		obj := components.Object.Get(entry)
		x := obj.X + char.Facing*cfg.Sandbox.ReachWidth
		vector.StrokeRect(screen, float32(x), float32(obj.Y), float32(obj.W), float32(obj.H), 1, reachColor, false)
	})

	components.Skeleton.Each(ecs.World, func(entry *donburi.Entry) {
		skel := components.Skeleton.Get(entry)
		for _, b := range skel.Rig.Bones() {
			x, y := skel.Rig.End(b.Joint)
			vector.FillRect(screen, float32(x)-1, float32(y)-1, 3, 3, cfg.LightGreen, false)
		}
	})
}
