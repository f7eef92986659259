package systems

import (
	"fmt"

	"github.com/automoto/rigmotion/components"
	cfg "github.com/automoto/rigmotion/config"
	"github.com/automoto/rigmotion/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 10
	hudLineHeight = 14
	hudPanelWidth = 230
	hudLines      = 6
)

// DrawHUD prints the player's animation state and the cache statistics.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	session, settings, ok := getSession(ecs)
	if !ok {
		return
	}

	lines := make([]string, 0, hudLines)
	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		char := components.Character.Get(playerEntry)
		tl := components.Attack.Get(playerEntry).Timeline
		bow := components.Bow.Get(playerEntry)
		blendState := components.Blend.Get(playerEntry).Controller.State()

		lines = append(lines,
			fmt.Sprintf("weapon %s  stance %s", char.Weapon, char.Stance),
			fmt.Sprintf("attack %-8s %3.0f%%", tl.PhaseName(), tl.Progress()*100),
			fmt.Sprintf("bow %3.0f%%  pose %s", bow.Charge*100, blendState),
		)
	}

	lines = append(lines, fmt.Sprintf("time x%.2f  %.0f tps", settings.TimeScale, ebiten.ActualTPS()))
	if settings.CacheEnabled && session.Cache != nil {
		st := session.Cache.Stats()
		lines = append(lines,
			fmt.Sprintf("cache %d  hit %.0f%%", st.Size, st.HitRate()*100),
			fmt.Sprintf("evict %d  stale %d  exp %d", st.Evictions, st.Stale, st.Expired),
		)
	} else {
		lines = append(lines, "cache off")
	}

	h := float32(len(lines)*hudLineHeight + 6)
	vector.FillRect(screen, hudMargin-4, hudMargin-4, hudPanelWidth, h, cfg.BlackOverlay, false)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, hudMargin, hudMargin+i*hudLineHeight)
	}
}
