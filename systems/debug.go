package systems

import (
	"fmt"
	"strings"

	"github.com/automoto/navpatrol/components"
	"github.com/automoto/navpatrol/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug prints load progress, agent and player state in the top-left corner.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, DebugText(e))
}

// DebugText is the overlay content. It is separate from drawing so headless runs can log it.
func DebugText(e *ecs.ECS) string {
	var b strings.Builder
	_, elapsed := tick(e)
	fmt.Fprintf(&b, "t=%.1fs tps=%.0f\n", elapsed, ebiten.ActualTPS())

	if entry, ok := components.Loading.First(e.World); ok {
		if n := components.Loading.Get(entry).Loader.Pending(); n > 0 {
			fmt.Fprintf(&b, "loading %d assets\n", n)
		}
	}
	if nm := getNavMesh(e); nm != nil && nm.Failed {
		b.WriteString("navmesh failed to load\n")
	}

	for i, agent := range Agents(e) {
		nav := components.Navigator.Get(agent)
		anim := components.Animation.Get(agent)
		pos := components.Transform.Get(agent).Position
		fmt.Fprintf(&b, "agent %d %-7s %-8s (%.1f, %.1f, %.1f) legs=%d\n",
			i, nav.State, anim.Current(), pos.X(), pos.Y(), pos.Z(), len(nav.Path))
	}

	if entry, ok := tags.Player.First(e.World); ok {
		player := components.Player.Get(entry)
		anim := components.Animation.Get(entry)
		pos := components.Transform.Get(entry).Position
		fmt.Fprintf(&b, "player %-4s %-7s (%.1f, %.1f, %.1f)\n",
			player.State, anim.Current(), pos.X(), pos.Y(), pos.Z())
	}
	return b.String()
}
