package systems

import (
	"image/color"

	"github.com/automoto/navpatrol/components"
	cfg "github.com/automoto/navpatrol/config"
	"github.com/automoto/navpatrol/locomotion"
	"github.com/automoto/navpatrol/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	groupColors = []color.RGBA{
		{60, 90, 120, 255},
		{120, 90, 60, 255},
		{70, 120, 70, 255},
		{110, 70, 120, 255},
	}
	agentColor  = color.RGBA{220, 60, 60, 255}
	shotColor   = color.RGBA{110, 40, 40, 255}
	playerColor = color.RGBA{60, 120, 255, 255}
	pathColor   = color.RGBA{255, 220, 80, 255}
	rigColor    = color.RGBA{200, 200, 200, 255}
)

// DrawNavMesh outlines every navmesh triangle, one colour per group.
func DrawNavMesh(e *ecs.ECS, screen *ebiten.Image) {
	nm := getNavMesh(e)
	if nm == nil || !nm.Ready {
		return
	}
	zone, err := nm.Pathfinding.Zone(nm.ZoneID)
	if err != nil {
		return
	}
	v := newView(e, screen.Bounds().Dx(), screen.Bounds().Dy())

	for g, nodes := range zone.Groups {
		c := groupColors[g%len(groupColors)]
		for _, n := range nodes {
			a, b, cc := zone.Triangle(n)
			strokeSegment(screen, v, a, b, c)
			strokeSegment(screen, v, b, cc, c)
			strokeSegment(screen, v, cc, a, c)
		}
	}
}

// DrawAgents draws each agent as a square with a heading tick, and its remaining path when
// cfg.Debug.DrawPaths is set.
func DrawAgents(e *ecs.ECS, screen *ebiten.Image) {
	v := newView(e, screen.Bounds().Dx(), screen.Bounds().Dy())

	for _, agent := range Agents(e) {
		c := agentColor
		if components.Animation.Get(agent).Locked {
			c = shotColor
		}
		drawBody(screen, v, agent, c)
	}
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		drawBody(screen, v, entry, playerColor)
	})

	if entry, ok := components.Camera.First(e.World); ok {
		rig := components.Camera.Get(entry).Rig
		if rig != nil {
			drawMarker(screen, v, rig.Position, 4, rigColor)
			strokeSegment(screen, v, rig.Position, rig.Position.Add(rig.Forward().Mul(2)), rigColor)
		}
	}
}

func drawBody(screen *ebiten.Image, v view, entry *donburi.Entry, c color.Color) {
	transform := components.Transform.Get(entry)
	body := transform.Body
	size := float32(transform.Scale * v.scale * 0.3)
	drawMarker(screen, v, body.Position, size, c)

	heading := body.Rotation.Rotate(mgl64.Vec3{0, 0, 1}).Mul(transform.Scale * 0.5)
	strokeSegment(screen, v, body.Position, body.Position.Add(heading), c)

	if !cfg.Debug.DrawPaths {
		return
	}
	nav := components.Navigator.Get(entry)
	if nav.Navigator == nil || nav.State != locomotion.Walking {
		return
	}
	from := body.Position
	for _, p := range nav.Path {
		strokeSegment(screen, v, from, p, pathColor)
		drawMarker(screen, v, p, 3, pathColor)
		from = p
	}
}

func drawMarker(screen *ebiten.Image, v view, p mgl64.Vec3, size float32, c color.Color) {
	x, y := v.toScreen(p)
	vector.FillRect(screen, x-size/2, y-size/2, size, size, c, false)
}

func strokeSegment(screen *ebiten.Image, v view, a, b mgl64.Vec3, c color.Color) {
	x0, y0 := v.toScreen(a)
	x1, y1 := v.toScreen(b)
	vector.StrokeLine(screen, x0, y0, x1, y1, 1, c, false)
}
