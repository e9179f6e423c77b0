package scenes

import (
	"image/color"
	"io/fs"
	"sync"

	"github.com/automoto/navpatrol/components"
	cfg "github.com/automoto/navpatrol/config"
	"github.com/automoto/navpatrol/systems"
	"github.com/automoto/navpatrol/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewPatrolWorld builds the patrol world and queues its asset loads. An interactive world also
// polls input and carries the debug renderers.
func NewPatrolWorld(fsys fs.FS, interactive bool, saved *systems.SavedPose) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())

	// Clock and load delivery run first so every later system sees this tick's results
	e.AddSystem(systems.UpdateClock)
	e.AddSystem(systems.UpdateLoading)
	if interactive {
		e.AddSystem(systems.UpdateInput)
	}

	e.AddSystem(systems.UpdateAgentPool)
	e.AddSystem(systems.UpdatePlayerSpawn)
	if interactive {
		e.AddSystem(systems.UpdateMoveOrders)
		e.AddSystem(systems.UpdatePlayer)
	}
	e.AddSystem(systems.UpdateLocomotion)
	e.AddSystem(systems.UpdateAnimations)
	e.AddSystem(systems.UpdateCamera)

	if interactive {
		e.AddRenderer(cfg.Default, systems.DrawNavMesh)
		e.AddRenderer(cfg.Default, systems.DrawAgents)
		e.AddRenderer(cfg.Overlay, systems.DrawDebug)
	}

	factory.CreateClock(e)
	factory.CreateLoading(e)
	factory.CreateInput(e)
	factory.CreateNavMesh(e, cfg.NavMesh.Zone)
	factory.CreateAgentPool(e, cfg.Pool.Count, cfg.Pool.Seed)
	factory.CreatePlayerSpawn(e)
	systems.ApplySavedPose(e, saved)

	systems.StartLoading(e, fsys)
	return e
}

type PatrolScene struct {
	ecs   *ecs.ECS
	fsys  fs.FS
	saved *systems.SavedPose
	once  sync.Once
	quit  bool
}

func NewPatrolScene(fsys fs.FS, saved *systems.SavedPose) *PatrolScene {
	return &PatrolScene{fsys: fsys, saved: saved}
}

func (ps *PatrolScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	if entry, ok := components.Input.First(ps.ecs.World); ok {
		if systems.GetAction(components.Input.Get(entry), cfg.ActionQuit).JustPressed {
			ps.quit = true
		}
	}
}

func (ps *PatrolScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

// Quit reports whether the player asked to leave.
func (ps *PatrolScene) Quit() bool {
	return ps.quit
}

// ECS exposes the world, nil before the first Update.
func (ps *PatrolScene) ECS() *ecs.ECS {
	return ps.ecs
}

func (ps *PatrolScene) configure() {
	ps.ecs = NewPatrolWorld(ps.fsys, true, ps.saved)
}
