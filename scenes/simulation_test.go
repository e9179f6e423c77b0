package scenes

import (
	"testing"
	"time"

	"github.com/automoto/navpatrol/assets"
	"github.com/automoto/navpatrol/components"
	cfg "github.com/automoto/navpatrol/config"
	"github.com/automoto/navpatrol/systems"
	"github.com/automoto/navpatrol/tags"
	"github.com/yohamta/donburi/ecs"
)

func TestSimulationSpawnsBundledWorld(t *testing.T) {
	sim := NewSimulation(assets.FS(), cfg.C.TPS)
	if !sim.WaitForAssets(5 * time.Second) {
		t.Fatal("assets did not finish loading")
	}

	var ticks []int
	sim.OnTick = func(_ *ecs.ECS, tick int) {
		ticks = append(ticks, tick)
	}
	sim.RunTicks(cfg.C.TPS)
	if sim.Ticks() != cfg.C.TPS || len(ticks) != cfg.C.TPS {
		t.Fatalf("expected %d ticks, got %d", cfg.C.TPS, sim.Ticks())
	}

	e := sim.ECS()
	entry, _ := components.NavMesh.First(e.World)
	if nm := components.NavMesh.Get(entry); !nm.Ready || nm.Failed {
		t.Fatalf("navmesh not ready: %+v", nm)
	}

	agents := systems.Agents(e)
	if len(agents) != cfg.Pool.Count {
		t.Fatalf("expected %d agents, got %d", cfg.Pool.Count, len(agents))
	}
	for _, agent := range agents {
		if components.Navigator.Get(agent).Patrol == nil {
			t.Fatal("agent spawned without a patrol pool")
		}
	}

	if _, ok := tags.Player.First(e.World); !ok {
		t.Fatal("expected the player to spawn")
	}
	if _, ok := components.Camera.First(e.World); !ok {
		t.Fatal("expected a camera")
	}
}

func TestSimulationStop(t *testing.T) {
	sim := NewSimulation(assets.FS(), 1000)
	done := make(chan struct{})
	go func() {
		sim.Run()
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	sim.Stop()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Stop")
	}
}
