package systems

import (
	"math"
	"testing"

	"github.com/automoto/navpatrol/animation"
	"github.com/automoto/navpatrol/assets"
	"github.com/automoto/navpatrol/components"
	cfg "github.com/automoto/navpatrol/config"
	"github.com/automoto/navpatrol/leveldata"
	"github.com/automoto/navpatrol/locomotion"
	"github.com/automoto/navpatrol/navmesh"
	"github.com/automoto/navpatrol/systems/factory"
	"github.com/automoto/navpatrol/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const testZone = "test"

const soldierHjson = `{
  name: "soldier"
  clips: [
    { name: "Idle", duration: 2 }
    { name: "Walking", duration: 1 }
    { name: "Shot", duration: 1 }
  ]
  root: { name: "Armature", children: [ { name: "Rifle" } ] }
}`

const playerHjson = `{
  name: "player"
  clips: [
    { name: "Rifle_Idle", duration: 2 }
    { name: "Walk", duration: 1 }
    { name: "Run", duration: 1 }
  ]
  root: { name: "Armature", children: [ { name: "Rifle" } ] }
}`

func mustModel(t *testing.T, src string) *assets.Model {
	t.Helper()
	m, err := assets.ParseModel([]byte(src))
	if err != nil {
		t.Fatalf("ParseModel: %v", err)
	}
	return m
}

// floorZone is a flat 10x10 quad at y=0.
func floorZone(t *testing.T) *navmesh.Zone {
	t.Helper()
	g := &navmesh.Geometry{
		Positions: []float64{0, 0, 0, 10, 0, 0, 10, 0, 10, 0, 0, 10},
		Indices:   []int{0, 1, 2, 0, 2, 3},
	}
	z, err := navmesh.CreateZone(g, 0.01)
	if err != nil {
		t.Fatalf("CreateZone: %v", err)
	}
	return z
}

// newTestWorld builds the world singletons with a ready navmesh and nothing loaded.
func newTestWorld(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateClock(e)
	factory.CreateInput(e)
	factory.CreatePlayerSpawn(e)
	factory.CreateAgentPool(e, 3, 7)
	nm := components.NavMesh.Get(factory.CreateNavMesh(e, testZone))
	nm.Pathfinding.SetZoneData(testZone, floorZone(t))
	nm.Ready = true
	return e
}

func readyPool(t *testing.T, e *ecs.ECS) *components.AgentPoolData {
	t.Helper()
	pool := getAgentPool(e)
	pool.Model = mustModel(t, soldierHjson)
	pool.ModelDone = true
	pool.LevelDone = true
	pool.Waypoints = leveldata.NewWaypointPool([]mgl64.Vec3{{2, 0, 1}, {8, 0, 3}, {3, 0, 7}})
	return pool
}

func TestAgentPoolWaitsForPreconditions(t *testing.T) {
	e := newTestWorld(t)
	pool := getAgentPool(e)

	UpdateAgentPool(e)
	if len(Agents(e)) != 0 || pool.Spawned {
		t.Fatal("spawned before the model loaded")
	}
	if !pool.Waiting {
		t.Fatal("expected the pool to report that it is waiting")
	}

	getNavMesh(e).Ready = false
	readyPool(t, e)
	UpdateAgentPool(e)
	if len(Agents(e)) != 0 {
		t.Fatal("spawned before the navmesh was registered")
	}

	getNavMesh(e).Ready = true
	UpdateAgentPool(e)
	agents := Agents(e)
	if len(agents) != 3 {
		t.Fatalf("expected 3 agents, got %d", len(agents))
	}

	UpdateAgentPool(e)
	if len(Agents(e)) != 3 {
		t.Fatal("pool spawned twice")
	}

	models := map[*assets.Node]bool{}
	for _, agent := range agents {
		tr := components.Transform.Get(agent)
		if tr.Scale != cfg.Locomotion.AgentScale {
			t.Fatalf("expected scale %v, got %v", cfg.Locomotion.AgentScale, tr.Scale)
		}
		found := false
		for _, p := range pool.Waypoints.Points() {
			if p == tr.Position {
				found = true
			}
		}
		if !found {
			t.Fatalf("agent spawned off the waypoint pool at %v", tr.Position)
		}
		root := components.Model.Get(agent).Root
		if models[root] || root == pool.Model.Root {
			t.Fatal("agents share a skeleton")
		}
		models[root] = true
		if got := components.Animation.Get(agent).Current(); got != animation.Idle && got != animation.Walking {
			t.Fatalf("unexpected action %v", got)
		}
	}
}

func TestAgentPoolFallsBackToConfiguredWaypoints(t *testing.T) {
	e := newTestWorld(t)
	pool := readyPool(t, e)
	pool.Waypoints = nil

	UpdateAgentPool(e)
	if pool.Waypoints.Len() != len(cfg.Pool.Waypoints) {
		t.Fatalf("expected %d fallback waypoints, got %d", len(cfg.Pool.Waypoints), pool.Waypoints.Len())
	}
	if len(Agents(e)) != 3 {
		t.Fatalf("expected 3 agents, got %d", len(Agents(e)))
	}
}

func TestLocomotionDrivesAnimation(t *testing.T) {
	e := newTestWorld(t)
	readyPool(t, e)
	UpdateAgentPool(e)
	agent := Agents(e)[0]

	// Hold the others still
	for _, other := range Agents(e)[1:] {
		components.Navigator.Get(other).Patrol = nil
	}

	nav := components.Navigator.Get(agent)
	nav.Patrol = nil
	components.Transform.Get(agent).Position = mgl64.Vec3{2, 0, 1}
	SendTo(agent, mgl64.Vec3{3, 0, 1})

	UpdateClock(e)
	UpdateLocomotion(e)
	UpdateAnimations(e)
	if nav.State != locomotion.Walking {
		t.Fatalf("expected walking, got %v", nav.State)
	}
	if got := components.Animation.Get(agent).Current(); got != animation.Walking {
		t.Fatalf("expected the walking clip, got %v", got)
	}

	// 1 unit at 1 unit/s
	for i := 0; i < 2*cfg.C.TPS; i++ {
		UpdateClock(e)
		UpdateLocomotion(e)
		UpdateAnimations(e)
	}
	if nav.State != locomotion.Idle {
		t.Fatalf("expected idle after arriving, got %v", nav.State)
	}
	if got := components.Transform.Get(agent).Position; got.Sub(mgl64.Vec3{3, 0, 1}).Len() > 1e-9 {
		t.Fatalf("expected to rest on the target, got %v", got)
	}
	if got := components.Animation.Get(agent).Current(); got != animation.Idle {
		t.Fatalf("expected the idle clip, got %v", got)
	}
}

func TestShootAgentLocksUntilNextOrder(t *testing.T) {
	e := newTestWorld(t)
	readyPool(t, e)
	UpdateAgentPool(e)
	agent := Agents(e)[0]
	SendTo(agent, mgl64.Vec3{8, 0, 3})

	ShootAgent(agent)
	anim := components.Animation.Get(agent)
	nav := components.Navigator.Get(agent)
	if anim.Current() != animation.Shot || !anim.Locked {
		t.Fatalf("expected a locked shot, got %v locked=%v", anim.Current(), anim.Locked)
	}
	if len(nav.Path) != 0 || nav.State != locomotion.Idle {
		t.Fatal("expected the path to be dropped")
	}

	UpdateClock(e)
	UpdateAnimations(e)
	if anim.Current() != animation.Shot {
		t.Fatalf("movement sync replaced the shot with %v", anim.Current())
	}

	components.Transform.Get(agent).Position = mgl64.Vec3{2, 0, 1}
	SendTo(agent, mgl64.Vec3{5, 0, 1})
	shot := anim.Action()
	UpdateAnimations(e)
	if anim.Current() != animation.Walking {
		t.Fatalf("expected walking after a new order, got %v", anim.Current())
	}
	if shot.Enabled {
		t.Fatal("leaving the shot should cut it")
	}
}

func TestPlayerSpawnPrefersSavedPose(t *testing.T) {
	e := newTestWorld(t)
	getAgentPool(e).LevelDone = true
	ApplySavedPose(e, &SavedPose{Position: [3]float64{4, 0, 6}, Yaw: 0.5})

	UpdatePlayerSpawn(e)
	if _, ok := tags.Player.First(e.World); ok {
		t.Fatal("spawned without a model")
	}

	getPlayerSpawn(e).Model = mustModel(t, playerHjson)
	UpdatePlayerSpawn(e)
	entry, ok := tags.Player.First(e.World)
	if !ok {
		t.Fatal("expected a player")
	}
	body := components.Transform.Get(entry).Body
	if body.Position != (mgl64.Vec3{4, 0, 6}) {
		t.Fatalf("expected the saved position, got %v", body.Position)
	}
	if math.Abs(yawOf(body.Rotation)-0.5) > 1e-9 {
		t.Fatalf("expected yaw 0.5, got %v", yawOf(body.Rotation))
	}
	if _, ok := components.Camera.First(e.World); !ok {
		t.Fatal("expected a camera")
	}
	if got := components.Animation.Get(entry).Current(); got != animation.Idle {
		t.Fatalf("expected the player to start idle, got %v", got)
	}

	pose := CurrentPlayerPose(e)
	if pose == nil || pose.Position != [3]float64{4, 0, 6} {
		t.Fatalf("unexpected pose %+v", pose)
	}
}

func TestUpdatePlayerMovesAndCancelsOrders(t *testing.T) {
	e := newTestWorld(t)
	getAgentPool(e).LevelDone = true
	spawn := getPlayerSpawn(e)
	spawn.Model = mustModel(t, playerHjson)
	ApplySavedPose(e, &SavedPose{Position: [3]float64{5, 0, 2}})
	UpdatePlayerSpawn(e)
	entry, _ := tags.Player.First(e.World)

	SendTo(entry, mgl64.Vec3{5, 0, 8})
	nav := components.Navigator.Get(entry)
	if nav.State != locomotion.Walking {
		t.Fatal("expected the move order to be accepted")
	}

	input := getOrCreateInput(e)
	input.Intent.Up = 1
	UpdateClock(e)
	UpdatePlayer(e)

	if nav.State != locomotion.Idle || len(nav.Path) != 0 {
		t.Fatal("direct control should cancel the move order")
	}
	player := components.Player.Get(entry)
	if !player.Last.Moved {
		t.Fatalf("expected a step, got %+v", player.Last)
	}
	want := 2 + cfg.Player.Speed/float64(cfg.C.TPS)
	if got := components.Transform.Get(entry).Position.Z(); math.Abs(got-want) > 1e-6 {
		t.Fatalf("expected z=%v, got %v", want, got)
	}

	UpdateAnimations(e)
	if got := components.Animation.Get(entry).Current(); got != animation.Walk {
		t.Fatalf("expected walk, got %v", got)
	}
}

func TestPlayerSpawnWaitsForNavmesh(t *testing.T) {
	e := newTestWorld(t)
	getAgentPool(e).LevelDone = true
	getPlayerSpawn(e).Model = mustModel(t, playerHjson)
	getNavMesh(e).Ready = false

	UpdatePlayerSpawn(e)
	if _, ok := tags.Player.First(e.World); ok {
		t.Fatal("spawned before the navmesh was registered")
	}

	getNavMesh(e).Ready = true
	UpdatePlayerSpawn(e)
	if _, ok := tags.Player.First(e.World); !ok {
		t.Fatal("expected a player once the navmesh is ready")
	}
}

func TestUpdatePlayerStaysPutWithoutNavmesh(t *testing.T) {
	e := newTestWorld(t)
	getAgentPool(e).LevelDone = true
	getPlayerSpawn(e).Model = mustModel(t, playerHjson)
	ApplySavedPose(e, &SavedPose{Position: [3]float64{5, 0, 9.99}})
	UpdatePlayerSpawn(e)
	entry, _ := tags.Player.First(e.World)

	getNavMesh(e).Ready = false
	getOrCreateInput(e).Intent.Up = 1
	for i := 0; i < 2*cfg.C.TPS; i++ {
		UpdateClock(e)
		UpdatePlayer(e)
	}
	if got := components.Transform.Get(entry).Position; got != (mgl64.Vec3{5, 0, 9.99}) {
		t.Fatalf("player walked without a mesh to %v", got)
	}
}

func TestUnreachableOrderKeepsShotAgentDown(t *testing.T) {
	e := newTestWorld(t)
	readyPool(t, e)
	UpdateAgentPool(e)
	agent := Agents(e)[0]

	ShootAgent(agent)
	if SendTo(agent, mgl64.Vec3{50, 0, 50}) {
		t.Fatal("expected an off-mesh order to fail")
	}
	anim := components.Animation.Get(agent)
	if !anim.Locked {
		t.Fatal("a failed order should leave the shot agent down")
	}
	UpdateClock(e)
	UpdateAnimations(e)
	if anim.Current() != animation.Shot {
		t.Fatalf("expected the shot to hold, got %v", anim.Current())
	}
}

func TestBuildIntent(t *testing.T) {
	input := &components.InputData{}
	input.Current[cfg.ActionForward] = true
	input.Current[cfg.ActionTurnLeft] = true
	input.Current[cfg.ActionFire] = true

	in := BuildIntent(input)
	if in.Up != 1 || in.Right != -1 || !in.Fire {
		t.Fatalf("unexpected intent %+v", in)
	}

	// Held fire only counts on the first frame
	input.Previous = input.Current
	if BuildIntent(input).Fire {
		t.Fatal("fire should fire once per press")
	}

	input.Stick.X, input.Stick.Y = 0.5, -0.4
	in = BuildIntent(input)
	if in.Up != -0.4 || in.Right != 0.5 {
		t.Fatalf("stick should override keys, got %+v", in)
	}

	input.Dragging = true
	input.Drag.X, input.Drag.Y = 50, 0
	if in = BuildIntent(input); in.LookRight != -0.5 {
		t.Fatalf("expected half-right free look, got %+v", in)
	}
}

func TestViewRoundTrip(t *testing.T) {
	v := view{centerX: 3, centerZ: -2, scale: 16, width: 960, height: 640}
	x, y := v.toScreen(mgl64.Vec3{5, 0, 1})
	if x != 960/2+32 || y != 640/2-48 {
		t.Fatalf("unexpected screen point %v,%v", x, y)
	}
	wx, wz := v.toWorld(float64(x), float64(y))
	if math.Abs(wx-5) > 1e-9 || math.Abs(wz-1) > 1e-9 {
		t.Fatalf("round trip gave %v,%v", wx, wz)
	}
}
