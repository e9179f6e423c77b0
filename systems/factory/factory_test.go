package factory

import (
	"math"
	"testing"

	"github.com/automoto/navpatrol/animation"
	"github.com/automoto/navpatrol/assets"
	"github.com/automoto/navpatrol/components"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const riggedHjson = `{
  name: "player"
  clips: [
    { name: "Rifle_Idle", duration: 2 }
    { name: "Walk", duration: 1 }
  ]
  root: { name: "Armature", children: [ { name: "Rifle" } ] }
}`

func TestCreatePlayerAppliesIdleAimPose(t *testing.T) {
	model, err := assets.ParseModel([]byte(riggedHjson))
	if err != nil {
		t.Fatalf("ParseModel: %v", err)
	}
	e := ecs.NewECS(donburi.NewWorld())

	player := CreatePlayer(e, model, nil, "test", mgl64.Vec3{}, 0)
	anim := components.Animation.Get(player)
	if anim.Current() != animation.Idle {
		t.Fatalf("expected idle, got %v", anim.Current())
	}
	if anim.Aim == nil {
		t.Fatal("expected an aim pose on the rifle")
	}

	// The idle override is zero, so only the hand correction remains
	want := mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{1, 0, 0})
	rifle := components.Model.Get(player).Root.Find("Rifle")
	if !rifle.Rotation.ApproxEqualThreshold(want, 1e-9) {
		t.Fatalf("expected the idle aim pose %v, got %v", want, rifle.Rotation)
	}
	if model.Root.Find("Rifle").Rotation != mgl64.QuatIdent() {
		t.Fatal("the shared model was modified")
	}
}

func TestCreateAgentHasNoAimPose(t *testing.T) {
	model, err := assets.ParseModel([]byte(riggedHjson))
	if err != nil {
		t.Fatalf("ParseModel: %v", err)
	}
	e := ecs.NewECS(donburi.NewWorld())

	agent := CreateAgent(e, model, nil, "test", nil, nil, mgl64.Vec3{1, 0, 1})
	anim := components.Animation.Get(agent)
	if anim.Aim != nil {
		t.Fatal("agents do not carry a weapon pose")
	}
	if rifle := components.Model.Get(agent).Root.Find("Rifle"); rifle.Rotation != mgl64.QuatIdent() {
		t.Fatalf("rifle rotated to %v", rifle.Rotation)
	}
}
