package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestApplyOverridesNamedFields(t *testing.T) {
	savedPool, savedPlayer, savedDebug := Pool, Player, Debug
	defer func() { Pool, Player, Debug = savedPool, savedPlayer, savedDebug }()

	err := Apply([]byte(`
# comments are fine
pool: {
  count: 12
  seed: 99
}
player: { speed: 7.5 }
debug: { logLevel: "debug" }
`))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if Pool.Count != 12 || Pool.Seed != 99 {
		t.Fatalf("pool not overridden: %+v", Pool)
	}
	if Pool.Model != savedPool.Model || len(Pool.Waypoints) != len(savedPool.Waypoints) {
		t.Fatal("unnamed pool fields should keep their defaults")
	}
	if Player.Speed != 7.5 || Player.BackwardScale != savedPlayer.BackwardScale {
		t.Fatalf("unexpected player config %+v", Player)
	}
	if Debug.LogLevel != "debug" {
		t.Fatalf("expected debug log level, got %q", Debug.LogLevel)
	}
}

func TestLoadFile(t *testing.T) {
	saved := NavMesh
	defer func() { NavMesh = saved }()

	path := filepath.Join(t.TempDir(), "navpatrol.hjson")
	if err := os.WriteFile(path, []byte("navmesh: { mergeTolerance: 0.05 }\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if NavMesh.MergeTolerance != 0.05 || NavMesh.Zone != saved.Zone {
		t.Fatalf("unexpected navmesh config %+v", NavMesh)
	}

	if err := LoadFile(filepath.Join(t.TempDir(), "missing.hjson")); err == nil {
		t.Fatal("expected error for missing file")
	}
	if err := Apply([]byte("pool: { count: [1, 2] }")); err == nil {
		t.Fatal("expected error for mistyped field")
	}
}

func TestExampleConfig(t *testing.T) {
	savedC := *C
	savedPool, savedPlayer, savedCamera, savedDebug, savedPersistence := Pool, Player, Camera, Debug, Persistence
	defer func() {
		*C = savedC
		Pool, Player, Camera, Debug, Persistence = savedPool, savedPlayer, savedCamera, savedDebug, savedPersistence
	}()

	if err := LoadFile("example.hjson"); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if C.Width != 1280 || C.TPS != savedC.TPS {
		t.Fatalf("unexpected window config %+v", *C)
	}
	if Pool.Count != 8 || Pool.Seed != 42 || Pool.Level != savedPool.Level {
		t.Fatalf("unexpected pool config %+v", Pool)
	}
	if err := ApplyLogLevel(); err != nil {
		t.Fatalf("ApplyLogLevel: %v", err)
	}
}
