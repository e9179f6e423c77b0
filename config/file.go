package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hjson/hjson-go/v4"
)

// fileConfig mirrors the package globals. Sections point at the live values so a file only
// replaces the fields it names.
type fileConfig struct {
	Window      *Config            `json:"window"`
	Locomotion  *LocomotionConfig  `json:"locomotion"`
	Animation   *AnimationConfig   `json:"animation"`
	Player      *PlayerConfig      `json:"player"`
	Camera      *CameraConfig      `json:"camera"`
	Pool        *PoolConfig        `json:"pool"`
	NavMesh     *NavMeshConfig     `json:"navmesh"`
	Assets      *AssetsConfig      `json:"assets"`
	Debug       *DebugConfig       `json:"debug"`
	Persistence *PersistenceConfig `json:"persistence"`
}

// LoadFile applies overrides from an Hjson file on top of the defaults.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return Apply(data)
}

// Apply decodes Hjson overrides into the package globals.
func Apply(data []byte) error {
	f := fileConfig{
		Window:      C,
		Locomotion:  &Locomotion,
		Animation:   &Animation,
		Player:      &Player,
		Camera:      &Camera,
		Pool:        &Pool,
		NavMesh:     &NavMesh,
		Assets:      &Assets,
		Debug:       &Debug,
		Persistence: &Persistence,
	}
	if err := hjson.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

// ApplyLogLevel sets the global logger level from Debug.LogLevel.
func ApplyLogLevel() error {
	level, err := log.ParseLevel(Debug.LogLevel)
	if err != nil {
		return fmt.Errorf("log level %q: %w", Debug.LogLevel, err)
	}
	log.SetLevel(level)
	return nil
}
