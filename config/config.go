package config

// Config holds window and tick settings
type Config struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	TPS    int    `json:"tps"`
	Title  string `json:"title"`
}

// LocomotionConfig contains patrol agent movement values
type LocomotionConfig struct {
	AgentSpeed float64 `json:"agentSpeed"` // world units per second
	AgentScale float64 `json:"agentScale"`
}

// AnimationConfig holds per-action prop orientations for the player rig
type AnimationConfig struct {
	WeaponNode string `json:"weaponNode"`
	// Euler angles in degrees (XYZ) keyed by action name
	AimPoses map[string][3]float64 `json:"aimPoses"`
}

// PlayerConfig contains player-controlled agent values
type PlayerConfig struct {
	Model             string     `json:"model"`
	Speed             float64    `json:"speed"`
	BackwardScale     float64    `json:"backwardScale"`
	ProbeHeight       float64    `json:"probeHeight"` // raycast starts this far above the proposed step
	TurnRate          float64    `json:"turnRate"`    // radians per second at full lateral input
	TurnDeadzone      float64    `json:"turnDeadzone"`
	RunSpeedThreshold float64    `json:"runSpeedThreshold"` // per-frame step above which the player is running
	RunGrace          float64    `json:"runGrace"`          // seconds of sustained speed before "run"
	Scale             float64    `json:"scale"`
	Spawn             [3]float64 `json:"spawn"`
}

// CameraConfig contains camera rig and free-look values
type CameraConfig struct {
	Offset       [3]float64 `json:"offset"` // rig offset in the player's local frame
	FollowFactor float64    `json:"followFactor"`
	LookUpScale  float64    `json:"lookUpScale"`
	DragClamp    float64    `json:"dragClamp"` // pixels
	ViewScale    float64    `json:"viewScale"` // debug view pixels per world unit
}

// PoolConfig contains agent pool values
type PoolConfig struct {
	Count int    `json:"count"`
	Model string `json:"model"`
	Level string `json:"level"`
	Seed  int64  `json:"seed"` // 0 picks a time based seed
	// Used when the level has no waypoints
	Waypoints [][3]float64 `json:"waypoints"`
}

// NavMeshConfig contains navmesh source values
type NavMeshConfig struct {
	Zone           string  `json:"zone"`
	Path           string  `json:"path"`
	MergeTolerance float64 `json:"mergeTolerance"`
	RotateX        float64 `json:"rotateX"` // radians applied to raw geometry
}

// AssetsConfig selects where models, levels and navmeshes are read from
type AssetsConfig struct {
	Dir string `json:"dir"` // empty uses the bundled data
}

type DebugConfig struct {
	LogLevel  string `json:"logLevel"`
	DrawPaths bool   `json:"drawPaths"`
}

// PersistenceConfig names the on-disk save location
type PersistenceConfig struct {
	AppName string `json:"appName"`
	Enabled bool   `json:"enabled"`
}

var C *Config
var Locomotion LocomotionConfig
var Animation AnimationConfig
var Player PlayerConfig
var Camera CameraConfig
var Pool PoolConfig
var NavMesh NavMeshConfig
var Assets AssetsConfig
var Debug DebugConfig
var Persistence PersistenceConfig

func init() {
	C = &Config{
		Width:  960,
		Height: 640,
		TPS:    60,
		Title:  "navpatrol",
	}

	Locomotion = LocomotionConfig{
		AgentSpeed: 1.0,
		AgentScale: 1.9,
	}

	Animation = AnimationConfig{
		WeaponNode: "Rifle",
		AimPoses: map[string][3]float64{
			"idle": {0, 0, 0},
			"walk": {-10, 15, 0},
			"run":  {-25, 30, 0},
		},
	}

	Player = PlayerConfig{
		Model:             "models/player.hjson",
		Speed:             5.0,
		BackwardScale:     0.3,
		ProbeHeight:       2.0,
		TurnRate:          2.0,
		TurnDeadzone:      0.1,
		RunSpeedThreshold: 0.03,
		RunGrace:          0.1,
		Scale:             1.9,
		Spawn:             [3]float64{-26.635976182701455, 0.305538911068453, 6.597102003903492},
	}

	Camera = CameraConfig{
		Offset:       [3]float64{0, 4, -6}, // behind and above
		FollowFactor: 0.7,
		LookUpScale:  0.25,
		DragClamp:    100,
		ViewScale:    16,
	}

	Pool = PoolConfig{
		Count: 5,
		Model: "models/soldier.hjson",
		Level: "levels/factory.tmx",
		Waypoints: [][3]float64{
			{-23.4, 0.3, -13.2},
			{-19.4, 0.3, 10.8},
			{-7.3, 0.3, -15.4},
			{5.4, 0.3, 16.8},
			{24.7, 0.3, -1.2},
		},
	}

	NavMesh = NavMeshConfig{
		Zone:           "factory",
		Path:           "navmesh/factory.json",
		MergeTolerance: 0.02,
	}

	Debug = DebugConfig{
		LogLevel:  "info",
		DrawPaths: true,
	}

	Persistence = PersistenceConfig{
		AppName: "navpatrol",
		Enabled: true,
	}
}
