// Package config provides YAML-based game configuration loading and the
// speed ramp used by the simulation.
package config

// GoatyConfig contains all configuration for Goaty Loaty.
type GoatyConfig struct {
	Screen    ScreenConfig   `yaml:"screen"`
	Player    PlayerConfig   `yaml:"player"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Coins     CoinConfig     `yaml:"coins"`
	Spawner   SpawnerConfig  `yaml:"spawner"`
	Session   SessionConfig  `yaml:"session"`
}

// ScreenConfig defines the world size in pixels.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the player's box and start position.
type PlayerConfig struct {
	Size         float64 `yaml:"size"`
	StartX       float64 `yaml:"start_x"`
	GroundOffset float64 `yaml:"ground_offset"` // Gap between the player's feet and the screen bottom
}

// PhysicsConfig defines player kinematics.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	JumpVelocity float64 `yaml:"jump_velocity"`
	InitialSpeed float64 `yaml:"initial_speed"`
	MaxSpeed     float64 `yaml:"max_speed"`
	RampSeconds  float64 `yaml:"ramp_seconds"`
}

// ObstacleConfig defines cactus size, placement and spacing.
// Obstacles scroll at Physics.InitialSpeed.
type ObstacleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundOffset float64 `yaml:"ground_offset"` // Distance from the screen bottom to the obstacle top
	GapMin       int     `yaml:"gap_min"`
	GapMax       int     `yaml:"gap_max"`
}

// CoinConfig defines coin size, speed, spacing and reward.
type CoinConfig struct {
	Size         float64 `yaml:"size"`
	Speed        float64 `yaml:"speed"`
	GapMin       int     `yaml:"gap_min"`
	GapMax       int     `yaml:"gap_max"`
	MinY         int     `yaml:"min_y"`
	BottomMargin int     `yaml:"bottom_margin"` // Lowest coin top is Screen.Height - BottomMargin
	SpawnChance  float64 `yaml:"spawn_chance"`
	Points       int     `yaml:"points"`
}

// SpawnerConfig defines batch generation and the refill trigger.
type SpawnerConfig struct {
	BatchSize    int `yaml:"batch_size"`
	LowWaterMark int `yaml:"low_water_mark"` // Refill when fewer obstacles than this are live
}

// SessionConfig defines round length and tick rate.
type SessionConfig struct {
	WinSeconds float64 `yaml:"win_seconds"`
	TickRate   int     `yaml:"tick_rate"`
}

// GroundY returns the player's resting y coordinate.
func (c GoatyConfig) GroundY() float64 {
	return float64(c.Screen.Height) - c.Player.Size - c.Player.GroundOffset
}

// ObstacleY returns the top of every obstacle.
func (c GoatyConfig) ObstacleY() float64 {
	return float64(c.Screen.Height) - c.Obstacles.GroundOffset
}

// CoinMaxY returns the lowest allowed coin top.
func (c GoatyConfig) CoinMaxY() int {
	return c.Screen.Height - c.Coins.BottomMargin
}
