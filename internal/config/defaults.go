package config

import (
	_ "embed"
)

//go:embed defaults/goaty.yaml
var defaultGoatyYAML []byte

// DefaultGoatyConfig returns the built-in configuration.
func DefaultGoatyConfig() GoatyConfig {
	return GoatyConfig{
		Screen: ScreenConfig{
			Width:  800,
			Height: 400,
		},
		Player: PlayerConfig{
			Size:         50,
			StartX:       100,
			GroundOffset: 50,
		},
		Physics: PhysicsConfig{
			Gravity:      1,
			JumpVelocity: -15,
			InitialSpeed: 2,
			MaxSpeed:     10,
			RampSeconds:  30,
		},
		Obstacles: ObstacleConfig{
			Width:        50,
			Height:       50,
			GroundOffset: 100,
			GapMin:       300,
			GapMax:       600,
		},
		Coins: CoinConfig{
			Size:         30,
			Speed:        5,
			GapMin:       500,
			GapMax:       700,
			MinY:         100,
			BottomMargin: 150,
			SpawnChance:  0.7,
			Points:       10,
		},
		Spawner: SpawnerConfig{
			BatchSize:    3,
			LowWaterMark: 2,
		},
		Session: SessionConfig{
			WinSeconds: 30,
			TickRate:   60,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultGoatyYAML
}
