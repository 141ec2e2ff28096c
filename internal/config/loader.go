package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "goaty.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.goaty/configs/goaty.yaml -> ./configs/goaty.yaml -> embedded default.
// Files may be partial; missing keys keep their default values.
func Load(customPath string) (GoatyConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GoatyConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return GoatyConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(ConfigFile), filepath.Join("configs", ConfigFile)} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultGoatyYAML)
	if err != nil {
		return DefaultGoatyConfig(), nil // Fallback to hardcoded if embed is broken
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults and validates the result.
func Parse(data []byte) (GoatyConfig, error) {
	cfg := DefaultGoatyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GoatyConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return GoatyConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg GoatyConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// Validate checks that every size is positive and every random range is
// non-empty, so the spawner can never draw out of bounds.
func (c GoatyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Screen.Width > 0 && c.Screen.Height > 0, "screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	check(c.Player.Size > 0, "player.size must be positive, got %g", c.Player.Size)
	check(c.Player.Size <= float64(c.Screen.Width), "player.size %g exceeds screen width %d", c.Player.Size, c.Screen.Width)
	check(c.Physics.MaxSpeed >= c.Physics.InitialSpeed, "physics.max_speed %g is below initial_speed %g", c.Physics.MaxSpeed, c.Physics.InitialSpeed)
	check(c.Physics.RampSeconds >= 0, "physics.ramp_seconds must not be negative")
	check(c.Obstacles.Width > 0 && c.Obstacles.Height > 0, "obstacle size must be positive")
	check(c.Obstacles.GapMin > 0 && c.Obstacles.GapMin <= c.Obstacles.GapMax, "obstacles gap range [%d, %d] is invalid", c.Obstacles.GapMin, c.Obstacles.GapMax)
	check(c.Coins.Size > 0, "coins.size must be positive")
	check(c.Coins.GapMin > 0 && c.Coins.GapMin <= c.Coins.GapMax, "coins gap range [%d, %d] is invalid", c.Coins.GapMin, c.Coins.GapMax)
	check(c.Coins.MinY <= c.CoinMaxY(), "coin band [%d, %d] is empty", c.Coins.MinY, c.CoinMaxY())
	check(c.Coins.SpawnChance >= 0 && c.Coins.SpawnChance <= 1, "coins.spawn_chance %g is outside [0, 1]", c.Coins.SpawnChance)
	check(c.Spawner.BatchSize > 0, "spawner.batch_size must be positive")
	check(c.Spawner.LowWaterMark >= 0, "spawner.low_water_mark must not be negative")
	check(c.Session.WinSeconds > 0, "session.win_seconds must be positive")
	check(c.Session.TickRate > 0, "session.tick_rate must be positive")

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".goaty", "configs", filename)
}
