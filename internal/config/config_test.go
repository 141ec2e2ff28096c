package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(DefaultYAML()) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultGoatyConfig()) {
		t.Errorf("embedded YAML differs from DefaultGoatyConfig():\n%+v\n%+v", cfg, DefaultGoatyConfig())
	}
}

func TestDerivedPositions(t *testing.T) {
	cfg := DefaultGoatyConfig()

	if got := cfg.GroundY(); got != 300 {
		t.Errorf("GroundY() = %f, expected 300", got)
	}
	if got := cfg.ObstacleY(); got != 300 {
		t.Errorf("ObstacleY() = %f, expected 300", got)
	}
	if got := cfg.CoinMaxY(); got != 250 {
		t.Errorf("CoinMaxY() = %d, expected 250", got)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goaty.yaml")
	data := []byte("physics:\n  max_speed: 12\nsession:\n  win_seconds: 45\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Physics.MaxSpeed != 12 {
		t.Errorf("MaxSpeed = %f, expected 12", cfg.Physics.MaxSpeed)
	}
	if cfg.Session.WinSeconds != 45 {
		t.Errorf("WinSeconds = %f, expected 45", cfg.Session.WinSeconds)
	}
	// Keys absent from the file keep their defaults
	if cfg.Physics.InitialSpeed != 2 {
		t.Errorf("InitialSpeed = %f, expected default 2", cfg.Physics.InitialSpeed)
	}
	if cfg.Coins.Points != 10 {
		t.Errorf("Coins.Points = %d, expected default 10", cfg.Coins.Points)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() should fail for a missing custom config")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"malformed", "physics: [", "parse"},
		{"inverted obstacle gaps", "obstacles:\n  gap_min: 700\n  gap_max: 300\n", "obstacles gap range"},
		{"empty coin band", "coins:\n  min_y: 300\n", "coin band"},
		{"bad chance", "coins:\n  spawn_chance: 1.5\n", "spawn_chance"},
		{"speed ramp down", "physics:\n  max_speed: 1\n", "max_speed"},
		{"zero tick rate", "session:\n  tick_rate: 0\n", "tick_rate"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("Parse() should fail")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q should mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestMarshalParses(t *testing.T) {
	cfg := DefaultGoatyConfig()
	cfg.Coins.Points = 25

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "points: 25") {
		t.Errorf("marshalled YAML should contain the override:\n%s", data)
	}
}

func TestSpeedRamp(t *testing.T) {
	ramp := NewSpeedRamp(DefaultGoatyConfig().Physics)

	tests := []struct {
		elapsed  float64
		expected float64
	}{
		{0, 2},
		{15, 6},
		{7.5, 4},
		{30, 10},
		{45, 10},
		{-1, 2},
	}

	for _, tc := range tests {
		if got := ramp.At(tc.elapsed); got != tc.expected {
			t.Errorf("At(%f) = %f, expected %f", tc.elapsed, got, tc.expected)
		}
	}
}

func TestSpeedRampMonotonic(t *testing.T) {
	ramp := NewSpeedRamp(DefaultGoatyConfig().Physics)

	prev := ramp.At(0)
	for tick := 1; tick <= 60*40; tick++ {
		speed := ramp.At(float64(tick) / 60)
		if speed < prev {
			t.Fatalf("speed decreased at tick %d: %f < %f", tick, speed, prev)
		}
		if speed > 10 {
			t.Fatalf("speed %f exceeds max at tick %d", speed, tick)
		}
		prev = speed
	}
}

func TestSpeedRampZeroDuration(t *testing.T) {
	ramp := NewSpeedRamp(PhysicsConfig{InitialSpeed: 2, MaxSpeed: 10})
	if got := ramp.At(0); got != 10 {
		t.Errorf("zero-length ramp should be at max immediately, got %f", got)
	}
}
