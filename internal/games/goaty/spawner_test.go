package goaty

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/goaty-loaty/internal/config"
)

func TestGenerateBatchRanges(t *testing.T) {
	cfg := config.DefaultGoatyConfig()

	for seed := int64(0); seed < 50; seed++ {
		obstacles, coins := NewSpawner(seed, cfg).GenerateBatch()

		if len(obstacles) != 3 {
			t.Fatalf("seed %d: %d obstacles, want 3", seed, len(obstacles))
		}
		if len(coins) > 3 {
			t.Fatalf("seed %d: %d coins, want at most 3", seed, len(coins))
		}

		if x := obstacles[0].X; x < 1100 || x > 1400 {
			t.Errorf("seed %d: first obstacle at %v, want [1100, 1400]", seed, x)
		}
		for i := 1; i < len(obstacles); i++ {
			gap := obstacles[i].X - obstacles[i-1].X
			if gap < 300 || gap > 600 {
				t.Errorf("seed %d: obstacle gap %v, want [300, 600]", seed, gap)
			}
		}
		for _, o := range obstacles {
			if o.Y != 300 || o.W != 50 || o.H != 50 || o.Speed != 2 {
				t.Errorf("seed %d: unexpected obstacle %+v", seed, o)
			}
		}

		for _, c := range coins {
			// Coins land on cursor slots 1300..1500, +500..700 per slot.
			if c.X < 1300 || c.X > 1500+2*700 {
				t.Errorf("seed %d: coin X %v out of range", seed, c.X)
			}
			if c.Y < 100 || c.Y > 250 {
				t.Errorf("seed %d: coin Y %v, want [100, 250]", seed, c.Y)
			}
			if c.Y != float64(int(c.Y)) {
				t.Errorf("seed %d: coin Y %v should be an integer", seed, c.Y)
			}
		}
		for i := 1; i < len(coins); i++ {
			if gap := coins[i].X - coins[i-1].X; gap < 500 {
				t.Errorf("seed %d: coin gap %v, want at least 500", seed, gap)
			}
		}
	}
}

func TestGenerateBatchCoinChance(t *testing.T) {
	cfg := config.DefaultGoatyConfig()

	cfg.Coins.SpawnChance = 0
	if _, coins := NewSpawner(1, cfg).GenerateBatch(); len(coins) != 0 {
		t.Errorf("spawn chance 0 gave %d coins", len(coins))
	}

	cfg.Coins.SpawnChance = 1
	if _, coins := NewSpawner(1, cfg).GenerateBatch(); len(coins) != 3 {
		t.Errorf("spawn chance 1 gave %d coins, want 3", len(coins))
	}
}

func TestSpawnerDeterminism(t *testing.T) {
	cfg := config.DefaultGoatyConfig()
	a := NewSpawner(777, cfg)
	b := NewSpawner(777, cfg)

	for i := 0; i < 5; i++ {
		ao, ac := a.GenerateBatch()
		bo, bc := b.GenerateBatch()
		if !reflect.DeepEqual(ao, bo) || !reflect.DeepEqual(ac, bc) {
			t.Fatalf("batch %d differs for the same seed", i)
		}
	}

	a.Reset(777)
	first, _ := a.GenerateBatch()
	again, _ := NewSpawner(777, cfg).GenerateBatch()
	if !reflect.DeepEqual(first, again) {
		t.Error("Reset should replay the sequence from the seed")
	}
}
