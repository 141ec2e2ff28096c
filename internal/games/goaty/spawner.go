package goaty

import (
	"math/rand"

	"github.com/vovakirdan/goaty-loaty/internal/config"
)

// Spawner generates batches of obstacles and coins ahead of the visible screen.
type Spawner struct {
	rng *rand.Rand
	cfg config.GoatyConfig
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(seed int64, cfg config.GoatyConfig) *Spawner {
	return &Spawner{
		rng: rand.New(rand.NewSource(seed)),
		cfg: cfg,
	}
}

// Reset reseeds the RNG.
func (s *Spawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// GenerateBatch places BatchSize obstacles and up to BatchSize coins to the right
// of the screen. Obstacle and coin cursors advance independently; a coin slot is
// skipped with probability 1 - SpawnChance but its cursor still advances.
func (s *Spawner) GenerateBatch() ([]Obstacle, []Coin) {
	n := s.cfg.Spawner.BatchSize
	obstacles := make([]Obstacle, 0, n)
	coins := make([]Coin, 0, n)

	screenW := s.cfg.Screen.Width
	nextObstacleX := screenW + s.obstacleGap()
	nextCoinX := screenW + s.coinGap()

	for i := 0; i < n; i++ {
		obstacles = append(obstacles, NewObstacle(float64(nextObstacleX), s.cfg))
		nextObstacleX += s.obstacleGap()

		if s.rng.Float64() < s.cfg.Coins.SpawnChance {
			y := s.intBetween(s.cfg.Coins.MinY, s.cfg.CoinMaxY())
			coins = append(coins, NewCoin(float64(nextCoinX), float64(y), s.cfg))
		}
		nextCoinX += s.coinGap()
	}

	return obstacles, coins
}

func (s *Spawner) obstacleGap() int {
	return s.intBetween(s.cfg.Obstacles.GapMin, s.cfg.Obstacles.GapMax)
}

func (s *Spawner) coinGap() int {
	return s.intBetween(s.cfg.Coins.GapMin, s.cfg.Coins.GapMax)
}

// intBetween returns a uniform integer in [lo, hi].
func (s *Spawner) intBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}
