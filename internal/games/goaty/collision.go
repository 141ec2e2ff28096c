package goaty

import "github.com/vovakirdan/goaty-loaty/internal/core"

// hitsObstacle reports whether the player box overlaps any obstacle.
func hitsObstacle(player core.Box, obstacles []Obstacle) bool {
	for _, o := range obstacles {
		if player.Overlaps(o.Box()) {
			return true
		}
	}
	return false
}

// collectCoins partitions coins into those the player touches and the rest.
// Returns the coins that stay live and how many were collected.
func collectCoins(player core.Box, coins []Coin) ([]Coin, int) {
	kept := make([]Coin, 0, len(coins))
	collected := 0
	for _, c := range coins {
		if player.Overlaps(c.Box()) {
			collected++
			continue
		}
		kept = append(kept, c)
	}
	return kept, collected
}
