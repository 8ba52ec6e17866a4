package economy

import (
	"math/rand/v2"

	"pictocat/models/postgres"
)

// EnvelopeCost is the full price of an envelope for a player of level.
func EnvelopeCost(e *postgres.Envelope, level int) int {
	if level < 1 {
		level = 1
	}
	return e.BaseCost + (level-1)*e.CostIncreasePerLevel
}

// ProratedCost charges only for the images actually granted, rounding up.
func ProratedCost(cost, granted, imageCount int) int {
	if granted >= imageCount || imageCount <= 0 {
		return cost
	}
	return (cost*granted + imageCount - 1) / imageCount
}

// RemainingPool is the part of pool the player has not unlocked yet, in pool order.
func RemainingPool(pool []postgres.CatalogItem, unlocked []int) []postgres.CatalogItem {
	owned := make(map[int]struct{}, len(unlocked))
	for _, id := range unlocked {
		owned[id] = struct{}{}
	}
	remaining := make([]postgres.CatalogItem, 0, len(pool))
	for _, item := range pool {
		if _, ok := owned[item.ID]; !ok {
			remaining = append(remaining, item)
		}
	}
	return remaining
}

// Draw picks n distinct items uniformly at random, without replacement.
func Draw(items []postgres.CatalogItem, n int, shuffle func(n int, swap func(i, j int))) []postgres.CatalogItem {
	if shuffle == nil {
		shuffle = rand.Shuffle
	}
	drawn := append([]postgres.CatalogItem(nil), items...)
	shuffle(len(drawn), func(i, j int) { drawn[i], drawn[j] = drawn[j], drawn[i] })
	if n > len(drawn) {
		n = len(drawn)
	}
	return drawn[:n]
}
