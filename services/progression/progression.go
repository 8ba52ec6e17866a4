// Package progression holds the pure levelling and reward arithmetic.
package progression

import (
	"math"

	game_constants "pictocat/constants/game"
	"pictocat/models/postgres"
)

// XPToNextLevel is the xp a player needs to leave level.
func XPToNextLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return game_constants.BASE_XP_TO_NEXT + (level-1)*game_constants.XP_TO_NEXT_PER_LEVEL
}

// GrantPlayerXP adds gain to the player and levels up as many times as the xp allows.
// It returns the number of levels gained.
func GrantPlayerXP(p *postgres.Player, gain int) int {
	if gain <= 0 {
		return 0
	}
	if p.Level < 1 {
		p.Level = game_constants.STARTING_LEVEL
	}
	if p.XPToNextLevel <= 0 {
		p.XPToNextLevel = XPToNextLevel(p.Level)
	}

	p.XP += gain
	levels := 0
	for p.XP >= p.XPToNextLevel {
		p.XP -= p.XPToNextLevel
		p.Level++
		p.XPToNextLevel = XPToNextLevel(p.Level)
		levels++
	}
	return levels
}

// ApplyFriendshipXP adds reward to a friendship. Each 200 xp is a level up to 10;
// at the top level xp keeps accumulating.
func ApplyFriendshipXP(level, xp, reward int) (int, int) {
	xp += reward
	for xp >= game_constants.FRIENDSHIP_XP_PER_LEVEL && level < game_constants.FRIENDSHIP_MAX_LEVEL {
		xp -= game_constants.FRIENDSHIP_XP_PER_LEVEL
		level++
	}
	return level, xp
}

// FriendBonus is the coins a friend receives when the actor earns earned coins.
func FriendBonus(earned, friendshipLevel int, settings postgres.EconomySettings) int {
	if earned <= 0 {
		return 0
	}
	percent := math.Min(settings.FriendBonusBase+float64(friendshipLevel-1)*settings.FriendBonusStep, settings.FriendBonusCap)
	return int(math.Floor(float64(earned) * percent / 100))
}

// AdvanceProgress adds amount to progress without passing goal.
func AdvanceProgress(progress, amount, goal int) int {
	if amount <= 0 {
		return progress
	}
	progress += amount
	if progress > goal {
		return goal
	}
	return progress
}
