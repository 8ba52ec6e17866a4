package progression

import (
	"testing"

	"pictocat/models/postgres"

	"github.com/stretchr/testify/assert"
)

var defaultSettings = postgres.EconomySettings{FriendBonusBase: 1, FriendBonusStep: 0.666, FriendBonusCap: 7}

func TestApplyFriendshipXP(t *testing.T) {
	tests := []struct {
		name              string
		level, xp, reward int
		wantLevel, wantXP int
	}{
		{"no level up", 1, 0, 100, 1, 100},
		{"exact threshold", 1, 100, 100, 2, 0},
		{"level 3 plus 180", 3, 50, 180, 4, 30},
		{"multiple levels", 1, 0, 650, 4, 50},
		{"stops at cap", 9, 150, 500, 10, 450},
		{"keeps accumulating at cap", 10, 450, 100, 10, 550},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, xp := ApplyFriendshipXP(tt.level, tt.xp, tt.reward)
			assert.Equal(t, tt.wantLevel, level)
			assert.Equal(t, tt.wantXP, xp)
			if level < 10 {
				assert.Less(t, xp, 200)
			}
			assert.GreaterOrEqual(t, xp, 0)
		})
	}
}

func TestFriendBonus(t *testing.T) {
	tests := []struct {
		name          string
		earned, level int
		want          int
	}{
		{"level 1 is one percent", 100, 1, 1},
		{"rounds down", 99, 1, 0},
		{"level 4", 1000, 4, 29},
		{"top level", 1000, 10, 69},
		{"nothing earned", 0, 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FriendBonus(tt.earned, tt.level, defaultSettings))
		})
	}
}

func TestFriendBonusCap(t *testing.T) {
	steep := postgres.EconomySettings{FriendBonusBase: 1, FriendBonusStep: 1, FriendBonusCap: 7}
	assert.Equal(t, 70, FriendBonus(1000, 10, steep))
	assert.Equal(t, 30, FriendBonus(1000, 3, steep))
}

func TestGrantPlayerXP(t *testing.T) {
	p := &postgres.Player{Level: 1, XP: 90, XPToNextLevel: 100}
	levels := GrantPlayerXP(p, 170)

	// 260 xp: 100 to reach level 2, 150 to reach level 3, 10 left
	assert.Equal(t, 2, levels)
	assert.Equal(t, 3, p.Level)
	assert.Equal(t, 10, p.XP)
	assert.Equal(t, 200, p.XPToNextLevel)

	assert.Equal(t, 0, GrantPlayerXP(p, 0))
	assert.Equal(t, 10, p.XP)
}

func TestAdvanceProgress(t *testing.T) {
	assert.Equal(t, 3, AdvanceProgress(2, 5, 3))
	assert.Equal(t, 2, AdvanceProgress(1, 1, 3))
	assert.Equal(t, 1, AdvanceProgress(1, 0, 3))
	assert.Equal(t, 1, AdvanceProgress(1, -4, 3))
}

func TestXPToNextLevel(t *testing.T) {
	assert.Equal(t, 100, XPToNextLevel(1))
	assert.Equal(t, 150, XPToNextLevel(2))
	assert.Equal(t, 100, XPToNextLevel(0))
}
