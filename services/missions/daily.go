package missions

import (
	"math/rand/v2"
	"time"

	game_constants "pictocat/constants/game"
	"pictocat/models/postgres"
)

// Shuffler permutes n elements through swap, with the contract of rand.Shuffle.
type Shuffler func(n int, swap func(i, j int))

// DayStart truncates t to 00:00 UTC of its calendar day.
func DayStart(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NeedsReset reports whether the last rollover happened before today's UTC midnight.
func NeedsReset(lastReset, now time.Time) bool {
	return lastReset.Before(DayStart(now))
}

// Draw picks count distinct templates at random as fresh, unclaimed missions.
func Draw(count int, shuffle Shuffler) []postgres.DailyMission {
	if shuffle == nil {
		shuffle = rand.Shuffle
	}
	templates := append([]game_constants.DailyMissionTemplate(nil), game_constants.DAILY_MISSIONS...)
	shuffle(len(templates), func(i, j int) { templates[i], templates[j] = templates[j], templates[i] })

	if count > len(templates) {
		count = len(templates)
	}
	if count < 0 {
		count = 0
	}
	missions := make([]postgres.DailyMission, 0, count)
	for _, tpl := range templates[:count] {
		missions = append(missions, postgres.DailyMission{
			ID:          tpl.ID,
			Type:        tpl.Type,
			Goal:        tpl.Goal,
			RewardCoins: tpl.RewardCoins,
			RewardXP:    tpl.RewardXP,
			Description: tpl.Description,
		})
	}
	return missions
}

// Roll replaces the player's daily missions when the day changed, or always when force is set.
func Roll(p *postgres.Player, count int, now time.Time, force bool, shuffle Shuffler) bool {
	if !force && !NeedsReset(p.LastMissionReset, now) {
		return false
	}
	p.SetDailyMissions(Draw(count, shuffle))
	p.LastMissionReset = now.UTC()
	return true
}

// Advance bumps every unclaimed mission of missionType by amount, clamped at its goal.
func Advance(missions []postgres.DailyMission, missionType string, amount int) bool {
	if amount <= 0 {
		return false
	}
	changed := false
	for i := range missions {
		m := &missions[i]
		if m.Type != missionType || m.IsClaimed {
			continue
		}
		next := m.Progress + amount
		if next > m.Goal {
			next = m.Goal
		}
		if next != m.Progress {
			m.Progress = next
			changed = true
		}
	}
	return changed
}
