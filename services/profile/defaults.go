package profile

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"

	game_constants "pictocat/constants/game"
	"pictocat/models/postgres"
	"pictocat/services/progression"
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)
	usernameInvalid = regexp.MustCompile(`[^a-zA-Z0-9_]+`)
)

const maxUsernameLength = 20

func ValidUsername(username string) bool {
	return usernamePattern.MatchString(username)
}

// DefaultPhrases returns a fresh copy of the starter phrases.
func DefaultPhrases() []postgres.Phrase {
	phrases := make([]postgres.Phrase, 0, len(game_constants.DEFAULT_PHRASES))
	for _, p := range game_constants.DEFAULT_PHRASES {
		phrases = append(phrases, postgres.Phrase{ID: p.ID, Text: p.Text})
	}
	return phrases
}

// NewPlayer builds the canonical profile for a first-seen identity.
func NewPlayer(identity Identity, username string, startingCoins int, adminSubject string) postgres.Player {
	player := postgres.Player{
		ID:            identity.Subject,
		Username:      username,
		Email:         identity.Email,
		Role:          game_constants.ROLE_USER,
		Coins:         startingCoins,
		Level:         game_constants.STARTING_LEVEL,
		XPToNextLevel: progression.XPToNextLevel(game_constants.STARTING_LEVEL),
		Bio:           game_constants.DEFAULT_BIO,
		SchemaVersion: game_constants.PROFILE_SCHEMA,
	}
	if identity.Subject == adminSubject {
		player.Role = game_constants.ROLE_ADMIN
	}
	player.SetPhrases(DefaultPhrases())
	player.SetPurchasedUpgrades(nil)
	player.SetDailyMissions(nil)
	player.SetLegacyFriends(nil)
	return player
}

// UsernameBase derives a candidate username from the email local part, or from the subject.
func UsernameBase(email, subject string) string {
	local := email
	if at := strings.IndexByte(local, '@'); at >= 0 {
		local = local[:at]
	}
	base := truncate(usernameInvalid.ReplaceAllString(local, ""), maxUsernameLength)
	if len(base) >= 3 {
		return base
	}

	suffix := usernameInvalid.ReplaceAllString(subject, "")
	if len(suffix) > 8 {
		suffix = suffix[len(suffix)-8:]
	}
	if suffix == "" {
		suffix = fmt.Sprintf("%06d", rand.IntN(1000000))
	}
	return truncate("user_"+suffix, maxUsernameLength)
}

// UsernameCandidate returns the attempt-th candidate for base; attempt 0 is base itself.
func UsernameCandidate(base string, attempt int) string {
	if attempt == 0 {
		return base
	}
	suffix := fmt.Sprintf("_%d", rand.IntN(10000))
	return truncate(base, maxUsernameLength-len(suffix)) + suffix
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

var validRoles = map[string]bool{
	game_constants.ROLE_USER:  true,
	game_constants.ROLE_MOD:   true,
	game_constants.ROLE_ADMIN: true,
}

// Repair fills missing or invalid fields from the canonical defaults. Present scalar
// values win; undecodable JSON lists are replaced. It reports whether p changed.
func Repair(p *postgres.Player) bool {
	changed := false

	if !validRoles[p.Role] {
		p.Role = game_constants.ROLE_USER
		changed = true
	}
	if p.Coins < 0 {
		p.Coins = 0
		changed = true
	}
	if p.Level < 1 {
		p.Level = game_constants.STARTING_LEVEL
		changed = true
	}
	if p.XP < 0 {
		p.XP = 0
		changed = true
	}
	if p.XPToNextLevel <= 0 {
		p.XPToNextLevel = progression.XPToNextLevel(p.Level)
		changed = true
	}
	if p.TradeNotifications < 0 {
		p.TradeNotifications = 0
		changed = true
	}

	if phrases, err := p.GetPhrases(); err != nil || len(p.Phrases) == 0 {
		p.SetPhrases(DefaultPhrases())
		changed = true
	} else if fixed, ok := repairPhrases(phrases); ok {
		p.SetPhrases(fixed)
		changed = true
	}
	if _, err := p.GetPurchasedUpgrades(); err != nil || len(p.PurchasedUpgrades) == 0 {
		p.SetPurchasedUpgrades(nil)
		changed = true
	}
	if _, err := p.GetDailyMissions(); err != nil || len(p.DailyMissions) == 0 {
		p.SetDailyMissions(nil)
		changed = true
	}
	if _, err := p.GetLegacyFriends(); err != nil || len(p.LegacyFriends) == 0 {
		p.SetLegacyFriends(nil)
		changed = true
	}

	if p.SchemaVersion < game_constants.PROFILE_SCHEMA {
		p.SchemaVersion = game_constants.PROFILE_SCHEMA
		changed = true
	}
	return changed
}

// repairPhrases drops phrases without an id and keeps the first of duplicated ids.
func repairPhrases(phrases []postgres.Phrase) ([]postgres.Phrase, bool) {
	seen := make(map[string]bool, len(phrases))
	out := make([]postgres.Phrase, 0, len(phrases))
	for _, p := range phrases {
		if p.ID == "" || seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		out = append(out, p)
	}
	return out, len(out) != len(phrases)
}
