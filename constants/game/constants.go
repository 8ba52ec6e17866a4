package game_constants

import "time"

// Player defaults
const (
	STARTING_COINS       = 500
	STARTING_LEVEL       = 1
	BASE_XP_TO_NEXT      = 100
	XP_TO_NEXT_PER_LEVEL = 50
	DEFAULT_BIO          = "¡Hola! Soy nuevo en PictoCat."
	PROFILE_SCHEMA       = 2
)

// Roles
const (
	ROLE_USER  = "user"
	ROLE_MOD   = "mod"
	ROLE_ADMIN = "admin"
)

// Default admin subject, overridable with ADMIN_SUBJECT
const DEFAULT_ADMIN_SUBJECT = "google-oauth2|107222277373277873883"

// Friendship ledger
const (
	FRIENDSHIP_XP_PER_LEVEL = 200
	FRIENDSHIP_MAX_LEVEL    = 10
)

// Friend coin bonus, tunable at runtime through economy_settings
const (
	FRIEND_BONUS_BASE = 1.0
	FRIEND_BONUS_STEP = 0.666
	FRIEND_BONUS_CAP  = 7.0
)

// Daily missions
const DAILY_MISSION_COUNT = 3

// Mission activity types
const (
	MISSION_PLAY_ANY_GAME      = "PLAY_ANY_GAME"
	MISSION_OPEN_ENVELOPE      = "OPEN_ENVELOPE"
	MISSION_LIKE_PUBLIC_PHRASE = "LIKE_PUBLIC_PHRASE"
	MISSION_CHAT_WITH_PICTO    = "CHAT_WITH_PICTO"

	FRIEND_MISSION_PLAY_GAMES   = "PLAY_GAMES"
	FRIEND_MISSION_LIKE_PHRASES = "LIKE_PHRASES"
	FRIEND_MISSION_SEND_TRADE   = "SEND_TRADE"
)

// Trade statuses
const (
	TRADE_PENDING   = "pending"
	TRADE_ACCEPTED  = "accepted"
	TRADE_REJECTED  = "rejected"
	TRADE_CANCELLED = "cancelled"

	TRADE_REASON_STALE = "item no longer available"
)

// Catalog rarities
const (
	RARITY_COMMON = "common"
	RARITY_RARE   = "rare"
	RARITY_EPIC   = "epic"
)

// Community
const (
	FEED_LIMIT        = 20
	SEARCH_MIN_LENGTH = 2
	SEARCH_LIMIT      = 10
)

// Cache lifetimes
const (
	CATALOG_CACHE_TTL  = 10 * time.Minute
	SHOP_CACHE_TTL     = 10 * time.Minute
	SETTINGS_CACHE_TTL = 5 * time.Minute
)

const DEFAULT_GEMINI_MODEL = "gemini-2.5-flash"
