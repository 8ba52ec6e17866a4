package utils

/**
 * This file contains utility functions to format the keys for Redis
 * (key, value) pairs. It avoids having to call "fmt.Sprintf(...)"
 * with the same format spec every time, potentially confusing the key format.
 */

const (
	CatalogKey  = "pictocat:catalog"
	ShopKey     = "pictocat:shop"
	SettingsKey = "pictocat:settings"
)

// ShopKeys are the keys dropped whenever admins touch envelopes or upgrades.
func ShopKeys() []string {
	return []string{ShopKey}
}

// CatalogKeys are the keys dropped whenever admins touch catalog items.
func CatalogKeys() []string {
	return []string{CatalogKey}
}
