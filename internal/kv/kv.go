// Package kv provides the string-keyed persistence layer every store
// writes through. Values are opaque strings (JSON blobs in practice);
// there are no transactions and no expiry.
package kv

// Store is the synchronous key-value contract. Get reports whether the
// key was present; a missing key is not an error.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}

// Conventional keys. Stores own their keys exclusively; nothing outside
// the state package should read or write them directly.
const (
	KeyTransactions     = "transactions"
	KeyUserSettings     = "userSettings"
	KeyIsAuthenticated  = "isAuthenticated"
	KeyUser             = "user"
	KeyUsers            = "users"
	KeyDashboardLayouts = "dashboardLayouts"
	KeyTheme            = "theme"
)
