package expiry

import (
	"math"
	"sort"
	"time"

	"pantrykit/internal/models"
)

// Status represents the freshness state of a pantry item
type Status string

const (
	// Freshness states
	StatusExpired      Status = "expired"
	StatusExpiringSoon Status = "expiring-soon"
	StatusFresh        Status = "fresh"
)

// ExpiringSoonDays is the window, in calendar days, within which an item
// counts as expiring soon.
const ExpiringSoonDays = 3

// DaysUntil returns the number of calendar days until expiry, rounded up.
// An item expiring partway through a day still counts the full day, so
// something expiring in 2.1 days reports 3 days remaining. Past expiries
// return a negative count.
func DaysUntil(expiryDate, now time.Time) int {
	return int(math.Ceil(expiryDate.Sub(now).Hours() / 24))
}

// Classify maps an expiry timestamp to a freshness status relative to the
// caller-supplied now. An expiry earlier today (zero days remaining) is
// expiring-soon, not expired.
func Classify(expiryDate, now time.Time) Status {
	days := DaysUntil(expiryDate, now)
	switch {
	case days < 0:
		return StatusExpired
	case days <= ExpiringSoonDays:
		return StatusExpiringSoon
	default:
		return StatusFresh
	}
}

// SortByExpiry returns a copy of items ordered soonest-expiring first.
// Items with equal expiry keep their relative input order.
func SortByExpiry(items []models.PantryItem) []models.PantryItem {
	sorted := make([]models.PantryItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ExpiryDate.Before(sorted[j].ExpiryDate)
	})
	return sorted
}
