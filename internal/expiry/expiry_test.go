package expiry

import (
	"testing"
	"time"

	"pantrykit/internal/models"
)

var now = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

func TestDaysUntil(t *testing.T) {
	cases := []struct {
		name   string
		expiry time.Time
		want   int
	}{
		{"one day ago", now.Add(-24 * time.Hour), -1},
		{"this moment", now, 0},
		{"later today", now.Add(6 * time.Hour), 1},
		{"exactly three days", now.Add(72 * time.Hour), 3},
		{"fractional rounds up", now.Add(50*time.Hour + 24*time.Minute), 3}, // 2.1 days
		{"four days", now.Add(96 * time.Hour), 4},
	}

	for _, tc := range cases {
		if got := DaysUntil(tc.expiry, now); got != tc.want {
			t.Errorf("DaysUntil(%s) = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name   string
		expiry time.Time
		want   Status
	}{
		{"expired yesterday", now.Add(-24 * time.Hour), StatusExpired},
		{"expires now", now, StatusExpiringSoon},
		{"expires in three days", now.Add(72 * time.Hour), StatusExpiringSoon},
		{"expires in four days", now.Add(96 * time.Hour), StatusFresh},
		{"expires in 2.1 days", now.Add(50*time.Hour + 24*time.Minute), StatusExpiringSoon},
	}

	for _, tc := range cases {
		if got := Classify(tc.expiry, now); got != tc.want {
			t.Errorf("Classify(%s) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestSortByExpiry(t *testing.T) {
	items := []models.PantryItem{
		{Name: "milk", ExpiryDate: now.Add(96 * time.Hour)},
		{Name: "chicken", ExpiryDate: now.Add(24 * time.Hour)},
		{Name: "eggs", ExpiryDate: now.Add(48 * time.Hour)},
	}

	sorted := SortByExpiry(items)

	want := []string{"chicken", "eggs", "milk"}
	for i, name := range want {
		if sorted[i].Name != name {
			t.Errorf("SortByExpiry()[%d] = %q, want %q", i, sorted[i].Name, name)
		}
	}

	// Input order must be untouched
	if items[0].Name != "milk" {
		t.Errorf("SortByExpiry() mutated its input: items[0] = %q", items[0].Name)
	}
}

func TestSortByExpiryStable(t *testing.T) {
	sameDay := now.Add(24 * time.Hour)
	items := []models.PantryItem{
		{Name: "first", ExpiryDate: sameDay},
		{Name: "second", ExpiryDate: sameDay},
	}

	sorted := SortByExpiry(items)

	if sorted[0].Name != "first" || sorted[1].Name != "second" {
		t.Errorf("SortByExpiry() reordered equal expiries: got [%q, %q]", sorted[0].Name, sorted[1].Name)
	}
}
