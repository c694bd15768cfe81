package matching

import "testing"

func TestSubstringReconciler(t *testing.T) {
	r := SubstringReconciler{}

	cases := []struct {
		pantryName     string
		ingredientName string
		want           bool
	}{
		{"chicken breast", "chicken", true},
		{"chicken", "chicken breast", true},
		{"Parmesan Cheese", "parmesan cheese", true},
		{"EGGS", "eggs", true},
		{"spaghetti", "spaghetti", true},
		{"lettuce", "romaine lettuce", true},
		{"ground beef", "chicken breast", false},
		{"soy sauce", "tomato sauce", false},
		{"", "chicken", true}, // empty string is a substring of everything
	}

	for _, tc := range cases {
		if got := r.Matches(tc.pantryName, tc.ingredientName); got != tc.want {
			t.Errorf("Matches(%q, %q) = %v, want %v", tc.pantryName, tc.ingredientName, got, tc.want)
		}
	}
}
