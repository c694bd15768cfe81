package matching

import "strings"

// Reconciler pairs a recipe ingredient name with a pantry item name.
// The matching engine takes the strategy as a dependency so the heuristic
// can be swapped (edit distance, synonym table) without touching the
// matcher or the cooking executor.
type Reconciler interface {
	Matches(pantryName, ingredientName string) bool
}

// SubstringReconciler matches when either case-folded name contains the
// other, so "chicken" pairs with "chicken breast" and vice versa.
// Deliberately permissive: two unrelated pantry items sharing a common
// substring with an ingredient can both reconcile, and only the first one
// in pantry order is bound.
type SubstringReconciler struct{}

// Matches reports whether the pantry item name and the ingredient name
// reconcile under bidirectional containment.
func (SubstringReconciler) Matches(pantryName, ingredientName string) bool {
	p := strings.ToLower(pantryName)
	n := strings.ToLower(ingredientName)
	return strings.Contains(p, n) || strings.Contains(n, p)
}
