package domain

// CategoryKind marks a category as income-like or expense-like.
//
// The kind is informational only: the transaction's own type decides the
// sign of its contribution, never the category it points at.
type CategoryKind string

const (
	CategoryIncome  CategoryKind = "income"
	CategoryExpense CategoryKind = "expense"
)

// IsValid checks if the category kind is known.
func (k CategoryKind) IsValid() bool {
	return k == CategoryIncome || k == CategoryExpense
}

// UncategorizedName is the fallback bucket for transactions without a
// category reference, or whose reference is dangling.
const UncategorizedName = "Uncategorized"

// Category labels transactions for budgets and breakdowns.
type Category struct {
	ID   string
	Name string
	Kind CategoryKind
}
