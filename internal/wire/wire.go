// Package wire defines the JSON shapes spoken on the remote API, shared
// by the client gateway and the development server. The server keys
// entities by "_id" and embeds category/account references as objects;
// conversion to the normalized domain model happens here and nowhere
// else.
package wire

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
)

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest is the body of POST /auth/signup.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User is the identity payload of auth responses.
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResponse is returned by login and signup.
type AuthResponse struct {
	AccessToken string `json:"accessToken"`
	User        User   `json:"user"`
}

// MeResponse is returned by the identity probe.
type MeResponse struct {
	User User `json:"user"`
}

// RefreshResponse is returned by the credential renewal endpoint.
type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}

// Account is the wire shape of an account. Balance carries the stored
// opening balance; the derived balance is never transmitted.
type Account struct {
	ID       string          `json:"_id"`
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	Currency string          `json:"currency"`
	Balance  decimal.Decimal `json:"balance"`
}

// CategoryRef is a category embedded in a transaction or budget.
type CategoryRef struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// AccountRef is an account embedded in a transaction.
type AccountRef struct {
	ID      string          `json:"_id"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

// Transaction is the wire shape of a transaction. Category is null for
// uncategorized transactions.
type Transaction struct {
	ID          string          `json:"_id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Date        time.Time       `json:"date"`
	Category    *CategoryRef    `json:"category"`
	Account     *AccountRef     `json:"account"`
}

// Category is the wire shape of a category. The server calls the kind
// field "type".
type Category struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Budget is the wire shape of a budget. The categoryId field is the
// embedded category reference, not a bare id.
type Budget struct {
	ID         string          `json:"_id"`
	CategoryID CategoryRef     `json:"categoryId"`
	Month      string          `json:"month"`
	Limit      decimal.Decimal `json:"limit"`
}

// AccountRequest is the body of account create/edit calls.
type AccountRequest struct {
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	Currency string          `json:"currency"`
	Balance  decimal.Decimal `json:"balance"`
}

// TransactionRequest is the body of transaction create/edit calls.
// Category and account are bare ids here; the server echoes them back
// as embedded references.
type TransactionRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category,omitempty"`
	Account     string          `json:"account"`
	Type        string          `json:"type"`
	Date        time.Time       `json:"date"`
}

// CategoryRequest is the body of category create/edit calls.
type CategoryRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// BudgetRequest is the body of budget create/edit calls.
type BudgetRequest struct {
	CategoryID string          `json:"categoryId"`
	Month      string          `json:"month"`
	Limit      decimal.Decimal `json:"limit"`
}

// TrendPoint is one month bucket of the report trend.
type TrendPoint struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// CategoryValue is one slice of the expense breakdown.
type CategoryValue struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// ReportSummary is the payload of GET /reports/summary.
type ReportSummary struct {
	TotalIncome       decimal.Decimal `json:"totalIncome"`
	TotalExpense      decimal.Decimal `json:"totalExpense"`
	Trend             []TrendPoint    `json:"trend"`
	CategoryBreakdown []CategoryValue `json:"categoryBreakdown"`
	Recent            []Transaction   `json:"recent"`
}

// ToDomain converts a wire user to the domain identity.
func (u User) ToDomain() domain.User {
	return domain.User{ID: u.ID, Name: u.Name, Email: u.Email}
}

// ToDomain converts a wire account. The stored balance field becomes the
// account's base balance.
func (a Account) ToDomain() domain.Account {
	return domain.Account{
		ID:          a.ID,
		Name:        a.Name,
		Type:        domain.AccountType(a.Type),
		Currency:    a.Currency,
		BaseBalance: a.Balance,
	}
}

// FromAccount converts a domain account to its wire shape.
func FromAccount(a domain.Account) Account {
	return Account{
		ID:       a.ID,
		Name:     a.Name,
		Type:     string(a.Type),
		Currency: a.Currency,
		Balance:  a.BaseBalance,
	}
}

// ToDomain converts a wire transaction, resolving embedded references
// with the defined fallbacks: absent category stays empty (views render
// "Uncategorized"), absent account renders "-".
func (t Transaction) ToDomain() domain.Transaction {
	tx := domain.Transaction{
		ID:          t.ID,
		Description: t.Description,
		Amount:      t.Amount,
		Type:        domain.TransactionType(t.Type),
		Date:        t.Date,
		AccountName: "-",
	}
	if t.Account != nil {
		tx.AccountID = t.Account.ID
		tx.AccountName = t.Account.Name
	}
	if t.Category != nil {
		tx.CategoryID = t.Category.ID
		tx.CategoryName = t.Category.Name
	}
	return tx
}

// FromTransaction converts a domain transaction to its wire shape.
// accountBalance is the referenced account's stored base balance.
func FromTransaction(t domain.Transaction, accountBalance decimal.Decimal) Transaction {
	out := Transaction{
		ID:          t.ID,
		Description: t.Description,
		Amount:      t.Amount,
		Type:        string(t.Type),
		Date:        t.Date,
	}
	if t.AccountID != "" {
		out.Account = &AccountRef{ID: t.AccountID, Name: t.AccountName, Balance: accountBalance}
	}
	if t.CategoryID != "" {
		out.Category = &CategoryRef{ID: t.CategoryID, Name: t.CategoryName}
	}
	return out
}

// ToDomain converts a wire category.
func (c Category) ToDomain() domain.Category {
	return domain.Category{ID: c.ID, Name: c.Name, Kind: domain.CategoryKind(c.Type)}
}

// FromCategory converts a domain category to its wire shape.
func FromCategory(c domain.Category) Category {
	return Category{ID: c.ID, Name: c.Name, Type: string(c.Kind)}
}

// ToDomain converts a wire budget.
func (b Budget) ToDomain() domain.Budget {
	return domain.Budget{
		ID:           b.ID,
		CategoryID:   b.CategoryID.ID,
		CategoryName: b.CategoryID.Name,
		Month:        b.Month,
		Limit:        b.Limit,
	}
}

// FromBudget converts a domain budget to its wire shape.
func FromBudget(b domain.Budget) Budget {
	return Budget{
		ID:         b.ID,
		CategoryID: CategoryRef{ID: b.CategoryID, Name: b.CategoryName},
		Month:      b.Month,
		Limit:      b.Limit,
	}
}
