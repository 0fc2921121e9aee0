package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Validation constants
const (
	MaxNameLength        = 255
	MaxDescriptionLength = 1024
	MinPasswordLength    = 8
)

// Valid currency codes accepted for accounts.
var validCurrencies = map[string]bool{
	"USD": true, "EUR": true, "ETB": true,
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateAccount validates the user-supplied fields of an account.
func ValidateAccount(a Account) error {
	if err := validateName(a.Name); err != nil {
		return err
	}
	if !a.Type.IsValid() {
		return fmt.Errorf("%w: unknown account type %q", ErrValidation, a.Type)
	}
	if !validCurrencies[a.Currency] {
		return fmt.Errorf("%w: unsupported currency %q", ErrValidation, a.Currency)
	}
	return nil
}

// ValidateCategory validates the user-supplied fields of a category.
func ValidateCategory(c Category) error {
	if err := validateName(c.Name); err != nil {
		return err
	}
	if !c.Kind.IsValid() {
		return fmt.Errorf("%w: unknown category kind %q", ErrValidation, c.Kind)
	}
	return nil
}

// ValidateTransaction validates the user-supplied fields of a transaction.
func ValidateTransaction(t Transaction) error {
	if strings.TrimSpace(t.Description) == "" {
		return fmt.Errorf("%w: description cannot be empty", ErrValidation)
	}
	if len(t.Description) > MaxDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", ErrValidation, MaxDescriptionLength)
	}
	if err := ValidateAmount(t.Amount); err != nil {
		return err
	}
	if !t.Type.IsValid() {
		return fmt.Errorf("%w: unknown transaction type %q", ErrValidation, t.Type)
	}
	if t.AccountID == "" {
		return fmt.Errorf("%w: transaction requires an account", ErrValidation)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("%w: transaction requires a date", ErrValidation)
	}
	return nil
}

// ValidateBudget validates the user-supplied fields of a budget.
func ValidateBudget(b Budget) error {
	if b.CategoryID == "" {
		return fmt.Errorf("%w: budget requires a category", ErrValidation)
	}
	if err := ValidateMonth(b.Month); err != nil {
		return err
	}
	if !b.Limit.IsPositive() {
		return fmt.Errorf("%w: limit must be positive", ErrValidation)
	}
	return nil
}

// ValidateAmount ensures a monetary amount is strictly positive. Sign is
// carried by the transaction type, never stored in the amount.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	return nil
}

// ValidateMonth ensures a month key is in YYYY-MM form.
func ValidateMonth(month string) error {
	if _, err := time.Parse(MonthLayout, month); err != nil {
		return fmt.Errorf("%w: month must be in YYYY-MM form", ErrValidation)
	}
	return nil
}

// ValidateEmail validates an email address format.
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("%w: invalid email format", ErrValidation)
	}
	return nil
}

// ValidatePassword enforces the minimum password requirements.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrValidation, MinPasswordLength)
	}
	return nil
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrValidation)
	}
	if len(name) > MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrValidation, MaxNameLength)
	}
	return nil
}
