package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountClass distinguishes how an account's balance floor is derived.
type AccountClass string

const (
	ClassChecking AccountClass = "checking"
	ClassSavings  AccountClass = "savings"
	ClassCredit   AccountClass = "credit"
)

// IsValid reports whether the class is one of the known classes.
func (c AccountClass) IsValid() bool {
	switch c {
	case ClassChecking, ClassSavings, ClassCredit:
		return true
	}
	return false
}

// Account represents a customer account holding a balance.
// Floor is the lowest balance a debit may leave behind: zero for
// checking and savings, a per-account (usually negative) limit for
// credit accounts.
type Account struct {
	Number    string
	OwnerID   string
	Class     AccountClass
	Balance   decimal.Decimal
	Floor     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateDebit checks whether the account can be debited by amount
// without dropping below its floor.
func (a *Account) ValidateDebit(amount decimal.Decimal) error {
	if a.Balance.Sub(amount).LessThan(a.Floor) {
		return ErrInsufficientFunds
	}
	return nil
}

// ApplyDebit returns the balance after a debit.
func (a *Account) ApplyDebit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Sub(amount)
}

// ApplyCredit returns the balance after a credit.
func (a *Account) ApplyCredit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Add(amount)
}
