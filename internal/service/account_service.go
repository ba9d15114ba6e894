package service

import (
	"github.com/shopspring/decimal"

	"pocketbank/internal/domain"
)

// AccountService is the capability callers depend on instead of *domain.Account.
type AccountService interface {
	Deposit(account *domain.Account, amount decimal.Decimal) error
	Withdraw(account *domain.Account, amount decimal.Decimal) error
	Transfer(from, to *domain.Account, amount decimal.Decimal) error
}

// Operations forwards every call to the account unchanged.
type Operations struct{}

func NewOperations() Operations { return Operations{} }

func (Operations) Deposit(account *domain.Account, amount decimal.Decimal) error {
	return account.Deposit(amount)
}

func (Operations) Withdraw(account *domain.Account, amount decimal.Decimal) error {
	return account.Withdraw(amount)
}

func (Operations) Transfer(from, to *domain.Account, amount decimal.Decimal) error {
	return from.TransferTo(to, amount)
}

var (
	_ AccountService = Operations{}
	_ AccountService = (*Instrumented)(nil)
)
