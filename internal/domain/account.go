package domain

import (
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/shopspring/decimal"

	"pocketbank/pkg/ring"
	"pocketbank/pkg/validator"
)

const (
	RecentWindowSize    = 5
	MonthlyBalanceSlots = 12
)

// accountSeq orders accounts for lock acquisition during transfers.
var accountSeq atomic.Uint64

// Account holds a balance together with its transaction history. Use NewAccount;
// the zero value is not usable.
type Account struct {
	number string
	owner  string
	seq    uint64

	mu      sync.Mutex
	balance decimal.Decimal
	monthly *ring.Buffer[decimal.Decimal]
	history []Transaction
	recent  *ring.Buffer[Transaction]
	seen    *validator.IDSet
}

func NewAccount(number, owner string, initial decimal.Decimal) *Account {
	return &Account{
		number:  number,
		owner:   owner,
		seq:     accountSeq.Add(1),
		balance: initial,
		monthly: ring.Filled(MonthlyBalanceSlots, initial),
		recent:  ring.New[Transaction](RecentWindowSize),
		seen:    validator.NewIDSet(),
	}
}

func (a *Account) Number() string { return a.number }
func (a *Account) Owner() string  { return a.owner }

func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Deposit adds a positive amount to the balance.
func (a *Account) Deposit(amount decimal.Decimal) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.deposit(amount)
}

// Withdraw removes amount from the balance. Withdrawing the whole balance is allowed.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.withdraw(amount)
}

// TransferTo moves amount from a to target. Both accounts stay locked for the whole
// transfer, so either all four transactions are recorded or nothing changes.
func (a *Account) TransferTo(target *Account, amount decimal.Decimal) error {
	if target == nil {
		return ErrInvalidTarget
	}
	if err := validator.Positive(amount); err != nil {
		return err
	}

	unlock := lockPair(a, target)
	defer unlock()

	if err := a.withdraw(amount); err != nil {
		return err
	}
	// amount is positive here, so the deposit leg cannot fail.
	if err := target.deposit(amount); err != nil {
		return err
	}

	a.record(NewTransaction(TypeTransfer, amount, "Transfer to "+target.number))
	target.record(NewTransaction(TypeTransfer, amount, "Transfer from "+a.number))
	return nil
}

// RollMonthlyBalance drops the oldest monthly snapshot and stores the current balance
// as the newest one.
func (a *Account) RollMonthlyBalance() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.monthly.Push(a.balance)
}

// MonthlyBalances returns a copy of the 12 snapshots, oldest first.
func (a *Account) MonthlyBalances() []decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.monthly.Snapshot()
}

func (a *Account) History() []Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Clone(a.history)
}

// Recent returns up to RecentWindowSize of the latest transactions, oldest first.
func (a *Account) Recent() []Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.recent.Snapshot()
}

func (a *Account) String() string {
	return fmt.Sprintf("Account[%s] owner=%s balance=%s", a.number, a.owner, a.Balance().StringFixed(2))
}

func (a *Account) deposit(amount decimal.Decimal) error {
	if err := validator.Positive(amount); err != nil {
		return err
	}
	a.balance = a.balance.Add(amount)
	a.record(NewTransaction(TypeDeposit, amount, "Deposit"))
	return nil
}

func (a *Account) withdraw(amount decimal.Decimal) error {
	if err := validator.NonNegative(amount); err != nil {
		return err
	}
	if amount.GreaterThan(a.balance) {
		return fmt.Errorf("%w: withdrawal of %s exceeds balance %s",
			ErrInsufficientFunds, amount.StringFixed(2), a.balance.StringFixed(2))
	}
	a.balance = a.balance.Sub(amount)
	a.record(NewTransaction(TypeWithdraw, amount, "Withdrawal"))
	return nil
}

// record is the only path into history and the recent window. A transaction whose
// id was already recorded is dropped silently.
func (a *Account) record(tx Transaction) {
	if !a.seen.Add(tx.ID) {
		return
	}
	a.history = append(a.history, tx)
	a.recent.Push(tx)
}

func lockPair(a, b *Account) func() {
	if a == b {
		a.mu.Lock()
		return a.mu.Unlock
	}
	first, second := a, b
	if second.seq < first.seq {
		first, second = second, first
	}
	first.mu.Lock()
	second.mu.Lock()
	return func() {
		second.mu.Unlock()
		first.mu.Unlock()
	}
}
