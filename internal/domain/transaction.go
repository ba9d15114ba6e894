package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TypeDeposit  TransactionType = "deposit"
	TypeWithdraw TransactionType = "withdraw"
	TypeTransfer TransactionType = "transfer"
)

// Transaction is one recorded ledger event. It is handled by value and never mutated
// after construction.
type Transaction struct {
	ID        string          `json:"id"`
	Type      TransactionType `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp time.Time       `json:"timestamp"`
	Note      string          `json:"note"`
}

func NewTransaction(t TransactionType, amount decimal.Decimal, note string) Transaction {
	return Transaction{
		ID:        uuid.NewString(),
		Type:      t,
		Amount:    amount,
		Timestamp: time.Now(),
		Note:      note,
	}
}

func (tx Transaction) String() string {
	return fmt.Sprintf("Transaction[%s] %s %s at %s (%s)",
		tx.ID, tx.Type, tx.Amount.StringFixed(2), tx.Timestamp.Format(time.RFC3339), tx.Note)
}
