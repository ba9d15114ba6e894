// Package statement turns an account into a printable and signable snapshot.
package statement

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"pocketbank/internal/domain"
	"pocketbank/pkg/crypto"
)

type Statement struct {
	AccountNumber   string               `json:"account_number"`
	Owner           string               `json:"owner"`
	Balance         decimal.Decimal      `json:"balance"`
	MonthlyBalances []decimal.Decimal    `json:"monthly_balances"`
	History         []domain.Transaction `json:"history"`
	Recent          []domain.Transaction `json:"recent"`
	GeneratedAt     time.Time            `json:"generated_at"`
}

// Signed carries a statement with the HMAC of its JSON encoding.
type Signed struct {
	Statement Statement `json:"statement"`
	Signature string    `json:"signature"`
}

func Build(acc *domain.Account) Statement {
	return Statement{
		AccountNumber:   acc.Number(),
		Owner:           acc.Owner(),
		Balance:         acc.Balance(),
		MonthlyBalances: acc.MonthlyBalances(),
		History:         acc.History(),
		Recent:          acc.Recent(),
		GeneratedAt:     time.Now().UTC(),
	}
}

// Render writes the console view of s to w.
func Render(w io.Writer, s Statement) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Account[%s] owner=%s balance=%s\n", s.AccountNumber, s.Owner, s.Balance.StringFixed(2))

	b.WriteString("Monthly balances (latest last):\n")
	for i, m := range s.MonthlyBalances {
		fmt.Fprintf(&b, "  month %2d: %s\n", i+1, m.StringFixed(2))
	}

	b.WriteString("Transaction history:\n")
	writeTransactions(&b, s.History)

	b.WriteString("Recent transactions:\n")
	writeTransactions(&b, s.Recent)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeTransactions(b *strings.Builder, txs []domain.Transaction) {
	if len(txs) == 0 {
		b.WriteString("  (none)\n")
		return
	}
	for _, tx := range txs {
		b.WriteString("  ")
		b.WriteString(tx.String())
		b.WriteByte('\n')
	}
}

func Sign(s Statement, signer *crypto.Signer) (Signed, error) {
	payload, err := json.Marshal(s)
	if err != nil {
		return Signed{}, fmt.Errorf("encode statement %s: %w", s.AccountNumber, err)
	}
	return Signed{Statement: s, Signature: signer.Sign(payload)}, nil
}

func Verify(signed Signed, signer *crypto.Signer) error {
	payload, err := json.Marshal(signed.Statement)
	if err != nil {
		return fmt.Errorf("encode statement %s: %w", signed.Statement.AccountNumber, err)
	}
	return signer.Verify(payload, signed.Signature)
}
