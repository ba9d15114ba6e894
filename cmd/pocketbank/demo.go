package main

import (
	"context"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"pocketbank/internal/domain"
	"pocketbank/internal/repository"
	"pocketbank/internal/service"
	"pocketbank/internal/statement"
	"pocketbank/pkg/crypto"
)

// runDemo opens two accounts, moves money between them and prints a signed statement
// for every account.
func runDemo(ctx context.Context, w io.Writer, accounts service.AccountService, repo repository.AccountRepository, signer *crypto.Signer) error {
	for _, acc := range []*domain.Account{
		domain.NewAccount("ACC1001", "Alice", decimal.NewFromInt(1000)),
		domain.NewAccount("ACC1002", "Bob", decimal.NewFromInt(500)),
	} {
		if err := repo.Save(ctx, acc); err != nil {
			return fmt.Errorf("open account: %w", err)
		}
	}

	// An unknown number resolves to nil and is rejected by the transfer itself.
	lookup := func(number string) *domain.Account {
		acc, err := repo.GetByNumber(ctx, number)
		if err != nil {
			return nil
		}
		return acc
	}
	alice := lookup("ACC1001")

	if err := accounts.Deposit(alice, decimal.NewFromInt(250)); err != nil {
		return fmt.Errorf("deposit: %w", err)
	}
	if err := accounts.Withdraw(alice, decimal.NewFromInt(200)); err != nil {
		fmt.Fprintf(w, "Withdraw failed: %v\n", err)
	}

	transfers := []struct {
		to     string
		amount decimal.Decimal
	}{
		{"ACC1002", decimal.NewFromInt(2000)},
		{"ACC1002", decimal.NewFromInt(300)},
		{"ACC9999", decimal.NewFromInt(50)},
	}
	for _, tr := range transfers {
		fmt.Fprintf(w, "Transferring %s %s -> %s\n", tr.amount.StringFixed(2), alice.Number(), tr.to)
		if err := accounts.Transfer(alice, lookup(tr.to), tr.amount); err != nil {
			fmt.Fprintf(w, "Transfer failed: %v\n", err)
		}
	}

	alice.RollMonthlyBalance()

	all, err := repo.List(ctx)
	if err != nil {
		return fmt.Errorf("list accounts: %w", err)
	}
	for _, acc := range all {
		s := statement.Build(acc)
		fmt.Fprintln(w)
		if err := statement.Render(w, s); err != nil {
			return err
		}
		signed, err := statement.Sign(s, signer)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Signature: %s\n", signed.Signature)
	}
	return nil
}
