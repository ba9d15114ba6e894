package domain

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func assertBalance(t *testing.T, acc *Account, want float64) {
	t.Helper()
	if got := acc.Balance(); !got.Equal(dec(want)) {
		t.Fatalf("account %s: expected balance %.2f, got %s", acc.Number(), want, got.StringFixed(2))
	}
}

func TestNewAccount_InitialState(t *testing.T) {
	acc := NewAccount("ACC1001", "Alice", dec(1000))

	if acc.Number() != "ACC1001" || acc.Owner() != "Alice" {
		t.Fatalf("unexpected identity: %s", acc)
	}
	assertBalance(t, acc, 1000)

	monthly := acc.MonthlyBalances()
	if len(monthly) != MonthlyBalanceSlots {
		t.Fatalf("expected %d monthly slots, got %d", MonthlyBalanceSlots, len(monthly))
	}
	for i, m := range monthly {
		if !m.Equal(dec(1000)) {
			t.Errorf("slot %d: expected 1000, got %s", i, m)
		}
	}
	if len(acc.History()) != 0 || len(acc.Recent()) != 0 {
		t.Errorf("expected empty history and recent window")
	}
}

func TestAccount_Deposit(t *testing.T) {
	acc := NewAccount("A", "Alice", dec(5000))

	if err := acc.Deposit(dec(250)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertBalance(t, acc, 5250)
	history := acc.History()
	if len(history) != 1 || history[0].Type != TypeDeposit || !history[0].Amount.Equal(dec(250)) {
		t.Errorf("expected one deposit of 250, got %+v", history)
	}
}

func TestAccount_DepositRejectsNonPositive(t *testing.T) {
	for _, amount := range []float64{0, -200} {
		acc := NewAccount("A", "Alice", dec(100))

		err := acc.Deposit(dec(amount))

		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("deposit(%v): expected ErrInvalidAmount, got %v", amount, err)
		}
		assertBalance(t, acc, 100)
		if len(acc.History()) != 0 {
			t.Errorf("deposit(%v): failed deposit must not be recorded", amount)
		}
	}
}

func TestAccount_Withdraw(t *testing.T) {
	tests := []struct {
		name    string
		amount  float64
		want    float64
		wantErr error
	}{
		{"partial", 200, 4800, nil},
		{"zero", 0, 5000, nil},
		{"drain to zero", 5000, 0, nil},
		{"more than balance", 5000.01, 5000, ErrInsufficientFunds},
		{"negative", -1, 5000, ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := NewAccount("A", "Alice", dec(5000))

			err := acc.Withdraw(dec(tt.amount))

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			assertBalance(t, acc, tt.want)
			wantRecorded := 0
			if tt.wantErr == nil {
				wantRecorded = 1
			}
			if got := len(acc.History()); got != wantRecorded {
				t.Errorf("expected %d recorded transactions, got %d", wantRecorded, got)
			}
		})
	}
}

func TestAccount_WithdrawErrorMentionsAmounts(t *testing.T) {
	acc := NewAccount("A", "Alice", dec(100))

	err := acc.Withdraw(dec(150))

	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "150.00") || !strings.Contains(err.Error(), "100.00") {
		t.Errorf("expected amount and balance in message, got %q", err)
	}
}

func TestAccount_TransferTo(t *testing.T) {
	alice := NewAccount("ACC1001", "Alice", dec(5000))
	bob := NewAccount("ACC1002", "Bob", dec(500))

	if err := alice.TransferTo(bob, dec(300)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertBalance(t, alice, 4700)
	assertBalance(t, bob, 800)

	ah, bh := alice.History(), bob.History()
	if len(ah) != 2 || len(bh) != 2 {
		t.Fatalf("expected 2 transactions per side, got %d and %d", len(ah), len(bh))
	}
	if ah[0].Type != TypeWithdraw || ah[1].Type != TypeTransfer || ah[1].Note != "Transfer to ACC1002" {
		t.Errorf("unexpected source history: %+v", ah)
	}
	if bh[0].Type != TypeDeposit || bh[1].Type != TypeTransfer || bh[1].Note != "Transfer from ACC1001" {
		t.Errorf("unexpected target history: %+v", bh)
	}
}

func TestAccount_TransferInsufficientFundsLeavesBothUntouched(t *testing.T) {
	alice := NewAccount("ACC1001", "Alice", dec(5000))
	bob := NewAccount("ACC1002", "Bob", dec(500))

	err := alice.TransferTo(bob, dec(10_000))

	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	assertBalance(t, alice, 5000)
	assertBalance(t, bob, 500)
	if len(alice.History()) != 0 || len(bob.History()) != 0 {
		t.Errorf("failed transfer must not record transactions")
	}
}

func TestAccount_TransferRejectsNilTargetAndBadAmount(t *testing.T) {
	alice := NewAccount("ACC1001", "Alice", dec(100))
	bob := NewAccount("ACC1002", "Bob", dec(0))

	if err := alice.TransferTo(nil, dec(10)); !errors.Is(err, ErrInvalidTarget) {
		t.Fatalf("expected ErrInvalidTarget, got %v", err)
	}
	for _, amount := range []float64{0, -5} {
		if err := alice.TransferTo(bob, dec(amount)); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("transfer(%v): expected ErrInvalidAmount, got %v", amount, err)
		}
	}

	assertBalance(t, alice, 100)
	assertBalance(t, bob, 0)
	if len(alice.History()) != 0 || len(bob.History()) != 0 {
		t.Errorf("rejected transfers must not record transactions")
	}
}

func TestAccount_TransferToSelf(t *testing.T) {
	acc := NewAccount("A", "Alice", dec(100))

	if err := acc.TransferTo(acc, dec(40)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertBalance(t, acc, 100)
	if got := len(acc.History()); got != 4 {
		t.Errorf("expected 4 transactions on a self transfer, got %d", got)
	}
}

func TestAccount_RecentWindowKeepsLastFive(t *testing.T) {
	acc := NewAccount("A", "Alice", dec(5000))

	for i := 1; i <= 7; i++ {
		if err := acc.Deposit(dec(10 * float64(i))); err != nil {
			t.Fatalf("deposit %d: %v", i, err)
		}
	}

	recent := acc.Recent()
	if len(recent) != RecentWindowSize {
		t.Fatalf("expected %d recent transactions, got %d", RecentWindowSize, len(recent))
	}
	for i, tx := range recent {
		want := dec(10 * float64(i+3))
		if !tx.Amount.Equal(want) {
			t.Errorf("recent[%d]: expected %s, got %s", i, want, tx.Amount)
		}
	}
	if got := len(acc.History()); got != 7 {
		t.Errorf("history should keep all 7 transactions, got %d", got)
	}
}

func TestAccount_RollMonthlyBalance(t *testing.T) {
	acc := NewAccount("A", "Alice", dec(1000))

	_ = acc.Deposit(dec(500))
	acc.RollMonthlyBalance()
	before := acc.MonthlyBalances()
	_ = acc.Withdraw(dec(100))
	acc.RollMonthlyBalance()

	after := acc.MonthlyBalances()
	if len(after) != MonthlyBalanceSlots {
		t.Fatalf("expected %d slots, got %d", MonthlyBalanceSlots, len(after))
	}
	for i := 0; i < MonthlyBalanceSlots-1; i++ {
		if !after[i].Equal(before[i+1]) {
			t.Errorf("slot %d: expected %s, got %s", i, before[i+1], after[i])
		}
	}
	if last := after[MonthlyBalanceSlots-1]; !last.Equal(dec(1400)) {
		t.Errorf("expected newest slot 1400, got %s", last)
	}
	if !after[MonthlyBalanceSlots-2].Equal(dec(1500)) {
		t.Errorf("expected previous slot 1500, got %s", after[MonthlyBalanceSlots-2])
	}
}

func TestAccount_AccessorsReturnCopies(t *testing.T) {
	acc := NewAccount("A", "Alice", dec(1000))
	_ = acc.Deposit(dec(200))
	acc.RollMonthlyBalance()

	monthly := acc.MonthlyBalances()
	monthly[len(monthly)-1] = dec(-9999)
	history := acc.History()
	history[0].Note = "tampered"
	recent := acc.Recent()
	recent[0] = Transaction{}

	if got := acc.MonthlyBalances(); !got[len(got)-1].Equal(dec(1200)) {
		t.Errorf("monthly balances leaked mutation: %s", got[len(got)-1])
	}
	if got := acc.History(); got[0].Note != "Deposit" {
		t.Errorf("history leaked mutation: %q", got[0].Note)
	}
	if got := acc.Recent(); got[0].ID == "" {
		t.Errorf("recent window leaked mutation")
	}
}

func TestAccount_RecordDropsSeenID(t *testing.T) {
	acc := NewAccount("A", "Alice", dec(0))
	tx := NewTransaction(TypeDeposit, dec(10), "Deposit")

	acc.record(tx)
	acc.record(tx)

	if got := len(acc.History()); got != 1 {
		t.Errorf("expected duplicate to be dropped, history has %d entries", got)
	}
	if got := len(acc.Recent()); got != 1 {
		t.Errorf("expected duplicate to be dropped, recent has %d entries", got)
	}
}

func TestAccount_WorkedExample(t *testing.T) {
	a := NewAccount("ACC1001", "Alice", dec(1000))
	b := NewAccount("ACC1002", "Bob", dec(500))

	if err := a.Deposit(dec(250)); err != nil {
		t.Fatal(err)
	}
	assertBalance(t, a, 1250)
	if err := a.Withdraw(dec(200)); err != nil {
		t.Fatal(err)
	}
	assertBalance(t, a, 1050)

	if err := a.TransferTo(b, dec(2000)); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	assertBalance(t, a, 1050)
	assertBalance(t, b, 500)

	if err := a.TransferTo(b, dec(300)); err != nil {
		t.Fatal(err)
	}
	assertBalance(t, a, 750)
	assertBalance(t, b, 800)
}

func TestAccount_ConcurrentTransfersConserveTotal(t *testing.T) {
	a := NewAccount("A", "Alice", dec(10000))
	b := NewAccount("B", "Bob", dec(10000))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = a.TransferTo(b, dec(100))
		}()
		go func() {
			defer wg.Done()
			_ = b.TransferTo(a, dec(100))
		}()
	}
	wg.Wait()

	if total := a.Balance().Add(b.Balance()); !total.Equal(dec(20000)) {
		t.Fatalf("conservation violated: a+b=%s", total)
	}
	if got := len(a.History()); got != 200 {
		t.Errorf("expected 200 transactions on A, got %d", got)
	}
}

func TestNewTransaction(t *testing.T) {
	tx1 := NewTransaction(TypeWithdraw, dec(12.5), "Withdrawal")
	tx2 := NewTransaction(TypeWithdraw, dec(12.5), "Withdrawal")

	if tx1.ID == "" || tx1.ID == tx2.ID {
		t.Fatalf("expected distinct non-empty ids, got %q and %q", tx1.ID, tx2.ID)
	}
	if tx1.Timestamp.IsZero() {
		t.Error("expected timestamp to be set")
	}
	if s := tx1.String(); !strings.Contains(s, "withdraw 12.50") || !strings.Contains(s, "(Withdrawal)") {
		t.Errorf("unexpected String(): %q", s)
	}
}

func TestClassifyError(t *testing.T) {
	acc := NewAccount("A", "Alice", dec(10))

	tests := []struct {
		err  error
		want string
	}{
		{nil, "ok"},
		{acc.Deposit(dec(0)), "invalid_amount"},
		{acc.Withdraw(dec(11)), "insufficient_funds"},
		{acc.TransferTo(nil, dec(1)), "invalid_target"},
		{errors.New("boom"), "error"},
	}

	for _, tt := range tests {
		if got := ClassifyError(tt.err); got != tt.want {
			t.Errorf("ClassifyError(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
