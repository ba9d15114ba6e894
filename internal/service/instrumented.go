package service

import (
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"pocketbank/internal/domain"
	"pocketbank/pkg/logging"
	"pocketbank/pkg/metrics"
)

// Instrumented logs and measures each call on the wrapped service. Arguments and
// errors pass through untouched.
type Instrumented struct {
	next    AccountService
	metrics metrics.Collector
	logger  *logging.Logger
}

func NewInstrumented(next AccountService, collector metrics.Collector, logger *logging.Logger) *Instrumented {
	if collector == nil {
		collector = metrics.NoOpCollector{}
	}
	return &Instrumented{
		next:    next,
		metrics: collector,
		logger:  logging.OrNop(logger).Named("accounts"),
	}
}

func (s *Instrumented) Deposit(account *domain.Account, amount decimal.Decimal) error {
	start := time.Now()
	err := s.next.Deposit(account, amount)
	s.observe("deposit", amount, start, err, accountField("account", account))
	s.trackBalance(account)
	return err
}

func (s *Instrumented) Withdraw(account *domain.Account, amount decimal.Decimal) error {
	start := time.Now()
	err := s.next.Withdraw(account, amount)
	s.observe("withdraw", amount, start, err, accountField("account", account))
	s.trackBalance(account)
	return err
}

func (s *Instrumented) Transfer(from, to *domain.Account, amount decimal.Decimal) error {
	start := time.Now()
	err := s.next.Transfer(from, to, amount)
	s.observe("transfer", amount, start, err, accountField("from_account", from), accountField("to_account", to))
	s.trackBalance(from)
	s.trackBalance(to)
	return err
}

func (s *Instrumented) observe(op string, amount decimal.Decimal, start time.Time, err error, fields ...zap.Field) {
	outcome := domain.ClassifyError(err)
	s.metrics.RecordOperation(op, outcome, time.Since(start))

	fields = append(fields,
		zap.String("operation", op),
		zap.String("amount", amount.StringFixed(2)),
		zap.String("outcome", outcome),
	)
	if err != nil {
		s.logger.Warn("Account operation failed", append(fields, zap.Error(err))...)
		return
	}
	s.logger.Info("Account operation completed", fields...)
}

func (s *Instrumented) trackBalance(acc *domain.Account) {
	if acc == nil {
		return
	}
	s.metrics.UpdateAccountBalance(acc.Number(), acc.Balance().InexactFloat64())
}

func accountField(key string, acc *domain.Account) zap.Field {
	if acc == nil {
		return zap.Skip()
	}
	return zap.String(key, acc.Number())
}
