package validator

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

// Positive rejects zero and negative amounts.
func Positive(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: %s must be positive", ErrInvalidAmount, amount.StringFixed(2))
	}
	return nil
}

// NonNegative rejects negative amounts and accepts zero.
func NonNegative(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: %s must not be negative", ErrInvalidAmount, amount.StringFixed(2))
	}
	return nil
}

// IDSet remembers identifiers that have already been accepted.
type IDSet struct {
	seen map[string]struct{}
}

func NewIDSet() *IDSet {
	return &IDSet{seen: make(map[string]struct{})}
}

// Add marks id as seen. It returns false if id was seen before.
func (s *IDSet) Add(id string) bool {
	if _, ok := s.seen[id]; ok {
		return false
	}
	s.seen[id] = struct{}{}
	return true
}

func (s *IDSet) Contains(id string) bool {
	_, ok := s.seen[id]
	return ok
}

func (s *IDSet) Len() int { return len(s.seen) }
