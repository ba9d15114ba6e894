package memory

import (
	"context"
	"fmt"
	"sync"

	"pocketbank/internal/domain"
	"pocketbank/internal/repository"
)

// AccountRepository keeps accounts in insertion order, indexed by account number.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
	order    []string
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: make(map[string]*domain.Account),
	}
}

func (r *AccountRepository) Save(ctx context.Context, account *domain.Account) error {
	if account == nil {
		return repository.ErrInvalidAccount
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[account.Number()]; exists {
		return fmt.Errorf("%w: account %s", repository.ErrDuplicate, account.Number())
	}

	r.accounts[account.Number()] = account
	r.order = append(r.order, account.Number())
	return nil
}

func (r *AccountRepository) GetByNumber(ctx context.Context, number string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, exists := r.accounts[number]
	if !exists {
		return nil, fmt.Errorf("%w: account %s", repository.ErrNotFound, number)
	}
	return account, nil
}

func (r *AccountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Account, 0, len(r.order))
	for _, number := range r.order {
		result = append(result, r.accounts[number])
	}
	return result, nil
}
