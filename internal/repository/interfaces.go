package repository

import (
	"context"
	"errors"

	"pocketbank/internal/domain"
)

type AccountRepository interface {
	Save(ctx context.Context, account *domain.Account) error
	GetByNumber(ctx context.Context, number string) (*domain.Account, error)
	List(ctx context.Context) ([]*domain.Account, error)
}

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicate      = errors.New("duplicate entry")
	ErrInvalidAccount = errors.New("invalid account")
)
