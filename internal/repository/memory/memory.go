package memory

import (
	"pocketbank/internal/repository"
)

var _ repository.AccountRepository = (*AccountRepository)(nil)
