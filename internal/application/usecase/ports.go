package usecase

import (
	"context"

	"github.com/faithbit/ssms-api/internal/domain/repository"
)

// CustomerTxRunner runs fn with a CustomerRepository bound to a single
// database transaction. Customer creation needs it so the read of the
// month's highest number and the insert happen atomically.
type CustomerTxRunner interface {
	RunCustomer(ctx context.Context, fn func(repo repository.CustomerRepository) error) error
}
