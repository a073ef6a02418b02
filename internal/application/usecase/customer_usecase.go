package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/faithbit/ssms-api/internal/application/dto"
	"github.com/faithbit/ssms-api/internal/domain"
	"github.com/faithbit/ssms-api/internal/domain/entity"
	"github.com/faithbit/ssms-api/internal/domain/identifier"
	"github.com/faithbit/ssms-api/internal/domain/repository"
)

// createAttempts bounds the retry loop when two creations race for the same
// month sequence. The unique index on customer_number is the arbiter; the
// loser re-reads and takes the next number.
const createAttempts = 3

// CustomerUseCase covers customer CRUD, listing and number generation.
type CustomerUseCase struct {
	repo repository.CustomerRepository
	tx   CustomerTxRunner
	now  func() time.Time
}

// NewCustomerUseCase builds the use case.
func NewCustomerUseCase(repo repository.CustomerRepository, tx CustomerTxRunner) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, tx: tx, now: time.Now}
}

// WithClock overrides the clock, for tests.
func (uc *CustomerUseCase) WithClock(now func() time.Time) *CustomerUseCase {
	uc.now = now
	return uc
}

// Create inserts a customer with a freshly generated customer number. The
// max-number read and the insert run in one transaction; a losing racer hits
// the unique index, gets ErrNumberConflict and retries with a fresh read —
// never a silent duplicate.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Type == "" {
		in.Type = entity.CustomerIndividual
	}
	if in.Type != entity.CustomerIndividual && in.Type != entity.CustomerBusiness {
		return nil, domain.ErrInvalidInput
	}

	now := uc.now()
	customer := &entity.Customer{
		ID:          uuid.New().String(),
		Type:        in.Type,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		CompanyName: in.CompanyName,
		Email:       in.Email,
		Phone:       in.Phone,
		Phone2:      in.Phone2,
		Address:     in.Address,
		City:        in.City,
		Region:      in.Region,
		CreditLimit: in.CreditLimit,
		Notes:       in.Notes,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var lastErr error
	for attempt := 0; attempt < createAttempts; attempt++ {
		err := uc.tx.RunCustomer(ctx, func(repo repository.CustomerRepository) error {
			prefix := identifier.CustomerNumberPrefix(uc.now())
			last, err := repo.MaxNumberForPrefix(ctx, prefix)
			if err != nil {
				return err
			}
			number, err := identifier.NextCustomerNumber(last, uc.now())
			if err != nil {
				return err
			}
			customer.CustomerNumber = number
			return repo.Create(ctx, customer)
		})
		if err == nil {
			return toCustomerResponse(customer), nil
		}
		lastErr = err
		if !errors.Is(err, domain.ErrNumberConflict) {
			return nil, err
		}
	}
	return nil, lastErr
}

// GetByID returns the customer or ErrNotFound when missing or deactivated.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil || !customer.IsActive {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// List returns a page of active customers plus pagination metadata.
func (uc *CustomerUseCase) List(ctx context.Context, in dto.CustomerListRequest) ([]dto.CustomerResponse, *dto.Pagination, error) {
	in.Normalize()
	customers, total, err := uc.repo.List(ctx, repository.CustomerListFilter{
		Search:  in.Search,
		Type:    in.Type,
		Page:    in.Page,
		PerPage: in.PerPage,
	})
	if err != nil {
		return nil, nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		items = append(items, *toCustomerResponse(c))
	}
	return items, dto.NewPagination(total, in.Page, in.PerPage), nil
}

// Update mutates the writable fields. The customer number is immutable.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil || !customer.IsActive {
		return nil, domain.ErrNotFound
	}
	if in.Type != nil {
		if *in.Type != entity.CustomerIndividual && *in.Type != entity.CustomerBusiness {
			return nil, domain.ErrInvalidInput
		}
		customer.Type = *in.Type
	}
	if in.FirstName != nil {
		customer.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		customer.LastName = *in.LastName
	}
	if in.CompanyName != nil {
		customer.CompanyName = *in.CompanyName
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.Phone2 != nil {
		customer.Phone2 = *in.Phone2
	}
	if in.Address != nil {
		customer.Address = *in.Address
	}
	if in.City != nil {
		customer.City = *in.City
	}
	if in.Region != nil {
		customer.Region = *in.Region
	}
	if in.CreditLimit != nil {
		customer.CreditLimit = *in.CreditLimit
	}
	if in.Notes != nil {
		customer.Notes = *in.Notes
	}
	customer.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Deactivate soft-deletes the customer; the record and its number survive.
func (uc *CustomerUseCase) Deactivate(ctx context.Context, id string) error {
	customer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil || !customer.IsActive {
		return domain.ErrNotFound
	}
	return uc.repo.Deactivate(ctx, id)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:             c.ID,
		CustomerNumber: c.CustomerNumber,
		Type:           c.Type,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		CompanyName:    c.CompanyName,
		FullName:       c.FullName(),
		DisplayName:    c.DisplayName(),
		Email:          c.Email,
		Phone:          c.Phone,
		Phone2:         c.Phone2,
		Address:        c.Address,
		City:           c.City,
		Region:         c.Region,
		CreditLimit:    c.CreditLimit,
		LoyaltyPoints:  c.LoyaltyPoints,
		Notes:          c.Notes,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
