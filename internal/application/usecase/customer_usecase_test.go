package usecase_test

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faithbit/ssms-api/internal/application/dto"
	"github.com/faithbit/ssms-api/internal/application/usecase"
	"github.com/faithbit/ssms-api/internal/domain"
	"github.com/faithbit/ssms-api/internal/domain/entity"
	"github.com/faithbit/ssms-api/internal/domain/repository"
)

// fakeCustomerRepo is an in-memory CustomerRepository. It enforces the
// customer_number unique index the way PostgreSQL would.
type fakeCustomerRepo struct {
	customers []*entity.Customer
	// numberConflictsToInject makes Create fail with ErrNumberConflict the
	// first N times, simulating a concurrent creation winning the race.
	numberConflictsToInject int
}

func (r *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	if r.numberConflictsToInject > 0 {
		r.numberConflictsToInject--
		// the racer's row is now in the table
		r.customers = append(r.customers, &entity.Customer{
			CustomerNumber: c.CustomerNumber,
			IsActive:       true,
		})
		return domain.ErrNumberConflict
	}
	for _, existing := range r.customers {
		if existing.CustomerNumber == c.CustomerNumber {
			return domain.ErrNumberConflict
		}
	}
	cp := *c
	r.customers = append(r.customers, &cp)
	return nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) MaxNumberForPrefix(_ context.Context, prefix string) (string, error) {
	var max string
	for _, c := range r.customers {
		if strings.HasPrefix(c.CustomerNumber, prefix) && c.CustomerNumber > max {
			max = c.CustomerNumber
		}
	}
	return max, nil
}

func (r *fakeCustomerRepo) List(_ context.Context, f repository.CustomerListFilter) ([]*entity.Customer, int, error) {
	var matched []*entity.Customer
	needle := strings.ToLower(f.Search)
	for _, c := range r.customers {
		if !c.IsActive {
			continue
		}
		if f.Type != "" && c.Type != f.Type {
			continue
		}
		if needle != "" {
			haystack := strings.ToLower(strings.Join([]string{
				c.FirstName, c.LastName, c.CompanyName, c.CustomerNumber, c.Email, c.Phone,
			}, " "))
			if !strings.Contains(haystack, needle) {
				continue
			}
		}
		matched = append(matched, c)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].FullName() < matched[j].FullName() })
	total := len(matched)
	start := (f.Page - 1) * f.PerPage
	if start > total {
		start = total
	}
	end := start + f.PerPage
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	for i, existing := range r.customers {
		if existing.ID == c.ID {
			cp := *c
			r.customers[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeCustomerRepo) Deactivate(_ context.Context, id string) error {
	for _, c := range r.customers {
		if c.ID == id {
			c.IsActive = false
			return nil
		}
	}
	return domain.ErrNotFound
}

// fakeTx satisfies CustomerTxRunner without a real transaction; the fake
// repo is already atomic.
type fakeTx struct{ repo *fakeCustomerRepo }

func (t *fakeTx) RunCustomer(ctx context.Context, fn func(repo repository.CustomerRepository) error) error {
	return fn(t.repo)
}

var fixedNow = time.Date(2025, time.August, 20, 12, 0, 0, 0, time.UTC)

func newCustomerUC(repo *fakeCustomerRepo) *usecase.CustomerUseCase {
	return usecase.NewCustomerUseCase(repo, &fakeTx{repo: repo}).
		WithClock(func() time.Time { return fixedNow })
}

func TestCustomerCreate_FirstNumberOfMonth(t *testing.T) {
	uc := newCustomerUC(&fakeCustomerRepo{})

	out, err := uc.Create(context.Background(), dto.CreateCustomerRequest{
		FirstName: "James", LastName: "Mwalimu",
	})
	require.NoError(t, err)
	assert.Equal(t, "C25080001", out.CustomerNumber)
	assert.Equal(t, "individual", out.Type)
	assert.Equal(t, "James Mwalimu", out.FullName)
}

func TestCustomerCreate_SequentialNumbers(t *testing.T) {
	repo := &fakeCustomerRepo{}
	uc := newCustomerUC(repo)

	var numbers []string
	for i := 0; i < 3; i++ {
		out, err := uc.Create(context.Background(), dto.CreateCustomerRequest{FirstName: "N", LastName: "N"})
		require.NoError(t, err)
		numbers = append(numbers, out.CustomerNumber)
	}
	assert.Equal(t, []string{"C25080001", "C25080002", "C25080003"}, numbers)
}

// When a concurrent creation steals the computed number, Create must re-read
// and take the next one rather than failing or duplicating.
func TestCustomerCreate_RetriesOnNumberConflict(t *testing.T) {
	repo := &fakeCustomerRepo{numberConflictsToInject: 1}
	uc := newCustomerUC(repo)

	out, err := uc.Create(context.Background(), dto.CreateCustomerRequest{FirstName: "Fatuma", LastName: "Hassan"})
	require.NoError(t, err)
	assert.Equal(t, "C25080002", out.CustomerNumber, "racer took 0001, we take 0002")
}

func TestCustomerCreate_GivesUpAfterBoundedRetries(t *testing.T) {
	repo := &fakeCustomerRepo{numberConflictsToInject: 10}
	uc := newCustomerUC(repo)

	_, err := uc.Create(context.Background(), dto.CreateCustomerRequest{FirstName: "X"})
	assert.ErrorIs(t, err, domain.ErrNumberConflict)
}

func TestCustomerCreate_InvalidType(t *testing.T) {
	uc := newCustomerUC(&fakeCustomerRepo{})
	_, err := uc.Create(context.Background(), dto.CreateCustomerRequest{Type: "alien"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCustomerCreate_BusinessDisplayName(t *testing.T) {
	uc := newCustomerUC(&fakeCustomerRepo{})
	out, err := uc.Create(context.Background(), dto.CreateCustomerRequest{
		Type: "business", CompanyName: "Kilimanjaro Traders Ltd",
	})
	require.NoError(t, err)
	assert.Equal(t, "Kilimanjaro Traders Ltd", out.DisplayName)
}

func TestCustomerList_SearchEnvelope(t *testing.T) {
	repo := &fakeCustomerRepo{}
	uc := newCustomerUC(repo)
	for _, name := range [][2]string{{"James", "Mwalimu"}, {"Fatuma", "Hassan"}, {"Grace", "Mwakasege"}} {
		_, err := uc.Create(context.Background(), dto.CreateCustomerRequest{FirstName: name[0], LastName: name[1]})
		require.NoError(t, err)
	}

	items, page, err := uc.List(context.Background(), dto.CustomerListRequest{Search: "mwa"})
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, 2, page.TotalCount)
	assert.Equal(t, 1, page.PageCount)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 20, page.PerPage)
}

func TestCustomerList_Pagination(t *testing.T) {
	repo := &fakeCustomerRepo{}
	uc := newCustomerUC(repo)
	for i := 0; i < 5; i++ {
		_, err := uc.Create(context.Background(), dto.CreateCustomerRequest{FirstName: "Cust", LastName: string(rune('A' + i))})
		require.NoError(t, err)
	}

	items, page, err := uc.List(context.Background(), dto.CustomerListRequest{
		PageRequest: dto.PageRequest{Page: 2, PerPage: 2},
	})
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, 5, page.TotalCount)
	assert.Equal(t, 3, page.PageCount)
	assert.Equal(t, 2, page.CurrentPage)
}

func TestCustomerUpdate_NumberImmutable(t *testing.T) {
	repo := &fakeCustomerRepo{}
	uc := newCustomerUC(repo)
	created, err := uc.Create(context.Background(), dto.CreateCustomerRequest{FirstName: "Neema"})
	require.NoError(t, err)

	email := "neema@faithbit.example"
	updated, err := uc.Update(context.Background(), created.ID, dto.UpdateCustomerRequest{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, created.CustomerNumber, updated.CustomerNumber)
	assert.Equal(t, email, updated.Email)
}

func TestCustomerGet_DeactivatedIsNotFound(t *testing.T) {
	repo := &fakeCustomerRepo{}
	uc := newCustomerUC(repo)
	created, err := uc.Create(context.Background(), dto.CreateCustomerRequest{FirstName: "Gone"})
	require.NoError(t, err)

	require.NoError(t, uc.Deactivate(context.Background(), created.ID))
	_, err = uc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Deactivate(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "double deactivate is a 404")
}
