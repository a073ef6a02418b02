package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/faithbit/ssms-api/internal/domain"
	"github.com/faithbit/ssms-api/internal/domain/entity"
	"github.com/faithbit/ssms-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, customer_number, type, first_name, last_name, company_name,
		email, phone, phone2, address, city, region,
		credit_limit, loyalty_points, is_active, notes, created_at, updated_at`

// CustomerRepo implements the CustomerRepository port over PostgreSQL.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository builds the adapter. Accepts a pool or a tx.
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persists a new customer. A duplicate customer number maps to
// ErrNumberConflict so the usecase can regenerate and retry.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(ctx, query,
		customer.ID, customer.CustomerNumber, customer.Type,
		customer.FirstName, customer.LastName, customer.CompanyName,
		customer.Email, customer.Phone, customer.Phone2,
		customer.Address, customer.City, customer.Region,
		customer.CreditLimit, customer.LoyaltyPoints, customer.IsActive, customer.Notes,
		customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return uniqueViolationError(err)
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID fetches a customer by ID. Returns nil, nil when missing.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	var c entity.Customer
	err := r.q.QueryRow(ctx, query, id).Scan(scanCustomer(&c)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// MaxNumberForPrefix returns the highest customer number with the given
// prefix, or empty when the month has no customers yet. Run inside the
// numbering transaction together with the insert.
func (r *CustomerRepo) MaxNumberForPrefix(ctx context.Context, prefix string) (string, error) {
	query := `
		SELECT customer_number FROM customers
		WHERE customer_number LIKE $1 || '%'
		ORDER BY customer_number DESC
		LIMIT 1`
	var number string
	err := r.q.QueryRow(ctx, query, prefix).Scan(&number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("max customer number: %w", err)
	}
	return number, nil
}

// List returns a filtered page of active customers plus the unpaged total.
func (r *CustomerRepo) List(ctx context.Context, filter repository.CustomerListFilter) ([]*entity.Customer, int, error) {
	var b filterBuilder
	b.literal("is_active = TRUE")
	if filter.Type != "" {
		b.equals("type", filter.Type)
	}
	b.search(filter.Search,
		"first_name", "last_name", "company_name", "customer_number", "email", "phone")

	var total int
	countQuery := `SELECT COUNT(*) FROM customers` + b.whereClause()
	if err := r.q.QueryRow(ctx, countQuery, b.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count customers: %w", err)
	}

	query := `SELECT ` + customerColumns + ` FROM customers` + b.whereClause() +
		` ORDER BY customer_number DESC` + b.pageClause(filter.Page, filter.PerPage)
	rows, err := r.q.Query(ctx, query, b.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(scanCustomer(&c)...); err != nil {
			return nil, 0, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, total, rows.Err()
}

// Update rewrites the mutable columns. The customer number never changes.
func (r *CustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	query := `
		UPDATE customers SET
			type = $2, first_name = $3, last_name = $4, company_name = $5,
			email = $6, phone = $7, phone2 = $8, address = $9, city = $10, region = $11,
			credit_limit = $12, loyalty_points = $13, notes = $14, updated_at = $15
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		customer.ID, customer.Type, customer.FirstName, customer.LastName, customer.CompanyName,
		customer.Email, customer.Phone, customer.Phone2,
		customer.Address, customer.City, customer.Region,
		customer.CreditLimit, customer.LoyaltyPoints, customer.Notes, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Deactivate soft-deletes a customer.
func (r *CustomerRepo) Deactivate(ctx context.Context, id string) error {
	query := `UPDATE customers SET is_active = FALSE, updated_at = NOW() WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deactivate customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanCustomer(c *entity.Customer) []any {
	return []any{
		&c.ID, &c.CustomerNumber, &c.Type, &c.FirstName, &c.LastName, &c.CompanyName,
		&c.Email, &c.Phone, &c.Phone2, &c.Address, &c.City, &c.Region,
		&c.CreditLimit, &c.LoyaltyPoints, &c.IsActive, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	}
}
