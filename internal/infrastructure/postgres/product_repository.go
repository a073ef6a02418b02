package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/faithbit/ssms-api/internal/domain"
	"github.com/faithbit/ssms-api/internal/domain/entity"
	"github.com/faithbit/ssms-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, sku, barcode, name, name_sw, description, brand, model,
		COALESCE(category_id, ''), type,
		selling_price, wholesale_price, cost_price, tax_rate,
		reorder_level, has_serial, has_imei, is_active, created_at, updated_at`

// ProductRepo implements the ProductRepository port over PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository builds the adapter. Accepts a pool or a tx.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persists a new product. A duplicate barcode maps to
// ErrBarcodeCollision, any other unique clash to ErrDuplicate.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, sku, barcode, name, name_sw, description, brand, model,
			category_id, type, selling_price, wholesale_price, cost_price, tax_rate,
			reorder_level, has_serial, has_imei, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.SKU, product.Barcode, product.Name, product.NameSw,
		product.Description, product.Brand, product.Model, product.CategoryID, product.Type,
		product.SellingPrice, product.WholesalePrice, product.CostPrice, product.TaxRate,
		product.ReorderLevel, product.HasSerial, product.HasIMEI, product.IsActive,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return uniqueViolationError(err)
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID fetches a product by ID. Returns nil, nil when missing.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

// GetByBarcode is the scan lookup. Returns nil, nil when missing.
func (r *ProductRepo) GetByBarcode(ctx context.Context, code string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE barcode = $1`
	return r.scanOne(ctx, query, code)
}

// NextProductNumber reserves the next value of the numbering sequence. The
// sequence never yields the same value twice, so generated barcodes cannot
// collide with each other.
func (r *ProductRepo) NextProductNumber(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT nextval('product_number_seq')::int`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("next product number: %w", err)
	}
	return n, nil
}

// List returns a filtered page of active products plus the unpaged total.
func (r *ProductRepo) List(ctx context.Context, filter repository.ProductListFilter) ([]*entity.Product, int, error) {
	var b filterBuilder
	b.literal("is_active = TRUE")
	if filter.CategoryID != "" {
		b.equals("category_id", filter.CategoryID)
	}
	if filter.Type != "" {
		b.equals("type", filter.Type)
	}
	if filter.Brand != "" {
		b.equals("brand", filter.Brand)
	}
	b.search(filter.Search, "name", "name_sw", "sku", "barcode", "brand")

	var total int
	countQuery := `SELECT COUNT(*) FROM products` + b.whereClause()
	if err := r.q.QueryRow(ctx, countQuery, b.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	query := `SELECT ` + productColumns + ` FROM products` + b.whereClause() +
		` ORDER BY name` + b.pageClause(filter.Page, filter.PerPage)
	rows, err := r.q.Query(ctx, query, b.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	list, err := collectProducts(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// SearchPOS is the point-of-sale quick search: active products whose name,
// sku, barcode or brand contain the term, prefix matches first.
func (r *ProductRepo) SearchPOS(ctx context.Context, query string, limit int) ([]*entity.Product, error) {
	sql := `
		SELECT ` + productColumns + `
		FROM products
		WHERE is_active = TRUE
		  AND (name ILIKE $1 OR name_sw ILIKE $1 OR sku ILIKE $1 OR barcode LIKE $1 OR brand ILIKE $1)
		ORDER BY
			CASE
				WHEN name ILIKE $2 THEN 0
				WHEN sku ILIKE $2 THEN 1
				WHEN barcode LIKE $2 THEN 2
				ELSE 3
			END,
			name
		LIMIT $3`
	prefix := strings.TrimSuffix(strings.TrimPrefix(likePattern(query), "%"), "%")
	rows, err := r.q.Query(ctx, sql, likePattern(query), prefix+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()
	return collectProducts(rows)
}

// Update rewrites the mutable columns. SKU and barcode never change.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products SET
			name = $2, name_sw = $3, description = $4, brand = $5, model = $6,
			category_id = NULLIF($7, ''), type = $8,
			selling_price = $9, wholesale_price = $10, cost_price = $11, tax_rate = $12,
			reorder_level = $13, has_serial = $14, has_imei = $15, updated_at = $16
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.NameSw, product.Description, product.Brand, product.Model,
		product.CategoryID, product.Type,
		product.SellingPrice, product.WholesalePrice, product.CostPrice, product.TaxRate,
		product.ReorderLevel, product.HasSerial, product.HasIMEI, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Deactivate soft-deletes a product.
func (r *ProductRepo) Deactivate(ctx context.Context, id string) error {
	query := `UPDATE products SET is_active = FALSE, updated_at = NOW() WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deactivate product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(ctx, query, args...).Scan(scanProduct(&p)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

func collectProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(scanProduct(&p)...); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func scanProduct(p *entity.Product) []any {
	return []any{
		&p.ID, &p.SKU, &p.Barcode, &p.Name, &p.NameSw, &p.Description, &p.Brand, &p.Model,
		&p.CategoryID, &p.Type,
		&p.SellingPrice, &p.WholesalePrice, &p.CostPrice, &p.TaxRate,
		&p.ReorderLevel, &p.HasSerial, &p.HasIMEI, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	}
}
