package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/faithbit/ssms-api/internal/application/dto"
	"github.com/faithbit/ssms-api/internal/domain"
	"github.com/faithbit/ssms-api/internal/domain/barcode"
	"github.com/faithbit/ssms-api/internal/domain/entity"
	"github.com/faithbit/ssms-api/internal/domain/repository"
)

// posSearchMin is the minimum query length for the POS quick search.
const posSearchMin = 2

// ProductUseCase covers catalog CRUD, listing, POS search and barcode
// assignment.
type ProductUseCase struct {
	repo repository.ProductRepository
	now  func() time.Time
}

// NewProductUseCase builds the use case.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, now: time.Now}
}

// Create inserts a product. When no barcode is supplied an EAN-13 is derived
// from the next product sequence number — deterministic, so a unique-index
// hit on barcode is a data-integrity problem to surface, not to retry.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Type == "" {
		in.Type = entity.ProductTypeProduct
	}
	if in.Type != entity.ProductTypeProduct && in.Type != entity.ProductTypeService {
		return nil, domain.ErrInvalidInput
	}
	code := in.Barcode
	if code == "" {
		n, err := uc.repo.NextProductNumber(ctx)
		if err != nil {
			return nil, err
		}
		code, err = barcode.Generate(n)
		if err != nil {
			return nil, err
		}
	}

	now := uc.now()
	product := &entity.Product{
		ID:             uuid.New().String(),
		SKU:            in.SKU,
		Barcode:        code,
		Name:           in.Name,
		NameSw:         in.NameSw,
		Description:    in.Description,
		Brand:          in.Brand,
		Model:          in.Model,
		CategoryID:     in.CategoryID,
		Type:           in.Type,
		SellingPrice:   in.SellingPrice,
		WholesalePrice: in.WholesalePrice,
		CostPrice:      in.CostPrice,
		TaxRate:        in.TaxRate,
		ReorderLevel:   in.ReorderLevel,
		HasSerial:      in.HasSerial,
		HasIMEI:        in.HasIMEI,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		if errors.Is(err, domain.ErrBarcodeCollision) {
			return nil, domain.ErrBarcodeCollision
		}
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID returns the product or ErrNotFound when missing or deactivated.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// GetByBarcode is the POS scan lookup.
func (uc *ProductUseCase) GetByBarcode(ctx context.Context, code string) (*dto.POSProductResponse, error) {
	if code == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByBarcode(ctx, code)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, domain.ErrNotFound
	}
	return toPOSResponse(product), nil
}

// Search is the POS quick search. Queries shorter than two characters are
// rejected; results are relevance ordered by the repository.
func (uc *ProductUseCase) Search(ctx context.Context, query string, limit int) ([]dto.POSProductResponse, error) {
	if len(query) < posSearchMin {
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}
	products, err := uc.repo.SearchPOS(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.POSProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toPOSResponse(p))
	}
	return items, nil
}

// List returns a page of active products plus pagination metadata.
func (uc *ProductUseCase) List(ctx context.Context, in dto.ProductListRequest) ([]dto.ProductResponse, *dto.Pagination, error) {
	in.Normalize()
	products, total, err := uc.repo.List(ctx, repository.ProductListFilter{
		Search:     in.Search,
		CategoryID: in.CategoryID,
		Type:       in.Type,
		Brand:      in.Brand,
		Page:       in.Page,
		PerPage:    in.PerPage,
	})
	if err != nil {
		return nil, nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return items, dto.NewPagination(total, in.Page, in.PerPage), nil
}

// Update mutates the writable fields. Barcode stays as assigned.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, domain.ErrNotFound
	}
	if in.Type != nil {
		if *in.Type != entity.ProductTypeProduct && *in.Type != entity.ProductTypeService {
			return nil, domain.ErrInvalidInput
		}
		product.Type = *in.Type
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.NameSw != nil {
		product.NameSw = *in.NameSw
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Brand != nil {
		product.Brand = *in.Brand
	}
	if in.Model != nil {
		product.Model = *in.Model
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.SellingPrice != nil {
		product.SellingPrice = *in.SellingPrice
	}
	if in.WholesalePrice != nil {
		product.WholesalePrice = *in.WholesalePrice
	}
	if in.CostPrice != nil {
		product.CostPrice = *in.CostPrice
	}
	if in.TaxRate != nil {
		product.TaxRate = *in.TaxRate
	}
	if in.ReorderLevel != nil {
		product.ReorderLevel = *in.ReorderLevel
	}
	if in.HasSerial != nil {
		product.HasSerial = *in.HasSerial
	}
	if in.HasIMEI != nil {
		product.HasIMEI = *in.HasIMEI
	}
	product.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Deactivate soft-deletes the product.
func (uc *ProductUseCase) Deactivate(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil || !product.IsActive {
		return domain.ErrNotFound
	}
	return uc.repo.Deactivate(ctx, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:             p.ID,
		SKU:            p.SKU,
		Barcode:        p.Barcode,
		Name:           p.Name,
		NameSw:         p.NameSw,
		Description:    p.Description,
		Brand:          p.Brand,
		Model:          p.Model,
		CategoryID:     p.CategoryID,
		Type:           p.Type,
		SellingPrice:   p.SellingPrice,
		WholesalePrice: p.WholesalePrice,
		CostPrice:      p.CostPrice,
		TaxRate:        p.TaxRate,
		ReorderLevel:   p.ReorderLevel,
		HasSerial:      p.HasSerial,
		HasIMEI:        p.HasIMEI,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func toPOSResponse(p *entity.Product) *dto.POSProductResponse {
	return &dto.POSProductResponse{
		ID:             p.ID,
		SKU:            p.SKU,
		Name:           p.Name,
		NameSw:         p.NameSw,
		Brand:          p.Brand,
		Model:          p.Model,
		Barcode:        p.Barcode,
		SellingPrice:   p.SellingPrice,
		WholesalePrice: p.WholesalePrice,
		TaxRate:        p.TaxRate,
		HasSerial:      p.HasSerial,
		HasIMEI:        p.HasIMEI,
		Type:           p.Type,
	}
}
