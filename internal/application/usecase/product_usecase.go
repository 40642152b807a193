package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bibliostock/bibliostock-api/internal/application/dto"
	"github.com/bibliostock/bibliostock-api/internal/domain"
	"github.com/bibliostock/bibliostock-api/internal/domain/entity"
	"github.com/bibliostock/bibliostock-api/internal/domain/repository"
	"github.com/bibliostock/bibliostock-api/internal/domain/stock"
)

// ProductUseCase casos de uso CRUD do catálogo. Estoque e preço não passam
// por aqui: estoque muda via movimentações, preço via reajustes.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	authorRepo   repository.AuthorRepository
	movementRepo repository.MovementRepository
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	authorRepo repository.AuthorRepository,
	movementRepo repository.MovementRepository,
) *ProductUseCase {
	return &ProductUseCase{
		repo:         repo,
		categoryRepo: categoryRepo,
		authorRepo:   authorRepo,
		movementRepo: movementRepo,
	}
}

// validateThresholds aplica as regras de limites: mínimo sempre positivo,
// máximo (quando configurado) maior que o mínimo, estoque dentro de [0, 99999].
func validateThresholds(stockQty, minQty, maxQty int64) error {
	if err := stock.ValidateQuantity(stockQty, false); err != nil {
		return err
	}
	if err := stock.ValidateQuantity(minQty, true); err != nil {
		return err
	}
	if maxQty < 0 || maxQty > stock.MaxQuantity {
		return domain.ErrInvalidInput
	}
	if maxQty > 0 && maxQty <= minQty {
		return domain.ErrInvalidInput
	}
	return nil
}

// checkReferences garante que categoria e autores informados existem.
func (uc *ProductUseCase) checkReferences(ctx context.Context, categoryID string, authorIDs []string) error {
	category, err := uc.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	for _, authorID := range authorIDs {
		author, err := uc.authorRepo.GetByID(ctx, authorID)
		if err != nil {
			return err
		}
		if author == nil {
			return domain.ErrNotFound
		}
	}
	return nil
}

// Create cadastra um produto. SKU deve ser único; devolve ErrDuplicate caso contrário.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, err := uc.repo.GetBySKU(ctx, in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if err := validateThresholds(in.StockQty, in.MinQty, in.MaxQty); err != nil {
		return nil, err
	}
	if err := uc.checkReferences(ctx, in.CategoryID, in.AuthorIDs); err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		SKU:         in.SKU,
		Name:        in.Name,
		ProductType: in.ProductType,
		Price:       in.Price,
		Unit:        in.Unit,
		StockQty:    in.StockQty,
		MinQty:      in.MinQty,
		MaxQty:      in.MaxQty,
		CategoryID:  in.CategoryID,
		AuthorIDs:   in.AuthorIDs,
		Publisher:   in.Publisher,
		ISBN:        in.ISBN,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// GetByID devolve um produto por ID; nil quando não existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return ToProductResponse(product), nil
}

// List devolve todos os produtos.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *ToProductResponse(p))
	}
	return items, nil
}

// Update atualiza os campos de catálogo de um produto. Preço e estoque são
// ignorados de propósito: têm fluxos próprios com histórico.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.ProductType != nil {
		product.ProductType = *in.ProductType
	}
	if in.Unit != nil {
		product.Unit = *in.Unit
	}
	if in.MinQty != nil {
		product.MinQty = *in.MinQty
	}
	if in.MaxQty != nil {
		product.MaxQty = *in.MaxQty
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.AuthorIDs != nil {
		product.AuthorIDs = in.AuthorIDs
	}
	if in.Publisher != nil {
		product.Publisher = *in.Publisher
	}
	if in.ISBN != nil {
		product.ISBN = *in.ISBN
	}
	if err := validateThresholds(product.StockQty, product.MinQty, product.MaxQty); err != nil {
		return nil, err
	}
	if err := uc.checkReferences(ctx, product.CategoryID, product.AuthorIDs); err != nil {
		return nil, err
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// Delete exclui um produto. Bloqueado enquanto movimentações o referenciarem
// (o histórico é registro permanente).
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	count, err := uc.movementRepo.CountByProduct(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrReferenced
	}
	return uc.repo.Delete(ctx, id)
}

// ToProductResponse converte a entidade para o DTO de resposta.
func ToProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	authorIDs := p.AuthorIDs
	if authorIDs == nil {
		authorIDs = []string{}
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		SKU:         p.SKU,
		ProductType: p.ProductType,
		Price:       p.Price,
		Unit:        p.Unit,
		StockQty:    p.StockQty,
		MinQty:      p.MinQty,
		MaxQty:      p.MaxQty,
		CategoryID:  p.CategoryID,
		AuthorIDs:   authorIDs,
		Publisher:   p.Publisher,
		ISBN:        p.ISBN,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
