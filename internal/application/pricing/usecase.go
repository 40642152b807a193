package pricing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bibliostock/bibliostock-api/internal/application/dto"
	"github.com/bibliostock/bibliostock-api/internal/domain"
	"github.com/bibliostock/bibliostock-api/internal/domain/entity"
	"github.com/bibliostock/bibliostock-api/internal/domain/pricing"
	"github.com/bibliostock/bibliostock-api/internal/domain/repository"
)

// ApplyAdjustmentUseCase aplica reajustes de preço em três escopos:
//
//	GLOBAL    — todos os produtos, percentual informado;
//	CATEGORIA — só os produtos da categoria selecionada, percentual informado
//	            (decisão de produto: o reajuste altera os preços dos produtos,
//	            não o percentual padrão da categoria — este é editado no CRUD
//	            de categorias);
//	PADRAO    — cada produto pelo percentual padrão da sua categoria.
//
// O lote de preços e a entrada de histórico são efetivados na mesma transação.
type ApplyAdjustmentUseCase struct {
	txRunner     TxRunner
	categoryRepo repository.CategoryRepository
	historyRepo  repository.AdjustmentHistoryRepository
}

// NewApplyAdjustmentUseCase constrói o caso de uso.
func NewApplyAdjustmentUseCase(
	txRunner TxRunner,
	categoryRepo repository.CategoryRepository,
	historyRepo repository.AdjustmentHistoryRepository,
) *ApplyAdjustmentUseCase {
	return &ApplyAdjustmentUseCase{
		txRunner:     txRunner,
		categoryRepo: categoryRepo,
		historyRepo:  historyRepo,
	}
}

// Apply valida o pedido e efetiva o reajuste. Toda validação acontece antes
// de qualquer mutação; 0% é legal (no-op de preço, mas entra no histórico).
func (uc *ApplyAdjustmentUseCase) Apply(ctx context.Context, userID string, in dto.ApplyAdjustmentRequest) (*dto.ApplyAdjustmentResponse, error) {
	if !pricing.ValidScope(in.ScopeType) {
		return nil, domain.ErrInvalidInput
	}

	percent := decimal.Zero
	var category *entity.Category
	switch in.ScopeType {
	case entity.AdjustmentScopeGlobal:
		if in.Percent == nil {
			return nil, domain.ErrInvalidInput
		}
		percent = *in.Percent
	case entity.AdjustmentScopeCategoria:
		if in.Percent == nil || in.CategoryID == "" {
			return nil, domain.ErrInvalidInput
		}
		percent = *in.Percent
		var err error
		category, err = uc.categoryRepo.GetByID(ctx, in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
	case entity.AdjustmentScopePadrao:
		// Percentuais variáveis por categoria; a entrada no histórico fica com
		// percent 0 e o escopo diz o que aconteceu.
	}

	entry := &entity.PriceAdjustment{
		ID:        uuid.New().String(),
		ScopeType: in.ScopeType,
		Percent:   percent,
		Note:      in.Note,
		AppliedBy: userID,
		AppliedAt: time.Now(),
	}
	if category != nil {
		entry.CategoryID = category.ID
		entry.CategoryName = category.Name // snapshot no momento do reajuste
	}

	var affected int64
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		historyRepo repository.AdjustmentHistoryRepository,
	) error {
		var err error
		switch in.ScopeType {
		case entity.AdjustmentScopeGlobal:
			affected, err = productRepo.AdjustPricesGlobal(ctx, percent)
		case entity.AdjustmentScopeCategoria:
			affected, err = productRepo.AdjustPricesByCategory(ctx, category.ID, percent)
		case entity.AdjustmentScopePadrao:
			affected, err = productRepo.AdjustPricesByCategoryDefaults(ctx)
		}
		if err != nil {
			return err
		}
		return historyRepo.Create(ctx, entry)
	})
	if err != nil {
		return nil, err
	}

	return &dto.ApplyAdjustmentResponse{
		History:          toHistoryItem(entry),
		ProductsAffected: affected,
	}, nil
}

// History devolve o histórico de reajustes do mais recente para o mais antigo.
func (uc *ApplyAdjustmentUseCase) History(ctx context.Context) ([]dto.AdjustmentHistoryItem, error) {
	list, err := uc.historyRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AdjustmentHistoryItem, 0, len(list))
	for _, e := range list {
		items = append(items, toHistoryItem(e))
	}
	return items, nil
}

func toHistoryItem(e *entity.PriceAdjustment) dto.AdjustmentHistoryItem {
	item := dto.AdjustmentHistoryItem{
		ID:        e.ID,
		ScopeType: e.ScopeType,
		Percent:   e.Percent,
		Note:      e.Note,
		AppliedBy: e.AppliedBy,
		AppliedAt: e.AppliedAt,
	}
	if e.CategoryID != "" {
		item.Category = &dto.AdjustmentCategoryRef{ID: e.CategoryID, Name: e.CategoryName}
	}
	return item
}
