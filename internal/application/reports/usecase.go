// Package reports deriva os relatórios gerenciais e sua exportação em PDF.
// Nenhum relatório é cacheado: cada chamada relê as coleções e recomputa.
package reports

import (
	"context"

	"github.com/bibliostock/bibliostock-api/internal/application/dto"
	"github.com/bibliostock/bibliostock-api/internal/domain/entity"
	"github.com/bibliostock/bibliostock-api/internal/domain/report"
	"github.com/bibliostock/bibliostock-api/internal/domain/repository"
)

// ReportUseCase monta as visões somente-leitura dos relatórios.
type ReportUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	movementRepo repository.MovementRepository
}

// NewReportUseCase constrói o caso de uso.
func NewReportUseCase(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	movementRepo repository.MovementRepository,
) *ReportUseCase {
	return &ReportUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		movementRepo: movementRepo,
	}
}

func (uc *ReportUseCase) loadCatalog(ctx context.Context) ([]*entity.Product, map[string]*entity.Category, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	return products, report.CategoryIndex(categories), nil
}

// ProductPrices relatório de preços: preço atual e projeção com o percentual
// padrão da categoria (projeção, nada é efetivado).
func (uc *ReportUseCase) ProductPrices(ctx context.Context) ([]dto.ProductPriceDTO, error) {
	products, categories, err := uc.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	rows := report.PriceList(products, categories)
	out := make([]dto.ProductPriceDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ProductPriceDTO{
			ProductID:        r.ProductID,
			ProductName:      r.ProductName,
			ISBN:             r.ISBN,
			PriceUnit:        r.PriceUnit,
			PriceWithPercent: r.PriceWithPercent,
		})
	}
	return out, nil
}

// Balance balanço do estoque: linha = estoque × preço, com total geral.
func (uc *ReportUseCase) Balance(ctx context.Context) (*dto.BalanceResponseDTO, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	rows, total := report.Balance(products)
	items := make([]dto.BalanceItemDTO, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.BalanceItemDTO{
			ID:         r.ProductID,
			Name:       r.ProductName,
			StockQty:   r.StockQty,
			Price:      r.Price,
			TotalValue: r.TotalValue,
		})
	}
	return &dto.BalanceResponseDTO{Items: items, TotalValue: total}, nil
}

// BelowMinimum produtos com estoque abaixo do limite mínimo.
func (uc *ReportUseCase) BelowMinimum(ctx context.Context) ([]dto.ProductBelowMinimumDTO, error) {
	products, categories, err := uc.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	rows := report.BelowMinimum(products, categories)
	out := make([]dto.ProductBelowMinimumDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ProductBelowMinimumDTO{
			ProductID:    r.ProductID,
			ProductName:  r.ProductName,
			CategoryName: r.CategoryName,
			MinQty:       r.MinQty,
			StockQty:     r.StockQty,
			Deficit:      r.Deficit,
		})
	}
	return out, nil
}

// PerCategory contagem de produtos por categoria.
func (uc *ReportUseCase) PerCategory(ctx context.Context) ([]dto.ProductsPerCategoryDTO, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	rows := report.PerCategoryCounts(categories, products)
	out := make([]dto.ProductsPerCategoryDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ProductsPerCategoryDTO{
			ID:           r.CategoryID,
			Name:         r.CategoryName,
			ProductCount: r.ProductCount,
		})
	}
	return out, nil
}

// MovementsHistory resumo de movimentações por produto com os extremos.
func (uc *ReportUseCase) MovementsHistory(ctx context.Context) (*dto.MovementsHistoryReportDTO, error) {
	movements, err := uc.movementRepo.List(ctx, "")
	if err != nil {
		return nil, err
	}
	summary := report.SummarizeMovements(movements)
	out := &dto.MovementsHistoryReportDTO{
		Movements: make([]dto.MovementHistoryItemDTO, 0, len(summary.Rows)),
	}
	for _, r := range summary.Rows {
		out.Movements = append(out.Movements, dto.MovementHistoryItemDTO{
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			Entries:     r.Entries,
			Exits:       r.Exits,
			Saldo:       r.Net,
		})
	}
	if summary.MostEntries != nil {
		out.MostEntries = &dto.MovementExtremeDTO{
			ProductID:   summary.MostEntries.ProductID,
			ProductName: summary.MostEntries.ProductName,
			Total:       summary.MostEntries.Entries,
		}
	}
	if summary.MostExits != nil {
		out.MostExits = &dto.MovementExtremeDTO{
			ProductID:   summary.MostExits.ProductID,
			ProductName: summary.MostExits.ProductName,
			Total:       summary.MostExits.Exits,
		}
	}
	return out, nil
}
