// Package analytics monta a visão geral consumida pela página inicial.
package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/bibliostock/bibliostock-api/internal/application/dto"
	"github.com/bibliostock/bibliostock-api/internal/domain/entity"
	"github.com/bibliostock/bibliostock-api/internal/domain/report"
	"github.com/bibliostock/bibliostock-api/internal/domain/repository"
)

const dashboardLastProducts = 5 // produtos recentes exibidos no painel

// DashboardUseCase gera o resumo geral: contadores do catálogo, valor do
// estoque, totais de movimentação, últimos cadastros e alertas de mínimo.
type DashboardUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	movementRepo repository.MovementRepository
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	movementRepo repository.MovementRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		movementRepo: movementRepo,
	}
}

// Overview constrói o DashboardOverviewDTO.
//
// Três leituras em paralelo (produtos, categorias, movimentações); a
// agregação em si é local e barata.
func (uc *DashboardUseCase) Overview(ctx context.Context) (*dto.DashboardOverviewDTO, error) {
	type productsResult struct {
		products []*entity.Product
		err      error
	}
	type categoriesResult struct {
		categories []*entity.Category
		err        error
	}
	type movementsResult struct {
		movements []*entity.Movement
		err       error
	}

	productsCh := make(chan productsResult, 1)
	categoriesCh := make(chan categoriesResult, 1)
	movementsCh := make(chan movementsResult, 1)

	go func() {
		p, err := uc.productRepo.List(ctx)
		productsCh <- productsResult{p, err}
	}()
	go func() {
		c, err := uc.categoryRepo.List(ctx)
		categoriesCh <- categoriesResult{c, err}
	}()
	go func() {
		m, err := uc.movementRepo.List(ctx, "")
		movementsCh <- movementsResult{m, err}
	}()

	products := <-productsCh
	categories := <-categoriesCh
	movements := <-movementsCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: produtos: %w", products.err)
	}
	if categories.err != nil {
		return nil, fmt.Errorf("dashboard: categorias: %w", categories.err)
	}
	if movements.err != nil {
		return nil, fmt.Errorf("dashboard: movimentações: %w", movements.err)
	}

	stockValue := decimal.Zero
	for _, p := range products.products {
		stockValue = stockValue.Add(p.Price.Mul(decimal.NewFromInt(p.StockQty)))
	}

	var totalEntradas, totalSaidas int64
	for _, m := range movements.movements {
		switch m.Type {
		case entity.MovementTypeEntrada:
			totalEntradas += m.Quantity
		case entity.MovementTypeSaida:
			totalSaidas += m.Quantity
		}
	}

	categoryIdx := report.CategoryIndex(categories.categories)
	belowMinimum := make([]dto.ProductBelowMinimumDTO, 0)
	for _, r := range report.BelowMinimum(products.products, categoryIdx) {
		belowMinimum = append(belowMinimum, dto.ProductBelowMinimumDTO{
			ProductID:    r.ProductID,
			ProductName:  r.ProductName,
			CategoryName: r.CategoryName,
			MinQty:       r.MinQty,
			StockQty:     r.StockQty,
			Deficit:      r.Deficit,
		})
	}

	return &dto.DashboardOverviewDTO{
		ProductCount: dto.DashboardProductCountDTO{
			TotalProducts:   len(products.products),
			TotalCategories: len(categories.categories),
		},
		StockValue: dto.DashboardStockValueDTO{TotalStockValue: stockValue},
		MovementSummary: dto.DashboardMovementSummaryDTO{
			TotalMovements: int64(len(movements.movements)),
			TotalEntradas:  totalEntradas,
			TotalSaidas:    totalSaidas,
		},
		LastProducts: lastProducts(products.products),
		BelowMinimum: belowMinimum,
	}, nil
}

func lastProducts(products []*entity.Product) []dto.DashboardLastProductDTO {
	sorted := make([]*entity.Product, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > dashboardLastProducts {
		sorted = sorted[:dashboardLastProducts]
	}
	out := make([]dto.DashboardLastProductDTO, 0, len(sorted))
	for _, p := range sorted {
		out = append(out, dto.DashboardLastProductDTO{
			ID:        p.ID,
			Name:      p.Name,
			SKU:       p.SKU,
			Price:     p.Price,
			StockQty:  p.StockQty,
			CreatedAt: p.CreatedAt,
		})
	}
	return out
}
