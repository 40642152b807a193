package pricing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibliostock/bibliostock-api/internal/application/dto"
	"github.com/bibliostock/bibliostock-api/internal/application/pricing"
	"github.com/bibliostock/bibliostock-api/internal/domain"
	"github.com/bibliostock/bibliostock-api/internal/domain/entity"
	"github.com/bibliostock/bibliostock-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

// adjustCall registro de uma chamada de reajuste em lote.
type adjustCall struct {
	scope      string
	categoryID string
	percent    decimal.Decimal
}

type fakeAdjustRepo struct {
	calls    []adjustCall
	affected int64
	err      error
}

func (f *fakeAdjustRepo) AdjustPricesGlobal(_ context.Context, percent decimal.Decimal) (int64, error) {
	f.calls = append(f.calls, adjustCall{scope: entity.AdjustmentScopeGlobal, percent: percent})
	return f.affected, f.err
}

func (f *fakeAdjustRepo) AdjustPricesByCategory(_ context.Context, categoryID string, percent decimal.Decimal) (int64, error) {
	f.calls = append(f.calls, adjustCall{scope: entity.AdjustmentScopeCategoria, categoryID: categoryID, percent: percent})
	return f.affected, f.err
}

func (f *fakeAdjustRepo) AdjustPricesByCategoryDefaults(_ context.Context) (int64, error) {
	f.calls = append(f.calls, adjustCall{scope: entity.AdjustmentScopePadrao})
	return f.affected, f.err
}

// Métodos não exercidos por este caso de uso.
func (f *fakeAdjustRepo) Create(context.Context, *entity.Product) error { return nil }
func (f *fakeAdjustRepo) GetByID(context.Context, string) (*entity.Product, error) {
	return nil, nil
}
func (f *fakeAdjustRepo) GetBySKU(context.Context, string) (*entity.Product, error) {
	return nil, nil
}
func (f *fakeAdjustRepo) GetForUpdate(context.Context, string) (*entity.Product, error) {
	return nil, nil
}
func (f *fakeAdjustRepo) Update(context.Context, *entity.Product) error          { return nil }
func (f *fakeAdjustRepo) UpdateStock(context.Context, string, int64) error       { return nil }
func (f *fakeAdjustRepo) List(context.Context) ([]*entity.Product, error)        { return nil, nil }
func (f *fakeAdjustRepo) Delete(context.Context, string) error                   { return nil }
func (f *fakeAdjustRepo) CountByCategory(context.Context, string) (int64, error) { return 0, nil }
func (f *fakeAdjustRepo) CountByAuthor(context.Context, string) (int64, error)   { return 0, nil }

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
}

func (f *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	f.categories[c.ID] = c
	return nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	return f.categories[id], nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	f.categories[c.ID] = c
	return nil
}

func (f *fakeCategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	list := make([]*entity.Category, 0, len(f.categories))
	for _, c := range f.categories {
		list = append(list, c)
	}
	return list, nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	delete(f.categories, id)
	return nil
}

type fakeHistoryRepo struct {
	entries []*entity.PriceAdjustment
}

func (f *fakeHistoryRepo) Create(_ context.Context, e *entity.PriceAdjustment) error {
	f.entries = append(f.entries, e)
	return nil
}

func (f *fakeHistoryRepo) List(_ context.Context) ([]*entity.PriceAdjustment, error) {
	// Mais recentes primeiro
	out := make([]*entity.PriceAdjustment, 0, len(f.entries))
	for i := len(f.entries) - 1; i >= 0; i-- {
		out = append(out, f.entries[i])
	}
	return out, nil
}

// fakeTxRunner delega direto aos fakes e descarta a entrada de histórico
// quando o lote de preços falhou (fronteira transacional dos testes).
type fakeTxRunner struct {
	productRepo *fakeAdjustRepo
	historyRepo *fakeHistoryRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	historyRepo repository.AdjustmentHistoryRepository,
) error) error {
	staged := &fakeHistoryRepo{}
	if err := fn(f.productRepo, staged); err != nil {
		return err
	}
	f.historyRepo.entries = append(f.historyRepo.entries, staged.entries...)
	return nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func newFixture() (*pricing.ApplyAdjustmentUseCase, *fakeAdjustRepo, *fakeCategoryRepo, *fakeHistoryRepo) {
	productRepo := &fakeAdjustRepo{affected: 3}
	categoryRepo := &fakeCategoryRepo{categories: map[string]*entity.Category{
		"c1": {ID: "c1", Name: "Romance", DefaultAdjustmentPercent: dec("5")},
	}}
	historyRepo := &fakeHistoryRepo{}
	runner := &fakeTxRunner{productRepo: productRepo, historyRepo: historyRepo}
	return pricing.NewApplyAdjustmentUseCase(runner, categoryRepo, historyRepo), productRepo, categoryRepo, historyRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Apply
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_GlobalRegistraHistorico(t *testing.T) {
	uc, productRepo, _, historyRepo := newFixture()

	out, err := uc.Apply(context.Background(), "user-1", dto.ApplyAdjustmentRequest{
		ScopeType: entity.AdjustmentScopeGlobal,
		Percent:   decPtr("10"),
		Note:      "reajuste anual",
	})
	require.NoError(t, err)

	require.Len(t, productRepo.calls, 1)
	assert.Equal(t, entity.AdjustmentScopeGlobal, productRepo.calls[0].scope)
	assert.True(t, productRepo.calls[0].percent.Equal(dec("10")))

	require.Len(t, historyRepo.entries, 1)
	entry := historyRepo.entries[0]
	assert.Equal(t, entity.AdjustmentScopeGlobal, entry.ScopeType)
	assert.Equal(t, "user-1", entry.AppliedBy)
	assert.Equal(t, "reajuste anual", entry.Note)

	assert.Equal(t, int64(3), out.ProductsAffected)
}

func TestApply_CategoriaGravaSnapshotDoNome(t *testing.T) {
	uc, productRepo, _, historyRepo := newFixture()

	_, err := uc.Apply(context.Background(), "user-1", dto.ApplyAdjustmentRequest{
		ScopeType:  entity.AdjustmentScopeCategoria,
		Percent:    decPtr("-5"),
		CategoryID: "c1",
	})
	require.NoError(t, err)

	require.Len(t, productRepo.calls, 1)
	assert.Equal(t, "c1", productRepo.calls[0].categoryID)

	require.Len(t, historyRepo.entries, 1)
	assert.Equal(t, "c1", historyRepo.entries[0].CategoryID)
	assert.Equal(t, "Romance", historyRepo.entries[0].CategoryName, "nome gravado como snapshot")
}

func TestApply_PadraoIgnoraPercent(t *testing.T) {
	uc, productRepo, _, historyRepo := newFixture()

	// PADRAO dispensa percent: cada categoria usa o seu
	_, err := uc.Apply(context.Background(), "user-1", dto.ApplyAdjustmentRequest{
		ScopeType: entity.AdjustmentScopePadrao,
	})
	require.NoError(t, err)

	require.Len(t, productRepo.calls, 1)
	assert.Equal(t, entity.AdjustmentScopePadrao, productRepo.calls[0].scope)

	require.Len(t, historyRepo.entries, 1)
	assert.True(t, historyRepo.entries[0].Percent.IsZero(), "PADRAO registra percent 0; o escopo é a informação")
}

func TestApply_ZeroPorCentoEhLegal(t *testing.T) {
	uc, _, _, historyRepo := newFixture()

	_, err := uc.Apply(context.Background(), "user-1", dto.ApplyAdjustmentRequest{
		ScopeType: entity.AdjustmentScopeGlobal,
		Percent:   decPtr("0"),
	})
	require.NoError(t, err)
	require.Len(t, historyRepo.entries, 1, "0%% não altera preços mas entra no histórico")
}

func TestApply_ValidacoesAntesDeMutar(t *testing.T) {
	uc, productRepo, _, historyRepo := newFixture()

	casos := []struct {
		name    string
		in      dto.ApplyAdjustmentRequest
		wantErr error
	}{
		{"escopo desconhecido", dto.ApplyAdjustmentRequest{ScopeType: "TUDO", Percent: decPtr("5")}, domain.ErrInvalidInput},
		{"global sem percent", dto.ApplyAdjustmentRequest{ScopeType: entity.AdjustmentScopeGlobal}, domain.ErrInvalidInput},
		{"categoria sem id", dto.ApplyAdjustmentRequest{ScopeType: entity.AdjustmentScopeCategoria, Percent: decPtr("5")}, domain.ErrInvalidInput},
		{"categoria inexistente", dto.ApplyAdjustmentRequest{ScopeType: entity.AdjustmentScopeCategoria, Percent: decPtr("5"), CategoryID: "nope"}, domain.ErrNotFound},
	}
	for _, tc := range casos {
		_, err := uc.Apply(context.Background(), "user-1", tc.in)
		assert.ErrorIs(t, err, tc.wantErr, tc.name)
	}

	// Nenhuma validação que falhou chegou a tocar preços ou histórico
	assert.Empty(t, productRepo.calls)
	assert.Empty(t, historyRepo.entries)
}

// Se o lote de preços falha, o histórico não ganha entrada (atomicidade).
func TestApply_LoteFalhouHistoricoIntacto(t *testing.T) {
	uc, productRepo, _, historyRepo := newFixture()
	productRepo.err = errors.New("deadlock detectado")

	_, err := uc.Apply(context.Background(), "user-1", dto.ApplyAdjustmentRequest{
		ScopeType: entity.AdjustmentScopeGlobal,
		Percent:   decPtr("10"),
	})
	require.Error(t, err)
	assert.Empty(t, historyRepo.entries)
}

// ──────────────────────────────────────────────────────────────────────────────
// History
// ──────────────────────────────────────────────────────────────────────────────

func TestHistory_MaisRecentesPrimeiro(t *testing.T) {
	uc, _, _, _ := newFixture()

	for _, percent := range []string{"5", "10"} {
		_, err := uc.Apply(context.Background(), "user-1", dto.ApplyAdjustmentRequest{
			ScopeType: entity.AdjustmentScopeGlobal,
			Percent:   decPtr(percent),
		})
		require.NoError(t, err)
	}

	items, err := uc.History(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.True(t, items[0].Percent.Equal(dec("10")), "o reajuste mais recente vem primeiro")
	assert.Nil(t, items[0].Category, "GLOBAL não referencia categoria")
}
