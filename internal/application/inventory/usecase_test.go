package inventory_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibliostock/bibliostock-api/internal/application/dto"
	"github.com/bibliostock/bibliostock-api/internal/application/inventory"
	"github.com/bibliostock/bibliostock-api/internal/domain"
	"github.com/bibliostock/bibliostock-api/internal/domain/entity"
	"github.com/bibliostock/bibliostock-api/internal/domain/repository"
	"github.com/bibliostock/bibliostock-api/internal/domain/stock"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return f.products[id], nil
}

func (f *fakeProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) UpdateStock(_ context.Context, productID string, stockQty int64) error {
	f.products[productID].StockQty = stockQty
	return nil
}

func (f *fakeProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	list := make([]*entity.Product, 0, len(f.products))
	for _, p := range f.products {
		list = append(list, p)
	}
	return list, nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id string) error {
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) CountByCategory(context.Context, string) (int64, error) { return 0, nil }
func (f *fakeProductRepo) CountByAuthor(context.Context, string) (int64, error)  { return 0, nil }

func (f *fakeProductRepo) AdjustPricesGlobal(context.Context, decimal.Decimal) (int64, error) {
	return 0, nil
}

func (f *fakeProductRepo) AdjustPricesByCategory(context.Context, string, decimal.Decimal) (int64, error) {
	return 0, nil
}

func (f *fakeProductRepo) AdjustPricesByCategoryDefaults(context.Context) (int64, error) {
	return 0, nil
}

type fakeMovementRepo struct {
	movements []*entity.Movement
}

func (f *fakeMovementRepo) Create(_ context.Context, m *entity.Movement) error {
	f.movements = append(f.movements, m)
	return nil
}

func (f *fakeMovementRepo) List(_ context.Context, movementType string) ([]*entity.Movement, error) {
	if movementType == "" {
		return f.movements, nil
	}
	var out []*entity.Movement
	for _, m := range f.movements {
		if m.Type == movementType {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMovementRepo) CountByProduct(_ context.Context, productID string) (int64, error) {
	var n int64
	for _, m := range f.movements {
		if m.ProductID == productID {
			n++
		}
	}
	return n, nil
}

// fakeTxRunner executa o callback diretamente sobre os fakes. O fluxo de
// erro cobre a semântica de rollback suficiente para estes testes: as guardas
// de estoque falham antes de qualquer mutação.
type fakeTxRunner struct {
	productRepo  *fakeProductRepo
	movementRepo *fakeMovementRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
) error) error {
	return fn(f.productRepo, f.movementRepo)
}

func newFixture(p *entity.Product) (*inventory.RegisterMovementUseCase, *fakeProductRepo, *fakeMovementRepo) {
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{p.ID: p}}
	movementRepo := &fakeMovementRepo{}
	runner := &fakeTxRunner{productRepo: productRepo, movementRepo: movementRepo}
	return inventory.NewRegisterMovementUseCase(runner, movementRepo), productRepo, movementRepo
}

func qty(s string) json.Number { return json.Number(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_EntradaSomaEstoque(t *testing.T) {
	uc, repo, movements := newFixture(&entity.Product{
		ID: "p1", Name: "Dom Casmurro", StockQty: 25, MinQty: 5,
	})

	out, err := uc.Register(context.Background(), "user-1", dto.CreateMovementRequest{
		ProductID: "p1",
		Type:      entity.MovementTypeEntrada,
		Quantity:  qty("10"),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(35), out.StockQty)
	assert.Equal(t, "", out.Alert)
	assert.Equal(t, int64(35), repo.products["p1"].StockQty)

	require.Len(t, movements.movements, 1)
	m := movements.movements[0]
	assert.Equal(t, entity.MovementTypeEntrada, m.Type)
	assert.Equal(t, int64(10), m.Quantity)
	assert.Equal(t, "Dom Casmurro", m.ProductName, "nome gravado como snapshot")
	assert.Equal(t, "user-1", m.CreatedBy)
}

func TestRegister_SaidaInsuficienteNaoAltera(t *testing.T) {
	uc, repo, movements := newFixture(&entity.Product{
		ID: "p1", Name: "Dom Casmurro", StockQty: 25, MinQty: 5,
	})

	_, err := uc.Register(context.Background(), "user-1", dto.CreateMovementRequest{
		ProductID: "p1",
		Type:      entity.MovementTypeSaida,
		Quantity:  qty("31"),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Nada mudou: estoque intacto e nenhum registro gravado
	assert.Equal(t, int64(25), repo.products["p1"].StockQty)
	assert.Empty(t, movements.movements)
}

func TestRegister_SaidaDisparaAlertaMasEfetiva(t *testing.T) {
	uc, repo, _ := newFixture(&entity.Product{
		ID: "p1", Name: "Dom Casmurro", StockQty: 10, MinQty: 5,
	})

	out, err := uc.Register(context.Background(), "user-1", dto.CreateMovementRequest{
		ProductID: "p1",
		Type:      entity.MovementTypeSaida,
		Quantity:  qty("7"),
	})
	require.NoError(t, err)

	// O alerta é consultivo: a saída foi efetivada mesmo abaixo do mínimo
	assert.Equal(t, int64(3), out.StockQty)
	assert.Equal(t, string(stock.AlertBelowMin), out.Alert)
	assert.Equal(t, int64(3), repo.products["p1"].StockQty)
}

func TestRegister_EntradaAcimaDoTetoRejeitada(t *testing.T) {
	uc, repo, movements := newFixture(&entity.Product{
		ID: "p1", Name: "Dom Casmurro", StockQty: 99995, MinQty: 1,
	})

	_, err := uc.Register(context.Background(), "user-1", dto.CreateMovementRequest{
		ProductID: "p1",
		Type:      entity.MovementTypeEntrada,
		Quantity:  qty("10"),
	})
	assert.ErrorIs(t, err, stock.ErrQuantityTooLarge)
	assert.Equal(t, int64(99995), repo.products["p1"].StockQty)
	assert.Empty(t, movements.movements)
}

func TestRegister_EntradaAcimaDoMaximoAlerta(t *testing.T) {
	uc, _, _ := newFixture(&entity.Product{
		ID: "p1", Name: "Dom Casmurro", StockQty: 95, MinQty: 5, MaxQty: 100,
	})

	out, err := uc.Register(context.Background(), "user-1", dto.CreateMovementRequest{
		ProductID: "p1",
		Type:      entity.MovementTypeEntrada,
		Quantity:  qty("10"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(105), out.StockQty)
	assert.Equal(t, string(stock.AlertAboveMax), out.Alert)
}

func TestRegister_QuantidadeInvalida(t *testing.T) {
	uc, _, _ := newFixture(&entity.Product{ID: "p1", StockQty: 10, MinQty: 1})

	casos := []struct {
		raw     string
		wantErr error
	}{
		{"", stock.ErrQuantityRequired},
		{"abc", stock.ErrQuantityFormat},
		{"-1", stock.ErrQuantityNegative},
		{"100000", stock.ErrQuantityTooLarge},
		{"0", stock.ErrQuantityZero},
	}
	for _, tc := range casos {
		_, err := uc.Register(context.Background(), "user-1", dto.CreateMovementRequest{
			ProductID: "p1",
			Type:      entity.MovementTypeEntrada,
			Quantity:  qty(tc.raw),
		})
		assert.ErrorIs(t, err, tc.wantErr, "quantidade %q", tc.raw)
	}
}

func TestRegister_TipoInvalido(t *testing.T) {
	uc, _, _ := newFixture(&entity.Product{ID: "p1", StockQty: 10, MinQty: 1})

	_, err := uc.Register(context.Background(), "user-1", dto.CreateMovementRequest{
		ProductID: "p1",
		Type:      "TRANSFERENCIA",
		Quantity:  qty("1"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_ProdutoInexistente(t *testing.T) {
	uc, _, _ := newFixture(&entity.Product{ID: "p1", StockQty: 10, MinQty: 1})

	_, err := uc.Register(context.Background(), "user-1", dto.CreateMovementRequest{
		ProductID: "nao-existe",
		Type:      entity.MovementTypeEntrada,
		Quantity:  qty("1"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

func TestList_FiltroPorTipo(t *testing.T) {
	uc, _, movements := newFixture(&entity.Product{ID: "p1", StockQty: 10, MinQty: 1})
	movements.movements = []*entity.Movement{
		{ID: "m1", Type: entity.MovementTypeEntrada, Quantity: 5},
		{ID: "m2", Type: entity.MovementTypeSaida, Quantity: 2},
	}

	all, err := uc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	entradas, err := uc.List(context.Background(), entity.MovementTypeEntrada)
	require.NoError(t, err)
	require.Len(t, entradas, 1)
	assert.Equal(t, "m1", entradas[0].ID)

	_, err = uc.List(context.Background(), "OUTRO")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
