package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bibliostock/bibliostock-api/internal/application/dto"
	"github.com/bibliostock/bibliostock-api/internal/domain"
	"github.com/bibliostock/bibliostock-api/internal/domain/entity"
	"github.com/bibliostock/bibliostock-api/internal/domain/repository"
	"github.com/bibliostock/bibliostock-api/internal/domain/stock"
)

// RegisterMovementUseCase registra movimentações de estoque de forma
// transacional: bloqueio da linha do produto (SELECT FOR UPDATE), aritmética
// de estoque, registro imutável da movimentação e avaliação do alerta.
type RegisterMovementUseCase struct {
	txRunner     TxRunner
	movementRepo repository.MovementRepository
}

// NewRegisterMovementUseCase constrói o caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, movementRepo repository.MovementRepository) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, movementRepo: movementRepo}
}

// Register valida e aplica uma movimentação.
//
// Entrada: estoque + quantidade (rejeitada se ultrapassar o teto de 99999).
// Saída: estoque − quantidade (rejeitada por estoque insuficiente).
// O alerta resultante é consultivo: a movimentação que deixa o estoque abaixo
// do mínimo é efetivada mesmo assim.
func (uc *RegisterMovementUseCase) Register(ctx context.Context, userID string, in dto.CreateMovementRequest) (*dto.RegisterMovementResponse, error) {
	switch in.Type {
	case entity.MovementTypeEntrada, entity.MovementTypeSaida:
	default:
		return nil, domain.ErrInvalidInput
	}
	quantity, err := stock.ParseQuantity(in.Quantity.String(), true)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var out *dto.RegisterMovementResponse

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error {
		// Bloqueia a linha do produto para a aritmética de estoque
		product, err := productRepo.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		var newStock int64
		switch in.Type {
		case entity.MovementTypeEntrada:
			if err := stock.EnsureEntryAllowed(product.StockQty, quantity); err != nil {
				return err
			}
			newStock = product.StockQty + quantity
		case entity.MovementTypeSaida:
			if err := stock.EnsureExitAllowed(product.StockQty, quantity); err != nil {
				return err
			}
			newStock = product.StockQty - quantity
		}

		if err := productRepo.UpdateStock(ctx, product.ID, newStock); err != nil {
			return err
		}

		// Snapshot do nome: registro histórico, não cache
		movement := &entity.Movement{
			ID:          uuid.New().String(),
			ProductID:   product.ID,
			ProductName: product.Name,
			Type:        in.Type,
			Quantity:    quantity,
			Note:        in.Note,
			Date:        now,
			CreatedBy:   userID,
		}
		if err := movementRepo.Create(ctx, movement); err != nil {
			return err
		}

		alert := stock.EvaluateAlert(newStock, product.MinQty, product.MaxQty)
		out = &dto.RegisterMovementResponse{
			Movement: toMovementResponse(movement),
			StockQty: newStock,
			Alert:    string(alert),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List devolve as movimentações da mais recente para a mais antiga.
// movementType vazio lista todas; "ENTRADA"/"SAIDA" filtram.
func (uc *RegisterMovementUseCase) List(ctx context.Context, movementType string) ([]dto.MovementResponse, error) {
	switch movementType {
	case "", entity.MovementTypeEntrada, entity.MovementTypeSaida:
	default:
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.movementRepo.List(ctx, movementType)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, toMovementResponse(m))
	}
	return items, nil
}

func toMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:           m.ID,
		ProductID:    m.ProductID,
		ProductName:  m.ProductName,
		Quantity:     m.Quantity,
		MovementType: m.Type,
		Note:         m.Note,
		MovementDate: m.Date,
	}
}
