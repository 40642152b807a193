package inventory

import (
	"context"

	"github.com/bibliostock/bibliostock-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de banco, passando
// repositórios atados a essa tx. Garante que a atualização do estoque e o
// registro da movimentação sejam efetivados juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error) error
}
