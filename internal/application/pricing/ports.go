package pricing

import (
	"context"

	"github.com/bibliostock/bibliostock-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de banco, passando
// repositórios atados a essa tx. Um reajuste toca N produtos e grava uma
// entrada de histórico; a transação garante que ou tudo é efetivado, ou nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		historyRepo repository.AdjustmentHistoryRepository,
	) error) error
}
