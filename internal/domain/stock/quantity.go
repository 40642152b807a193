// Package stock concentra as regras puras de estoque: validação de
// quantidades e avaliação de alertas de limite mínimo/máximo.
package stock

import (
	"errors"
	"strconv"
	"strings"

	"github.com/bibliostock/bibliostock-api/internal/domain"
)

// MaxQuantity é o teto de 5 dígitos para quantidades e para o próprio estoque.
const MaxQuantity = 99999

// Erros de validação de quantidade, na ordem de precedência em que são
// verificados por ParseQuantity.
var (
	ErrQuantityRequired = errors.New("quantidade é obrigatória")
	ErrQuantityFormat   = errors.New("quantidade deve ser um número inteiro")
	ErrQuantityNegative = errors.New("quantidade não pode ser menor que zero")
	ErrQuantityTooLarge = errors.New("quantidade não pode ter mais de 5 dígitos")
	ErrQuantityZero     = errors.New("quantidade deve ser maior que zero")
)

// ParseQuantity valida uma quantidade vinda de formulário (texto cru).
// Precedência: vazio > formato > negativo > teto > zero.
// requirePositive cobre os campos que exigem valor positivo
// (quantidade de movimentação, limite mínimo).
func ParseQuantity(raw string, requirePositive bool) (int64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, ErrQuantityRequired
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// Overflow de int64 ainda é um inteiro: cai nas regras de
		// sinal/teto, não na de formato. ParseInt devolve o valor saturado.
		if errors.Is(err, strconv.ErrRange) {
			if n < 0 {
				return 0, ErrQuantityNegative
			}
			return 0, ErrQuantityTooLarge
		}
		// "1.5", "abc" etc.: formato inválido
		return 0, ErrQuantityFormat
	}
	if n < 0 {
		return 0, ErrQuantityNegative
	}
	if n > MaxQuantity {
		return 0, ErrQuantityTooLarge
	}
	if n == 0 && requirePositive {
		return 0, ErrQuantityZero
	}
	return n, nil
}

// ValidateQuantity aplica as mesmas regras a um valor já numérico
// (payloads JSON chegam como número, não como texto).
func ValidateQuantity(n int64, requirePositive bool) error {
	if n < 0 {
		return ErrQuantityNegative
	}
	if n > MaxQuantity {
		return ErrQuantityTooLarge
	}
	if n == 0 && requirePositive {
		return ErrQuantityZero
	}
	return nil
}

// EnsureExitAllowed verifica se uma saída cabe no estoque atual.
// Não altera nada; o estoque permanece intacto quando a saída é rejeitada.
func EnsureExitAllowed(currentStock, quantity int64) error {
	if quantity > currentStock {
		return domain.ErrInsufficientStock
	}
	return nil
}

// EnsureEntryAllowed verifica se uma entrada mantém o estoque dentro do teto
// de 5 dígitos. Invariante: 0 <= estoque <= 99999.
func EnsureEntryAllowed(currentStock, quantity int64) error {
	if currentStock+quantity > MaxQuantity {
		return ErrQuantityTooLarge
	}
	return nil
}
