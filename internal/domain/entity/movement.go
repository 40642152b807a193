package entity

import "time"

// Tipos de movimentação de estoque (valores de transporte; a UI exibe
// "Entrada" / "Saída").
const (
	MovementTypeEntrada = "ENTRADA"
	MovementTypeSaida   = "SAIDA"
)

// Movement representa uma movimentação de estoque (entrada ou saída).
// Imutável após criada; a lista é mantida da mais recente para a mais antiga
// pela ordem de inserção.
type Movement struct {
	ID          string
	ProductID   string
	ProductName string // snapshot do nome do produto no momento do registro
	Type        string // ver constantes MovementType*
	Quantity    int64  // sempre positivo, 1..99999
	Note        string
	Date        time.Time
	CreatedBy   string // UserID, opcional
}
