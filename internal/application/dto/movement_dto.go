package dto

import (
	"encoding/json"
	"time"
)

// CreateMovementRequest entrada para registrar uma movimentação.
// Quantity fica como json.Number para que o validador de quantidade receba o
// texto cru (rejeita fracionário, vazio, fora do teto de 5 dígitos).
type CreateMovementRequest struct {
	ProductID string      `json:"productId" validate:"required"`
	Quantity  json.Number `json:"quantity"`
	Type      string      `json:"type" validate:"required,oneof=ENTRADA SAIDA"`
	Note      string      `json:"note"`
}

// MovementResponse saída de uma movimentação. productName é o snapshot
// gravado no momento do registro, não o nome atual do produto.
type MovementResponse struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"productId"`
	ProductName  string    `json:"productName"`
	Quantity     int64     `json:"quantity"`
	MovementType string    `json:"movementType"`
	Note         string    `json:"note,omitempty"`
	MovementDate time.Time `json:"movementDate"`
}

// RegisterMovementResponse resultado do registro: a movimentação criada, o
// estoque resultante e o alerta consultivo (vazio quando dentro dos limites).
type RegisterMovementResponse struct {
	Movement MovementResponse `json:"movement"`
	StockQty int64            `json:"stockQty"`
	Alert    string           `json:"alert,omitempty"`
}
