package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Escopos de reajuste de preço. O escopo PADRAO aplica, a cada produto, o
// percentual padrão da sua categoria; nesse caso Percent fica em zero e o
// escopo é a informação autoritativa (não há sentinela numérica).
const (
	AdjustmentScopeGlobal    = "GLOBAL"
	AdjustmentScopeCategoria = "CATEGORIA"
	AdjustmentScopePadrao    = "PADRAO"
)

// PriceAdjustment é uma entrada imutável do histórico de reajustes,
// inserida sempre no topo (mais recente primeiro).
type PriceAdjustment struct {
	ID           string
	ScopeType    string          // ver constantes AdjustmentScope*
	Percent      decimal.Decimal // percentual pleno: 10 = +10%
	CategoryID   string          // vazio fora do escopo CATEGORIA
	CategoryName string          // snapshot do nome da categoria no momento do reajuste
	Note         string
	AppliedBy    string // UserID, opcional
	AppliedAt    time.Time
}
