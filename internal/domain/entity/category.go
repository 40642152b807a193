package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tamanhos de categoria.
const (
	CategorySizePequeno = "Pequeno"
	CategorySizeMedio   = "Médio"
	CategorySizeGrande  = "Grande"
)

// Tipos de embalagem.
const (
	PackagingPapelao  = "Papelão"
	PackagingPlastico = "Plástico"
	PackagingVidro    = "Vidro"
	PackagingLata     = "Lata"
)

// Category representa uma categoria de produtos da livraria.
// DefaultAdjustmentPercent é o percentual usado pelo reajuste "padrão"
// (pode ser negativo para desconto).
type Category struct {
	ID                       string
	Name                     string
	Size                     string // ver constantes CategorySize*
	PackagingType            string // ver constantes Packaging*
	DefaultAdjustmentPercent decimal.Decimal
	CreatedAt                time.Time
	UpdatedAt                time.Time
}
