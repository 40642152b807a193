package stock

// Alert é o sinal consultivo emitido após uma movimentação. Nunca bloqueia
// nem reverte a movimentação que o disparou.
type Alert string

const (
	AlertNone     Alert = ""
	AlertBelowMin Alert = "ABAIXO_MINIMO"
	AlertAboveMax Alert = "ACIMA_MAXIMO"
)

// EvaluateAlert compara o estoque resultante com os limites do produto.
// Exatamente um dos três estados vale por movimentação: abaixo do mínimo,
// acima do máximo ou nenhum — nunca os dois ao mesmo tempo.
// maxQty 0 significa sem limite superior configurado.
func EvaluateAlert(newStock, minQty, maxQty int64) Alert {
	if newStock < minQty {
		return AlertBelowMin
	}
	if maxQty > 0 && newStock > maxQty {
		return AlertAboveMax
	}
	return AlertNone
}
