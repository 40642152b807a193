package reports

import "context"

// TableDocument é o contrato com o renderizador de PDF: título, cabeçalho e
// linhas já formatadas como texto de exibição. O renderizador não sabe nada
// de agregação; esta camada não sabe nada de layout de página.
type TableDocument struct {
	Title    string
	Subtitle string
	Headers  []string
	Rows     [][]string
	Footer   string // linha de total/resumo, vazia quando não há
}

// PDFGenerator renderiza um documento tabular e devolve os bytes do PDF.
type PDFGenerator interface {
	Generate(ctx context.Context, doc TableDocument) ([]byte, error)
}
