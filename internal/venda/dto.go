// internal/venda/dto.go
package venda

// CriarVendaDTO é o payload de submissão de uma venda pelo vendedor.
type CriarVendaDTO struct {
	VendedorID             uint              `json:"vendedorId"`
	CursoID                uint              `json:"cursoId"`
	PontosPrevistos        float64           `json:"pontosPrevistos"`
	DataAssinaturaContrato string            `json:"dataAssinaturaContrato"` // RFC3339, opcional
	RespostasFormulario    map[string]string `json:"respostasFormulario"`
	Aluno                  Aluno             `json:"aluno"`
}

// ValidarVendaDTO é o payload da validação administrativa.
type ValidarVendaDTO struct {
	Status          string   `json:"status"`
	PontosValidados *float64 `json:"pontosValidados"`
}
