// internal/comissao/multiplicador.go
package comissao

// Faixa liga um piso de atingimento (%) ao multiplicador da comissão semanal.
type Faixa struct {
	PisoPercentual float64
	Multiplicador  float64
}

// Tabela fixa de fallback, varrida do topo para a base. A faixa aberta
// (201%+) vem primeiro: checá-la antes das faixas limitadas é requisito de
// corretude, não de estilo. A mesma tabela vale para vendedores e SDRs; o
// histórico mensal persistido é que pode divergir por cargo.
var faixasPadrao = []Faixa{
	{PisoPercentual: 201, Multiplicador: 2.0},
	{PisoPercentual: 151, Multiplicador: 1.8},
	{PisoPercentual: 120, Multiplicador: 1.2},
	{PisoPercentual: 100, Multiplicador: 1.0},
	{PisoPercentual: 85, Multiplicador: 0.7},
	{PisoPercentual: 71, Multiplicador: 0.5},
	{PisoPercentual: 0, Multiplicador: 0},
}

// Multiplicador resolve o multiplicador de comissão para um atingimento
// percentual usando a tabela fixa. Primeiro piso satisfeito vence.
func Multiplicador(percentual float64, cargo string) float64 {
	if percentual < 0 {
		return 0
	}
	for _, f := range faixasPadrao {
		if percentual >= f.PisoPercentual {
			return f.Multiplicador
		}
	}
	return 0
}
