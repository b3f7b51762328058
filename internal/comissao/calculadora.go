// internal/comissao/calculadora.go
package comissao

import (
	"github.com/shopspring/decimal"
)

// Resultado é o valor derivado de uma semana de comissão. Nunca é persistido;
// recalcula-se sob demanda por (usuário, semana).
type Resultado struct {
	Valor         float64 `json:"valor"`
	Multiplicador float64 `json:"multiplicador"`
	Percentual    float64 `json:"percentual"`
}

// Calcular apura a comissão de uma semana a partir do alcançado (pontos ou
// reuniões), da meta semanal e da comissão base semanal do nível. Meta zerada
// resulta em percentual zero, nunca em erro.
func Calcular(alcancado, metaSemanal, baseSemanal float64, cargo string) Resultado {
	var percentual float64
	if metaSemanal > 0 {
		percentual = alcancado / metaSemanal * 100
	}
	m := Multiplicador(percentual, cargo)
	return Resultado{
		Valor:         arredondarMoeda(baseSemanal, m),
		Multiplicador: m,
		Percentual:    percentual,
	}
}

// SemanaEquipe resume uma semana de um time de supervisor: o atingimento
// coletivo e o pior atingimento individual entre os membros.
type SemanaEquipe struct {
	Percentual     float64 `json:"percentual"`
	PiorIndividual float64 `json:"piorIndividual"`
}

// MediaAtingimentoEquipe calcula a média mensal de atingimento de um time.
// Uma semana em que qualquer membro ficou abaixo de 50% contribui com zero
// para a média (mas continua no divisor). A trava é do atingimento médio,
// não do valor da comissão da semana.
func MediaAtingimentoEquipe(semanas []SemanaEquipe) float64 {
	if len(semanas) == 0 {
		return 0
	}
	var soma float64
	for _, s := range semanas {
		if s.PiorIndividual < 50 {
			continue
		}
		soma += s.Percentual
	}
	return soma / float64(len(semanas))
}

func arredondarMoeda(base, multiplicador float64) float64 {
	v := decimal.NewFromFloat(base).Mul(decimal.NewFromFloat(multiplicador))
	return v.Round(2).InexactFloat64()
}
