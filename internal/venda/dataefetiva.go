// internal/venda/dataefetiva.go
package venda

import (
	"errors"
	"strings"
	"time"
)

// CampoDataMatricula é o nome do campo de data dentro das respostas livres
// do formulário de matrícula.
const CampoDataMatricula = "Data de Matrícula"

// DataEfetiva escolhe a data única usada para apurar a semana da venda.
// Precedência: assinatura de contrato, aprovação, data de matrícula do
// formulário, envio. Total: nunca falha, porque EnviadoEm sempre existe.
func DataEfetiva(v Venda) time.Time {
	if v.DataAssinaturaContrato != nil {
		return aoMeioDia(*v.DataAssinaturaContrato, v.DataAssinaturaContrato.Location())
	}
	if v.DataAprovacao != nil {
		return *v.DataAprovacao
	}
	if bruto, ok := v.RespostasFormulario[CampoDataMatricula]; ok {
		if d, err := parseDataFormulario(bruto); err == nil {
			return d
		}
	}
	return v.EnviadoEm
}

// aoMeioDia fixa a data ao meio-dia para não rolar de dia com fuso horário.
func aoMeioDia(d time.Time, loc *time.Location) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, loc)
}

var layoutsFormulario = []string{"02/01/2006", "2006-01-02"}

func parseDataFormulario(bruto string) (time.Time, error) {
	bruto = strings.TrimSpace(bruto)
	for _, layout := range layoutsFormulario {
		if d, err := time.Parse(layout, bruto); err == nil {
			return aoMeioDia(d, time.Local), nil
		}
	}
	return time.Time{}, errors.New("data do formulário ilegível")
}
