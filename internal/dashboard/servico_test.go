package dashboard

import (
	"testing"
	"time"

	"github.com/InstitutoAvance/api-comercial/internal/agendamento"
	"github.com/InstitutoAvance/api-comercial/internal/periodo"
	"github.com/InstitutoAvance/api-comercial/internal/venda"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPontosNaSemanaSomaSoMatriculadas(t *testing.T) {
	semanas := periodo.SemanasDoMes(2025, time.June)
	require.NotEmpty(t, semanas)
	dentro := semanas[0].Inicio.Add(3 * time.Hour)

	validados := 2.0
	comValidados := venda.Venda{
		VendedorID: 1, Status: venda.StatusMatriculado,
		EnviadoEm: dentro, PontosPrevistos: 5, PontosValidados: &validados,
	}
	vendas := []venda.Venda{
		comValidados,
		{VendedorID: 1, Status: venda.StatusMatriculado, EnviadoEm: dentro, PontosPrevistos: 3},
		{VendedorID: 1, Status: venda.StatusPendente, EnviadoEm: dentro, PontosPrevistos: 10},
		{VendedorID: 2, Status: venda.StatusMatriculado, EnviadoEm: dentro, PontosPrevistos: 4},
	}

	// validados (2) + previstos (3); pendente e de outro vendedor ficam fora
	assert.Equal(t, 5.0, pontosNaSemana(vendas, 1, semanas[0]))
	assert.Equal(t, 0.0, pontosNaSemana(vendas, 1, semanas[1]))
}

func TestReunioesNaSemana(t *testing.T) {
	semanas := periodo.SemanasDoMes(2025, time.June)
	dentro := semanas[0].Inicio.Add(3 * time.Hour)

	ags := []agendamento.Agendamento{
		{SdrID: 1, DataHora: dentro, Resultado: agendamento.ResultadoComprou},
		{SdrID: 1, DataHora: dentro, Resultado: agendamento.ResultadoCompareceuNaoComprou},
		{SdrID: 1, DataHora: dentro, Resultado: agendamento.ResultadoNaoCompareceu},
		{SdrID: 1, DataHora: dentro, Resultado: agendamento.ResultadoComprou,
			Status: agendamento.StatusRemarcado},
		{SdrID: 2, DataHora: dentro, Resultado: agendamento.ResultadoComprou},
	}

	assert.Equal(t, 2.0, reunioesNaSemana(ags, 1, semanas[0]))
	assert.Equal(t, 1.0, reunioesNaSemana(ags, 2, semanas[0]))
}
