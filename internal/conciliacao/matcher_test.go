package conciliacao

import (
	"testing"
	"time"

	"github.com/InstitutoAvance/api-comercial/internal/agendamento"
	"github.com/InstitutoAvance/api-comercial/internal/lead"
	"github.com/InstitutoAvance/api-comercial/internal/venda"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizarTelefoneFormatosDiferentesColidem(t *testing.T) {
	internacional := NormalizarTelefone("+55 11 99999-0000")
	nacional := NormalizarTelefone("11999990000")
	comPontuacao := NormalizarTelefone("(11) 99999-0000")

	assert.NotEmpty(t, internacional)
	assert.Equal(t, internacional, nacional)
	assert.Equal(t, internacional, comPontuacao)
}

func TestNormalizarTelefoneIlegivelViraSoDigitos(t *testing.T) {
	assert.Equal(t, "123", NormalizarTelefone("ramal 1-2-3"))
	assert.Equal(t, "", NormalizarTelefone("  "))
}

func TestNormalizarEmail(t *testing.T) {
	assert.Equal(t, "aluno@escola.com", NormalizarEmail("  Aluno@Escola.COM "))
}

func vendaPendente(id uint, telefone, email string, enviadoEm time.Time) venda.Venda {
	return venda.Venda{
		ID:        id,
		Status:    venda.StatusPendente,
		EnviadoEm: enviadoEm,
		Aluno:     venda.Aluno{Nome: "Aluno", Telefone: telefone, Email: email},
	}
}

func TestVincularPorTelefone(t *testing.T) {
	ags := []agendamento.Agendamento{
		{ID: 1, LeadID: 10, Resultado: agendamento.ResultadoComprou},
	}
	leads := map[uint]lead.Lead{
		10: {ID: 10, Nome: "Maria", Whatsapp: "+55 11 99999-0000"},
	}
	vendas := []venda.Venda{
		vendaPendente(100, "11999990000", "", time.Now()),
	}

	vinculos := Vincular(ags, leads, vendas)
	require.Len(t, vinculos, 1)
	assert.Equal(t, uint(100), vinculos[1])
}

func TestVincularPorEmailQuandoTelefoneDifere(t *testing.T) {
	ags := []agendamento.Agendamento{
		{ID: 1, LeadID: 10, Resultado: agendamento.ResultadoComprou},
	}
	leads := map[uint]lead.Lead{
		10: {ID: 10, Whatsapp: "11988887777", Email: "Maria@Email.com"},
	}
	vendas := []venda.Venda{
		vendaPendente(100, "11999990000", "maria@email.com", time.Now()),
	}

	vinculos := Vincular(ags, leads, vendas)
	require.Len(t, vinculos, 1)
	assert.Equal(t, uint(100), vinculos[1])
}

func TestVincularSemCoincidenciaNaoCasa(t *testing.T) {
	ags := []agendamento.Agendamento{
		{ID: 1, LeadID: 10, Resultado: agendamento.ResultadoComprou},
	}
	leads := map[uint]lead.Lead{
		10: {ID: 10, Whatsapp: "11988887777", Email: "outra@email.com"},
	}
	vendas := []venda.Venda{
		vendaPendente(100, "11999990000", "maria@email.com", time.Now()),
	}

	assert.Empty(t, Vincular(ags, leads, vendas))
}

func TestVincularIgnoraReunioesSemCompra(t *testing.T) {
	ags := []agendamento.Agendamento{
		{ID: 1, LeadID: 10, Resultado: agendamento.ResultadoCompareceuNaoComprou},
		{ID: 2, LeadID: 10, Resultado: agendamento.ResultadoNaoCompareceu},
	}
	leads := map[uint]lead.Lead{10: {ID: 10, Whatsapp: "11999990000"}}
	vendas := []venda.Venda{vendaPendente(100, "11999990000", "", time.Now())}

	assert.Empty(t, Vincular(ags, leads, vendas))
}

func TestVincularNaoReusaVendaJaConvertida(t *testing.T) {
	vendaID := uint(100)
	ags := []agendamento.Agendamento{
		// vínculo direto já aponta para a venda 100
		{ID: 1, LeadID: 10, Resultado: agendamento.ResultadoComprou, VendaID: &vendaID},
		// reunião fuzzy com o mesmo telefone não pode reusá-la
		{ID: 2, LeadID: 11, Resultado: agendamento.ResultadoComprou},
	}
	leads := map[uint]lead.Lead{
		10: {ID: 10, Whatsapp: "11999990000"},
		11: {ID: 11, Whatsapp: "11999990000"},
	}
	vendas := []venda.Venda{vendaPendente(100, "11999990000", "", time.Now())}

	assert.Empty(t, Vincular(ags, leads, vendas))
}

func TestVincularEmpateVenceVendaMaisAntiga(t *testing.T) {
	ags := []agendamento.Agendamento{
		{ID: 1, LeadID: 10, Resultado: agendamento.ResultadoComprou},
	}
	leads := map[uint]lead.Lead{10: {ID: 10, Whatsapp: "11999990000"}}

	antiga := time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)
	nova := antiga.AddDate(0, 0, 5)
	vendas := []venda.Venda{
		vendaPendente(200, "11999990000", "", nova),
		vendaPendente(100, "11999990000", "", antiga),
	}

	vinculos := Vincular(ags, leads, vendas)
	require.Len(t, vinculos, 1)
	assert.Equal(t, uint(100), vinculos[1])
}

func TestPendencias(t *testing.T) {
	vendaID := uint(100)
	ags := []agendamento.Agendamento{
		{ID: 1, Resultado: agendamento.ResultadoComprou, VendaID: &vendaID}, // vínculo direto
		{ID: 2, Resultado: agendamento.ResultadoComprou},                    // conciliado abaixo
		{ID: 3, Resultado: agendamento.ResultadoComprou},                    // pendente
		{ID: 4, Resultado: agendamento.ResultadoNaoCompareceu},
	}
	vinculos := map[uint]uint{2: 200}

	pendentes := Pendencias(ags, vinculos)
	require.Len(t, pendentes, 1)
	assert.Equal(t, uint(3), pendentes[0].ID)
}
