package ranking

import (
	"testing"
	"time"

	"github.com/InstitutoAvance/api-comercial/internal/agendamento"
	"github.com/InstitutoAvance/api-comercial/internal/periodo"
	"github.com/InstitutoAvance/api-comercial/internal/usuario"
	"github.com/InstitutoAvance/api-comercial/internal/venda"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func usuarioComID(id uint, nome string) usuario.Usuario {
	return usuario.Usuario{Model: gorm.Model{ID: id}, Nome: nome}
}

func vendaMatriculada(vendedorID uint, pontos float64, quando time.Time) venda.Venda {
	return venda.Venda{
		VendedorID:      vendedorID,
		Status:          venda.StatusMatriculado,
		EnviadoEm:       quando,
		PontosPrevistos: pontos,
	}
}

func TestOrdenacaoTresNiveis(t *testing.T) {
	itens := []ItemRanking{
		{Nome: "B", Pontos: 5, Quantidade: 2},
		{Nome: "A", Pontos: 5, Quantidade: 2},
		{Nome: "C", Pontos: 7, Quantidade: 1},
	}
	ordenar(itens)

	require.Len(t, itens, 3)
	assert.Equal(t, "C", itens[0].Nome) // mais pontos
	assert.Equal(t, "A", itens[1].Nome) // empate total: nome desempata
	assert.Equal(t, "B", itens[2].Nome)
}

func TestOrdenacaoQuantidadeDesempataAntesDoNome(t *testing.T) {
	itens := []ItemRanking{
		{Nome: "A", Pontos: 5, Quantidade: 1},
		{Nome: "B", Pontos: 5, Quantidade: 3},
	}
	ordenar(itens)
	assert.Equal(t, "B", itens[0].Nome)
}

func TestRankearVendedores(t *testing.T) {
	semanas := periodo.SemanasDoMes(2025, time.June)
	dentro := semanas[0].Inicio.Add(24 * time.Hour)
	fora := semanas[len(semanas)-1].Fim.AddDate(0, 1, 0)

	vendedores := []usuario.Usuario{
		usuarioComID(1, "Ana"),
		usuarioComID(2, "Bruno"),
		usuarioComID(3, "Carla"), // sem vendas: aparece zerada
	}
	pendente := vendaMatriculada(1, 99, dentro)
	pendente.Status = venda.StatusPendente

	vendas := []venda.Venda{
		vendaMatriculada(1, 3, dentro),
		vendaMatriculada(1, 2, dentro),
		vendaMatriculada(2, 4, dentro),
		vendaMatriculada(2, 10, fora), // fora do período
		pendente,                      // não matriculada
	}

	itens := RankearVendedores(vendedores, vendas, semanas, map[uint]float64{1: 10, 2: 8})
	require.Len(t, itens, 3)

	assert.Equal(t, "Ana", itens[0].Nome)
	assert.Equal(t, 5.0, itens[0].Pontos)
	assert.Equal(t, 2, itens[0].Quantidade)
	assert.Equal(t, 50.0, itens[0].Atingimento)

	assert.Equal(t, "Bruno", itens[1].Nome)
	assert.Equal(t, 4.0, itens[1].Pontos)
	assert.Equal(t, 50.0, itens[1].Atingimento)

	assert.Equal(t, "Carla", itens[2].Nome)
	assert.Equal(t, 0.0, itens[2].Pontos)
	assert.Equal(t, 0, itens[2].Quantidade)
	assert.Equal(t, 0.0, itens[2].Atingimento)
}

func TestRankearVendedoresPontosValidadosVencem(t *testing.T) {
	semanas := periodo.SemanasDoMes(2025, time.June)
	validados := 1.0
	v := vendaMatriculada(1, 5, semanas[0].Inicio.Add(time.Hour))
	v.PontosValidados = &validados

	itens := RankearVendedores([]usuario.Usuario{usuarioComID(1, "Ana")},
		[]venda.Venda{v}, semanas, nil)
	assert.Equal(t, 1.0, itens[0].Pontos)
}

func TestRankearSDRs(t *testing.T) {
	semanas := periodo.SemanasDoMes(2025, time.June)
	dentro := semanas[1].Inicio.Add(2 * time.Hour)

	sdrs := []usuario.Usuario{usuarioComID(1, "Davi"), usuarioComID(2, "Elisa")}
	ags := []agendamento.Agendamento{
		{SdrID: 1, DataHora: dentro, Resultado: agendamento.ResultadoComprou},
		{SdrID: 1, DataHora: dentro, Resultado: agendamento.ResultadoCompareceuNaoComprou},
		{SdrID: 1, DataHora: dentro, Resultado: agendamento.ResultadoNaoCompareceu}, // não conta
		{SdrID: 2, DataHora: dentro, Resultado: agendamento.ResultadoComprou,
			Status: agendamento.StatusRemarcado}, // remarcado não conta
	}

	itens := RankearSDRs(sdrs, ags, semanas, map[uint]float64{1: 4})
	require.Len(t, itens, 2)
	assert.Equal(t, "Davi", itens[0].Nome)
	assert.Equal(t, 2.0, itens[0].Pontos)
	assert.Equal(t, 50.0, itens[0].Atingimento)
	assert.Equal(t, 0.0, itens[1].Pontos)
}

func TestRankingIdempotente(t *testing.T) {
	semanas := periodo.SemanasDoMes(2025, time.June)
	dentro := semanas[0].Inicio.Add(time.Hour)

	vendedores := []usuario.Usuario{
		usuarioComID(1, "Ana"), usuarioComID(2, "Bruno"), usuarioComID(3, "Carla"),
	}
	vendas := []venda.Venda{
		vendaMatriculada(1, 5, dentro),
		vendaMatriculada(2, 5, dentro),
		vendaMatriculada(3, 5, dentro),
	}
	metas := map[uint]float64{1: 10, 2: 10, 3: 10}

	primeira := RankearVendedores(vendedores, vendas, semanas, metas)
	segunda := RankearVendedores(vendedores, vendas, semanas, metas)
	assert.Equal(t, primeira, segunda)
}
