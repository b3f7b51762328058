// internal/ranking/ranking.go
package ranking

import (
	"sort"
	"time"

	"github.com/InstitutoAvance/api-comercial/internal/agendamento"
	"github.com/InstitutoAvance/api-comercial/internal/periodo"
	"github.com/InstitutoAvance/api-comercial/internal/usuario"
	"github.com/InstitutoAvance/api-comercial/internal/venda"
)

// ItemRanking é uma linha do ranking mensal de uma entidade (vendedor ou SDR).
type ItemRanking struct {
	ID          uint    `json:"id"`
	Nome        string  `json:"nome"`
	Pontos      float64 `json:"pontos"`
	Quantidade  int     `json:"quantidade"`
	Atingimento float64 `json:"atingimento"`
}

// RankearVendedores monta o ranking de vendedores sobre as semanas pedidas.
// Contam apenas vendas matriculadas cuja data efetiva cai em alguma das
// semanas; pontos validados vencem os previstos. Vendedor sem venda aparece
// zerado, nunca some do ranking.
func RankearVendedores(
	vendedores []usuario.Usuario,
	vendas []venda.Venda,
	semanas []periodo.SemanaDoMes,
	metaMensal map[uint]float64,
) []ItemRanking {
	porVendedor := make(map[uint]*ItemRanking, len(vendedores))
	itens := make([]ItemRanking, 0, len(vendedores))
	for _, u := range vendedores {
		itens = append(itens, ItemRanking{ID: u.ID, Nome: u.Nome})
	}
	for i := range itens {
		porVendedor[itens[i].ID] = &itens[i]
	}

	for _, v := range vendas {
		if v.Status != venda.StatusMatriculado {
			continue
		}
		item, ok := porVendedor[v.VendedorID]
		if !ok {
			continue
		}
		if !dentroDasSemanas(venda.DataEfetiva(v), semanas) {
			continue
		}
		item.Pontos += v.Pontos()
		item.Quantidade++
	}

	aplicarAtingimento(itens, metaMensal)
	ordenar(itens)
	return itens
}

// RankearSDRs monta o ranking de SDRs pela contagem de reuniões realizadas
// (lead compareceu) nas semanas pedidas. Reunião remarcada não conta na
// semana original.
func RankearSDRs(
	sdrs []usuario.Usuario,
	agendamentos []agendamento.Agendamento,
	semanas []periodo.SemanaDoMes,
	metaMensal map[uint]float64,
) []ItemRanking {
	porSDR := make(map[uint]*ItemRanking, len(sdrs))
	itens := make([]ItemRanking, 0, len(sdrs))
	for _, u := range sdrs {
		itens = append(itens, ItemRanking{ID: u.ID, Nome: u.Nome})
	}
	for i := range itens {
		porSDR[itens[i].ID] = &itens[i]
	}

	for _, a := range agendamentos {
		if !a.Compareceu() || a.Status == agendamento.StatusRemarcado {
			continue
		}
		item, ok := porSDR[a.SdrID]
		if !ok {
			continue
		}
		if !dentroDasSemanas(a.DataHora, semanas) {
			continue
		}
		item.Pontos++
		item.Quantidade++
	}

	aplicarAtingimento(itens, metaMensal)
	ordenar(itens)
	return itens
}

// ordenação em três níveis: pontos desc, quantidade desc, nome asc.
// A reprodução exata desses desempates é o que mantém o ranking estável.
func ordenar(itens []ItemRanking) {
	sort.SliceStable(itens, func(i, j int) bool {
		if itens[i].Pontos != itens[j].Pontos {
			return itens[i].Pontos > itens[j].Pontos
		}
		if itens[i].Quantidade != itens[j].Quantidade {
			return itens[i].Quantidade > itens[j].Quantidade
		}
		return itens[i].Nome < itens[j].Nome
	})
}

func aplicarAtingimento(itens []ItemRanking, metaMensal map[uint]float64) {
	for i := range itens {
		meta := metaMensal[itens[i].ID]
		if meta > 0 {
			itens[i].Atingimento = itens[i].Pontos / meta * 100
		}
	}
}

func dentroDasSemanas(d time.Time, semanas []periodo.SemanaDoMes) bool {
	for _, s := range semanas {
		if s.Contem(d) {
			return true
		}
	}
	return false
}
