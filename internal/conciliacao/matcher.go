// internal/conciliacao/matcher.go
package conciliacao

import (
	"sort"
	"strings"

	"github.com/InstitutoAvance/api-comercial/internal/agendamento"
	"github.com/InstitutoAvance/api-comercial/internal/lead"
	"github.com/InstitutoAvance/api-comercial/internal/venda"
	"github.com/ttacon/libphonenumber"
)

// regiaoPadrao é a região assumida para números sem código de país.
const regiaoPadrao = "BR"

// NormalizarTelefone reduz um telefone à sua forma canônica só-dígitos.
// Números interpretáveis pelo libphonenumber saem em E.164 sem o "+", de modo
// que "+55 11 99999-0000" e "11999990000" colidem na mesma chave.
func NormalizarTelefone(bruto string) string {
	bruto = strings.TrimSpace(bruto)
	if bruto == "" {
		return ""
	}
	if num, err := libphonenumber.Parse(bruto, regiaoPadrao); err == nil && libphonenumber.IsValidNumber(num) {
		return strings.TrimPrefix(libphonenumber.Format(num, libphonenumber.E164), "+")
	}
	return apenasDigitos(bruto)
}

// NormalizarEmail reduz um e-mail à forma canônica minúscula e sem espaços.
func NormalizarEmail(bruto string) string {
	return strings.ToLower(strings.TrimSpace(bruto))
}

func apenasDigitos(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Vincular liga reuniões "comprou" sem vínculo direto a vendas pendentes,
// casando telefone ou e-mail normalizados entre o lead da reunião e o aluno
// da venda. Vendas já convertidas (apontadas por vínculo direto de qualquer
// reunião) ficam fora do pareamento, para nenhuma venda contar duas vezes.
// Empates entre vendas candidatas são desfeitos pela venda submetida há mais
// tempo (EnviadoEm crescente), o que torna o resultado determinístico.
func Vincular(
	agendamentos []agendamento.Agendamento,
	leads map[uint]lead.Lead,
	vendasPendentes []venda.Venda,
) map[uint]uint {
	vinculos := make(map[uint]uint)

	jaConvertidas := make(map[uint]bool)
	for _, a := range agendamentos {
		if a.VendaID != nil {
			jaConvertidas[*a.VendaID] = true
		}
	}

	candidatas := make([]venda.Venda, len(vendasPendentes))
	copy(candidatas, vendasPendentes)
	sort.SliceStable(candidatas, func(i, j int) bool {
		return candidatas[i].EnviadoEm.Before(candidatas[j].EnviadoEm)
	})

	for _, a := range agendamentos {
		if a.Resultado != agendamento.ResultadoComprou || a.VendaID != nil {
			continue
		}
		l, ok := leads[a.LeadID]
		if !ok {
			continue
		}

		telefoneLead := NormalizarTelefone(l.Whatsapp)
		emailLead := NormalizarEmail(l.Email)
		if telefoneLead == "" && emailLead == "" {
			continue
		}

		for _, v := range candidatas {
			if jaConvertidas[v.ID] {
				continue
			}
			casaTelefone := telefoneLead != "" && NormalizarTelefone(v.Aluno.Telefone) == telefoneLead
			casaEmail := emailLead != "" && NormalizarEmail(v.Aluno.Email) == emailLead
			if casaTelefone || casaEmail {
				vinculos[a.ID] = v.ID
				jaConvertidas[v.ID] = true
				break
			}
		}
	}
	return vinculos
}

// Pendencias devolve as reuniões "comprou" que ficaram sem venda mesmo após a
// conciliação. Elas são tratadas como "aguardando aprovação", nunca como erro.
func Pendencias(agendamentos []agendamento.Agendamento, vinculos map[uint]uint) []agendamento.Agendamento {
	pendentes := make([]agendamento.Agendamento, 0)
	for _, a := range agendamentos {
		if a.Resultado != agendamento.ResultadoComprou {
			continue
		}
		if a.VendaID != nil {
			continue
		}
		if _, ok := vinculos[a.ID]; ok {
			continue
		}
		pendentes = append(pendentes, a)
	}
	return pendentes
}
