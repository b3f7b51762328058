// internal/usuario/policy.go
package usuario

import (
	"strings"
)

// PoliticaVisibilidade decide quem enxerga o painel completo (todos os
// usuários) em vez de apenas os próprios números. Substitui comparações
// literais de e-mail espalhadas pelos handlers: a lista de exceções entra
// por configuração.
type PoliticaVisibilidade struct {
	excecoes map[string]struct{}
}

// NovaPoliticaVisibilidade monta a política a partir da lista de e-mails
// com acesso total (além de admins e supervisores).
func NovaPoliticaVisibilidade(emails []string) PoliticaVisibilidade {
	excecoes := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			excecoes[e] = struct{}{}
		}
	}
	return PoliticaVisibilidade{excecoes: excecoes}
}

// PodeVerTudo informa se o usuário enxerga os números de toda a operação.
func (p PoliticaVisibilidade) PodeVerTudo(u Usuario) bool {
	if u.IsAdmin || u.Cargo == CargoSupervisor {
		return true
	}
	_, ok := p.excecoes[strings.ToLower(u.Email)]
	return ok
}
