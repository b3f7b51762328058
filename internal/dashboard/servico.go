// internal/dashboard/servico.go
package dashboard

import (
	"time"

	"github.com/InstitutoAvance/api-comercial/internal/agendamento"
	"github.com/InstitutoAvance/api-comercial/internal/comissao"
	"github.com/InstitutoAvance/api-comercial/internal/conciliacao"
	"github.com/InstitutoAvance/api-comercial/internal/lead"
	"github.com/InstitutoAvance/api-comercial/internal/nivel"
	"github.com/InstitutoAvance/api-comercial/internal/periodo"
	"github.com/InstitutoAvance/api-comercial/internal/ranking"
	"github.com/InstitutoAvance/api-comercial/internal/usuario"
	"github.com/InstitutoAvance/api-comercial/internal/venda"
	"gorm.io/gorm"
)

// LinhaComissao é a comissão apurada de um usuário em uma semana do mês.
type LinhaComissao struct {
	UsuarioID     uint    `json:"usuarioId"`
	Nome          string  `json:"nome"`
	Cargo         string  `json:"cargo"`
	SemanaIndice  int     `json:"semanaIndice"`
	Rotulo        string  `json:"rotulo"`
	Alcancado     float64 `json:"alcancado"`
	MetaSemanal   float64 `json:"metaSemanal"`
	Valor         float64 `json:"valor"`
	Multiplicador float64 `json:"multiplicador"`
	Percentual    float64 `json:"percentual"`
}

// ResumoSupervisor é a visão mensal do time de um supervisor.
type ResumoSupervisor struct {
	SupervisorID     uint                    `json:"supervisorId"`
	Nome             string                  `json:"nome"`
	Semanas          []comissao.SemanaEquipe `json:"semanas"`
	MediaAtingimento float64                 `json:"mediaAtingimento"`
	TotalComissao    float64                 `json:"totalComissao"`
}

// PendenciaConversao é uma reunião convertida ainda sem venda correspondente.
type PendenciaConversao struct {
	AgendamentoID uint      `json:"agendamentoId"`
	SdrID         uint      `json:"sdrId"`
	LeadNome      string    `json:"leadNome"`
	DataHora      time.Time `json:"dataHora"`
	Situacao      string    `json:"situacao"`
}

// Servico reúne os repositórios necessários para montar o painel. Toda a
// aritmética fica nos pacotes puros (periodo, comissao, ranking,
// conciliacao); aqui só se busca e se costura.
type Servico struct {
	DB           *gorm.DB
	Vendas       *venda.Repository
	Agendamentos *agendamento.Repository
	Leads        *lead.Repository
	Usuarios     usuario.Repository
	Niveis       *nivel.Repository
	Comissoes    *comissao.Repository
}

// NovoServico cria o serviço do painel sobre uma conexão gorm.
func NovoServico(db *gorm.DB) *Servico {
	return &Servico{
		DB:           db,
		Vendas:       venda.NewRepository(db),
		Agendamentos: agendamento.NewRepository(db),
		Leads:        lead.NewRepository(db),
		Usuarios:     usuario.NewRepository(),
		Niveis:       nivel.NewRepository(db),
		Comissoes:    comissao.NewRepository(db),
	}
}

// MontarComissoesDoMes apura as comissões semanais de vendedores e SDRs no
// mês pedido. Usuário sem nível configurado entra com metas zeradas; nenhuma
// falha de configuração interrompe a apuração.
func (s *Servico) MontarComissoesDoMes(ano int, mes time.Month) ([]LinhaComissao, error) {
	semanas := periodo.SemanasDoMes(ano, mes)
	if len(semanas) == 0 {
		return []LinhaComissao{}, nil
	}
	inicio, fim := semanas[0].Inicio, semanas[len(semanas)-1].Fim

	vendas, err := s.Vendas.ListarPorJanela(inicio, fim)
	if err != nil {
		return nil, err
	}
	agendamentos, err := s.Agendamentos.ListarPorJanela(inicio, fim)
	if err != nil {
		return nil, err
	}

	var linhas []LinhaComissao

	vendedores, err := s.Usuarios.ListarPorCargo(s.DB, usuario.CargoVendedor)
	if err != nil {
		return nil, err
	}
	for _, u := range vendedores {
		metaSemanal, base := s.configDoUsuario(u)
		for _, semana := range semanas {
			alcancado := pontosNaSemana(vendas, u.ID, semana)
			linhas = append(linhas, montarLinha(u, semana, alcancado, metaSemanal,
				s.Comissoes.CalcularComHistorico(alcancado, metaSemanal, base, u.Cargo, ano, int(mes))))
		}
	}

	sdrs, err := s.Usuarios.ListarPorCargo(s.DB, usuario.CargoSDR)
	if err != nil {
		return nil, err
	}
	for _, u := range sdrs {
		metaSemanal, base := s.configDoUsuario(u)
		for _, semana := range semanas {
			alcancado := reunioesNaSemana(agendamentos, u.ID, semana)
			linhas = append(linhas, montarLinha(u, semana, alcancado, metaSemanal,
				s.Comissoes.CalcularComHistorico(alcancado, metaSemanal, base, u.Cargo, ano, int(mes))))
		}
	}

	return linhas, nil
}

// MontarResumoSupervisores apura a visão coletiva de cada supervisor: o
// atingimento do time semana a semana, a média mensal com a trava dos 50%
// e a comissão do supervisor sobre a meta coletiva.
func (s *Servico) MontarResumoSupervisores(ano int, mes time.Month) ([]ResumoSupervisor, error) {
	semanas := periodo.SemanasDoMes(ano, mes)
	if len(semanas) == 0 {
		return []ResumoSupervisor{}, nil
	}
	inicio, fim := semanas[0].Inicio, semanas[len(semanas)-1].Fim

	vendas, err := s.Vendas.ListarPorJanela(inicio, fim)
	if err != nil {
		return nil, err
	}
	supervisores, err := s.Usuarios.ListarPorCargo(s.DB, usuario.CargoSupervisor)
	if err != nil {
		return nil, err
	}

	resumos := make([]ResumoSupervisor, 0, len(supervisores))
	for _, sup := range supervisores {
		equipe, err := s.Usuarios.ListarPorSupervisor(s.DB, sup.ID)
		if err != nil {
			return nil, err
		}
		metaSup, baseSup := s.configDoUsuario(sup)

		resumo := ResumoSupervisor{SupervisorID: sup.ID, Nome: sup.Nome}
		for _, semana := range semanas {
			var totalTime float64
			piorIndividual := 100.0
			for _, membro := range equipe {
				alcancado := pontosNaSemana(vendas, membro.ID, semana)
				totalTime += alcancado

				metaMembro, _ := s.configDoUsuario(membro)
				individual := 0.0
				if metaMembro > 0 {
					individual = alcancado / metaMembro * 100
				}
				if individual < piorIndividual {
					piorIndividual = individual
				}
			}
			if len(equipe) == 0 {
				piorIndividual = 0
			}

			coletivo := 0.0
			if metaSup > 0 {
				coletivo = totalTime / metaSup * 100
			}
			resumo.Semanas = append(resumo.Semanas, comissao.SemanaEquipe{
				Percentual:     coletivo,
				PiorIndividual: piorIndividual,
			})

			// a trava dos 50% zera a média, não o valor da semana
			resultado := s.Comissoes.CalcularComHistorico(totalTime, metaSup, baseSup, sup.Cargo, ano, int(mes))
			resumo.TotalComissao += resultado.Valor
		}
		resumo.MediaAtingimento = comissao.MediaAtingimentoEquipe(resumo.Semanas)
		resumos = append(resumos, resumo)
	}
	return resumos, nil
}

// MontarRanking monta o ranking mensal do cargo pedido.
func (s *Servico) MontarRanking(ano int, mes time.Month, cargo string) ([]ranking.ItemRanking, error) {
	semanas := periodo.SemanasDoMes(ano, mes)
	if len(semanas) == 0 {
		return []ranking.ItemRanking{}, nil
	}
	inicio, fim := semanas[0].Inicio, semanas[len(semanas)-1].Fim

	entidades, err := s.Usuarios.ListarPorCargo(s.DB, cargo)
	if err != nil {
		return nil, err
	}
	metas := s.metasMensais(entidades)

	if cargo == usuario.CargoSDR {
		agendamentos, err := s.Agendamentos.ListarPorJanela(inicio, fim)
		if err != nil {
			return nil, err
		}
		return ranking.RankearSDRs(entidades, agendamentos, semanas, metas), nil
	}

	vendas, err := s.Vendas.ListarPorJanela(inicio, fim)
	if err != nil {
		return nil, err
	}
	return ranking.RankearVendedores(entidades, vendas, semanas, metas), nil
}

// MontarPendencias roda o conciliador de contatos no mês e devolve as
// conversões ainda sem venda, marcadas como aguardando aprovação.
func (s *Servico) MontarPendencias(ano int, mes time.Month) ([]PendenciaConversao, error) {
	semanas := periodo.SemanasDoMes(ano, mes)
	if len(semanas) == 0 {
		return []PendenciaConversao{}, nil
	}
	inicio, fim := semanas[0].Inicio, semanas[len(semanas)-1].Fim

	agendamentos, err := s.Agendamentos.ListarPorJanela(inicio, fim)
	if err != nil {
		return nil, err
	}
	pendentes, err := s.Vendas.ListarPendentes()
	if err != nil {
		return nil, err
	}

	idsLead := make([]uint, 0, len(agendamentos))
	for _, a := range agendamentos {
		idsLead = append(idsLead, a.LeadID)
	}
	leads, err := s.Leads.BuscarPorIDs(idsLead)
	if err != nil {
		return nil, err
	}

	vinculos := conciliacao.Vincular(agendamentos, leads, pendentes)
	semVenda := conciliacao.Pendencias(agendamentos, vinculos)

	resultado := make([]PendenciaConversao, 0, len(semVenda))
	for _, a := range semVenda {
		resultado = append(resultado, PendenciaConversao{
			AgendamentoID: a.ID,
			SdrID:         a.SdrID,
			LeadNome:      leads[a.LeadID].Nome,
			DataHora:      a.DataHora,
			Situacao:      "aguardando aprovação",
		})
	}
	return resultado, nil
}

// configDoUsuario resolve meta e base semanais do nível do usuário.
// Configuração ausente vale zero, nunca erro.
func (s *Servico) configDoUsuario(u usuario.Usuario) (metaSemanal, baseSemanal float64) {
	n, err := s.Niveis.BuscarPorCargoENome(u.Cargo, u.Nivel)
	if err != nil {
		return 0, 0
	}
	return n.MetaSemanal, n.ComissaoBaseSemanal
}

func (s *Servico) metasMensais(usuarios []usuario.Usuario) map[uint]float64 {
	metas := make(map[uint]float64, len(usuarios))
	for _, u := range usuarios {
		if n, err := s.Niveis.BuscarPorCargoENome(u.Cargo, u.Nivel); err == nil {
			metas[u.ID] = n.MetaMensal
		}
	}
	return metas
}

func montarLinha(u usuario.Usuario, semana periodo.SemanaDoMes, alcancado, meta float64, r comissao.Resultado) LinhaComissao {
	return LinhaComissao{
		UsuarioID:     u.ID,
		Nome:          u.Nome,
		Cargo:         u.Cargo,
		SemanaIndice:  semana.Indice,
		Rotulo:        semana.Rotulo,
		Alcancado:     alcancado,
		MetaSemanal:   meta,
		Valor:         r.Valor,
		Multiplicador: r.Multiplicador,
		Percentual:    r.Percentual,
	}
}

func pontosNaSemana(vendas []venda.Venda, vendedorID uint, semana periodo.SemanaDoMes) float64 {
	var total float64
	for _, v := range vendas {
		if v.VendedorID != vendedorID || v.Status != venda.StatusMatriculado {
			continue
		}
		if semana.Contem(venda.DataEfetiva(v)) {
			total += v.Pontos()
		}
	}
	return total
}

func reunioesNaSemana(agendamentos []agendamento.Agendamento, sdrID uint, semana periodo.SemanaDoMes) float64 {
	var total float64
	for _, a := range agendamentos {
		if a.SdrID != sdrID || !a.Compareceu() || a.Status == agendamento.StatusRemarcado {
			continue
		}
		if semana.Contem(a.DataHora) {
			total++
		}
	}
	return total
}
