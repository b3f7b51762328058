// internal/comissao/repository.go
package comissao

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Repository encapsula o acesso ao histórico mensal de multiplicadores.
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Salvar insere uma linha de histórico.
func (r *Repository) Salvar(h *HistoricoMultiplicador) error {
	return r.DB.Create(h).Error
}

// ListarPorPeriodo retorna as linhas de histórico de um (cargo, ano, mês).
func (r *Repository) ListarPorPeriodo(cargo string, ano, mes int) ([]HistoricoMultiplicador, error) {
	var list []HistoricoMultiplicador
	err := r.DB.
		Where("cargo = ? AND ano = ? AND mes = ?", cargo, ano, mes).
		Order("percentual_min ASC").
		Find(&list).Error
	return list, err
}

// BuscarMultiplicador procura no histórico a linha que cobre o percentual.
// Retorna gorm.ErrRecordNotFound quando nenhuma faixa histórica cobre o valor.
func (r *Repository) BuscarMultiplicador(percentual float64, cargo string, ano, mes int) (float64, error) {
	var h HistoricoMultiplicador
	err := r.DB.
		Where("cargo = ? AND ano = ? AND mes = ? AND percentual_min <= ? AND percentual_max >= ?",
			cargo, ano, mes, percentual, percentual).
		Order("percentual_min DESC").
		First(&h).Error
	if err != nil {
		return 0, err
	}
	return h.Multiplicador, nil
}

// MultiplicadorComHistorico resolve o multiplicador preferindo o histórico
// persistido do período; falha de consulta ou ausência de faixa cai na tabela
// fixa. A falha é registrada e nunca propagada.
func (r *Repository) MultiplicadorComHistorico(percentual float64, cargo string, ano, mes int) float64 {
	m, err := r.BuscarMultiplicador(percentual, cargo, ano, mes)
	if err == nil {
		return m
	}
	if err != gorm.ErrRecordNotFound {
		logrus.WithFields(logrus.Fields{
			"cargo": cargo,
			"ano":   ano,
			"mes":   mes,
		}).WithError(err).Warn("histórico de multiplicador indisponível, usando tabela fixa")
	}
	return Multiplicador(percentual, cargo)
}

// CalcularComHistorico apura a semana preferindo o multiplicador histórico.
func (r *Repository) CalcularComHistorico(alcancado, metaSemanal, baseSemanal float64, cargo string, ano, mes int) Resultado {
	var percentual float64
	if metaSemanal > 0 {
		percentual = alcancado / metaSemanal * 100
	}
	m := r.MultiplicadorComHistorico(percentual, cargo, ano, mes)
	return Resultado{
		Valor:         arredondarMoeda(baseSemanal, m),
		Multiplicador: m,
		Percentual:    percentual,
	}
}
