// internal/agendamento/repository.go
package agendamento

import (
	"time"

	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Agendamento.
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Criar insere um novo agendamento.
func (r *Repository) Criar(a *Agendamento) error {
	return r.DB.Create(a).Error
}

// BuscarPorID retorna um agendamento pelo ID.
func (r *Repository) BuscarPorID(id uint) (*Agendamento, error) {
	var a Agendamento
	if err := r.DB.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// ListarTodos retorna todos os agendamentos, opcionalmente por SDR.
func (r *Repository) ListarTodos(sdrID uint) ([]Agendamento, error) {
	var list []Agendamento
	q := r.DB.Order("data_hora ASC, id ASC")
	if sdrID != 0 {
		q = q.Where("sdr_id = ?", sdrID)
	}
	err := q.Find(&list).Error
	return list, err
}

// ListarPorJanela retorna os agendamentos dentro do intervalo, em ordem
// estável (data, id) para que a conciliação seja determinística.
func (r *Repository) ListarPorJanela(inicio, fim time.Time) ([]Agendamento, error) {
	var list []Agendamento
	err := r.DB.
		Where("data_hora BETWEEN ? AND ?", inicio, fim).
		Order("data_hora ASC, id ASC").
		Find(&list).Error
	return list, err
}

// ListarComprasSemVenda retorna reuniões "comprou" ainda sem vínculo direto
// com venda, dentro do intervalo. É a entrada do conciliador de contatos.
func (r *Repository) ListarComprasSemVenda(inicio, fim time.Time) ([]Agendamento, error) {
	var list []Agendamento
	err := r.DB.
		Where("resultado = ? AND venda_id IS NULL AND data_hora BETWEEN ? AND ?",
			ResultadoComprou, inicio, fim).
		Order("data_hora ASC, id ASC").
		Find(&list).Error
	return list, err
}

// Atualizar salva alterações em um agendamento.
func (r *Repository) Atualizar(a *Agendamento) error {
	return r.DB.Save(a).Error
}

// Deletar remove um agendamento (soft delete).
func (r *Repository) Deletar(id uint) error {
	return r.DB.Delete(&Agendamento{}, id).Error
}
