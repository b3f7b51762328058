// internal/venda/repository.go
package venda

import (
	"time"

	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Venda.
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Criar insere uma nova venda.
func (r *Repository) Criar(v *Venda) error {
	return r.DB.Create(v).Error
}

// BuscarPorID retorna uma venda pelo ID.
func (r *Repository) BuscarPorID(id uint) (*Venda, error) {
	var v Venda
	if err := r.DB.First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// ListarTodas retorna todas as vendas, opcionalmente filtradas por status.
func (r *Repository) ListarTodas(status string) ([]Venda, error) {
	var list []Venda
	q := r.DB.Order("enviado_em ASC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&list).Error
	return list, err
}

// ListarPorVendedor retorna as vendas de um vendedor.
func (r *Repository) ListarPorVendedor(vendedorID uint) ([]Venda, error) {
	var list []Venda
	err := r.DB.Where("vendedor_id = ?", vendedorID).Order("enviado_em ASC").Find(&list).Error
	return list, err
}

// ListarPendentes retorna as vendas aguardando validação, da mais antiga
// para a mais nova. A ordem importa: o conciliador de contatos usa a venda
// mais antiga como desempate.
func (r *Repository) ListarPendentes() ([]Venda, error) {
	return r.ListarTodas(StatusPendente)
}

// ListarPorJanela retorna as vendas cujo intervalo candidato de datas toca a
// janela pedida. O filtro fino por DataEfetiva é feito em memória, porque a
// precedência de datas não é exprimível em SQL sem duplicar a regra.
func (r *Repository) ListarPorJanela(inicio, fim time.Time) ([]Venda, error) {
	var list []Venda
	// margem de uma semana para vendas cuja data efetiva difere do envio
	folga := 8 * 24 * time.Hour
	err := r.DB.
		Where("enviado_em BETWEEN ? AND ?", inicio.Add(-folga), fim.Add(folga)).
		Or("data_aprovacao BETWEEN ? AND ?", inicio, fim).
		Or("data_assinatura_contrato BETWEEN ? AND ?", inicio, fim).
		Order("enviado_em ASC").
		Find(&list).Error
	return list, err
}

// AtualizarStatus aplica a validação administrativa: muda o status, registra
// a data de aprovação e pode sobrescrever os pontos validados.
func (r *Repository) AtualizarStatus(id uint, novoStatus string, pontosValidados *float64) (*Venda, error) {
	v, err := r.BuscarPorID(id)
	if err != nil {
		return nil, err
	}
	if err := v.ValidarTransicao(novoStatus); err != nil {
		return nil, err
	}

	agora := time.Now()
	v.Status = novoStatus
	if novoStatus == StatusMatriculado {
		v.DataAprovacao = &agora
	}
	if pontosValidados != nil {
		v.PontosValidados = pontosValidados
	}
	if err := r.DB.Save(v).Error; err != nil {
		return nil, err
	}
	return v, nil
}

// Atualizar salva alterações nos campos editáveis de uma venda.
func (r *Repository) Atualizar(v *Venda) error {
	return r.DB.Save(v).Error
}

// Deletar remove uma venda (soft delete).
func (r *Repository) Deletar(id uint) error {
	return r.DB.Delete(&Venda{}, id).Error
}
