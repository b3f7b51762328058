// internal/lead/repository.go
package lead

import (
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Lead.
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Criar insere um novo lead.
func (r *Repository) Criar(l *Lead) error {
	return r.DB.Create(l).Error
}

// BuscarPorID retorna um lead pelo ID.
func (r *Repository) BuscarPorID(id uint) (*Lead, error) {
	var l Lead
	if err := r.DB.First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

// BuscarPorIDs retorna os leads dos IDs pedidos, indexados por ID.
func (r *Repository) BuscarPorIDs(ids []uint) (map[uint]Lead, error) {
	var list []Lead
	if err := r.DB.Where("id IN ?", ids).Find(&list).Error; err != nil {
		return nil, err
	}
	porID := make(map[uint]Lead, len(list))
	for _, l := range list {
		porID[l.ID] = l
	}
	return porID, nil
}

// ListarTodos retorna todos os leads.
func (r *Repository) ListarTodos() ([]Lead, error) {
	var list []Lead
	err := r.DB.Order("nome ASC").Find(&list).Error
	return list, err
}

// Atualizar salva alterações em um lead.
func (r *Repository) Atualizar(l *Lead) error {
	return r.DB.Save(l).Error
}

// Deletar remove um lead (soft delete).
func (r *Repository) Deletar(id uint) error {
	return r.DB.Delete(&Lead{}, id).Error
}
