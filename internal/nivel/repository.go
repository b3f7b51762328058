// internal/nivel/repository.go
package nivel

import (
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Nivel.
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Salvar insere ou atualiza um nível.
func (r *Repository) Salvar(n *Nivel) error {
	return r.DB.Save(n).Error
}

// ListarTodos retorna todos os níveis cadastrados.
func (r *Repository) ListarTodos() ([]Nivel, error) {
	var list []Nivel
	err := r.DB.Order("cargo, nome").Find(&list).Error
	return list, err
}

// BuscarPorID retorna um nível pelo ID.
func (r *Repository) BuscarPorID(id uint) (*Nivel, error) {
	var n Nivel
	if err := r.DB.First(&n, id).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

// BuscarPorCargoENome resolve a configuração de um usuário. Ausência não é
// erro fatal para a apuração: quem consome trata nil como metas zeradas.
func (r *Repository) BuscarPorCargoENome(cargo, nome string) (*Nivel, error) {
	var n Nivel
	if err := r.DB.Where("cargo = ? AND nome = ?", cargo, nome).First(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

// Deletar remove um nível.
func (r *Repository) Deletar(id uint) error {
	return r.DB.Delete(&Nivel{}, id).Error
}

// SeedPadrao popula a tabela com os níveis iniciais quando ela está vazia.
func (r *Repository) SeedPadrao() error {
	var total int64
	if err := r.DB.Model(&Nivel{}).Count(&total).Error; err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	padrao := []Nivel{
		{Cargo: CargoVendedor, Nome: "junior", MetaSemanal: 10, ComissaoBaseSemanal: 450, MetaMensal: 40},
		{Cargo: CargoVendedor, Nome: "pleno", MetaSemanal: 14, ComissaoBaseSemanal: 550, MetaMensal: 56},
		{Cargo: CargoVendedor, Nome: "senior", MetaSemanal: 18, ComissaoBaseSemanal: 650, MetaMensal: 72},
		{Cargo: CargoSDR, Nome: "junior", MetaSemanal: 15, ComissaoBaseSemanal: 300, MetaMensal: 60},
		{Cargo: CargoSDR, Nome: "pleno", MetaSemanal: 20, ComissaoBaseSemanal: 400, MetaMensal: 80},
		{Cargo: CargoSDR, Nome: "senior", MetaSemanal: 25, ComissaoBaseSemanal: 500, MetaMensal: 100},
		{Cargo: CargoSupervisor, Nome: "unico", MetaSemanal: 40, ComissaoBaseSemanal: 800, MetaMensal: 160},
	}
	return r.DB.Create(&padrao).Error
}
