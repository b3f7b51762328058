// internal/usuario/repository.go
package usuario

import (
	"gorm.io/gorm"
)

// Repository define as operações de banco para Usuario.
type Repository interface {
	BuscarPorEmail(db *gorm.DB, email string) (*Usuario, error)
	Salvar(db *gorm.DB, u *Usuario) error
	BuscarPorID(db *gorm.DB, id uint) (*Usuario, error)
	ListarTodos(db *gorm.DB) ([]Usuario, error)
	ListarPorCargo(db *gorm.DB, cargo string) ([]Usuario, error)
	ListarPorSupervisor(db *gorm.DB, supervisorID uint) ([]Usuario, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Usuario) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

// NewRepository cria um novo repositório.
func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) BuscarPorEmail(db *gorm.DB, email string) (*Usuario, error) {
	var u Usuario
	if err := db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repositoryImpl) Salvar(db *gorm.DB, u *Usuario) error {
	return db.Save(u).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Usuario, error) {
	var u Usuario
	if err := db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Usuario, error) {
	var usuarios []Usuario
	err := db.Order("nome ASC").Find(&usuarios).Error
	return usuarios, err
}

func (r *repositoryImpl) ListarPorCargo(db *gorm.DB, cargo string) ([]Usuario, error) {
	var usuarios []Usuario
	err := db.Where("cargo = ?", cargo).Order("nome ASC").Find(&usuarios).Error
	return usuarios, err
}

// ListarPorSupervisor retorna o time de um supervisor.
func (r *repositoryImpl) ListarPorSupervisor(db *gorm.DB, supervisorID uint) ([]Usuario, error) {
	var usuarios []Usuario
	err := db.Where("supervisor_id = ?", supervisorID).Order("nome ASC").Find(&usuarios).Error
	return usuarios, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Usuario) error {
	var existente Usuario
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.Nome = novosDados.Nome
	existente.Sobrenome = novosDados.Sobrenome
	existente.Email = novosDados.Email
	existente.Telefone = novosDados.Telefone
	existente.Cargo = novosDados.Cargo
	existente.Nivel = novosDados.Nivel
	existente.SupervisorID = novosDados.SupervisorID

	return db.Save(&existente).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Usuario{}, id).Error
}
