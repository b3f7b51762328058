// internal/usuario/model.go
package usuario

import (
	"gorm.io/gorm"
)

// Cargos da operação comercial.
const (
	CargoVendedor   = "vendedor"
	CargoSDR        = "sdr"
	CargoSupervisor = "supervisor"
)

// Usuario é uma conta da operação: vendedor, SDR ou supervisor.
type Usuario struct {
	gorm.Model
	Nome      string `json:"nome"`
	Sobrenome string `json:"sobrenome"`
	Email     string `json:"email" gorm:"unique"`
	Telefone  string `json:"telefone"`
	Senha     string `json:"-"`
	Cargo     string `json:"cargo" gorm:"size:50;index"`
	Nivel     string `json:"nivel" gorm:"size:100"`

	// Supervisor responsável; nulo para contas de supervisor e admins.
	SupervisorID *uint `json:"supervisorId" gorm:"index"`

	IsAdmin bool `json:"isAdmin"`
}

// CargoValido confere se o cargo é um dos reconhecidos.
func CargoValido(cargo string) bool {
	return cargo == CargoVendedor || cargo == CargoSDR || cargo == CargoSupervisor
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Usuario{})
}
