// internal/nivel/model.go
package nivel

import (
	"time"

	"gorm.io/gorm"
)

// Cargos reconhecidos pela configuração de níveis.
const (
	CargoVendedor   = "vendedor"
	CargoSDR        = "sdr"
	CargoSupervisor = "supervisor"
)

// Nivel é a configuração de meta e comissão de um (cargo, nome de nível).
// Dado de referência: consultado por usuário e período, nunca alterado
// durante a apuração.
type Nivel struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	Cargo               string    `gorm:"size:50;not null;uniqueIndex:idx_nivel_cargo_nome" json:"cargo"`
	Nome                string    `gorm:"size:100;not null;uniqueIndex:idx_nivel_cargo_nome" json:"nome"`
	MetaSemanal         float64   `gorm:"not null;default:0" json:"metaSemanal"`
	ComissaoBaseSemanal float64   `gorm:"not null;default:0" json:"comissaoBaseSemanal"`
	MetaMensal          float64   `gorm:"not null;default:0" json:"metaMensal"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Nivel{})
}
