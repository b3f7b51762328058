// internal/comissao/model.go
package comissao

import (
	"time"

	"gorm.io/gorm"
)

// HistoricoMultiplicador guarda um multiplicador vigente em um mês passado.
// Quando existe linha para (cargo, ano, mês) cobrindo o percentual, ela vence
// a tabela fixa; na ausência ou em erro de consulta, vale a tabela fixa.
type HistoricoMultiplicador struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Ano            int       `gorm:"not null;index:idx_historico_periodo" json:"ano"`
	Mes            int       `gorm:"not null;index:idx_historico_periodo" json:"mes"`
	Cargo          string    `gorm:"size:50;not null;index:idx_historico_periodo" json:"cargo"`
	PercentualMin  float64   `gorm:"not null" json:"percentualMin"`
	PercentualMax  float64   `gorm:"not null" json:"percentualMax"`
	Multiplicador  float64   `gorm:"not null" json:"multiplicador"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&HistoricoMultiplicador{})
}
