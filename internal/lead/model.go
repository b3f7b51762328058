// internal/lead/model.go
package lead

import (
	"time"

	"gorm.io/gorm"
)

// Lead é um contato em prospecção, alvo dos agendamentos dos SDRs.
type Lead struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Nome     string `gorm:"size:255;not null" json:"nome"`
	Email    string `gorm:"size:255;index" json:"email"`
	Whatsapp string `gorm:"size:50;index" json:"whatsapp"`
	Origem   string `gorm:"size:100" json:"origem"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Lead{})
}
