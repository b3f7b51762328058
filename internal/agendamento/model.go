// internal/agendamento/model.go
package agendamento

import (
	"time"

	"gorm.io/gorm"
)

// Resultados possíveis de uma reunião. Vazio significa ainda sem desfecho.
const (
	ResultadoComprou              = "comprou"
	ResultadoCompareceuNaoComprou = "compareceu_nao_comprou"
	ResultadoNaoCompareceu        = "nao_compareceu"
)

// StatusRemarcado marca reuniões reagendadas; elas não contam como reunião
// realizada na semana original.
const StatusRemarcado = "remarcado"

// Agendamento representa uma reunião entre SDR/vendedor e um lead. Uma
// reunião "comprou" é uma conversão prospectiva: precisa ser conciliada com
// uma venda real (pelo vínculo direto ou pelo conciliador de contatos) para
// não ser contada duas vezes nem silenciosamente perdida.
type Agendamento struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SdrID      uint      `gorm:"not null;index" json:"sdrId"`
	VendedorID uint      `gorm:"index" json:"vendedorId"`
	LeadID     uint      `gorm:"not null;index" json:"leadId"`
	DataHora   time.Time `gorm:"not null" json:"dataHora"`
	Resultado  string    `gorm:"size:50;index" json:"resultado"`
	Status     string    `gorm:"size:50" json:"status"`

	// Vínculo direto com a venda convertida, quando conhecido.
	VendaID *uint `gorm:"index" json:"vendaId"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// Compareceu informa se o lead esteve na reunião.
func (a Agendamento) Compareceu() bool {
	return a.Resultado == ResultadoComprou || a.Resultado == ResultadoCompareceuNaoComprou
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Agendamento{})
}
