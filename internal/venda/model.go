// internal/venda/model.go
package venda

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Status possíveis de uma venda. Só vendas matriculadas contam para
// comissão e ranking.
const (
	StatusPendente    = "pendente"
	StatusMatriculado = "matriculado"
	StatusDesistiu    = "desistiu"
)

// Erros de transição de status na validação administrativa.
var (
	ErrStatusInvalido    = errors.New("status de venda inválido")
	ErrTransicaoInvalida = errors.New("transição de status inválida")
)

// Aluno é o sub-registro do aluno embutido na venda.
type Aluno struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
}

// Venda representa uma matrícula submetida por um vendedor.
type Venda struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	VendedorID uint   `gorm:"not null;index" json:"vendedorId"`
	CursoID    uint   `gorm:"index" json:"cursoId"`
	Status     string `gorm:"size:50;not null;default:'pendente';index" json:"status"`

	// EnviadoEm sempre existe; as demais datas são opcionais e a DataEfetiva
	// resolve a precedência entre elas.
	EnviadoEm              time.Time  `gorm:"not null" json:"enviadoEm"`
	DataAprovacao          *time.Time `json:"dataAprovacao"`
	DataAssinaturaContrato *time.Time `json:"dataAssinaturaContrato"`

	PontosPrevistos float64  `gorm:"not null;default:0" json:"pontosPrevistos"`
	PontosValidados *float64 `json:"pontosValidados"`

	// Respostas livres do formulário de matrícula, em JSONB.
	RespostasFormulario map[string]string `gorm:"type:jsonb;serializer:json" json:"respostasFormulario"`

	Aluno Aluno `gorm:"embedded;embeddedPrefix:aluno_" json:"aluno"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// Pontos devolve os pontos que valem para apuração: validados quando
// existem, senão os previstos.
func (v Venda) Pontos() float64 {
	if v.PontosValidados != nil {
		return *v.PontosValidados
	}
	return v.PontosPrevistos
}

// ValidarTransicao confere a mudança de status pedida pela validação
// administrativa. Só vendas pendentes transitam, e só para matriculado
// ou desistiu.
func (v Venda) ValidarTransicao(novoStatus string) error {
	if novoStatus != StatusMatriculado && novoStatus != StatusDesistiu {
		return ErrStatusInvalido
	}
	if v.Status != StatusPendente {
		return ErrTransicaoInvalida
	}
	return nil
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Venda{})
}
