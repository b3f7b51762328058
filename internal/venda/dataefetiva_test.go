package venda

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ptrTime(t time.Time) *time.Time { return &t }

func TestDataEfetivaPrefereAssinaturaDeContrato(t *testing.T) {
	assinatura := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)
	v := Venda{
		EnviadoEm:              time.Date(2025, time.February, 20, 10, 0, 0, 0, time.UTC),
		DataAprovacao:          ptrTime(time.Date(2025, time.February, 25, 0, 0, 0, 0, time.UTC)),
		DataAssinaturaContrato: ptrTime(assinatura),
	}

	d := DataEfetiva(v)
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 5, d.Day())
	// ancorada ao meio-dia para não rolar de dia com fuso
	assert.Equal(t, 12, d.Hour())
}

func TestDataEfetivaCaiParaAprovacao(t *testing.T) {
	aprovacao := time.Date(2025, time.April, 10, 9, 0, 0, 0, time.UTC)
	v := Venda{
		EnviadoEm:     time.Date(2025, time.April, 1, 8, 0, 0, 0, time.UTC),
		DataAprovacao: ptrTime(aprovacao),
	}
	assert.Equal(t, aprovacao, DataEfetiva(v))
}

func TestDataEfetivaLeDataDoFormulario(t *testing.T) {
	v := Venda{
		EnviadoEm:           time.Date(2025, time.May, 1, 8, 0, 0, 0, time.UTC),
		RespostasFormulario: map[string]string{CampoDataMatricula: "15/05/2025"},
	}
	d := DataEfetiva(v)
	assert.Equal(t, 15, d.Day())
	assert.Equal(t, time.May, d.Month())

	// formato ISO também é aceito
	v.RespostasFormulario[CampoDataMatricula] = "2025-05-20"
	assert.Equal(t, 20, DataEfetiva(v).Day())
}

func TestDataEfetivaFormularioIlegivelCaiParaEnvio(t *testing.T) {
	envio := time.Date(2025, time.May, 1, 8, 0, 0, 0, time.UTC)
	v := Venda{
		EnviadoEm:           envio,
		RespostasFormulario: map[string]string{CampoDataMatricula: "mês que vem"},
	}
	assert.Equal(t, envio, DataEfetiva(v))
}

func TestDataEfetivaSemNada(t *testing.T) {
	envio := time.Date(2025, time.June, 3, 14, 0, 0, 0, time.UTC)
	assert.Equal(t, envio, DataEfetiva(Venda{EnviadoEm: envio}))
}

func TestPontosPreferemValidados(t *testing.T) {
	validados := 3.5
	v := Venda{PontosPrevistos: 5, PontosValidados: &validados}
	assert.Equal(t, 3.5, v.Pontos())

	v.PontosValidados = nil
	assert.Equal(t, 5.0, v.Pontos())
}

func TestValidarTransicao(t *testing.T) {
	v := Venda{Status: StatusPendente}
	assert.NoError(t, v.ValidarTransicao(StatusMatriculado))
	assert.NoError(t, v.ValidarTransicao(StatusDesistiu))
	assert.ErrorIs(t, v.ValidarTransicao("aprovadissimo"), ErrStatusInvalido)

	v.Status = StatusMatriculado
	assert.ErrorIs(t, v.ValidarTransicao(StatusDesistiu), ErrTransicaoInvalida)
}
