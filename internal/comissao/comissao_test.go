package comissao

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const cargoVendedor = "vendedor"

func TestMultiplicadorFaixas(t *testing.T) {
	casos := []struct {
		percentual float64
		esperado   float64
	}{
		{0, 0},
		{50, 0},
		{70, 0},
		{70.9, 0},
		{71, 0.5},
		{84, 0.5},
		{85, 0.7},
		{99, 0.7},
		{100, 1.0},
		{119, 1.0},
		{120, 1.2},
		{150, 1.2},
		{151, 1.8},
		{200, 1.8},
		{201, 2.0},
		{210, 2.0},
		{999, 2.0},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, Multiplicador(c.percentual, cargoVendedor),
			"percentual %.1f", c.percentual)
	}
}

func TestMultiplicadorMonotonico(t *testing.T) {
	anterior := 0.0
	for p := 0.0; p <= 300; p += 0.5 {
		m := Multiplicador(p, cargoVendedor)
		assert.GreaterOrEqual(t, m, anterior, "percentual %.1f", p)
		anterior = m
	}
}

func TestMultiplicadorPercentualNegativo(t *testing.T) {
	assert.Equal(t, 0.0, Multiplicador(-10, cargoVendedor))
}

func TestCalcularSemAlcance(t *testing.T) {
	r := Calcular(0, 10, 100, cargoVendedor)
	assert.Equal(t, Resultado{Valor: 0, Multiplicador: 0, Percentual: 0}, r)
}

func TestCalcularMetaBatida(t *testing.T) {
	r := Calcular(10, 10, 100, cargoVendedor)
	assert.Equal(t, 100.0, r.Percentual)
	assert.Equal(t, 1.0, r.Multiplicador)
	assert.Equal(t, 100.0, r.Valor)
}

func TestCalcularMetaEstourada(t *testing.T) {
	r := Calcular(21, 10, 100, cargoVendedor)
	assert.Equal(t, 210.0, r.Percentual)
	assert.Equal(t, 2.0, r.Multiplicador)
	assert.Equal(t, 200.0, r.Valor)
}

func TestCalcularMetaZerada(t *testing.T) {
	// meta ausente degrada para zero, nunca divide por zero
	r := Calcular(7, 0, 100, cargoVendedor)
	assert.Equal(t, 0.0, r.Percentual)
	assert.Equal(t, 0.0, r.Multiplicador)
	assert.Equal(t, 0.0, r.Valor)
}

func TestCalcularArredondaMoeda(t *testing.T) {
	// 333.33 * 0.7 = 233.331 -> 233.33
	r := Calcular(9, 10, 333.33, cargoVendedor)
	assert.Equal(t, 90.0, r.Percentual)
	assert.Equal(t, 0.7, r.Multiplicador)
	assert.Equal(t, 233.33, r.Valor)
}

func TestMediaAtingimentoEquipe(t *testing.T) {
	semanas := []SemanaEquipe{
		{Percentual: 100, PiorIndividual: 80},
		{Percentual: 120, PiorIndividual: 60},
		{Percentual: 90, PiorIndividual: 40}, // zerada: membro abaixo de 50%
		{Percentual: 110, PiorIndividual: 50},
	}
	// (100 + 120 + 0 + 110) / 4
	assert.Equal(t, 82.5, MediaAtingimentoEquipe(semanas))
}

func TestMediaAtingimentoEquipeVazia(t *testing.T) {
	assert.Equal(t, 0.0, MediaAtingimentoEquipe(nil))
}
