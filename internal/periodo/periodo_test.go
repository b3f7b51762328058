package periodo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimitesDaSemanaSempreQuartaATerca(t *testing.T) {
	// varre um ano inteiro, dia a dia
	d := time.Date(2025, time.January, 1, 10, 30, 0, 0, time.UTC)
	for i := 0; i < 365; i++ {
		inicio, fim := LimitesDaSemana(d)

		assert.Equal(t, time.Wednesday, inicio.Weekday())
		assert.Equal(t, time.Tuesday, fim.Weekday())
		assert.Equal(t, 0, inicio.Hour())
		assert.Equal(t, 23, fim.Hour())
		assert.False(t, d.Before(inicio), "data %s antes do início %s", d, inicio)
		assert.False(t, d.After(fim), "data %s depois do fim %s", d, fim)
		// terça é exatamente 6 dias após a quarta
		assert.Equal(t, inicio.AddDate(0, 0, 6).Day(), fim.Day())

		d = d.AddDate(0, 0, 1)
	}
}

func TestLimitesDaSemanaNaPropriaQuarta(t *testing.T) {
	// 04/06/2025 é quarta-feira
	quarta := time.Date(2025, time.June, 4, 15, 0, 0, 0, time.UTC)
	inicio, fim := LimitesDaSemana(quarta)

	assert.Equal(t, 4, inicio.Day())
	assert.Equal(t, time.June, inicio.Month())
	assert.Equal(t, 10, fim.Day())
}

func TestPeriodoEfetivoSemanaQueCruzaMes(t *testing.T) {
	// 01/07/2025 é terça; sua semana começou na quarta 25/06,
	// então o período efetivo é junho.
	mes, ano := PeriodoEfetivo(time.Date(2025, time.July, 1, 9, 0, 0, 0, time.UTC))
	assert.Equal(t, time.June, mes)
	assert.Equal(t, 2025, ano)

	// já 02/07/2025 (quarta) abre semana nova, em julho
	mes, ano = PeriodoEfetivo(time.Date(2025, time.July, 2, 9, 0, 0, 0, time.UTC))
	assert.Equal(t, time.July, mes)
	assert.Equal(t, 2025, ano)
}

func TestSemanasDoMesOrdenadasESemSobreposicao(t *testing.T) {
	for mes := time.January; mes <= time.December; mes++ {
		semanas := SemanasDoMes(2025, mes)
		require.GreaterOrEqual(t, len(semanas), 4)
		require.LessOrEqual(t, len(semanas), 5)

		for i, s := range semanas {
			assert.Equal(t, i+1, s.Indice)
			assert.Equal(t, time.Wednesday, s.Inicio.Weekday())
			assert.Equal(t, mes, s.Inicio.Month())
			if i > 0 {
				anterior := semanas[i-1]
				// contíguas, espaçadas de 7 dias, sem sobreposição
				assert.Equal(t, anterior.Inicio.AddDate(0, 0, 7), s.Inicio)
				assert.True(t, anterior.Fim.Before(s.Inicio))
			}
		}
	}
}

func TestSemanasDoMesConsistentesComPeriodoEfetivo(t *testing.T) {
	// toda data dentro de um bucket de fevereiro/2025 resolve para fevereiro/2025
	for _, s := range SemanasDoMes(2025, time.February) {
		for d := s.Inicio; !d.After(s.Fim); d = d.AddDate(0, 0, 1) {
			mes, ano := PeriodoEfetivo(d)
			assert.Equal(t, time.February, mes)
			assert.Equal(t, 2025, ano)
		}
	}
}
