// internal/periodo/periodo.go
package periodo

import (
	"fmt"
	"time"
)

// SemanaDoMes representa uma semana comercial (quarta a terça) dentro de um mês.
// É um valor derivado, nunca persistido.
type SemanaDoMes struct {
	Indice int       `json:"indice"`
	Inicio time.Time `json:"inicio"`
	Fim    time.Time `json:"fim"`
	Rotulo string    `json:"rotulo"`
}

// Contem informa se a data cai dentro da semana.
func (s SemanaDoMes) Contem(d time.Time) bool {
	return !d.Before(s.Inicio) && !d.After(s.Fim)
}

// LimitesDaSemana retorna o intervalo quarta-feira 00:00:00 até terça-feira
// 23:59:59 que contém a data informada. A semana comercial começa na quarta.
func LimitesDaSemana(d time.Time) (inicio, fim time.Time) {
	dia := int(d.Weekday()) // 0=domingo .. 6=sábado
	var recuo int
	if dia >= 3 {
		recuo = dia - 3
	} else {
		recuo = dia + 4
	}
	quarta := d.AddDate(0, 0, -recuo)
	inicio = time.Date(quarta.Year(), quarta.Month(), quarta.Day(), 0, 0, 0, 0, d.Location())
	terca := inicio.AddDate(0, 0, 6)
	fim = time.Date(terca.Year(), terca.Month(), terca.Day(), 23, 59, 59, 0, d.Location())
	return inicio, fim
}

// PeriodoEfetivo devolve o mês e o ano aos quais a semana da data pertence.
// Uma semana que cruza a virada de mês é atribuída ao mês da sua quarta-feira
// inicial; a regra é aplicada uniformemente em todo o sistema.
func PeriodoEfetivo(d time.Time) (mes time.Month, ano int) {
	inicio, _ := LimitesDaSemana(d)
	return inicio.Month(), inicio.Year()
}

// SemanasDoMes enumera, em ordem crescente, as semanas comerciais cuja
// quarta-feira inicial cai dentro do mês informado. Um mês rende 4 ou 5 semanas.
func SemanasDoMes(ano int, mes time.Month) []SemanaDoMes {
	primeiroDia := time.Date(ano, mes, 1, 0, 0, 0, 0, time.Local)

	// primeira quarta-feira do mês
	quarta := primeiroDia
	for quarta.Weekday() != time.Wednesday {
		quarta = quarta.AddDate(0, 0, 1)
	}

	var semanas []SemanaDoMes
	for quarta.Month() == mes {
		inicio, fim := LimitesDaSemana(quarta)
		semanas = append(semanas, SemanaDoMes{
			Indice: len(semanas) + 1,
			Inicio: inicio,
			Fim:    fim,
			Rotulo: fmt.Sprintf("Semana %d (%02d/%02d a %02d/%02d)", len(semanas)+1,
				inicio.Day(), int(inicio.Month()), fim.Day(), int(fim.Month())),
		})
		quarta = quarta.AddDate(0, 0, 7)
	}
	return semanas
}
