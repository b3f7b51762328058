// internal/relatorio/xlsx.go
package relatorio

import (
	"fmt"
	"net/http"
	"time"

	"github.com/InstitutoAvance/api-comercial/internal/dashboard"
	"github.com/InstitutoAvance/api-comercial/internal/usuario"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// Handler exporta o relatório mensal de comissões em planilha.
type Handler struct {
	Servico *dashboard.Servico
}

// NewHandler cria um novo Handler.
func NewHandler(servico *dashboard.Servico) *Handler {
	return &Handler{Servico: servico}
}

// ComissoesXLSX trata GET /relatorios/comissoes.xlsx?ano=&mes=.
func (h *Handler) ComissoesXLSX(w http.ResponseWriter, r *http.Request) {
	ano, mes, ok := parsePeriodo(r)
	if !ok {
		http.Error(w, "ano ou mês inválido", http.StatusBadRequest)
		return
	}

	linhas, err := h.Servico.MontarComissoesDoMes(ano, mes)
	if err != nil {
		logrus.WithError(err).Error("erro ao montar relatório de comissões")
		http.Error(w, "erro ao montar relatório", http.StatusInternalServerError)
		return
	}
	ranking, err := h.Servico.MontarRanking(ano, mes, usuario.CargoVendedor)
	if err != nil {
		logrus.WithError(err).Error("erro ao montar ranking do relatório")
		http.Error(w, "erro ao montar relatório", http.StatusInternalServerError)
		return
	}

	f := excelize.NewFile()

	// aba de comissões semanais
	f.SetCellValue("Sheet1", "A1", "Nome")
	f.SetCellValue("Sheet1", "B1", "Cargo")
	f.SetCellValue("Sheet1", "C1", "Semana")
	f.SetCellValue("Sheet1", "D1", "Alcançado")
	f.SetCellValue("Sheet1", "E1", "Meta Semanal")
	f.SetCellValue("Sheet1", "F1", "Atingimento %")
	f.SetCellValue("Sheet1", "G1", "Multiplicador")
	f.SetCellValue("Sheet1", "H1", "Comissão (R$)")
	for i, l := range linhas {
		row := fmt.Sprint(i + 2)
		f.SetCellValue("Sheet1", "A"+row, l.Nome)
		f.SetCellValue("Sheet1", "B"+row, l.Cargo)
		f.SetCellValue("Sheet1", "C"+row, l.Rotulo)
		f.SetCellValue("Sheet1", "D"+row, l.Alcancado)
		f.SetCellValue("Sheet1", "E"+row, l.MetaSemanal)
		f.SetCellValue("Sheet1", "F"+row, l.Percentual)
		f.SetCellValue("Sheet1", "G"+row, l.Multiplicador)
		f.SetCellValue("Sheet1", "H"+row, l.Valor)
	}

	// aba de ranking mensal de vendedores
	if _, err := f.NewSheet("Ranking"); err == nil {
		f.SetCellValue("Ranking", "A1", "Posição")
		f.SetCellValue("Ranking", "B1", "Nome")
		f.SetCellValue("Ranking", "C1", "Pontos")
		f.SetCellValue("Ranking", "D1", "Vendas")
		f.SetCellValue("Ranking", "E1", "Atingimento %")
		for i, item := range ranking {
			row := fmt.Sprint(i + 2)
			f.SetCellValue("Ranking", "A"+row, i+1)
			f.SetCellValue("Ranking", "B"+row, item.Nome)
			f.SetCellValue("Ranking", "C"+row, item.Pontos)
			f.SetCellValue("Ranking", "D"+row, item.Quantidade)
			f.SetCellValue("Ranking", "E"+row, item.Atingimento)
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=comissoes-%04d-%02d.xlsx", ano, int(mes)))
	if err := f.Write(w); err != nil {
		logrus.WithError(err).Error("erro ao escrever planilha")
		http.Error(w, "erro ao escrever planilha", http.StatusInternalServerError)
	}
}

func parsePeriodo(r *http.Request) (int, time.Month, bool) {
	agora := time.Now()
	ano, mes := agora.Year(), agora.Month()

	if s := r.URL.Query().Get("ano"); s != "" {
		if _, err := fmt.Sscanf(s, "%d", &ano); err != nil || ano < 2000 || ano > 2100 {
			return 0, 0, false
		}
	}
	if s := r.URL.Query().Get("mes"); s != "" {
		var m int
		if _, err := fmt.Sscanf(s, "%d", &m); err != nil || m < 1 || m > 12 {
			return 0, 0, false
		}
		mes = time.Month(m)
	}
	return ano, mes, true
}
