// internal/dashboard/handler.go
package dashboard

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/InstitutoAvance/api-comercial/internal/auth"
	"github.com/InstitutoAvance/api-comercial/internal/usuario"
	"github.com/sirupsen/logrus"
)

// Handler expõe o painel de comissões, rankings e pendências.
type Handler struct {
	Servico  *Servico
	Politica usuario.PoliticaVisibilidade
}

// NewHandler cria um novo Handler.
func NewHandler(servico *Servico, politica usuario.PoliticaVisibilidade) *Handler {
	return &Handler{Servico: servico, Politica: politica}
}

// Comissoes trata GET /dashboard/comissoes?ano=&mes=.
func (h *Handler) Comissoes(w http.ResponseWriter, r *http.Request) {
	ano, mes, ok := parsePeriodo(w, r)
	if !ok {
		return
	}

	linhas, err := h.Servico.MontarComissoesDoMes(ano, mes)
	if err != nil {
		logrus.WithError(err).Error("erro ao montar comissões do mês")
		http.Error(w, "erro ao montar comissões", http.StatusInternalServerError)
		return
	}

	if !h.podeVerTudo(r) {
		userID := r.Context().Value(auth.CtxUserID).(uint)
		proprias := make([]LinhaComissao, 0)
		for _, l := range linhas {
			if l.UsuarioID == userID {
				proprias = append(proprias, l)
			}
		}
		linhas = proprias
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(linhas)
}

// Ranking trata GET /dashboard/ranking?ano=&mes=&cargo=.
func (h *Handler) Ranking(w http.ResponseWriter, r *http.Request) {
	ano, mes, ok := parsePeriodo(w, r)
	if !ok {
		return
	}
	cargo := r.URL.Query().Get("cargo")
	if cargo == "" {
		cargo = usuario.CargoVendedor
	}
	if !usuario.CargoValido(cargo) {
		http.Error(w, "cargo inválido", http.StatusBadRequest)
		return
	}

	itens, err := h.Servico.MontarRanking(ano, mes, cargo)
	if err != nil {
		logrus.WithError(err).Error("erro ao montar ranking")
		http.Error(w, "erro ao montar ranking", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(itens)
}

// Supervisores trata GET /dashboard/supervisores?ano=&mes=.
func (h *Handler) Supervisores(w http.ResponseWriter, r *http.Request) {
	ano, mes, ok := parsePeriodo(w, r)
	if !ok {
		return
	}
	if !h.podeVerTudo(r) {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	resumos, err := h.Servico.MontarResumoSupervisores(ano, mes)
	if err != nil {
		logrus.WithError(err).Error("erro ao montar resumo de supervisores")
		http.Error(w, "erro ao montar resumo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resumos)
}

// Pendencias trata GET /dashboard/pendencias?ano=&mes=.
func (h *Handler) Pendencias(w http.ResponseWriter, r *http.Request) {
	ano, mes, ok := parsePeriodo(w, r)
	if !ok {
		return
	}

	pendencias, err := h.Servico.MontarPendencias(ano, mes)
	if err != nil {
		logrus.WithError(err).Error("erro ao montar pendências")
		http.Error(w, "erro ao montar pendências", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(pendencias)
}

// podeVerTudo resolve a política de visibilidade para o usuário autenticado.
func (h *Handler) podeVerTudo(r *http.Request) bool {
	if isAdmin, _ := r.Context().Value(auth.CtxIsAdmin).(bool); isAdmin {
		return true
	}
	userID, _ := r.Context().Value(auth.CtxUserID).(uint)
	u, err := h.Servico.Usuarios.BuscarPorID(h.Servico.DB, userID)
	if err != nil {
		return false
	}
	return h.Politica.PodeVerTudo(*u)
}

// parsePeriodo lê ano e mês da query string; ausentes valem o mês corrente.
func parsePeriodo(w http.ResponseWriter, r *http.Request) (int, time.Month, bool) {
	agora := time.Now()
	ano, mes := agora.Year(), agora.Month()

	if s := r.URL.Query().Get("ano"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 2000 || v > 2100 {
			http.Error(w, "ano inválido", http.StatusBadRequest)
			return 0, 0, false
		}
		ano = v
	}
	if s := r.URL.Query().Get("mes"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 || v > 12 {
			http.Error(w, "mês inválido", http.StatusBadRequest)
			return 0, 0, false
		}
		mes = time.Month(v)
	}
	return ano, mes, true
}
