// internal/agendamento/handler.go
package agendamento

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/InstitutoAvance/api-comercial/internal/lead"
	"github.com/InstitutoAvance/api-comercial/internal/notificacao"
	"github.com/gorilla/mux"
)

// Handler gerencia rotas de agendamentos.
type Handler struct {
	Repo        *Repository
	Leads       *lead.Repository
	Notificador *notificacao.Notificador
}

// NewHandler cria um novo Handler.
func NewHandler(repo *Repository, leads *lead.Repository, notificador *notificacao.Notificador) *Handler {
	return &Handler{Repo: repo, Leads: leads, Notificador: notificador}
}

type criarAgendamentoDTO struct {
	SdrID      uint   `json:"sdrId"`
	VendedorID uint   `json:"vendedorId"`
	LeadID     uint   `json:"leadId"`
	DataHora   string `json:"dataHora"` // RFC3339
}

type resultadoDTO struct {
	Resultado string `json:"resultado"`
	Status    string `json:"status"`
	VendaID   *uint  `json:"vendaId"`
}

// Criar trata POST /agendamentos.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var dto criarAgendamentoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if dto.SdrID == 0 || dto.LeadID == 0 {
		http.Error(w, "sdrId e leadId são obrigatórios", http.StatusBadRequest)
		return
	}
	dataHora, err := time.Parse(time.RFC3339, dto.DataHora)
	if err != nil {
		http.Error(w, "dataHora inválida", http.StatusBadRequest)
		return
	}

	a := Agendamento{
		SdrID:      dto.SdrID,
		VendedorID: dto.VendedorID,
		LeadID:     dto.LeadID,
		DataHora:   dataHora,
	}
	if err := h.Repo.Criar(&a); err != nil {
		http.Error(w, "erro ao salvar agendamento", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(a)
}

// Listar trata GET /agendamentos. Aceita filtro opcional por SDR.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	var sdrID uint
	if s := r.URL.Query().Get("sdrId"); s != "" {
		id, err := strconv.Atoi(s)
		if err != nil {
			http.Error(w, "sdrId inválido", http.StatusBadRequest)
			return
		}
		sdrID = uint(id)
	}
	list, err := h.Repo.ListarTodos(sdrID)
	if err != nil {
		http.Error(w, "erro ao listar agendamentos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// BuscarPorID trata GET /agendamentos/{id}.
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	a, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "agendamento não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(a)
}

// AtualizarResultado trata PATCH /agendamentos/{id}/resultado. Uma conversão
// registrada sem vínculo de venda dispara o alerta de conciliação pendente.
func (h *Handler) AtualizarResultado(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	a, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "agendamento não encontrado", http.StatusNotFound)
		return
	}

	var dto resultadoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	switch dto.Resultado {
	case ResultadoComprou, ResultadoCompareceuNaoComprou, ResultadoNaoCompareceu, "":
	default:
		http.Error(w, "resultado inválido", http.StatusBadRequest)
		return
	}

	a.Resultado = dto.Resultado
	a.Status = dto.Status
	if dto.VendaID != nil {
		a.VendaID = dto.VendaID
	}
	if err := h.Repo.Atualizar(a); err != nil {
		http.Error(w, "erro ao atualizar agendamento", http.StatusInternalServerError)
		return
	}

	if a.Resultado == ResultadoComprou && a.VendaID == nil {
		nomeLead := ""
		if l, err := h.Leads.BuscarPorID(a.LeadID); err == nil {
			nomeLead = l.Nome
		}
		go h.Notificador.AlertaConversaoSemVenda(a.ID, nomeLead)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(a)
}

// Deletar trata DELETE /agendamentos/{id}.
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Deletar(uint(id)); err != nil {
		http.Error(w, "erro ao deletar agendamento", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
