// internal/venda/handler.go
package venda

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/InstitutoAvance/api-comercial/internal/auth"
	"github.com/gorilla/mux"
)

// Handler gerencia rotas de vendas.
type Handler struct {
	Repo *Repository
}

// NewHandler cria um novo Handler.
func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// Criar trata POST /vendas.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var dto CriarVendaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if dto.VendedorID == 0 {
		http.Error(w, "vendedorId é obrigatório", http.StatusBadRequest)
		return
	}

	v := Venda{
		VendedorID:          dto.VendedorID,
		CursoID:             dto.CursoID,
		Status:              StatusPendente,
		EnviadoEm:           time.Now(),
		PontosPrevistos:     dto.PontosPrevistos,
		RespostasFormulario: dto.RespostasFormulario,
		Aluno:               dto.Aluno,
	}
	if dto.DataAssinaturaContrato != "" {
		d, err := time.Parse(time.RFC3339, dto.DataAssinaturaContrato)
		if err != nil {
			http.Error(w, "dataAssinaturaContrato inválida", http.StatusBadRequest)
			return
		}
		v.DataAssinaturaContrato = &d
	}

	if err := h.Repo.Criar(&v); err != nil {
		http.Error(w, "erro ao salvar venda", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(v)
}

// Listar trata GET /vendas. Aceita filtro opcional por status; não-admins
// enxergam apenas as próprias vendas.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.CtxUserID).(uint)
	isAdmin := r.Context().Value(auth.CtxIsAdmin).(bool)

	var (
		list []Venda
		err  error
	)
	if isAdmin {
		list, err = h.Repo.ListarTodas(r.URL.Query().Get("status"))
	} else {
		list, err = h.Repo.ListarPorVendedor(userID)
	}
	if err != nil {
		http.Error(w, "erro ao listar vendas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// BuscarPorID trata GET /vendas/{id}.
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	v, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "venda não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// AtualizarStatus trata PATCH /vendas/{id}/status (validação administrativa).
func (h *Handler) AtualizarStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var dto ValidarVendaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	v, err := h.Repo.AtualizarStatus(uint(id), dto.Status, dto.PontosValidados)
	switch {
	case errors.Is(err, ErrStatusInvalido), errors.Is(err, ErrTransicaoInvalida):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	case err != nil:
		http.Error(w, "venda não encontrada", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// Deletar trata DELETE /vendas/{id}.
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Deletar(uint(id)); err != nil {
		http.Error(w, "erro ao deletar venda", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
