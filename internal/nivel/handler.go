// internal/nivel/handler.go
package nivel

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// Handler gerencia rotas de configuração de níveis.
type Handler struct {
	Repo *Repository
}

// NewHandler cria um novo Handler.
func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// Criar trata POST /niveis (somente admin, garantido pelo middleware).
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var n Nivel
	if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if n.Cargo != CargoVendedor && n.Cargo != CargoSDR && n.Cargo != CargoSupervisor {
		http.Error(w, "cargo inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Salvar(&n); err != nil {
		http.Error(w, "erro ao salvar nível", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(n)
}

// Listar trata GET /niveis.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.ListarTodos()
	if err != nil {
		http.Error(w, "erro ao listar níveis", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// BuscarPorID trata GET /niveis/{id}.
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	n, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "nível não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(n)
}

// Atualizar trata PUT /niveis/{id}.
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	n, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "nível não encontrado", http.StatusNotFound)
		return
	}

	var payload Nivel
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	n.MetaSemanal = payload.MetaSemanal
	n.ComissaoBaseSemanal = payload.ComissaoBaseSemanal
	n.MetaMensal = payload.MetaMensal

	if err := h.Repo.Salvar(n); err != nil {
		http.Error(w, "erro ao atualizar nível", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(n)
}

// Deletar trata DELETE /niveis/{id}.
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Deletar(uint(id)); err != nil {
		http.Error(w, "erro ao deletar nível", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
