// internal/lead/handler.go
package lead

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// Handler gerencia rotas de leads.
type Handler struct {
	Repo *Repository
}

// NewHandler cria um novo Handler.
func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// Criar trata POST /leads.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var l Lead
	if err := json.NewDecoder(r.Body).Decode(&l); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if l.Nome == "" {
		http.Error(w, "nome é obrigatório", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Criar(&l); err != nil {
		http.Error(w, "erro ao salvar lead", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(l)
}

// Listar trata GET /leads.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.ListarTodos()
	if err != nil {
		http.Error(w, "erro ao listar leads", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// BuscarPorID trata GET /leads/{id}.
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	l, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "lead não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(l)
}

// Atualizar trata PUT /leads/{id}.
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	l, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "lead não encontrado", http.StatusNotFound)
		return
	}

	var payload Lead
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	l.Nome = payload.Nome
	l.Email = payload.Email
	l.Whatsapp = payload.Whatsapp
	l.Origem = payload.Origem

	if err := h.Repo.Atualizar(l); err != nil {
		http.Error(w, "erro ao atualizar lead", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(l)
}

// Deletar trata DELETE /leads/{id}.
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Deletar(uint(id)); err != nil {
		http.Error(w, "erro ao deletar lead", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
