// internal/usuario/handler.go
package usuario

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/InstitutoAvance/api-comercial/internal/auth"
	"github.com/InstitutoAvance/api-comercial/internal/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// request DTOs
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type criarUsuarioRequest struct {
	Nome         string `json:"nome"`
	Sobrenome    string `json:"sobrenome"`
	Email        string `json:"email"`
	Telefone     string `json:"telefone"`
	Senha        string `json:"senha"`
	Cargo        string `json:"cargo"`
	Nivel        string `json:"nivel"`
	SupervisorID *uint  `json:"supervisorId"`
	IsAdmin      bool   `json:"isAdmin"`
}

// Handler encapsula DB e repository.
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

// NewHandler retorna um handler inicializado.
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

// Login gera um JWT para credenciais válidas.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	user, err := h.Repository.BuscarPorEmail(h.DB, req.Login)
	if err != nil {
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}

	if !utils.CheckSenha(user.Senha, req.Password) {
		http.Error(w, "senha incorreta", http.StatusUnauthorized)
		return
	}

	token, err := auth.GerarToken(user.ID, user.Cargo, user.IsAdmin)
	if err != nil {
		http.Error(w, "erro ao gerar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}

// CriarUsuario cadastra vendedor, SDR ou supervisor.
func (h *Handler) CriarUsuario(w http.ResponseWriter, r *http.Request) {
	var req criarUsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if !CargoValido(req.Cargo) {
		http.Error(w, "cargo inválido", http.StatusBadRequest)
		return
	}

	hash, err := utils.HashSenha(req.Senha)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	u := Usuario{
		Nome:         req.Nome,
		Sobrenome:    req.Sobrenome,
		Email:        req.Email,
		Telefone:     req.Telefone,
		Senha:        hash,
		Cargo:        req.Cargo,
		Nivel:        req.Nivel,
		SupervisorID: req.SupervisorID,
		IsAdmin:      req.IsAdmin,
	}

	if err := h.Repository.Salvar(h.DB, &u); err != nil {
		http.Error(w, "erro ao salvar usuário", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(u)
}

// ListarUsuarios retorna todos ou apenas o próprio registro.
func (h *Handler) ListarUsuarios(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.CtxUserID).(uint)
	isAdmin := r.Context().Value(auth.CtxIsAdmin).(bool)

	if isAdmin {
		var (
			usuarios []Usuario
			err      error
		)
		if cargo := r.URL.Query().Get("cargo"); cargo != "" {
			usuarios, err = h.Repository.ListarPorCargo(h.DB, cargo)
		} else {
			usuarios, err = h.Repository.ListarTodos(h.DB)
		}
		if err != nil {
			http.Error(w, "erro ao listar usuários", http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(usuarios)
		return
	}

	// não-admin vê apenas o próprio
	obj, err := h.Repository.BuscarPorID(h.DB, userID)
	if err != nil {
		http.Error(w, "usuário não encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode([]Usuario{*obj})
}

// BuscarPorID retorna um usuário pelo ID.
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.CtxUserID).(uint)
	isAdmin := r.Context().Value(auth.CtxIsAdmin).(bool)

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if !isAdmin && uint(id) != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	obj, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "usuário não encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(obj)
}

// AtualizarUsuario altera dados de um usuário existente.
func (h *Handler) AtualizarUsuario(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.CtxUserID).(uint)
	isAdmin := r.Context().Value(auth.CtxIsAdmin).(bool)

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if !isAdmin && uint(id) != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	var dados Usuario
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Atualizar(h.DB, uint(id), &dados); err != nil {
		http.Error(w, "erro ao atualizar usuário", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("usuário atualizado com sucesso"))
}

// DeletarUsuario remove um usuário.
func (h *Handler) DeletarUsuario(w http.ResponseWriter, r *http.Request) {
	isAdmin := r.Context().Value(auth.CtxIsAdmin).(bool)

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if !isAdmin {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao deletar usuário", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
