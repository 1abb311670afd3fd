package handlers

import (
	"encoding/json"
	"net/http"

	"CartKeeper/internal/model"
	"CartKeeper/internal/repo"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	users  *repo.UserRepository
	logger *zap.SugaredLogger
}

func NewUserHandler(users *repo.UserRepository, logger *zap.SugaredLogger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

// List отдаёт коллекцию users, с фильтром ?email= при наличии.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		users []model.User
		err   error
	)
	if email := r.URL.Query().Get("email"); email != "" {
		users, err = h.users.FindByEmail(r.Context(), email)
	} else {
		users, err = h.users.All(r.Context())
	}
	if err != nil {
		h.logger.Errorw("list users", "error", err)
		writeRepoError(w, err)
		return
	}
	if users == nil {
		users = []model.User{}
	}
	writeJSON(w, http.StatusOK, users)
}

// Create принимает пользователя с клиентским id как есть.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var u model.User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if err := h.users.Create(r.Context(), &u); err != nil {
		h.logger.Errorw("create user", "error", err)
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.users.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// Patch выполняет частичный merge: тело накладывается на загруженную запись.
func (h *UserHandler) Patch(w http.ResponseWriter, r *http.Request) {
	u, err := h.users.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeRepoError(w, err)
		return
	}
	if err := json.NewDecoder(r.Body).Decode(u); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if err := h.users.Save(r.Context(), u); err != nil {
		h.logger.Errorw("save user", "error", err)
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}
