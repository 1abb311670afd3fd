package handlers

import (
	"encoding/json"
	"net/http"

	"CartKeeper/internal/model"
	"CartKeeper/internal/repo"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ShoppingHandler struct {
	shopping *repo.ShoppingRepository
	logger   *zap.SugaredLogger
}

func NewShoppingHandler(shopping *repo.ShoppingRepository, logger *zap.SugaredLogger) *ShoppingHandler {
	return &ShoppingHandler{shopping: shopping, logger: logger}
}

// Lists отдаёт списки, с фильтром ?userId= при наличии.
func (h *ShoppingHandler) Lists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.shopping.Lists(r.Context(), r.URL.Query().Get("userId"))
	if err != nil {
		h.logger.Errorw("list shoppingLists", "error", err)
		writeRepoError(w, err)
		return
	}
	if lists == nil {
		lists = []model.ShoppingList{}
	}
	writeJSON(w, http.StatusOK, lists)
}

func (h *ShoppingHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	var l model.ShoppingList
	if err := json.NewDecoder(r.Body).Decode(&l); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if err := h.shopping.CreateList(r.Context(), &l); err != nil {
		h.logger.Errorw("create list", "error", err)
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, l)
}

func (h *ShoppingHandler) GetList(w http.ResponseWriter, r *http.Request) {
	l, err := h.shopping.GetList(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

func (h *ShoppingHandler) PatchList(w http.ResponseWriter, r *http.Request) {
	l, err := h.shopping.GetList(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeRepoError(w, err)
		return
	}
	if err := json.NewDecoder(r.Body).Decode(l); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if err := h.shopping.SaveList(r.Context(), l); err != nil {
		h.logger.Errorw("save list", "error", err)
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

// DeleteList удаляет только список; каскад по позициям делает клиент.
func (h *ShoppingHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := h.shopping.GetList(r.Context(), id); err != nil {
		writeRepoError(w, err)
		return
	}
	if err := h.shopping.DeleteList(r.Context(), id); err != nil {
		h.logger.Errorw("delete list", "error", err)
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{})
}

// Items отдаёт позиции, с фильтром ?listId= при наличии.
func (h *ShoppingHandler) Items(w http.ResponseWriter, r *http.Request) {
	items, err := h.shopping.Items(r.Context(), r.URL.Query().Get("listId"))
	if err != nil {
		h.logger.Errorw("list shoppingItems", "error", err)
		writeRepoError(w, err)
		return
	}
	if items == nil {
		items = []model.ShoppingItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ShoppingHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var it model.ShoppingItem
	if err := json.NewDecoder(r.Body).Decode(&it); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if err := h.shopping.CreateItem(r.Context(), &it); err != nil {
		h.logger.Errorw("create item", "error", err)
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, it)
}

func (h *ShoppingHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	it, err := h.shopping.GetItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

func (h *ShoppingHandler) PatchItem(w http.ResponseWriter, r *http.Request) {
	it, err := h.shopping.GetItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeRepoError(w, err)
		return
	}
	if err := json.NewDecoder(r.Body).Decode(it); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if err := h.shopping.SaveItem(r.Context(), it); err != nil {
		h.logger.Errorw("save item", "error", err)
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

func (h *ShoppingHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := h.shopping.GetItem(r.Context(), id); err != nil {
		writeRepoError(w, err)
		return
	}
	if err := h.shopping.DeleteItem(r.Context(), id); err != nil {
		h.logger.Errorw("delete item", "error", err)
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{})
}
