package handlers

import (
	"net/http"

	"CartKeeper/internal/model"
	"CartKeeper/internal/repo"

	"go.uber.org/zap"
)

type CategoryHandler struct {
	categories *repo.CategoryRepository
	logger     *zap.SugaredLogger
}

func NewCategoryHandler(categories *repo.CategoryRepository, logger *zap.SugaredLogger) *CategoryHandler {
	return &CategoryHandler{categories: categories, logger: logger}
}

// List отдаёт справочник категорий; коллекция read-only и наполняется сидом.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	cats, err := h.categories.All(r.Context())
	if err != nil {
		h.logger.Errorw("list categories", "error", err)
		writeRepoError(w, err)
		return
	}
	if cats == nil {
		cats = []model.Category{}
	}
	writeJSON(w, http.StatusOK, cats)
}
