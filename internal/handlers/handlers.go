package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"CartKeeper/internal/middleware"
	"CartKeeper/internal/repo"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	users *repo.UserRepository,
	shopping *repo.ShoppingRepository,
	categories *repo.CategoryRepository,
	logger *zap.SugaredLogger,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithBearer)

	// Handlers
	userHandler := NewUserHandler(users, logger)
	shoppingHandler := NewShoppingHandler(shopping, logger)
	categoryHandler := NewCategoryHandler(categories, logger)

	// Users
	r.Get("/users", userHandler.List)
	r.Post("/users", userHandler.Create)
	r.Get("/users/{id}", userHandler.Get)
	r.Patch("/users/{id}", userHandler.Patch)

	// Shopping lists
	r.Get("/shoppingLists", shoppingHandler.Lists)
	r.Post("/shoppingLists", shoppingHandler.CreateList)
	r.Get("/shoppingLists/{id}", shoppingHandler.GetList)
	r.Patch("/shoppingLists/{id}", shoppingHandler.PatchList)
	r.Delete("/shoppingLists/{id}", shoppingHandler.DeleteList)

	// Shopping items
	r.Get("/shoppingItems", shoppingHandler.Items)
	r.Post("/shoppingItems", shoppingHandler.CreateItem)
	r.Get("/shoppingItems/{id}", shoppingHandler.GetItem)
	r.Patch("/shoppingItems/{id}", shoppingHandler.PatchItem)
	r.Delete("/shoppingItems/{id}", shoppingHandler.DeleteItem)

	// Categories (read-only)
	r.Get("/categories", categoryHandler.List)

	return &Handler{Router: r}
}

// writeJSON сериализует ответ; ошибки сериализации здесь уже не спасти.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeRepoError маппит ошибку хранилища в HTTP-статус.
func writeRepoError(w http.ResponseWriter, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	http.Error(w, "internal error", http.StatusInternalServerError)
}
