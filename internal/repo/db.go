package repo

import (
	"strings"

	"CartKeeper/internal/model"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// InitDB открывает БД по DSN: postgres для строк postgres://,
// иначе файл SQLite (пустой DSN — cartkeeper.db рядом с бинарём).
// Выполняет миграции и сид справочника категорий с демо-пользователем.
func InitDB(dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch {
	case strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://"):
		dial = postgres.Open(dsn)
	case dsn == "":
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: "cartkeeper.db"}
	default:
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&model.User{}, &model.ShoppingList{}, &model.ShoppingItem{}, &model.Category{}); err != nil {
		return nil, err
	}
	if err := Seed(db); err != nil {
		return nil, err
	}
	return db, nil
}

// defaultCategories — категории, с которыми магазин поставляется из коробки.
var defaultCategories = []model.Category{
	{Name: "Produce", Color: "#4caf50"},
	{Name: "Dairy", Color: "#90caf9"},
	{Name: "Meat & Seafood", Color: "#ef5350"},
	{Name: "Bakery", Color: "#ffb74d"},
	{Name: "Pantry", Color: "#a1887f"},
	{Name: "Frozen", Color: "#80deea"},
	{Name: "Beverages", Color: "#ba68c8"},
	{Name: "Household", Color: "#b0bec5"},
	{Name: "Other", Color: "#9e9e9e"},
}

// Seed наполняет пустой справочник категорий и заводит демо-пользователя.
// Повторный запуск ничего не дублирует.
func Seed(db *gorm.DB) error {
	var n int64
	if err := db.Model(&model.Category{}).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		cats := make([]model.Category, len(defaultCategories))
		copy(cats, defaultCategories)
		for i := range cats {
			cats[i].ID = uuid.NewString()
		}
		if err := db.Create(&cats).Error; err != nil {
			return err
		}
	}

	if err := db.Model(&model.User{}).Where("email = ?", "demo@example.com").Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		demo := model.User{
			ID:    uuid.NewString(),
			Email: "demo@example.com",
			// фиксированный bcrypt-хеш демо-пароля
			Password:  "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
			FirstName: "Demo",
			LastName:  "User",
			CellPhone: "+1 (555) 010-0000",
			CreatedAt: "2024-01-01T00:00:00Z",
			UpdatedAt: "2024-01-01T00:00:00Z",
		}
		if err := db.Create(&demo).Error; err != nil {
			return err
		}
	}
	return nil
}
