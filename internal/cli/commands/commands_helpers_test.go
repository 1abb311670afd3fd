package commands

import (
	"bytes"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"CartKeeper/internal/config"
	"CartKeeper/internal/handlers"
	"CartKeeper/internal/model"
	"CartKeeper/internal/repo"

	"go.uber.org/zap"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// withTempConfig переопределяет пользовательские каталоги на время теста,
// чтобы артефакты (токен/снапшот) создавались в temp.
func withTempConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	db := filepath.Join(dir, "db")
	_ = os.MkdirAll(db, 0o700)
	t.Setenv("CLIENT_DB_PATH", db)
	t.Setenv("TOKEN_FILE", filepath.Join(dir, "auth_token"))
	return dir
}

// перехват stdout на время теста
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}

// newTestBackend поднимает настоящий коллекционный бэкенд поверх
// in-memory SQLite, чтобы команды гонялись против реальных хендлеров.
func newTestBackend(t *testing.T) *config.Config {
	t.Helper()
	// отдельный файл на тест: in-memory БД не переживает смену соединения в пуле
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: filepath.Join(t.TempDir(), "backend.db")}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.ShoppingList{}, &model.ShoppingItem{}, &model.Category{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	if err := repo.Seed(db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	h := handlers.NewHandler(
		repo.NewUserRepository(db),
		repo.NewShoppingRepository(db),
		repo.NewCategoryRepository(db),
		zap.NewNop().Sugar(),
	)
	ts := httptest.NewServer(h.Router)
	t.Cleanup(ts.Close)
	return &config.Config{ServerURL: ts.URL}
}
