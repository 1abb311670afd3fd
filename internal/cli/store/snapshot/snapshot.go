package snapshot

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	"CartKeeper/internal/cli/model"

	_ "modernc.org/sqlite"
)

// Store — локальное зеркало списков и позиций в SQLite. Пишется после
// каждого успешного fetch и читается командой status, когда бэкенд
// недоступен. Источником истины остаётся удалённое хранилище.
type Store struct {
	db *sql.DB
}

// OpenForUser открывает (и при необходимости создаёт) файл БД,
// сегрегированный по id пользователя. Базовый каталог можно
// переопределить через CLIENT_DB_PATH.
func OpenForUser(userID string) (*Store, string, error) {
	if userID == "" {
		return nil, "", errors.New("empty user id for snapshot store")
	}
	base := os.Getenv("CLIENT_DB_PATH")
	if base == "" {
		cfgDir, err := os.UserConfigDir()
		if err != nil {
			return nil, "", err
		}
		base = filepath.Join(cfgDir, "CartKeeper", "users")
	}
	dir := filepath.Join(base, userID)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, "", err
	}
	dbPath := filepath.Join(dir, "snapshot.sqlite")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, "", err
	}
	s := &Store{db: db}
	return s, dbPath, nil
}

// Close closes the underlying DB.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Migrate ensures the two mirror tables exist.
func (s *Store) Migrate() error {
	const ddl = `
CREATE TABLE IF NOT EXISTS lists (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  name TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS items (
  id TEXT PRIMARY KEY,
  list_id TEXT NOT NULL,
  name TEXT NOT NULL,
  quantity INTEGER NOT NULL,
  category TEXT NOT NULL DEFAULT '',
  completed INTEGER NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_items_list_id ON items(list_id);
`
	_, err := s.db.Exec(ddl)
	return err
}

// ReplaceLists перезаписывает зеркало списков целиком.
func (s *Store) ReplaceLists(lists []model.ShoppingList) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if _, err := tx.Exec(`DELETE FROM lists`); err != nil {
		return err
	}
	for _, l := range lists {
		_, err := tx.Exec(`INSERT INTO lists(id, user_id, name, description, created_at, updated_at) VALUES(?, ?, ?, ?, ?, ?)`,
			l.ID, l.UserID, l.Name, l.Description, l.CreatedAt, l.UpdatedAt)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ReplaceItems перезаписывает зеркало позиций одного списка (snapshot-merge,
// как и в кеше: позиции других списков не трогаем).
func (s *Store) ReplaceItems(listID string, items []model.ShoppingItem) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if _, err := tx.Exec(`DELETE FROM items WHERE list_id = ?`, listID); err != nil {
		return err
	}
	for _, it := range items {
		completed := 0
		if it.Completed {
			completed = 1
		}
		_, err := tx.Exec(`INSERT INTO items(id, list_id, name, quantity, category, completed, created_at, updated_at) VALUES(?, ?, ?, ?, ?, ?, ?, ?)`,
			it.ID, it.ListID, it.Name, it.Quantity, it.Category, completed, it.CreatedAt, it.UpdatedAt)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Summary возвращает количество списков и позиций в зеркале.
func (s *Store) Summary() (lists int, items int, err error) {
	if err = s.db.QueryRow(`SELECT COUNT(*) FROM lists`).Scan(&lists); err != nil {
		return 0, 0, err
	}
	if err = s.db.QueryRow(`SELECT COUNT(*) FROM items`).Scan(&items); err != nil {
		return 0, 0, err
	}
	return lists, items, nil
}

// Lists возвращает зеркальные списки, отсортированные по имени.
func (s *Store) Lists() ([]model.ShoppingList, error) {
	rows, err := s.db.Query(`SELECT id, user_id, name, description, created_at, updated_at FROM lists ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []model.ShoppingList
	for rows.Next() {
		var l model.ShoppingList
		if err := rows.Scan(&l.ID, &l.UserID, &l.Name, &l.Description, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		res = append(res, l)
	}
	return res, rows.Err()
}
