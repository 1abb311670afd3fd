package bootstrap

import (
	"context"

	"CartKeeper/internal/cli/api"
	"CartKeeper/internal/cli/repo"
	"CartKeeper/internal/cli/repo/fs"
	"CartKeeper/internal/cli/service"
	"CartKeeper/internal/cli/store"
	"CartKeeper/internal/cli/store/snapshot"
	"CartKeeper/internal/config"

	"go.uber.org/zap"
)

// Client — собранный клиентский стек: шлюз, менеджер сессий и сторы
// поверх одного файлового хранилища токена.
type Client struct {
	Tokens   repo.TokenStore
	Gateway  *api.Client
	Sessions *service.SessionManager
	Auth     *store.AuthStore
	Shopping *store.ShoppingStore

	log  *zap.SugaredLogger
	snap *snapshot.Store
}

// New собирает стек без снапшота: зеркало открывается в Restore,
// когда известен id пользователя.
func New(cfg *config.Config) *Client {
	tokens := fs.TokenFSStore{}
	gw := api.New(cfg.ServerURL, tokens)
	sm := service.NewSessionManager(gw, tokens)
	// сторы логируют через zap; в CLI их журнал не нужен
	log := zap.NewNop().Sugar()
	return &Client{
		Tokens:   tokens,
		Gateway:  gw,
		Sessions: sm,
		Auth:     store.NewAuthStore(sm, log),
		Shopping: store.NewShoppingStore(gw, tokens, nil, log),
		log:      log,
	}
}

// Restore восстанавливает сессию по сохранённому токену и подключает
// снапшот пользователя. Ошибки снапшота не фатальны: это кеш.
func (c *Client) Restore(ctx context.Context) error {
	if err := c.Auth.Restore(ctx); err != nil {
		return err
	}
	st := c.Auth.State()
	if st.User == nil {
		return service.ErrNotAuthenticated
	}
	snap, _, err := snapshot.OpenForUser(st.User.ID)
	if err != nil {
		return nil
	}
	if err := snap.Migrate(); err != nil {
		_ = snap.Close()
		return nil
	}
	c.snap = snap
	c.Shopping = store.NewShoppingStore(c.Gateway, c.Tokens, snap, c.log)
	return nil
}

// Snapshot возвращает открытое зеркало (nil, если Restore не выполнялся
// или открыть его не удалось).
func (c *Client) Snapshot() *snapshot.Store { return c.snap }

// Close освобождает ресурсы стека.
func (c *Client) Close() {
	if c.snap != nil {
		_ = c.snap.Close()
		c.snap = nil
	}
}
