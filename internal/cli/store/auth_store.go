package store

import (
	"context"
	"sync"

	"CartKeeper/internal/cli/model"
	"CartKeeper/internal/cli/service"

	"go.uber.org/zap"
)

// AuthState — сущность «сессия»: во что клиент верит о текущем пользователе.
// IsAuthenticated истинно только при одновременном наличии User и Token.
type AuthState struct {
	User            *model.UserProfile
	Token           string
	IsAuthenticated bool
	Loading         bool
	Err             string
}

// AuthStore применяет исходы операций SessionManager к состоянию сессии.
// Каждое действие проходит три фазы: start (pending, сброс ошибки),
// success, failure. Мьютекс держится только на время применения фазы,
// никогда — через сетевой вызов.
type AuthStore struct {
	mu    sync.Mutex
	sm    *service.SessionManager
	log   *zap.SugaredLogger
	state AuthState
}

func NewAuthStore(sm *service.SessionManager, log *zap.SugaredLogger) *AuthStore {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &AuthStore{sm: sm, log: log}
}

// State возвращает копию текущего состояния.
func (s *AuthStore) State() AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	if s.state.User != nil {
		u := *s.state.User
		st.User = &u
	}
	return st
}

func (s *AuthStore) begin() {
	s.mu.Lock()
	s.state.Loading = true
	s.state.Err = ""
	s.mu.Unlock()
}

// fail фиксирует исход-неудачу. dropSession=true дополнительно обнуляет
// user/token (путь restore). Ошибка не уходит дальше границы действия.
func (s *AuthStore) fail(op string, err error, dropSession bool) {
	s.log.Warnw("auth action failed", "op", op, "error", err)
	s.mu.Lock()
	s.state.Loading = false
	s.state.Err = err.Error()
	s.state.IsAuthenticated = false
	if dropSession {
		s.state.User = nil
		s.state.Token = ""
	}
	s.mu.Unlock()
}

func (s *AuthStore) succeed(sess service.Session) {
	s.mu.Lock()
	u := sess.Profile
	s.state = AuthState{User: &u, Token: sess.Token, IsAuthenticated: true}
	s.mu.Unlock()
}

// Register регистрирует пользователя и сразу логинит его.
func (s *AuthStore) Register(ctx context.Context, reg model.UserRegistration) error {
	s.begin()
	sess, err := s.sm.Register(ctx, reg)
	if err != nil {
		s.fail("register", err, false)
		return err
	}
	s.succeed(sess)
	return nil
}

// Login выполняет вход по учётным данным.
func (s *AuthStore) Login(ctx context.Context, creds model.UserLogin) error {
	s.begin()
	sess, err := s.sm.Login(ctx, creds)
	if err != nil {
		s.fail("login", err, false)
		return err
	}
	s.succeed(sess)
	return nil
}

// Restore восстанавливает сессию из сохранённого токена. В отличие от
// login/register, неудача здесь ещё и обнуляет user/token.
func (s *AuthStore) Restore(ctx context.Context) error {
	s.begin()
	sess, err := s.sm.Restore(ctx)
	if err != nil {
		s.fail("restore", err, true)
		return err
	}
	s.succeed(sess)
	return nil
}

// UpdateProfile обновляет профиль текущего пользователя.
// Неудача не трогает существующую сессию, только поле ошибки.
func (s *AuthStore) UpdateProfile(ctx context.Context, patch model.UserPatch) error {
	s.mu.Lock()
	userID := ""
	if s.state.User != nil {
		userID = s.state.User.ID
	}
	s.mu.Unlock()

	s.begin()
	profile, err := s.sm.UpdateProfile(ctx, userID, patch)
	if err != nil {
		s.log.Warnw("auth action failed", "op", "updateProfile", "error", err)
		s.mu.Lock()
		s.state.Loading = false
		s.state.Err = err.Error()
		s.mu.Unlock()
		return err
	}
	s.mu.Lock()
	s.state.Loading = false
	s.state.User = &profile
	s.mu.Unlock()
	return nil
}

// Logout синхронно сбрасывает сессию в исходное неаутентифицированное
// состояние; ошибок не оставляет.
func (s *AuthStore) Logout() {
	_ = s.sm.Logout()
	s.mu.Lock()
	s.state = AuthState{}
	s.mu.Unlock()
}

// ClearError явно сбрасывает последнее сообщение об ошибке.
func (s *AuthStore) ClearError() {
	s.mu.Lock()
	s.state.Err = ""
	s.mu.Unlock()
}
