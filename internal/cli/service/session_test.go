package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"CartKeeper/internal/cli/api"
	"CartKeeper/internal/cli/auth"
	"CartKeeper/internal/cli/model"
	"CartKeeper/internal/cli/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUsers — минимальный бэкенд коллекции users для тестов сессий.
type fakeUsers struct {
	byID    map[string]model.User
	created []model.User
	failGet bool
}

func (f *fakeUsers) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/users":
			email := r.URL.Query().Get("email")
			out := []model.User{}
			for _, u := range f.byID {
				if u.Email == email {
					out = append(out, u)
				}
			}
			_ = json.NewEncoder(w).Encode(out)
		case r.Method == http.MethodPost && r.URL.Path == "/users":
			var u model.User
			require.NoError(t, json.NewDecoder(r.Body).Decode(&u))
			f.byID[u.ID] = u
			f.created = append(f.created, u)
			_ = json.NewEncoder(w).Encode(u)
		case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/users/"):
			if f.failGet {
				http.Error(w, "boom", http.StatusInternalServerError)
				return
			}
			id := strings.TrimPrefix(r.URL.Path, "/users/")
			u, ok := f.byID[id]
			if !ok {
				http.Error(w, "not found", http.StatusNotFound)
				return
			}
			_ = json.NewEncoder(w).Encode(u)
		case r.Method == http.MethodPatch && strings.HasPrefix(r.URL.Path, "/users/"):
			id := strings.TrimPrefix(r.URL.Path, "/users/")
			u := f.byID[id]
			var patch map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&patch))
			if v, ok := patch["firstName"].(string); ok {
				u.FirstName = v
			}
			if v, ok := patch["password"].(string); ok {
				u.Password = v
			}
			if v, ok := patch["updatedAt"].(string); ok {
				u.UpdatedAt = v
			}
			f.byID[id] = u
			_ = json.NewEncoder(w).Encode(u)
		default:
			http.Error(w, "unexpected "+r.Method+" "+r.URL.Path, http.StatusTeapot)
		}
	}
}

func newManager(t *testing.T, f *fakeUsers) (*SessionManager, *repo.MemTokenStore) {
	t.Helper()
	ts := httptest.NewServer(f.handler(t))
	t.Cleanup(ts.Close)
	tokens := &repo.MemTokenStore{}
	return NewSessionManager(api.New(ts.URL, tokens), tokens), tokens
}

func TestSessionManager_Login(t *testing.T) {
	f := &fakeUsers{byID: map[string]model.User{
		"u1": {ID: "u1", Email: "demo@example.com", Password: "$2a$10$hash", FirstName: "Demo"},
	}}
	m, tokens := newManager(t, f)

	s, err := m.Login(context.Background(), model.UserLogin{Email: "demo@example.com", Password: "demo123"})
	require.NoError(t, err)
	assert.Equal(t, "u1", s.Profile.ID)
	assert.Equal(t, "Demo", s.Profile.FirstName)

	// токен сохранён и раскодируется обратно в u1
	saved, err := tokens.Load()
	require.NoError(t, err)
	assert.Equal(t, s.Token, saved)
	tok, err := auth.DecodeSessionToken(saved)
	require.NoError(t, err)
	assert.Equal(t, "u1", tok.Subject)
}

func TestSessionManager_Login_UnknownEmail(t *testing.T) {
	m, tokens := newManager(t, &fakeUsers{byID: map[string]model.User{}})

	_, err := m.Login(context.Background(), model.UserLogin{Email: "nobody@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = tokens.Load()
	assert.Error(t, err, "no token must be stored after failed login")
}

func TestSessionManager_Register_HashesPasswordAndAutoLogins(t *testing.T) {
	f := &fakeUsers{byID: map[string]model.User{}}
	m, _ := newManager(t, f)

	s, err := m.Register(context.Background(), model.UserRegistration{
		Email: "new@example.com", Password: "Passw0rd", FirstName: "N", LastName: "U", CellPhone: "+1234567890",
	})
	require.NoError(t, err)
	require.Len(t, f.created, 1)

	stored := f.created[0]
	assert.NotEqual(t, "Passw0rd", stored.Password, "plaintext must never be transmitted")
	assert.True(t, auth.VerifyPassword("Passw0rd", stored.Password))
	assert.NotEmpty(t, stored.CreatedAt)
	assert.Equal(t, "new@example.com", s.Profile.Email)
	assert.NotEmpty(t, s.Token)
}

func TestSessionManager_Restore(t *testing.T) {
	f := &fakeUsers{byID: map[string]model.User{
		"u9": {ID: "u9", Email: "demo@example.com", FirstName: "Demo"},
	}}
	m, tokens := newManager(t, f)
	require.NoError(t, tokens.Save(auth.NewSessionToken("u9").Encode()))

	s1, err := m.Restore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u9", s1.Profile.ID)

	// восстановление идемпотентно: тот же токен — тот же профиль
	s2, err := m.Restore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, s1.Profile, s2.Profile)
	assert.Equal(t, s1.Token, s2.Token)
}

func TestSessionManager_Restore_NoToken(t *testing.T) {
	m, _ := newManager(t, &fakeUsers{byID: map[string]model.User{}})
	_, err := m.Restore(context.Background())
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestSessionManager_Restore_InvalidTokenCleared(t *testing.T) {
	m, tokens := newManager(t, &fakeUsers{byID: map[string]model.User{}})
	require.NoError(t, tokens.Save("garbage"))

	_, err := m.Restore(context.Background())
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = tokens.Load()
	assert.Error(t, err, "invalid token must be cleared")
}

func TestSessionManager_Restore_FetchFailureClearsToken(t *testing.T) {
	f := &fakeUsers{byID: map[string]model.User{}, failGet: true}
	m, tokens := newManager(t, f)
	require.NoError(t, tokens.Save(auth.NewSessionToken("u1").Encode()))

	_, err := m.Restore(context.Background())
	assert.ErrorIs(t, err, ErrSessionRestore)
	_, err = tokens.Load()
	assert.Error(t, err, "token must be cleared when profile fetch fails")
}

func TestSessionManager_UpdateProfile(t *testing.T) {
	f := &fakeUsers{byID: map[string]model.User{
		"u1": {ID: "u1", Email: "demo@example.com", FirstName: "Old"},
	}}
	m, _ := newManager(t, f)

	first := "New"
	p, err := m.UpdateProfile(context.Background(), "u1", model.UserPatch{FirstName: &first})
	require.NoError(t, err)
	assert.Equal(t, "New", p.FirstName)

	// без сессии — отказ до любого сетевого вызова
	_, err = m.UpdateProfile(context.Background(), "", model.UserPatch{FirstName: &first})
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestSessionManager_UpdateProfile_HashesNewPassword(t *testing.T) {
	f := &fakeUsers{byID: map[string]model.User{"u1": {ID: "u1", Email: "d@e.c"}}}
	m, _ := newManager(t, f)

	pw := "NewPassw0rd"
	_, err := m.UpdateProfile(context.Background(), "u1", model.UserPatch{Password: &pw})
	require.NoError(t, err)
	assert.NotEqual(t, pw, f.byID["u1"].Password)
	assert.True(t, auth.VerifyPassword(pw, f.byID["u1"].Password))
}

func TestSessionManager_Logout(t *testing.T) {
	m, tokens := newManager(t, &fakeUsers{byID: map[string]model.User{}})
	require.NoError(t, tokens.Save("token_1_1700000000000_n"))
	require.NoError(t, m.Logout())
	_, err := tokens.Load()
	assert.Error(t, err)
}
