package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"CartKeeper/internal/cli/repo"

	"github.com/google/uuid"
)

// RemoteError — любая транспортная или HTTP-ошибка шлюза.
// Message всегда содержит лучшее доступное человекочитаемое описание.
type RemoteError struct {
	Status  int // 0 для транспортных ошибок
	Message string
}

func (e *RemoteError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.Status)
}

// Client — тонкий шлюз к удалённым коллекциям (users, shoppingLists,
// shoppingItems, categories). Никаких ретраев и кеширования: ошибка
// уходит вызывающему действию как есть. Токен читается из долговременного
// хранилища в момент каждого вызова.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  repo.TokenStore

	// переопределяются в тестах
	now   func() time.Time
	newID func() string
}

// New создаёт шлюз поверх базового URL бэкенда.
func New(baseURL string, tokens repo.TokenStore) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		tokens:  tokens,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// stamp возвращает текущее время в формате хранилища (RFC3339).
func (c *Client) stamp() string {
	return c.now().UTC().Format(time.RFC3339)
}

// do выполняет один запрос: JSON-тело при payload != nil, разбор ответа в out != nil.
// Bearer-заголовок добавляется, только если токен сейчас сохранён.
func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return &RemoteError{Message: "encoding request: " + err.Error()}
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &RemoteError{Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	if tok, err := c.tokens.Load(); err == nil && tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &RemoteError{Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= http.StatusMultipleChoices {
		msg := strings.TrimSpace(string(raw))
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &RemoteError{Status: resp.StatusCode, Message: msg}
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return &RemoteError{Message: "decoding response: " + err.Error()}
		}
	}
	return nil
}
