package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// tokenPrefix — первый сегмент каждого токена.
const tokenPrefix = "token"

// ErrMalformedToken возвращается Decode, когда строка не похожа на наш токен.
var ErrMalformedToken = errors.New("malformed session token")

// SessionToken — структурированное представление bearer-токена вида
// token_<subject>_<issuedAtMillis>_<nonce>. Сервер трактует значение как
// непрозрачную строку; разбирает его только клиент, чтобы восстановить
// subject (id пользователя). Это НЕ криптографический креденшл:
// подписи нет, подделку токена ничто не мешает.
type SessionToken struct {
	Subject  string    // id пользователя; не может содержать '_'
	IssuedAt time.Time // момент выпуска с точностью до миллисекунды
	Nonce    string    // случайный суффикс, различающий токены одного пользователя
}

// NewSessionToken выпускает токен для пользователя userID с текущим временем.
func NewSessionToken(userID string) SessionToken {
	return SessionToken{
		Subject:  userID,
		IssuedAt: time.Now(),
		Nonce:    strings.ReplaceAll(uuid.NewString(), "-", "")[:9],
	}
}

// Encode сериализует токен в строковую форму для заголовка Authorization.
func (t SessionToken) Encode() string {
	return fmt.Sprintf("%s_%s_%d_%s", tokenPrefix, t.Subject, t.IssuedAt.UnixMilli(), t.Nonce)
}

// DecodeSessionToken разбирает строковую форму токена.
// Subject с символом '_' закодировать нельзя, поэтому ровно четыре сегмента.
func DecodeSessionToken(raw string) (SessionToken, error) {
	parts := strings.Split(raw, "_")
	if len(parts) != 4 || parts[0] != tokenPrefix || parts[1] == "" {
		return SessionToken{}, ErrMalformedToken
	}
	ms, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return SessionToken{}, ErrMalformedToken
	}
	return SessionToken{
		Subject:  parts[1],
		IssuedAt: time.UnixMilli(ms),
		Nonce:    parts[3],
	}, nil
}
