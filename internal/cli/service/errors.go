package service

import "errors"

// Ошибки аутентификационного слоя. Действия сторов не пробрасывают их
// дальше своей границы: любая из них оседает в поле error стора.
var (
	// ErrNotAuthenticated — операция требует активной сессии, а её нет.
	ErrNotAuthenticated = errors.New("user not authenticated")

	// ErrInvalidCredentials — по email не нашлось пользователя.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNoToken — в долговременном хранилище нет токена.
	ErrNoToken = errors.New("no token found")

	// ErrInvalidToken — сохранённая строка не распознана как токен.
	ErrInvalidToken = errors.New("invalid token")

	// ErrSessionRestore — профиль по токену получить не удалось; токен стёрт.
	ErrSessionRestore = errors.New("failed to restore session")

	// ErrRegistration — удалённое создание пользователя не удалось.
	ErrRegistration = errors.New("registration failed")
)
