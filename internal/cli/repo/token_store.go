package repo

// TokenStore описывает абстракцию долговременного хранилища auth-токена на клиенте.
// Отсутствие сохранённого токена означает «сессии нет».
type TokenStore interface {
	Save(token string) error
	Load() (string, error)
	Clear() error
}
