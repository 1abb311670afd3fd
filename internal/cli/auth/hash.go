package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword хеширует пароль перед отправкой в удалённое хранилище.
// Открытый пароль никогда не покидает клиента.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword сверяет открытый пароль с bcrypt-хешем.
func VerifyPassword(password, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
