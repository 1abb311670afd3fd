package auth

import (
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^\+?[\d\s\-\(\)]{10,}$`)
)

// ValidEmail проверяет адрес на минимально разумную форму.
func ValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// ValidPhone проверяет номер телефона (10+ символов из цифр и разделителей).
func ValidPhone(phone string) bool {
	return phoneRe.MatchString(phone)
}

// ValidName — имя/фамилия не короче двух непробельных символов.
func ValidName(name string) bool {
	return len(strings.TrimSpace(name)) >= 2
}

// ValidatePassword возвращает список претензий к паролю; пустой список — пароль ок.
func ValidatePassword(password string) []string {
	var errs []string
	if len(password) < 8 {
		errs = append(errs, "password must be at least 8 characters long")
	}
	if !strings.ContainsAny(password, "abcdefghijklmnopqrstuvwxyz") {
		errs = append(errs, "password must contain at least one lowercase letter")
	}
	if !strings.ContainsAny(password, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		errs = append(errs, "password must contain at least one uppercase letter")
	}
	if !strings.ContainsAny(password, "0123456789") {
		errs = append(errs, "password must contain at least one number")
	}
	return errs
}
