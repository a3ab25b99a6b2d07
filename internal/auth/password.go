package auth

import (
	"github.com/ananas-shop/commerce-backend/pkg/e"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword возвращает bcrypt-хэш пароля. Пароль никогда не персистится
// в открытом виде.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", e.Wrap("bcrypt hash", err)
	}

	return string(hash), nil
}

// CheckPassword сверяет пароль с хранимым хэшем.
func CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return e.Wrap("password mismatch", e.ErrAuthenticationFailed)
	}

	return nil
}
