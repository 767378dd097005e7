package security

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher peppers passwords with an injected secret before
// bcrypt. The secret comes from configuration, never from package
// state, and construction fails when it is absent so startup stops
// early instead of hashing with an empty pepper.
type PasswordHasher struct {
	pepper []byte
}

func NewPasswordHasher(pepper string) (*PasswordHasher, error) {
	if pepper == "" {
		return nil, errors.New("password pepper must not be empty")
	}
	return &PasswordHasher{pepper: []byte(pepper)}, nil
}

func (h *PasswordHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(h.peppered(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h *PasswordHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), h.peppered(password)) == nil
}

func (h *PasswordHasher) peppered(password string) []byte {
	return append([]byte(password), h.pepper...)
}
