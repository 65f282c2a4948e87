package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrUnauthorized возвращается при неверных или отсутствующих учётных данных
	ErrUnauthorized = errors.New("auth: unauthorized")

	// ErrNotConfigured возвращается, если секрет администратора не задан
	ErrNotConfigured = errors.New("auth: admin secret is not configured")
)

// Verifier проверяет предъявленный секрет администратора
type Verifier interface {
	Verify(presented string) error
}

// StaticSecret сравнивает секрет с открытым значением за постоянное время
type StaticSecret struct {
	secret []byte
}

// NewStaticSecret создает проверку по открытому секрету
func NewStaticSecret(secret string) *StaticSecret {
	return &StaticSecret{secret: []byte(secret)}
}

func (s *StaticSecret) Verify(presented string) error {
	if presented == "" {
		return ErrUnauthorized
	}
	if subtle.ConstantTimeCompare([]byte(presented), s.secret) != 1 {
		return ErrUnauthorized
	}
	return nil
}

// BcryptHash сравнивает секрет с bcrypt-хэшем
type BcryptHash struct {
	hash []byte
}

// NewBcryptHash создает проверку по хэшу; хэш должен разбираться bcrypt
func NewBcryptHash(hash string) (*BcryptHash, error) {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return nil, fmt.Errorf("%w: invalid bcrypt hash: %v", ErrNotConfigured, err)
	}
	return &BcryptHash{hash: []byte(hash)}, nil
}

func (b *BcryptHash) Verify(presented string) error {
	if presented == "" {
		return ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(b.hash, []byte(presented)); err != nil {
		return ErrUnauthorized
	}
	return nil
}

// HashSecret возвращает bcrypt-хэш секрета для конфигурации
func HashSecret(secret string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// NewVerifier выбирает проверку: хэш имеет приоритет над открытым секретом
func NewVerifier(secret, secretHash string) (Verifier, error) {
	if strings.TrimSpace(secretHash) != "" {
		return NewBcryptHash(strings.TrimSpace(secretHash))
	}
	if secret == "" {
		return nil, ErrNotConfigured
	}
	return NewStaticSecret(secret), nil
}

// BearerToken извлекает токен из заголовка Authorization
func BearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
