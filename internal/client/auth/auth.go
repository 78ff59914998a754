// Package auth реализует клиентскую часть авторизации: пароль хэшируется
// и сверяется с константой на стороне клиента, сервер в проверке не
// участвует. Полученный токен — просто хэш текущего времени; он служит
// маркером «авторизован», а не криптографическим доказательством.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"sync"
	"time"
)

// Service хранит состояние авторизации в памяти процесса
// (аналог session storage браузера: живёт до Logout или завершения).
type Service struct {
	mu            sync.Mutex
	passwordHash  string
	authenticated bool
	token         string
}

// NewService создаёт сервис авторизации. passwordHash — hex-представление
// SHA-256 хэша админского пароля.
func NewService(passwordHash string) *Service {
	return &Service{passwordHash: passwordHash}
}

// Login сверяет SHA-256 хэш пароля с константой. При совпадении помечает
// сессию авторизованной и выпускает токен — хэш текущего времени.
// При несовпадении состояние не меняется.
func (s *Service) Login(password string) bool {
	hashed := hashHex([]byte(password))

	s.mu.Lock()
	defer s.mu.Unlock()

	if hashed != s.passwordHash {
		return false
	}

	s.authenticated = true
	s.token = hashHex([]byte(strconv.FormatInt(time.Now().UnixNano(), 10)))
	return true
}

// Logout сбрасывает флаг авторизации и токен.
func (s *Service) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = false
	s.token = ""
}

// IsAuthenticated сообщает, авторизована ли сессия.
func (s *Service) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// Token возвращает текущий bearer-токен или пустую строку.
func (s *Service) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func hashHex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
