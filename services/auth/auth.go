package auth

import "crypto/subtle"

type AuthService interface {
	VerifyPassword(password string) bool
}

// DefaultAuthService checks a single shared password. There are no
// sessions; the check only gates the UI.
type DefaultAuthService struct {
	Password string
}

func NewAuthService(password string) *DefaultAuthService {
	return &DefaultAuthService{Password: password}
}

func (s *DefaultAuthService) VerifyPassword(password string) bool {
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.Password)) == 1
}
