package services

import (
	"errors"
	"fmt"
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

const (
	BCryptCost = 12

	MinPasswordLength = 12
	MaxPasswordLength = 72 // bcrypt truncates beyond 72 bytes
)

var (
	ErrPasswordEmpty       = errors.New("password cannot be empty")
	ErrPasswordTooShort    = fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	ErrPasswordTooLong     = fmt.Errorf("password must not exceed %d characters", MaxPasswordLength)
	ErrPasswordNoUppercase = errors.New("password must contain at least one uppercase letter")
	ErrPasswordNoLowercase = errors.New("password must contain at least one lowercase letter")
	ErrPasswordNoNumber    = errors.New("password must contain at least one number")
)

// Character-class rules checked in order after the length rules.
var passwordRules = []struct {
	pattern *regexp.Regexp
	err     error
}{
	{regexp.MustCompile(`[A-Z]`), ErrPasswordNoUppercase},
	{regexp.MustCompile(`[a-z]`), ErrPasswordNoLowercase},
	{regexp.MustCompile(`[0-9]`), ErrPasswordNoNumber},
}

// PasswordService hashes and verifies underwriter credentials.
type PasswordService struct {
	cost int
}

func NewPasswordService() PasswordServiceInterface {
	return &PasswordService{cost: BCryptCost}
}

// ValidatePassword enforces the credential policy. Returns the first
// violated rule's sentinel error.
func (ps *PasswordService) ValidatePassword(password string) error {
	switch {
	case password == "":
		return ErrPasswordEmpty
	case len(password) < MinPasswordLength:
		return ErrPasswordTooShort
	case len(password) > MaxPasswordLength:
		return ErrPasswordTooLong
	}

	for _, rule := range passwordRules {
		if !rule.pattern.MatchString(password) {
			return rule.err
		}
	}
	return nil
}

// HashPassword validates then hashes. Weak passwords never reach bcrypt.
func (ps *PasswordService) HashPassword(password string) (string, error) {
	if err := ps.ValidatePassword(password); err != nil {
		return "", fmt.Errorf("password validation failed: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), ps.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// ComparePassword reports whether the plain password matches the stored hash.
func (ps *PasswordService) ComparePassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
