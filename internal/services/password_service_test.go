package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePassword(t *testing.T) {
	service := NewPasswordService()

	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"valid password", "Underwrite2025ok", nil},
		{"empty", "", ErrPasswordEmpty},
		{"too short", "Short1a", ErrPasswordTooShort},
		{"too long", "A1" + strings.Repeat("a", 75), ErrPasswordTooLong},
		{"no uppercase", "alllowercase123", ErrPasswordNoUppercase},
		{"no lowercase", "ALLUPPERCASE123", ErrPasswordNoLowercase},
		{"no number", "NoDigitsAtAllHere", ErrPasswordNoNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePassword(tt.password)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHashAndComparePassword(t *testing.T) {
	service := NewPasswordService()

	hash, err := service.HashPassword("Underwrite2025ok")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "Underwrite2025ok", hash)

	assert.True(t, service.ComparePassword("Underwrite2025ok", hash))
	assert.False(t, service.ComparePassword("WrongPassword99x", hash))
}

func TestHashPassword_RejectsWeakInput(t *testing.T) {
	service := NewPasswordService()

	_, err := service.HashPassword("weak")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}
