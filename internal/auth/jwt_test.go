package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCreateAndParseToken(t *testing.T) {
	secret := "test-secret"
	token, err := CreateAccessToken(secret, "user-1", RoleAdmin, "admin@example.com", time.Minute)
	assert.NoError(t, err)

	p, err := ParseValidate(secret, token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", p.UserID)
	assert.Equal(t, RoleAdmin, p.Role)
	assert.Equal(t, "admin@example.com", p.Email)
}

func TestParseValidate_WrongSecret(t *testing.T) {
	token, err := CreateAccessToken("secret-a", "user-1", "user", "u@example.com", time.Minute)
	assert.NoError(t, err)

	_, err = ParseValidate("secret-b", token)
	assert.Error(t, err)
}

func TestParseValidate_Expired(t *testing.T) {
	token, err := CreateAccessToken("secret", "user-1", "user", "u@example.com", -time.Minute)
	assert.NoError(t, err)

	_, err = ParseValidate("secret", token)
	assert.Error(t, err)
}
