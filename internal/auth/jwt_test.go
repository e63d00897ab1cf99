package auth

import (
	"testing"
	"time"

	"github.com/DREXATROLL/muzrent-pro/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_GenerateAndValidate(t *testing.T) {
	m := NewJWTManager("secret", "muzrent-auth", time.Hour)

	token, err := m.Generate("u1", domain.RoleAdmin)
	require.NoError(t, err)

	claims, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestJWTManager_Validate_WrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret", "", time.Hour).Generate("u1", domain.RoleUser)
	require.NoError(t, err)

	_, err = NewJWTManager("other", "", time.Hour).Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTManager_Validate_Expired(t *testing.T) {
	m := NewJWTManager("secret", "", -time.Minute)

	token, err := m.Generate("u1", domain.RoleUser)
	require.NoError(t, err)

	_, err = m.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTManager_Validate_WrongIssuer(t *testing.T) {
	token, err := NewJWTManager("secret", "someone-else", time.Hour).Generate("u1", domain.RoleUser)
	require.NoError(t, err)

	_, err = NewJWTManager("secret", "muzrent-auth", time.Hour).Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTManager_Validate_RejectsNoneAlg(t *testing.T) {
	claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewJWTManager("secret", "", time.Hour).Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTManager_Validate_MissingSubject(t *testing.T) {
	m := NewJWTManager("secret", "", time.Hour)

	token, err := m.Generate("", domain.RoleUser)
	require.NoError(t, err)

	_, err = m.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
