package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, expiresAt, err := GenerateJWT("member-1", Claims{Role: "OrgMember", OrganizationID: "org-1", MemberRole: "admin"}, "secret", time.Hour, "kamp-test")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := ParseAndValidateJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "member-1", claims.Subject)
	assert.Equal(t, "OrgMember", claims.Role)
	assert.Equal(t, "org-1", claims.OrganizationID)
	assert.Equal(t, "admin", claims.MemberRole)
	assert.Equal(t, "kamp-test", claims.Issuer)
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	token, _, err := GenerateJWT("u1", Claims{Role: "Individual"}, "secret", time.Hour, "kamp-test")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, "other-secret")
	assert.True(t, errors.Is(err, jwt.ErrTokenSignatureInvalid))
}

func TestParseJWTRejectsExpired(t *testing.T) {
	token, _, err := GenerateJWT("u1", Claims{Role: "Individual"}, "secret", -time.Minute, "kamp-test")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, "secret")
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)
	assert.True(t, CheckPasswordHash("hunter22", hash))
	assert.False(t, CheckPasswordHash("hunter23", hash))
}
