package service

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestAdminAuthorizer_StaticToken(t *testing.T) {
	a, err := NewAdminAuthorizer("super-secret-admin", "", time.Hour)
	require.NoError(t, err)

	assert.True(t, a.IsAdmin("super-secret-admin"))
	assert.True(t, a.IsAdmin("  super-secret-admin "))
	assert.False(t, a.IsAdmin("super-secret"))
	assert.False(t, a.IsAdmin(""))
}

func TestAdminAuthorizer_LongToken(t *testing.T) {
	token := strings.Repeat("x", 80)
	a, err := NewAdminAuthorizer(token, "", time.Hour)
	require.NoError(t, err)

	assert.True(t, a.IsAdmin(token))
	assert.False(t, a.IsAdmin(token[:72]))
}

func TestAdminAuthorizer_RejectsRandomTokensQuickly(t *testing.T) {
	a, err := NewAdminAuthorizer("super-secret-admin", "", time.Hour)
	require.NoError(t, err)

	start := time.Now()
	for i := 0; i < 1000; i++ {
		assert.False(t, a.IsAdmin(uuid.NewString()))
	}
	assert.Less(t, time.Since(start), time.Second)
}

func TestAdminAuthorizer_DigestKeyPerInstance(t *testing.T) {
	a, err := NewAdminAuthorizer("super-secret-admin", "", time.Hour)
	require.NoError(t, err)
	b, err := NewAdminAuthorizer("super-secret-admin", "", time.Hour)
	require.NoError(t, err)

	assert.NotEqual(t, a.tokenDigest, b.tokenDigest)
	assert.True(t, b.IsAdmin("super-secret-admin"))
}

func TestAdminAuthorizer_IssueAndVerify(t *testing.T) {
	a, err := NewAdminAuthorizer("", testSecret, time.Hour)
	require.NoError(t, err)

	token, exp, err := a.Issue("dashboard")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)
	assert.True(t, a.IsAdmin(token))

	other, err := NewAdminAuthorizer("", strings.Repeat("z", 32), time.Hour)
	require.NoError(t, err)
	assert.False(t, other.IsAdmin(token))
}

func TestAdminAuthorizer_RejectsWrongClaims(t *testing.T) {
	a, err := NewAdminAuthorizer("", testSecret, time.Hour)
	require.NoError(t, err)

	sign := func(claims jwt.MapClaims) string {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)
		return s
	}

	assert.False(t, a.IsAdmin(sign(jwt.MapClaims{"role": "guest", "exp": time.Now().Add(time.Hour).Unix()})))
	assert.False(t, a.IsAdmin(sign(jwt.MapClaims{"role": RoleAdmin, "exp": time.Now().Add(-time.Minute).Unix()})))
	assert.False(t, a.IsAdmin(sign(jwt.MapClaims{"role": RoleAdmin})))
}

func TestAdminAuthorizer_IssueWithoutSecret(t *testing.T) {
	a, err := NewAdminAuthorizer("super-secret-admin", "", time.Hour)
	require.NoError(t, err)

	_, _, err = a.Issue("dashboard")
	assert.ErrorIs(t, err, ErrSigningDisabled)
}

func TestAdminAuthorizer_BothMechanisms(t *testing.T) {
	a, err := NewAdminAuthorizer("super-secret-admin", testSecret, time.Hour)
	require.NoError(t, err)

	token, _, err := a.Issue("dashboard")
	require.NoError(t, err)

	assert.True(t, a.IsAdmin(token))
	assert.True(t, a.IsAdmin("super-secret-admin"))
	assert.False(t, a.IsAdmin("a.b.c"))
}
