package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManager_Validation(t *testing.T) {
	_, err := NewManager("", time.Minute)
	assert.Error(t, err)

	_, err = NewManager("key", 0)
	assert.Error(t, err)
}

func TestManager_RoundTrip(t *testing.T) {
	m, err := NewManager("secret", time.Minute)
	require.NoError(t, err)

	id := uuid.New()
	token, ttl, err := m.NewJWT(id)
	require.NoError(t, err)
	assert.Equal(t, time.Minute, ttl)

	subject, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, id.String(), subject)
}

func TestManager_ParseRejectsForeignKey(t *testing.T) {
	issuer, _ := NewManager("one", time.Minute)
	parser, _ := NewManager("two", time.Minute)

	token, _, err := issuer.NewJWT(uuid.New())
	require.NoError(t, err)

	_, err = parser.Parse(token)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestManager_ParseExpired(t *testing.T) {
	m, _ := NewManager("secret", -time.Minute)

	token, _, err := m.NewJWT(uuid.New())
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}
