package jwt

import (
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken(t *testing.T) {
	jwtAuth := jwtauth.New("HS256", []byte("secret"), nil)
	tok, err := NewToken(jwtAuth, time.Hour, "manager")
	require.NoError(t, err)

	sub, err := VerifyToken(jwtAuth, tok)
	assert.NoError(t, err)
	assert.Equal(t, "manager", sub)

	_, err = VerifyToken(jwtauth.New("HS256", []byte("other"), nil), tok)
	assert.Error(t, err)
}

func TestExpiredToken(t *testing.T) {
	jwtAuth := jwtauth.New("HS256", []byte("secret"), nil)
	tok, err := NewToken(jwtAuth, -time.Minute, "manager")
	require.NoError(t, err)

	_, err = VerifyToken(jwtAuth, tok)
	assert.Error(t, err)
}
