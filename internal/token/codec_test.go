package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-secret"

// mintToken signs a token the way the external identity flow does.
func mintToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return raw
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"id":    int64(42),
		"nome":  "Maria Silva",
		"email": "maria@example.com",
		"admin": false,
		"foto":  "https://fotos.example.com/maria.jpg",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
}

func TestNewCodec_EmptySecret(t *testing.T) {
	_, err := NewCodec("")
	require.Error(t, err)
}

func TestVerify_ValidToken(t *testing.T) {
	codec, err := NewCodec(testSecret)
	require.NoError(t, err)

	raw := mintToken(t, testSecret, validClaims())

	verified, err := codec.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, verified.Raw())
}

func TestVerify_InvalidTokens(t *testing.T) {
	codec, err := NewCodec(testSecret)
	require.NoError(t, err)

	expired := validClaims()
	expired["exp"] = time.Now().Add(-time.Hour).Unix()

	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "malformed", raw: "not-a-jwt"},
		{name: "wrong secret", raw: mintToken(t, "other-secret", validClaims())},
		{name: "expired", raw: mintToken(t, testSecret, expired)},
		{name: "tampered payload", raw: tamper(mintToken(t, testSecret, validClaims()))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, verr := codec.Verify(tt.raw)
			require.ErrorIs(t, verr, ErrInvalidToken)
		})
	}
}

func TestVerify_RejectsNonHMACAlgorithm(t *testing.T) {
	codec, err := NewCodec(testSecret)
	require.NoError(t, err)

	// alg=none with an empty signature must never verify.
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, validClaims()).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, verr := codec.Verify(unsigned)
	require.ErrorIs(t, verr, ErrInvalidToken)
}

func TestDecode_ProjectsClaims(t *testing.T) {
	codec, err := NewCodec(testSecret)
	require.NoError(t, err)

	claims := validClaims()
	claims["admin"] = true
	verified, err := codec.Verify(mintToken(t, testSecret, claims))
	require.NoError(t, err)

	identity, err := codec.Decode(verified)
	require.NoError(t, err)

	assert.Equal(t, int64(42), identity.ID)
	assert.Equal(t, "Maria Silva", identity.Nome)
	assert.Equal(t, "maria@example.com", identity.Email)
	assert.True(t, identity.Admin)
	assert.Equal(t, "https://fotos.example.com/maria.jpg", identity.Foto)
}

func TestDecode_MissingOptionalClaims(t *testing.T) {
	codec, err := NewCodec(testSecret)
	require.NoError(t, err)

	raw := mintToken(t, testSecret, jwt.MapClaims{
		"id":    int64(7),
		"nome":  "João",
		"email": "joao@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	verified, err := codec.Verify(raw)
	require.NoError(t, err)

	identity, err := codec.Decode(verified)
	require.NoError(t, err)
	assert.False(t, identity.Admin)
	assert.Empty(t, identity.Foto)
}

// tamper flips a byte in the payload segment, invalidating the signature.
func tamper(raw string) string {
	b := []byte(raw)
	// skip the header segment so the token still parses structurally
	for i := len(b) / 2; i < len(b); i++ {
		if b[i] == '.' {
			continue
		}
		if b[i] == 'A' {
			b[i] = 'B'
		} else {
			b[i] = 'A'
		}
		break
	}
	return string(b)
}
