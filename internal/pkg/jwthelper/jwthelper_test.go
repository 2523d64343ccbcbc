package jwthelper

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var key = []byte("test-signing-key")

func TestGenerateToken_RoundTrip(t *testing.T) {
	token, err := GenerateToken(key, time.Hour, 42, true, "go-test")
	require.NoError(t, err)

	claims, err := ParseToken(key, token)
	require.NoError(t, err)

	assert.Equal(t, uint(42), claims.UserID)
	assert.True(t, claims.IsStaff)
	assert.Equal(t, "go-test", claims.UserAgent)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestParseToken(t *testing.T) {
	valid, err := GenerateToken(key, time.Hour, 7, false, "")
	require.NoError(t, err)
	expired, err := GenerateToken(key, -time.Minute, 7, false, "")
	require.NoError(t, err)
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, UserClaims{UserID: 7}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name    string
		key     []byte
		token   string
		wantErr bool
	}{
		{name: "valid", key: key, token: valid},
		{name: "wrong key", key: []byte("other"), token: valid, wantErr: true},
		{name: "expired", key: key, token: expired, wantErr: true},
		{name: "unsigned", key: key, token: none, wantErr: true},
		{name: "garbage", key: key, token: "not-a-jwt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ParseToken(tt.key, tt.token)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidToken)
				assert.Nil(t, claims)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, uint(7), claims.UserID)
		})
	}
}
