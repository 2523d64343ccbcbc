package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
api:
  port: "9000"
  jwt_signing_key: "secret"
  jwt_ttl: 2h
  flights_public_read: false
  reference_read_policy: admin
  allowed_cors_domains:
    - https://booking.example.com
postgres:
  host: db
admin:
  email: admin@example.com
  password: admin1234
`)

	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9000", conf.API.Port)
	assert.Equal(t, "secret", conf.API.JWTSigningKey)
	assert.Equal(t, 2*time.Hour, conf.API.JWTTTL)
	assert.False(t, conf.API.FlightsPublicRead)
	assert.Equal(t, ReadPolicyAdmin, conf.API.ReferenceReadPolicy)
	assert.Equal(t, []string{"https://booking.example.com"}, conf.API.AllowedCORSDomains)
	assert.Equal(t, "admin@example.com", conf.Admin.Email)

	// Omitted keys keep their defaults.
	assert.Equal(t, 10, conf.API.PageSize)
	assert.Equal(t, "5432", conf.Postgres.Port)
	assert.Equal(t, "host=db port=5432 user=postgres password=postgres dbname=airport sslmode=disable", conf.Postgres.DSN())
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("API_PORT", "7070")
	t.Setenv("POSTGRES_PASSWORD", "from-env")

	conf, err := Load(writeConfig(t, "api:\n  port: \"9000\"\n"))
	require.NoError(t, err)

	assert.Equal(t, "7070", conf.API.Port)
	assert.Equal(t, "from-env", conf.Postgres.Password)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "unknown read policy",
			content: "api:\n  reference_read_policy: everyone\n",
			wantErr: `invalid api.reference_read_policy "everyone"`,
		},
		{
			name:    "empty signing key",
			content: "api:\n  jwt_signing_key: \"\"\n",
			wantErr: "api.jwt_signing_key must not be empty",
		},
		{
			name:    "page size above maximum",
			content: "api:\n  page_size: 50\n  max_page_size: 20\n",
			wantErr: "invalid pagination settings: page_size=50 max_page_size=20",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	conf := Default()

	require.NotNil(t, conf.API)
	assert.Equal(t, "8080", conf.API.Port)
	assert.Equal(t, 24*time.Hour, conf.API.JWTTTL)
	assert.True(t, conf.API.FlightsPublicRead)
	assert.Equal(t, ReadPolicyAuthenticated, conf.API.ReferenceReadPolicy)
	assert.Equal(t, 100, conf.API.MaxPageSize)
	assert.Equal(t, float64(1), conf.API.LoginRatePerSecond)
	assert.Equal(t, 5, conf.API.LoginBurst)
	assert.NoError(t, conf.validate())
}
