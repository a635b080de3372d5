package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "moodyflicks", cfg.DB.DBName)
	assert.Equal(t, "https://api.themoviedb.org/3", cfg.TMDB.BaseURL)
	assert.Equal(t, 60, cfg.RateLimit.MaxRequests)
}

func TestDSN(t *testing.T) {
	d := DBConfig{
		Host: "db.internal", Port: 5433, User: "app", Password: "secret",
		DBName: "moodyflicks", SSLMode: "require", SSLRootCert: "/certs/ca.pem",
	}
	assert.Equal(t,
		"host=db.internal port=5433 user=app password=secret dbname=moodyflicks sslmode=require sslrootcert=/certs/ca.pem",
		d.DSN())
}
