package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envMap(nil))
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, time.Hour, cfg.AccessTokenTTL)
	assert.Equal(t, 168*time.Hour, cfg.RefreshTokenTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "none", cfg.EmbeddingProvider)
	assert.Equal(t, 500, cfg.ImportBatchSize)
	assert.False(t, cfg.IsDevelopment())
	assert.Error(t, cfg.Validate())
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		"APP_ENV":            "development",
		"PORT":               "9090",
		"POSTGRES_URL":       "postgres://localhost/clean",
		"JWT_SECRET":         "s3cret",
		"ACCESS_TOKEN_TTL":   "15m",
		"CORS_ORIGINS":       "http://a.test, http://b.test",
		"EMBEDDING_PROVIDER": "Gemini",
		"GEMINI_API_KEY":     "g-key",
	}))
	require.NoError(t, err)

	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, "gemini", cfg.EmbeddingProvider)
	assert.Equal(t, "g-key", cfg.EmbeddingAPIKey)
	assert.Equal(t, "text-embedding-004", cfg.EmbeddingModel)
	assert.NoError(t, cfg.Validate())
}

func TestFromEnv_Invalid(t *testing.T) {
	_, err := FromEnv(envMap(map[string]string{"ACCESS_TOKEN_TTL": "soon"}))
	assert.Error(t, err)

	_, err = FromEnv(envMap(map[string]string{"EMBEDDING_PROVIDER": "cohere"}))
	assert.Error(t, err)

	_, err = FromEnv(envMap(map[string]string{"IMPORT_BATCH_SIZE": "0"}))
	assert.Error(t, err)
}
