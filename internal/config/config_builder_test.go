package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validServerConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{TokenSignKey: "secret"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/portfolio"}},
		Server:  Server{HTTPAddress: "localhost:8080"},
	}
}

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestMerge_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.merge()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestMerge_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{TokenIssuer: "from-env"}},
		&StructuredConfig{App: App{TokenIssuer: "from-flags", TokenSignKey: "flag-key"}},
	)

	cfg, err := b.merge()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.App.TokenIssuer)
	assert.Equal(t, "flag-key", cfg.App.TokenSignKey)
}

func TestBuild_DefaultsFillGaps(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validServerConfig())
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "go-portfolio", cfg.App.TokenIssuer)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 5, cfg.Limiter.LoginAttempts)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
}

func TestBuild_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *StructuredConfig)
		want   error
	}{
		{name: "valid", mutate: func(c *StructuredConfig) {}},
		{name: "missing sign key", mutate: func(c *StructuredConfig) { c.App.TokenSignKey = "" }, want: ErrInvalidAppConfigs},
		{name: "bcrypt cost too high", mutate: func(c *StructuredConfig) { c.App.BcryptCost = 99 }, want: ErrInvalidAppConfigs},
		{name: "missing dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, want: ErrInvalidStorageConfigs},
		{name: "missing address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, want: ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := func() (*StructuredConfig, error) {
				merged, err := newConfigBuilder().withDefaults().merge()
				require.NoError(t, err)
				base := validServerConfig()
				tt.mutate(base)
				b := newConfigBuilder()
				b.configs = append(b.configs, base)
				b.configs = append(b.configs, merged)
				return b.build()
			}()

			if tt.want == nil {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidate_LimiterRequiresWindowWhenRedisSet(t *testing.T) {
	cfg := validServerConfig()
	cfg.App.TokenIssuer = "issuer"
	cfg.App.TokenDuration = time.Hour
	cfg.App.BcryptCost = 10
	cfg.Storage.Redis.Address = "localhost:6379"

	assert.ErrorIs(t, cfg.validate(), ErrInvalidLimiterConfigs)

	cfg.Limiter = Limiter{LoginAttempts: 3, LoginWindow: time.Minute}
	assert.NoError(t, cfg.validate())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_TOKEN_ISSUER", "env-issuer")
	t.Setenv("STORAGE_REDIS_ADDRESS", "redis:6379")

	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())

	require.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
	assert.Equal(t, "env-issuer", b.configs[0].App.TokenIssuer)
	assert.Equal(t, "redis:6379", b.configs[0].Storage.Redis.Address)
}

func TestWithJSON(t *testing.T) {
	t.Run("no path is a no-op", func(t *testing.T) {
		b := newConfigBuilder()
		b.configs = append(b.configs, &StructuredConfig{})
		b.withJSON()

		assert.Len(t, b.configs, 1)
		assert.NoError(t, b.err)
	})

	t.Run("valid file is appended", func(t *testing.T) {
		payload := StructuredJSONConfig{}
		payload.App.TokenIssuer = "json-issuer"
		payload.Storage.Files.UploadsDir = "/srv/uploads"
		path := writeTempJSONConfig(t, payload)

		b := newConfigBuilder()
		b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
		b.withJSON()

		require.NoError(t, b.err)
		require.Len(t, b.configs, 2)
		assert.Equal(t, "json-issuer", b.configs[1].App.TokenIssuer)
		assert.Equal(t, "/srv/uploads", b.configs[1].Storage.Files.UploadsDir)
	})

	t.Run("missing file sets error", func(t *testing.T) {
		b := newConfigBuilder()
		b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
		b.withJSON()

		assert.Error(t, b.err)
	})
}
