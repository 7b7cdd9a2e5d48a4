package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/matchdayhq/matchday-api/internal/platform/logging"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, EnvDev, cfg.AppEnv)
	require.Equal(t, "matchday-api", cfg.ServiceName)
	require.Equal(t, ":8080", cfg.HTTPAddr)
	require.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	require.True(t, cfg.DBDisablePreparedBinary)
	require.True(t, cfg.CacheEnabled)
	require.Equal(t, time.Minute, cfg.CacheTTL)
	require.Equal(t, 10*time.Second, cfg.ReadTimeout)
	require.Equal(t, 15*time.Second, cfg.WriteTimeout)
	require.Equal(t, "uploads", cfg.UploadsDir)
	require.False(t, cfg.CloudinaryEnabled)
	require.Equal(t, "players", cfg.CloudinaryFolder)
	require.False(t, cfg.UptraceEnabled)
	require.False(t, cfg.PyroscopeEnabled)
	require.Equal(t, logging.LevelInfo, cfg.LogLevel)
}

func TestLoadRejectsInvalidAppEnv(t *testing.T) {
	t.Setenv("APP_ENV", "qa")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid APP_ENV")
}

func TestLoadRequiresUptraceDSNWhenEnabled(t *testing.T) {
	t.Setenv("UPTRACE_ENABLED", "true")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "UPTRACE_DSN")
}

func TestLoadReadsUptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `uptrace-dsn="https://token@uptrace.dev/123"`)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "https://token@uptrace.dev/123", cfg.UptraceDSN)
}

func TestLoadRequiresCloudinaryCredentialsWhenEnabled(t *testing.T) {
	t.Setenv("CLOUDINARY_ENABLED", "true")
	t.Setenv("CLOUDINARY_CLOUD_NAME", "demo")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "CLOUDINARY_API_KEY")

	t.Setenv("CLOUDINARY_API_KEY", "key")
	t.Setenv("CLOUDINARY_API_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	require.True(t, cfg.CloudinaryEnabled)
	require.Equal(t, "demo", cfg.CloudinaryCloudName)
}

func TestLoadRequiresPyroscopeServerWhenEnabled(t *testing.T) {
	t.Setenv("PYROSCOPE_ENABLED", "true")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "PYROSCOPE_SERVER_ADDRESS")
}

func TestLoadPyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://pyroscope:4040")
	t.Setenv("APP_SERVICE_NAME", "matchday-stage")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "matchday-stage", cfg.PyroscopeAppName)
}

func TestLoadSplitsCORSOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://matchday.example, https://admin.matchday.example ,")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, []string{"https://matchday.example", "https://admin.matchday.example"}, cfg.CORSAllowedOrigins)
}

func TestLoadRejectsInvalidCacheTTL(t *testing.T) {
	t.Setenv("CACHE_TTL", "soon")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "CACHE_TTL")
}

func TestLoadRejectsNonPositiveCacheTTL(t *testing.T) {
	t.Setenv("CACHE_TTL", "-5s")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "must be > 0")
}

func TestLoadRejectsInvalidPreparedBinaryFlag(t *testing.T) {
	t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "maybe")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "DB_DISABLE_PREPARED_BINARY_RESULT")
}

func TestParseLogLevel(t *testing.T) {
	require.Equal(t, logging.LevelDebug, parseLogLevel("debug"))
	require.Equal(t, logging.LevelWarn, parseLogLevel("WARNING"))
	require.Equal(t, logging.LevelError, parseLogLevel(" error "))
	require.Equal(t, logging.LevelInfo, parseLogLevel("verbose"))
}
