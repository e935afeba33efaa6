package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

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

// validBaseConfig carries the fields required by validation so that tests
// can focus on the merge behaviour.
func validBaseConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{TokenSignKey: "secret"},
		Storage: Storage{
			DB: DB{DSN: "postgres://localhost:5432/taskflow"},
		},
		Server: Server{HTTPAddress: "localhost:8080"},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilderFailsValidation verifies that building with no
// sources yields the storage validation error, because no DSN is set.
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	_, err := newConfigBuilder().build()
	require.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierSourcesWin verifies that for a field present in two
// sources, the one appended first takes priority.
func TestBuild_EarlierSourcesWin(t *testing.T) {
	b := newConfigBuilder()

	first := validBaseConfig()
	first.Server.HTTPAddress = "first:1111"

	second := validBaseConfig()
	second.Server.HTTPAddress = "second:2222"

	b.configs = append(b.configs, first, second)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "first:1111", cfg.Server.HTTPAddress)
}

// TestBuild_LaterSourceFillsGaps verifies that fields left zero by earlier
// sources are filled from later ones.
func TestBuild_LaterSourceFillsGaps(t *testing.T) {
	b := newConfigBuilder()

	first := &StructuredConfig{
		App: App{TokenSignKey: "secret"},
	}
	second := validBaseConfig()
	second.App.TokenIssuer = "taskflow"

	b.configs = append(b.configs, first, second)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "taskflow", cfg.App.TokenIssuer)
	assert.Equal(t, "postgres://localhost:5432/taskflow", cfg.Storage.DB.DSN)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

// TestWithDefaults_FillsUnsetFields verifies the built-in defaults land in
// every field the other sources left empty.
func TestWithDefaults_FillsUnsetFields(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		App: App{TokenSignKey: "secret"},
		Storage: Storage{
			DB: DB{DSN: "postgres://localhost:5432/taskflow"},
		},
	})

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, defaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, defaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, defaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, defaultEnvironment, cfg.App.Environment)
}

// TestWithDefaults_DoesNotOverride verifies explicit settings survive the
// defaults merge.
func TestWithDefaults_DoesNotOverride(t *testing.T) {
	b := newConfigBuilder()
	explicit := validBaseConfig()
	explicit.App.TokenDuration = time.Hour
	explicit.App.Environment = "production"
	b.configs = append(b.configs, explicit)

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_LoadsFileNamedByEarlierSource verifies the JSON file path
// discovered in an earlier source is loaded and appended.
func TestWithJSON_LoadsFileNamedByEarlierSource(t *testing.T) {
	jsonCfg := StructuredJSONConfig{}
	jsonCfg.App.TokenSignKey = "from-json"
	jsonCfg.Storage.DB.DSN = "postgres://json:5432/taskflow"
	jsonCfg.Server.HTTPAddress = "json:9999"
	path := writeTempJSONConfig(t, jsonCfg)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)

	assert.Equal(t, "from-json", cfg.App.TokenSignKey)
	assert.Equal(t, "postgres://json:5432/taskflow", cfg.Storage.DB.DSN)
	assert.Equal(t, "json:9999", cfg.Server.HTTPAddress)
}

// TestWithJSON_NoPathIsNoOp verifies nothing happens when no source names a
// JSON file.
func TestWithJSON_NoPathIsNoOp(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validBaseConfig())

	_, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_MissingFile verifies a dangling path surfaces as a build
// error.
func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	_, err := b.withJSON().build()
	require.Error(t, err)
}

// ── validation ────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(cfg *StructuredConfig) {}, wantErr: nil},
		{name: "missing dsn", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "missing sign key", mutate: func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "missing http address", mutate: func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validBaseConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
