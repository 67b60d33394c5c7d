package conf_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lambda-feedback/bff/util/conf"
)

type testConfig struct {
	Address string `conf:"bff_test_address"`
	Verbose bool   `conf:"bff_test_verbose"`
	Nested  struct {
		Name string `conf:"name"`
	} `conf:"bff_test_nested"`
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := conf.Parse[testConfig](conf.ParseOptions{
		Defaults: conf.DefaultConfig{
			"bff_test_address": "0.0.0.0:8080",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Address)
	assert.False(t, cfg.Verbose)
}

func TestParse_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("BFF_TEST_ADDRESS", "127.0.0.1:9000")
	t.Setenv("BFF_TEST_VERBOSE", "true")
	t.Setenv("BFF_TEST_NESTED__NAME", "nested")

	cfg, err := conf.Parse[testConfig](conf.ParseOptions{
		Defaults: conf.DefaultConfig{
			"bff_test_address": "0.0.0.0:8080",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Address)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "nested", cfg.Nested.Name)
}

func TestParse_JSONFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "config.json")
	content := `{"bff_test_address": "10.0.0.1:80", "bff_test_nested": {"name": "file"}}`
	require.NoError(t, os.WriteFile(fileName, []byte(content), 0o600))

	cfg, err := conf.Parse[testConfig](conf.ParseOptions{
		FileName: fileName,
	})
	require.NoError(t, err)

	assert.Equal(t, "10.0.0.1:80", cfg.Address)
	assert.Equal(t, "file", cfg.Nested.Name)
}

func TestParse_DotenvFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "config.env")
	require.NoError(t, os.WriteFile(fileName, []byte("BFF_TEST_ADDRESS=10.0.0.2:81\n"), 0o600))

	cfg, err := conf.Parse[testConfig](conf.ParseOptions{
		FileName: fileName,
	})
	require.NoError(t, err)

	assert.Equal(t, "10.0.0.2:81", cfg.Address)
}

func TestParse_EnvOverridesFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(fileName, []byte(`{"bff_test_address": "10.0.0.1:80"}`), 0o600))

	t.Setenv("BFF_TEST_ADDRESS", "10.0.0.3:82")

	cfg, err := conf.Parse[testConfig](conf.ParseOptions{
		FileName: fileName,
	})
	require.NoError(t, err)

	assert.Equal(t, "10.0.0.3:82", cfg.Address)
}

func TestParse_MissingFile(t *testing.T) {
	_, err := conf.Parse[testConfig](conf.ParseOptions{
		FileName: filepath.Join(t.TempDir(), "missing.json"),
	})
	assert.Error(t, err)
}

func TestConfigContext(t *testing.T) {
	ctx := conf.ContextWithConfig(context.Background(), testConfig{Address: "addr"})

	cfg, err := conf.GetConfigFromContext[testConfig](ctx)
	require.NoError(t, err)
	assert.Equal(t, "addr", cfg.Address)

	_, err = conf.GetConfigFromContext[string](ctx)
	assert.ErrorIs(t, err, conf.ErrInvalidConfigInContext)

	_, err = conf.GetConfigFromContext[testConfig](context.Background())
	assert.ErrorIs(t, err, conf.ErrNoConfigInContext)
}
