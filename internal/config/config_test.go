package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fr4nk3nst1ner/vacancystats/internal/utils"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultLanguages, cfg.Languages)
	assert.Equal(t, "RUB", cfg.Currency)
	assert.Equal(t, 1, cfg.HeadHunter.Area)
	assert.Equal(t, 4, cfg.SuperJob.Town)
	assert.Equal(t, time.Second, cfg.HeadHunter.Delay)
	assert.Zero(t, cfg.SuperJob.Delay)
	assert.Equal(t, "exhaustive", cfg.HeadHunter.Pagination)
	assert.Equal(t, 1, cfg.Concurrency)

	// the defaults must not share the package level slice
	cfg.Languages[0] = "Rust"
	assert.Equal(t, "JavaScript", DefaultLanguages[0])
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{name: "valid", modify: func(c *Config) { c.SuperJob.APIKey = "key" }},
		{name: "headhunter only needs no key", modify: func(c *Config) { c.Source = utils.SourceHeadHunter }},
		{name: "missing superjob key", modify: func(c *Config) {}, wantErr: EnvSuperJobAPIKey},
		{name: "no languages", modify: func(c *Config) { c.SuperJob.APIKey = "key"; c.Languages = nil }, wantErr: "at least one language"},
		{name: "blank language", modify: func(c *Config) { c.SuperJob.APIKey = "key"; c.Languages = []string{"Go", " "} }, wantErr: "blank"},
		{name: "unknown source", modify: func(c *Config) { c.Source = "linkedin" }, wantErr: "invalid source"},
		{name: "bad currency", modify: func(c *Config) { c.SuperJob.APIKey = "key"; c.Currency = "roubles" }, wantErr: "invalid currency"},
		{name: "page size too big", modify: func(c *Config) { c.Source = utils.SourceHeadHunter; c.HeadHunter.PageSize = 500 }, wantErr: "page size"},
		{name: "unknown pagination", modify: func(c *Config) { c.Source = utils.SourceHeadHunter; c.HeadHunter.Pagination = "forever" }, wantErr: "pagination policy"},
		{name: "capped without pages", modify: func(c *Config) {
			c.Source = utils.SourceSuperJob
			c.SuperJob.APIKey = "key"
			c.SuperJob.Pagination = "capped"
			c.SuperJob.MaxPages = 0
		}, wantErr: "max pages"},
		{name: "zero concurrency", modify: func(c *Config) { c.SuperJob.APIKey = "key"; c.Concurrency = 0 }, wantErr: "concurrency"},
		{name: "negative delay", modify: func(c *Config) { c.Source = utils.SourceHeadHunter; c.HeadHunter.Delay = -time.Second }, wantErr: "delay"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSources(t *testing.T) {
	cfg := Default()
	sources, err := cfg.Sources()
	require.NoError(t, err)
	assert.Equal(t, []string{utils.SourceHeadHunter, utils.SourceSuperJob}, sources)

	cfg.Source = utils.SourceSuperJob
	assert.True(t, cfg.Uses(utils.SourceSuperJob))
	assert.False(t, cfg.Uses(utils.SourceHeadHunter))
}

func TestLoad_File(t *testing.T) {
	t.Setenv(EnvSuperJobAPIKey, "")
	t.Setenv(EnvProxy, "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
languages: [Go, Rust]
source: headhunter
currency: usd
headhunter:
  area: 2
  pagination: capped
  max_pages: 5
  delay: 250ms
superjob:
  api_key: from-file
timeout: 30s
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Go", "Rust"}, cfg.Languages)
	assert.Equal(t, utils.SourceHeadHunter, cfg.Source)
	assert.Equal(t, "usd", cfg.Currency)
	assert.Equal(t, 2, cfg.HeadHunter.Area)
	assert.Equal(t, "capped", cfg.HeadHunter.Pagination)
	assert.Equal(t, 5, cfg.HeadHunter.MaxPages)
	assert.Equal(t, 250*time.Millisecond, cfg.HeadHunter.Delay)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "from-file", cfg.SuperJob.APIKey)
	// untouched values keep their defaults
	assert.Equal(t, 100, cfg.HeadHunter.PageSize)
	assert.Equal(t, "SuperJob Moscow", cfg.SuperJob.Title)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv(EnvSuperJobAPIKey, "from-env")
	t.Setenv(EnvProxy, "http://127.0.0.1:3128")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("superjob:\n  api_key: from-file\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.SuperJob.APIKey)
	assert.Equal(t, "http://127.0.0.1:3128", cfg.Proxy)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)

	// registered first so it runs after the environment is restored
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultLanguages, cfg.Languages)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("languages: [Go\n"), 0o600))

	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestParseLanguages(t *testing.T) {
	assert.Equal(t, []string{"Go", "C++", "C#"}, ParseLanguages("Go, C++ ,,C#"))
	assert.Nil(t, ParseLanguages(" , "))
}
