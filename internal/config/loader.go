package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load builds the configuration from the defaults, the YAML file at path and
// the environment. An empty path means DefaultPath; a missing default file is
// not an error, a missing explicit file is.
//
// Values from a .env file in the working directory are loaded into the
// environment first without overriding variables that are already set.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	if err := cfg.loadFile(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			err = nil
		}
		if err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if key := strings.TrimSpace(os.Getenv(EnvSuperJobAPIKey)); key != "" {
		c.SuperJob.APIKey = key
	}
	if proxy := strings.TrimSpace(os.Getenv(EnvProxy)); proxy != "" {
		c.Proxy = proxy
	}
}

// ParseLanguages splits a comma separated language list, dropping blanks.
func ParseLanguages(list string) []string {
	var languages []string
	for _, language := range strings.Split(list, ",") {
		if language = strings.TrimSpace(language); language != "" {
			languages = append(languages, language)
		}
	}
	return languages
}
