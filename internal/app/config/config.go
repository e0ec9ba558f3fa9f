package config

import (
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Serve struct {
		Host string `toml:"host"`
		Port string `toml:"port"`
	} `toml:"serve"`
	Upload struct {
		MaxPDFSizeMB int `toml:"max_pdf_size_mb"`
	} `toml:"upload"`
}

// Default returns the config used when no file and no envs are present.
func Default() Config {
	var cfg Config
	cfg.Serve.Host = "0.0.0.0"
	cfg.Serve.Port = "8000"
	cfg.Upload.MaxPDFSizeMB = 10
	return cfg
}

func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyEnv lets env vars override file values, env wins.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("SERVE_HOST"); v != "" {
		c.Serve.Host = v
	}
	if v := os.Getenv("SERVE_PORT"); v != "" {
		c.Serve.Port = v
	}
	if v := os.Getenv("MAX_UPLOAD_MB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Upload.MaxPDFSizeMB = n
		}
	}
}
