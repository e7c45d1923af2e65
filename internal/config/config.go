package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	Gemini GeminiConfig `yaml:"gemini"`
	CORS   CORSConfig   `yaml:"cors"`
}

type ServerConfig struct {
	Host  string `yaml:"host"`
	Port  int    `yaml:"port"`
	Debug bool   `yaml:"debug"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	Console    bool   `yaml:"console"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

type GeminiConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
}

type CORSConfig struct {
	// Origins is "*" or a comma-separated allow list.
	Origins string `yaml:"origins"`
}

func Load(configFile string) *Config {
	c := &Config{
		Server: ServerConfig{Host: "0.0.0.0", Port: 8000},
		Log:    LogConfig{Level: "info", Console: true, MaxSizeMB: 100, MaxBackups: 3, MaxAgeDays: 30},
		Gemini: GeminiConfig{BaseURL: "https://generativelanguage.googleapis.com", Model: "gemini-2.5-flash"},
		CORS:   CORSConfig{Origins: "*"},
	}

	paths := []string{"etc/config-dev.yaml", "/etc/truck-assist/config.yaml"}
	if configFile != "" {
		paths = []string{configFile}
	}
	for _, path := range paths {
		if data, err := os.ReadFile(path); err == nil {
			yaml.Unmarshal(data, c)
			break
		}
	}

	envOverride(&c.Gemini.APIKey, "GEMINI_API_KEY")
	envOverride(&c.Gemini.Model, "GEMINI_MODEL")
	envOverride(&c.Gemini.BaseURL, "GEMINI_BASE_URL")
	envOverride(&c.Server.Host, "HOST")
	envOverride(&c.CORS.Origins, "CORS_ORIGINS")
	envOverride(&c.Log.Level, "LOG_LEVEL")
	envOverride(&c.Log.File, "LOG_FILE")
	envOverrideInt(&c.Server.Port, "PORT")
	envOverrideBool(&c.Server.Debug, "DEBUG")

	return c
}

// Validate checks the settings the server cannot run without.
func (c *Config) Validate() error {
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("gemini api key not set (GEMINI_API_KEY)")
	}
	if c.Gemini.Model == "" {
		return fmt.Errorf("gemini model not set (GEMINI_MODEL)")
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// Origins returns the CORS allow list: ["*"] for the wildcard, otherwise the
// trimmed comma-separated entries.
func (c *Config) Origins() []string {
	if c.CORS.Origins == "" || c.CORS.Origins == "*" {
		return []string{"*"}
	}
	parts := strings.Split(c.CORS.Origins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envOverrideInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func envOverrideBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = strings.EqualFold(v, "true")
	}
}
