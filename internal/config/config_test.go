package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// clearEnv blanks the override variables so tests see only their own values.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"GEMINI_API_KEY", "GEMINI_MODEL", "GEMINI_BASE_URL", "HOST", "PORT", "DEBUG", "CORS_ORIGINS", "LOG_LEVEL", "LOG_FILE"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	c := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if c.Server.Port != 8000 || c.Server.Host != "0.0.0.0" {
		t.Errorf("unexpected server defaults: %+v", c.Server)
	}
	if c.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("unexpected default model %q", c.Gemini.Model)
	}
	if got := c.Origins(); !reflect.DeepEqual(got, []string{"*"}) {
		t.Errorf("expected wildcard origins, got %v", got)
	}
}

func TestLoad_YamlFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `server:
  port: 9100
  debug: true
gemini:
  api_key: from-file
  model: gemini-2.0-pro
cors:
  origins: "https://a.example, https://b.example"
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	c := Load(path)
	if c.Server.Port != 9100 || !c.Server.Debug {
		t.Errorf("yaml values not applied: %+v", c.Server)
	}
	if c.Gemini.APIKey != "from-file" || c.Gemini.Model != "gemini-2.0-pro" {
		t.Errorf("gemini values not applied: %+v", c.Gemini)
	}
	want := []string{"https://a.example", "https://b.example"}
	if got := c.Origins(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestLoad_EnvOverridesWin(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	os.WriteFile(path, []byte("server:\n  port: 9100\ngemini:\n  api_key: from-file\n"), 0644)

	t.Setenv("PORT", "9200")
	t.Setenv("GEMINI_API_KEY", "from-env")
	t.Setenv("DEBUG", "TRUE")
	t.Setenv("CORS_ORIGINS", "https://only.example")

	c := Load(path)
	if c.Server.Port != 9200 {
		t.Errorf("PORT override lost: %d", c.Server.Port)
	}
	if c.Gemini.APIKey != "from-env" {
		t.Errorf("GEMINI_API_KEY override lost: %q", c.Gemini.APIKey)
	}
	if !c.Server.Debug {
		t.Error("DEBUG override lost")
	}
	if got := c.Origins(); !reflect.DeepEqual(got, []string{"https://only.example"}) {
		t.Errorf("CORS_ORIGINS override lost: %v", got)
	}
}

func TestValidate_RequiresAPIKey(t *testing.T) {
	clearEnv(t)
	c := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err := c.Validate(); err == nil {
		t.Error("expected validation error without api key")
	}
	c.Gemini.APIKey = "k"
	if err := c.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}
