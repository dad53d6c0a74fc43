package app

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleConfig = `
telegram:
  token: "123:abc"
  run_mode: longpoll

api:
  base_url: "https://backend.example.com"
  timeout_seconds: 15

database:
  host: "db.internal"
  port: "5432"
  user: "bot"
  password: "secret"
  name: "leads"
  sslmode: disable
  max_connections: 5
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	carrier, err := LoadConfig(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	cfg, ok := carrier.(*Config)
	if !ok {
		t.Fatalf("carrier type = %T", carrier)
	}
	if cfg.Core.Telegram.Token != "123:abc" {
		t.Errorf("token = %q", cfg.Core.Telegram.Token)
	}
	if cfg.Core.API.BaseURL != "https://backend.example.com" {
		t.Errorf("api base url = %q", cfg.Core.API.BaseURL)
	}
	if cfg.Core.API.TimeoutSeconds != 15 {
		t.Errorf("api timeout = %d", cfg.Core.API.TimeoutSeconds)
	}
	if !cfg.Database.Enabled() {
		t.Error("database section should be enabled")
	}
	if cfg.Database.Name != "leads" {
		t.Errorf("database name = %q", cfg.Database.Name)
	}
}

func TestLoadConfigWithoutDatabase(t *testing.T) {
	body := `
telegram:
  token: "123:abc"
api:
  base_url: "https://backend.example.com"
`
	carrier, err := LoadConfig(writeConfig(t, body))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	cfg := carrier.(*Config)
	if cfg.Database.Enabled() {
		t.Error("empty database section should stay disabled")
	}
}

func TestLoadConfigRejectsMissingAPI(t *testing.T) {
	body := `
telegram:
  token: "123:abc"
`
	if _, err := LoadConfig(writeConfig(t, body)); err == nil {
		t.Fatal("expected an error for a config without api.base_url")
	}
}
