package config

import (
	"strings"
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("PRACTICUM_TOKEN", "yp-token")
	t.Setenv("TELEGRAM_TOKEN", "tg-token")
	t.Setenv("TELEGRAM_CHAT_ID", "123456")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("ENDPOINT", "")
	t.Setenv("POLL_INTERVAL", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("ENVIRONMENT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.PracticumToken != "yp-token" || cfg.TelegramToken != "tg-token" {
		t.Errorf("tokens not loaded: %+v", cfg)
	}
	if cfg.TelegramChatID != 123456 {
		t.Errorf("chat ID = %d, want 123456", cfg.TelegramChatID)
	}
	if cfg.Endpoint != DefaultEndpoint {
		t.Errorf("endpoint = %q, want default", cfg.Endpoint)
	}
	if cfg.PollInterval != 600*time.Second {
		t.Errorf("interval = %s, want 600s", cfg.PollInterval)
	}
	if cfg.LogLevel != "info" || cfg.Environment != "development" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("ENDPOINT", "http://localhost:8080/api/")
	t.Setenv("POLL_INTERVAL", "5s")
	t.Setenv("LOG_LEVEL", "Debug")
	t.Setenv("ENVIRONMENT", "Production")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Endpoint != "http://localhost:8080/api/" {
		t.Errorf("endpoint = %q", cfg.Endpoint)
	}
	if cfg.PollInterval != 5*time.Second {
		t.Errorf("interval = %s, want 5s", cfg.PollInterval)
	}
	if cfg.LogLevel != "debug" || cfg.Environment != "production" {
		t.Errorf("log settings not normalized: %+v", cfg)
	}
}

func TestLoadMissingCredentials(t *testing.T) {
	cases := []struct {
		name    string
		unset   string
		wantErr string
	}{
		{name: "missing practicum token", unset: "PRACTICUM_TOKEN", wantErr: "PRACTICUM_TOKEN"},
		{name: "missing telegram token", unset: "TELEGRAM_TOKEN", wantErr: "TELEGRAM_TOKEN"},
		{name: "missing chat ID", unset: "TELEGRAM_CHAT_ID", wantErr: "TELEGRAM_CHAT_ID"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tc.unset, "")

			_, err := Load()
			if err == nil {
				t.Fatal("expected an error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %s", err, tc.wantErr)
			}
		})
	}
}

func TestLoadInvalidValues(t *testing.T) {
	t.Run("non-numeric chat ID", func(t *testing.T) {
		setRequired(t)
		t.Setenv("TELEGRAM_CHAT_ID", "not-a-number")
		if _, err := Load(); err == nil {
			t.Fatal("expected an error, got nil")
		}
	})

	t.Run("invalid poll interval", func(t *testing.T) {
		setRequired(t)
		t.Setenv("POLL_INTERVAL", "soon")
		if _, err := Load(); err == nil {
			t.Fatal("expected an error, got nil")
		}
	})

	t.Run("negative poll interval", func(t *testing.T) {
		setRequired(t)
		t.Setenv("POLL_INTERVAL", "-10s")
		if _, err := Load(); err == nil {
			t.Fatal("expected an error, got nil")
		}
	})
}
