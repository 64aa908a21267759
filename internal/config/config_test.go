package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_WithRequiredVars(t *testing.T) {
	os.Setenv("AUTH_SECRET", "test-secret")
	defer os.Unsetenv("AUTH_SECRET")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.AuthSecret != "test-secret" {
		t.Errorf("expected AuthSecret to be set, got %s", cfg.AuthSecret)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("AUTH_SECRET")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing required vars, got nil")
	}
}

func TestConfig_Defaults(t *testing.T) {
	os.Setenv("AUTH_SECRET", "test-secret")
	defer os.Unsetenv("AUTH_SECRET")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.AppEnv != "development" {
		t.Errorf("expected default AppEnv 'development', got %s", cfg.AppEnv)
	}

	if cfg.AppPort != 8080 {
		t.Errorf("expected default AppPort 8080, got %d", cfg.AppPort)
	}

	if cfg.DatabasePath != "todolist.db" {
		t.Errorf("expected default DatabasePath 'todolist.db', got %s", cfg.DatabasePath)
	}

	if cfg.AuditLogPath != "logs.txt" {
		t.Errorf("expected default AuditLogPath 'logs.txt', got %s", cfg.AuditLogPath)
	}

	if cfg.TokenTTL != time.Hour {
		t.Errorf("expected default TokenTTL 1h, got %s", cfg.TokenTTL)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("expected default LogLevel 'info', got %s", cfg.LogLevel)
	}

	if cfg.LogFormat != "json" {
		t.Errorf("expected default LogFormat 'json', got %s", cfg.LogFormat)
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	cfg := &Config{AppEnv: "development"}
	if !cfg.IsDevelopment() {
		t.Error("expected IsDevelopment to return true")
	}

	cfg.AppEnv = "production"
	if cfg.IsDevelopment() {
		t.Error("expected IsDevelopment to return false")
	}
	if !cfg.IsProduction() {
		t.Error("expected IsProduction to return true")
	}
}

func TestConfig_GetCORSAllowedOrigins(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"empty", "", 0},
		{"single", "https://example.com", 1},
		{"multiple with spaces", "https://a.com, https://b.com", 2},
		{"trailing comma", "https://a.com,", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{CORSAllowedOrigins: tt.value}
			got := cfg.GetCORSAllowedOrigins()
			if len(got) != tt.want {
				t.Errorf("GetCORSAllowedOrigins() returned %d origins, want %d", len(got), tt.want)
			}
		})
	}
}

func TestConfig_GetSeedUser(t *testing.T) {
	tests := []struct {
		name         string
		value        string
		wantUser     string
		wantPassword string
		wantOK       bool
	}{
		{"empty", "", "", "", false},
		{"valid", "dheeraj:123456", "dheeraj", "123456", true},
		{"missing separator", "dheeraj", "", "", false},
		{"empty password", "dheeraj:", "", "", false},
		{"empty username", ":123456", "", "", false},
		{"password with colon", "alice:pw:extra", "alice", "pw:extra", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{SeedUser: tt.value}
			user, password, ok := cfg.GetSeedUser()
			if ok != tt.wantOK {
				t.Fatalf("GetSeedUser() ok = %v, want %v", ok, tt.wantOK)
			}
			if user != tt.wantUser || password != tt.wantPassword {
				t.Errorf("GetSeedUser() = (%q, %q), want (%q, %q)", user, password, tt.wantUser, tt.wantPassword)
			}
		})
	}
}
