package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid config",
			config: Config{
				Port:           "8080",
				APIBaseURL:     "https://backend.example.com/api",
				APITimeout:     60 * time.Second,
				MaxUploadFiles: 10,
				MaxUploadBytes: 32 << 20,
				LogLevel:       "info",
			},
			wantErr: false,
		},
		{
			name: "invalid port - non-numeric",
			config: Config{
				Port:           "abc",
				APIBaseURL:     "https://backend.example.com/api",
				APITimeout:     60 * time.Second,
				MaxUploadFiles: 10,
				MaxUploadBytes: 32 << 20,
				LogLevel:       "info",
			},
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name: "invalid port - out of range",
			config: Config{
				Port:           "70000",
				APIBaseURL:     "https://backend.example.com/api",
				APITimeout:     60 * time.Second,
				MaxUploadFiles: 10,
				MaxUploadBytes: 32 << 20,
				LogLevel:       "info",
			},
			wantErr:     true,
			errorString: "invalid port 70000",
		},
		{
			name: "empty API base URL",
			config: Config{
				Port:           "8080",
				APIBaseURL:     "",
				APITimeout:     60 * time.Second,
				MaxUploadFiles: 10,
				MaxUploadBytes: 32 << 20,
				LogLevel:       "info",
			},
			wantErr:     true,
			errorString: "API base URL cannot be empty",
		},
		{
			name: "bad API base URL scheme",
			config: Config{
				Port:           "8080",
				APIBaseURL:     "ftp://backend.example.com/api",
				APITimeout:     60 * time.Second,
				MaxUploadFiles: 10,
				MaxUploadBytes: 32 << 20,
				LogLevel:       "info",
			},
			wantErr:     true,
			errorString: "invalid API base URL scheme 'ftp'",
		},
		{
			name: "timeout too small",
			config: Config{
				Port:           "8080",
				APIBaseURL:     "https://backend.example.com/api",
				APITimeout:     100 * time.Millisecond,
				MaxUploadFiles: 10,
				MaxUploadBytes: 32 << 20,
				LogLevel:       "info",
			},
			wantErr:     true,
			errorString: "must be at least 1 second",
		},
		{
			name: "zero upload files",
			config: Config{
				Port:           "8080",
				APIBaseURL:     "https://backend.example.com/api",
				APITimeout:     60 * time.Second,
				MaxUploadFiles: 0,
				MaxUploadBytes: 32 << 20,
				LogLevel:       "info",
			},
			wantErr:     true,
			errorString: "invalid max upload files 0",
		},
		{
			name: "unknown log level",
			config: Config{
				Port:           "8080",
				APIBaseURL:     "https://backend.example.com/api",
				APITimeout:     60 * time.Second,
				MaxUploadFiles: 10,
				MaxUploadBytes: 32 << 20,
				LogLevel:       "verbose",
			},
			wantErr:     true,
			errorString: "invalid log level 'verbose'",
		},
		{
			name: "multiple errors reported together",
			config: Config{
				Port:           "abc",
				APIBaseURL:     "",
				APITimeout:     60 * time.Second,
				MaxUploadFiles: 10,
				MaxUploadBytes: 32 << 20,
				LogLevel:       "info",
			},
			wantErr:     true,
			errorString: "invalid port 'abc'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errorString != "" && !strings.Contains(err.Error(), tt.errorString) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errorString)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "API_BASE_URL", "API_TIMEOUT", "MAX_UPLOAD_FILES", "MAX_UPLOAD_BYTES", "LOG_LEVEL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("default port = %q", cfg.Port)
	}
	if cfg.APITimeout != 60*time.Second {
		t.Errorf("default timeout = %v", cfg.APITimeout)
	}
	if cfg.MaxUploadFiles != 10 {
		t.Errorf("default max upload files = %d", cfg.MaxUploadFiles)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("API_BASE_URL", "http://localhost:3000/api")
	t.Setenv("API_TIMEOUT", "30s")
	t.Setenv("MAX_UPLOAD_FILES", "5")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Errorf("port = %q", cfg.Port)
	}
	if cfg.APIBaseURL != "http://localhost:3000/api" {
		t.Errorf("base URL = %q", cfg.APIBaseURL)
	}
	if cfg.APITimeout != 30*time.Second {
		t.Errorf("timeout = %v", cfg.APITimeout)
	}
	if cfg.MaxUploadFiles != 5 {
		t.Errorf("max upload files = %d", cfg.MaxUploadFiles)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log level = %q", cfg.LogLevel)
	}
}

func TestLoad_IgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("MAX_UPLOAD_FILES", "many")
	t.Setenv("API_TIMEOUT", "soon")

	cfg := Load()
	if cfg.MaxUploadFiles != 10 {
		t.Errorf("malformed int should fall back to default, got %d", cfg.MaxUploadFiles)
	}
	if cfg.APITimeout != 60*time.Second {
		t.Errorf("malformed duration should fall back to default, got %v", cfg.APITimeout)
	}
}
