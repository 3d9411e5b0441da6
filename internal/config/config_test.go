package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"SVCDOCS_SERVICE_DIR", "SVCDOCS_OUTPUT_FILE", "SVCDOCS_FORMAT", "SVCDOCS_TITLE"} {
		os.Unsetenv(key)
	}
	viper.Reset()

	if err := Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"ServiceDir", AppConfig.ServiceDir, "internal/service"},
		{"OutputFile", AppConfig.OutputFile, "service_documentation.html"},
		{"Format", AppConfig.Format, "html"},
		{"Title", AppConfig.Title, "Service Layer Documentation"},
		{"CategoryFile", AppConfig.CategoryFile, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	testEnvs := map[string]string{
		"SVCDOCS_SERVICE_DIR": "pkg/service",
		"SVCDOCS_OUTPUT_FILE": "docs.html",
		"SVCDOCS_FORMAT":      "markdown",
		"SVCDOCS_TITLE":       "Service Docs",
	}

	originalEnv := map[string]string{}
	for key, value := range testEnvs {
		originalEnv[key] = os.Getenv(key)
		os.Setenv(key, value)
	}

	viper.Reset()

	if err := Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"ServiceDir", AppConfig.ServiceDir, "pkg/service"},
		{"OutputFile", AppConfig.OutputFile, "docs.html"},
		{"Format", AppConfig.Format, "markdown"},
		{"Title", AppConfig.Title, "Service Docs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	// Restore original environment
	for key, value := range originalEnv {
		if value == "" {
			os.Unsetenv(key)
		} else {
			os.Setenv(key, value)
		}
	}
	viper.Reset()
	Load()
}
