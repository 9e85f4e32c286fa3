package secrets

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestEnvironmentManager(t *testing.T) {
	cfg := Config{
		Backend:       "env",
		CacheDuration: 1 * time.Minute,
	}

	manager := NewEnvironmentManager(cfg)
	ctx := context.Background()

	// Test GetSecret with existing environment variable
	os.Setenv("TEST_SECRET", "test-value")
	defer os.Unsetenv("TEST_SECRET")

	value, err := manager.GetSecret(ctx, "TEST_SECRET")
	if err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
	if value != "test-value" {
		t.Errorf("Expected 'test-value', got '%s'", value)
	}

	// Test GetSecret with non-existent variable
	_, err = manager.GetSecret(ctx, "NON_EXISTENT_SECRET")
	if err == nil {
		t.Error("Expected error for non-existent secret")
	}

	// Test cache
	os.Setenv("CACHED_SECRET", "cached-value")
	defer os.Unsetenv("CACHED_SECRET")

	// First call - loads from env
	value1, _ := manager.GetSecret(ctx, "CACHED_SECRET")

	// Change environment variable
	os.Setenv("CACHED_SECRET", "new-value")

	// Second call - should return cached value
	value2, _ := manager.GetSecret(ctx, "CACHED_SECRET")

	if value1 != value2 {
		t.Error("Expected cached value to be returned")
	}
	if value2 == "new-value" {
		t.Error("Should have returned cached value, not new value")
	}
}

func TestEnvironmentManagerRefreshCache(t *testing.T) {
	cfg := Config{
		Backend:       "env",
		CacheDuration: 1 * time.Minute,
	}

	manager := NewEnvironmentManager(cfg)
	ctx := context.Background()

	// Set and get a secret (will be cached)
	os.Setenv("REFRESH_TEST", "initial-value")
	defer os.Unsetenv("REFRESH_TEST")

	value1, _ := manager.GetSecret(ctx, "REFRESH_TEST")

	// Change environment variable
	os.Setenv("REFRESH_TEST", "updated-value")

	// Refresh cache
	err := manager.RefreshCache(ctx)
	if err != nil {
		t.Errorf("RefreshCache failed: %v", err)
	}

	// Get secret again - should load new value
	value2, _ := manager.GetSecret(ctx, "REFRESH_TEST")

	if value1 == value2 {
		t.Error("Expected different value after cache refresh")
	}
	if value2 != "updated-value" {
		t.Errorf("Expected 'updated-value', got '%s'", value2)
	}
}

func TestNewManager(t *testing.T) {
	tests := []struct {
		name      string
		backend   string
		wantError bool
	}{
		{
			name:      "Environment backend",
			backend:   "env",
			wantError: false,
		},
		{
			name:      "Environment backend (alternative name)",
			backend:   "environment",
			wantError: false,
		},
		{
			name:      "Unsupported backend",
			backend:   "unsupported",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{
				Backend:       tt.backend,
				CacheDuration: 1 * time.Minute,
			}

			_, err := NewManager(cfg)
			if tt.wantError && err == nil {
				t.Error("Expected error, got nil")
			}
			if !tt.wantError && err != nil {
				t.Errorf("Expected no error, got: %v", err)
			}
		})
	}
}

func TestGetSecretJSON(t *testing.T) {
	manager := NewEnvironmentManager(DefaultConfig())
	ctx := context.Background()

	os.Setenv("JSON_SECRET", `{"user":"svc","token":"abc123"}`)
	defer os.Unsetenv("JSON_SECRET")

	var dest struct {
		User  string `json:"user"`
		Token string `json:"token"`
	}
	if err := manager.GetSecretJSON(ctx, "JSON_SECRET", &dest); err != nil {
		t.Fatalf("GetSecretJSON failed: %v", err)
	}
	if dest.User != "svc" || dest.Token != "abc123" {
		t.Errorf("Unexpected decoded secret: %+v", dest)
	}
}
