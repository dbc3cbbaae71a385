package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Port:                 "8081",
		KVBackend:            "memory",
		SQLiteDBPath:         "./test.db",
		ContactsURL:          "https://jsonplaceholder.typicode.com/users",
		ContactsTimeout:      5 * time.Second,
		ContactsCacheTTL:     5 * time.Minute,
		ContactsLimit:        5,
		NotificationDuration: 6 * time.Second,
		DemoTransactions:     10,
	}

	tests := []struct {
		name        string
		mutate      func(c *Config)
		wantErr     bool
		errorString string
	}{
		{
			name:   "valid memory backend config",
			mutate: func(c *Config) {},
		},
		{
			name:   "valid sqlite backend config",
			mutate: func(c *Config) { c.KVBackend = "sqlite" },
		},
		{
			name:        "invalid port - non-numeric",
			mutate:      func(c *Config) { c.Port = "abc" },
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name:        "invalid port - out of range low",
			mutate:      func(c *Config) { c.Port = "0" },
			wantErr:     true,
			errorString: "invalid port 0: must be between 1 and 65535",
		},
		{
			name:        "invalid port - out of range high",
			mutate:      func(c *Config) { c.Port = "70000" },
			wantErr:     true,
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name:        "invalid kv backend",
			mutate:      func(c *Config) { c.KVBackend = "redis" },
			wantErr:     true,
			errorString: "invalid kv backend 'redis': must be one of [memory sqlite]",
		},
		{
			name: "sqlite backend missing database path",
			mutate: func(c *Config) {
				c.KVBackend = "sqlite"
				c.SQLiteDBPath = ""
			},
			wantErr:     true,
			errorString: "SQLite database path cannot be empty when using sqlite backend",
		},
		{
			name:        "invalid contacts URL scheme",
			mutate:      func(c *Config) { c.ContactsURL = "ftp://example.com/users" },
			wantErr:     true,
			errorString: "invalid contacts URL scheme 'ftp': must be 'http' or 'https'",
		},
		{
			name:        "contacts timeout too short",
			mutate:      func(c *Config) { c.ContactsTimeout = 100 * time.Millisecond },
			wantErr:     true,
			errorString: "invalid contacts timeout 100ms: must be at least 1 second",
		},
		{
			name:        "contacts cache TTL too short",
			mutate:      func(c *Config) { c.ContactsCacheTTL = 10 * time.Millisecond },
			wantErr:     true,
			errorString: "invalid contacts cache TTL 10ms: must be at least 1 second",
		},
		{
			name:        "contacts limit too small",
			mutate:      func(c *Config) { c.ContactsLimit = 0 },
			wantErr:     true,
			errorString: "invalid contacts limit 0: must be between 1 and 10",
		},
		{
			name:        "contacts limit too large",
			mutate:      func(c *Config) { c.ContactsLimit = 50 },
			wantErr:     true,
			errorString: "invalid contacts limit 50: must be between 1 and 10",
		},
		{
			name:        "notification duration too short",
			mutate:      func(c *Config) { c.NotificationDuration = 100 * time.Millisecond },
			wantErr:     true,
			errorString: "invalid notification duration 100ms: must be at least 500ms",
		},
		{
			name:        "notification duration too long",
			mutate:      func(c *Config) { c.NotificationDuration = 2 * time.Minute },
			wantErr:     true,
			errorString: "invalid notification duration 2m0s: must be at most 1 minute",
		},
		{
			name:        "demo transaction count too small",
			mutate:      func(c *Config) { c.DemoTransactions = 0 },
			wantErr:     true,
			errorString: "invalid demo transaction count 0: must be at least 1",
		},
		{
			name:        "demo transaction count too large",
			mutate:      func(c *Config) { c.DemoTransactions = 5000 },
			wantErr:     true,
			errorString: "invalid demo transaction count 5000: must be at most 1000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Config.Validate() error = nil, wantErr %v", tt.wantErr)
					return
				}
				if tt.errorString != "" && !strings.Contains(err.Error(), tt.errorString) {
					t.Errorf("Config.Validate() error = %v, want error containing %v", err.Error(), tt.errorString)
				}
			} else if err != nil {
				t.Errorf("Config.Validate() error = %v, wantErr false", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	keys := []string{
		"PORT", "KV_BACKEND", "SQLITE_DB_PATH",
		"CONTACTS_URL", "CONTACTS_TIMEOUT", "CONTACTS_CACHE_TTL", "CONTACTS_LIMIT",
		"NOTIFICATION_DURATION", "DEMO_TRANSACTIONS",
	}

	originalVars := make(map[string]string, len(keys))
	for _, key := range keys {
		originalVars[key] = os.Getenv(key)
		os.Unsetenv(key)
	}
	defer func() {
		for key, value := range originalVars {
			if value != "" {
				os.Setenv(key, value)
			} else {
				os.Unsetenv(key)
			}
		}
	}()

	t.Run("default values", func(t *testing.T) {
		cfg := Load()

		if cfg.Port != "8081" {
			t.Errorf("Load() Port = %v, want 8081", cfg.Port)
		}
		if cfg.KVBackend != "memory" {
			t.Errorf("Load() KVBackend = %v, want memory", cfg.KVBackend)
		}
		if cfg.SQLiteDBPath != "./data/finboard.db" {
			t.Errorf("Load() SQLiteDBPath = %v, want ./data/finboard.db", cfg.SQLiteDBPath)
		}
		if cfg.ContactsLimit != 5 {
			t.Errorf("Load() ContactsLimit = %v, want 5", cfg.ContactsLimit)
		}
		if cfg.ContactsCacheTTL != 5*time.Minute {
			t.Errorf("Load() ContactsCacheTTL = %v, want 5m", cfg.ContactsCacheTTL)
		}
		if cfg.NotificationDuration != 6*time.Second {
			t.Errorf("Load() NotificationDuration = %v, want 6s", cfg.NotificationDuration)
		}
		if cfg.DemoTransactions != 10 {
			t.Errorf("Load() DemoTransactions = %v, want 10", cfg.DemoTransactions)
		}
	})

	t.Run("environment variables", func(t *testing.T) {
		os.Setenv("PORT", "9090")
		os.Setenv("KV_BACKEND", "sqlite")
		os.Setenv("SQLITE_DB_PATH", "/tmp/test.db")
		os.Setenv("CONTACTS_LIMIT", "8")
		os.Setenv("NOTIFICATION_DURATION", "3s")

		cfg := Load()

		if cfg.Port != "9090" {
			t.Errorf("Load() Port = %v, want 9090", cfg.Port)
		}
		if cfg.KVBackend != "sqlite" {
			t.Errorf("Load() KVBackend = %v, want sqlite", cfg.KVBackend)
		}
		if cfg.SQLiteDBPath != "/tmp/test.db" {
			t.Errorf("Load() SQLiteDBPath = %v, want /tmp/test.db", cfg.SQLiteDBPath)
		}
		if cfg.ContactsLimit != 8 {
			t.Errorf("Load() ContactsLimit = %v, want 8", cfg.ContactsLimit)
		}
		if cfg.NotificationDuration != 3*time.Second {
			t.Errorf("Load() NotificationDuration = %v, want 3s", cfg.NotificationDuration)
		}
	})

	t.Run("invalid environment variables use defaults", func(t *testing.T) {
		os.Setenv("CONTACTS_LIMIT", "invalid")
		os.Setenv("NOTIFICATION_DURATION", "invalid")

		cfg := Load()

		if cfg.ContactsLimit != 5 {
			t.Errorf("Load() ContactsLimit = %v, want 5 (default for invalid input)", cfg.ContactsLimit)
		}
		if cfg.NotificationDuration != 6*time.Second {
			t.Errorf("Load() NotificationDuration = %v, want 6s (default for invalid input)", cfg.NotificationDuration)
		}
	})
}
