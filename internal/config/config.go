package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// HTTP Server
	Port string

	// Storage
	KVBackend    string
	SQLiteDBPath string

	// Contacts upstream
	ContactsURL      string
	ContactsTimeout  time.Duration
	ContactsCacheTTL time.Duration
	ContactsLimit    int

	// Notifications
	NotificationDuration time.Duration

	// Demo data
	DemoTransactions int
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8081"),

		KVBackend:    getEnv("KV_BACKEND", "memory"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/finboard.db"),

		ContactsURL:      getEnv("CONTACTS_URL", "https://jsonplaceholder.typicode.com/users"),
		ContactsTimeout:  getEnvDuration("CONTACTS_TIMEOUT", 5*time.Second),
		ContactsCacheTTL: getEnvDuration("CONTACTS_CACHE_TTL", 5*time.Minute),
		ContactsLimit:    getEnvInt("CONTACTS_LIMIT", 5),

		NotificationDuration: getEnvDuration("NOTIFICATION_DURATION", 6*time.Second),

		DemoTransactions: getEnvInt("DEMO_TRANSACTIONS", 10),
	}
}

// Validate checks the configuration and returns all problems at once.
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	validBackends := []string{"memory", "sqlite"}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.KVBackend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid kv backend '%s': must be one of %v", c.KVBackend, validBackends))
	}

	if c.KVBackend == "sqlite" {
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		} else {
			dir := filepath.Dir(c.SQLiteDBPath)
			if dir != "." && dir != "" {
				if _, err := os.Stat(dir); os.IsNotExist(err) {
					if err := os.MkdirAll(dir, 0755); err != nil {
						errors = append(errors, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
					}
				}
			}
		}
	}

	if c.ContactsURL != "" {
		if parsedURL, err := url.Parse(c.ContactsURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid contacts URL '%s': %v", c.ContactsURL, err))
		} else if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
			errors = append(errors, fmt.Sprintf("invalid contacts URL scheme '%s': must be 'http' or 'https'", parsedURL.Scheme))
		}
	}

	if c.ContactsTimeout < time.Second {
		errors = append(errors, fmt.Sprintf("invalid contacts timeout %v: must be at least 1 second", c.ContactsTimeout))
	}
	if c.ContactsCacheTTL < time.Second {
		errors = append(errors, fmt.Sprintf("invalid contacts cache TTL %v: must be at least 1 second", c.ContactsCacheTTL))
	}
	if c.ContactsLimit < 1 || c.ContactsLimit > 10 {
		errors = append(errors, fmt.Sprintf("invalid contacts limit %d: must be between 1 and 10", c.ContactsLimit))
	}

	if c.NotificationDuration < 500*time.Millisecond {
		errors = append(errors, fmt.Sprintf("invalid notification duration %v: must be at least 500ms", c.NotificationDuration))
	} else if c.NotificationDuration > time.Minute {
		errors = append(errors, fmt.Sprintf("invalid notification duration %v: must be at most 1 minute", c.NotificationDuration))
	}

	if c.DemoTransactions < 1 {
		errors = append(errors, fmt.Sprintf("invalid demo transaction count %d: must be at least 1", c.DemoTransactions))
	} else if c.DemoTransactions > 1000 {
		errors = append(errors, fmt.Sprintf("invalid demo transaction count %d: must be at most 1000", c.DemoTransactions))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
