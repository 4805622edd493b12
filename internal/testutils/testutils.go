package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/nfrund/salon/internal/config"
)

// testDefaults keep tests independent of the developer's environment.
var testDefaults = map[string]string{
	"SERVER_ADDR":             ":0",
	"APP_BASE_URL":            "http://localhost:8080",
	"SESSION_SECRET":          "a-very-secret-key-for-testing-!",
	"CONTENT_PATH":            "",
	"CONTENT_WATCH":           "false",
	"BOOKING_SUBMIT_DELAY":    "1500ms",
	"BOOKING_AUTOCLOSE_DELAY": "2000ms",
	"VISITOR_TTL":             "30m",
	"EMAIL_PROVIDER":          "log",
	"EMAIL_SENDER":            "Diaspora Salon <concierge@diasporasalon.com>",
	"CONCIERGE_EMAIL":         "concierge@diasporasalon.com",
	"INQUIRY_JOURNAL_PATH":    "",
	"TRACING_ENABLED":         "false",
}

// ConfigForTests applies test defaults, then any overrides from .env.test
// at the project root, and returns the resulting config.Provider.
func ConfigForTests(t *testing.T) config.Provider {
	t.Helper()

	for key, value := range testDefaults {
		t.Setenv(key, value)
	}

	// 1. Find project root by looking for go.mod to locate .env.test.
	if root, ok := projectRoot(); ok {
		// 2. The file is optional; missing overrides are not an error.
		if env, err := godotenv.Read(filepath.Join(root, ".env.test")); err == nil {
			for key, value := range env {
				t.Setenv(key, value)
			}
		}
	}

	cfg, err := config.New()
	if err != nil {
		t.Fatalf("failed to build test config: %v", err)
	}
	return cfg
}

func projectRoot() (string, bool) {
	path, err := os.Getwd()
	if err != nil {
		return "", false
	}
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			return path, true
		}
		if path == filepath.Dir(path) {
			return "", false
		}
		path = filepath.Dir(path)
	}
}
