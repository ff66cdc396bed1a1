package profile

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Profile is the configuration to start the main server.
type Profile struct {
	// Mode can be "prod" or "dev" or "demo"
	Mode string
	// Addr is the binding address for server
	Addr string
	// Port is the binding port for server
	Port int
	// Version is the current version of server
	Version string

	// DefaultTimezone is the zone assumed for inputs that name none.
	DefaultTimezone string

	// Assistant configuration
	AIEnabled  bool          // ZONEMEET_AI_ENABLED
	AIAPIKey   string        // ZONEMEET_AI_API_KEY
	AIBaseURL  string        // ZONEMEET_AI_BASE_URL (default: https://api.openai.com/v1)
	AIModel    string        // ZONEMEET_AI_MODEL (default: gpt-4o-mini)
	AIMaxRetry int           // ZONEMEET_AI_MAX_RETRIES (default: 3)
	AITimeout  time.Duration // ZONEMEET_AI_TIMEOUT (default: 30s)
}

func (p *Profile) IsDev() bool {
	return p.Mode != "prod"
}

// IsAIEnabled returns true if the assistant is enabled and an API key is
// configured. When false the natural-language feature is hidden entirely.
func (p *Profile) IsAIEnabled() bool {
	return p.AIEnabled && p.AIAPIKey != ""
}

// getEnvOrDefault returns the environment variable value or the default value.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// FromEnv loads configuration from ZONEMEET_* environment variables.
func (p *Profile) FromEnv() {
	p.DefaultTimezone = getEnvOrDefault("ZONEMEET_DEFAULT_TIMEZONE", "UTC")

	p.AIEnabled = os.Getenv("ZONEMEET_AI_ENABLED") == "true"
	p.AIAPIKey = os.Getenv("ZONEMEET_AI_API_KEY")
	p.AIBaseURL = getEnvOrDefault("ZONEMEET_AI_BASE_URL", "https://api.openai.com/v1")
	p.AIModel = getEnvOrDefault("ZONEMEET_AI_MODEL", "gpt-4o-mini")

	if v, err := strconv.Atoi(os.Getenv("ZONEMEET_AI_MAX_RETRIES")); err == nil && v > 0 {
		p.AIMaxRetry = v
	}
	if d, err := time.ParseDuration(os.Getenv("ZONEMEET_AI_TIMEOUT")); err == nil && d > 0 {
		p.AITimeout = d
	}
}

// Validate normalizes the profile and rejects unusable values.
func (p *Profile) Validate() error {
	if p.Mode != "demo" && p.Mode != "dev" && p.Mode != "prod" {
		p.Mode = "demo"
	}

	if p.Port < 0 || p.Port > 65535 {
		return errors.Errorf("invalid port %d", p.Port)
	}

	if p.DefaultTimezone == "" {
		p.DefaultTimezone = "UTC"
	}
	if p.AIMaxRetry == 0 {
		p.AIMaxRetry = 3
	}
	if p.AITimeout == 0 {
		p.AITimeout = 30 * time.Second
	}

	return nil
}

// ListenAddr returns the host:port string the server binds to.
func (p *Profile) ListenAddr() string {
	return fmt.Sprintf("%s:%d", p.Addr, p.Port)
}
