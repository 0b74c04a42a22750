package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Environment represents the deployment environment
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvStaging     Environment = "staging"
	EnvProduction  Environment = "production"
)

// Config holds all application configuration. It is an explicit value passed
// to constructors; there is no global instance.
type Config struct {
	// Environment
	Env      Environment `envconfig:"ENV" default:"development"`
	LogLevel string      `envconfig:"LOG_LEVEL" default:"info"`
	Debug    bool        `envconfig:"DEBUG" default:"false"`

	// Browser
	Browser BrowserConfig

	// Output
	Output OutputConfig

	// Report server
	Report ReportConfig
}

// BrowserConfig holds browser session settings
type BrowserConfig struct {
	Headless          bool          `envconfig:"BROWSER_HEADLESS" default:"true"`
	NavigationTimeout time.Duration `envconfig:"BROWSER_NAVIGATION_TIMEOUT" default:"30s"`
	SettleDelay       time.Duration `envconfig:"BROWSER_SETTLE_DELAY" default:"2s"`
	ViewportWidth     int           `envconfig:"BROWSER_VIEWPORT_WIDTH" default:"1920"`
	ViewportHeight    int           `envconfig:"BROWSER_VIEWPORT_HEIGHT" default:"1080"`
}

// OutputConfig holds artifact output settings
type OutputConfig struct {
	Dir     string `envconfig:"OUTPUT_DIR" default:"generated"`
	PlanDir string `envconfig:"OUTPUT_PLAN_DIR" default:"docs/test-plans"`
	PageDir string `envconfig:"OUTPUT_PAGE_DIR" default:"pages"`
	TestDir string `envconfig:"OUTPUT_TEST_DIR" default:"tests"`
	DataDir string `envconfig:"OUTPUT_DATA_DIR" default:"test-data"`
}

// ReportConfig holds report server settings
type ReportConfig struct {
	Host            string        `envconfig:"REPORT_HOST" default:"0.0.0.0"`
	Port            int           `envconfig:"REPORT_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"REPORT_READ_TIMEOUT" default:"30s"`
	WriteTimeout    time.Duration `envconfig:"REPORT_WRITE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"REPORT_SHUTDOWN_TIMEOUT" default:"30s"`

	// Rate limiting
	RateLimitEnabled bool `envconfig:"REPORT_RATE_LIMIT_ENABLED" default:"true"`
	RequestsPerSec   int  `envconfig:"REPORT_REQUESTS_PER_SEC" default:"20"`
	BurstSize        int  `envconfig:"REPORT_BURST_SIZE" default:"40"`

	// CORS
	CORSEnabled        bool     `envconfig:"REPORT_CORS_ENABLED" default:"true"`
	CORSAllowedOrigins []string `envconfig:"REPORT_CORS_ALLOWED_ORIGINS" default:"*"`
}

// Addr returns the report server listen address
func (c ReportConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load loads configuration from a .env file (if present) and the environment
func Load() (*Config, error) {
	// A missing .env file is not an error
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("processing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	var errors []string

	if c.Browser.NavigationTimeout <= 0 {
		errors = append(errors, "BROWSER_NAVIGATION_TIMEOUT must be positive")
	}
	if c.Browser.SettleDelay < 0 {
		errors = append(errors, "BROWSER_SETTLE_DELAY must not be negative")
	}
	if c.Browser.ViewportWidth <= 0 || c.Browser.ViewportHeight <= 0 {
		errors = append(errors, "browser viewport dimensions must be positive")
	}
	if c.Output.Dir == "" {
		errors = append(errors, "OUTPUT_DIR must not be empty")
	}
	if c.Report.Port <= 0 || c.Report.Port > 65535 {
		errors = append(errors, "REPORT_PORT must be a valid port")
	}
	if c.Report.RateLimitEnabled && c.Report.RequestsPerSec <= 0 {
		errors = append(errors, "REPORT_REQUESTS_PER_SEC must be positive when rate limiting is enabled")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errors, "; "))
	}

	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// GetLogLevel returns the appropriate zap log level
func (c *Config) GetLogLevel() string {
	if c.Debug {
		return "debug"
	}
	return c.LogLevel
}
