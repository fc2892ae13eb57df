package config

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	pkgRetry "github.com/leandroquiroga/interview-platform-ai/internal/pkg/retry"
)

// LLM providers
const (
	ProviderGemini = "gemini"
	ProviderHTTP   = "http"
	ProviderMock   = "mock"
)

const minSessionSecret = 32

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr         string        `env:"SERVER_ADDR" envDefault:":8080"`
	ServerReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
	ServerWriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"150s"`
	ServerIdleTimeout  time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	// RequestTimeout bounds a whole request, generation included; 0 disables it
	RequestTimeout     time.Duration `env:"REQUEST_TIMEOUT" envDefault:"120s"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`

	// Database configuration
	DatabaseURL         string               `env:"DATABASE_URL,notEmpty"`
	DBMaxConns          int                  `env:"DB_MAX_CONNS" envDefault:"25"`
	DBMinConns          int                  `env:"DB_MIN_CONNS" envDefault:"5"`
	DBMaxConnLifetime   time.Duration        `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	DBMaxConnIdleTime   time.Duration        `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	DBHealthCheckPeriod time.Duration        `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"1m"`
	DBConnectRetry      pkgRetry.RetryConfig `envPrefix:"DB_CONNECT_RETRY_"`

	// Generation model configuration
	LLMConnectorCfg LLMConnectorConfig `envPrefix:"LLM_"`
	GeminiCfg       GeminiConfig       `envPrefix:"GEMINI_"`

	// Accounts and sessions
	SessionCfg   SessionConfig `envPrefix:"SESSION_"`
	UserCacheTTL time.Duration `env:"USER_CACHE_TTL" envDefault:"5m"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`

	// Optional metered key for DOCX export
	UnidocLicenseKey string `env:"UNIDOC_LICENSE_KEY"`

	// Environment (set from flag, not from env var)
	Environment string
}

// LLMConnectorConfig selects the generation backend and configures the HTTP gateway one
type LLMConnectorConfig struct {
	HTTPClientConfig
	Provider         string `env:"PROVIDER" envDefault:"gemini"`
	GenerateEndpoint string `env:"GENERATE_ENDPOINT" envDefault:"/generate"`
}

type GeminiConfig struct {
	APIKey          string        `env:"API_KEY"`
	Model           string        `env:"MODEL" envDefault:"gemini-2.0-flash-001"`
	MaxOutputTokens int32         `env:"MAX_OUTPUT_TOKENS" envDefault:"4096"`
	Temperature     float32       `env:"TEMPERATURE" envDefault:"0.7"`
	Timeout         time.Duration `env:"TIMEOUT" envDefault:"90s"`
}

type SessionConfig struct {
	Secret       string        `env:"SECRET"`
	TTL          time.Duration `env:"TTL" envDefault:"168h"`
	SecureCookie bool          `env:"SECURE_COOKIE" envDefault:"true"`
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"90s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"10s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"60s"`
	Token                 string        `env:"TOKEN"`
	Url                   string        `env:"SERVICE_URL"`
}

// LLMProvider resolves the effective backend; ENABLE_MOCKS wins over LLM_PROVIDER
func (c *Config) LLMProvider() string {
	if c.EnableMocks {
		return ProviderMock
	}
	return strings.ToLower(strings.TrimSpace(c.LLMConnectorCfg.Provider))
}

func (c *Config) IsProduction() bool {
	switch c.Environment {
	case "prod", "production":
		return true
	default:
		return false
	}
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	return Parse(*envFlag)
}

// Parse reads the process environment into a validated Config
func Parse(environment string) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = environment

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	var errs []string

	// Validate Database configuration
	if cfg.DBMaxConns < 1 || cfg.DBMaxConns > 200 {
		errs = append(errs, fmt.Sprintf("DB_MAX_CONNS must be between 1 and 200, got %d", cfg.DBMaxConns))
	}

	if cfg.DBMinConns < 0 || cfg.DBMinConns > cfg.DBMaxConns {
		errs = append(errs, fmt.Sprintf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS(%d), got %d", cfg.DBMaxConns, cfg.DBMinConns))
	}

	if cfg.DBConnectRetry.Attempts < 1 {
		errs = append(errs, "DB_CONNECT_RETRY_ATTEMPTS must be at least 1")
	}

	// Validate generation backend
	switch cfg.LLMProvider() {
	case ProviderMock:
	case ProviderGemini:
		if cfg.GeminiCfg.APIKey == "" {
			errs = append(errs, "GEMINI_API_KEY is required when LLM_PROVIDER=gemini")
		}
		if cfg.GeminiCfg.Model == "" {
			errs = append(errs, "GEMINI_MODEL must not be empty")
		}
	case ProviderHTTP:
		if cfg.LLMConnectorCfg.Url == "" {
			errs = append(errs, "LLM_SERVICE_URL is required when LLM_PROVIDER=http")
		}
	default:
		errs = append(errs, fmt.Sprintf("LLM_PROVIDER must be one of gemini, http, mock, got %q", cfg.LLMConnectorCfg.Provider))
	}

	// Validate session configuration
	if len(cfg.SessionCfg.Secret) < minSessionSecret {
		errs = append(errs, fmt.Sprintf("SESSION_SECRET must be at least %d bytes", minSessionSecret))
	}
	if cfg.SessionCfg.TTL <= 0 {
		errs = append(errs, "SESSION_TTL must be positive")
	}

	// 0 leaves request handling bounded only by the generation client
	if cfg.RequestTimeout < 0 {
		errs = append(errs, "REQUEST_TIMEOUT must not be negative")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
