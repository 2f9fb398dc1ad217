// Package config loads the service configuration from environment variables.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/area-length-service/internal/domain/model"
)

// Config holds the complete application configuration.
type Config struct {
	Server     ServerConfig
	Cache      CacheConfig
	Auth       AuthConfig
	Database   DatabaseConfig
	Currency   CurrencyConfig
	Calculator CalculatorConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port        string
	RateLimit   int
	RateWindow  time.Duration
	CORSOrigins []string
	SwaggerUser string
	SwaggerPass string
}

// CacheConfig holds the product cache configuration.
type CacheConfig struct {
	Size   int
	TTL    time.Duration
	Shards int
}

// AuthConfig holds authentication configuration. The catalog has a single
// administrator whose password is stored as a bcrypt hash.
type AuthConfig struct {
	Enabled           bool
	APIKeys           map[string]bool
	JWTSecretKey      string
	JWTIssuer         string
	AccessTokenTTL    time.Duration
	AdminEmail        string
	AdminPasswordHash string
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool

	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// CurrencyConfig mirrors the store's price formatting settings.
type CurrencyConfig struct {
	Symbol            string
	Position          string
	DecimalSeparator  string
	ThousandSeparator string
	Decimals          int
}

// Settings converts the configuration into formatter settings.
func (c CurrencyConfig) Settings() model.CurrencySettings {
	return model.CurrencySettings{
		Symbol:            c.Symbol,
		Position:          model.SymbolPosition(c.Position),
		DecimalSeparator:  c.DecimalSeparator,
		ThousandSeparator: c.ThousandSeparator,
		Decimals:          c.Decimals,
	}
}

// CalculatorConfig holds calculator presentation settings.
type CalculatorConfig struct {
	// MarginOptions is the waste margin menu in percent.
	MarginOptions []int
	// DefaultMargin is preselected on page load.
	DefaultMargin int
	// StockDisplayThreshold caps the displayed stock ("1000+ in stock").
	StockDisplayThreshold int
	// DefaultLocale is used when a request carries no supported Accept-Language.
	DefaultLocale string
}

// Load creates a Config from environment variables.
func Load() Config {
	defaultCurrency := model.DefaultCurrency()

	return Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			RateLimit:   getEnvInt("RATE_LIMIT", 100),
			RateWindow:  getEnvDuration("RATE_WINDOW", time.Minute),
			CORSOrigins: parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser: getEnv("SWAGGER_USER", ""),
			SwaggerPass: getEnv("SWAGGER_PASS", ""),
		},
		Cache: CacheConfig{
			Size:   getEnvInt("CACHE_SIZE", 1000),
			TTL:    getEnvDuration("CACHE_TTL", 5*time.Minute),
			Shards: getEnvInt("CACHE_SHARDS", 16),
		},
		Auth: AuthConfig{
			Enabled:           getEnvBool("AUTH_ENABLED", false),
			APIKeys:           parseAPIKeys(os.Getenv("API_KEYS")),
			JWTSecretKey:      getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
			JWTIssuer:         getEnv("JWT_ISSUER", "area-length-service"),
			AccessTokenTTL:    getEnvDuration("JWT_ACCESS_TOKEN_TTL", 15*time.Minute),
			AdminEmail:        getEnv("ADMIN_EMAIL", ""),
			AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "area_length_service"),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Currency: CurrencyConfig{
			Symbol:            getEnv("CURRENCY_SYMBOL", defaultCurrency.Symbol),
			Position:          getEnv("CURRENCY_POSITION", string(defaultCurrency.Position)),
			DecimalSeparator:  getEnvRaw("CURRENCY_DECIMAL_SEPARATOR", defaultCurrency.DecimalSeparator),
			ThousandSeparator: getEnvRaw("CURRENCY_THOUSAND_SEPARATOR", defaultCurrency.ThousandSeparator),
			Decimals:          getEnvInt("CURRENCY_DECIMALS", defaultCurrency.Decimals),
		},
		Calculator: CalculatorConfig{
			MarginOptions:         parseMarginOptions(os.Getenv("MARGIN_OPTIONS")),
			DefaultMargin:         getEnvInt("MARGIN_DEFAULT", 10),
			StockDisplayThreshold: getEnvInt("STOCK_DISPLAY_THRESHOLD", 1000),
			DefaultLocale:         getEnv("DEFAULT_LOCALE", "en"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

// getEnvRaw keeps whitespace-only values, which are legitimate separators.
func getEnvRaw(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

// parseMarginOptions reads a comma-separated percent menu. Negative and
// malformed entries are skipped; an empty result falls back to 0/5/10.
func parseMarginOptions(s string) []int {
	result := make([]int, 0, 3)
	for _, p := range strings.Split(s, ",") {
		if v, err := strconv.Atoi(strings.TrimSpace(p)); err == nil && v >= 0 {
			result = append(result, v)
		}
	}
	if len(result) == 0 {
		return []int{0, 5, 10}
	}
	return result
}

func parseAPIKeys(s string) map[string]bool {
	if s == "" {
		return nil
	}
	keys := strings.Split(s, ",")
	result := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			result[k] = true
		}
	}
	return result
}

func parseCORSOrigins(s string) []string {
	// local storefront development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
