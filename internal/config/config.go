package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Admin    AdminConfig
	Advance  AdvanceConfig
	Cache    CacheConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MinConns int
	MaxConns int
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// AdminConfig holds the credentials of the single admin principal.
type AdminConfig struct {
	Username string
	Password string
}

// MonthlyAdvancePolicy selects how the rolling monthly advance ceiling is
// enforced. The deployed variants disagreed on the rule, so it is configurable.
type MonthlyAdvancePolicy string

const (
	// MonthlyPolicyFlat caps total advances per worker per month at a fixed amount.
	MonthlyPolicyFlat MonthlyAdvancePolicy = "flat"
	// MonthlyPolicyWage caps total advances at daily_wage * days in the month.
	MonthlyPolicyWage MonthlyAdvancePolicy = "wage"
	// MonthlyPolicyNone disables the monthly ceiling entirely.
	MonthlyPolicyNone MonthlyAdvancePolicy = "none"
)

// AdvanceConfig holds the cash-advance ceilings.
type AdvanceConfig struct {
	PerTransactionCeiling decimal.Decimal
	MonthlyPolicy         MonthlyAdvancePolicy
	MonthlyCeiling        decimal.Decimal
}

// CacheConfig holds the attendance cache sizing.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

func Load() (*Config, error) {
	// .env is optional; deployments may set the environment directly.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	dbMinConns, err := strconv.Atoi(getEnv("DB_MIN_CONNS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}
	dbMaxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "blazecore_payroll"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MinConns: dbMinConns,
		MaxConns: dbMaxConns,
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Admin credentials
	config.Admin = AdminConfig{
		Username: getEnv("ADMIN_USERNAME", "admin"),
		Password: getEnv("ADMIN_PASSWORD", ""),
	}

	// Advance ceilings
	perTx, err := decimal.NewFromString(getEnv("ADVANCE_MAX_AMOUNT", "50000"))
	if err != nil {
		return nil, fmt.Errorf("invalid ADVANCE_MAX_AMOUNT: %w", err)
	}
	monthly, err := decimal.NewFromString(getEnv("ADVANCE_MONTHLY_CEILING", "100000"))
	if err != nil {
		return nil, fmt.Errorf("invalid ADVANCE_MONTHLY_CEILING: %w", err)
	}
	policy := MonthlyAdvancePolicy(getEnv("ADVANCE_MONTHLY_POLICY", string(MonthlyPolicyFlat)))
	switch policy {
	case MonthlyPolicyFlat, MonthlyPolicyWage, MonthlyPolicyNone:
	default:
		return nil, fmt.Errorf("invalid ADVANCE_MONTHLY_POLICY: %q", policy)
	}
	config.Advance = AdvanceConfig{
		PerTransactionCeiling: perTx,
		MonthlyPolicy:         policy,
		MonthlyCeiling:        monthly,
	}

	// Attendance cache
	cacheSize, err := strconv.Atoi(getEnv("CACHE_SIZE", "1000"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_SIZE: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "300s"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}
	config.Cache = CacheConfig{
		Size: cacheSize,
		TTL:  cacheTTL,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Admin.Password == "" {
		return fmt.Errorf("ADMIN_PASSWORD is required")
	}
	if c.Advance.PerTransactionCeiling.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("ADVANCE_MAX_AMOUNT must be positive")
	}
	if c.Cache.Size <= 0 {
		return fmt.Errorf("CACHE_SIZE must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
