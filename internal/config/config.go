package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go-paie/internal/paycalc"
)

const (
	DefaultsStandard   = "standard"
	DefaultsSimulation = "simulation"
)

type Config struct {
	Environment string
	Port        string
	JWTSecret   string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string

	RedisAddr   string
	KafkaBroker string
	MaxRetries  int

	BatchWorkers     int
	RefDataCacheTTL  time.Duration
	PayslipDefaults  string
	OutboxPollPeriod time.Duration

	RateLimitRPS   float64
	RateLimitBurst int
}

func Load() Config {
	return Config{
		Environment: getEnv("APP_ENV", "development"),
		Port:        getEnv("PORT", "3000"),
		JWTSecret:   getEnv("JWT_SECRET", ""),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "paie"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		RedisAddr:   getEnv("REDIS_ADDR", ""),
		KafkaBroker: getEnv("KAFKA_BROKER", ""),
		MaxRetries:  getEnvInt("CONNECT_MAX_RETRIES", 5),

		BatchWorkers:     getEnvInt("PAYSLIP_BATCH_WORKERS", 1),
		RefDataCacheTTL:  getEnvDuration("REFDATA_CACHE_TTL", time.Minute),
		PayslipDefaults:  strings.ToLower(getEnv("PAYSLIP_DEFAULTS", DefaultsStandard)),
		OutboxPollPeriod: getEnvDuration("OUTBOX_POLL_INTERVAL", 3*time.Second),

		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 20),
	}
}

func (c Config) Validate() error {
	if c.BatchWorkers < 1 {
		return fmt.Errorf("PAYSLIP_BATCH_WORKERS must be at least 1")
	}
	switch c.PayslipDefaults {
	case DefaultsStandard, DefaultsSimulation:
	default:
		return fmt.Errorf("PAYSLIP_DEFAULTS must be %q or %q, got %q", DefaultsStandard, DefaultsSimulation, c.PayslipDefaults)
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	return nil
}

// ValidateAPI adds the checks only the HTTP server needs. An empty HMAC key
// would accept tokens signed by anyone.
func (c Config) ValidateAPI() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET must be set")
	}
	return nil
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

// EngineDefaults maps PAYSLIP_DEFAULTS to the engine's fallback policy.
func (c Config) EngineDefaults() paycalc.Defaults {
	if c.PayslipDefaults == DefaultsSimulation {
		return paycalc.SimulationDefaults()
	}
	return paycalc.StandardDefaults()
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}
