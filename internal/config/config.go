package config

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Scoring  ScoringConfig
}

type ServerConfig struct {
	Port               string
	Host               string
	Environment        string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	RateLimitPerSecond int
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type JWTConfig struct {
	AccessTokenDuration time.Duration
	PrivateKey          *rsa.PrivateKey
	PublicKey           *rsa.PublicKey
	Issuer              string
}

// ScoringWeights is the weight vector combining the four section scores
// into the overall score. Underwriting policy varies per deployment, so the
// weights are configuration, not code.
type ScoringWeights struct {
	Revenue float64
	Expense float64
	Debt    float64
	Risk    float64
}

// RedFlagThresholds are the operator-tunable limits behind the red-flag
// rule set.
type RedFlagThresholds struct {
	MaxNSFCount       int
	MaxNegativeDays   int
	MaxDebtToRevenue  float64
	MinRevenueTrend   float64
	MaxOwnerDrawRatio float64
}

type ScoringConfig struct {
	Weights    ScoringWeights
	Thresholds RedFlagThresholds
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:               getEnv("SERVER_PORT", "8080"),
			Host:               getEnv("SERVER_HOST", "localhost"),
			Environment:        getEnv("APP_ENV", "development"),
			ReadTimeout:        getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:       getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 10),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "underwriting_user"),
			Password:        getEnv("DB_PASSWORD", "underwriting_password"),
			Name:            getEnv("DB_NAME", "underwriting_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		JWT: JWTConfig{
			AccessTokenDuration: getDurationEnv("JWT_ACCESS_TOKEN_DURATION", 8*time.Hour),
			Issuer:              getEnv("JWT_ISSUER", "mca-underwriting"),
		},
		Scoring: LoadScoringConfig(),
	}

	if err := loadJWTKeys(&config.JWT); err != nil {
		log.Fatalf("failed to load JWT keys: %v", err)
	}

	return config
}

// LoadScoringConfig reads the scoring weight vector and red-flag thresholds
// from the environment. Weights default to an equal 25% split and are
// normalized so they always sum to 1.
func LoadScoringConfig() ScoringConfig {
	cfg := ScoringConfig{
		Weights: ScoringWeights{
			Revenue: getFloatEnv("SCORE_WEIGHT_REVENUE", 0.25),
			Expense: getFloatEnv("SCORE_WEIGHT_EXPENSE", 0.25),
			Debt:    getFloatEnv("SCORE_WEIGHT_DEBT", 0.25),
			Risk:    getFloatEnv("SCORE_WEIGHT_RISK", 0.25),
		},
		Thresholds: RedFlagThresholds{
			MaxNSFCount:       getIntEnv("FLAG_MAX_NSF_COUNT", 5),
			MaxNegativeDays:   getIntEnv("FLAG_MAX_NEGATIVE_DAYS", 10),
			MaxDebtToRevenue:  getFloatEnv("FLAG_MAX_DEBT_TO_REVENUE", 0.30),
			MinRevenueTrend:   getFloatEnv("FLAG_MIN_REVENUE_TREND", -0.20),
			MaxOwnerDrawRatio: getFloatEnv("FLAG_MAX_OWNER_DRAW_RATIO", 0.25),
		},
	}
	cfg.Weights = cfg.Weights.Normalized()
	return cfg
}

// Normalized scales the weights so they sum to 1. A degenerate all-zero
// vector falls back to the equal split.
func (w ScoringWeights) Normalized() ScoringWeights {
	sum := w.Revenue + w.Expense + w.Debt + w.Risk
	if sum <= 0 || math.IsNaN(sum) {
		return ScoringWeights{Revenue: 0.25, Expense: 0.25, Debt: 0.25, Risk: 0.25}
	}
	return ScoringWeights{
		Revenue: w.Revenue / sum,
		Expense: w.Expense / sum,
		Debt:    w.Debt / sum,
		Risk:    w.Risk / sum,
	}
}

// DSN returns the postgres connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// loadJWTKeys loads the RSA keypair from base64-encoded PEM in the
// environment. Development falls back to an ephemeral generated keypair so
// the server can start without provisioning.
func loadJWTKeys(cfg *JWTConfig) error {
	privateKeyB64 := os.Getenv("JWT_PRIVATE_KEY")
	if privateKeyB64 == "" {
		if os.Getenv("APP_ENV") == "production" {
			return errors.New("JWT_PRIVATE_KEY is required in production")
		}
		log.Println("JWT_PRIVATE_KEY not set, generating ephemeral development keypair")
		key, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			return fmt.Errorf("failed to generate development key: %w", err)
		}
		cfg.PrivateKey = key
		cfg.PublicKey = &key.PublicKey
		return nil
	}

	privateKeyPEM, err := base64.StdEncoding.DecodeString(privateKeyB64)
	if err != nil {
		return fmt.Errorf("failed to decode JWT_PRIVATE_KEY: %w", err)
	}

	block, _ := pem.Decode(privateKeyPEM)
	if block == nil {
		return errors.New("failed to parse PEM block from JWT_PRIVATE_KEY")
	}

	privateKey, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err != nil {
		keyAny, err2 := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err2 != nil {
			return fmt.Errorf("failed to parse private key: %w", err)
		}
		rsaKey, ok := keyAny.(*rsa.PrivateKey)
		if !ok {
			return errors.New("JWT_PRIVATE_KEY is not an RSA key")
		}
		privateKey = rsaKey
	}

	cfg.PrivateKey = privateKey
	cfg.PublicKey = &privateKey.PublicKey
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("invalid value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return intValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("invalid value for %s, using default %g", key, defaultValue)
		return defaultValue
	}
	return floatValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("invalid value for %s, using default %s", key, defaultValue)
		return defaultValue
	}
	return duration
}
