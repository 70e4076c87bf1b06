package configloader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"dao_networks/internal/domain/entity"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Environment variables carrying secrets.
const (
	EnvInfuraProjectID       = "INFURA_MAINNET_PROJECT_ID"
	EnvAlchemyPolygonMainnet = "ALCHEMY_KEY_POLYGON_MAINNET"
	EnvAlchemyPolygonMumbai  = "ALCHEMY_KEY_POLYGON_MUMBAI"
)

// ServerConfig holds server-specific configurations.
type ServerConfig struct {
	Port                string `yaml:"port"`
	ReadTimeoutSeconds  int    `yaml:"readTimeoutSeconds"`
	WriteTimeoutSeconds int    `yaml:"writeTimeoutSeconds"`
	IdleTimeoutSeconds  int    `yaml:"idleTimeoutSeconds"`
	ShutdownSeconds     int    `yaml:"shutdownSeconds"`

	// TrustedProxies lists the proxy IPs/CIDRs allowed to set X-Forwarded-For. Empty trusts none.
	TrustedProxies []string `yaml:"trustedProxies"`
}

// LoggingConfig holds logging-specific configurations.
type LoggingConfig struct {
	Level string `yaml:"level"` // e.g., "debug", "info", "warn", "error"
}

// RateLimitConfig limits requests per client IP on the API.
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requestsPerSecond"`
	Burst             int     `yaml:"burst"`
	IdleTTLSeconds    int     `yaml:"idleTTLSeconds"` // buckets of clients idle this long are dropped
}

// CORSConfig holds the allowed origins of the API. Empty means all origins.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

// SecretsConfig holds API keys. They are read from the environment only.
type SecretsConfig struct {
	InfuraProjectID string
	AlchemyKeys     map[entity.SupportedNetwork]string
}

// Config is the top-level configuration structure.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Logging   LoggingConfig   `yaml:"logging"`
	RateLimit RateLimitConfig `yaml:"rateLimit"`
	CORS      CORSConfig      `yaml:"cors"`
	Secrets   SecretsConfig   `yaml:"-"`
}

// Load reads the YAML configuration file from the given path and the secrets from the environment.
// A missing file is not an error: defaults are used instead.
func Load(path string) (*Config, error) {
	loadDotEnv()

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logrus.Warnf("Config file %s not found, using defaults", path)
	case err != nil:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config data from %s: %w", path, err)
		}
	}

	applyDefaults(&cfg)
	cfg.Secrets = secretsFromEnv()

	logrus.Info("Configuration loaded successfully.")
	return &cfg, nil
}

func loadDotEnv() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load(".env.local"); err != nil {
			logrus.Debug("No .env or .env.local file found. Using environment variables.")
		}
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
		logrus.Infof("Server.Port not set, defaulting to %s", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeoutSeconds <= 0 {
		cfg.Server.ReadTimeoutSeconds = 10
	}
	if cfg.Server.WriteTimeoutSeconds <= 0 {
		cfg.Server.WriteTimeoutSeconds = 10
	}
	if cfg.Server.IdleTimeoutSeconds <= 0 {
		cfg.Server.IdleTimeoutSeconds = 60
	}
	if cfg.Server.ShutdownSeconds <= 0 {
		cfg.Server.ShutdownSeconds = 5
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	if cfg.RateLimit.RequestsPerSecond <= 0 {
		cfg.RateLimit.RequestsPerSecond = 20
		logrus.Infof("RateLimit.RequestsPerSecond not set, defaulting to %.0f", cfg.RateLimit.RequestsPerSecond)
	}
	if cfg.RateLimit.Burst <= 0 {
		cfg.RateLimit.Burst = 40
	}
	if cfg.RateLimit.IdleTTLSeconds <= 0 {
		cfg.RateLimit.IdleTTLSeconds = 600
	}
}

func secretsFromEnv() SecretsConfig {
	s := SecretsConfig{
		InfuraProjectID: os.Getenv(EnvInfuraProjectID),
		AlchemyKeys: map[entity.SupportedNetwork]string{
			entity.NetworkPolygon: os.Getenv(EnvAlchemyPolygonMainnet),
			entity.NetworkMumbai:  os.Getenv(EnvAlchemyPolygonMumbai),
		},
	}
	if s.InfuraProjectID == "" {
		logrus.Warnf("%s is not set. Infura RPC endpoints will not be available.", EnvInfuraProjectID)
	}
	return s
}

// GetEnv returns the value of key or fallback when it is unset.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
