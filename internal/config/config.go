package config

import (
	"fmt"
	"time"
)

// Default configuration values.
const (
	defaultServiceName      = "sentiment-classifier"
	defaultServiceVersion   = "1.0.0"
	defaultServicePort      = 8080
	defaultConcurrency      = 10
	defaultBatchLimit       = 100
	defaultTruncationLength = 512
	defaultConfidenceThresh = 0.65
	defaultModelServiceURL  = "http://sentiment-ml:8081"
	defaultModelRPS         = 50
	defaultCacheBackend     = "memory"
	defaultCacheTTL         = time.Hour
	defaultRedisURL         = "localhost:6379"
	defaultLogLevel         = "info"
	defaultLogFormat        = "json"
)

// Config holds all configuration for the classifier service.
type Config struct {
	Service        ServiceConfig        `yaml:"service"`
	Classification ClassificationConfig `yaml:"classification"`
	Cache          CacheConfig          `yaml:"cache"`
	Logging        LoggingConfig        `yaml:"logging"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Port        int    `env:"CLASSIFIER_PORT"      yaml:"port"`
	Debug       bool   `env:"APP_DEBUG"            yaml:"debug"`
	Concurrency int    `env:"CLASSIFIER_CONCURRENCY" yaml:"concurrency"`
	BatchLimit  int    `yaml:"batch_limit"`
}

// ClassificationConfig holds pipeline settings.
type ClassificationConfig struct {
	// ModelEnabled wires the statistical model sidecar in.
	ModelEnabled bool `env:"MODEL_ENABLED" yaml:"model_enabled"`
	// ModelServiceURL is the sidecar base URL.
	ModelServiceURL string `env:"MODEL_SERVICE_URL" yaml:"model_service_url"`
	// TruncationLength caps the characters passed to the model.
	TruncationLength int `yaml:"truncation_length"`
	// ModelConfidenceThreshold is a reserved tuning knob; it does not
	// gate the transformer trust branch.
	ModelConfidenceThreshold float64 `yaml:"model_confidence_threshold"`
	// Lightweight forces keyword-only classification regardless of
	// model availability.
	Lightweight bool `env:"USE_LIGHTWEIGHT_SENTIMENT" yaml:"lightweight"`
	// ModelRPS and ModelBurst throttle batch-path calls to the sidecar.
	ModelRPS   int `yaml:"model_rps"`
	ModelBurst int `yaml:"model_burst"`
}

// CacheConfig holds result cache settings.
type CacheConfig struct {
	Backend       string        `env:"CACHE_BACKEND"  yaml:"backend"` // "memory" or "redis"
	TTL           time.Duration `yaml:"ttl"`
	RedisURL      string        `env:"REDIS_URL"      yaml:"redis_url"`
	RedisPassword string        `env:"REDIS_PASSWORD" yaml:"redis_password"`
	RedisDB       int           `yaml:"redis_db"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL"  yaml:"level"`
	Format string `env:"LOG_FORMAT" yaml:"format"`
}

// Load loads configuration from the specified path, applies defaults,
// and validates. Env overrides always win over file values.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := load(path, &cfg); err != nil {
		return nil, err
	}
	cfg.setDefaults()
	applyEnvOverrides(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// Validate fails fast on settings that would silently corrupt the
// pipeline's thresholds.
func (c *Config) Validate() error {
	if c.Classification.TruncationLength < 0 {
		return fmt.Errorf("classification.truncation_length must be non-negative, got %d",
			c.Classification.TruncationLength)
	}
	if t := c.Classification.ModelConfidenceThreshold; t < 0 || t > 1 {
		return fmt.Errorf("classification.model_confidence_threshold must be in [0,1], got %g", t)
	}
	if c.Cache.Backend != "memory" && c.Cache.Backend != "redis" && c.Cache.Backend != "none" {
		return fmt.Errorf("cache.backend must be memory, redis, or none, got %q", c.Cache.Backend)
	}
	if c.Service.BatchLimit <= 0 {
		return fmt.Errorf("service.batch_limit must be positive, got %d", c.Service.BatchLimit)
	}
	return nil
}

func (c *Config) setDefaults() {
	setServiceDefaults(&c.Service)
	setClassificationDefaults(&c.Classification)
	setCacheDefaults(&c.Cache)
	setLoggingDefaults(&c.Logging)
}

func setServiceDefaults(s *ServiceConfig) {
	if s.Name == "" {
		s.Name = defaultServiceName
	}
	if s.Version == "" {
		s.Version = defaultServiceVersion
	}
	if s.Port == 0 {
		s.Port = defaultServicePort
	}
	if s.Concurrency == 0 {
		s.Concurrency = defaultConcurrency
	}
	if s.BatchLimit == 0 {
		s.BatchLimit = defaultBatchLimit
	}
}

func setClassificationDefaults(cl *ClassificationConfig) {
	if cl.ModelServiceURL == "" {
		cl.ModelServiceURL = defaultModelServiceURL
	}
	if cl.TruncationLength == 0 {
		cl.TruncationLength = defaultTruncationLength
	}
	if cl.ModelConfidenceThreshold == 0 {
		cl.ModelConfidenceThreshold = defaultConfidenceThresh
	}
	if cl.ModelRPS == 0 {
		cl.ModelRPS = defaultModelRPS
	}
	if cl.ModelBurst == 0 {
		cl.ModelBurst = cl.ModelRPS
	}
}

func setCacheDefaults(ca *CacheConfig) {
	if ca.Backend == "" {
		ca.Backend = defaultCacheBackend
	}
	if ca.TTL == 0 {
		ca.TTL = defaultCacheTTL
	}
	if ca.RedisURL == "" {
		ca.RedisURL = defaultRedisURL
	}
}

func setLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = defaultLogLevel
	}
	if l.Format == "" {
		l.Format = defaultLogFormat
	}
}
