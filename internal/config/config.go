package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Generation settings.
	FarmName       string
	RandomSeed     uint64
	RandomSeedSet  bool
	MaxDatasetDays int

	// Scheduled publication to Kafka.
	PublishEnabled  bool
	PublishSchedule string
	BatchSize       int
	KafkaBrokers    []string
	KafkaTopic      string

	DatasetCacheSize int
}

// Load reads configuration from environment variables, applying defaults
// where unset. Variables from a .env file (ENV_FILE, or ./.env when present)
// fill in anything not already set in the environment.
func Load() (*Config, error) {
	if err := loadEnvFile(os.Getenv("ENV_FILE")); err != nil {
		return nil, err
	}

	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	batchSize, err := sharedcfg.ParseBatchSize()
	if err != nil {
		return nil, err
	}

	seed, seedSet, err := parseSeed()
	if err != nil {
		return nil, err
	}

	maxDays, err := parsePositiveInt("MAX_DATASET_DAYS", 3650)
	if err != nil {
		return nil, err
	}

	cacheSize, err := parseNonNegativeInt("DATASET_CACHE_SIZE", 128)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		FarmName:       sharedcfg.EnvOrDefault("FARM_NAME", "Demo Agricultural Farm"),
		RandomSeed:     seed,
		RandomSeedSet:  seedSet,
		MaxDatasetDays: maxDays,

		PublishEnabled:  os.Getenv("PUBLISH_ENABLED") == "true",
		PublishSchedule: sharedcfg.EnvOrDefault("PUBLISH_SCHEDULE", "@every 1m"),
		BatchSize:       batchSize,
		KafkaBrokers:    sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaTopic:      sharedcfg.EnvOrDefault("KAFKA_TOPIC", "farm-records"),

		DatasetCacheSize: cacheSize,
	}

	if _, err := cron.ParseStandard(cfg.PublishSchedule); err != nil {
		return nil, fmt.Errorf("invalid PUBLISH_SCHEDULE: %w", err)
	}
	if cfg.PublishEnabled {
		if len(cfg.KafkaBrokers) == 0 {
			return nil, errors.New("KAFKA_BROKERS is required when PUBLISH_ENABLED is true")
		}
		if cfg.KafkaTopic == "" {
			return nil, errors.New("KAFKA_TOPIC is required when PUBLISH_ENABLED is true")
		}
	}

	return cfg, nil
}

func loadEnvFile(path string) error {
	if path == "" {
		// A missing ./.env is normal when configuration comes from the environment.
		_ = godotenv.Load()
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed loading env file %s: %w", path, err)
	}
	return nil
}

func parseSeed() (uint64, bool, error) {
	s := os.Getenv("RANDOM_SEED")
	if s == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid RANDOM_SEED %q: %w", s, err)
	}
	return v, true, nil
}

func parsePositiveInt(key string, fallback int) (int, error) {
	v, err := parseNonNegativeInt(key, fallback)
	if err != nil {
		return 0, err
	}
	if v == 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", key)
	}
	return v, nil
}

func parseNonNegativeInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid %s %q", key, s)
	}
	return v, nil
}
