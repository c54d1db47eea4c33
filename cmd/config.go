package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendDynamoDB = "dynamodb"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	FacilityCode string
	VINWMI       string

	SequenceBackend string
	RedisAddr       string
	RedisPassword   string

	LedgerBackend    string
	DynamoDBTable    string
	DynamoDBRegion   string
	DynamoDBEndpoint string

	RelaySchedule    string
	RelayBatchSize   int
	RelayMaxAttempts int

	ShortageParts []string
	LogLevel      slog.Level
}

// LoadConfig reads the environment. A .env file in the working directory is
// loaded first when present; variables already set take precedence.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	batchSize, batchErr := intVariable("RELAY_BATCH_SIZE", 100)
	maxAttempts, attemptsErr := intVariable("RELAY_MAX_ATTEMPTS", 10)
	level, levelErr := logLevel(variable("LOG_LEVEL", "info"))

	cfg := Config{
		HTTPPort:   variable("HTTP_PORT", "8080"),
		DBHost:     variable("DB_HOST", "localhost"),
		DBPort:     variable("DB_PORT", "5432"),
		DBUser:     variable("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     variable("DB_NAME", "automfg"),
		DBSslMode:  variable("DB_SSLMODE", "disable"),

		FacilityCode: variable("FACILITY_CODE", "F01"),
		VINWMI:       variable("VIN_WMI", "5YJ"),

		SequenceBackend: strings.ToLower(variable("SEQUENCE_BACKEND", BackendPostgres)),
		RedisAddr:       variable("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),

		LedgerBackend:    strings.ToLower(variable("LEDGER_BACKEND", BackendPostgres)),
		DynamoDBTable:    variable("DYNAMODB_TABLE", "processed_events"),
		DynamoDBRegion:   variable("DYNAMODB_REGION", "us-east-1"),
		DynamoDBEndpoint: os.Getenv("DYNAMODB_ENDPOINT"),

		RelaySchedule:    variable("RELAY_SCHEDULE", "@every 2s"),
		RelayBatchSize:   batchSize,
		RelayMaxAttempts: maxAttempts,

		ShortageParts: listVariable("SHORTAGE_PARTS"),
		LogLevel:      level,
	}

	if err := errors.Join(batchErr, attemptsErr, levelErr, cfg.validate()); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

func (c Config) validate() error {
	var errs []error
	if c.SequenceBackend != BackendPostgres && c.SequenceBackend != BackendRedis {
		errs = append(errs, fmt.Errorf("SEQUENCE_BACKEND must be %s or %s, got %q", BackendPostgres, BackendRedis, c.SequenceBackend))
	}
	if c.LedgerBackend != BackendPostgres && c.LedgerBackend != BackendDynamoDB {
		errs = append(errs, fmt.Errorf("LEDGER_BACKEND must be %s or %s, got %q", BackendPostgres, BackendDynamoDB, c.LedgerBackend))
	}
	return errors.Join(errs...)
}

func variable(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func intVariable(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, raw)
	}
	return v, nil
}

func listVariable(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func logLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}
