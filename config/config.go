package config

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	defaultLogLevel   = "debug"
	defaultRedisTTL   = 5 * time.Second
	defaultKafkaTopic = "foods"
)

var (
	ErrMissingDatabaseURL = errors.New("DATABASE_URL is required")
	ErrInvalidLogLevel    = errors.New("invalid log level")
	ErrInvalidCacheTTL    = errors.New("REDIS_TTL must be positive")
)

type Config struct {
	DatabaseURL string        `koanf:"database_url"`
	LogLevel    string        `koanf:"log_level"`
	RedisAddr   string        `koanf:"redis_addr"`
	RedisTTL    time.Duration `koanf:"redis_ttl"`
	KafkaBroker string        `koanf:"kafka_broker"`
	KafkaTopic  string        `koanf:"kafka_topic"`
	MetricsAddr string        `koanf:"metrics_addr"`
}

// Load reads an optional .env file, then the process environment.
// DATABASE_URL -> database_url, LOG_LEVEL -> log_level, ...
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	k := koanf.New(".")
	envProvider := env.ProviderWithValue("", ".", func(key, value string) (string, interface{}) {
		if value == "" {
			return "", nil
		}
		return strings.ToLower(key), value
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := Config{
		LogLevel:   defaultLogLevel,
		RedisTTL:   defaultRedisTTL,
		KafkaTopic: defaultKafkaTopic,
	}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("decode environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return ErrMissingDatabaseURL
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("%w: %s (must be debug, info, warn, or error)", ErrInvalidLogLevel, c.LogLevel)
	}

	if c.RedisAddr != "" && c.RedisTTL <= 0 {
		return ErrInvalidCacheTTL
	}
	return nil
}

// OpenPostgres opens and pings the lib/pq pool and hands it to gorm.
func OpenPostgres(cfg *Config) (*gorm.DB, error) {
	sqlDB, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	db, err := NewGorm(sqlDB, cfg.LogLevel)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// NewGorm wraps an existing pool. Inserts run as single auto-committed
// statements, without gorm's implicit transaction.
func NewGorm(sqlDB *sql.DB, logLevel string) (*gorm.DB, error) {
	level := gormlogger.Silent
	if strings.EqualFold(logLevel, "debug") {
		level = gormlogger.Info
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("init gorm: %w", err)
	}
	return db, nil
}

func MustInitPostgres(cfg *Config) *gorm.DB {
	db, err := OpenPostgres(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	return db
}

func MustInitRedis(cfg *Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis: ", err)
	}

	return client
}

func NewKafkaWriter(cfg *Config) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.KafkaBroker),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 10 * time.Millisecond,
	}
}
