package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/comitanigiacomo/deepstack-engine/internal/core/domain"
)

const (
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type Config struct {
	Port string

	StoreDriver string
	SQLitePath  string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	ProgramStart string
	ProgramWeeks int
	Location     *time.Location

	ScheduleFile string
	ArticlesDir  string

	AccessKeyHash string
	JWTSecret     string
	TokenTTL      time.Duration

	WatchInterval time.Duration
	RateLimit     int
}

// Load reads the environment, after merging a .env file when one exists.
func Load() (Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Println("[CONFIG] Loaded .env file")
	}
	return FromEnv()
}

func FromEnv() (Config, error) {
	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		StoreDriver:   getEnv("STORE_DRIVER", StoreSQLite),
		SQLitePath:    getEnv("SQLITE_PATH", defaultSQLitePath()),
		DBUser:        getEnv("DB_USER", "deepstack_user"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBName:        getEnv("DB_NAME", "deepstack_db"),
		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		ProgramStart:  getEnv("PROGRAM_START", domain.DefaultProgramStart),
		ScheduleFile:  os.Getenv("SCHEDULE_FILE"),
		ArticlesDir:   os.Getenv("ARTICLES_DIR"),
		AccessKeyHash: os.Getenv("ACCESS_KEY_HASH"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
	}

	var err error
	if cfg.RedisDB, err = getInt("REDIS_DB", 0); err != nil {
		return Config{}, err
	}
	if cfg.ProgramWeeks, err = getInt("PROGRAM_WEEKS", domain.DefaultTotalWeeks); err != nil {
		return Config{}, err
	}
	if cfg.RateLimit, err = getInt("RATE_LIMIT", 100); err != nil {
		return Config{}, err
	}
	if cfg.TokenTTL, err = getDuration("TOKEN_TTL", 24*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.WatchInterval, err = getDuration("WATCH_INTERVAL", time.Minute); err != nil {
		return Config{}, err
	}

	cfg.Location = time.Local
	if tz := os.Getenv("TIMEZONE"); tz != "" {
		if cfg.Location, err = time.LoadLocation(tz); err != nil {
			return Config{}, fmt.Errorf("config: TIMEZONE: %w", err)
		}
	}

	switch cfg.StoreDriver {
	case StoreSQLite, StorePostgres, StoreMemory:
	default:
		return Config{}, fmt.Errorf("config: unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	if cfg.AccessKeyHash != "" && cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("config: JWT_SECRET is required when ACCESS_KEY_HASH is set")
	}

	return cfg, nil
}

// Program builds the study calendar from the configured start and length.
func (c Config) Program() (domain.Program, error) {
	return domain.NewProgram(c.ProgramStart, c.ProgramWeeks, c.Location)
}

func (c Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

func defaultSQLitePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "deepstack.db"
	}
	return filepath.Join(dir, "deepstack", "deepstack.db")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return n, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return d, nil
}
