package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

func Load() App {
	_ = godotenv.Load()

	cfg := App{
		Port:        getenv("APP_PORT", "8080"),
		Mode:        parseMode(getenv("APP_MODE", "auto")),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   getenv("JWT_SECRET", "local_dev_secret"),
		Env:         getenv("APP_ENV", "dev"),

		RedisHost:     getenv("REDIS_HOST", "localhost"),
		RedisPort:     getenv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getint("REDIS_DB", 0),

		StorageRoot:     getenv("STORAGE_ROOT", "./storage"),
		SessionSlotPath: getenv("DEMO_SESSION_FILE", "./storage/demo-session.json"),

		BookingHold:     getdur("BOOKING_HOLD", 72*time.Hour),
		CleanerInterval: getdur("CLEANER_INTERVAL", 30*time.Second),
	}

	if cfg.Mode == ModeRemote && cfg.DatabaseURL == "" {
		slog.Error("required env missing", "key", "DATABASE_URL", "mode", cfg.Mode)
		panic("missing env DATABASE_URL")
	}
	return cfg
}

func parseMode(s string) Mode {
	switch Mode(s) {
	case ModeRemote, ModeDemo, ModeAuto:
		return Mode(s)
	}
	slog.Warn("unknown APP_MODE, using auto", "value", s)
	return ModeAuto
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getdur(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
