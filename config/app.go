package config

import "time"

// Mode selects the data source once at startup instead of falling back
// per call. Demo runs everything against the seeded in-memory catalog.
type Mode string

const (
	ModeRemote Mode = "remote"
	ModeDemo   Mode = "demo"
	ModeAuto   Mode = "auto"
)

type App struct {
	Port        string `env:"APP_PORT" default:"8080"`
	Mode        Mode   `env:"APP_MODE" default:"auto"`
	DatabaseURL string `env:"DATABASE_URL"`
	JWTSecret   string `env:"JWT_SECRET,required"`
	Env         string `env:"APP_ENV" default:"dev"`

	RedisHost     string `env:"REDIS_HOST" default:"localhost"`
	RedisPort     string `env:"REDIS_PORT" default:"6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" default:"0"`

	StorageRoot     string `env:"STORAGE_ROOT" default:"./storage"`
	SessionSlotPath string `env:"DEMO_SESSION_FILE" default:"./storage/demo-session.json"`

	BookingHold     time.Duration `env:"BOOKING_HOLD" default:"72h"`
	CleanerInterval time.Duration `env:"CLEANER_INTERVAL" default:"30s"`
}
