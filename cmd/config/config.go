package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Backend     BackendConfig
	Redis       RedisConfig
	Auth        AuthConfig
	Admin       AdminConfig
	Catalog     CatalogConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// BackendConfig points at the hosted table API. APIKey is the static
// publishable key sent on every request.
type BackendConfig struct {
	URL            string
	APIKey         string
	RequestTimeout time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type AuthConfig struct {
	JWTSecret      string
	JWTExpiration  time.Duration
	SessionExpTime time.Duration
}

// AdminConfig holds the single admin credential pair. PasswordHash is
// a bcrypt hash; this gates the dashboard routes only.
type AdminConfig struct {
	Username     string
	PasswordHash string
}

type CatalogConfig struct {
	ProductCacheTTL time.Duration
}

// Load reads configuration from the environment. A .env file is
// honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getenv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getenv("SERVER_PORT", "8080"),
			ReadTimeout:  getduration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getduration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  getduration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Backend: BackendConfig{
			URL:            getenv("BACKEND_URL", "http://localhost:54321"),
			APIKey:         getenv("BACKEND_API_KEY", ""),
			RequestTimeout: getduration("BACKEND_REQUEST_TIMEOUT", 15*time.Second),
		},
		Redis: RedisConfig{
			Host:     getenv("REDIS_HOST", "localhost"),
			Port:     getint("REDIS_PORT", 6379),
			Password: getenv("REDIS_PASSWORD", ""),
			DB:       getint("REDIS_DB", 0),
		},
		Auth: AuthConfig{
			JWTSecret:      getenv("JWT_SECRET", "dev-secret"),
			JWTExpiration:  getduration("JWT_EXPIRATION", 12*time.Hour),
			SessionExpTime: getduration("SESSION_EXPIRATION", 12*time.Hour),
		},
		Admin: AdminConfig{
			Username:     getenv("ADMIN_USERNAME", "admin123"),
			PasswordHash: getenv("ADMIN_PASSWORD_HASH", ""),
		},
		Catalog: CatalogConfig{
			ProductCacheTTL: getduration("PRODUCT_CACHE_TTL", 5*time.Minute),
		},
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getduration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
