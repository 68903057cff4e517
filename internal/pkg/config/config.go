package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Session  SessionConfig
	Identity IdentityConfig
	Paths    PathsConfig
	Mongo    MongoConfig
	Redis    RedisConfig
}

type SessionConfig struct {
	Secret     string        `env:"SESSION_SECRET"`
	TTL        time.Duration `env:"SESSION_TTL,    default=168h"` // 7 days
	CookieName string        `env:"SESSION_COOKIE, default=portal_session"`
}

type IdentityConfig struct {
	BaseURL string        `env:"IDENTITY_URL,     default=http://localhost:9100"`
	Timeout time.Duration `env:"IDENTITY_TIMEOUT, default=5s"`
}

type PathsConfig struct {
	Login   string `env:"LOGIN_PATH,   default=/login"`
	Landing string `env:"LANDING_PATH, default=/dashboard"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=customer_portal"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// IsProduction reports whether the portal runs in production mode; session
// cookies are marked Secure only then.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
