package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds every knob the client reads from the environment.
type Config struct {
	APIURL      string        `env:"ERP_API_URL,     default=http://localhost:8000"`
	StateDir    string        `env:"ERP_STATE_DIR"`
	StoreKind   string        `env:"ERP_STORE,       default=file"`
	HTTPTimeout time.Duration `env:"ERP_HTTP_TIMEOUT, default=15s"`
	LogLevel    string        `env:"LOG_LEVEL,       default=info"`
	LogPretty   bool          `env:"LOG_PRETTY,      default=true"`

	Redis RedisConfig
}

// RedisConfig configures the shared-terminal session store. Only read when
// ERP_STORE=redis.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
// StateDir falls back to a per-user config directory when unset.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if cfg.StateDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve state dir: %w", err)
		}
		cfg.StateDir = filepath.Join(base, "inhouse-erp")
	}

	return &cfg, nil
}
