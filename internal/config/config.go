// README: Config loader (viper) with env defaults for HTTP, tariff source, DB, Redis and logging.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

const envPrefix = "TARIFA"

const (
	TariffSourceEmbedded = "embedded"
	TariffSourcePostgres = "postgres"
)

// Config is read from TARIFA_* environment variables, optionally backed by a
// .env file in the working directory holding the same keys without prefix.
type Config struct {
	HTTPAddr            string `mapstructure:"HTTP_ADDR"`
	TariffSource        string `mapstructure:"TARIFF_SOURCE"`
	DBDSN               string `mapstructure:"DB_DSN"`
	RedisAddr           string `mapstructure:"REDIS_ADDR"`
	ManualQuoteTTLHours int    `mapstructure:"MANUAL_QUOTE_TTL_HOURS"`
	LogLevel            string `mapstructure:"LOG_LEVEL"`
	LogDevelopment      bool   `mapstructure:"LOG_DEVELOPMENT"`
}

func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("TARIFF_SOURCE", TariffSourceEmbedded)
	v.SetDefault("DB_DSN", "")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("MANUAL_QUOTE_TTL_HOURS", 168)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DEVELOPMENT", false)

	if _, err := os.Stat(".env"); err == nil {
		v.SetConfigFile(".env")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read .env: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.TariffSource = strings.ToLower(strings.TrimSpace(cfg.TariffSource))
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.TariffSource {
	case TariffSourceEmbedded:
	case TariffSourcePostgres:
		if c.DBDSN == "" {
			return errors.New("TARIFA_DB_DSN is required when TARIFA_TARIFF_SOURCE=postgres")
		}
	default:
		return fmt.Errorf("TARIFA_TARIFF_SOURCE: unknown source %q", c.TariffSource)
	}
	if c.ManualQuoteTTLHours <= 0 {
		return fmt.Errorf("TARIFA_MANUAL_QUOTE_TTL_HOURS must be positive, got %d", c.ManualQuoteTTLHours)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("TARIFA_LOG_LEVEL: %w", err)
	}
	return nil
}

func (c Config) ManualQuoteTTL() time.Duration {
	return time.Duration(c.ManualQuoteTTLHours) * time.Hour
}

// ManualQuotesEnabled reports whether a Redis address was configured.
func (c Config) ManualQuotesEnabled() bool {
	return c.RedisAddr != ""
}
