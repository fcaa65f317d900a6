package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

//go:embed defaults.yaml
var defaults []byte

// ---- Root ----

type Config struct {
	HTTP      HTTPConfig      `mapstructure:"http"`
	GHL       GHLConfig       `mapstructure:"ghl"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Redis     RedisConfig     `mapstructure:"redis"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Log       LogConfig       `mapstructure:"log"`
}

// ---- Leaf structs ----

type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

type GHLConfig struct {
	APIKey     string        `mapstructure:"api_key"`
	LocationID string        `mapstructure:"location_id"`
	CalendarID string        `mapstructure:"calendar_id"` // optional default calendar
	BaseURL    string        `mapstructure:"base_url"`
	Version    string        `mapstructure:"version"` // GHL API version header
	Timeout    time.Duration `mapstructure:"timeout"`
	Breaker    BreakerConfig `mapstructure:"breaker"`
}

type BreakerConfig struct {
	FailThreshold int `mapstructure:"fail_threshold"`
	OpenForMs     int `mapstructure:"open_for_ms"`
}

type AuthConfig struct {
	// APIKey protects the inbound /v1 endpoints. Empty disables inbound auth
	// (the plugin manifest advertises auth type "none").
	APIKey string `mapstructure:"api_key"`
}

type RedisConfig struct {
	Addr        string        `mapstructure:"addr"` // empty disables redis features
	Password    string        `mapstructure:"password"`
	DB          int           `mapstructure:"db"`
	DialTimeout time.Duration `mapstructure:"dial_timeout"`
}

type RateLimitConfig struct {
	RPS int `mapstructure:"rps"`
}

type CacheConfig struct {
	PipelinesTTL time.Duration `mapstructure:"pipelines_ttl"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads embedded defaults, merges user YAML (if provided), and applies
// env overrides (GHLBRIDGE_*). The upstream credentials also bind to the plain
// GHL_* names so a .env written for the hosted deployment keeps working.
func Load(path string) (Config, error) {
	v := viper.New()

	// embedded defaults
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(defaults)); err != nil {
		return Config{}, err
	}

	if path != "" {
		v.SetConfigFile(path)
		_ = v.MergeInConfig()
	}

	// env override (GHLBRIDGE_*)
	v.SetEnvPrefix("GHLBRIDGE")
	v.AutomaticEnv()

	// legacy env names
	_ = v.BindEnv("ghl.api_key", "GHL_API_KEY")
	_ = v.BindEnv("ghl.location_id", "GHL_LOCATION_ID")
	_ = v.BindEnv("ghl.calendar_id", "GHL_CALENDAR_ID")
	_ = v.BindEnv("ghl.base_url", "GHL_API_BASE")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the credentials every outbound call depends on.
func (c Config) Validate() error {
	if c.GHL.APIKey == "" {
		return fmt.Errorf("ghl.api_key (GHL_API_KEY) must be set")
	}
	if c.GHL.LocationID == "" {
		return fmt.Errorf("ghl.location_id (GHL_LOCATION_ID) must be set")
	}
	return nil
}
