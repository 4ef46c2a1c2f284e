package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers.
const (
	StoreMemory   = "memory"
	StoreSupabase = "supabase"
	StorePostgres = "postgres"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Calendar
	Calendar CalendarConfig
	Store    StoreConfig
	Supabase SupabaseConfig
	Postgres PostgresConfig

	// External sources
	GoogleCalendar GoogleCalendarConfig
	Feeds          []FeedConfig
	Feed           FeedRefreshConfig
	Cache          CacheConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerMin int
}

type CalendarConfig struct {
	Timezone string
}

type StoreConfig struct {
	Driver string
}

type SupabaseConfig struct {
	URL     string
	APIKey  string
	Schema  string
	Timeout time.Duration
}

type PostgresConfig struct {
	DSN string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
	Page            string
	Category        string
}

// FeedConfig is one subscribed ICS feed.
type FeedConfig struct {
	ID       string `mapstructure:"id"`
	URL      string `mapstructure:"url"`
	Page     string `mapstructure:"page"`
	Category string `mapstructure:"category"`
}

type FeedRefreshConfig struct {
	RefreshCron string
	Timeout     time.Duration
}

type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// Load loads configuration using Viper.
// An optional .env is loaded first so its values reach viper's env lookup.
// Config file name: config.yaml, searched in ./config, ., /etc/cie/
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/cie/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Calendar & store
	cfg.Calendar.Timezone = viper.GetString("calendar.timezone")
	cfg.Store.Driver = strings.ToLower(viper.GetString("store.driver"))

	cfg.Supabase.URL = viper.GetString("supabase.url")
	cfg.Supabase.APIKey = viper.GetString("supabase.api_key")
	cfg.Supabase.Schema = viper.GetString("supabase.schema")
	cfg.Supabase.Timeout = viper.GetDuration("supabase.timeout")
	if url := viper.GetString("supabase_url"); url != "" {
		cfg.Supabase.URL = url
	}
	if key := viper.GetString("supabase_anon_key"); key != "" {
		cfg.Supabase.APIKey = key
	}

	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}

	// External sources
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.Page = viper.GetString("google_calendar.page")
	cfg.GoogleCalendar.Category = viper.GetString("google_calendar.category")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	if err := viper.UnmarshalKey("feeds", &cfg.Feeds); err != nil {
		return nil, fmt.Errorf("error reading feeds: %w", err)
	}
	cfg.Feed.RefreshCron = viper.GetString("feed.refresh_cron")
	cfg.Feed.Timeout = viper.GetDuration("feed.timeout")

	cfg.Cache.Size = viper.GetInt("cache.size")
	cfg.Cache.TTL = viper.GetDuration("cache.ttl")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings that cannot be defaulted.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreMemory:
	case StoreSupabase:
		if c.Supabase.URL == "" || c.Supabase.APIKey == "" {
			return errors.New("store.driver supabase requires supabase.url and supabase.api_key")
		}
	case StorePostgres:
		if c.Postgres.DSN == "" {
			return errors.New("store.driver postgres requires postgres.dsn")
		}
	default:
		return fmt.Errorf("unknown store.driver %q", c.Store.Driver)
	}

	if _, err := time.LoadLocation(c.Calendar.Timezone); err != nil {
		return fmt.Errorf("invalid calendar.timezone %q: %w", c.Calendar.Timezone, err)
	}

	seen := make(map[string]bool, len(c.Feeds))
	for i, f := range c.Feeds {
		if f.ID == "" || f.URL == "" || f.Page == "" {
			return fmt.Errorf("feed %d: id, url and page are required", i)
		}
		if seen[f.ID] {
			return fmt.Errorf("feed %s: duplicate id", f.ID)
		}
		seen[f.ID] = true
	}

	if c.GoogleCalendar.CredentialsPath != "" && c.GoogleCalendar.Page == "" {
		return errors.New("google_calendar.page is required when credentials are set")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 120)

	viper.SetDefault("calendar.timezone", "Asia/Kolkata")
	viper.SetDefault("store.driver", StoreMemory)
	viper.SetDefault("supabase.timeout", "15s")

	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("feed.refresh_cron", "*/30 * * * *")
	viper.SetDefault("feed.timeout", "15s")
	viper.SetDefault("cache.size", 256)
	viper.SetDefault("cache.ttl", "30m")
}
