package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Mongo MongoConfig

	// Middleware
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
	TrustedProxies  []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// MongoConfig describes the document store. URI wins over the discrete
// host/port/user/password fields when set.
type MongoConfig struct {
	URI        string
	Host       string
	Port       int
	User       string
	Password   string
	Database   string
	Collection string
	Timeout    time.Duration
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
	Burst          int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	cfg.HTTPServer.TrustedProxies = v.GetStringSlice("http_server.trusted_proxies")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// MongoDB
	cfg.Mongo.URI = v.GetString("mongo.uri")
	cfg.Mongo.Host = v.GetString("mongo.host")
	cfg.Mongo.Port = v.GetInt("mongo.port")
	cfg.Mongo.User = v.GetString("mongo.user")
	cfg.Mongo.Password = v.GetString("mongo.password")
	cfg.Mongo.Database = v.GetString("mongo.database")
	cfg.Mongo.Collection = v.GetString("mongo.collection")
	cfg.Mongo.Timeout = v.GetDuration("mongo.timeout")
	if mongoURI := v.GetString("mongo_uri"); mongoURI != "" {
		cfg.Mongo.URI = mongoURI
	}

	// Rate limiting
	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.Burst = v.GetInt("rate_limit.burst")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.shutdown_timeout", "10s")
	v.SetDefault("http_server.trusted_proxies", []string{})
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("mongo.host", "localhost")
	v.SetDefault("mongo.port", 27017)
	v.SetDefault("mongo.database", "catalog")
	v.SetDefault("mongo.collection", "items")
	v.SetDefault("mongo.timeout", "5s")

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 600)
	v.SetDefault("rate_limit.burst", 60)
}

func (c *Config) validate() error {
	if c.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive, got %d", c.HTTPServer.Port)
	}
	if c.Mongo.URI == "" && c.Mongo.Host == "" {
		return fmt.Errorf("mongo.uri or mongo.host is required")
	}
	if c.Mongo.Database == "" {
		return fmt.Errorf("mongo.database is required")
	}
	if c.Mongo.Collection == "" {
		return fmt.Errorf("mongo.collection is required")
	}
	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMin <= 0 {
		return fmt.Errorf("rate_limit.requests_per_min must be positive when rate limiting is enabled")
	}
	return nil
}
