package config

import (
	"log"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	CORSOrigins       string `mapstructure:"CORS_ORIGINS"`

	// Key-value store.
	StoreDriver    string `mapstructure:"STORE_DRIVER"`
	StoreNamespace string `mapstructure:"STORE_NAMESPACE"`
	BadgerDir      string `mapstructure:"BADGER_DIR"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// MongoDB configuration.
	DatabaseURL   string `mapstructure:"DATABASE_URL"`
	MongoDatabase string `mapstructure:"MONGO_DATABASE"`

	// Booking.
	UnitPrice float64 `mapstructure:"UNIT_PRICE"`

	// Authentication boundary.
	AuthMode         string `mapstructure:"AUTH_MODE"`
	AuthURL          string `mapstructure:"AUTH_URL"`
	AuthUsername     string `mapstructure:"AUTH_USERNAME"`
	AuthPasswordHash string `mapstructure:"AUTH_PASSWORD_HASH"`
	LoginRatePerMin  int    `mapstructure:"LOGIN_RATE_PER_MIN"`
}

var AppConfig Config

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	// Empty lets the logger pick info in production and debug otherwise.
	v.SetDefault("LOG_LEVEL", "")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("STORE_DRIVER", "badger")
	v.SetDefault("STORE_NAMESPACE", "almanack")
	v.SetDefault("BADGER_DIR", "./data")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "almanack")
	v.SetDefault("UNIT_PRICE", 25)
	v.SetDefault("AUTH_MODE", "local")
	v.SetDefault("AUTH_URL", "")
	v.SetDefault("AUTH_USERNAME", "")
	v.SetDefault("AUTH_PASSWORD_HASH", "")
	v.SetDefault("LOGIN_RATE_PER_MIN", 10)
}

// RegisterFlags declares the command line overrides understood by LoadConfig.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a config.yaml file")
	fs.String("port", "", "HTTP listen port (APP_PORT)")
	fs.String("store", "", "key-value backend: badger, redis, mongo or memory (STORE_DRIVER)")
	fs.String("data-dir", "", "badger data directory (BADGER_DIR)")
}

// flagKeys maps command line flags onto config keys.
var flagKeys = map[string]string{
	"port":     "APP_PORT",
	"store":    "STORE_DRIVER",
	"data-dir": "BADGER_DIR",
}

// Load reads configuration into a Config using v. Flags that were set on fs
// take precedence over the environment and the config file.
func Load(v *viper.Viper, fs *pflag.FlagSet) (Config, error) {
	SetDefaults(v)

	// Look for a config file named "config.yaml" in the current and "config" directory.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if fs != nil {
		if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
			v.SetConfigFile(f.Value.String())
		}
		for flag, key := range flagKeys {
			if f := fs.Lookup(flag); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, err
				}
			}
		}
	}
	// Automatically use environment variables where available.
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))
	return cfg, nil
}

// LoadConfig populates AppConfig from the parsed process flags, the
// environment and an optional config file.
func LoadConfig() {
	cfg, err := Load(viper.GetViper(), pflag.CommandLine)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
