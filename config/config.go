package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Durable key-value storage. Backend is one of "sqlite", "redis", "memory".
	StorageBackend string `mapstructure:"STORAGE_BACKEND"`
	SQLitePath     string `mapstructure:"SQLITE_PATH"`

	// Redis configuration (used when STORAGE_BACKEND is "redis").
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// Remote session directory.
	DirectoryURL       string `mapstructure:"DIRECTORY_URL"`
	DirectoryTimeoutMS int    `mapstructure:"DIRECTORY_TIMEOUT_MS"`

	// Journal autosave debounce interval.
	UnloadDebounceMS int `mapstructure:"UNLOAD_DEBOUNCE_MS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("STORAGE_BACKEND", "sqlite")
	viper.SetDefault("SQLITE_PATH", "ibelong.db")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("DIRECTORY_URL", "http://localhost:8000")
	viper.SetDefault("DIRECTORY_TIMEOUT_MS", 15000)
	viper.SetDefault("UNLOAD_DEBOUNCE_MS", 2500)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
