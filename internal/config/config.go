package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	DatabaseURL   string `mapstructure:"DATABASE_URL"`
	JWTSecret     string `mapstructure:"JWT_SECRET"`
	RedisURL      string `mapstructure:"REDIS_URL"`
	ListenAddress string `mapstructure:"LISTEN_ADDRESS"`
	ClaimTTLHours int    `mapstructure:"CLAIM_TTL_HOURS"`
}

var AppConfig *Config

// LoadConfig loads the configuration from a .env file and environment variables.
func LoadConfig() {
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()
	viper.SetDefault("LISTEN_ADDRESS", ":8080")
	viper.SetDefault("CLAIM_TTL_HOURS", 72)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	err := viper.Unmarshal(&AppConfig)
	if err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}
