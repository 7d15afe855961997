// Package config loads runtime configuration from environment variables
// (optionally seeded from an env file in local development) into the shared
// models.Config structure.
package config

import (
	"log"
	"strings"

	"github.com/kurirmed/dispatch/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads configuration; configPath may point to an env-format file
// used in local development, production relies on environment variables only.
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			log.Printf("config file not loaded, relying on environment: %v", err)
		}
	}

	return &models.Config{
		App: models.AppConfig{
			Name:        v.GetString("APP_NAME"),
			Environment: v.GetString("APP_ENV"),
			Version:     v.GetString("APP_VERSION"),
			Debug:       v.GetBool("APP_DEBUG"),
		},
		Server: models.ServerConfig{
			Host:            v.GetString("SERVER_HOST"),
			Port:            v.GetInt("SERVER_PORT"),
			ReadTimeout:     v.GetInt("SERVER_READ_TIMEOUT"),
			WriteTimeout:    v.GetInt("SERVER_WRITE_TIMEOUT"),
			ShutdownTimeout: v.GetInt("SERVER_SHUTDOWN_TIMEOUT"),
		},
		Database: models.DatabaseConfig{
			Host:      v.GetString("DB_HOST"),
			Port:      v.GetInt("DB_PORT"),
			Username:  v.GetString("DB_USERNAME"),
			Password:  v.GetString("DB_PASSWORD"),
			Database:  v.GetString("DB_DATABASE"),
			SSLMode:   v.GetString("DB_SSL_MODE"),
			MaxConns:  v.GetInt("DB_MAX_CONNS"),
			IdleConns: v.GetInt("DB_IDLE_CONNS"),
		},
		Redis: models.RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			PoolSize: v.GetInt("REDIS_POOL_SIZE"),
		},
		NATS: models.NATSConfig{
			URL: v.GetString("NATS_URL"),
		},
		JWT: models.JWTConfig{
			Secret:     v.GetString("JWT_SECRET"),
			Expiration: v.GetInt("JWT_EXPIRATION"),
			Issuer:     v.GetString("JWT_ISSUER"),
		},
		APIKey: models.APIKeyConfig{
			DispatchAPIKey: v.GetString("DISPATCH_API_KEY"),
		},
		NewRelic: models.NewRelicConfig{
			LicenseKey:  v.GetString("NEW_RELIC_LICENSE_KEY"),
			AppName:     v.GetString("NEW_RELIC_APP_NAME"),
			Enabled:     v.GetBool("NEW_RELIC_ENABLED"),
			ForwardLogs: v.GetBool("NEW_RELIC_FORWARD_LOGS"),
		},
		Logger: models.LoggerConfig{
			Level:    v.GetString("LOG_LEVEL"),
			FilePath: v.GetString("LOG_FILE_PATH"),
		},
		Dispatch: models.DispatchConfig{
			MaxCASRetries: v.GetInt("DISPATCH_MAX_CAS_RETRIES"),
		},
		Broadcast: models.BroadcastConfig{
			ObserverBufferSize: v.GetInt("BROADCAST_OBSERVER_BUFFER_SIZE"),
		},
		Sync: models.SyncConfig{
			MaxAttempts:   v.GetInt("SYNC_MAX_ATTEMPTS"),
			BaseDelayMs:   v.GetInt("SYNC_BASE_DELAY_MS"),
			MaxDelayMs:    v.GetInt("SYNC_MAX_DELAY_MS"),
			SubmitTimeout: v.GetInt("SYNC_SUBMIT_TIMEOUT"),
		},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "dispatch-coordinator")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)

	v.SetDefault("SERVER_PORT", 9990)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)

	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)

	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("NATS_URL", "nats://localhost:4222")

	v.SetDefault("JWT_EXPIRATION", 60)
	v.SetDefault("JWT_ISSUER", "kurirmed-dispatch")

	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("DISPATCH_MAX_CAS_RETRIES", 3)
	v.SetDefault("BROADCAST_OBSERVER_BUFFER_SIZE", 64)

	v.SetDefault("SYNC_MAX_ATTEMPTS", 5)
	v.SetDefault("SYNC_BASE_DELAY_MS", 200)
	v.SetDefault("SYNC_MAX_DELAY_MS", 30000)
	v.SetDefault("SYNC_SUBMIT_TIMEOUT", 10)
}
