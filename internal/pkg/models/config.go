package models

// Config holds all runtime configuration for the dispatch coordinator
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	JWT       JWTConfig
	APIKey    APIKeyConfig
	NewRelic  NewRelicConfig
	Logger    LoggerConfig
	Dispatch  DispatchConfig
	Broadcast BroadcastConfig
	Sync      SyncConfig
}

// AppConfig holds application metadata
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	Version     string `mapstructure:"version"`
	Debug       bool   `mapstructure:"debug"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	ReadTimeout     int    `mapstructure:"read_timeout"`
	WriteTimeout    int    `mapstructure:"write_timeout"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Username  string `mapstructure:"username"`
	Password  string `mapstructure:"password"`
	Database  string `mapstructure:"database"`
	SSLMode   string `mapstructure:"ssl_mode"`
	MaxConns  int    `mapstructure:"max_conns"`
	IdleConns int    `mapstructure:"idle_conns"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// NATSConfig holds NATS configuration
type NATSConfig struct {
	URL string `mapstructure:"url"`
}

// JWTConfig holds JWT configuration for observer and courier sessions
type JWTConfig struct {
	Secret     string `mapstructure:"secret"`
	Expiration int    `mapstructure:"expiration"`
	Issuer     string `mapstructure:"issuer"`
}

// APIKeyConfig holds API keys for internal service endpoints
type APIKeyConfig struct {
	DispatchAPIKey string `mapstructure:"dispatch_api_key"`
}

// NewRelicConfig holds New Relic observability configuration
type NewRelicConfig struct {
	LicenseKey  string `mapstructure:"license_key"`
	AppName     string `mapstructure:"app_name"`
	Enabled     bool   `mapstructure:"enabled"`
	ForwardLogs bool   `mapstructure:"forward_logs"`
}

// LoggerConfig holds structured logging configuration
type LoggerConfig struct {
	Level    string `mapstructure:"level"`
	FilePath string `mapstructure:"file_path"`
}

// DispatchConfig holds assignment coordination tunables
type DispatchConfig struct {
	// MaxCASRetries bounds internal retries after a lost compare-and-set
	// race while the order is still assignable.
	MaxCASRetries int `mapstructure:"max_cas_retries"`
}

// BroadcastConfig holds dashboard fan-out tunables
type BroadcastConfig struct {
	// ObserverBufferSize bounds each observer's outbound event buffer;
	// overflow drops the observer rather than blocking publication.
	ObserverBufferSize int `mapstructure:"observer_buffer_size"`
}

// SyncConfig holds offline sync queue tunables
type SyncConfig struct {
	MaxAttempts   int `mapstructure:"max_attempts"`
	BaseDelayMs   int `mapstructure:"base_delay_ms"`
	MaxDelayMs    int `mapstructure:"max_delay_ms"`
	SubmitTimeout int `mapstructure:"submit_timeout"`
}
