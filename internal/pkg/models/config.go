package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	Admin    AdminConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains PostgreSQL connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ producer configuration
type NSQConfig struct {
	Address string
	Enabled bool
}

// JWTConfig contains session token configuration
type JWTConfig struct {
	Secret     string
	Expiration int // minutes
	Issuer     string
}

// AdminConfig holds the platform administrator identity. The admin is not a
// database record; credentials come from the environment so deployments can
// rotate them without a migration.
type AdminConfig struct {
	Username string
	Password string
	Name     string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level  string
	Format string
}
