package config

// Config holds all application configuration.
// It is built once at startup by Load and handed to constructors by pointer;
// nothing mutates it afterwards.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"     validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database"   validate:"required"`
	Auth      AuthConfig      `mapstructure:"auth"       validate:"required"`
	KeepAlive KeepAliveConfig `mapstructure:"keep_alive"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// Timeouts mirror the limits the service ran behind in production.
	ReadTimeoutSeconds  int `mapstructure:"read_timeout_seconds"  validate:"gt=0"`
	WriteTimeoutSeconds int `mapstructure:"write_timeout_seconds" validate:"gt=0"`
	IdleTimeoutSeconds  int `mapstructure:"idle_timeout_seconds"  validate:"gt=0"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	// Driver selects the database/sql driver: "pgx" for PostgreSQL or
	// "sqlite3" for a local SQLite file.
	Driver string `mapstructure:"driver" validate:"required,oneof=pgx sqlite3"`
	URL    string `mapstructure:"url"    validate:"required"`
}

// AuthConfig contains the admin credential and token signing settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0,lte=1440"`

	AdminUsername string `mapstructure:"admin_username" validate:"required"`
	// AdminPasswordHash is a bcrypt hash of the admin password. When it is
	// empty, AdminPassword is hashed once during Load.
	AdminPasswordHash string `mapstructure:"admin_password_hash" validate:"required_without=AdminPassword"`
	AdminPassword     string `mapstructure:"admin_password"      validate:"required_without=AdminPasswordHash"`
}

// KeepAliveConfig configures the optional self-ping loop.
type KeepAliveConfig struct {
	// URL is pinged periodically when set. Empty disables the loop.
	URL             string `mapstructure:"url"              validate:"omitempty,url"`
	IntervalSeconds int    `mapstructure:"interval_seconds" validate:"gt=0"`
}

// Enabled reports whether a keep-alive target is configured.
func (c KeepAliveConfig) Enabled() bool {
	return c.URL != ""
}
