package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	// Log configuration
	Log LogConfig `mapstructure:"log"`

	// Server configuration
	Server ServerConfig `mapstructure:"server"`

	// Database configuration
	Database DatabaseConfig `mapstructure:"database"`

	// Formation holds the team-assembly defaults
	Formation FormationConfig `mapstructure:"formation"`

	// CircuitBreaker configuration
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`

	// Export configuration
	Export ExportConfig `mapstructure:"export"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // gin mode: debug, release, test
}

// DatabaseConfig holds graph store configuration
type DatabaseConfig struct {
	URI                  string `mapstructure:"uri"`
	Username             string `mapstructure:"username"`
	Password             string `mapstructure:"password"`
	Database             string `mapstructure:"database"`
	QueryTimeout         int    `mapstructure:"query_timeout"`          // in seconds
	MaxConcurrentQueries int    `mapstructure:"max_concurrent_queries"` // in-flight query bound
}

// FormationConfig holds the default knobs for team assembly. Every field can
// be overridden per request through the API or CLI.
type FormationConfig struct {
	MaxDistance       int     `mapstructure:"max_distance"`
	InitialDistance   int     `mapstructure:"initial_distance"`
	MaxIncrease       int     `mapstructure:"max_increase"`
	CohesionWeight    float64 `mapstructure:"cohesion_weight"`
	DistanceWeight    float64 `mapstructure:"distance_weight"`
	TimeThreshold     int     `mapstructure:"time_threshold"`
	NullYearsOption   int     `mapstructure:"null_years_option"`
	SortOrder         string  `mapstructure:"sort_order"`
	UseOrgConnections bool    `mapstructure:"use_org_connections"`
}

// CircuitBreakerConfig holds configuration for circuit breaking
type CircuitBreakerConfig struct {
	Enabled          bool    `mapstructure:"enabled"`
	MaxRequests      uint32  `mapstructure:"max_requests"`
	Interval         int     `mapstructure:"interval"` // in seconds
	Timeout          int     `mapstructure:"timeout"`  // in seconds
	ReadyToTripRatio float64 `mapstructure:"ready_to_trip_ratio"`
}

// ExportConfig holds result export configuration
type ExportConfig struct {
	Dir string `mapstructure:"dir"`
}

// Load loads configuration from file and environment variables
func Load() (*Config, error) {
	setDefaults()

	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	overrideWithEnv(config)

	return config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Log defaults
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")

	// Server defaults
	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "debug")

	// Database defaults
	viper.SetDefault("database.uri", "bolt://localhost:7687")
	viper.SetDefault("database.username", "neo4j")
	viper.SetDefault("database.password", "")
	viper.SetDefault("database.database", "neo4j")
	viper.SetDefault("database.query_timeout", 60)
	viper.SetDefault("database.max_concurrent_queries", 10)

	// Formation defaults
	viper.SetDefault("formation.max_distance", 3)
	viper.SetDefault("formation.initial_distance", 2)
	viper.SetDefault("formation.max_increase", 5)
	viper.SetDefault("formation.cohesion_weight", 0.7)
	viper.SetDefault("formation.distance_weight", 0.3)
	viper.SetDefault("formation.time_threshold", 5)
	viper.SetDefault("formation.null_years_option", 1)
	viper.SetDefault("formation.sort_order", "citation_first")
	viper.SetDefault("formation.use_org_connections", true)

	// Circuit breaker defaults
	viper.SetDefault("circuit_breaker.enabled", true)
	viper.SetDefault("circuit_breaker.max_requests", 3)
	viper.SetDefault("circuit_breaker.interval", 60)
	viper.SetDefault("circuit_breaker.timeout", 30)
	viper.SetDefault("circuit_breaker.ready_to_trip_ratio", 0.6)

	// Export defaults
	home, err := os.UserHomeDir()
	if err == nil {
		viper.SetDefault("export.dir", fmt.Sprintf("%s/.teamgraph/results", home))
	}
}

// overrideWithEnv overrides config with environment variables
func overrideWithEnv(config *Config) {
	// Database credentials
	if uri := os.Getenv("NEO4J_URI"); uri != "" {
		config.Database.URI = uri
	}
	if user := os.Getenv("NEO4J_USER"); user != "" {
		config.Database.Username = user
	}
	if pass := os.Getenv("NEO4J_PASSWORD"); pass != "" {
		config.Database.Password = pass
	}
	if db := os.Getenv("NEO4J_DATABASE"); db != "" {
		config.Database.Database = db
	}

	// Server settings
	if host := os.Getenv("SERVER_HOST"); host != "" {
		config.Server.Host = host
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		viper.Set("server.port", port)
		config.Server.Port = viper.GetInt("server.port")
	}

	// Export settings
	if dir := os.Getenv("TEAMGRAPH_EXPORT_DIR"); dir != "" {
		config.Export.Dir = dir
	}
}
