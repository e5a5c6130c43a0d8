package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Portfolio PortfolioConfig
	GitHub    GitHubConfig
	Cache     CacheConfig
	Log       LogConfig
}

type ServerConfig struct {
	Port         string
	Mode         string
	ReadTimeout  int
	WriteTimeout int
}

// PortfolioConfig controls whose portfolio is rendered and which
// repositories make it onto the page.
type PortfolioConfig struct {
	Username        string
	IncludeForks    bool
	IncludeArchived bool
	PerPage         int
	CacheTTLMinutes int
}

type GitHubConfig struct {
	Token   string
	BaseURL string
}

type CacheConfig struct {
	Driver string
	Path   string
}

type LogConfig struct {
	Level  string
	Format string
}

const (
	DefaultUsername        = "Suri6363498"
	DefaultPerPage         = 100
	DefaultCacheTTLMinutes = 30

	CacheDriverMemory = "memory"
	CacheDriverSQLite = "sqlite"
)

// CacheTTL returns the configured cache lifetime.
func (p PortfolioConfig) CacheTTL() time.Duration {
	return time.Duration(p.CacheTTLMinutes) * time.Minute
}

// Default returns a configuration with every field at its documented default.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         "8080",
			Mode:         "release",
			ReadTimeout:  15,
			WriteTimeout: 15,
		},
		Portfolio: PortfolioConfig{
			Username:        DefaultUsername,
			IncludeForks:    false,
			IncludeArchived: false,
			PerPage:         DefaultPerPage,
			CacheTTLMinutes: DefaultCacheTTLMinutes,
		},
		GitHub: GitHubConfig{
			BaseURL: "https://api.github.com/",
		},
		Cache: CacheConfig{
			Driver: CacheDriverMemory,
			Path:   "./gfolio-cache.db",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load loads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	def := Default()
	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", def.Server.Port),
			Mode:         getEnv("GIN_MODE", def.Server.Mode),
			ReadTimeout:  getEnvAsInt("READ_TIMEOUT", def.Server.ReadTimeout),
			WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", def.Server.WriteTimeout),
		},
		Portfolio: PortfolioConfig{
			Username:        getEnv("GITHUB_USERNAME", def.Portfolio.Username),
			IncludeForks:    getEnvAsBool("INCLUDE_FORKS", def.Portfolio.IncludeForks),
			IncludeArchived: getEnvAsBool("INCLUDE_ARCHIVED", def.Portfolio.IncludeArchived),
			PerPage:         getEnvAsInt("PER_PAGE", def.Portfolio.PerPage),
			CacheTTLMinutes: getEnvAsInt("CACHE_TTL_MINUTES", def.Portfolio.CacheTTLMinutes),
		},
		GitHub: GitHubConfig{
			Token:   getEnv("GITHUB_TOKEN", ""),
			BaseURL: getEnv("GITHUB_API_URL", def.GitHub.BaseURL),
		},
		Cache: CacheConfig{
			Driver: strings.ToLower(getEnv("CACHE_DRIVER", def.Cache.Driver)),
			Path:   getEnv("CACHE_PATH", def.Cache.Path),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", def.Log.Level),
			Format: getEnv("LOG_FORMAT", def.Log.Format),
		},
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Portfolio.Username) == "" {
		return &ConfigError{Field: "GITHUB_USERNAME", Message: "username is required"}
	}
	if c.Portfolio.PerPage < 1 || c.Portfolio.PerPage > 100 {
		return &ConfigError{Field: "PER_PAGE", Message: "must be between 1 and 100"}
	}
	if c.Portfolio.CacheTTLMinutes < 0 {
		return &ConfigError{Field: "CACHE_TTL_MINUTES", Message: "must not be negative"}
	}
	if c.Cache.Driver != CacheDriverMemory && c.Cache.Driver != CacheDriverSQLite {
		return &ConfigError{Field: "CACHE_DRIVER", Message: "must be 'memory' or 'sqlite'"}
	}
	if c.Cache.Driver == CacheDriverSQLite && c.Cache.Path == "" {
		return &ConfigError{Field: "CACHE_PATH", Message: "path is required when CACHE_DRIVER is 'sqlite'"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
