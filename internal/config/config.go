package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	ReadPolicyAuthenticated = "authenticated"
	ReadPolicyAdmin         = "admin"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
	Admin    *AdminConfig    `mapstructure:"admin"`
}

type APIConfig struct {
	Environment        string        `mapstructure:"environment"`
	Port               string        `mapstructure:"port"`
	BaseURL            string        `mapstructure:"base_url"`
	AllowedCORSDomains []string      `mapstructure:"allowed_cors_domains"`
	JWTSigningKey      string        `mapstructure:"jwt_signing_key"`
	JWTTTL             time.Duration `mapstructure:"jwt_ttl"`

	// FlightsPublicRead lets anonymous callers list and retrieve flights.
	FlightsPublicRead   bool   `mapstructure:"flights_public_read"`
	ReferenceReadPolicy string `mapstructure:"reference_read_policy"`

	PageSize    int `mapstructure:"page_size"`
	MaxPageSize int `mapstructure:"max_page_size"`

	LoginRatePerSecond float64 `mapstructure:"login_rate_per_second"`
	LoginBurst         int     `mapstructure:"login_burst"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host         string `mapstructure:"host"`
	Port         string `mapstructure:"port"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	DB           string `mapstructure:"db"`
	SSLMode      string `mapstructure:"sslmode"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

// AdminConfig seeds a staff account on startup when both fields are set.
type AdminConfig struct {
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
}

func (c *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DB, c.SSLMode,
	)
}

func Load(path string) (*AppConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	conf := &AppConfig{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	if err := conf.validate(); err != nil {
		return nil, err
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Warn("config file changed, restart the server to apply it", zap.String("file", e.Name), zap.String("op", e.Op.String()))
	})
	v.WatchConfig()

	return conf, nil
}

// Default returns the configuration used when no file is present, mainly by tests.
func Default() *AppConfig {
	v := viper.New()
	setDefaults(v)

	conf := &AppConfig{}
	_ = v.Unmarshal(conf)

	return conf
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.environment", "development")
	v.SetDefault("api.port", "8080")
	v.SetDefault("api.base_url", "localhost:8080")
	v.SetDefault("api.allowed_cors_domains", []string{"http://localhost:3000"})
	v.SetDefault("api.jwt_signing_key", "change-me")
	v.SetDefault("api.jwt_ttl", 24*time.Hour)
	v.SetDefault("api.flights_public_read", true)
	v.SetDefault("api.reference_read_policy", ReadPolicyAuthenticated)
	v.SetDefault("api.page_size", 10)
	v.SetDefault("api.max_page_size", 100)
	v.SetDefault("api.login_rate_per_second", 1)
	v.SetDefault("api.login_burst", 5)

	v.SetDefault("gin.mode", "debug")

	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", "5432")
	v.SetDefault("postgres.user", "postgres")
	v.SetDefault("postgres.password", "postgres")
	v.SetDefault("postgres.db", "airport")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.max_open_conns", 20)
	v.SetDefault("postgres.max_idle_conns", 10)

	v.SetDefault("admin.email", "")
	v.SetDefault("admin.password", "")
}

func (c *AppConfig) validate() error {
	switch c.API.ReferenceReadPolicy {
	case ReadPolicyAuthenticated, ReadPolicyAdmin:
	default:
		return fmt.Errorf("invalid api.reference_read_policy %q", c.API.ReferenceReadPolicy)
	}

	if c.API.JWTSigningKey == "" {
		return fmt.Errorf("api.jwt_signing_key must not be empty")
	}

	if c.API.PageSize < 1 || c.API.MaxPageSize < c.API.PageSize {
		return fmt.Errorf("invalid pagination settings: page_size=%d max_page_size=%d", c.API.PageSize, c.API.MaxPageSize)
	}

	return nil
}
