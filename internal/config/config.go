// Package config loads the service configuration from an env file and the process environment.
package config

import (
	"errors"
	"fmt"
	"net/netip"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds every setting the service needs. It is built once in main and passed
// to constructors explicitly.
type Config struct {
	AppHost  string
	AppPort  string
	GRPCPort string
	LogLevel string

	Postgres Postgres
	Redis    Redis
	Kafka    Kafka
	JWT      JWT

	TopicCacheTTL   time.Duration
	RateLimit       int
	RateLimitWindow time.Duration

	// TrustedProxies lists the peers whose X-Forwarded-For / X-Real-IP headers are honored.
	TrustedProxies []netip.Prefix
}

// Postgres describes the relational store and its pool.
type Postgres struct {
	URL          string // full DSN, overrides the discrete fields when set
	Host         string
	Port         int
	User         string
	Password     string
	DB           string
	MaxOpenConns int
	MaxIdleConns int
}

// Redis describes the cache / rate limit backend.
type Redis struct {
	Host         string
	Port         int
	DB           int
	Password     string
	PoolSize     int
	MinIdleConns int
}

// Kafka describes the engagement event sink. No brokers disables publishing.
type Kafka struct {
	Brokers []string
	Topic   string
}

// JWT holds token signing settings.
type JWT struct {
	SecretKey  string
	Issuer     string
	Audience   string
	Realm      string
	AccessExp  time.Duration
	RefreshExp time.Duration
}

var defaults = map[string]any{
	"app_host":                "localhost",
	"app_port":                "8080",
	"grpc_port":               "50051",
	"app_log_level":           "info",
	"database_url":            "",
	"postgres_host":           "localhost",
	"postgres_port":           5432,
	"postgres_user":           "user",
	"postgres_password":       "password",
	"postgres_db":             "poetree",
	"postgres_max_open_conns": 3,
	"postgres_max_idle_conns": 3,
	"redis_host":              "localhost",
	"redis_port":              6379,
	"redis_db":                0,
	"redis_password":          "",
	"redis_pool_size":         10,
	"redis_min_idle_conns":    2,
	"topic_cache_ttl":         "10m",
	"kafka_brokers":           "",
	"kafka_topic":             "poetree.engagements",
	"secret_key":              "",
	"jwt_issuer":              "poetree",
	"jwt_audience":            "poetree-users",
	"jwt_realm":               "poetree",
	"jwt_access_exp":          "720h",
	"jwt_refresh_exp":         "1440h",
	"rate_limit":              20,
	"rate_limit_window":       "1m",
	"trusted_proxies":         "",
}

// Load reads the env file at path (a missing file is not an error) and then the
// process environment, which takes precedence.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	cfg := &Config{
		AppHost:  v.GetString("app_host"),
		AppPort:  v.GetString("app_port"),
		GRPCPort: v.GetString("grpc_port"),
		LogLevel: v.GetString("app_log_level"),
		Postgres: Postgres{
			URL:          v.GetString("database_url"),
			Host:         v.GetString("postgres_host"),
			Port:         v.GetInt("postgres_port"),
			User:         v.GetString("postgres_user"),
			Password:     v.GetString("postgres_password"),
			DB:           v.GetString("postgres_db"),
			MaxOpenConns: v.GetInt("postgres_max_open_conns"),
			MaxIdleConns: v.GetInt("postgres_max_idle_conns"),
		},
		Redis: Redis{
			Host:         v.GetString("redis_host"),
			Port:         v.GetInt("redis_port"),
			DB:           v.GetInt("redis_db"),
			Password:     v.GetString("redis_password"),
			PoolSize:     v.GetInt("redis_pool_size"),
			MinIdleConns: v.GetInt("redis_min_idle_conns"),
		},
		Kafka: Kafka{
			Brokers: splitList(v.GetString("kafka_brokers")),
			Topic:   v.GetString("kafka_topic"),
		},
		JWT: JWT{
			SecretKey:  v.GetString("secret_key"),
			Issuer:     v.GetString("jwt_issuer"),
			Audience:   v.GetString("jwt_audience"),
			Realm:      v.GetString("jwt_realm"),
			AccessExp:  v.GetDuration("jwt_access_exp"),
			RefreshExp: v.GetDuration("jwt_refresh_exp"),
		},
		TopicCacheTTL:   v.GetDuration("topic_cache_ttl"),
		RateLimit:       v.GetInt("rate_limit"),
		RateLimitWindow: v.GetDuration("rate_limit_window"),
	}

	proxies, err := parsePrefixes(splitList(v.GetString("trusted_proxies")))
	if err != nil {
		return nil, err
	}
	cfg.TrustedProxies = proxies

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	if c.JWT.SecretKey == "" {
		errs = append(errs, errors.New("SECRET_KEY is required"))
	}
	if c.JWT.AccessExp <= 0 || c.JWT.RefreshExp <= 0 {
		errs = append(errs, errors.New("JWT_ACCESS_EXP and JWT_REFRESH_EXP must be positive durations"))
	}
	if c.Postgres.MaxOpenConns <= 0 {
		errs = append(errs, errors.New("POSTGRES_MAX_OPEN_CONNS must be positive"))
	}
	if c.RateLimit <= 0 || c.RateLimitWindow <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT and RATE_LIMIT_WINDOW must be positive"))
	}
	return errors.Join(errs...)
}

// PostgresDSN returns the connection string for the pgx driver.
func (c *Config) PostgresDSN() string {
	if c.Postgres.URL != "" {
		return c.Postgres.URL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.Postgres.User, c.Postgres.Password, c.Postgres.Host, c.Postgres.Port, c.Postgres.DB)
}

// RedisAddr returns host:port of the Redis server.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parsePrefixes accepts CIDRs and bare addresses; a bare address becomes a single-host prefix.
func parsePrefixes(items []string) ([]netip.Prefix, error) {
	var out []netip.Prefix
	for _, item := range items {
		if strings.Contains(item, "/") {
			p, err := netip.ParsePrefix(item)
			if err != nil {
				return nil, fmt.Errorf("TRUSTED_PROXIES: invalid CIDR %q: %w", item, err)
			}
			out = append(out, p.Masked())
			continue
		}
		addr, err := netip.ParseAddr(item)
		if err != nil {
			return nil, fmt.Errorf("TRUSTED_PROXIES: invalid address %q: %w", item, err)
		}
		addr = addr.Unmap()
		out = append(out, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return out, nil
}
