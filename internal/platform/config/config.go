// Package config loads server configuration from OPENDID_* environment
// variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"opendid/pkg/domain"
	platformstrings "opendid/pkg/platform/strings"
)

const envPrefix = "OPENDID"

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	LogLevel        string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// Auth configures bearer token validation.
type Auth struct {
	JWTSigningKey string
	JWTIssuer     string
}

// Registry configures the orchestrator and its stores.
type Registry struct {
	DeployerAddress    domain.Address
	RestrictRoleGrants bool
	StrictRoles        bool
	// StorageBackend is memory or postgres.
	StorageBackend string
	// RoleBackend is memory, postgres or redis.
	RoleBackend string
	// StoreNamespace names the Postgres stores reattached at startup.
	StoreNamespace string
}

type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnectTimeout  time.Duration
}

type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type KafkaConfig struct {
	Brokers           []string
	Topic             string
	Partitions        int32
	ReplicationFactor int16
}

type EventsConfig struct {
	// Buffer > 0 makes event emission asynchronous. LogCapacity bounds the
	// in-memory event log, evicting the oldest events first.
	Buffer        int
	LogCapacity   int
	RelayInterval time.Duration
}

type Config struct {
	Server   Server
	Auth     Auth
	Registry Registry
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Events   EventsConfig
}

func defaults(v *viper.Viper) {
	v.SetDefault("addr", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("request_timeout", 10*time.Second)
	v.SetDefault("shutdown_timeout", 15*time.Second)

	v.SetDefault("jwt_signing_key", "")
	v.SetDefault("jwt_issuer", "opendid")

	v.SetDefault("deployer_address", "")
	v.SetDefault("restrict_role_grants", false)
	v.SetDefault("strict_roles", false)
	v.SetDefault("storage_backend", "memory")
	v.SetDefault("role_backend", "memory")
	v.SetDefault("store_namespace", "default")

	v.SetDefault("database_url", "")
	v.SetDefault("database_max_open_conns", 20)
	v.SetDefault("database_max_idle_conns", 5)
	v.SetDefault("database_conn_max_lifetime", 30*time.Minute)
	v.SetDefault("database_connect_timeout", 30*time.Second)

	v.SetDefault("redis_url", "")
	v.SetDefault("redis_pool_size", 10)
	v.SetDefault("redis_min_idle_conns", 2)
	v.SetDefault("redis_dial_timeout", 5*time.Second)
	v.SetDefault("redis_read_timeout", 3*time.Second)
	v.SetDefault("redis_write_timeout", 3*time.Second)

	v.SetDefault("kafka_brokers", "")
	v.SetDefault("kafka_topic", "opendid.registry.events")
	v.SetDefault("kafka_partitions", 1)
	v.SetDefault("kafka_replication_factor", 1)

	v.SetDefault("event_buffer", 0)
	v.SetDefault("event_log_capacity", 10000)
	v.SetDefault("event_relay_interval", time.Second)
}

// Load reads the environment. It fails on values the server cannot start
// with, such as a missing deployer address or a postgres backend without a
// database URL.
func Load() (Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (Config, error) {
	defaults(v)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	cfg := Config{
		Server: Server{
			Addr:            v.GetString("addr"),
			LogLevel:        v.GetString("log_level"),
			RequestTimeout:  v.GetDuration("request_timeout"),
			ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		},
		Auth: Auth{
			JWTSigningKey: v.GetString("jwt_signing_key"),
			JWTIssuer:     v.GetString("jwt_issuer"),
		},
		Registry: Registry{
			RestrictRoleGrants: v.GetBool("restrict_role_grants"),
			StrictRoles:        v.GetBool("strict_roles"),
			StorageBackend:     strings.ToLower(v.GetString("storage_backend")),
			RoleBackend:        strings.ToLower(v.GetString("role_backend")),
			StoreNamespace:     v.GetString("store_namespace"),
		},
		Database: DatabaseConfig{
			URL:             v.GetString("database_url"),
			MaxOpenConns:    v.GetInt("database_max_open_conns"),
			MaxIdleConns:    v.GetInt("database_max_idle_conns"),
			ConnMaxLifetime: v.GetDuration("database_conn_max_lifetime"),
			ConnectTimeout:  v.GetDuration("database_connect_timeout"),
		},
		Redis: RedisConfig{
			URL:          v.GetString("redis_url"),
			PoolSize:     v.GetInt("redis_pool_size"),
			MinIdleConns: v.GetInt("redis_min_idle_conns"),
			DialTimeout:  v.GetDuration("redis_dial_timeout"),
			ReadTimeout:  v.GetDuration("redis_read_timeout"),
			WriteTimeout: v.GetDuration("redis_write_timeout"),
		},
		Kafka: KafkaConfig{
			Brokers:           platformstrings.SplitList(v.GetString("kafka_brokers")),
			Topic:             v.GetString("kafka_topic"),
			Partitions:        v.GetInt32("kafka_partitions"),
			ReplicationFactor: int16(v.GetInt("kafka_replication_factor")),
		},
		Events: EventsConfig{
			Buffer:        v.GetInt("event_buffer"),
			LogCapacity:   v.GetInt("event_log_capacity"),
			RelayInterval: v.GetDuration("event_relay_interval"),
		},
	}

	deployer, err := domain.ParseAddress(strings.TrimSpace(v.GetString("deployer_address")))
	if err != nil {
		return Config{}, fmt.Errorf("%s_DEPLOYER_ADDRESS: %w", envPrefix, err)
	}
	cfg.Registry.DeployerAddress = deployer

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Auth.JWTSigningKey == "" {
		return fmt.Errorf("%s_JWT_SIGNING_KEY is required", envPrefix)
	}
	switch c.Registry.StorageBackend {
	case "memory":
	case "postgres":
		if c.Database.URL == "" {
			return fmt.Errorf("%s_DATABASE_URL is required for the postgres storage backend", envPrefix)
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Registry.StorageBackend)
	}
	switch c.Registry.RoleBackend {
	case "memory":
	case "postgres":
		if c.Database.URL == "" {
			return fmt.Errorf("%s_DATABASE_URL is required for the postgres role backend", envPrefix)
		}
	case "redis":
		if c.Redis.URL == "" {
			return fmt.Errorf("%s_REDIS_URL is required for the redis role backend", envPrefix)
		}
	default:
		return fmt.Errorf("unknown role backend %q", c.Registry.RoleBackend)
	}
	return nil
}
