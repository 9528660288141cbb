package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opendid/pkg/domain"
)

const deployer = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OPENDID_DEPLOYER_ADDRESS", deployer)
	t.Setenv("OPENDID_JWT_SIGNING_KEY", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, domain.MustParseAddress(deployer), cfg.Registry.DeployerAddress)
	assert.Equal(t, "memory", cfg.Registry.StorageBackend)
	assert.Equal(t, "opendid.registry.events", cfg.Kafka.Topic)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.False(t, cfg.Registry.RestrictRoleGrants)
	assert.Equal(t, 10000, cfg.Events.LogCapacity)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("OPENDID_DEPLOYER_ADDRESS", deployer)
	t.Setenv("OPENDID_JWT_SIGNING_KEY", "secret")
	t.Setenv("OPENDID_ADDR", ":9090")
	t.Setenv("OPENDID_STORAGE_BACKEND", "Postgres")
	t.Setenv("OPENDID_DATABASE_URL", "postgres://localhost/opendid")
	t.Setenv("OPENDID_KAFKA_BROKERS", "a:9092, b:9092")
	t.Setenv("OPENDID_RESTRICT_ROLE_GRANTS", "true")
	t.Setenv("OPENDID_REDIS_DIAL_TIMEOUT", "1s")
	t.Setenv("OPENDID_EVENT_LOG_CAPACITY", "500")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "postgres", cfg.Registry.StorageBackend)
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Registry.RestrictRoleGrants)
	assert.Equal(t, time.Second, cfg.Redis.DialTimeout)
	assert.Equal(t, 500, cfg.Events.LogCapacity)
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing deployer", map[string]string{"OPENDID_JWT_SIGNING_KEY": "secret"}},
		{"zero deployer", map[string]string{
			"OPENDID_JWT_SIGNING_KEY":  "secret",
			"OPENDID_DEPLOYER_ADDRESS": "0x0000000000000000000000000000000000000000",
		}},
		{"missing signing key", map[string]string{"OPENDID_DEPLOYER_ADDRESS": deployer}},
		{"postgres without url", map[string]string{
			"OPENDID_JWT_SIGNING_KEY":  "secret",
			"OPENDID_DEPLOYER_ADDRESS": deployer,
			"OPENDID_STORAGE_BACKEND":  "postgres",
		}},
		{"redis without url", map[string]string{
			"OPENDID_JWT_SIGNING_KEY":  "secret",
			"OPENDID_DEPLOYER_ADDRESS": deployer,
			"OPENDID_ROLE_BACKEND":     "redis",
		}},
		{"unknown backend", map[string]string{
			"OPENDID_JWT_SIGNING_KEY":  "secret",
			"OPENDID_DEPLOYER_ADDRESS": deployer,
			"OPENDID_STORAGE_BACKEND":  "mongo",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
