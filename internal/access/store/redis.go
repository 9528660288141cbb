package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"

	"opendid/pkg/domain"
)

var hasRoleDurationMs = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "opendid_redis_has_role_duration_ms",
	Help:    "Latency of Redis role checks in milliseconds",
	Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25},
})

const rolesKeyPrefix = "opendid:roles:"

// Redis keeps one set per address. It suits deployments where several
// registry instances share role state.
type Redis struct {
	client redis.UniversalClient
}

func NewRedis(client redis.UniversalClient) *Redis {
	return &Redis{client: client}
}

func rolesKey(addr domain.Address) string {
	return rolesKeyPrefix + string(addr)
}

func (s *Redis) Grant(ctx context.Context, addr domain.Address, role domain.Role) (bool, error) {
	added, err := s.client.SAdd(ctx, rolesKey(addr), string(role)).Result()
	if err != nil {
		return false, fmt.Errorf("grant role: %w", err)
	}
	return added > 0, nil
}

func (s *Redis) HasRole(ctx context.Context, addr domain.Address, role domain.Role) (bool, error) {
	start := time.Now()
	defer func() {
		hasRoleDurationMs.Observe(float64(time.Since(start).Microseconds()) / 1000.0)
	}()

	ok, err := s.client.SIsMember(ctx, rolesKey(addr), string(role)).Result()
	if err != nil {
		return false, fmt.Errorf("check role: %w", err)
	}
	return ok, nil
}

func (s *Redis) Roles(ctx context.Context, addr domain.Address) ([]domain.Role, error) {
	labels, err := s.client.SMembers(ctx, rolesKey(addr)).Result()
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	sort.Strings(labels)
	out := make([]domain.Role, 0, len(labels))
	for _, l := range labels {
		out = append(out, domain.Role(l))
	}
	return out, nil
}
