// Package redis allocates document number counters in Redis.
package redis

import (
	"context"
	"fmt"
	"strings"

	"automfg/internal/core/ports"
	"automfg/internal/pkg/errs"

	goredis "github.com/redis/go-redis/v9"
)

// DefaultKeyPrefix namespaces the counters of the service.
const DefaultKeyPrefix = "automfg:sequence:"

// Incrementer is the part of the Redis client the allocator uses.
type Incrementer interface {
	Incr(ctx context.Context, key string) *goredis.IntCmd
}

// SequenceAllocator implements ports.SequenceAllocator with INCR, which is
// atomic across every instance sharing the Redis server. Counters start at 1.
type SequenceAllocator struct {
	client Incrementer
	prefix string
}

var _ ports.SequenceAllocator = (*SequenceAllocator)(nil)

func NewSequenceAllocator(client Incrementer, prefix string) *SequenceAllocator {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &SequenceAllocator{client: client, prefix: prefix}
}

// NewClient opens a client for addr. The connection is established lazily.
func NewClient(addr, password string) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
}

func (a *SequenceAllocator) Next(ctx context.Context, name string) (int64, error) {
	if strings.TrimSpace(name) == "" {
		return 0, errs.NewValueIsRequiredError("sequence name")
	}

	value, err := a.client.Incr(ctx, a.prefix+name).Result()
	if err != nil {
		return 0, fmt.Errorf("redis: next value of %s: %w", name, err)
	}
	return value, nil
}
