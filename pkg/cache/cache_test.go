package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// Integration tests; they skip when Redis is not reachable.
const defaultTestRedisAddr = "localhost:6379"

func setupTestCache(t *testing.T, prefix string) (*Cache, *redis.Client) {
	t.Helper()

	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		addr = defaultTestRedisAddr
	}

	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("Redis not available at %s: %v", addr, err)
	}

	cleanupKeys(t, client, prefix+"*")
	c := New(client, prefix, 5*time.Minute)

	t.Cleanup(func() {
		cleanupKeys(t, client, prefix+"*")
		client.Close()
	})

	return c, client
}

func cleanupKeys(t *testing.T, client *redis.Client, pattern string) {
	t.Helper()

	ctx := context.Background()
	var cursor uint64
	for {
		keys, nextCursor, err := client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return
		}
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
}

type entry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestGetMiss(t *testing.T) {
	c, _ := setupTestCache(t, "test:"+t.Name()+":")
	ctx := context.Background()

	var dest entry
	hit, err := c.Get(ctx, "absent", &dest)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if hit {
		t.Error("Get() on an absent key must report a miss")
	}
}

func TestSetThenGet(t *testing.T) {
	c, _ := setupTestCache(t, "test:"+t.Name()+":")
	ctx := context.Background()

	stored := entry{Name: "tasks", Count: 3}
	if err := c.Set(ctx, "k", stored); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	var got entry
	hit, err := c.Get(ctx, "k", &got)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !hit {
		t.Fatal("Get() after Set() must hit")
	}
	if got != stored {
		t.Errorf("Get() = %+v, want %+v", got, stored)
	}
}

func TestSetAppliesTTL(t *testing.T) {
	c, client := setupTestCache(t, "test:"+t.Name()+":")
	ctx := context.Background()

	if err := c.Set(ctx, "k", entry{Name: "x"}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	ttl, err := client.TTL(ctx, c.prefix+"k").Result()
	if err != nil {
		t.Fatalf("TTL() error = %v", err)
	}
	if ttl <= 0 || ttl > 5*time.Minute {
		t.Errorf("TTL = %v, want within (0, 5m]", ttl)
	}
}

func TestDeletePattern(t *testing.T) {
	c, _ := setupTestCache(t, "test:"+t.Name()+":")
	ctx := context.Background()

	if err := c.Set(ctx, "tasks:one", entry{Name: "one"}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := c.Set(ctx, "tasks:two", entry{Name: "two"}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := c.Set(ctx, "users:all", entry{Name: "users"}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if err := c.DeletePattern(ctx, "tasks:*"); err != nil {
		t.Fatalf("DeletePattern() error = %v", err)
	}

	var dest entry
	for _, key := range []string{"tasks:one", "tasks:two"} {
		if hit, _ := c.Get(ctx, key, &dest); hit {
			t.Errorf("key %q survived DeletePattern", key)
		}
	}
	if hit, _ := c.Get(ctx, "users:all", &dest); !hit {
		t.Error("DeletePattern removed a key outside the pattern")
	}
}
