package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/skyburst/storefront-backend/pkg/config"
)

func TestQuoteLifecycle(t *testing.T) {
	ctx := context.Background()
	mock := newMockCmdable()
	client := &Client{store: mock}

	payload := []byte(`{"orderType":"retail"}`)
	if err := client.SetQuote(ctx, "cart-1", payload, 10*time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	got, err := client.GetQuote(ctx, "cart-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if string(got) != string(payload) {
		t.Fatalf("expected cached payload, got %q", got)
	}

	if err := client.InvalidateQuote(ctx, "cart-1"); err != nil {
		t.Fatalf("invalidate failed: %v", err)
	}
	if _, err := client.GetQuote(ctx, "cart-1"); !IsMiss(err) {
		t.Fatalf("expected miss after invalidate, got %v", err)
	}
}

func TestGetQuoteMiss(t *testing.T) {
	client := &Client{store: newMockCmdable()}
	_, err := client.GetQuote(context.Background(), "cart-absent")
	if err == nil || !IsMiss(err) {
		t.Fatalf("expected cache miss, got %v", err)
	}
}

func TestQuoteKey(t *testing.T) {
	client := &Client{}
	if got := client.QuoteKey("cart-9"); got != "sb:quote:cart-9" {
		t.Fatalf("unexpected quote key %s", got)
	}
}

func TestOptionsFromConfigRequiresTarget(t *testing.T) {
	if _, err := optionsFromConfig(configRedis("", "")); err == nil {
		t.Fatalf("expected error when both url and address are empty")
	}
	opts, err := optionsFromConfig(configRedis("", "localhost:6379"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Addr != "localhost:6379" {
		t.Fatalf("unexpected address %s", opts.Addr)
	}
}

type mockCmdable struct {
	data map[string]string
}

func newMockCmdable() *mockCmdable {
	return &mockCmdable{data: make(map[string]string)}
}

func (m *mockCmdable) Ping(context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

func (m *mockCmdable) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		m.data[key] = string(v)
	case string:
		m.data[key] = v
	}
	return redis.NewStatusResult("OK", nil)
}

func (m *mockCmdable) Get(ctx context.Context, key string) *redis.StringCmd {
	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *mockCmdable) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	for _, key := range keys {
		delete(m.data, key)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

func configRedis(url, addr string) config.RedisConfig {
	return config.RedisConfig{URL: url, Address: addr}
}
