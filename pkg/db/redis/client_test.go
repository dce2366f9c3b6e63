package redis_test

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memnotes/pkg/db/redis"
)

func configFor(t *testing.T, addr string) *redis.Config {
	t.Helper()

	host, portStr, _ := strings.Cut(addr, ":")
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	cfg := redis.DefaultConfig()
	cfg.Host = host
	cfg.Port = port
	return cfg
}

func TestNewClient(t *testing.T) {
	t.Run("connects to running server", func(t *testing.T) {
		server := miniredis.RunT(t)

		client, err := redis.NewClient(context.Background(), configFor(t, server.Addr()))
		require.NoError(t, err)

		receivers, err := client.Publish(context.Background(), "ping", []byte("1"))
		require.NoError(t, err)
		assert.Equal(t, int64(0), receivers)
		assert.NoError(t, client.Close())
	})

	t.Run("fails when server is unreachable", func(t *testing.T) {
		cfg := redis.DefaultConfig()
		cfg.Host = "127.0.0.1"
		cfg.Port = 1
		cfg.Timeout = 200 * time.Millisecond

		client, err := redis.NewClient(context.Background(), cfg)
		require.Error(t, err)
		assert.Nil(t, client)
		assert.Contains(t, err.Error(), "failed to connect to Redis")
	})
}

func TestClientPublish(t *testing.T) {
	server := miniredis.RunT(t)
	ctx := context.Background()

	client, err := redis.NewClient(ctx, configFor(t, server.Addr()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	sub := server.NewSubscriber()
	t.Cleanup(sub.Close)
	sub.Subscribe("events")

	receivers, err := client.Publish(ctx, "events", []byte(`{"ok":true}`))
	require.NoError(t, err)
	assert.Equal(t, int64(1), receivers)

	select {
	case msg := <-sub.Messages():
		assert.Equal(t, "events", msg.Channel)
		assert.Equal(t, `{"ok":true}`, msg.Message)
	case <-time.After(2 * time.Second):
		t.Fatal("message was not delivered")
	}
}
