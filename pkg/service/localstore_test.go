package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/roomcast/roomcast-server/pkg/service"
)

func testCache(t *testing.T, cache service.Cache, ns string) {
	ctx := context.Background()

	_, err := cache.Select(ctx, ns, "a")
	require.ErrorIs(t, err, service.ErrCacheMiss)

	require.NoError(t, cache.Insert(ctx,
		service.Record{Namespace: ns, Key: "a", Value: "1"},
		service.Record{Namespace: ns, Key: "b", Value: "2"},
	))
	value, err := cache.Select(ctx, ns, "a")
	require.NoError(t, err)
	require.Equal(t, "1", value)

	values, err := cache.SelectKeys(ctx, ns, []string{"a", "b", "c"})
	require.NoError(t, err)
	require.Equal(t, map[string]string{"a": "1", "b": "2"}, values)

	require.NoError(t, cache.Update(ctx, ns, "a", "3"))
	value, err = cache.Select(ctx, ns, "a")
	require.NoError(t, err)
	require.Equal(t, "3", value)
	require.ErrorIs(t, cache.Update(ctx, ns, "c", "4"), service.ErrCacheMiss)

	require.NoError(t, cache.DeleteKey(ctx, ns, "a"))
	_, err = cache.Select(ctx, ns, "a")
	require.ErrorIs(t, err, service.ErrCacheMiss)
	// deleting again is fine
	require.NoError(t, cache.DeleteKey(ctx, ns, "a"))

	require.NoError(t, cache.DeleteNamespace(ctx, ns))
	values, err = cache.SelectKeys(ctx, ns, []string{"a", "b"})
	require.NoError(t, err)
	require.Empty(t, values)
}

func TestLocalCache(t *testing.T) {
	testCache(t, service.NewLocalCache(), "room1:alice")
}

func TestLocalCache_TTL(t *testing.T) {
	cache := service.NewLocalCache()
	ctx := context.Background()
	require.NoError(t, cache.Insert(ctx, service.Record{Namespace: "user:alice", Key: "send_transport_id", Value: "TR_1", TTL: 20 * time.Millisecond}))

	_, err := cache.Select(ctx, "user:alice", "send_transport_id")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		_, err := cache.Select(ctx, "user:alice", "send_transport_id")
		return err == service.ErrCacheMiss
	}, time.Second, 10*time.Millisecond)
}
