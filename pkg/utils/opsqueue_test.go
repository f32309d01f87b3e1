package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"

	"github.com/roomcast/roomcast-server/pkg/logger"
)

func TestOpsQueue(t *testing.T) {
	t.Run("buffers until started and runs in order", func(t *testing.T) {
		oq := NewOpsQueue(logger.GetLogger(), "test", 8)
		defer oq.Stop()

		done := make(chan int, 3)
		for i := 0; i < 3; i++ {
			i := i
			require.True(t, oq.Enqueue(func() { done <- i }))
		}
		require.Len(t, done, 0)

		oq.Start()
		for i := 0; i < 3; i++ {
			select {
			case got := <-done:
				require.Equal(t, i, got)
			case <-time.After(time.Second):
				t.Fatal("operation did not run")
			}
		}
	})

	t.Run("rejects when full", func(t *testing.T) {
		oq := NewOpsQueue(logger.GetLogger(), "test", 1)
		defer oq.Stop()

		require.True(t, oq.Enqueue(func() {}))
		require.False(t, oq.Enqueue(func() {}))
	})

	t.Run("rejects after stop", func(t *testing.T) {
		oq := NewOpsQueue(logger.GetLogger(), "test", 4)
		oq.Start()
		oq.Stop()
		oq.Stop()

		var ran atomic.Bool
		require.False(t, oq.Enqueue(func() { ran.Store(true) }))
		oq.Start()
		require.False(t, ran.Load())
	})
}
