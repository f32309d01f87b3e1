package rtc_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"

	"github.com/roomcast/roomcast-server/pkg/rtc"
)

func TestEscalationTimers(t *testing.T) {
	t.Run("fires once and clears itself", func(t *testing.T) {
		timers := rtc.NewEscalationTimers()
		fired := atomic.NewInt32(0)
		timers.Schedule("CO_1", 10*time.Millisecond, func() {
			fired.Inc()
		})
		require.True(t, timers.Pending("CO_1"))
		_, ok := timers.ScheduledAt("CO_1")
		require.True(t, ok)

		require.Eventually(t, func() bool {
			return fired.Load() == 1
		}, time.Second, 5*time.Millisecond)
		require.False(t, timers.Pending("CO_1"))
		require.Equal(t, 0, timers.Len())
	})

	t.Run("cancel prevents firing", func(t *testing.T) {
		timers := rtc.NewEscalationTimers()
		fired := atomic.NewBool(false)
		timers.Schedule("CO_1", 20*time.Millisecond, func() {
			fired.Store(true)
		})
		require.True(t, timers.Cancel("CO_1"))
		require.False(t, timers.Cancel("CO_1"))

		time.Sleep(60 * time.Millisecond)
		require.False(t, fired.Load())
		require.Equal(t, 0, timers.Len())
	})

	t.Run("reschedule supersedes previous timer", func(t *testing.T) {
		timers := rtc.NewEscalationTimers()
		first := atomic.NewBool(false)
		second := atomic.NewBool(false)
		timers.Schedule("CO_1", 20*time.Millisecond, func() {
			first.Store(true)
		})
		timers.Schedule("CO_1", 30*time.Millisecond, func() {
			second.Store(true)
		})
		require.Equal(t, 1, timers.Len())

		require.Eventually(t, second.Load, time.Second, 5*time.Millisecond)
		require.False(t, first.Load())
	})

	t.Run("cancel waits for a firing callback", func(t *testing.T) {
		timers := rtc.NewEscalationTimers()
		started := make(chan struct{})
		finished := atomic.NewBool(false)
		timers.Schedule("CO_1", time.Millisecond, func() {
			close(started)
			time.Sleep(30 * time.Millisecond)
			finished.Store(true)
		})

		<-started
		require.False(t, timers.Cancel("CO_1"))
		require.True(t, finished.Load())
		require.Equal(t, 0, timers.Len())
	})

	t.Run("stop cancels all", func(t *testing.T) {
		timers := rtc.NewEscalationTimers()
		fired := atomic.NewInt32(0)
		for _, id := range []string{"CO_1", "CO_2", "CO_3"} {
			timers.Schedule(id, 20*time.Millisecond, func() {
				fired.Inc()
			})
		}
		require.Equal(t, 3, timers.Len())
		timers.Stop()
		require.Equal(t, 0, timers.Len())

		time.Sleep(60 * time.Millisecond)
		require.Equal(t, int32(0), fired.Load())
	})
}
