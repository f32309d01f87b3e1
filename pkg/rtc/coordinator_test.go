package rtc_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/livekit/psrpc"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"

	"github.com/roomcast/roomcast-server/pkg/rtc"
	"github.com/roomcast/roomcast-server/pkg/rtc/types"
	"github.com/roomcast/roomcast-server/pkg/rtc/types/typesfakes"
)

func newFakeRouter(id string) *typesfakes.FakeRouter {
	r := &typesfakes.FakeRouter{}
	r.IDReturns(id)
	closed := atomic.NewBool(false)
	r.ClosedCalls(closed.Load)
	r.CloseCalls(func() {
		if closed.Swap(true) {
			return
		}
		for i := 0; i < r.OnCloseCallCount(); i++ {
			r.OnCloseArgsForCall(i)()
		}
	})
	return r
}

func newCoordinator(factory types.RouterFactory) (*rtc.RoomCoordinator, *rtc.RoomRegistry, *rtc.TransportRegistry) {
	rooms := rtc.NewRoomRegistry()
	transports := rtc.NewTransportRegistry()
	return rtc.NewRoomCoordinator(factory, rooms, transports), rooms, transports
}

func TestEnsureRouter_SingleCreationUnderConcurrency(t *testing.T) {
	factory := &typesfakes.FakeRouterFactory{}
	release := make(chan struct{})
	factory.CreateRouterStub = func(ctx context.Context) (types.CreatedRouter, error) {
		<-release
		return types.CreatedRouter{Router: newFakeRouter("RT_1"), WorkerIndex: 1, WorkerPID: 42}, nil
	}
	coordinator, rooms, _ := newCoordinator(factory)

	const callers = 50
	entries := make([]*rtc.RoomEntry, callers)
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			entries[i], errs[i] = coordinator.EnsureRouter(context.Background(), "room1")
		}(i)
	}
	// let every caller reach the creation window
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	require.Equal(t, 1, factory.CreateRouterCallCount())
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		require.Same(t, entries[0], entries[i])
	}
	require.Equal(t, 1, rooms.Len())
	require.Equal(t, 1, entries[0].WorkerIndex)
	require.Equal(t, 42, entries[0].WorkerPID)

	// fast path afterwards
	entry, err := coordinator.EnsureRouter(context.Background(), "room1")
	require.NoError(t, err)
	require.Same(t, entries[0], entry)
	require.Equal(t, 1, factory.CreateRouterCallCount())
}

func TestEnsureRouter_FailureIsSharedAndForgotten(t *testing.T) {
	factory := &typesfakes.FakeRouterFactory{}
	factory.CreateRouterReturnsOnCall(0, types.CreatedRouter{}, errors.New("worker unavailable"))
	factory.CreateRouterReturnsOnCall(1, types.CreatedRouter{Router: newFakeRouter("RT_2")}, nil)
	coordinator, rooms, _ := newCoordinator(factory)

	_, err := coordinator.EnsureRouter(context.Background(), "room1")
	require.Error(t, err)
	var pe psrpc.Error
	require.ErrorAs(t, err, &pe)
	require.Equal(t, psrpc.Unavailable, pe.Code())
	require.Equal(t, 0, rooms.Len())

	entry, err := coordinator.EnsureRouter(context.Background(), "room1")
	require.NoError(t, err)
	require.Equal(t, "RT_2", entry.Router.ID())
	require.Equal(t, 2, factory.CreateRouterCallCount())
}

func TestEnsureRouter_ClosedRouterIsReplaced(t *testing.T) {
	first := newFakeRouter("RT_1")
	second := newFakeRouter("RT_2")
	factory := &typesfakes.FakeRouterFactory{}
	factory.CreateRouterReturnsOnCall(0, types.CreatedRouter{Router: first}, nil)
	factory.CreateRouterReturnsOnCall(1, types.CreatedRouter{Router: second}, nil)
	coordinator, rooms, _ := newCoordinator(factory)

	entry, err := coordinator.EnsureRouter(context.Background(), "room1")
	require.NoError(t, err)
	require.Same(t, first, entry.Router)

	var closedRooms []string
	coordinator.OnRoomClosed(func(e *rtc.RoomEntry) {
		closedRooms = append(closedRooms, e.RoomID)
	})

	first.Close()
	require.Nil(t, rooms.Get("room1"))
	require.Nil(t, coordinator.Get("room1"))
	require.Equal(t, []string{"room1"}, closedRooms)

	entry, err = coordinator.EnsureRouter(context.Background(), "room1")
	require.NoError(t, err)
	require.Same(t, second, entry.Router)
}

func TestEnsureRouter_StaleCloseKeepsNewEntry(t *testing.T) {
	first := &typesfakes.FakeRouter{}
	first.IDReturns("RT_1")
	second := newFakeRouter("RT_2")
	factory := &typesfakes.FakeRouterFactory{}
	factory.CreateRouterReturnsOnCall(0, types.CreatedRouter{Router: first}, nil)
	factory.CreateRouterReturnsOnCall(1, types.CreatedRouter{Router: second}, nil)
	coordinator, rooms, _ := newCoordinator(factory)

	_, err := coordinator.EnsureRouter(context.Background(), "room1")
	require.NoError(t, err)

	// the first router reports closed before its observer has run
	first.ClosedReturns(true)
	entry, err := coordinator.EnsureRouter(context.Background(), "room1")
	require.NoError(t, err)
	require.Same(t, second, entry.Router)

	// the late observer of the first router must not remove the new entry
	require.Equal(t, 1, first.OnCloseCallCount())
	first.OnCloseArgsForCall(0)()
	require.NotNil(t, rooms.Get("room1"))
	require.Same(t, second, rooms.Get("room1").Router)
}

func TestRouterClose_RemovesTransports(t *testing.T) {
	router := newFakeRouter("RT_1")
	factory := &typesfakes.FakeRouterFactory{}
	factory.CreateRouterReturns(types.CreatedRouter{Router: router}, nil)
	coordinator, _, transports := newCoordinator(factory)

	entry, err := coordinator.EnsureRouter(context.Background(), "room1")
	require.NoError(t, err)

	open := &typesfakes.FakeWebRTCTransport{}
	closed := &typesfakes.FakeWebRTCTransport{}
	closed.ClosedReturns(true)
	other := &typesfakes.FakeWebRTCTransport{}
	transports.Set("TR_open", &rtc.TransportEntry{Transport: open, RoomID: "room1"})
	transports.Set("TR_closed", &rtc.TransportEntry{Transport: closed, RoomID: "room1"})
	transports.Set("TR_other", &rtc.TransportEntry{Transport: other, RoomID: "room2"})
	entry.AddTransport("TR_open")
	entry.AddTransport("TR_closed")

	require.True(t, coordinator.CloseRoom("room1"))

	_, ok := transports.Get("TR_open")
	require.False(t, ok)
	_, ok = transports.Get("TR_closed")
	require.False(t, ok)
	_, ok = transports.Get("TR_other")
	require.True(t, ok)
	require.Equal(t, 1, open.CloseCallCount())
	require.Equal(t, 0, closed.CloseCallCount())
	require.Empty(t, entry.TransportIDs())

	require.False(t, coordinator.CloseRoom("room1"))
}

func TestEnsureRouter_Stopped(t *testing.T) {
	router := newFakeRouter("RT_1")
	factory := &typesfakes.FakeRouterFactory{}
	factory.CreateRouterReturns(types.CreatedRouter{Router: router}, nil)
	coordinator, rooms, _ := newCoordinator(factory)

	_, err := coordinator.EnsureRouter(context.Background(), "room1")
	require.NoError(t, err)

	coordinator.Stop()
	require.True(t, router.Closed())
	require.Equal(t, 0, rooms.Len())

	_, err = coordinator.EnsureRouter(context.Background(), "room2")
	require.ErrorIs(t, err, rtc.ErrCoordinatorStopped)
}
