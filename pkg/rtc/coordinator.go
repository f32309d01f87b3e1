package rtc

import (
	"context"
	"sync"

	"github.com/livekit/psrpc"
	"go.uber.org/atomic"
	"golang.org/x/sync/singleflight"

	"github.com/roomcast/roomcast-server/pkg/logger"
	"github.com/roomcast/roomcast-server/pkg/rtc/types"
	"github.com/roomcast/roomcast-server/pkg/telemetry/prometheus"
)

// RoomCoordinator makes sure each room has at most one live router on this node.
type RoomCoordinator struct {
	factory    types.RouterFactory
	rooms      *RoomRegistry
	transports *TransportRegistry

	// in-flight router creations keyed by room id
	flights singleflight.Group
	stopped atomic.Bool

	lock         sync.RWMutex
	onRoomClosed []func(entry *RoomEntry)
}

func NewRoomCoordinator(factory types.RouterFactory, rooms *RoomRegistry, transports *TransportRegistry) *RoomCoordinator {
	return &RoomCoordinator{
		factory:    factory,
		rooms:      rooms,
		transports: transports,
	}
}

// OnRoomClosed registers a callback invoked after a room's router closed and its entry was removed.
func (c *RoomCoordinator) OnRoomClosed(f func(entry *RoomEntry)) {
	c.lock.Lock()
	c.onRoomClosed = append(c.onRoomClosed, f)
	c.lock.Unlock()
}

// Get returns the live entry of roomID without creating one.
func (c *RoomCoordinator) Get(roomID string) *RoomEntry {
	entry := c.rooms.Get(roomID)
	if entry == nil || entry.Router.Closed() {
		return nil
	}
	return entry
}

// EnsureRouter returns the live entry of roomID, creating its router when needed.
// Concurrent callers for the same room share a single creation and its outcome.
func (c *RoomCoordinator) EnsureRouter(ctx context.Context, roomID string) (*RoomEntry, error) {
	if entry := c.Get(roomID); entry != nil {
		return entry, nil
	}
	if c.stopped.Load() {
		return nil, ErrCoordinatorStopped
	}

	// a caller leaving early must not fail the callers sharing its creation
	createCtx := context.WithoutCancel(ctx)
	v, err, shared := c.flights.Do(roomID, func() (interface{}, error) {
		// a flight that completed just before this one may have registered the room
		if entry := c.Get(roomID); entry != nil {
			return entry, nil
		}
		return c.createRoom(createCtx, roomID)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		logger.Debugw("joined in-flight router creation", "room", roomID)
	}
	return v.(*RoomEntry), nil
}

func (c *RoomCoordinator) createRoom(ctx context.Context, roomID string) (*RoomEntry, error) {
	created, err := c.factory.CreateRouter(ctx)
	if err != nil {
		logger.Errorw("could not create router", err, "room", roomID)
		return nil, psrpc.NewError(psrpc.Unavailable, err)
	}
	if created.Router == nil {
		return nil, ErrRouterUnavailable
	}

	entry := NewRoomEntry(roomID, created)
	c.rooms.Set(entry)
	created.Router.OnClose(func() {
		c.handleRouterClosed(entry)
	})
	if created.Router.Closed() {
		c.rooms.DeleteIf(roomID, created.Router)
		return nil, ErrRoomClosed
	}
	prometheus.RoomStarted()

	logger.Infow("room router created",
		"room", roomID,
		"router", created.Router.ID(),
		"workerIndex", created.WorkerIndex,
		"workerPID", created.WorkerPID,
	)
	return entry, nil
}

func (c *RoomCoordinator) handleRouterClosed(entry *RoomEntry) {
	if !c.rooms.DeleteIf(entry.RoomID, entry.Router) {
		// a newer router owns the room; leave its entry alone
		logger.Debugw("stale router closed", "room", entry.RoomID, "router", entry.Router.ID())
		return
	}
	prometheus.RoomEnded(entry.CreatedAt)

	for _, id := range entry.TransportIDs() {
		// close first so the transport's own observers still find it registered
		if te, ok := c.transports.Get(id); ok && !te.Transport.Closed() {
			te.Transport.Close()
		}
		if _, ok := c.transports.Delete(id); ok {
			prometheus.SubTransport()
		}
		entry.RemoveTransport(id)
	}

	logger.Infow("room router closed", "room", entry.RoomID, "router", entry.Router.ID())

	c.lock.RLock()
	handlers := append([]func(*RoomEntry){}, c.onRoomClosed...)
	c.lock.RUnlock()
	for _, f := range handlers {
		f(entry)
	}
}

// CloseRoom closes the router of roomID, tearing down every resource in the room.
func (c *RoomCoordinator) CloseRoom(roomID string) bool {
	entry := c.rooms.Get(roomID)
	if entry == nil {
		return false
	}
	entry.Router.Close()
	return true
}

func (c *RoomCoordinator) Rooms() []*RoomEntry {
	return c.rooms.List()
}

// Stop refuses new rooms and closes every live router.
func (c *RoomCoordinator) Stop() {
	if c.stopped.Swap(true) {
		return
	}
	for _, entry := range c.rooms.List() {
		entry.Router.Close()
	}
}
