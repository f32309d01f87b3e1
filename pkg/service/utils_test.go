package service_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"

	"github.com/roomcast/roomcast-server/pkg/config"
	"github.com/roomcast/roomcast-server/pkg/rtc"
	"github.com/roomcast/roomcast-server/pkg/rtc/types"
	"github.com/roomcast/roomcast-server/pkg/rtc/types/typesfakes"
	"github.com/roomcast/roomcast-server/pkg/service"
)

func redisClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: addr,
	})
}

var errCacheDown = errors.New("cache down")

// flakyCache fails inserts touching failNamespace.
type flakyCache struct {
	*service.LocalCache
	failNamespace atomic.String
}

func (c *flakyCache) Insert(ctx context.Context, records ...service.Record) error {
	if ns := c.failNamespace.Load(); ns != "" {
		for _, r := range records {
			if r.Namespace == ns {
				return errCacheDown
			}
		}
	}
	return c.LocalCache.Insert(ctx, records...)
}

// closeState mimics the close semantics of engine handles: observers run once, and
// immediately when registered after the close.
type closeState struct {
	closed    atomic.Bool
	lock      sync.Mutex
	observers []func()
}

func (c *closeState) onClose(f func()) {
	c.lock.Lock()
	if !c.closed.Load() {
		c.observers = append(c.observers, f)
		c.lock.Unlock()
		return
	}
	c.lock.Unlock()
	f()
}

func (c *closeState) close() {
	c.lock.Lock()
	if c.closed.Swap(true) {
		c.lock.Unlock()
		return
	}
	observers := c.observers
	c.observers = nil
	c.lock.Unlock()
	for _, f := range observers {
		f()
	}
}

func newFakeRouter(id string) *typesfakes.FakeRouter {
	r := &typesfakes.FakeRouter{}
	r.IDReturns(id)
	state := &closeState{}
	r.ClosedCalls(state.closed.Load)
	r.CloseCalls(state.close)
	r.OnCloseCalls(state.onClose)
	r.CanConsumeReturns(true)
	r.RtpCapabilitiesReturns(types.RtpCapabilities{
		Codecs: []types.RtpCodecCapability{{MimeType: "video/VP8", Kind: types.MediaKindVideo, ClockRate: 90000}},
	})
	return r
}

type testHarness struct {
	t *testing.T

	svc              *service.MediaService
	cache            *flakyCache
	routerFactory    *typesfakes.FakeRouterFactory
	transportFactory *typesfakes.FakeTransportFactory
	coordinator      *rtc.RoomCoordinator
	transports       *rtc.TransportRegistry
	producers        *rtc.ProducerRegistry
	consumers        *rtc.ConsumerRegistry
	escalations      *rtc.EscalationTimers
	spatialLayers    int

	lock           sync.Mutex
	seq            int
	fakeTransports map[string]*typesfakes.FakeWebRTCTransport
	fakeProducers  map[string]*typesfakes.FakeProducer
	fakeConsumers  map[string]*typesfakes.FakeConsumer
}

const escalationDelay = 50 * time.Millisecond

func newTestHarness(t *testing.T) *testHarness {
	conf := config.DefaultConfig
	conf.RTC.EscalationDelay = escalationDelay
	conf.RTC.OperationTimeout = 5 * time.Second

	h := &testHarness{
		t:                t,
		cache:            &flakyCache{LocalCache: service.NewLocalCache()},
		routerFactory:    &typesfakes.FakeRouterFactory{},
		transportFactory: &typesfakes.FakeTransportFactory{},
		transports:       rtc.NewTransportRegistry(),
		producers:        rtc.NewProducerRegistry(),
		consumers:        rtc.NewConsumerRegistry(),
		escalations:      rtc.NewEscalationTimers(),
		spatialLayers:    3,
		fakeTransports:   make(map[string]*typesfakes.FakeWebRTCTransport),
		fakeProducers:    make(map[string]*typesfakes.FakeProducer),
		fakeConsumers:    make(map[string]*typesfakes.FakeConsumer),
	}
	h.routerFactory.CreateRouterStub = func(ctx context.Context) (types.CreatedRouter, error) {
		return types.CreatedRouter{Router: newFakeRouter(h.nextID("RT_")), WorkerIndex: 0, WorkerPID: 100}, nil
	}
	h.transportFactory.CreateWebRTCTransportStub = func(ctx context.Context, router types.Router) (types.WebRTCTransport, error) {
		return h.newTransport(), nil
	}
	h.coordinator = rtc.NewRoomCoordinator(h.routerFactory, rtc.NewRoomRegistry(), h.transports)
	h.svc = service.NewMediaService(
		&conf,
		h.cache,
		service.NewAuthorizer(h.cache),
		h.coordinator,
		h.transportFactory,
		h.transports,
		h.producers,
		h.consumers,
		h.escalations,
	)
	t.Cleanup(h.svc.Stop)
	return h
}

func (h *testHarness) nextID(prefix string) string {
	h.lock.Lock()
	defer h.lock.Unlock()
	h.seq++
	return fmt.Sprintf("%s%d", prefix, h.seq)
}

func (h *testHarness) newTransport() *typesfakes.FakeWebRTCTransport {
	ft := &typesfakes.FakeWebRTCTransport{}
	id := h.nextID("TR_")
	ft.IDReturns(id)
	state := &closeState{}
	ft.ClosedCalls(state.closed.Load)
	ft.CloseCalls(state.close)
	ft.OnCloseCalls(state.onClose)
	ft.ICEParametersReturns(types.ICEParameters{UsernameFragment: "ufrag", Password: "pwd", ICELite: true})
	ft.ProduceCalls(func(ctx context.Context, opts types.ProducerOptions) (types.Producer, error) {
		return h.newProducer(opts), nil
	})
	ft.ConsumeCalls(func(ctx context.Context, opts types.ConsumerOptions) (types.Consumer, error) {
		return h.newConsumer(opts), nil
	})

	h.lock.Lock()
	h.fakeTransports[id] = ft
	h.lock.Unlock()
	return ft
}

func (h *testHarness) newProducer(opts types.ProducerOptions) *typesfakes.FakeProducer {
	fp := &typesfakes.FakeProducer{}
	id := h.nextID("PR_")
	fp.IDReturns(id)
	fp.KindReturns(opts.Kind)
	state := &closeState{}
	fp.ClosedCalls(state.closed.Load)
	fp.CloseCalls(state.close)
	fp.OnCloseCalls(state.onClose)

	h.lock.Lock()
	h.fakeProducers[id] = fp
	h.lock.Unlock()
	return fp
}

func (h *testHarness) newConsumer(opts types.ConsumerOptions) *typesfakes.FakeConsumer {
	fc := &typesfakes.FakeConsumer{}
	id := h.nextID("CO_")
	fc.IDReturns(id)
	fc.ProducerIDReturns(opts.ProducerID)
	fc.KindReturns(h.producer(opts.ProducerID).Kind())
	fc.SpatialLayersReturns(h.spatialLayers)
	var layersLock sync.Mutex
	var preferred types.ConsumerLayers
	fc.SetPreferredLayersCalls(func(layers types.ConsumerLayers) {
		layersLock.Lock()
		preferred = layers
		layersLock.Unlock()
	})
	fc.PreferredLayersCalls(func() types.ConsumerLayers {
		layersLock.Lock()
		defer layersLock.Unlock()
		return preferred
	})
	state := &closeState{}
	fc.ClosedCalls(state.closed.Load)
	fc.CloseCalls(state.close)
	fc.OnCloseCalls(state.onClose)
	paused := atomic.NewBool(opts.Paused)
	fc.PausedCalls(paused.Load)
	fc.PauseCalls(func() { paused.Store(true) })
	fc.ResumeCalls(func() { paused.Store(false) })

	h.lock.Lock()
	h.fakeConsumers[id] = fc
	h.lock.Unlock()
	return fc
}

func (h *testHarness) router(roomID string) *typesfakes.FakeRouter {
	entry := h.coordinator.Get(roomID)
	require.NotNil(h.t, entry)
	return entry.Router.(*typesfakes.FakeRouter)
}

func (h *testHarness) transport(id string) *typesfakes.FakeWebRTCTransport {
	h.lock.Lock()
	defer h.lock.Unlock()
	return h.fakeTransports[id]
}

func (h *testHarness) producer(id string) *typesfakes.FakeProducer {
	h.lock.Lock()
	defer h.lock.Unlock()
	return h.fakeProducers[id]
}

func (h *testHarness) consumer(id string) *typesfakes.FakeConsumer {
	h.lock.Lock()
	defer h.lock.Unlock()
	return h.fakeConsumers[id]
}

func (h *testHarness) join(roomID string, userID string) {
	err := h.cache.Insert(context.Background(), service.Record{
		Namespace: service.RoomNamespace(roomID),
		Key:       userID,
		Value:     `{"role":"member"}`,
	})
	require.NoError(h.t, err)
}

func (h *testHarness) createTransport(roomID string, userID string, dir types.TransportDirection) string {
	res, err := h.svc.CreateTransport(context.Background(), &service.CreateTransportRequest{
		RoomID:   roomID,
		UserID:   userID,
		SocketID: "SK_" + userID,
		Type:     dir,
	})
	require.NoError(h.t, err)
	return res.TransportID
}

func (h *testHarness) produce(roomID string, userID string, transportID string, pt types.ProducerType) string {
	res, err := h.svc.CreateProducer(context.Background(), &service.CreateProducerRequest{
		RoomID:      roomID,
		UserID:      userID,
		TransportID: transportID,
		Type:        pt,
	})
	require.NoError(h.t, err)
	return res.ProducerID
}

func (h *testHarness) consume(roomID string, userID string, transportID string, producerID string) *service.ConsumerInfo {
	info, err := h.svc.CreateConsumer(context.Background(), &service.CreateConsumerRequest{
		RoomID:      roomID,
		UserID:      userID,
		TransportID: transportID,
		ProducerID:  producerID,
	})
	require.NoError(h.t, err)
	return info
}

// setupShare has alice publish a producer of type pt and bob consume it.
func (h *testHarness) setupShare(pt types.ProducerType) (producerID string, consumerID string) {
	h.join("room1", "alice")
	h.join("room1", "bob")
	send := h.createTransport("room1", "alice", types.TransportDirectionSend)
	recv := h.createTransport("room1", "bob", types.TransportDirectionRecv)
	producerID = h.produce("room1", "alice", send, pt)
	return producerID, h.consume("room1", "bob", recv, producerID).ConsumerID
}
