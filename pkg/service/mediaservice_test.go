package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/livekit/psrpc"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"

	"github.com/roomcast/roomcast-server/pkg/rtc"
	"github.com/roomcast/roomcast-server/pkg/rtc/types"
	"github.com/roomcast/roomcast-server/pkg/rtc/types/typesfakes"
	"github.com/roomcast/roomcast-server/pkg/service"
)

func requireCode(t *testing.T, err error, code psrpc.ErrorCode) {
	t.Helper()
	var pe psrpc.Error
	require.ErrorAs(t, err, &pe)
	require.Equal(t, code, pe.Code())
}

func TestCreateRouter(t *testing.T) {
	t.Run("requires membership", func(t *testing.T) {
		h := newTestHarness(t)
		_, err := h.svc.CreateRouter(context.Background(), &service.CreateRouterRequest{RoomID: "room1", UserID: "alice"})
		require.ErrorIs(t, err, service.ErrNotRoomMember)
		require.Equal(t, 0, h.routerFactory.CreateRouterCallCount())
	})

	t.Run("concurrent callers share one router", func(t *testing.T) {
		h := newTestHarness(t)
		h.join("room1", "alice")

		const callers = 20
		routerIDs := make([]string, callers)
		errs := make([]error, callers)
		var wg sync.WaitGroup
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				res, err := h.svc.CreateRouter(context.Background(), &service.CreateRouterRequest{RoomID: "room1", UserID: "alice"})
				errs[i] = err
				if err == nil {
					routerIDs[i] = res.RouterID
				}
			}(i)
		}
		wg.Wait()

		for i := 0; i < callers; i++ {
			require.NoError(t, errs[i])
			require.Equal(t, routerIDs[0], routerIDs[i])
		}
		require.Equal(t, 1, h.routerFactory.CreateRouterCallCount())
	})

	t.Run("returns capabilities and worker", func(t *testing.T) {
		h := newTestHarness(t)
		h.join("room1", "alice")
		res, err := h.svc.CreateRouter(context.Background(), &service.CreateRouterRequest{RoomID: "room1", UserID: "alice"})
		require.NoError(t, err)
		require.Equal(t, "room1", res.RoomID)
		require.Equal(t, 100, res.WorkerPID)
		require.Len(t, res.RtpCapabilities.Codecs, 1)
	})
}

func TestCreateTransport(t *testing.T) {
	t.Run("registers and persists", func(t *testing.T) {
		h := newTestHarness(t)
		h.join("room1", "alice")
		id := h.createTransport("room1", "alice", types.TransportDirectionSend)

		te, ok := h.transports.Get(id)
		require.True(t, ok)
		require.Equal(t, "alice", te.UserID)
		require.True(t, h.coordinator.Get("room1").HasTransport(id))
		require.Equal(t, 1, h.transportFactory.AttachDebugHooksCallCount())

		ctx := context.Background()
		value, err := h.cache.Select(ctx, service.UserNamespace("alice"), service.SendTransportKey)
		require.NoError(t, err)
		require.Equal(t, id, value)
		value, err = h.cache.Select(ctx, service.TransportNamespace, id)
		require.NoError(t, err)
		require.JSONEq(t, `{"room_id":"room1","user_id":"alice","socket_id":"SK_alice","type":"send"}`, value)
	})

	t.Run("closed when persistence fails", func(t *testing.T) {
		h := newTestHarness(t)
		h.join("room1", "alice")
		h.cache.failNamespace.Store(service.TransportNamespace)

		_, err := h.svc.CreateTransport(context.Background(), &service.CreateTransportRequest{
			RoomID: "room1",
			UserID: "alice",
			Type:   types.TransportDirectionRecv,
		})
		requireCode(t, err, psrpc.Unavailable)

		require.Equal(t, 1, h.transportFactory.CreateWebRTCTransportCallCount())
		require.Len(t, h.fakeTransports, 1)
		for _, ft := range h.fakeTransports {
			require.Equal(t, 1, ft.CloseCallCount())
		}
		require.Equal(t, 0, h.transports.Len())
		require.Empty(t, h.coordinator.Get("room1").TransportIDs())
	})

	t.Run("closes superseded transport of the same direction", func(t *testing.T) {
		h := newTestHarness(t)
		h.join("room1", "alice")
		first := h.createTransport("room1", "alice", types.TransportDirectionSend)
		recv := h.createTransport("room1", "alice", types.TransportDirectionRecv)
		second := h.createTransport("room1", "alice", types.TransportDirectionSend)

		require.Equal(t, 1, h.transport(first).CloseCallCount())
		require.Equal(t, 0, h.transport(recv).CloseCallCount())
		_, ok := h.transports.Get(first)
		require.False(t, ok)
		require.ElementsMatch(t, []string{recv, second}, h.coordinator.Get("room1").TransportIDs())

		value, err := h.cache.Select(context.Background(), service.UserNamespace("alice"), service.SendTransportKey)
		require.NoError(t, err)
		require.Equal(t, second, value)
	})

	t.Run("rejects invalid type", func(t *testing.T) {
		h := newTestHarness(t)
		h.join("room1", "alice")
		_, err := h.svc.CreateTransport(context.Background(), &service.CreateTransportRequest{RoomID: "room1", UserID: "alice", Type: "both"})
		require.ErrorIs(t, err, service.ErrInvalidTransportType)
	})

	t.Run("router close releases transports", func(t *testing.T) {
		h := newTestHarness(t)
		h.join("room1", "alice")
		send := h.createTransport("room1", "alice", types.TransportDirectionSend)
		recv := h.createTransport("room1", "alice", types.TransportDirectionRecv)

		h.router("room1").Close()

		require.Nil(t, h.coordinator.Get("room1"))
		require.Equal(t, 0, h.transports.Len())
		for _, id := range []string{send, recv} {
			require.Equal(t, 1, h.transport(id).CloseCallCount())
			_, err := h.cache.Select(context.Background(), service.TransportNamespace, id)
			require.ErrorIs(t, err, service.ErrCacheMiss)
		}
	})
}

func TestConnectTransport(t *testing.T) {
	setup := func(t *testing.T) (*testHarness, string) {
		h := newTestHarness(t)
		h.join("room1", "alice")
		h.join("room1", "mallory")
		return h, h.createTransport("room1", "alice", types.TransportDirectionSend)
	}
	dtls := types.DTLSParameters{
		Role:         types.DTLSRoleClient,
		Fingerprints: []types.DTLSFingerprint{{Algorithm: "sha-256", Value: "AB:CD"}},
	}

	t.Run("owner connects", func(t *testing.T) {
		h, id := setup(t)
		err := h.svc.ConnectTransport(context.Background(), &service.ConnectTransportRequest{
			TransportID:    id,
			RoomID:         "room1",
			UserID:         "alice",
			SocketID:       "SK_alice",
			Type:           types.TransportDirectionSend,
			DTLSParameters: dtls,
		})
		require.NoError(t, err)
		ft := h.transport(id)
		require.Equal(t, 1, ft.ConnectCallCount())
		_, params := ft.ConnectArgsForCall(0)
		require.Equal(t, dtls, params.DTLSParameters)
	})

	t.Run("spoofed identity never reaches the transport", func(t *testing.T) {
		h, id := setup(t)
		for _, req := range []*service.ConnectTransportRequest{
			{TransportID: id, RoomID: "room1", UserID: "mallory"},
			{TransportID: id, RoomID: "room2", UserID: "alice"},
			{TransportID: id, RoomID: "room1", UserID: "alice", SocketID: "SK_mallory"},
			{TransportID: id, RoomID: "room1", UserID: "alice", Type: types.TransportDirectionRecv},
		} {
			req.DTLSParameters = dtls
			err := h.svc.ConnectTransport(context.Background(), req)
			require.ErrorIs(t, err, service.ErrTransportNotOwned)
			requireCode(t, err, psrpc.PermissionDenied)
		}
		require.Equal(t, 0, h.transport(id).ConnectCallCount())
	})

	t.Run("unknown transport", func(t *testing.T) {
		h, _ := setup(t)
		err := h.svc.ConnectTransport(context.Background(), &service.ConnectTransportRequest{
			TransportID: "TR_missing",
			RoomID:      "room1",
			UserID:      "alice",
		})
		require.ErrorIs(t, err, service.ErrTransportNotFound)
	})
}

func TestCreateProducer(t *testing.T) {
	t.Run("registers and persists", func(t *testing.T) {
		h := newTestHarness(t)
		h.join("room1", "alice")
		send := h.createTransport("room1", "alice", types.TransportDirectionSend)
		id := h.produce("room1", "alice", send, types.ProducerTypeCam)

		pe, ok := h.producers.Get(id)
		require.True(t, ok)
		require.Equal(t, types.ProducerTypeCam, pe.Type)
		_, opts := h.transport(send).ProduceArgsForCall(0)
		require.Equal(t, types.MediaKindVideo, opts.Kind)

		value, err := h.cache.Select(context.Background(), service.ParticipantNamespace("room1", "alice"), id)
		require.NoError(t, err)
		require.Contains(t, value, `"type":"cam"`)
	})

	t.Run("requires own send transport", func(t *testing.T) {
		h := newTestHarness(t)
		h.join("room1", "alice")
		h.join("room1", "bob")
		recv := h.createTransport("room1", "alice", types.TransportDirectionRecv)
		bobSend := h.createTransport("room1", "bob", types.TransportDirectionSend)

		_, err := h.svc.CreateProducer(context.Background(), &service.CreateProducerRequest{
			RoomID: "room1", UserID: "alice", TransportID: recv, Type: types.ProducerTypeMic,
		})
		require.ErrorIs(t, err, service.ErrWrongTransportDirection)

		_, err = h.svc.CreateProducer(context.Background(), &service.CreateProducerRequest{
			RoomID: "room1", UserID: "alice", TransportID: bobSend, Type: types.ProducerTypeMic,
		})
		require.ErrorIs(t, err, service.ErrTransportNotOwned)
		require.Equal(t, 0, h.transport(bobSend).ProduceCallCount())
	})

	t.Run("kind must match type", func(t *testing.T) {
		h := newTestHarness(t)
		_, err := h.svc.CreateProducer(context.Background(), &service.CreateProducerRequest{
			RoomID: "room1", UserID: "alice", TransportID: "TR_1", Type: types.ProducerTypeMic, Kind: types.MediaKindVideo,
		})
		require.ErrorIs(t, err, service.ErrProducerKindMismatch)
	})

	t.Run("one screen share per room", func(t *testing.T) {
		h := newTestHarness(t)
		h.join("room1", "alice")
		h.join("room1", "bob")
		aliceSend := h.createTransport("room1", "alice", types.TransportDirectionSend)
		bobSend := h.createTransport("room1", "bob", types.TransportDirectionSend)
		screen := h.produce("room1", "alice", aliceSend, types.ProducerTypeScreenVideo)

		_, err := h.svc.CreateProducer(context.Background(), &service.CreateProducerRequest{
			RoomID: "room1", UserID: "bob", TransportID: bobSend, Type: types.ProducerTypeScreenVideo,
		})
		require.ErrorIs(t, err, rtc.ErrScreenShareActive)
		require.Equal(t, 0, h.transport(bobSend).ProduceCallCount())

		// screen audio lives in its own slot
		h.produce("room1", "bob", bobSend, types.ProducerTypeScreenAudio)

		h.producer(screen).Close()
		require.Nil(t, h.coordinator.Get("room1").Slot(rtc.SlotMain))
		_, err = h.cache.Select(context.Background(), service.ParticipantNamespace("room1", "alice"), service.MainProducerKey)
		require.ErrorIs(t, err, service.ErrCacheMiss)

		h.produce("room1", "bob", bobSend, types.ProducerTypeScreenVideo)
	})

	t.Run("closed when membership is revoked during creation", func(t *testing.T) {
		h := newTestHarness(t)
		h.join("room1", "alice")
		send := h.createTransport("room1", "alice", types.TransportDirectionSend)

		var produced *typesfakes.FakeProducer
		h.transport(send).ProduceCalls(func(ctx context.Context, opts types.ProducerOptions) (types.Producer, error) {
			require.NoError(t, h.cache.DeleteKey(ctx, service.RoomNamespace("room1"), "alice"))
			produced = h.newProducer(opts)
			return produced, nil
		})

		_, err := h.svc.CreateProducer(context.Background(), &service.CreateProducerRequest{
			RoomID: "room1", UserID: "alice", TransportID: send, Type: types.ProducerTypeScreenVideo,
		})
		require.ErrorIs(t, err, service.ErrNotRoomMember)
		require.Equal(t, 1, produced.CloseCallCount())
		require.Equal(t, 0, h.producers.Len())
		require.Nil(t, h.coordinator.Get("room1").Slot(rtc.SlotMain))
	})
}

func TestCreateConsumer(t *testing.T) {
	t.Run("starts paused", func(t *testing.T) {
		h := newTestHarness(t)
		producerID, consumerID := h.setupShare(types.ProducerTypeCam)

		ce, ok := h.consumers.Get(consumerID)
		require.True(t, ok)
		require.Equal(t, producerID, ce.ProducerID)
		require.True(t, ce.Consumer.Paused())

		recv := ce.TransportID
		_, opts := h.transport(recv).ConsumeArgsForCall(0)
		require.True(t, opts.Paused)

		value, err := h.cache.Select(context.Background(), service.ParticipantNamespace("room1", "bob"), consumerID)
		require.NoError(t, err)
		require.Contains(t, value, producerID)
	})

	t.Run("rejects own and foreign producers", func(t *testing.T) {
		h := newTestHarness(t)
		h.join("room1", "alice")
		h.join("room2", "carol")
		aliceSend := h.createTransport("room1", "alice", types.TransportDirectionSend)
		aliceRecv := h.createTransport("room1", "alice", types.TransportDirectionRecv)
		carolSend := h.createTransport("room2", "carol", types.TransportDirectionSend)
		own := h.produce("room1", "alice", aliceSend, types.ProducerTypeMic)
		foreign := h.produce("room2", "carol", carolSend, types.ProducerTypeMic)

		_, err := h.svc.CreateConsumer(context.Background(), &service.CreateConsumerRequest{
			RoomID: "room1", UserID: "alice", TransportID: aliceRecv, ProducerID: own,
		})
		require.ErrorIs(t, err, service.ErrConsumeOwnProducer)

		_, err = h.svc.CreateConsumer(context.Background(), &service.CreateConsumerRequest{
			RoomID: "room1", UserID: "alice", TransportID: aliceRecv, ProducerID: foreign,
		})
		require.ErrorIs(t, err, service.ErrProducerNotFound)
		require.Equal(t, 0, h.transport(aliceRecv).ConsumeCallCount())
	})

	t.Run("capabilities must match", func(t *testing.T) {
		h := newTestHarness(t)
		h.join("room1", "alice")
		h.join("room1", "bob")
		send := h.createTransport("room1", "alice", types.TransportDirectionSend)
		recv := h.createTransport("room1", "bob", types.TransportDirectionRecv)
		producerID := h.produce("room1", "alice", send, types.ProducerTypeCam)
		h.router("room1").CanConsumeReturns(false)

		_, err := h.svc.CreateConsumer(context.Background(), &service.CreateConsumerRequest{
			RoomID: "room1", UserID: "bob", TransportID: recv, ProducerID: producerID,
		})
		require.ErrorIs(t, err, service.ErrCannotConsume)
		require.Equal(t, 0, h.transport(recv).ConsumeCallCount())
	})

	t.Run("closed when persistence fails", func(t *testing.T) {
		h := newTestHarness(t)
		h.join("room1", "alice")
		h.join("room1", "bob")
		send := h.createTransport("room1", "alice", types.TransportDirectionSend)
		recv := h.createTransport("room1", "bob", types.TransportDirectionRecv)
		producerID := h.produce("room1", "alice", send, types.ProducerTypeCam)
		h.cache.failNamespace.Store(service.ParticipantNamespace("room1", "bob"))

		_, err := h.svc.CreateConsumer(context.Background(), &service.CreateConsumerRequest{
			RoomID: "room1", UserID: "bob", TransportID: recv, ProducerID: producerID,
		})
		requireCode(t, err, psrpc.Unavailable)
		require.Equal(t, 0, h.consumers.Len())
		require.Len(t, h.fakeConsumers, 1)
		for _, fc := range h.fakeConsumers {
			require.Equal(t, 1, fc.CloseCallCount())
		}
	})

	t.Run("batch reports failures per producer", func(t *testing.T) {
		h := newTestHarness(t)
		h.join("room1", "alice")
		h.join("room1", "bob")
		send := h.createTransport("room1", "alice", types.TransportDirectionSend)
		recv := h.createTransport("room1", "bob", types.TransportDirectionRecv)
		cam := h.produce("room1", "alice", send, types.ProducerTypeCam)
		mic := h.produce("room1", "alice", send, types.ProducerTypeMic)

		res, err := h.svc.CreateConsumers(context.Background(), &service.CreateConsumersRequest{
			RoomID:      "room1",
			UserID:      "bob",
			TransportID: recv,
			ProducerIDs: []string{cam, "PR_missing", mic, cam},
		})
		require.NoError(t, err)
		require.Len(t, res.Consumers, 2)
		require.Equal(t, cam, res.Consumers[0].ProducerID)
		require.Equal(t, mic, res.Consumers[1].ProducerID)
		require.Equal(t, types.MediaKindAudio, res.Consumers[1].Kind)
		require.Equal(t, []service.ConsumerFailure{{
			ProducerID: "PR_missing",
			Code:       string(psrpc.NotFound),
			Message:    service.ErrProducerNotFound.Error(),
		}}, res.Failed)
		require.Equal(t, 2, h.consumers.Len())
	})
}

func TestResumeConsumers(t *testing.T) {
	t.Run("camera resumes at the highest layer", func(t *testing.T) {
		h := newTestHarness(t)
		_, consumerID := h.setupShare(types.ProducerTypeCam)

		res, err := h.svc.ResumeConsumers(context.Background(), &service.ConsumersRequest{
			RoomID: "room1", UserID: "bob", ConsumerIDs: []string{consumerID},
		})
		require.NoError(t, err)
		require.Equal(t, []string{consumerID}, res.ConsumerIDs)

		fc := h.consumer(consumerID)
		require.Equal(t, 1, fc.ResumeCallCount())
		require.Equal(t, 1, fc.RequestKeyFrameCallCount())
		require.False(t, fc.Paused())
		require.Equal(t, uint8(1), fc.SetPriorityArgsForCall(0))
		require.Equal(t, types.ConsumerLayers{SpatialLayer: 2, TemporalLayer: types.MaxTemporalLayer}, fc.SetPreferredLayersArgsForCall(0))
		require.False(t, h.escalations.Pending(consumerID))
	})

	t.Run("screen starts low and escalates one layer", func(t *testing.T) {
		h := newTestHarness(t)
		_, consumerID := h.setupShare(types.ProducerTypeScreenVideo)

		fc := h.consumer(consumerID)
		keyFramesWhilePaused := atomic.NewInt32(0)
		fc.RequestKeyFrameCalls(func() error {
			if fc.Paused() {
				keyFramesWhilePaused.Inc()
			}
			return nil
		})

		_, err := h.svc.ResumeConsumers(context.Background(), &service.ConsumersRequest{
			RoomID: "room1", UserID: "bob", ConsumerIDs: []string{consumerID},
		})
		require.NoError(t, err)

		require.Equal(t, uint8(255), fc.SetPriorityArgsForCall(0))
		require.Equal(t, types.ConsumerLayers{}, fc.SetPreferredLayersArgsForCall(0))
		require.Equal(t, 1, fc.RequestKeyFrameCallCount())
		require.Equal(t, 1, fc.ResumeCallCount())

		require.Eventually(t, func() bool {
			return fc.SetPreferredLayersCallCount() == 2 && fc.RequestKeyFrameCallCount() == 2
		}, time.Second, 10*time.Millisecond)
		require.Equal(t, types.ConsumerLayers{SpatialLayer: 1, TemporalLayer: types.MaxTemporalLayer}, fc.SetPreferredLayersArgsForCall(1))
		require.Equal(t, int32(0), keyFramesWhilePaused.Load())
		require.False(t, h.escalations.Pending(consumerID))

		time.Sleep(3 * escalationDelay)
		require.Equal(t, 2, fc.SetPreferredLayersCallCount())
	})

	t.Run("single layer screen resumes without escalation", func(t *testing.T) {
		h := newTestHarness(t)
		h.spatialLayers = 1
		_, consumerID := h.setupShare(types.ProducerTypeScreenVideo)

		_, err := h.svc.ResumeConsumers(context.Background(), &service.ConsumersRequest{
			RoomID: "room1", UserID: "bob", ConsumerIDs: []string{consumerID},
		})
		require.NoError(t, err)

		fc := h.consumer(consumerID)
		require.Equal(t, uint8(255), fc.SetPriorityArgsForCall(0))
		require.Equal(t, 1, fc.ResumeCallCount())
		require.Equal(t, 1, fc.RequestKeyFrameCallCount())
		require.False(t, h.escalations.Pending(consumerID))

		time.Sleep(3 * escalationDelay)
		require.Equal(t, 0, fc.SetPreferredLayersCallCount())
	})

	t.Run("escalation skipped for closed consumer", func(t *testing.T) {
		h := newTestHarness(t)
		_, consumerID := h.setupShare(types.ProducerTypeScreenVideo)
		_, err := h.svc.ResumeConsumers(context.Background(), &service.ConsumersRequest{
			RoomID: "room1", UserID: "bob", ConsumerIDs: []string{consumerID},
		})
		require.NoError(t, err)

		fc := h.consumer(consumerID)
		fc.Close()
		require.False(t, h.escalations.Pending(consumerID))

		time.Sleep(3 * escalationDelay)
		require.Equal(t, 1, fc.SetPreferredLayersCallCount())
	})

	t.Run("running consumers are left alone", func(t *testing.T) {
		h := newTestHarness(t)
		_, consumerID := h.setupShare(types.ProducerTypeCam)
		req := &service.ConsumersRequest{RoomID: "room1", UserID: "bob", ConsumerIDs: []string{consumerID}}

		_, err := h.svc.ResumeConsumers(context.Background(), req)
		require.NoError(t, err)
		res, err := h.svc.ResumeConsumers(context.Background(), req)
		require.NoError(t, err)
		require.Empty(t, res.ConsumerIDs)
		require.Equal(t, 1, h.consumer(consumerID).ResumeCallCount())
	})
}

func TestPauseConsumers(t *testing.T) {
	t.Run("pause cancels pending escalation", func(t *testing.T) {
		h := newTestHarness(t)
		_, consumerID := h.setupShare(types.ProducerTypeScreenVideo)
		req := &service.ConsumersRequest{RoomID: "room1", UserID: "bob", ConsumerIDs: []string{consumerID}}

		_, err := h.svc.ResumeConsumers(context.Background(), req)
		require.NoError(t, err)
		require.True(t, h.escalations.Pending(consumerID))

		res, err := h.svc.PauseConsumers(context.Background(), req)
		require.NoError(t, err)
		require.Equal(t, []string{consumerID}, res.ConsumerIDs)
		require.False(t, h.escalations.Pending(consumerID))

		time.Sleep(3 * escalationDelay)
		fc := h.consumer(consumerID)
		require.Equal(t, 1, fc.SetPreferredLayersCallCount())
		require.True(t, fc.Paused())
	})

	t.Run("repeated pause is a no-op", func(t *testing.T) {
		h := newTestHarness(t)
		h.join("room1", "alice")
		h.join("room1", "bob")
		send := h.createTransport("room1", "alice", types.TransportDirectionSend)
		recv := h.createTransport("room1", "bob", types.TransportDirectionRecv)
		cam := h.consume("room1", "bob", recv, h.produce("room1", "alice", send, types.ProducerTypeCam)).ConsumerID
		mic := h.consume("room1", "bob", recv, h.produce("room1", "alice", send, types.ProducerTypeMic)).ConsumerID

		req := &service.ConsumersRequest{RoomID: "room1", UserID: "bob", ConsumerIDs: []string{cam, mic}}
		_, err := h.svc.ResumeConsumers(context.Background(), req)
		require.NoError(t, err)

		req.ConsumerIDs = []string{cam, mic, cam, "CO_unknown"}
		res, err := h.svc.PauseConsumers(context.Background(), req)
		require.NoError(t, err)
		require.Equal(t, []string{cam, mic}, res.ConsumerIDs)

		res, err = h.svc.PauseConsumers(context.Background(), req)
		require.NoError(t, err)
		require.Empty(t, res.ConsumerIDs)
		require.Equal(t, 1, h.consumer(cam).PauseCallCount())
		require.Equal(t, 1, h.consumer(mic).PauseCallCount())
	})

	t.Run("ignores consumers of other users", func(t *testing.T) {
		h := newTestHarness(t)
		_, consumerID := h.setupShare(types.ProducerTypeCam)
		_, err := h.svc.ResumeConsumers(context.Background(), &service.ConsumersRequest{
			RoomID: "room1", UserID: "bob", ConsumerIDs: []string{consumerID},
		})
		require.NoError(t, err)

		res, err := h.svc.PauseConsumers(context.Background(), &service.ConsumersRequest{
			RoomID: "room1", UserID: "alice", ConsumerIDs: []string{consumerID},
		})
		require.NoError(t, err)
		require.Empty(t, res.ConsumerIDs)
		require.Equal(t, 0, h.consumer(consumerID).PauseCallCount())

		err = h.svc.PauseConsumer(context.Background(), &service.ConsumersRequest{
			RoomID: "room1", UserID: "alice", ConsumerIDs: []string{consumerID},
		})
		require.ErrorIs(t, err, service.ErrConsumerNotFound)
	})
}

func TestStopScreenShare(t *testing.T) {
	t.Run("closes live producer", func(t *testing.T) {
		h := newTestHarness(t)
		producerID, _ := h.setupShare(types.ProducerTypeScreenVideo)

		res, err := h.svc.StopScreenShare(context.Background(), &service.StopScreenShareRequest{RoomID: "room1", UserID: "alice"})
		require.NoError(t, err)
		require.Equal(t, []string{producerID}, res.Stopped)
		require.Empty(t, res.Repaired)
		require.Equal(t, 1, h.producer(producerID).CloseCallCount())
		require.Equal(t, 0, h.producers.Len())
		require.Nil(t, h.coordinator.Get("room1").Slot(rtc.SlotMain))

		_, err = h.svc.StopScreenShare(context.Background(), &service.StopScreenShareRequest{RoomID: "room1", UserID: "alice"})
		require.ErrorIs(t, err, service.ErrNoScreenShare)
	})

	t.Run("repairs ghost record", func(t *testing.T) {
		h := newTestHarness(t)
		ns := service.ParticipantNamespace("room1", "alice")
		require.NoError(t, h.cache.Insert(context.Background(), service.Record{
			Namespace: ns,
			Key:       service.MainProducerKey,
			Value:     "PR_ghost",
		}))

		res, err := h.svc.StopScreenShare(context.Background(), &service.StopScreenShareRequest{RoomID: "room1", UserID: "alice"})
		require.NoError(t, err)
		require.Empty(t, res.Stopped)
		require.Equal(t, []string{"PR_ghost"}, res.Repaired)

		_, err = h.cache.Select(context.Background(), ns, service.MainProducerKey)
		require.ErrorIs(t, err, service.ErrCacheMiss)
	})

	t.Run("nothing shared", func(t *testing.T) {
		h := newTestHarness(t)
		_, err := h.svc.StopScreenShare(context.Background(), &service.StopScreenShareRequest{RoomID: "room1", UserID: "alice"})
		require.ErrorIs(t, err, service.ErrNoScreenShare)
		requireCode(t, err, psrpc.NotFound)
	})
}

func TestDisconnectUser(t *testing.T) {
	t.Run("closes open transports", func(t *testing.T) {
		h := newTestHarness(t)
		h.join("room1", "alice")
		send := h.createTransport("room1", "alice", types.TransportDirectionSend)
		recv := h.createTransport("room1", "alice", types.TransportDirectionRecv)

		res, err := h.svc.DisconnectUser(context.Background(), &service.DisconnectUserRequest{UserID: "alice"})
		require.NoError(t, err)
		require.ElementsMatch(t, []string{send, recv}, res.Closed)
		require.Equal(t, 1, h.transport(send).CloseCallCount())
		require.Equal(t, 1, h.transport(recv).CloseCallCount())
		require.Equal(t, 0, h.transports.Len())
		require.Empty(t, h.coordinator.Get("room1").TransportIDs())

		values, err := h.cache.SelectKeys(context.Background(), service.UserNamespace("alice"),
			[]string{service.SendTransportKey, service.RecvTransportKey})
		require.NoError(t, err)
		require.Empty(t, values)
	})

	t.Run("already closed transport is deregistered without closing", func(t *testing.T) {
		h := newTestHarness(t)
		h.join("room1", "alice")
		send := h.createTransport("room1", "alice", types.TransportDirectionSend)
		ft := h.transport(send)
		// closed natively before its observers ran
		ft.ClosedReturns(true)

		res, err := h.svc.DisconnectUser(context.Background(), &service.DisconnectUserRequest{UserID: "alice"})
		require.NoError(t, err)
		require.Empty(t, res.Closed)
		require.Equal(t, 0, ft.CloseCallCount())
		_, ok := h.transports.Get(send)
		require.False(t, ok)
		_, err = h.cache.Select(context.Background(), service.TransportNamespace, send)
		require.ErrorIs(t, err, service.ErrCacheMiss)
	})

	t.Run("other socket keeps its transports", func(t *testing.T) {
		h := newTestHarness(t)
		h.join("room1", "alice")
		send := h.createTransport("room1", "alice", types.TransportDirectionSend)

		res, err := h.svc.DisconnectUser(context.Background(), &service.DisconnectUserRequest{UserID: "alice", SocketID: "SK_stale"})
		require.NoError(t, err)
		require.Empty(t, res.Closed)
		require.Equal(t, 0, h.transport(send).CloseCallCount())
		value, err := h.cache.Select(context.Background(), service.UserNamespace("alice"), service.SendTransportKey)
		require.NoError(t, err)
		require.Equal(t, send, value)
	})

	t.Run("unknown user", func(t *testing.T) {
		h := newTestHarness(t)
		res, err := h.svc.DisconnectUser(context.Background(), &service.DisconnectUserRequest{UserID: "nobody"})
		require.NoError(t, err)
		require.Empty(t, res.Closed)
	})
}

func TestCloseRoom(t *testing.T) {
	h := newTestHarness(t)
	producerID, consumerID := h.setupShare(types.ProducerTypeScreenVideo)

	require.NoError(t, h.svc.CloseRoom(context.Background(), "room1"))
	require.Nil(t, h.coordinator.Get("room1"))
	require.Equal(t, 0, h.transports.Len())
	require.Equal(t, 0, h.producers.Len())
	require.Equal(t, 0, h.consumers.Len())

	ctx := context.Background()
	_, err := h.cache.Select(ctx, service.ParticipantNamespace("room1", "alice"), producerID)
	require.ErrorIs(t, err, service.ErrCacheMiss)
	_, err = h.cache.Select(ctx, service.ParticipantNamespace("room1", "bob"), consumerID)
	require.ErrorIs(t, err, service.ErrCacheMiss)

	require.ErrorIs(t, h.svc.CloseRoom(ctx, "room1"), service.ErrRoomNotFound)
}
