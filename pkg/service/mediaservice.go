package service

import (
	"context"
	"time"

	"github.com/roomcast/roomcast-server/pkg/config"
	"github.com/roomcast/roomcast-server/pkg/logger"
	"github.com/roomcast/roomcast-server/pkg/rtc"
	"github.com/roomcast/roomcast-server/pkg/rtc/types"
	"github.com/roomcast/roomcast-server/pkg/telemetry/prometheus"
)

// MediaService runs the session use cases against the local engine, the registries and the cache.
type MediaService struct {
	conf        config.RTCConfig
	recordTTL   time.Duration
	cache       Cache
	auth        *Authorizer
	coordinator *rtc.RoomCoordinator
	factory     types.TransportFactory
	transports  *rtc.TransportRegistry
	producers   *rtc.ProducerRegistry
	consumers   *rtc.ConsumerRegistry
	escalations *rtc.EscalationTimers
}

func NewMediaService(
	conf *config.Config,
	cache Cache,
	auth *Authorizer,
	coordinator *rtc.RoomCoordinator,
	factory types.TransportFactory,
	transports *rtc.TransportRegistry,
	producers *rtc.ProducerRegistry,
	consumers *rtc.ConsumerRegistry,
	escalations *rtc.EscalationTimers,
) *MediaService {
	s := &MediaService{
		conf:        conf.RTC,
		recordTTL:   conf.Redis.RecordTTL,
		cache:       cache,
		auth:        auth,
		coordinator: coordinator,
		factory:     factory,
		transports:  transports,
		producers:   producers,
		consumers:   consumers,
		escalations: escalations,
	}
	coordinator.OnRoomClosed(s.handleRoomClosed)
	return s
}

func (s *MediaService) CreateRouter(ctx context.Context, req *CreateRouterRequest) (res *CreateRouterResponse, err error) {
	defer func() { recordOperation("create_router", err) }()
	if err = validateIdentity(req.RoomID, req.UserID); err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err = s.auth.RequireMember(ctx, req.RoomID, req.UserID); err != nil {
		return nil, err
	}
	entry, err := s.coordinator.EnsureRouter(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}

	return &CreateRouterResponse{
		RoomID:          req.RoomID,
		RouterID:        entry.Router.ID(),
		RtpCapabilities: entry.Router.RtpCapabilities(),
		WorkerIndex:     entry.WorkerIndex,
		WorkerPID:       entry.WorkerPID,
	}, nil
}

// CloseRoom closes the router of roomID and everything created on it.
func (s *MediaService) CloseRoom(_ context.Context, roomID string) error {
	if roomID == "" {
		return ErrRoomIDEmpty
	}
	if !s.coordinator.CloseRoom(roomID) {
		return ErrRoomNotFound
	}
	logger.Infow("room closed on request", "room", roomID)
	return nil
}

// Stop cancels pending escalations and closes every room.
func (s *MediaService) Stop() {
	s.escalations.Stop()
	s.coordinator.Stop()
}

func (s *MediaService) handleRoomClosed(entry *rtc.RoomEntry) {
	// transports were closed by the coordinator; sweep whatever did not report back
	for _, ce := range s.consumers.Values() {
		if ce.RoomID == entry.RoomID {
			if !ce.Consumer.Closed() {
				ce.Consumer.Close()
			}
			s.cleanupConsumer(ce)
		}
	}
	for _, pe := range s.producers.Values() {
		if pe.RoomID == entry.RoomID {
			if !pe.Producer.Closed() {
				pe.Producer.Close()
			}
			s.cleanupProducer(pe, entry)
		}
	}
}

func (s *MediaService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.conf.OperationTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.conf.OperationTimeout)
}

// backgroundContext bounds cache work done from close observers.
func (s *MediaService) backgroundContext() (context.Context, context.CancelFunc) {
	return s.withTimeout(context.Background())
}

func validateIdentity(roomID string, userID string) error {
	if roomID == "" {
		return ErrRoomIDEmpty
	}
	if userID == "" {
		return ErrUserIDEmpty
	}
	return nil
}

func recordOperation(op string, err error) {
	if err == nil {
		prometheus.RecordServiceOperation(op, "success", "")
		return
	}
	prometheus.RecordServiceOperation(op, "error", errorCode(err))
}

func logFields(roomID string, userID string, kv ...interface{}) []interface{} {
	return append([]interface{}{"room", roomID, "user", userID}, kv...)
}
