package service

import (
	"context"

	"github.com/gammazero/workerpool"
	"github.com/pkg/errors"

	"github.com/roomcast/roomcast-server/pkg/logger"
	"github.com/roomcast/roomcast-server/pkg/rtc"
	"github.com/roomcast/roomcast-server/pkg/rtc/types"
	"github.com/roomcast/roomcast-server/pkg/telemetry/prometheus"
	"github.com/roomcast/roomcast-server/pkg/utils"
)

func (s *MediaService) CreateConsumer(ctx context.Context, req *CreateConsumerRequest) (res *ConsumerInfo, err error) {
	defer func() { recordOperation("create_consumer", err) }()
	if err = validateIdentity(req.RoomID, req.UserID); err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	entry, te, err := s.prepareConsume(ctx, req.RoomID, req.UserID, req.TransportID)
	if err != nil {
		return nil, err
	}
	return s.createConsumer(ctx, entry, te, req.ProducerID, req.RtpCapabilities)
}

// CreateConsumers consumes every producer in req independently; failures are reported per producer.
func (s *MediaService) CreateConsumers(ctx context.Context, req *CreateConsumersRequest) (res *CreateConsumersResponse, err error) {
	defer func() { recordOperation("create_consumers", err) }()
	if err = validateIdentity(req.RoomID, req.UserID); err != nil {
		return nil, err
	}
	producerIDs := utils.DedupeStable(req.ProducerIDs)
	if len(producerIDs) == 0 {
		return nil, ErrNoProducerIDs
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	entry, te, err := s.prepareConsume(ctx, req.RoomID, req.UserID, req.TransportID)
	if err != nil {
		return nil, err
	}

	type result struct {
		info *ConsumerInfo
		err  error
	}
	results := make([]result, len(producerIDs))
	concurrency := s.conf.ConsumeConcurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	wp := workerpool.New(concurrency)
	for i, producerID := range producerIDs {
		wp.Submit(func() {
			info, err := s.createConsumer(ctx, entry, te, producerID, req.RtpCapabilities)
			results[i] = result{info: info, err: err}
		})
	}
	wp.StopWait()

	res = &CreateConsumersResponse{Consumers: make([]*ConsumerInfo, 0, len(producerIDs))}
	for i, r := range results {
		if r.err != nil {
			res.Failed = append(res.Failed, ConsumerFailure{
				ProducerID: producerIDs[i],
				Code:       errorCode(r.err),
				Message:    r.err.Error(),
			})
			continue
		}
		res.Consumers = append(res.Consumers, r.info)
	}
	return res, nil
}

// prepareConsume runs the checks shared by every consumer of one request.
func (s *MediaService) prepareConsume(ctx context.Context, roomID string, userID string, transportID string) (*rtc.RoomEntry, *rtc.TransportEntry, error) {
	if err := s.auth.RequireMember(ctx, roomID, userID); err != nil {
		return nil, nil, err
	}
	te, err := s.ownedTransport(roomID, userID, transportID, types.TransportDirectionRecv)
	if err != nil {
		return nil, nil, err
	}
	entry := s.coordinator.Get(roomID)
	if entry == nil {
		return nil, nil, ErrRoomNotFound
	}
	return entry, te, nil
}

func (s *MediaService) createConsumer(
	ctx context.Context,
	entry *rtc.RoomEntry,
	te *rtc.TransportEntry,
	producerID string,
	caps types.RtpCapabilities,
) (*ConsumerInfo, error) {
	pe, ok := s.producers.Get(producerID)
	// producers of other rooms are reported as missing
	if !ok || pe.Producer.Closed() || pe.RoomID != te.RoomID {
		return nil, ErrProducerNotFound
	}
	if pe.UserID == te.UserID {
		return nil, ErrConsumeOwnProducer
	}
	if !entry.Router.CanConsume(producerID, caps) {
		return nil, ErrCannotConsume
	}

	c, err := te.Transport.Consume(ctx, types.ConsumerOptions{
		ProducerID:      producerID,
		RtpCapabilities: caps,
		Paused:          true,
	})
	if err != nil {
		logger.Errorw("could not create consumer", err, logFields(te.RoomID, te.UserID, "producer", producerID)...)
		return nil, upstreamError(errors.Wrap(err, "create consumer"))
	}
	fields := logFields(te.RoomID, te.UserID, "consumer", c.ID(), "producer", producerID)

	ce := &rtc.ConsumerEntry{
		Consumer:    c,
		RoomID:      te.RoomID,
		UserID:      te.UserID,
		TransportID: te.Transport.ID(),
		ProducerID:  producerID,
		Type:        pe.Type,
	}
	s.consumers.Set(c.ID(), ce)
	prometheus.AddConsumer(string(c.Kind()), string(pe.Type))
	c.OnClose(func() {
		s.cleanupConsumer(ce)
	})

	value, err := encodeRecord(&ConsumerRecord{
		ProducerID:  producerID,
		TransportID: ce.TransportID,
		Kind:        c.Kind(),
		Type:        pe.Type,
	})
	if err == nil {
		err = s.cache.Insert(ctx, Record{
			Namespace: ParticipantNamespace(te.RoomID, te.UserID),
			Key:       c.ID(),
			Value:     value,
			TTL:       s.recordTTL,
		})
	}
	if err != nil {
		logger.Errorw("could not persist consumer, closing it", err, fields...)
		prometheus.RecordCompensation("consumer")
		c.Close()
		s.cleanupConsumer(ce)
		return nil, cacheError(errors.Wrap(err, "persist consumer"))
	}

	logger.Infow("consumer created", fields...)
	return &ConsumerInfo{
		ConsumerID:     c.ID(),
		ProducerID:     producerID,
		ProducerUserID: pe.UserID,
		Kind:           c.Kind(),
		Type:           pe.Type,
		RtpParameters:  c.RtpParameters(),
		Paused:         true,
	}, nil
}

// cleanupConsumer deregisters ce and clears its record. Repeated calls are no-ops.
func (s *MediaService) cleanupConsumer(ce *rtc.ConsumerEntry) {
	id := ce.Consumer.ID()
	s.cancelEscalation(id)
	if _, ok := s.consumers.Delete(id); !ok {
		return
	}
	prometheus.SubConsumer(string(ce.Consumer.Kind()), string(ce.Type))

	ctx, cancel := s.backgroundContext()
	defer cancel()
	if err := s.cache.DeleteKey(ctx, ParticipantNamespace(ce.RoomID, ce.UserID), id); err != nil {
		logger.Warnw("could not delete consumer record", err, logFields(ce.RoomID, ce.UserID, "consumer", id)...)
	}
	logger.Debugw("consumer released", logFields(ce.RoomID, ce.UserID, "consumer", id)...)
}

// ownedConsumers resolves the authorized subset of req to live local consumers.
func (s *MediaService) ownedConsumers(ctx context.Context, req *ConsumersRequest) ([]string, []*rtc.ConsumerEntry, error) {
	if err := validateIdentity(req.RoomID, req.UserID); err != nil {
		return nil, nil, err
	}
	ids, err := s.auth.AuthorizedConsumers(ctx, req.RoomID, req.UserID, req.ConsumerIDs)
	if err != nil {
		return nil, nil, err
	}
	entries := make([]*rtc.ConsumerEntry, 0, len(ids))
	for _, id := range ids {
		ce, ok := s.consumers.Get(id)
		if !ok || ce.RoomID != req.RoomID || ce.UserID != req.UserID || ce.Consumer.Closed() {
			continue
		}
		entries = append(entries, ce)
	}
	return ids, entries, nil
}

func (s *MediaService) PauseConsumers(ctx context.Context, req *ConsumersRequest) (res *ConsumersResponse, err error) {
	defer func() { recordOperation("pause_consumers", err) }()
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, res, err = s.pauseConsumers(ctx, req)
	return res, err
}

// PauseConsumer pauses a single consumer. Pausing a paused consumer succeeds.
func (s *MediaService) PauseConsumer(ctx context.Context, req *ConsumersRequest) (err error) {
	defer func() { recordOperation("pause_consumer", err) }()
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	authorized, _, err := s.pauseConsumers(ctx, req)
	if err != nil {
		return err
	}
	if len(authorized) == 0 {
		return ErrConsumerNotFound
	}
	return nil
}

func (s *MediaService) pauseConsumers(ctx context.Context, req *ConsumersRequest) ([]string, *ConsumersResponse, error) {
	ids, entries, err := s.ownedConsumers(ctx, req)
	if err != nil {
		return nil, nil, err
	}

	res := &ConsumersResponse{ConsumerIDs: []string{}}
	for _, id := range ids {
		// also covers consumers already gone from this node
		s.cancelEscalation(id)
	}
	for _, ce := range entries {
		if ce.Consumer.Paused() {
			continue
		}
		ce.Consumer.Pause()
		res.ConsumerIDs = append(res.ConsumerIDs, ce.Consumer.ID())
	}
	if len(res.ConsumerIDs) > 0 {
		logger.Debugw("consumers paused", logFields(req.RoomID, req.UserID, "consumers", res.ConsumerIDs)...)
	}
	return ids, res, nil
}

func (s *MediaService) ResumeConsumers(ctx context.Context, req *ConsumersRequest) (res *ConsumersResponse, err error) {
	defer func() { recordOperation("resume_consumers", err) }()
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, res, err = s.resumeConsumers(ctx, req)
	return res, err
}

// ResumeConsumer resumes a single consumer. Resuming a running consumer succeeds.
func (s *MediaService) ResumeConsumer(ctx context.Context, req *ConsumersRequest) (err error) {
	defer func() { recordOperation("resume_consumer", err) }()
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	authorized, _, err := s.resumeConsumers(ctx, req)
	if err != nil {
		return err
	}
	if len(authorized) == 0 {
		return ErrConsumerNotFound
	}
	return nil
}

func (s *MediaService) resumeConsumers(ctx context.Context, req *ConsumersRequest) ([]string, *ConsumersResponse, error) {
	ids, entries, err := s.ownedConsumers(ctx, req)
	if err != nil {
		return nil, nil, err
	}

	res := &ConsumersResponse{ConsumerIDs: []string{}}
	for _, ce := range entries {
		if !ce.Consumer.Paused() {
			continue
		}
		s.resumeConsumer(ce)
		res.ConsumerIDs = append(res.ConsumerIDs, ce.Consumer.ID())
	}
	if len(res.ConsumerIDs) > 0 {
		logger.Debugw("consumers resumed", logFields(req.RoomID, req.UserID, "consumers", res.ConsumerIDs)...)
	}
	return ids, res, nil
}

func (s *MediaService) resumeConsumer(ce *rtc.ConsumerEntry) {
	c := ce.Consumer
	switch {
	case ce.Type == types.ProducerTypeScreenVideo:
		s.cancelEscalation(c.ID())
		c.SetPriority(uint8(s.conf.ScreenPriority))
		if c.SpatialLayers() < 2 {
			c.Resume()
			requestKeyFrame(ce)
			return
		}
		// lowest layer first, one layer up after EscalationDelay
		c.SetPreferredLayers(types.ConsumerLayers{})
		c.Resume()
		requestKeyFrame(ce)
		s.scheduleEscalation(c.ID())

	case c.Kind() == types.MediaKindVideo:
		c.SetPriority(uint8(s.conf.CameraPriority))
		if c.SpatialLayers() > 1 {
			c.SetPreferredLayers(highestLayers(c))
		}
		c.Resume()
		requestKeyFrame(ce)

	default:
		if ce.Type.IsScreen() {
			c.SetPriority(uint8(s.conf.ScreenPriority))
		} else {
			c.SetPriority(uint8(s.conf.CameraPriority))
		}
		c.Resume()
	}
}

// scheduleEscalation arms the one-shot layer upgrade of a screen share consumer.
// The callback runs with the timers locked, so a pause that cancels the timer
// returns only after an in-flight upgrade has finished.
func (s *MediaService) scheduleEscalation(consumerID string) {
	prometheus.RecordEscalation(prometheus.EscalationScheduled)
	s.escalations.Schedule(consumerID, s.conf.EscalationDelay, func() {
		ce, ok := s.consumers.Get(consumerID)
		if !ok || ce.Consumer.Closed() || ce.Consumer.Paused() || !ce.Type.IsScreen() {
			prometheus.RecordEscalation(prometheus.EscalationSkipped)
			return
		}
		layers := nextLayers(ce.Consumer)
		ce.Consumer.SetPreferredLayers(layers)
		requestKeyFrame(ce)
		prometheus.RecordEscalation(prometheus.EscalationFired)
		logger.Debugw("screen share consumer escalated",
			logFields(ce.RoomID, ce.UserID, "consumer", consumerID, "spatialLayer", layers.SpatialLayer)...)
	})
}

func (s *MediaService) cancelEscalation(consumerID string) {
	if s.escalations.Cancel(consumerID) {
		prometheus.RecordEscalation(prometheus.EscalationCanceled)
	}
}

func highestLayers(c types.Consumer) types.ConsumerLayers {
	spatial := c.SpatialLayers() - 1
	if spatial < 0 {
		spatial = 0
	}
	return types.ConsumerLayers{
		SpatialLayer:  spatial,
		TemporalLayer: types.MaxTemporalLayer,
	}
}

// nextLayers is one spatial layer above the current preference, capped at the highest.
func nextLayers(c types.Consumer) types.ConsumerLayers {
	spatial := c.PreferredLayers().SpatialLayer + 1
	if highest := c.SpatialLayers() - 1; spatial > highest {
		spatial = highest
	}
	if spatial < 0 {
		spatial = 0
	}
	return types.ConsumerLayers{
		SpatialLayer:  spatial,
		TemporalLayer: types.MaxTemporalLayer,
	}
}

func requestKeyFrame(ce *rtc.ConsumerEntry) {
	if err := ce.Consumer.RequestKeyFrame(); err != nil {
		logger.Debugw("could not request key frame", logFields(ce.RoomID, ce.UserID, "consumer", ce.Consumer.ID(), "error", err)...)
	}
}
