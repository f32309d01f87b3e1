package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/roomcast/roomcast-server/pkg/logger"
	"github.com/roomcast/roomcast-server/pkg/rtc"
	"github.com/roomcast/roomcast-server/pkg/rtc/types"
	"github.com/roomcast/roomcast-server/pkg/telemetry/prometheus"
)

func (s *MediaService) CreateProducer(ctx context.Context, req *CreateProducerRequest) (res *CreateProducerResponse, err error) {
	defer func() { recordOperation("create_producer", err) }()
	if err = validateIdentity(req.RoomID, req.UserID); err != nil {
		return nil, err
	}
	if !req.Type.Valid() {
		return nil, ErrInvalidProducerType
	}
	kind := req.Kind
	if kind == "" {
		kind = req.Type.Kind()
	} else if kind != req.Type.Kind() {
		return nil, ErrProducerKindMismatch
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err = s.auth.RequireMember(ctx, req.RoomID, req.UserID); err != nil {
		return nil, err
	}
	te, err := s.ownedTransport(req.RoomID, req.UserID, req.TransportID, types.TransportDirectionSend)
	if err != nil {
		return nil, err
	}
	entry := s.coordinator.Get(req.RoomID)
	if entry == nil {
		return nil, ErrRoomNotFound
	}

	slot, isScreen := rtc.SlotForType(req.Type)
	if isScreen {
		if err = s.checkSlot(entry, slot); err != nil {
			return nil, err
		}
	}

	p, err := te.Transport.Produce(ctx, types.ProducerOptions{
		Kind:          kind,
		RtpParameters: req.RtpParameters,
		Paused:        req.Paused,
	})
	if err != nil {
		logger.Errorw("could not create producer", err, logFields(req.RoomID, req.UserID, "transport", req.TransportID, "type", req.Type)...)
		return nil, upstreamError(errors.Wrap(err, "create producer"))
	}
	fields := logFields(req.RoomID, req.UserID, "producer", p.ID(), "type", req.Type)

	if isScreen {
		// another screen share may have claimed the slot while the native producer was created
		err = entry.ClaimSlot(slot, rtc.ProducerSlot{
			ProducerID: p.ID(),
			UserID:     req.UserID,
			Kind:       kind,
			Type:       req.Type,
		})
		if err != nil {
			p.Close()
			return nil, err
		}
	}

	pe := &rtc.ProducerEntry{
		Producer:    p,
		RoomID:      req.RoomID,
		UserID:      req.UserID,
		TransportID: req.TransportID,
		Type:        req.Type,
	}
	s.producers.Set(p.ID(), pe)
	prometheus.AddProducer(string(kind), string(req.Type))
	p.OnClose(func() {
		s.cleanupProducer(pe, entry)
	})

	if err = s.persistProducer(ctx, pe, kind, slot, isScreen); err != nil {
		logger.Errorw("could not persist producer, closing it", err, fields...)
		prometheus.RecordCompensation("producer")
		p.Close()
		s.cleanupProducer(pe, entry)
		return nil, cacheError(errors.Wrap(err, "persist producer"))
	}

	// membership may have been revoked while the producer was being created
	member, err := s.auth.IsMember(ctx, req.RoomID, req.UserID)
	if err != nil || !member {
		logger.Infow("membership lost during produce, closing producer", fields...)
		p.Close()
		s.cleanupProducer(pe, entry)
		if err != nil {
			return nil, err
		}
		return nil, ErrNotRoomMember
	}

	logger.Infow("producer created", fields...)
	return &CreateProducerResponse{ProducerID: p.ID()}, nil
}

// checkSlot fails when a live producer holds slot and releases it when the holder is gone.
func (s *MediaService) checkSlot(entry *rtc.RoomEntry, slot rtc.Slot) error {
	cur := entry.Slot(slot)
	if cur == nil {
		return nil
	}
	if pe, ok := s.producers.Get(cur.ProducerID); ok && !pe.Producer.Closed() {
		return rtc.ErrScreenShareActive
	}
	logger.Warnw("releasing stale screen share slot", nil, "room", entry.RoomID, "slot", slot, "producer", cur.ProducerID)
	prometheus.RecordGhostRepair("slot")
	entry.ReleaseSlot(cur.ProducerID)
	return nil
}

func (s *MediaService) persistProducer(ctx context.Context, pe *rtc.ProducerEntry, kind types.MediaKind, slot rtc.Slot, isScreen bool) error {
	value, err := encodeRecord(&ProducerRecord{
		TransportID: pe.TransportID,
		Kind:        kind,
		Type:        pe.Type,
	})
	if err != nil {
		return err
	}
	ns := ParticipantNamespace(pe.RoomID, pe.UserID)
	records := []Record{{Namespace: ns, Key: pe.Producer.ID(), Value: value, TTL: s.recordTTL}}
	if isScreen {
		records = append(records, Record{Namespace: ns, Key: SlotKey(slot), Value: pe.Producer.ID(), TTL: s.recordTTL})
	}
	return s.cache.Insert(ctx, records...)
}

// cleanupProducer deregisters pe, frees its slot and clears its cache records. Repeated calls are no-ops.
func (s *MediaService) cleanupProducer(pe *rtc.ProducerEntry, entry *rtc.RoomEntry) {
	id := pe.Producer.ID()
	if entry != nil {
		entry.ReleaseSlot(id)
	}
	if _, ok := s.producers.Delete(id); !ok {
		return
	}
	prometheus.SubProducer(string(pe.Producer.Kind()), string(pe.Type))

	ctx, cancel := s.backgroundContext()
	defer cancel()
	ns := ParticipantNamespace(pe.RoomID, pe.UserID)
	if err := s.cache.DeleteKey(ctx, ns, id); err != nil {
		logger.Warnw("could not delete producer record", err, logFields(pe.RoomID, pe.UserID, "producer", id)...)
	}
	if slot, isScreen := rtc.SlotForType(pe.Type); isScreen {
		s.deleteIfCurrent(ctx, ns, SlotKey(slot), id)
	}
	logger.Debugw("producer released", logFields(pe.RoomID, pe.UserID, "producer", id)...)
}

func (s *MediaService) StopScreenShare(ctx context.Context, req *StopScreenShareRequest) (res *StopScreenShareResponse, err error) {
	defer func() { recordOperation("stop_screen_share", err) }()
	if err = validateIdentity(req.RoomID, req.UserID); err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ns := ParticipantNamespace(req.RoomID, req.UserID)
	keys := []string{MainProducerKey, SubProducerKey}
	ids, err := s.cache.SelectKeys(ctx, ns, keys)
	if err != nil {
		return nil, cacheError(errors.Wrap(err, "load screen share records"))
	}
	if len(ids) == 0 {
		return nil, ErrNoScreenShare
	}

	res = &StopScreenShareResponse{}
	for _, key := range keys {
		id, ok := ids[key]
		if !ok {
			continue
		}
		fields := logFields(req.RoomID, req.UserID, "producer", id, "slot", key)

		pe, ok := s.producers.Get(id)
		if !ok || pe.Producer.Closed() {
			logger.Warnw("removing ghost screen share record", nil, fields...)
			prometheus.RecordGhostRepair("producer")
			if ok {
				s.cleanupProducer(pe, s.coordinator.Get(req.RoomID))
			}
			if err = s.cache.DeleteKey(ctx, ns, key, id); err != nil {
				return nil, cacheError(errors.Wrap(err, "delete ghost screen share record"))
			}
			res.Repaired = append(res.Repaired, id)
			continue
		}

		pe.Producer.Close()
		// the close observer normally does this already
		s.cleanupProducer(pe, s.coordinator.Get(req.RoomID))
		res.Stopped = append(res.Stopped, id)
		logger.Infow("screen share stopped", fields...)
	}
	return res, nil
}
