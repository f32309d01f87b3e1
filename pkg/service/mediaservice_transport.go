package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/roomcast/roomcast-server/pkg/logger"
	"github.com/roomcast/roomcast-server/pkg/rtc"
	"github.com/roomcast/roomcast-server/pkg/rtc/types"
	"github.com/roomcast/roomcast-server/pkg/telemetry/prometheus"
)

func (s *MediaService) CreateTransport(ctx context.Context, req *CreateTransportRequest) (res *CreateTransportResponse, err error) {
	defer func() { recordOperation("create_transport", err) }()
	if err = validateIdentity(req.RoomID, req.UserID); err != nil {
		return nil, err
	}
	if !req.Type.Valid() {
		return nil, ErrInvalidTransportType
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

	t, err := s.factory.CreateWebRTCTransport(ctx, entry.Router)
	if err != nil {
		logger.Errorw("could not create transport", err, logFields(req.RoomID, req.UserID, "type", req.Type)...)
		return nil, upstreamError(errors.Wrap(err, "create transport"))
	}
	s.factory.AttachDebugHooks(req.RoomID, t)

	te := &rtc.TransportEntry{
		Transport: t,
		RoomID:    req.RoomID,
		UserID:    req.UserID,
		SocketID:  req.SocketID,
		Direction: req.Type,
	}
	s.transports.Set(t.ID(), te)
	entry.AddTransport(t.ID())
	prometheus.AddTransport()
	t.OnClose(func() {
		s.releaseTransport(te, entry)
	})

	superseded := s.lookupKey(ctx, UserNamespace(req.UserID), TransportKey(req.Type))
	if err = s.persistTransport(ctx, te); err != nil {
		logger.Errorw("could not persist transport, closing it", err,
			logFields(req.RoomID, req.UserID, "transport", t.ID())...)
		prometheus.RecordCompensation("transport")
		s.releaseTransport(te, entry)
		t.Close()
		return nil, cacheError(errors.Wrap(err, "persist transport"))
	}

	if superseded != "" && superseded != t.ID() {
		s.closeSuperseded(te, superseded)
	}

	logger.Infow("transport created", logFields(req.RoomID, req.UserID, "transport", t.ID(), "type", req.Type)...)
	return &CreateTransportResponse{
		TransportID:    t.ID(),
		ICEParameters:  t.ICEParameters(),
		ICECandidates:  t.ICECandidates(),
		DTLSParameters: t.DTLSParameters(),
	}, nil
}

func (s *MediaService) persistTransport(ctx context.Context, te *rtc.TransportEntry) error {
	value, err := encodeRecord(&TransportRecord{
		RoomID:   te.RoomID,
		UserID:   te.UserID,
		SocketID: te.SocketID,
		Type:     te.Direction,
	})
	if err != nil {
		return err
	}
	id := te.Transport.ID()
	return s.cache.Insert(ctx,
		Record{Namespace: TransportNamespace, Key: id, Value: value, TTL: s.recordTTL},
		Record{Namespace: UserNamespace(te.UserID), Key: TransportKey(te.Direction), Value: id, TTL: s.recordTTL},
	)
}

// closeSuperseded closes the transport te replaced as the user's transport of its direction.
// One that lives in another room or on another node is only reported.
func (s *MediaService) closeSuperseded(te *rtc.TransportEntry, previousID string) {
	fields := logFields(te.RoomID, te.UserID, "transport", te.Transport.ID(), "superseded", previousID, "type", te.Direction)
	prev, ok := s.transports.Get(previousID)
	if !ok || prev.RoomID != te.RoomID || prev.UserID != te.UserID || prev.Direction != te.Direction {
		logger.Warnw("transport superseded without local close", nil, fields...)
		return
	}
	logger.Infow("closing superseded transport", fields...)
	prev.Transport.Close()
}

// lookupKey returns the value of namespace/key, or "" when missing or unreadable.
func (s *MediaService) lookupKey(ctx context.Context, namespace string, key string) string {
	value, err := s.cache.Select(ctx, namespace, key)
	if err != nil {
		if err != ErrCacheMiss {
			logger.Warnw("could not load cache key", err, "namespace", namespace, "key", key)
		}
		return ""
	}
	return value
}

// releaseTransport deregisters te and clears its cache records. Repeated calls are no-ops.
func (s *MediaService) releaseTransport(te *rtc.TransportEntry, entry *rtc.RoomEntry) {
	id := te.Transport.ID()
	if entry != nil {
		entry.RemoveTransport(id)
	}
	if _, ok := s.transports.Delete(id); !ok {
		return
	}
	prometheus.SubTransport()

	ctx, cancel := s.backgroundContext()
	defer cancel()
	if err := s.cache.DeleteKey(ctx, TransportNamespace, id); err != nil {
		logger.Warnw("could not delete transport record", err, logFields(te.RoomID, te.UserID, "transport", id)...)
	}
	s.deleteIfCurrent(ctx, UserNamespace(te.UserID), TransportKey(te.Direction), id)
	logger.Debugw("transport released", logFields(te.RoomID, te.UserID, "transport", id)...)
}

// deleteIfCurrent removes namespace/key only while it still points at id.
func (s *MediaService) deleteIfCurrent(ctx context.Context, namespace string, key string, id string) {
	if s.lookupKey(ctx, namespace, key) != id {
		return
	}
	if err := s.cache.DeleteKey(ctx, namespace, key); err != nil {
		logger.Warnw("could not delete cache key", err, "namespace", namespace, "key", key)
	}
}

func (s *MediaService) ConnectTransport(ctx context.Context, req *ConnectTransportRequest) (err error) {
	defer func() { recordOperation("connect_transport", err) }()
	if req.TransportID == "" {
		return ErrTransportIDEmpty
	}
	if err = validateIdentity(req.RoomID, req.UserID); err != nil {
		return err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rec, err := s.auth.LoadTransport(ctx, req.TransportID)
	if err != nil {
		return err
	}
	if !rec.ownedBy(req) {
		logger.Warnw("transport connect by non-owner rejected", nil,
			logFields(req.RoomID, req.UserID, "transport", req.TransportID, "ownerRoom", rec.RoomID, "owner", rec.UserID)...)
		return ErrTransportNotOwned
	}

	te, ok := s.transports.Get(req.TransportID)
	if !ok || te.Transport.Closed() {
		return ErrTransportNotFound
	}

	err = te.Transport.Connect(ctx, types.ConnectParams{
		DTLSParameters: req.DTLSParameters,
		ICEParameters:  req.ICEParameters,
	})
	if err != nil {
		logger.Errorw("could not connect transport", err, logFields(req.RoomID, req.UserID, "transport", req.TransportID)...)
		return upstreamError(errors.Wrap(err, "connect transport"))
	}
	logger.Infow("transport connected", logFields(req.RoomID, req.UserID, "transport", req.TransportID)...)
	return nil
}

// ownedBy compares the stored identity with the caller's claim. Socket and type are only
// compared when the caller supplies them.
func (r *TransportRecord) ownedBy(req *ConnectTransportRequest) bool {
	if r.RoomID != req.RoomID || r.UserID != req.UserID {
		return false
	}
	if req.SocketID != "" && r.SocketID != req.SocketID {
		return false
	}
	if req.Type != "" && r.Type != req.Type {
		return false
	}
	return true
}

// ownedTransport returns the local transport id when it belongs to the caller and faces dir.
func (s *MediaService) ownedTransport(roomID string, userID string, transportID string, dir types.TransportDirection) (*rtc.TransportEntry, error) {
	if transportID == "" {
		return nil, ErrTransportIDEmpty
	}
	te, ok := s.transports.Get(transportID)
	if !ok || te.Transport.Closed() {
		return nil, ErrTransportNotFound
	}
	if te.RoomID != roomID || te.UserID != userID {
		return nil, ErrTransportNotOwned
	}
	if te.Direction != dir {
		return nil, ErrWrongTransportDirection
	}
	return te, nil
}

func (s *MediaService) DisconnectUser(ctx context.Context, req *DisconnectUserRequest) (res *DisconnectUserResponse, err error) {
	defer func() { recordOperation("disconnect_user", err) }()
	if req.UserID == "" {
		return nil, ErrUserIDEmpty
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ns := UserNamespace(req.UserID)
	keys := []string{SendTransportKey, RecvTransportKey}
	ids, err := s.cache.SelectKeys(ctx, ns, keys)
	if err != nil {
		return nil, cacheError(errors.Wrap(err, "load user transports"))
	}

	res = &DisconnectUserResponse{}
	var cleared []string
	for _, key := range keys {
		id, ok := ids[key]
		if !ok {
			continue
		}
		te, ok := s.transports.Get(id)
		if ok && req.SocketID != "" && te.SocketID != req.SocketID {
			// a newer socket of the same user owns this transport
			continue
		}
		if ok {
			if !te.Transport.Closed() {
				te.Transport.Close()
				res.Closed = append(res.Closed, id)
			}
			// close observers may not have run yet, or ever for an already dead transport
			s.releaseTransport(te, s.coordinator.Get(te.RoomID))
		}
		cleared = append(cleared, key)
		if err = s.cache.DeleteKey(ctx, TransportNamespace, id); err != nil {
			return nil, cacheError(errors.Wrap(err, "delete transport record"))
		}
	}

	if len(cleared) == len(ids) {
		err = s.cache.DeleteNamespace(ctx, ns)
	} else {
		err = s.cache.DeleteKey(ctx, ns, cleared...)
	}
	if err != nil {
		return nil, cacheError(errors.Wrap(err, "clear user transports"))
	}

	logger.Infow("user disconnected", "user", req.UserID, "socket", req.SocketID, "closed", res.Closed)
	return res, nil
}
