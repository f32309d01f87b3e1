package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/roomcast/roomcast-server/pkg/utils"
)

// Authorizer answers membership and ownership questions from the cache. It never writes.
type Authorizer struct {
	cache Cache
}

func NewAuthorizer(cache Cache) *Authorizer {
	return &Authorizer{cache: cache}
}

func (a *Authorizer) IsMember(ctx context.Context, roomID string, userID string) (bool, error) {
	_, err := a.cache.Select(ctx, RoomNamespace(roomID), userID)
	if err == ErrCacheMiss {
		return false, nil
	}
	if err != nil {
		return false, cacheError(errors.Wrap(err, "could not load membership"))
	}
	return true, nil
}

func (a *Authorizer) RequireMember(ctx context.Context, roomID string, userID string) error {
	ok, err := a.IsMember(ctx, roomID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotRoomMember
	}
	return nil
}

func (a *Authorizer) LoadTransport(ctx context.Context, transportID string) (*TransportRecord, error) {
	value, err := a.cache.Select(ctx, TransportNamespace, transportID)
	if err == ErrCacheMiss {
		return nil, ErrTransportNotFound
	}
	if err != nil {
		return nil, cacheError(errors.Wrap(err, "could not load transport record"))
	}

	rec := &TransportRecord{}
	if err := decodeRecord(value, rec); err != nil {
		return nil, cacheError(errors.Wrap(err, "malformed transport record"))
	}
	return rec, nil
}

// AuthorizedConsumers returns the ids among consumerIDs recorded for the user in the room,
// in request order and without repeats.
func (a *Authorizer) AuthorizedConsumers(ctx context.Context, roomID string, userID string, consumerIDs []string) ([]string, error) {
	consumerIDs = utils.DedupeStable(consumerIDs)
	if len(consumerIDs) == 0 {
		return nil, nil
	}

	found, err := a.cache.SelectKeys(ctx, ParticipantNamespace(roomID, userID), consumerIDs)
	if err != nil {
		return nil, cacheError(errors.Wrap(err, "could not load consumer records"))
	}

	authorized := make([]string, 0, len(found))
	for _, id := range consumerIDs {
		if _, ok := found[id]; ok {
			authorized = append(authorized, id)
		}
	}
	return authorized, nil
}
