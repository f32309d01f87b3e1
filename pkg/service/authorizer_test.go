package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roomcast/roomcast-server/pkg/rtc/types"
	"github.com/roomcast/roomcast-server/pkg/service"
)

func TestAuthorizer(t *testing.T) {
	ctx := context.Background()
	cache := service.NewLocalCache()
	auth := service.NewAuthorizer(cache)
	require.NoError(t, cache.Insert(ctx,
		service.Record{Namespace: service.RoomNamespace("room1"), Key: "alice", Value: "{}"},
		service.Record{Namespace: service.TransportNamespace, Key: "TR_1", Value: `{"room_id":"room1","user_id":"alice","socket_id":"SK_1","type":"recv"}`},
		service.Record{Namespace: service.TransportNamespace, Key: "TR_bad", Value: "not json"},
		service.Record{Namespace: service.ParticipantNamespace("room1", "alice"), Key: "CO_1", Value: "{}"},
		service.Record{Namespace: service.ParticipantNamespace("room1", "alice"), Key: "CO_2", Value: "{}"},
	))

	t.Run("membership", func(t *testing.T) {
		ok, err := auth.IsMember(ctx, "room1", "alice")
		require.NoError(t, err)
		require.True(t, ok)

		require.NoError(t, auth.RequireMember(ctx, "room1", "alice"))
		require.ErrorIs(t, auth.RequireMember(ctx, "room1", "bob"), service.ErrNotRoomMember)
		require.ErrorIs(t, auth.RequireMember(ctx, "room2", "alice"), service.ErrNotRoomMember)
	})

	t.Run("transport records", func(t *testing.T) {
		rec, err := auth.LoadTransport(ctx, "TR_1")
		require.NoError(t, err)
		require.Equal(t, &service.TransportRecord{
			RoomID:   "room1",
			UserID:   "alice",
			SocketID: "SK_1",
			Type:     types.TransportDirectionRecv,
		}, rec)

		_, err = auth.LoadTransport(ctx, "TR_2")
		require.ErrorIs(t, err, service.ErrTransportNotFound)

		_, err = auth.LoadTransport(ctx, "TR_bad")
		require.Error(t, err)
	})

	t.Run("consumer subset", func(t *testing.T) {
		ids, err := auth.AuthorizedConsumers(ctx, "room1", "alice", []string{"CO_2", "CO_3", "CO_1", "CO_2"})
		require.NoError(t, err)
		require.Equal(t, []string{"CO_2", "CO_1"}, ids)

		ids, err = auth.AuthorizedConsumers(ctx, "room1", "bob", []string{"CO_1"})
		require.NoError(t, err)
		require.Empty(t, ids)
	})
}
