package rtc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roomcast/roomcast-server/pkg/rtc"
	"github.com/roomcast/roomcast-server/pkg/rtc/types"
	"github.com/roomcast/roomcast-server/pkg/rtc/types/typesfakes"
)

func TestSlotForType(t *testing.T) {
	slot, ok := rtc.SlotForType(types.ProducerTypeScreenVideo)
	require.True(t, ok)
	require.Equal(t, rtc.SlotMain, slot)

	slot, ok = rtc.SlotForType(types.ProducerTypeScreenAudio)
	require.True(t, ok)
	require.Equal(t, rtc.SlotSub, slot)

	_, ok = rtc.SlotForType(types.ProducerTypeCam)
	require.False(t, ok)
	_, ok = rtc.SlotForType(types.ProducerTypeMic)
	require.False(t, ok)
}

func TestRoomEntry_Slots(t *testing.T) {
	entry := rtc.NewRoomEntry("room1", types.CreatedRouter{Router: &typesfakes.FakeRouter{}})

	require.Nil(t, entry.Slot(rtc.SlotMain))
	require.NoError(t, entry.ClaimSlot(rtc.SlotMain, rtc.ProducerSlot{ProducerID: "PR_1", UserID: "alice"}))
	// same producer may claim again
	require.NoError(t, entry.ClaimSlot(rtc.SlotMain, rtc.ProducerSlot{ProducerID: "PR_1", UserID: "alice"}))
	require.ErrorIs(t, entry.ClaimSlot(rtc.SlotMain, rtc.ProducerSlot{ProducerID: "PR_2", UserID: "bob"}), rtc.ErrScreenShareActive)

	// returned slots are copies
	ps := entry.Slot(rtc.SlotMain)
	ps.ProducerID = "changed"
	require.Equal(t, "PR_1", entry.Slot(rtc.SlotMain).ProducerID)

	slot, ok := entry.ReleaseSlot("PR_1")
	require.True(t, ok)
	require.Equal(t, rtc.SlotMain, slot)
	_, ok = entry.ReleaseSlot("PR_1")
	require.False(t, ok)
	require.Nil(t, entry.Slot(rtc.SlotMain))
}

func TestRoomEntry_Transports(t *testing.T) {
	entry := rtc.NewRoomEntry("room1", types.CreatedRouter{Router: &typesfakes.FakeRouter{}})
	entry.AddTransport("TR_1")
	entry.AddTransport("TR_2")
	entry.AddTransport("TR_1")
	require.ElementsMatch(t, []string{"TR_1", "TR_2"}, entry.TransportIDs())
	require.True(t, entry.HasTransport("TR_2"))

	entry.RemoveTransport("TR_2")
	require.False(t, entry.HasTransport("TR_2"))
	require.Equal(t, []string{"TR_1"}, entry.TransportIDs())
}

func TestRoomRegistry_DeleteIf(t *testing.T) {
	rooms := rtc.NewRoomRegistry()
	routerA := &typesfakes.FakeRouter{}
	routerB := &typesfakes.FakeRouter{}
	rooms.Set(rtc.NewRoomEntry("room1", types.CreatedRouter{Router: routerA}))

	require.False(t, rooms.DeleteIf("room1", routerB))
	require.NotNil(t, rooms.Get("room1"))
	require.True(t, rooms.DeleteIf("room1", routerA))
	require.Nil(t, rooms.Get("room1"))
	require.False(t, rooms.DeleteIf("room1", routerA))
}

func TestRegistry(t *testing.T) {
	reg := rtc.NewConsumerRegistry()
	reg.Set("CO_1", &rtc.ConsumerEntry{ProducerID: "PR_1"})
	reg.Set("CO_2", &rtc.ConsumerEntry{ProducerID: "PR_2"})
	require.Equal(t, 2, reg.Len())

	entry, ok := reg.Get("CO_1")
	require.True(t, ok)
	require.Equal(t, "PR_1", entry.ProducerID)

	removed, ok := reg.Delete("CO_1")
	require.True(t, ok)
	require.Same(t, entry, removed)
	_, ok = reg.Delete("CO_1")
	require.False(t, ok)
	require.Len(t, reg.Values(), 1)
}
