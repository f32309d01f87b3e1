package rtc

import (
	"sync"
	"time"

	"github.com/roomcast/roomcast-server/pkg/rtc/types"
)

// Slot is one of the two per-room screen-share producer positions.
type Slot int

const (
	SlotMain Slot = iota
	SlotSub
)

func (s Slot) String() string {
	if s == SlotSub {
		return "sub"
	}
	return "main"
}

// SlotForType maps screen producer types to their slot; screen video is main, screen audio is sub.
func SlotForType(t types.ProducerType) (Slot, bool) {
	switch t {
	case types.ProducerTypeScreenVideo:
		return SlotMain, true
	case types.ProducerTypeScreenAudio:
		return SlotSub, true
	}
	return 0, false
}

type ProducerSlot struct {
	ProducerID string
	UserID     string
	Kind       types.MediaKind
	Type       types.ProducerType
}

// RoomEntry holds the per-room resources of this node. RoomID, worker placement and Router
// are fixed at creation; transport ids and slots change under the entry's lock.
type RoomEntry struct {
	RoomID      string
	WorkerIndex int
	WorkerPID   int
	Router      types.Router
	CreatedAt   time.Time

	lock         sync.RWMutex
	transportIDs map[string]struct{}
	slots        [2]*ProducerSlot
}

func NewRoomEntry(roomID string, created types.CreatedRouter) *RoomEntry {
	return &RoomEntry{
		RoomID:       roomID,
		WorkerIndex:  created.WorkerIndex,
		WorkerPID:    created.WorkerPID,
		Router:       created.Router,
		CreatedAt:    time.Now(),
		transportIDs: make(map[string]struct{}),
	}
}

func (e *RoomEntry) AddTransport(id string) {
	e.lock.Lock()
	e.transportIDs[id] = struct{}{}
	e.lock.Unlock()
}

func (e *RoomEntry) RemoveTransport(id string) {
	e.lock.Lock()
	delete(e.transportIDs, id)
	e.lock.Unlock()
}

func (e *RoomEntry) HasTransport(id string) bool {
	e.lock.RLock()
	defer e.lock.RUnlock()
	_, ok := e.transportIDs[id]
	return ok
}

func (e *RoomEntry) TransportIDs() []string {
	e.lock.RLock()
	defer e.lock.RUnlock()
	ids := make([]string, 0, len(e.transportIDs))
	for id := range e.transportIDs {
		ids = append(ids, id)
	}
	return ids
}

func (e *RoomEntry) Slot(s Slot) *ProducerSlot {
	e.lock.RLock()
	defer e.lock.RUnlock()
	if ps := e.slots[s]; ps != nil {
		cp := *ps
		return &cp
	}
	return nil
}

// ClaimSlot stores ps in slot s. It fails if s is held by another producer.
func (e *RoomEntry) ClaimSlot(s Slot, ps ProducerSlot) error {
	e.lock.Lock()
	defer e.lock.Unlock()
	if cur := e.slots[s]; cur != nil && cur.ProducerID != ps.ProducerID {
		return ErrScreenShareActive
	}
	e.slots[s] = &ps
	return nil
}

// ReleaseSlot clears whichever slot producerID holds and reports the slot cleared.
func (e *RoomEntry) ReleaseSlot(producerID string) (Slot, bool) {
	e.lock.Lock()
	defer e.lock.Unlock()
	for i, ps := range e.slots {
		if ps != nil && ps.ProducerID == producerID {
			e.slots[i] = nil
			return Slot(i), true
		}
	}
	return 0, false
}

// RoomRegistry maps room ids to the live entry of this node.
type RoomRegistry struct {
	lock  sync.RWMutex
	rooms map[string]*RoomEntry
}

func NewRoomRegistry() *RoomRegistry {
	return &RoomRegistry{
		rooms: make(map[string]*RoomEntry),
	}
}

func (r *RoomRegistry) Get(roomID string) *RoomEntry {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.rooms[roomID]
}

func (r *RoomRegistry) Set(entry *RoomEntry) {
	r.lock.Lock()
	r.rooms[entry.RoomID] = entry
	r.lock.Unlock()
}

func (r *RoomRegistry) Delete(roomID string) {
	r.lock.Lock()
	delete(r.rooms, roomID)
	r.lock.Unlock()
}

// DeleteIf removes the entry for roomID only while it still holds router.
func (r *RoomRegistry) DeleteIf(roomID string, router types.Router) bool {
	r.lock.Lock()
	defer r.lock.Unlock()
	if entry := r.rooms[roomID]; entry != nil && entry.Router == router {
		delete(r.rooms, roomID)
		return true
	}
	return false
}

func (r *RoomRegistry) Len() int {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return len(r.rooms)
}

func (r *RoomRegistry) List() []*RoomEntry {
	r.lock.RLock()
	defer r.lock.RUnlock()
	entries := make([]*RoomEntry, 0, len(r.rooms))
	for _, e := range r.rooms {
		entries = append(entries, e)
	}
	return entries
}
