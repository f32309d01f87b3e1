package rtc

import (
	"sync"

	"github.com/roomcast/roomcast-server/pkg/rtc/types"
)

// Registry is a concurrency-safe index of live resources keyed by resource id.
type Registry[V any] struct {
	lock  sync.RWMutex
	items map[string]V
}

func NewRegistry[V any]() *Registry[V] {
	return &Registry[V]{
		items: make(map[string]V),
	}
}

func (r *Registry[V]) Get(id string) (V, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	v, ok := r.items[id]
	return v, ok
}

func (r *Registry[V]) Set(id string, v V) {
	r.lock.Lock()
	r.items[id] = v
	r.lock.Unlock()
}

// Delete removes id and returns the value it held, if any.
func (r *Registry[V]) Delete(id string) (V, bool) {
	r.lock.Lock()
	defer r.lock.Unlock()
	v, ok := r.items[id]
	if ok {
		delete(r.items, id)
	}
	return v, ok
}

func (r *Registry[V]) Len() int {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return len(r.items)
}

func (r *Registry[V]) Values() []V {
	r.lock.RLock()
	defer r.lock.RUnlock()
	values := make([]V, 0, len(r.items))
	for _, v := range r.items {
		values = append(values, v)
	}
	return values
}

type TransportEntry struct {
	Transport types.WebRTCTransport
	RoomID    string
	UserID    string
	SocketID  string
	Direction types.TransportDirection
}

type ProducerEntry struct {
	Producer    types.Producer
	RoomID      string
	UserID      string
	TransportID string
	Type        types.ProducerType
}

type ConsumerEntry struct {
	Consumer    types.Consumer
	RoomID      string
	UserID      string
	TransportID string
	ProducerID  string
	Type        types.ProducerType
}

type (
	TransportRegistry = Registry[*TransportEntry]
	ProducerRegistry  = Registry[*ProducerEntry]
	ConsumerRegistry  = Registry[*ConsumerEntry]
)

func NewTransportRegistry() *TransportRegistry {
	return NewRegistry[*TransportEntry]()
}

func NewProducerRegistry() *ProducerRegistry {
	return NewRegistry[*ProducerEntry]()
}

func NewConsumerRegistry() *ConsumerRegistry {
	return NewRegistry[*ConsumerEntry]()
}
