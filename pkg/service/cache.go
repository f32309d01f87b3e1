package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/roomcast/roomcast-server/pkg/rtc"
	"github.com/roomcast/roomcast-server/pkg/rtc/types"
)

// Record is one key of a cache namespace.
type Record struct {
	Namespace string
	Key       string
	Value     string
	// expiry applied to the whole namespace, 0 keeps it until deleted
	TTL time.Duration
}

// Cache is the cluster-wide keyed store shared with the API service.
// A namespace is a flat map of keys to string values.
type Cache interface {
	// Select returns ErrCacheMiss when key is absent.
	Select(ctx context.Context, namespace string, key string) (string, error)
	// SelectKeys returns the present subset of keys.
	SelectKeys(ctx context.Context, namespace string, keys []string) (map[string]string, error)
	// Insert writes every record or none.
	Insert(ctx context.Context, records ...Record) error
	// Update overwrites an existing key and returns ErrCacheMiss when it is absent.
	Update(ctx context.Context, namespace string, key string, value string) error
	DeleteKey(ctx context.Context, namespace string, keys ...string) error
	DeleteNamespace(ctx context.Context, namespace string) error
}

const (
	TransportNamespace = "transport"

	SendTransportKey = "send_transport_id"
	RecvTransportKey = "recv_transport_id"
	MainProducerKey  = "main_producer_id"
	SubProducerKey   = "sub_producer_id"
)

// RoomNamespace holds the membership records of a room, keyed by user id.
func RoomNamespace(roomID string) string {
	return "room:" + roomID
}

// UserNamespace holds the transport ids of a user.
func UserNamespace(userID string) string {
	return "user:" + userID
}

// ParticipantNamespace holds the producer and consumer records of a user in a room.
func ParticipantNamespace(roomID string, userID string) string {
	return roomID + ":" + userID
}

func TransportKey(direction types.TransportDirection) string {
	if direction == types.TransportDirectionRecv {
		return RecvTransportKey
	}
	return SendTransportKey
}

func SlotKey(slot rtc.Slot) string {
	if slot == rtc.SlotSub {
		return SubProducerKey
	}
	return MainProducerKey
}

type TransportRecord struct {
	RoomID   string                   `json:"room_id"`
	UserID   string                   `json:"user_id"`
	SocketID string                   `json:"socket_id"`
	Type     types.TransportDirection `json:"type"`
}

type ProducerRecord struct {
	TransportID string             `json:"transport_id"`
	Kind        types.MediaKind    `json:"kind"`
	Type        types.ProducerType `json:"type"`
}

type ConsumerRecord struct {
	ProducerID  string             `json:"producer_id"`
	TransportID string             `json:"transport_id"`
	Kind        types.MediaKind    `json:"kind"`
	Type        types.ProducerType `json:"type"`
}

func encodeRecord(v interface{}) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeRecord(value string, v interface{}) error {
	return json.Unmarshal([]byte(value), v)
}
