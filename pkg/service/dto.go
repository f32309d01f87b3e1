package service

import (
	"github.com/roomcast/roomcast-server/pkg/rtc/types"
)

type CreateRouterRequest struct {
	RoomID string `json:"roomId"`
	UserID string `json:"userId"`
}

type CreateRouterResponse struct {
	RoomID          string                `json:"roomId"`
	RouterID        string                `json:"routerId"`
	RtpCapabilities types.RtpCapabilities `json:"rtpCapabilities"`
	WorkerIndex     int                   `json:"workerIndex"`
	WorkerPID       int                   `json:"workerPid"`
}

type CreateTransportRequest struct {
	RoomID   string                   `json:"roomId"`
	UserID   string                   `json:"userId"`
	SocketID string                   `json:"socketId"`
	Type     types.TransportDirection `json:"type"`
}

type CreateTransportResponse struct {
	TransportID    string               `json:"transportId"`
	ICEParameters  types.ICEParameters  `json:"iceParameters"`
	ICECandidates  []types.ICECandidate `json:"iceCandidates"`
	DTLSParameters types.DTLSParameters `json:"dtlsParameters"`
}

type ConnectTransportRequest struct {
	TransportID    string                   `json:"transportId"`
	RoomID         string                   `json:"roomId"`
	UserID         string                   `json:"userId"`
	SocketID       string                   `json:"socketId"`
	Type           types.TransportDirection `json:"type"`
	DTLSParameters types.DTLSParameters     `json:"dtlsParameters"`
	ICEParameters  *types.ICEParameters     `json:"iceParameters,omitempty"`
}

type CreateProducerRequest struct {
	RoomID        string              `json:"roomId"`
	UserID        string              `json:"userId"`
	TransportID   string              `json:"transportId"`
	Kind          types.MediaKind     `json:"kind"`
	Type          types.ProducerType  `json:"type"`
	RtpParameters types.RtpParameters `json:"rtpParameters"`
	Paused        bool                `json:"paused,omitempty"`
}

type CreateProducerResponse struct {
	ProducerID string `json:"producerId"`
}

type CreateConsumerRequest struct {
	RoomID          string                `json:"roomId"`
	UserID          string                `json:"userId"`
	TransportID     string                `json:"transportId"`
	ProducerID      string                `json:"producerId"`
	RtpCapabilities types.RtpCapabilities `json:"rtpCapabilities"`
}

type CreateConsumersRequest struct {
	RoomID          string                `json:"roomId"`
	UserID          string                `json:"userId"`
	TransportID     string                `json:"transportId"`
	ProducerIDs     []string              `json:"producerIds"`
	RtpCapabilities types.RtpCapabilities `json:"rtpCapabilities"`
}

type ConsumerInfo struct {
	ConsumerID     string              `json:"consumerId"`
	ProducerID     string              `json:"producerId"`
	ProducerUserID string              `json:"producerUserId"`
	Kind           types.MediaKind     `json:"kind"`
	Type           types.ProducerType  `json:"type"`
	RtpParameters  types.RtpParameters `json:"rtpParameters"`
	Paused         bool                `json:"paused"`
}

type ConsumerFailure struct {
	ProducerID string `json:"producerId"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

type CreateConsumersResponse struct {
	Consumers []*ConsumerInfo   `json:"consumers"`
	Failed    []ConsumerFailure `json:"failed,omitempty"`
}

type ConsumersRequest struct {
	RoomID      string   `json:"roomId"`
	UserID      string   `json:"userId"`
	ConsumerIDs []string `json:"consumerIds"`
}

type ConsumersResponse struct {
	ConsumerIDs []string `json:"consumerIds"`
}

type StopScreenShareRequest struct {
	RoomID string `json:"roomId"`
	UserID string `json:"userId"`
}

type StopScreenShareResponse struct {
	Stopped  []string `json:"stopped"`
	Repaired []string `json:"repaired,omitempty"`
}

type DisconnectUserRequest struct {
	UserID string `json:"userId"`
	// restricts the disconnect to transports opened by this socket when set
	SocketID string `json:"socketId,omitempty"`
}

type DisconnectUserResponse struct {
	Closed []string `json:"closed"`
}
