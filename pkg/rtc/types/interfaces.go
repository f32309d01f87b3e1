package types

import (
	"context"
	"time"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . WebsocketClient
type WebsocketClient interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	WriteControl(messageType int, data []byte, deadline time.Time) error
	Close() error
}

// Worker is an isolated media execution unit hosting routers.
//
//counterfeiter:generate . Worker
type Worker interface {
	Index() int
	PID() int
	CreateRouter(ctx context.Context) (Router, error)
	// OnDied is invoked once if the worker stops for any reason other than Close.
	OnDied(f func(err error))
	Close()
}

// Router is the per-room media context; all transports of a room live on it.
//
//counterfeiter:generate . Router
type Router interface {
	ID() string
	Closed() bool
	Close()
	// OnClose registers an observer, invoked once when the router closes for any reason.
	OnClose(f func())
	RtpCapabilities() RtpCapabilities
	CanConsume(producerID string, caps RtpCapabilities) bool
}

//counterfeiter:generate . RouterFactory
type RouterFactory interface {
	CreateRouter(ctx context.Context) (CreatedRouter, error)
}

//counterfeiter:generate . TransportFactory
type TransportFactory interface {
	CreateWebRTCTransport(ctx context.Context, router Router) (WebRTCTransport, error)
	// AttachDebugHooks logs ICE and DTLS state changes of t.
	AttachDebugHooks(roomID string, t WebRTCTransport)
}

//counterfeiter:generate . WebRTCTransport
type WebRTCTransport interface {
	ID() string
	Closed() bool
	Close()
	OnClose(f func())

	ICEParameters() ICEParameters
	ICECandidates() []ICECandidate
	DTLSParameters() DTLSParameters
	OnICEStateChange(f func(state ICEState))
	OnDTLSStateChange(f func(state DTLSState))

	Connect(ctx context.Context, params ConnectParams) error
	Produce(ctx context.Context, opts ProducerOptions) (Producer, error)
	Consume(ctx context.Context, opts ConsumerOptions) (Consumer, error)
}

//counterfeiter:generate . Producer
type Producer interface {
	ID() string
	Kind() MediaKind
	RtpParameters() RtpParameters
	Closed() bool
	Close()
	OnClose(f func())
	Paused() bool
	Pause()
	Resume()
}

//counterfeiter:generate . Consumer
type Consumer interface {
	ID() string
	ProducerID() string
	Kind() MediaKind
	RtpParameters() RtpParameters
	Closed() bool
	Close()
	OnClose(f func())
	Paused() bool
	Pause()
	Resume()
	SetPriority(priority uint8)
	SetPreferredLayers(layers ConsumerLayers)
	PreferredLayers() ConsumerLayers
	// SpatialLayers is the number of spatial layers the producer sends, at least 1.
	SpatialLayers() int
	RequestKeyFrame() error
}
