package engine

import (
	"context"

	"github.com/roomcast/roomcast-server/pkg/logger"
	"github.com/roomcast/roomcast-server/pkg/rtc/types"
)

// TransportFactory creates transports on routers of this engine.
type TransportFactory struct{}

func NewTransportFactory() *TransportFactory {
	return &TransportFactory{}
}

func (f *TransportFactory) CreateWebRTCTransport(ctx context.Context, router types.Router) (types.WebRTCTransport, error) {
	r, ok := router.(*Router)
	if !ok {
		return nil, ErrForeignRouter
	}
	return r.createTransport(ctx)
}

func (f *TransportFactory) AttachDebugHooks(roomID string, t types.WebRTCTransport) {
	transportID := t.ID()
	t.OnICEStateChange(func(state types.ICEState) {
		logger.Debugw("ice state changed", "room", roomID, "transport", transportID, "state", state)
	})
	t.OnDTLSStateChange(func(state types.DTLSState) {
		if state == types.DTLSStateFailed {
			logger.Warnw("dtls failed", nil, "room", roomID, "transport", transportID)
			return
		}
		logger.Debugw("dtls state changed", "room", roomID, "transport", transportID, "state", state)
	})
}
