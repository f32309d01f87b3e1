package rtc

import "github.com/livekit/psrpc"

var (
	ErrRoomClosed         = psrpc.NewErrorf(psrpc.Unavailable, "room router has already closed")
	ErrRouterUnavailable  = psrpc.NewErrorf(psrpc.Unavailable, "could not create room router")
	ErrScreenShareActive  = psrpc.NewErrorf(psrpc.FailedPrecondition, "screen share slot already taken in room")
	ErrNotScreenProducer  = psrpc.NewErrorf(psrpc.InvalidArgument, "producer type does not occupy a room slot")
	ErrCoordinatorStopped = psrpc.NewErrorf(psrpc.Unavailable, "room coordinator is stopped")
)
