package engine

import (
	"github.com/livekit/psrpc"
)

var (
	ErrWorkerClosed          = psrpc.NewErrorf(psrpc.Unavailable, "media worker closed")
	ErrRouterClosed          = psrpc.NewErrorf(psrpc.Unavailable, "router closed")
	ErrForeignRouter         = psrpc.NewErrorf(psrpc.Internal, "router was not created by this engine")
	ErrTransportClosed       = psrpc.NewErrorf(psrpc.FailedPrecondition, "transport closed")
	ErrAlreadyConnected      = psrpc.NewErrorf(psrpc.FailedPrecondition, "transport already connected")
	ErrNotConnected          = psrpc.NewErrorf(psrpc.Unavailable, "transport not connected")
	ErrICEParametersRequired = psrpc.NewErrorf(psrpc.InvalidArgument, "ice parameters required")
	ErrNoFingerprints        = psrpc.NewErrorf(psrpc.InvalidArgument, "dtls fingerprints required")
	ErrNoCodecs              = psrpc.NewErrorf(psrpc.InvalidArgument, "rtp parameters carry no codec")
	ErrUnsupportedCodec      = psrpc.NewErrorf(psrpc.InvalidArgument, "codec not supported by router")
	ErrCodecKindMismatch     = psrpc.NewErrorf(psrpc.InvalidArgument, "codec does not match media kind")
	ErrSSRCRequired          = psrpc.NewErrorf(psrpc.InvalidArgument, "every encoding needs an ssrc")
	ErrProducerNotFound      = psrpc.NewErrorf(psrpc.NotFound, "producer not found on router")
	ErrActivationRejected    = psrpc.NewErrorf(psrpc.Unavailable, "transport activation queue full")
)
