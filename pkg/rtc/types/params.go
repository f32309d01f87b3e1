package types

import (
	"strings"
)

type MediaKind string

const (
	MediaKindAudio MediaKind = "audio"
	MediaKindVideo MediaKind = "video"
)

func (k MediaKind) Valid() bool {
	return k == MediaKindAudio || k == MediaKindVideo
}

// ProducerType is the application-level role of a media source.
type ProducerType string

const (
	ProducerTypeMic         ProducerType = "mic"
	ProducerTypeCam         ProducerType = "cam"
	ProducerTypeScreenVideo ProducerType = "screen_video"
	ProducerTypeScreenAudio ProducerType = "screen_audio"
)

func (t ProducerType) Valid() bool {
	switch t {
	case ProducerTypeMic, ProducerTypeCam, ProducerTypeScreenVideo, ProducerTypeScreenAudio:
		return true
	}
	return false
}

func (t ProducerType) IsScreen() bool {
	return t == ProducerTypeScreenVideo || t == ProducerTypeScreenAudio
}

// Kind is the media kind a producer of this type must carry.
func (t ProducerType) Kind() MediaKind {
	if t == ProducerTypeMic || t == ProducerTypeScreenAudio {
		return MediaKindAudio
	}
	return MediaKindVideo
}

type TransportDirection string

const (
	TransportDirectionSend TransportDirection = "send"
	TransportDirectionRecv TransportDirection = "recv"
)

func (d TransportDirection) Valid() bool {
	return d == TransportDirectionSend || d == TransportDirectionRecv
}

type RTCPFeedback struct {
	Type      string `json:"type"`
	Parameter string `json:"parameter,omitempty"`
}

type RtpCodecCapability struct {
	Kind                 MediaKind      `json:"kind"`
	MimeType             string         `json:"mimeType"`
	PreferredPayloadType uint8          `json:"preferredPayloadType"`
	ClockRate            uint32         `json:"clockRate"`
	Channels             uint16         `json:"channels,omitempty"`
	SDPFmtpLine          string         `json:"sdpFmtpLine,omitempty"`
	RTCPFeedback         []RTCPFeedback `json:"rtcpFeedback,omitempty"`
}

type RtpCapabilities struct {
	Codecs []RtpCodecCapability `json:"codecs"`
}

// Supports reports whether caps accepts a codec with the given mime type.
func (c RtpCapabilities) Supports(mimeType string) bool {
	for _, codec := range c.Codecs {
		if strings.EqualFold(codec.MimeType, mimeType) {
			return true
		}
	}
	return false
}

type RtpCodecParameters struct {
	MimeType     string         `json:"mimeType"`
	PayloadType  uint8          `json:"payloadType"`
	ClockRate    uint32         `json:"clockRate"`
	Channels     uint16         `json:"channels,omitempty"`
	SDPFmtpLine  string         `json:"sdpFmtpLine,omitempty"`
	RTCPFeedback []RTCPFeedback `json:"rtcpFeedback,omitempty"`
}

// RtpEncodingParameters describes one spatial layer, lowest first.
type RtpEncodingParameters struct {
	SSRC uint32 `json:"ssrc,omitempty"`
	RID  string `json:"rid,omitempty"`
}

type RtpParameters struct {
	MID       string                  `json:"mid,omitempty"`
	Codecs    []RtpCodecParameters    `json:"codecs"`
	Encodings []RtpEncodingParameters `json:"encodings"`
}

type ICEParameters struct {
	UsernameFragment string `json:"usernameFragment"`
	Password         string `json:"password"`
	ICELite          bool   `json:"iceLite,omitempty"`
}

type ICECandidate struct {
	Foundation string `json:"foundation"`
	Priority   uint32 `json:"priority"`
	Address    string `json:"address"`
	Protocol   string `json:"protocol"`
	Port       uint16 `json:"port"`
	Type       string `json:"type"`
}

type DTLSRole string

const (
	DTLSRoleAuto   DTLSRole = "auto"
	DTLSRoleClient DTLSRole = "client"
	DTLSRoleServer DTLSRole = "server"
)

type DTLSFingerprint struct {
	Algorithm string `json:"algorithm"`
	Value     string `json:"value"`
}

type DTLSParameters struct {
	Role         DTLSRole          `json:"role,omitempty"`
	Fingerprints []DTLSFingerprint `json:"fingerprints"`
}

// ConnectParams are the remote parameters a client supplies to connect a transport.
type ConnectParams struct {
	DTLSParameters DTLSParameters `json:"dtlsParameters"`
	ICEParameters  *ICEParameters `json:"iceParameters,omitempty"`
}

type ICEState string

const (
	ICEStateNew          ICEState = "new"
	ICEStateConnected    ICEState = "connected"
	ICEStateCompleted    ICEState = "completed"
	ICEStateDisconnected ICEState = "disconnected"
	ICEStateClosed       ICEState = "closed"
)

type DTLSState string

const (
	DTLSStateNew        DTLSState = "new"
	DTLSStateConnecting DTLSState = "connecting"
	DTLSStateConnected  DTLSState = "connected"
	DTLSStateFailed     DTLSState = "failed"
	DTLSStateClosed     DTLSState = "closed"
)

type ProducerOptions struct {
	Kind          MediaKind     `json:"kind"`
	RtpParameters RtpParameters `json:"rtpParameters"`
	Paused        bool          `json:"paused,omitempty"`
}

type ConsumerOptions struct {
	ProducerID      string          `json:"producerId"`
	RtpCapabilities RtpCapabilities `json:"rtpCapabilities"`
	Paused          bool            `json:"paused,omitempty"`
}

const MaxTemporalLayer = 2

type ConsumerLayers struct {
	SpatialLayer  int `json:"spatialLayer"`
	TemporalLayer int `json:"temporalLayer"`
}

// CreatedRouter is a router together with the worker that hosts it.
type CreatedRouter struct {
	Router      Router
	WorkerIndex int
	WorkerPID   int
}
