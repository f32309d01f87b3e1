package engine

import (
	"strings"

	"github.com/pion/interceptor"
	"github.com/pion/webrtc/v3"

	"github.com/roomcast/roomcast-server/pkg/rtc/types"
)

var (
	videoRTCPFeedback = []webrtc.RTCPFeedback{
		{Type: webrtc.TypeRTCPFBGoogREMB},
		{Type: webrtc.TypeRTCPFBCCM, Parameter: "fir"},
		{Type: webrtc.TypeRTCPFBNACK},
		{Type: webrtc.TypeRTCPFBNACK, Parameter: "pli"},
	}

	audioCodecs = []webrtc.RTPCodecParameters{
		{
			RTPCodecCapability: webrtc.RTPCodecCapability{
				MimeType:    webrtc.MimeTypeOpus,
				ClockRate:   48000,
				Channels:    2,
				SDPFmtpLine: "minptime=10;useinbandfec=1",
			},
			PayloadType: 111,
		},
	}

	videoCodecs = []webrtc.RTPCodecParameters{
		{
			RTPCodecCapability: webrtc.RTPCodecCapability{
				MimeType:     webrtc.MimeTypeVP8,
				ClockRate:    90000,
				RTCPFeedback: videoRTCPFeedback,
			},
			PayloadType: 96,
		},
		{
			RTPCodecCapability: webrtc.RTPCodecCapability{
				MimeType:     webrtc.MimeTypeVP9,
				ClockRate:    90000,
				SDPFmtpLine:  "profile-id=0",
				RTCPFeedback: videoRTCPFeedback,
			},
			PayloadType: 98,
		},
		{
			RTPCodecCapability: webrtc.RTPCodecCapability{
				MimeType:     webrtc.MimeTypeH264,
				ClockRate:    90000,
				SDPFmtpLine:  "level-asymmetry-allowed=1;packetization-mode=1;profile-level-id=42e01f",
				RTCPFeedback: videoRTCPFeedback,
			},
			PayloadType: 102,
		},
	}
)

func newMediaEngine() (*webrtc.MediaEngine, *interceptor.Registry, error) {
	me := &webrtc.MediaEngine{}
	for _, codec := range audioCodecs {
		if err := me.RegisterCodec(codec, webrtc.RTPCodecTypeAudio); err != nil {
			return nil, nil, err
		}
	}
	for _, codec := range videoCodecs {
		if err := me.RegisterCodec(codec, webrtc.RTPCodecTypeVideo); err != nil {
			return nil, nil, err
		}
	}

	ir := &interceptor.Registry{}
	if err := webrtc.ConfigureNack(me, ir); err != nil {
		return nil, nil, err
	}
	if err := webrtc.ConfigureRTCPReports(ir); err != nil {
		return nil, nil, err
	}
	return me, ir, nil
}

// routerCapabilities lists every codec a router accepts, audio first.
func routerCapabilities() types.RtpCapabilities {
	caps := types.RtpCapabilities{}
	for _, codec := range audioCodecs {
		caps.Codecs = append(caps.Codecs, toCodecCapability(types.MediaKindAudio, codec))
	}
	for _, codec := range videoCodecs {
		caps.Codecs = append(caps.Codecs, toCodecCapability(types.MediaKindVideo, codec))
	}
	return caps
}

func toCodecCapability(kind types.MediaKind, codec webrtc.RTPCodecParameters) types.RtpCodecCapability {
	c := types.RtpCodecCapability{
		Kind:                 kind,
		MimeType:             codec.MimeType,
		PreferredPayloadType: uint8(codec.PayloadType),
		ClockRate:            codec.ClockRate,
		Channels:             codec.Channels,
		SDPFmtpLine:          codec.SDPFmtpLine,
	}
	for _, fb := range codec.RTCPFeedback {
		c.RTCPFeedback = append(c.RTCPFeedback, types.RTCPFeedback{Type: fb.Type, Parameter: fb.Parameter})
	}
	return c
}

func toWebRTCCodec(codec types.RtpCodecParameters) webrtc.RTPCodecParameters {
	c := webrtc.RTPCodecParameters{
		RTPCodecCapability: webrtc.RTPCodecCapability{
			MimeType:    codec.MimeType,
			ClockRate:   codec.ClockRate,
			Channels:    codec.Channels,
			SDPFmtpLine: codec.SDPFmtpLine,
		},
		PayloadType: webrtc.PayloadType(codec.PayloadType),
	}
	for _, fb := range codec.RTCPFeedback {
		c.RTCPFeedback = append(c.RTCPFeedback, webrtc.RTCPFeedback{Type: fb.Type, Parameter: fb.Parameter})
	}
	return c
}

func codecKind(mimeType string) (types.MediaKind, bool) {
	switch {
	case strings.HasPrefix(strings.ToLower(mimeType), "audio/"):
		return types.MediaKindAudio, true
	case strings.HasPrefix(strings.ToLower(mimeType), "video/"):
		return types.MediaKindVideo, true
	}
	return "", false
}

func toRTPCodecType(kind types.MediaKind) webrtc.RTPCodecType {
	if kind == types.MediaKindAudio {
		return webrtc.RTPCodecTypeAudio
	}
	return webrtc.RTPCodecTypeVideo
}
