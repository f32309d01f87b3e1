package engine

import (
	"sync"

	"github.com/pion/rtcp"
	"github.com/pion/webrtc/v3"
	"go.uber.org/atomic"
	"go.uber.org/multierr"

	"github.com/roomcast/roomcast-server/pkg/logger"
	"github.com/roomcast/roomcast-server/pkg/rtc/types"
	"github.com/roomcast/roomcast-server/pkg/telemetry/prometheus"
	"github.com/roomcast/roomcast-server/pkg/utils"
)

// Producer receives one media source over its transport. Each encoding is a
// spatial layer, lowest first, and is forwarded to the consumers of the producer.
type Producer struct {
	id        string
	transport *Transport
	kind      types.MediaKind
	params    types.RtpParameters
	logger    logger.Logger

	paused atomic.Bool
	closed closer

	lock      sync.RWMutex
	receivers []*webrtc.RTPReceiver
	consumers map[string]*Consumer
}

func validateProducerOptions(caps types.RtpCapabilities, opts types.ProducerOptions) error {
	if len(opts.RtpParameters.Codecs) == 0 {
		return ErrNoCodecs
	}
	codec := opts.RtpParameters.Codecs[0]
	if kind, ok := codecKind(codec.MimeType); !ok || kind != opts.Kind {
		return ErrCodecKindMismatch
	}
	if !caps.Supports(codec.MimeType) {
		return ErrUnsupportedCodec
	}
	if len(opts.RtpParameters.Encodings) == 0 {
		return ErrSSRCRequired
	}
	for _, enc := range opts.RtpParameters.Encodings {
		if enc.SSRC == 0 {
			return ErrSSRCRequired
		}
	}
	return nil
}

func newProducer(t *Transport, opts types.ProducerOptions) *Producer {
	id := utils.NewGuid(utils.ProducerPrefix)
	p := &Producer{
		id:        id,
		transport: t,
		kind:      opts.Kind,
		params:    opts.RtpParameters,
		logger:    t.logger.WithValues("producer", id, "kind", opts.Kind),
		consumers: make(map[string]*Consumer),
		closed:    newCloser(),
	}
	p.paused.Store(opts.Paused)
	return p
}

func (p *Producer) ID() string {
	return p.id
}

func (p *Producer) Kind() types.MediaKind {
	return p.kind
}

func (p *Producer) RtpParameters() types.RtpParameters {
	return p.params
}

func (p *Producer) Closed() bool {
	return p.closed.Closed()
}

func (p *Producer) OnClose(f func()) {
	p.closed.OnClose(f)
}

func (p *Producer) Paused() bool {
	return p.paused.Load()
}

func (p *Producer) Pause() {
	p.paused.Store(true)
}

func (p *Producer) Resume() {
	if p.paused.Swap(false) {
		// consumers restart on a key frame
		_ = p.requestKeyFrame(0)
	}
}

// spatialLayers is the number of encodings the producer sends.
func (p *Producer) spatialLayers() int {
	if n := len(p.params.Encodings); n > 0 {
		return n
	}
	return 1
}

// start binds one RTP receiver per encoding. It runs once DTLS is up.
func (p *Producer) start() {
	if p.Closed() {
		return
	}
	codec := p.params.Codecs[0]
	api := p.transport.router.worker.api

	for layer, enc := range p.params.Encodings {
		recv, err := api.NewRTPReceiver(toRTPCodecType(p.kind), p.transport.dtls)
		if err != nil {
			p.logger.Errorw("could not create receiver", err, "layer", layer)
			p.Close()
			return
		}
		if err := recv.Receive(webrtc.RTPReceiveParameters{
			Encodings: []webrtc.RTPDecodingParameters{
				{
					RTPCodingParameters: webrtc.RTPCodingParameters{
						RID:         enc.RID,
						SSRC:        webrtc.SSRC(enc.SSRC),
						PayloadType: webrtc.PayloadType(codec.PayloadType),
					},
				},
			},
		}); err != nil {
			p.logger.Errorw("could not start receiver", err, "layer", layer, "ssrc", enc.SSRC)
			_ = recv.Stop()
			p.Close()
			return
		}
		recv.SetRTPParameters(webrtc.RTPParameters{
			Codecs: []webrtc.RTPCodecParameters{toWebRTCCodec(codec)},
		})

		p.lock.Lock()
		p.receivers = append(p.receivers, recv)
		p.lock.Unlock()

		go p.forward(layer, recv.Track())
		go p.drainRTCP(recv)
	}
	p.logger.Debugw("producer started", "layers", len(p.params.Encodings))
}

func (p *Producer) forward(layer int, track *webrtc.TrackRemote) {
	for {
		pkt, _, err := track.ReadRTP()
		if err != nil {
			return
		}
		prometheus.IncrementPackets(prometheus.Incoming, 1, uint64(pkt.MarshalSize()))
		if p.paused.Load() {
			continue
		}

		p.lock.RLock()
		for _, c := range p.consumers {
			c.writeRTP(layer, pkt)
		}
		p.lock.RUnlock()
	}
}

// drainRTCP keeps the receiver's interceptors running.
func (p *Producer) drainRTCP(recv *webrtc.RTPReceiver) {
	for {
		if _, _, err := recv.ReadRTCP(); err != nil {
			return
		}
	}
}

// requestKeyFrame asks the remote sender of layer for a key frame.
func (p *Producer) requestKeyFrame(layer int) error {
	if p.kind != types.MediaKindVideo || p.Closed() {
		return nil
	}
	if layer < 0 || layer >= len(p.params.Encodings) {
		layer = 0
	}
	if err := p.transport.writeRTCP([]rtcp.Packet{
		&rtcp.PictureLossIndication{MediaSSRC: p.params.Encodings[layer].SSRC},
	}); err != nil {
		return err
	}
	prometheus.IncrementPLI(prometheus.Outgoing)
	return nil
}

func (p *Producer) addConsumer(c *Consumer) {
	p.lock.Lock()
	p.consumers[c.ID()] = c
	p.lock.Unlock()
}

func (p *Producer) removeConsumer(id string) {
	p.lock.Lock()
	delete(p.consumers, id)
	p.lock.Unlock()
}

// Close stops the receivers and closes every consumer of the producer.
func (p *Producer) Close() {
	p.closed.close(func() {
		p.lock.Lock()
		receivers := p.receivers
		p.receivers = nil
		consumers := make([]*Consumer, 0, len(p.consumers))
		for _, c := range p.consumers {
			consumers = append(consumers, c)
		}
		p.lock.Unlock()

		for _, c := range consumers {
			c.Close()
		}
		var err error
		for _, recv := range receivers {
			err = multierr.Append(err, recv.Stop())
		}
		if err != nil {
			p.logger.Debugw("error stopping receivers", "error", err)
		}
		p.transport.removeProducer(p.id)
		p.transport.router.removeProducer(p.id)
		p.logger.Debugw("producer closed")
	})
}
