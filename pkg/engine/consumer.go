package engine

import (
	"sync"

	"github.com/pion/rtcp"
	"github.com/pion/rtp"
	"github.com/pion/webrtc/v3"
	"go.uber.org/atomic"

	"github.com/roomcast/roomcast-server/pkg/logger"
	"github.com/roomcast/roomcast-server/pkg/rtc/types"
	"github.com/roomcast/roomcast-server/pkg/telemetry/prometheus"
	"github.com/roomcast/roomcast-server/pkg/utils"
)

// Consumer forwards one spatial layer of a producer to the remote peer of its
// transport. The layer in use follows the preferred layer, switching after a
// key frame request.
type Consumer struct {
	id        string
	transport *Transport
	producer  *Producer
	track     *webrtc.TrackLocalStaticRTP
	sender    *webrtc.RTPSender
	params    types.RtpParameters
	logger    logger.Logger

	paused   atomic.Bool
	priority atomic.Uint32
	closed   closer

	lock      sync.Mutex
	preferred types.ConsumerLayers
	current   int
	munger    munger
}

func newConsumer(t *Transport, p *Producer, paused bool) (*Consumer, error) {
	codec := p.params.Codecs[0]
	id := utils.NewGuid(utils.ConsumerPrefix)
	track, err := webrtc.NewTrackLocalStaticRTP(toWebRTCCodec(codec).RTPCodecCapability, id, p.ID())
	if err != nil {
		return nil, err
	}
	sender, err := t.router.worker.api.NewRTPSender(track, t.dtls)
	if err != nil {
		return nil, err
	}

	encodings := sender.GetParameters().Encodings
	var ssrc uint32
	if len(encodings) > 0 {
		ssrc = uint32(encodings[0].SSRC)
	}

	c := &Consumer{
		id:        id,
		transport: t,
		producer:  p,
		track:     track,
		sender:    sender,
		params: types.RtpParameters{
			Codecs:    []types.RtpCodecParameters{codec},
			Encodings: []types.RtpEncodingParameters{{SSRC: ssrc}},
		},
		closed: newCloser(),
		logger: t.logger.WithValues("consumer", id, "producer", p.ID()),
	}
	c.paused.Store(paused)
	return c, nil
}

func (c *Consumer) ID() string {
	return c.id
}

func (c *Consumer) ProducerID() string {
	return c.producer.ID()
}

func (c *Consumer) Kind() types.MediaKind {
	return c.producer.Kind()
}

func (c *Consumer) RtpParameters() types.RtpParameters {
	return c.params
}

func (c *Consumer) Closed() bool {
	return c.closed.Closed()
}

func (c *Consumer) OnClose(f func()) {
	c.closed.OnClose(f)
}

func (c *Consumer) Paused() bool {
	return c.paused.Load()
}

func (c *Consumer) Pause() {
	c.paused.Store(true)
}

func (c *Consumer) Resume() {
	c.paused.Store(false)
}

func (c *Consumer) SetPriority(priority uint8) {
	c.priority.Store(uint32(priority))
}

func (c *Consumer) Priority() uint8 {
	return uint8(c.priority.Load())
}

// SetPreferredLayers selects the spatial layer to forward. Temporal layers are
// recorded but every temporal layer of the spatial layer is forwarded.
func (c *Consumer) SetPreferredLayers(layers types.ConsumerLayers) {
	spatial := clampLayer(layers.SpatialLayer, c.SpatialLayers())

	c.lock.Lock()
	c.preferred = layers
	changed := c.current != spatial
	c.current = spatial
	c.lock.Unlock()

	if changed {
		if err := c.producer.requestKeyFrame(spatial); err != nil {
			c.logger.Debugw("could not request key frame for layer switch", "error", err, "layer", spatial)
		}
	}
}

func (c *Consumer) PreferredLayers() types.ConsumerLayers {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.preferred
}

func (c *Consumer) SpatialLayers() int {
	return c.producer.spatialLayers()
}

func (c *Consumer) RequestKeyFrame() error {
	if c.Closed() {
		return ErrTransportClosed
	}
	c.lock.Lock()
	layer := c.current
	c.lock.Unlock()
	return c.producer.requestKeyFrame(layer)
}

// start binds the sender. It runs once DTLS is up.
func (c *Consumer) start() {
	if c.Closed() {
		return
	}
	params := c.sender.GetParameters()
	params.Codecs = []webrtc.RTPCodecParameters{toWebRTCCodec(c.params.Codecs[0])}
	if err := c.sender.Send(params); err != nil {
		c.logger.Errorw("could not start sender", err)
		c.Close()
		return
	}
	go c.readRTCP()
	c.logger.Debugw("consumer started")
}

func (c *Consumer) readRTCP() {
	for {
		pkts, _, err := c.sender.ReadRTCP()
		if err != nil {
			return
		}
		for _, pkt := range pkts {
			switch pkt.(type) {
			case *rtcp.PictureLossIndication, *rtcp.FullIntraRequest:
				prometheus.IncrementPLI(prometheus.Incoming)
				if err := c.RequestKeyFrame(); err != nil {
					c.logger.Debugw("could not relay key frame request", "error", err)
				}
			}
		}
	}
}

func (c *Consumer) writeRTP(layer int, pkt *rtp.Packet) {
	if c.paused.Load() || c.Closed() {
		return
	}

	c.lock.Lock()
	if layer != c.current {
		c.lock.Unlock()
		return
	}
	out := *pkt
	c.munger.apply(layer, &out.Header)
	c.lock.Unlock()

	if err := c.track.WriteRTP(&out); err != nil {
		return
	}
	prometheus.IncrementPackets(prometheus.Outgoing, 1, uint64(out.MarshalSize()))
}

func (c *Consumer) Close() {
	c.closed.close(func() {
		if err := c.sender.Stop(); err != nil {
			c.logger.Debugw("error stopping sender", "error", err)
		}
		c.producer.removeConsumer(c.id)
		c.transport.removeConsumer(c.id)
		c.logger.Debugw("consumer closed")
	})
}

func clampLayer(layer, layers int) int {
	if layer < 0 {
		return 0
	}
	if layer >= layers {
		return layers - 1
	}
	return layer
}

// munger keeps outgoing sequence numbers and timestamps continuous across
// spatial layer switches.
type munger struct {
	started  bool
	layer    int
	lastSN   uint16
	lastTS   uint32
	snOffset uint16
	tsOffset uint32
}

func (m *munger) apply(layer int, h *rtp.Header) {
	switch {
	case !m.started:
		m.started = true
		m.layer = layer
	case layer != m.layer:
		m.layer = layer
		m.snOffset = h.SequenceNumber - m.lastSN - 1
		m.tsOffset = h.Timestamp - m.lastTS - 1
	}
	h.SequenceNumber -= m.snOffset
	h.Timestamp -= m.tsOffset
	m.lastSN = h.SequenceNumber
	m.lastTS = h.Timestamp
}
