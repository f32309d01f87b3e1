package engine

import (
	"context"
	"testing"
	"time"

	"github.com/pion/rtp"
	"github.com/stretchr/testify/require"

	"github.com/roomcast/roomcast-server/pkg/config"
	"github.com/roomcast/roomcast-server/pkg/rtc/types"
	"github.com/roomcast/roomcast-server/pkg/rtc/types/typesfakes"
)

func newTestWorker(t *testing.T) *Worker {
	conf := config.DefaultConfig.RTC
	conf.UDPPortStart = 0
	conf.NodeIP = "127.0.0.1"
	w, err := NewWorker(0, &conf)
	require.NoError(t, err)
	t.Cleanup(w.Close)
	return w
}

func newTestRouter(t *testing.T, w *Worker) *Router {
	r, err := w.CreateRouter(context.Background())
	require.NoError(t, err)
	return r.(*Router)
}

func newTestTransport(t *testing.T, r *Router) *Transport {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	tr, err := NewTransportFactory().CreateWebRTCTransport(ctx, r)
	require.NoError(t, err)
	return tr.(*Transport)
}

func vp8Options(ssrcs ...uint32) types.ProducerOptions {
	opts := types.ProducerOptions{
		Kind: types.MediaKindVideo,
		RtpParameters: types.RtpParameters{
			Codecs: []types.RtpCodecParameters{{MimeType: "video/VP8", PayloadType: 96, ClockRate: 90000}},
		},
	}
	for _, ssrc := range ssrcs {
		opts.RtpParameters.Encodings = append(opts.RtpParameters.Encodings, types.RtpEncodingParameters{SSRC: ssrc})
	}
	return opts
}

func TestRouterCapabilities(t *testing.T) {
	caps := routerCapabilities()
	require.True(t, caps.Supports("audio/opus"))
	require.True(t, caps.Supports("video/vp8"))
	require.True(t, caps.Supports("video/H264"))
	require.False(t, caps.Supports("video/AV1"))
	require.Equal(t, types.MediaKindAudio, caps.Codecs[0].Kind)
}

func TestValidateProducerOptions(t *testing.T) {
	caps := routerCapabilities()

	require.NoError(t, validateProducerOptions(caps, vp8Options(1111, 2222)))

	opts := vp8Options(1111)
	opts.RtpParameters.Codecs = nil
	require.ErrorIs(t, validateProducerOptions(caps, opts), ErrNoCodecs)

	opts = vp8Options(1111)
	opts.Kind = types.MediaKindAudio
	require.ErrorIs(t, validateProducerOptions(caps, opts), ErrCodecKindMismatch)

	opts = vp8Options(1111)
	opts.RtpParameters.Codecs[0].MimeType = "video/AV1"
	require.ErrorIs(t, validateProducerOptions(caps, opts), ErrUnsupportedCodec)

	require.ErrorIs(t, validateProducerOptions(caps, vp8Options()), ErrSSRCRequired)
	require.ErrorIs(t, validateProducerOptions(caps, vp8Options(1111, 0)), ErrSSRCRequired)
}

func TestMunger(t *testing.T) {
	var m munger
	apply := func(layer int, sn uint16, ts uint32) (uint16, uint32) {
		h := rtp.Header{SequenceNumber: sn, Timestamp: ts}
		m.apply(layer, &h)
		return h.SequenceNumber, h.Timestamp
	}

	sn, ts := apply(0, 100, 9000)
	require.Equal(t, uint16(100), sn)
	require.Equal(t, uint32(9000), ts)
	sn, _ = apply(0, 101, 9000)
	require.Equal(t, uint16(101), sn)

	t.Run("layer switch stays continuous", func(t *testing.T) {
		sn, ts := apply(2, 40000, 500000)
		require.Equal(t, uint16(102), sn)
		require.Equal(t, uint32(9001), ts)

		sn, ts = apply(2, 40001, 503000)
		require.Equal(t, uint16(103), sn)
		require.Equal(t, uint32(12001), ts)
	})

	t.Run("sequence numbers wrap", func(t *testing.T) {
		sn, _ := apply(0, 65535, 0)
		require.Equal(t, uint16(104), sn)
		sn, _ = apply(0, 0, 0)
		require.Equal(t, uint16(105), sn)
	})
}

func TestClampLayer(t *testing.T) {
	require.Equal(t, 0, clampLayer(-1, 3))
	require.Equal(t, 1, clampLayer(1, 3))
	require.Equal(t, 2, clampLayer(5, 3))
	require.Equal(t, 0, clampLayer(2, 1))
}

func TestCloser(t *testing.T) {
	c := newCloser()
	calls := 0
	c.OnClose(func() { calls++ })

	torn := false
	require.True(t, c.close(func() { torn = true }))
	require.True(t, torn)
	require.True(t, c.Closed())
	require.Equal(t, 1, calls)

	require.False(t, c.close(nil))
	require.Equal(t, 1, calls)

	late := false
	c.OnClose(func() { late = true })
	require.True(t, late)

	select {
	case <-c.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestWorker(t *testing.T) {
	t.Run("close cascades to routers", func(t *testing.T) {
		w := newTestWorker(t)
		r := newTestRouter(t, w)
		require.Equal(t, 1, w.NumRouters())
		require.NotZero(t, w.PID())

		closed := false
		r.OnClose(func() { closed = true })
		w.Close()

		require.True(t, closed)
		require.True(t, r.Closed())
		require.Zero(t, w.NumRouters())

		_, err := w.CreateRouter(context.Background())
		require.ErrorIs(t, err, ErrWorkerClosed)
	})

	t.Run("socket failure reports death", func(t *testing.T) {
		w := newTestWorker(t)
		died := make(chan error, 1)
		w.OnDied(func(err error) { died <- err })

		require.NoError(t, w.conn.PacketConn.Close())
		select {
		case err := <-died:
			require.Error(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("worker death not reported")
		}
		require.Eventually(t, func() bool { return w.closed.Closed() }, time.Second, 10*time.Millisecond)
	})

	t.Run("close is not death", func(t *testing.T) {
		w := newTestWorker(t)
		died := make(chan error, 1)
		w.OnDied(func(err error) { died <- err })

		w.Close()
		select {
		case <-died:
			t.Fatal("closed worker reported death")
		case <-time.After(100 * time.Millisecond):
		}
	})
}

func TestTransportFactory(t *testing.T) {
	_, err := NewTransportFactory().CreateWebRTCTransport(context.Background(), &typesfakes.FakeRouter{})
	require.ErrorIs(t, err, ErrForeignRouter)

	w := newTestWorker(t)
	r := newTestRouter(t, w)
	r.Close()
	_, err = NewTransportFactory().CreateWebRTCTransport(context.Background(), r)
	require.ErrorIs(t, err, ErrRouterClosed)
}

func TestTransport(t *testing.T) {
	w := newTestWorker(t)
	r := newTestRouter(t, w)
	send := newTestTransport(t, r)
	recv := newTestTransport(t, r)

	require.NotEmpty(t, send.ICEParameters().UsernameFragment)
	require.NotEmpty(t, send.ICEParameters().Password)
	require.NotEmpty(t, send.DTLSParameters().Fingerprints)
	require.NotEqual(t, send.ICEParameters().UsernameFragment, recv.ICEParameters().UsernameFragment)

	t.Run("connect validates remote parameters", func(t *testing.T) {
		err := send.Connect(context.Background(), types.ConnectParams{
			DTLSParameters: types.DTLSParameters{Fingerprints: []types.DTLSFingerprint{{Algorithm: "sha-256", Value: "AA"}}},
		})
		require.ErrorIs(t, err, ErrICEParametersRequired)

		err = send.Connect(context.Background(), types.ConnectParams{
			ICEParameters: &types.ICEParameters{UsernameFragment: "u", Password: "p"},
		})
		require.ErrorIs(t, err, ErrNoFingerprints)
		require.False(t, send.Connected())
	})

	p, err := send.Produce(context.Background(), vp8Options(1111, 2222, 3333))
	require.NoError(t, err)
	require.Equal(t, types.MediaKindVideo, p.Kind())
	require.False(t, p.Paused())

	require.True(t, r.CanConsume(p.ID(), routerCapabilities()))
	require.False(t, r.CanConsume(p.ID(), types.RtpCapabilities{
		Codecs: []types.RtpCodecCapability{{Kind: types.MediaKindAudio, MimeType: "audio/opus"}},
	}))
	require.False(t, r.CanConsume("PR_missing", routerCapabilities()))

	_, err = recv.Consume(context.Background(), types.ConsumerOptions{ProducerID: "PR_missing"})
	require.ErrorIs(t, err, ErrProducerNotFound)

	c, err := recv.Consume(context.Background(), types.ConsumerOptions{
		ProducerID:      p.ID(),
		RtpCapabilities: routerCapabilities(),
		Paused:          true,
	})
	require.NoError(t, err)
	require.True(t, c.Paused())
	require.Equal(t, p.ID(), c.ProducerID())
	require.Equal(t, 3, c.SpatialLayers())
	require.Len(t, c.RtpParameters().Encodings, 1)
	require.NotZero(t, c.RtpParameters().Encodings[0].SSRC)

	c.SetPreferredLayers(types.ConsumerLayers{SpatialLayer: 7, TemporalLayer: types.MaxTemporalLayer})
	require.Equal(t, 7, c.PreferredLayers().SpatialLayer)
	require.Equal(t, 2, c.(*Consumer).current)
	require.ErrorIs(t, c.RequestKeyFrame(), ErrNotConnected)

	c.Resume()
	require.False(t, c.Paused())

	t.Run("producer close closes its consumers", func(t *testing.T) {
		other, err := send.Produce(context.Background(), vp8Options(4444))
		require.NoError(t, err)
		oc, err := recv.Consume(context.Background(), types.ConsumerOptions{ProducerID: other.ID(), Paused: true})
		require.NoError(t, err)

		consumerClosed := false
		oc.OnClose(func() { consumerClosed = true })
		other.Close()
		require.True(t, consumerClosed)
		require.False(t, r.CanConsume(other.ID(), routerCapabilities()))
	})

	t.Run("router close cascades", func(t *testing.T) {
		var closedOrder []string
		c.OnClose(func() { closedOrder = append(closedOrder, "consumer") })
		p.OnClose(func() { closedOrder = append(closedOrder, "producer") })
		send.OnClose(func() { closedOrder = append(closedOrder, "send") })
		recv.OnClose(func() { closedOrder = append(closedOrder, "recv") })

		r.Close()
		require.True(t, send.Closed())
		require.True(t, recv.Closed())
		require.True(t, p.Closed())
		require.True(t, c.Closed())
		require.ElementsMatch(t, []string{"consumer", "producer", "send", "recv"}, closedOrder)

		_, err := send.Produce(context.Background(), vp8Options(5555))
		require.ErrorIs(t, err, ErrTransportClosed)
	})
}
