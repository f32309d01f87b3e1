package engine

import (
	"context"
	"sync"

	"github.com/frostbyte73/core"
	"github.com/pion/rtcp"
	"github.com/pion/webrtc/v3"
	"go.uber.org/atomic"
	"go.uber.org/multierr"

	"github.com/roomcast/roomcast-server/pkg/logger"
	"github.com/roomcast/roomcast-server/pkg/rtc/types"
	"github.com/roomcast/roomcast-server/pkg/utils"
)

const activationQueueSize = 256

// Transport is a server-side ICE-lite + DTLS endpoint. Producers and consumers
// created before the DTLS handshake completes are activated once it does.
type Transport struct {
	id     string
	router *Router
	logger logger.Logger

	gatherer *webrtc.ICEGatherer
	ice      *webrtc.ICETransport
	dtls     *webrtc.DTLSTransport

	iceParams  types.ICEParameters
	candidates []types.ICECandidate
	dtlsParams types.DTLSParameters

	connecting  atomic.Bool
	connected   core.Fuse
	activations *utils.OpsQueue
	closed      closer

	lock        sync.RWMutex
	producers   map[string]*Producer
	consumers   map[string]*Consumer
	onICEState  func(state types.ICEState)
	onDTLSState func(state types.DTLSState)
}

func newTransport(ctx context.Context, r *Router) (*Transport, error) {
	api := r.worker.api
	gatherer, err := api.NewICEGatherer(webrtc.ICEGatherOptions{})
	if err != nil {
		return nil, err
	}
	iceTransport := api.NewICETransport(gatherer)
	dtls, err := api.NewDTLSTransport(iceTransport, nil)
	if err != nil {
		_ = gatherer.Close()
		return nil, err
	}

	id := utils.NewGuid(utils.TransportPrefix)
	t := &Transport{
		id:        id,
		router:    r,
		logger:    r.logger.WithValues("transport", id),
		gatherer:  gatherer,
		ice:       iceTransport,
		dtls:      dtls,
		producers: make(map[string]*Producer),
		consumers: make(map[string]*Consumer),
		closed:    newCloser(),
	}
	t.activations = utils.NewOpsQueue(t.logger, "activations", activationQueueSize)

	iceTransport.OnConnectionStateChange(func(state webrtc.ICETransportState) {
		t.lock.RLock()
		f := t.onICEState
		t.lock.RUnlock()
		if f != nil {
			f(types.ICEState(state.String()))
		}
	})
	dtls.OnStateChange(func(state webrtc.DTLSTransportState) {
		t.lock.RLock()
		f := t.onDTLSState
		t.lock.RUnlock()
		if f != nil {
			f(types.DTLSState(state.String()))
		}
	})

	if err := t.gather(ctx); err != nil {
		t.stopNative()
		return nil, err
	}
	return t, nil
}

func (t *Transport) gather(ctx context.Context) error {
	gatherFinished := make(chan struct{})
	t.gatherer.OnLocalCandidate(func(c *webrtc.ICECandidate) {
		if c == nil {
			close(gatherFinished)
		}
	})
	if err := t.gatherer.Gather(); err != nil {
		return err
	}
	select {
	case <-gatherFinished:
	case <-ctx.Done():
		return ctx.Err()
	}

	candidates, err := t.gatherer.GetLocalCandidates()
	if err != nil {
		return err
	}
	for _, c := range candidates {
		t.candidates = append(t.candidates, types.ICECandidate{
			Foundation: c.Foundation,
			Priority:   c.Priority,
			Address:    c.Address,
			Protocol:   c.Protocol.String(),
			Port:       c.Port,
			Type:       c.Typ.String(),
		})
	}

	iceParams, err := t.gatherer.GetLocalParameters()
	if err != nil {
		return err
	}
	t.iceParams = types.ICEParameters{
		UsernameFragment: iceParams.UsernameFragment,
		Password:         iceParams.Password,
		ICELite:          iceParams.ICELite,
	}

	dtlsParams, err := t.dtls.GetLocalParameters()
	if err != nil {
		return err
	}
	t.dtlsParams = types.DTLSParameters{Role: types.DTLSRoleAuto}
	for _, fp := range dtlsParams.Fingerprints {
		t.dtlsParams.Fingerprints = append(t.dtlsParams.Fingerprints, types.DTLSFingerprint{
			Algorithm: fp.Algorithm,
			Value:     fp.Value,
		})
	}
	return nil
}

func (t *Transport) ID() string {
	return t.id
}

func (t *Transport) Closed() bool {
	return t.closed.Closed()
}

func (t *Transport) OnClose(f func()) {
	t.closed.OnClose(f)
}

func (t *Transport) ICEParameters() types.ICEParameters {
	return t.iceParams
}

func (t *Transport) ICECandidates() []types.ICECandidate {
	return append([]types.ICECandidate(nil), t.candidates...)
}

func (t *Transport) DTLSParameters() types.DTLSParameters {
	return t.dtlsParams
}

func (t *Transport) OnICEStateChange(f func(state types.ICEState)) {
	t.lock.Lock()
	t.onICEState = f
	t.lock.Unlock()
}

func (t *Transport) OnDTLSStateChange(f func(state types.DTLSState)) {
	t.lock.Lock()
	t.onDTLSState = f
	t.lock.Unlock()
}

// Connect applies the remote parameters and starts ICE and DTLS. It returns once
// the parameters are accepted; the handshake completes in the background.
func (t *Transport) Connect(ctx context.Context, params types.ConnectParams) error {
	if t.Closed() {
		return ErrTransportClosed
	}
	if params.ICEParameters == nil {
		return ErrICEParametersRequired
	}
	if len(params.DTLSParameters.Fingerprints) == 0 {
		return ErrNoFingerprints
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if t.connecting.Swap(true) {
		return ErrAlreadyConnected
	}

	remoteICE := webrtc.ICEParameters{
		UsernameFragment: params.ICEParameters.UsernameFragment,
		Password:         params.ICEParameters.Password,
		ICELite:          params.ICEParameters.ICELite,
	}
	remoteDTLS := webrtc.DTLSParameters{Role: toDTLSRole(params.DTLSParameters.Role)}
	for _, fp := range params.DTLSParameters.Fingerprints {
		remoteDTLS.Fingerprints = append(remoteDTLS.Fingerprints, webrtc.DTLSFingerprint{
			Algorithm: fp.Algorithm,
			Value:     fp.Value,
		})
	}

	go t.handshake(remoteICE, remoteDTLS)
	return nil
}

func (t *Transport) handshake(remoteICE webrtc.ICEParameters, remoteDTLS webrtc.DTLSParameters) {
	role := webrtc.ICERoleControlled
	if err := t.ice.Start(t.gatherer, remoteICE, &role); err != nil {
		if !t.Closed() {
			t.logger.Warnw("ice start failed", err)
			t.Close()
		}
		return
	}
	if err := t.dtls.Start(remoteDTLS); err != nil {
		if !t.Closed() {
			t.logger.Warnw("dtls start failed", err)
			t.Close()
		}
		return
	}
	if t.Closed() {
		return
	}

	t.connected.Break()
	t.activations.Start()
	t.logger.Debugw("transport connected")
}

// Connected reports whether the DTLS handshake completed.
func (t *Transport) Connected() bool {
	return t.connected.IsBroken()
}

func (t *Transport) Produce(ctx context.Context, opts types.ProducerOptions) (types.Producer, error) {
	if t.Closed() {
		return nil, ErrTransportClosed
	}
	if err := validateProducerOptions(t.router.caps, opts); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p := newProducer(t, opts)
	t.lock.Lock()
	t.producers[p.ID()] = p
	t.lock.Unlock()
	t.router.addProducer(p)

	if !t.activations.Enqueue(p.start) {
		p.Close()
		return nil, ErrActivationRejected
	}
	return p, nil
}

func (t *Transport) Consume(ctx context.Context, opts types.ConsumerOptions) (types.Consumer, error) {
	if t.Closed() {
		return nil, ErrTransportClosed
	}
	producer := t.router.producer(opts.ProducerID)
	if producer == nil || producer.Closed() {
		return nil, ErrProducerNotFound
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c, err := newConsumer(t, producer, opts.Paused)
	if err != nil {
		return nil, err
	}
	t.lock.Lock()
	t.consumers[c.ID()] = c
	t.lock.Unlock()
	producer.addConsumer(c)

	if !t.activations.Enqueue(c.start) {
		c.Close()
		return nil, ErrActivationRejected
	}
	return c, nil
}

func (t *Transport) writeRTCP(pkts []rtcp.Packet) error {
	if !t.Connected() {
		return ErrNotConnected
	}
	_, err := t.dtls.WriteRTCP(pkts)
	return err
}

func (t *Transport) removeProducer(id string) {
	t.lock.Lock()
	delete(t.producers, id)
	t.lock.Unlock()
}

func (t *Transport) removeConsumer(id string) {
	t.lock.Lock()
	delete(t.consumers, id)
	t.lock.Unlock()
}

func (t *Transport) Close() {
	t.closed.close(func() {
		t.activations.Stop()

		t.lock.RLock()
		producers := make([]*Producer, 0, len(t.producers))
		for _, p := range t.producers {
			producers = append(producers, p)
		}
		consumers := make([]*Consumer, 0, len(t.consumers))
		for _, c := range t.consumers {
			consumers = append(consumers, c)
		}
		t.lock.RUnlock()

		for _, c := range consumers {
			c.Close()
		}
		for _, p := range producers {
			p.Close()
		}
		t.stopNative()
		t.router.removeTransport(t.id)
		t.logger.Debugw("transport closed")
	})
}

func (t *Transport) stopNative() {
	if err := multierr.Combine(t.dtls.Stop(), t.ice.Stop(), t.gatherer.Close()); err != nil {
		t.logger.Debugw("error stopping transport", "error", err)
	}
}

func toDTLSRole(role types.DTLSRole) webrtc.DTLSRole {
	switch role {
	case types.DTLSRoleClient:
		return webrtc.DTLSRoleClient
	case types.DTLSRoleServer:
		return webrtc.DTLSRoleServer
	}
	return webrtc.DTLSRoleAuto
}
