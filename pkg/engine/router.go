package engine

import (
	"context"
	"sync"

	"github.com/roomcast/roomcast-server/pkg/logger"
	"github.com/roomcast/roomcast-server/pkg/rtc/types"
	"github.com/roomcast/roomcast-server/pkg/utils"
)

// Router is the media context of one room. Transports created on it can
// consume any producer of any other transport on the same router.
type Router struct {
	id     string
	worker *Worker
	caps   types.RtpCapabilities
	logger logger.Logger

	closed closer

	lock       sync.RWMutex
	transports map[string]*Transport
	producers  map[string]*Producer
}

func newRouter(w *Worker) *Router {
	id := utils.NewGuid(utils.RouterPrefix)
	return &Router{
		id:         id,
		worker:     w,
		caps:       routerCapabilities(),
		logger:     w.logger.WithValues("router", id),
		transports: make(map[string]*Transport),
		producers:  make(map[string]*Producer),
		closed:     newCloser(),
	}
}

func (r *Router) ID() string {
	return r.id
}

func (r *Router) Closed() bool {
	return r.closed.Closed()
}

func (r *Router) OnClose(f func()) {
	r.closed.OnClose(f)
}

func (r *Router) RtpCapabilities() types.RtpCapabilities {
	return r.caps
}

// CanConsume reports whether a consumer with caps can receive producerID.
func (r *Router) CanConsume(producerID string, caps types.RtpCapabilities) bool {
	p := r.producer(producerID)
	if p == nil || p.Closed() {
		return false
	}
	codecs := p.RtpParameters().Codecs
	if len(codecs) == 0 {
		return false
	}
	return caps.Supports(codecs[0].MimeType)
}

func (r *Router) Close() {
	r.closed.close(func() {
		r.lock.RLock()
		transports := make([]*Transport, 0, len(r.transports))
		for _, t := range r.transports {
			transports = append(transports, t)
		}
		r.lock.RUnlock()

		for _, t := range transports {
			t.Close()
		}
		r.worker.removeRouter(r.id)
		r.logger.Debugw("router closed")
	})
}

func (r *Router) createTransport(ctx context.Context) (*Transport, error) {
	if r.Closed() {
		return nil, ErrRouterClosed
	}
	t, err := newTransport(ctx, r)
	if err != nil {
		return nil, err
	}

	r.lock.Lock()
	r.transports[t.ID()] = t
	r.lock.Unlock()

	if r.Closed() {
		t.Close()
		return nil, ErrRouterClosed
	}
	return t, nil
}

func (r *Router) removeTransport(id string) {
	r.lock.Lock()
	delete(r.transports, id)
	r.lock.Unlock()
}

func (r *Router) addProducer(p *Producer) {
	r.lock.Lock()
	r.producers[p.ID()] = p
	r.lock.Unlock()
}

func (r *Router) removeProducer(id string) {
	r.lock.Lock()
	delete(r.producers, id)
	r.lock.Unlock()
}

func (r *Router) producer(id string) *Producer {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.producers[id]
}
