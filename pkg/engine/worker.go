package engine

import (
	"context"
	"errors"
	"net"
	"os"
	"sync"

	"github.com/pion/ice/v2"
	"github.com/pion/webrtc/v3"
	"go.uber.org/atomic"

	"github.com/roomcast/roomcast-server/pkg/config"
	"github.com/roomcast/roomcast-server/pkg/logger"
	"github.com/roomcast/roomcast-server/pkg/rtc/types"
	"github.com/roomcast/roomcast-server/pkg/telemetry/prometheus"
)

// Worker is a media execution unit. Each worker owns one UDP socket that all ICE
// traffic of its routers is multiplexed over, and its own pion API stack.
type Worker struct {
	index  int
	logger logger.Logger
	api    *webrtc.API
	conn   *watchedConn
	mux    *ice.UDPMuxDefault

	closing atomic.Bool
	closed  closer
	died    sync.Once

	lock    sync.RWMutex
	routers map[string]*Router
	onDied  []func(err error)
}

// NewWorkers starts conf.RTC.NumWorkers workers, each on its own UDP port.
func NewWorkers(conf *config.Config) ([]types.Worker, error) {
	workers := make([]types.Worker, 0, conf.RTC.NumWorkers)
	for i := 0; i < conf.RTC.NumWorkers; i++ {
		w, err := NewWorker(i, &conf.RTC)
		if err != nil {
			for _, started := range workers {
				started.Close()
			}
			return nil, err
		}
		workers = append(workers, w)
	}
	prometheus.SetWorkerCount(len(workers))
	return workers, nil
}

func NewWorker(index int, conf *config.RTCConfig) (*Worker, error) {
	udpConn, err := net.ListenUDP("udp4", &net.UDPAddr{Port: conf.WorkerPort(index)})
	if err != nil {
		return nil, err
	}

	w := &Worker{
		index:   index,
		logger:  logger.GetLogger().WithValues("workerIndex", index),
		routers: make(map[string]*Router),
		closed:  newCloser(),
	}
	w.conn = &watchedConn{PacketConn: udpConn, onError: w.handleReadError}
	w.mux = ice.NewUDPMuxDefault(ice.UDPMuxParams{
		Logger:  logger.PionLoggerFactory{}.NewLogger("udpmux"),
		UDPConn: w.conn,
	})

	me, ir, err := newMediaEngine()
	if err != nil {
		_ = w.mux.Close()
		return nil, err
	}

	se := webrtc.SettingEngine{
		LoggerFactory: logger.PionLoggerFactory{},
	}
	se.SetLite(true)
	se.SetICEUDPMux(w.mux)
	se.SetNetworkTypes([]webrtc.NetworkType{webrtc.NetworkTypeUDP4})
	if conf.NodeIP != "" {
		se.SetNAT1To1IPs([]string{conf.NodeIP}, webrtc.ICECandidateTypeHost)
	}

	w.api = webrtc.NewAPI(
		webrtc.WithMediaEngine(me),
		webrtc.WithSettingEngine(se),
		webrtc.WithInterceptorRegistry(ir),
	)

	w.logger.Infow("media worker started", "pid", w.PID(), "addr", udpConn.LocalAddr().String())
	return w, nil
}

func (w *Worker) Index() int {
	return w.index
}

// PID is the id of the process hosting the worker. Workers run in-process.
func (w *Worker) PID() int {
	return os.Getpid()
}

// LocalAddr is the address of the worker's media socket.
func (w *Worker) LocalAddr() net.Addr {
	return w.conn.LocalAddr()
}

func (w *Worker) CreateRouter(ctx context.Context) (types.Router, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if w.closed.Closed() {
		return nil, ErrWorkerClosed
	}

	r := newRouter(w)
	w.lock.Lock()
	w.routers[r.ID()] = r
	w.lock.Unlock()

	// the worker may have closed between the check and the insert
	if w.closed.Closed() {
		r.Close()
		return nil, ErrWorkerClosed
	}
	return r, nil
}

func (w *Worker) OnDied(f func(err error)) {
	w.lock.Lock()
	w.onDied = append(w.onDied, f)
	w.lock.Unlock()
}

func (w *Worker) NumRouters() int {
	w.lock.RLock()
	defer w.lock.RUnlock()
	return len(w.routers)
}

func (w *Worker) Close() {
	w.closing.Store(true)
	w.closed.close(func() {
		w.closeRouters()
		if err := w.mux.Close(); err != nil {
			w.logger.Debugw("could not close udp mux", "error", err)
		}
		w.logger.Infow("media worker closed")
	})
}

func (w *Worker) removeRouter(id string) {
	w.lock.Lock()
	delete(w.routers, id)
	w.lock.Unlock()
}

func (w *Worker) closeRouters() {
	w.lock.RLock()
	routers := make([]*Router, 0, len(w.routers))
	for _, r := range w.routers {
		routers = append(routers, r)
	}
	w.lock.RUnlock()

	for _, r := range routers {
		r.Close()
	}
}

func (w *Worker) handleReadError(err error) {
	if w.closing.Load() {
		return
	}
	w.died.Do(func() {
		w.lock.RLock()
		handlers := append([]func(error){}, w.onDied...)
		w.lock.RUnlock()
		for _, f := range handlers {
			f(err)
		}
		w.Close()
	})
}

// watchedConn reports the first fatal read error of the media socket.
type watchedConn struct {
	net.PacketConn
	onError func(err error)
}

func (c *watchedConn) ReadFrom(p []byte) (int, net.Addr, error) {
	n, addr, err := c.PacketConn.ReadFrom(p)
	if err != nil {
		var netErr net.Error
		if !(errors.As(err, &netErr) && netErr.Timeout()) {
			c.onError(err)
		}
	}
	return n, addr, err
}
