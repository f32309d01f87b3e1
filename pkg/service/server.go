// Copyright 2023 LiveKit, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/frostbyte73/core"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/urfave/negroni/v3"
	"go.uber.org/atomic"

	"github.com/roomcast/roomcast-server/pkg/config"
	"github.com/roomcast/roomcast-server/pkg/logger"
	"github.com/roomcast/roomcast-server/pkg/routing"
	"github.com/roomcast/roomcast-server/pkg/rtc/types"
)

type RoomcastServer struct {
	config        *config.Config
	media         *MediaService
	signalService *SignalService
	pool          *routing.WorkerPool
	currentNode   *routing.LocalNode
	httpServer    *http.Server
	promServer    *http.Server
	running       atomic.Bool
	doneChan      core.Fuse
	closedChan    core.Fuse

	// invoked when a worker dies
	exit func(code int)
}

func NewRoomcastServer(
	conf *config.Config,
	media *MediaService,
	signalService *SignalService,
	pool *routing.WorkerPool,
	currentNode *routing.LocalNode,
) (*RoomcastServer, error) {
	s := &RoomcastServer{
		config:        conf,
		media:         media,
		signalService: signalService,
		pool:          pool,
		currentNode:   currentNode,
		exit:          os.Exit,
	}

	middlewares := []negroni.Handler{
		// always first
		negroni.NewRecovery(),
		// CORS is allowed, identity is checked against room membership
		cors.New(cors.Options{
			AllowOriginFunc: func(origin string) bool {
				return true
			},
			AllowedHeaders: []string{"*"},
		}),
	}

	mux := http.NewServeMux()
	mux.Handle("/rtc", signalService)
	mux.HandleFunc("/healthz", s.healthCheck)

	s.httpServer = &http.Server{
		Handler: configureMiddlewares(mux, middlewares...),
	}

	if conf.PrometheusPort > 0 {
		s.promServer = &http.Server{
			Handler: promhttp.Handler(),
		}
	}

	// a dead worker takes its routers with it; crash and let the supervisor restart the node
	pool.OnWorkerDied(func(w types.Worker, err error) {
		logger.Errorw("media worker died, exiting", err, "workerIndex", w.Index(), "workerPID", w.PID())
		s.exit(1)
	})

	return s, nil
}

func (s *RoomcastServer) Node() *routing.LocalNode {
	return s.currentNode
}

func (s *RoomcastServer) HTTPPort() int {
	return int(s.config.Port)
}

func (s *RoomcastServer) IsRunning() bool {
	return s.running.Load()
}

func (s *RoomcastServer) Start() error {
	if s.running.Load() {
		return errors.New("already running")
	}

	addresses := s.config.BindAddresses
	if addresses == nil {
		addresses = []string{""}
	}

	// ensure we could listen
	listeners := make([]net.Listener, 0)
	promListeners := make([]net.Listener, 0)
	for _, addr := range addresses {
		ln, err := net.Listen("tcp", net.JoinHostPort(addr, strconv.Itoa(int(s.config.Port))))
		if err != nil {
			return err
		}
		listeners = append(listeners, ln)

		if s.promServer != nil {
			ln, err = net.Listen("tcp", net.JoinHostPort(addr, strconv.Itoa(int(s.config.PrometheusPort))))
			if err != nil {
				return err
			}
			promListeners = append(promListeners, ln)
		}
	}

	values := []interface{}{
		"portHttp", s.config.Port,
		"nodeID", s.currentNode.NodeID(),
		"nodeIP", s.currentNode.NodeIP(),
		"workers", s.pool.Size(),
	}
	if s.config.BindAddresses != nil {
		values = append(values, "bindAddresses", s.config.BindAddresses)
	}
	if s.promServer != nil {
		values = append(values, "portPrometheus", s.config.PrometheusPort)
	}
	logger.Infow("starting roomcast server", values...)

	for _, promLn := range promListeners {
		go func(ln net.Listener) {
			_ = s.promServer.Serve(ln)
		}(promLn)
	}
	for _, ln := range listeners {
		go func(l net.Listener) {
			_ = s.httpServer.Serve(l)
		}(ln)
	}

	s.currentNode.SetState(routing.NodeStateServing)
	s.running.Store(true)
	go s.statsWorker()

	<-s.doneChan.Watch()

	s.currentNode.SetState(routing.NodeStateShuttingDown)

	// wait for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = s.httpServer.Shutdown(ctx)
	}()
	if s.promServer != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.promServer.Shutdown(ctx)
		}()
	}
	wg.Wait()

	s.media.Stop()
	s.pool.Close()
	s.running.Store(false)
	s.closedChan.Break()
	return nil
}

func (s *RoomcastServer) Stop(force bool) {
	if !s.running.Load() {
		return
	}
	if force {
		logger.Infow("forcing server shutdown")
	}
	s.doneChan.Break()
	<-s.closedChan.Watch()
}

func (s *RoomcastServer) statsWorker() {
	ticker := time.NewTicker(config.StatsUpdateInterval)
	defer ticker.Stop()

	s.currentNode.UpdateNodeStats()
	for {
		select {
		case <-s.doneChan.Watch():
			return
		case <-ticker.C:
			s.currentNode.UpdateNodeStats()
		}
	}
}

func (s *RoomcastServer) healthCheck(w http.ResponseWriter, _ *http.Request) {
	info := s.currentNode.Info()
	if info.State != routing.NodeStateServing {
		handleError(w, http.StatusServiceUnavailable, fmt.Sprintf("node is %s", info.State))
		return
	}
	if info.Stats == nil || s.currentNode.SecondsSinceNodeStatsUpdate() > 2*config.StatsUpdateInterval.Seconds() {
		handleError(w, http.StatusNotAcceptable, "node stats are stale")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(info)
}

func configureMiddlewares(handler http.Handler, middlewares ...negroni.Handler) *negroni.Negroni {
	n := negroni.New()
	for _, m := range middlewares {
		n.Use(m)
	}
	n.UseHandler(handler)
	return n
}

