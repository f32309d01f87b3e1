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

package routing

import (
	"runtime"
	"sync"
	"time"

	"github.com/roomcast/roomcast-server/pkg/config"
	"github.com/roomcast/roomcast-server/pkg/logger"
	"github.com/roomcast/roomcast-server/pkg/telemetry/prometheus"
	"github.com/roomcast/roomcast-server/pkg/utils"
)

type NodeState string

const (
	NodeStateStarting     NodeState = "starting"
	NodeStateServing      NodeState = "serving"
	NodeStateShuttingDown NodeState = "shutting_down"
)

// NodeInfo is the externally visible description of this node.
type NodeInfo struct {
	ID        string                `json:"id"`
	IP        string                `json:"ip"`
	NumCPUs   uint32                `json:"numCpus"`
	State     NodeState             `json:"state"`
	StartedAt int64                 `json:"startedAt"`
	UpdatedAt int64                 `json:"updatedAt"`
	Stats     *prometheus.NodeStats `json:"stats,omitempty"`
}

type LocalNode struct {
	lock sync.RWMutex
	node NodeInfo
}

func NewLocalNode(conf *config.Config) (*LocalNode, error) {
	if conf.RTC.NodeIP == "" {
		return nil, ErrIPNotSet
	}
	nodeID := conf.NodeID
	if nodeID == "" {
		nodeID = utils.NewGuid(utils.NodePrefix)
	}
	now := time.Now().Unix()
	return &LocalNode{
		node: NodeInfo{
			ID:        nodeID,
			IP:        conf.RTC.NodeIP,
			NumCPUs:   uint32(runtime.NumCPU()),
			State:     NodeStateStarting,
			StartedAt: now,
			UpdatedAt: now,
		},
	}, nil
}

func (l *LocalNode) NodeID() string {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return l.node.ID
}

func (l *LocalNode) NodeIP() string {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return l.node.IP
}

func (l *LocalNode) State() NodeState {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return l.node.State
}

func (l *LocalNode) SetState(state NodeState) {
	l.lock.Lock()
	defer l.lock.Unlock()

	l.node.State = state
}

func (l *LocalNode) UpdateNodeStats() bool {
	stats, err := prometheus.GetNodeStats()
	if err != nil {
		logger.Errorw("could not update node stats", err)
		return false
	}

	l.lock.Lock()
	defer l.lock.Unlock()
	l.node.Stats = stats
	l.node.UpdatedAt = time.Now().Unix()
	return true
}

func (l *LocalNode) SecondsSinceNodeStatsUpdate() float64 {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return time.Since(time.Unix(l.node.UpdatedAt, 0)).Seconds()
}

// Info returns a copy of the node description.
func (l *LocalNode) Info() NodeInfo {
	l.lock.RLock()
	defer l.lock.RUnlock()

	info := l.node
	if l.node.Stats != nil {
		stats := *l.node.Stats
		info.Stats = &stats
	}
	return info
}
