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

package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/atomic"
)

type EscalationState string

const (
	EscalationScheduled EscalationState = "scheduled"
	EscalationFired     EscalationState = "fired"
	EscalationCanceled  EscalationState = "canceled"
	// timer fired but the consumer was closed, paused or no longer a screen consumer
	EscalationSkipped EscalationState = "skipped"
)

var (
	roomCurrent      atomic.Int32
	transportCurrent atomic.Int32
	producerCurrent  atomic.Int32
	consumerCurrent  atomic.Int32

	promRoomCurrent         prometheus.Gauge
	promRoomDuration        prometheus.Histogram
	promTransportCurrent    prometheus.Gauge
	promProducerCurrent     *prometheus.GaugeVec
	promConsumerCurrent     *prometheus.GaugeVec
	promEscalationCounter   *prometheus.CounterVec
	promGhostRepairCounter  *prometheus.CounterVec
	promCompensationCounter *prometheus.CounterVec
)

func initRoomStats(nodeID string) {
	promRoomCurrent = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   roomcastNamespace,
		Subsystem:   "room",
		Name:        "total",
		ConstLabels: prometheus.Labels{"node_id": nodeID},
	})
	promRoomDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace:   roomcastNamespace,
		Subsystem:   "room",
		Name:        "duration_seconds",
		ConstLabels: prometheus.Labels{"node_id": nodeID},
		Buckets: []float64{
			5, 10, 60, 5 * 60, 10 * 60, 30 * 60, 60 * 60, 2 * 60 * 60, 5 * 60 * 60, 10 * 60 * 60,
		},
	})
	promTransportCurrent = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   roomcastNamespace,
		Subsystem:   "transport",
		Name:        "total",
		ConstLabels: prometheus.Labels{"node_id": nodeID},
	})
	promProducerCurrent = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   roomcastNamespace,
		Subsystem:   "producer",
		Name:        "total",
		ConstLabels: prometheus.Labels{"node_id": nodeID},
	}, []string{"kind", "type"})
	promConsumerCurrent = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   roomcastNamespace,
		Subsystem:   "consumer",
		Name:        "total",
		ConstLabels: prometheus.Labels{"node_id": nodeID},
	}, []string{"kind", "type"})
	promEscalationCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   roomcastNamespace,
		Subsystem:   "consumer",
		Name:        "escalation",
		ConstLabels: prometheus.Labels{"node_id": nodeID},
	}, []string{"state"})
	promGhostRepairCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   roomcastNamespace,
		Subsystem:   "cache",
		Name:        "ghost_repair",
		ConstLabels: prometheus.Labels{"node_id": nodeID},
	}, []string{"resource"})
	promCompensationCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   roomcastNamespace,
		Subsystem:   "cache",
		Name:        "compensation",
		ConstLabels: prometheus.Labels{"node_id": nodeID},
	}, []string{"resource"})

	prometheus.MustRegister(promRoomCurrent)
	prometheus.MustRegister(promRoomDuration)
	prometheus.MustRegister(promTransportCurrent)
	prometheus.MustRegister(promProducerCurrent)
	prometheus.MustRegister(promConsumerCurrent)
	prometheus.MustRegister(promEscalationCounter)
	prometheus.MustRegister(promGhostRepairCounter)
	prometheus.MustRegister(promCompensationCounter)
}

func RoomStarted() {
	roomCurrent.Inc()
	if initialized.Load() {
		promRoomCurrent.Add(1)
	}
}

func RoomEnded(startedAt time.Time) {
	roomCurrent.Dec()
	if !initialized.Load() {
		return
	}
	if !startedAt.IsZero() {
		promRoomDuration.Observe(float64(time.Since(startedAt)) / float64(time.Second))
	}
	promRoomCurrent.Sub(1)
}

func AddTransport() {
	transportCurrent.Inc()
	if initialized.Load() {
		promTransportCurrent.Add(1)
	}
}

func SubTransport() {
	transportCurrent.Dec()
	if initialized.Load() {
		promTransportCurrent.Sub(1)
	}
}

func AddProducer(kind string, producerType string) {
	producerCurrent.Inc()
	if initialized.Load() {
		promProducerCurrent.WithLabelValues(kind, producerType).Add(1)
	}
}

func SubProducer(kind string, producerType string) {
	producerCurrent.Dec()
	if initialized.Load() {
		promProducerCurrent.WithLabelValues(kind, producerType).Sub(1)
	}
}

func AddConsumer(kind string, producerType string) {
	consumerCurrent.Inc()
	if initialized.Load() {
		promConsumerCurrent.WithLabelValues(kind, producerType).Add(1)
	}
}

func SubConsumer(kind string, producerType string) {
	consumerCurrent.Dec()
	if initialized.Load() {
		promConsumerCurrent.WithLabelValues(kind, producerType).Sub(1)
	}
}

func RecordEscalation(state EscalationState) {
	if initialized.Load() {
		promEscalationCounter.WithLabelValues(string(state)).Inc()
	}
}

func RecordGhostRepair(resource string) {
	if initialized.Load() {
		promGhostRepairCounter.WithLabelValues(resource).Inc()
	}
}

func RecordCompensation(resource string) {
	if initialized.Load() {
		promCompensationCounter.WithLabelValues(resource).Inc()
	}
}
