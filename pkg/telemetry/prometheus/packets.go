package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/atomic"
)

type Direction string

const (
	Incoming Direction = "incoming"
	Outgoing Direction = "outgoing"
)

var (
	bytesIn    atomic.Uint64
	bytesOut   atomic.Uint64
	packetsIn  atomic.Uint64
	packetsOut atomic.Uint64

	promPacketLabels = []string{"direction"}

	promPacketTotal *prometheus.CounterVec
	promPacketBytes *prometheus.CounterVec
	promPliTotal    *prometheus.CounterVec
)

func initPacketStats(nodeID string) {
	promPacketTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   roomcastNamespace,
		Subsystem:   "packet",
		Name:        "total",
		ConstLabels: prometheus.Labels{"node_id": nodeID},
	}, promPacketLabels)
	promPacketBytes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   roomcastNamespace,
		Subsystem:   "packet",
		Name:        "bytes",
		ConstLabels: prometheus.Labels{"node_id": nodeID},
	}, promPacketLabels)
	promPliTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   roomcastNamespace,
		Subsystem:   "pli",
		Name:        "total",
		ConstLabels: prometheus.Labels{"node_id": nodeID},
	}, promPacketLabels)

	prometheus.MustRegister(promPacketTotal)
	prometheus.MustRegister(promPacketBytes)
	prometheus.MustRegister(promPliTotal)
}

// IncrementPackets records count packets carrying size bytes in total.
func IncrementPackets(direction Direction, count uint64, size uint64) {
	if direction == Incoming {
		packetsIn.Add(count)
		bytesIn.Add(size)
	} else {
		packetsOut.Add(count)
		bytesOut.Add(size)
	}
	if !initialized.Load() {
		return
	}
	promPacketTotal.WithLabelValues(string(direction)).Add(float64(count))
	promPacketBytes.WithLabelValues(string(direction)).Add(float64(size))
}

func IncrementPLI(direction Direction) {
	if !initialized.Load() {
		return
	}
	promPliTotal.WithLabelValues(string(direction)).Inc()
}
