package prometheus

import (
	"github.com/mackerelio/go-osstat/loadavg"
	"github.com/mackerelio/go-osstat/memory"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/atomic"
)

const (
	roomcastNamespace string = "roomcast"
)

var (
	initialized atomic.Bool

	ServiceOperationCounter *prometheus.CounterVec

	promWorkerCurrent prometheus.Gauge
	promCPULoadGauge  prometheus.Gauge
	promMemoryLoad    prometheus.Gauge
	promLoadAvgGauge  *prometheus.GaugeVec
	workerCurrent     atomic.Int32
)

func Init(nodeID string) {
	if initialized.Swap(true) {
		return
	}

	ServiceOperationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   roomcastNamespace,
			Subsystem:   "node",
			Name:        "service_operation",
			ConstLabels: prometheus.Labels{"node_id": nodeID},
		},
		[]string{"type", "status", "error_type"},
	)

	promWorkerCurrent = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   roomcastNamespace,
		Subsystem:   "worker",
		Name:        "total",
		ConstLabels: prometheus.Labels{"node_id": nodeID},
	})

	promCPULoadGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   roomcastNamespace,
		Subsystem:   "node",
		Name:        "cpu_load",
		ConstLabels: prometheus.Labels{"node_id": nodeID},
	})

	promMemoryLoad = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   roomcastNamespace,
		Subsystem:   "node",
		Name:        "memory_load",
		ConstLabels: prometheus.Labels{"node_id": nodeID},
	})

	promLoadAvgGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   roomcastNamespace,
		Subsystem:   "node",
		Name:        "load_avg",
		ConstLabels: prometheus.Labels{"node_id": nodeID},
	}, []string{"window"})

	prometheus.MustRegister(ServiceOperationCounter)
	prometheus.MustRegister(promWorkerCurrent)
	prometheus.MustRegister(promCPULoadGauge)
	prometheus.MustRegister(promMemoryLoad)
	prometheus.MustRegister(promLoadAvgGauge)

	promWorkerCurrent.Set(float64(workerCurrent.Load()))

	initPacketStats(nodeID)
	initRoomStats(nodeID)
}

func SetWorkerCount(n int) {
	workerCurrent.Store(int32(n))
	if initialized.Load() {
		promWorkerCurrent.Set(float64(n))
	}
}

func RecordServiceOperation(op string, status string, errorType string) {
	if !initialized.Load() {
		return
	}
	ServiceOperationCounter.WithLabelValues(op, status, errorType).Inc()
}

type NodeStats struct {
	NumWorkers       int32
	NumRooms         int32
	NumTransports    int32
	NumProducers     int32
	NumConsumers     int32
	BytesIn          uint64
	BytesOut         uint64
	PacketsIn        uint64
	PacketsOut       uint64
	NumCPUs          uint32
	CPULoad          float32
	MemoryLoad       float32
	MemoryUsed       uint64
	MemoryTotal      uint64
	LoadAvgLast1Min  float32
	LoadAvgLast5Min  float32
	LoadAvgLast15Min float32
}

func getMemoryStats() (memoryLoad float32, used uint64, total uint64, err error) {
	memInfo, err := memory.Get()
	if err != nil {
		return
	}

	used, total = memInfo.Used, memInfo.Total
	if memInfo.Total != 0 {
		memoryLoad = float32(memInfo.Used) / float32(memInfo.Total)
	}
	return
}

// GetNodeStats samples system load and the resource counters of this node and
// publishes the system figures to the node gauges.
func GetNodeStats() (*NodeStats, error) {
	loadAvg, err := loadavg.Get()
	if err != nil {
		// not supported on windows
		loadAvg = &loadavg.Stats{}
	}

	cpuLoad, numCPUs, err := getCPUStats()
	if err != nil {
		return nil, err
	}

	// memory stats are unavailable on some platforms, use them when present
	memoryLoad, used, total, _ := getMemoryStats()

	stats := &NodeStats{
		NumWorkers:       workerCurrent.Load(),
		NumRooms:         roomCurrent.Load(),
		NumTransports:    transportCurrent.Load(),
		NumProducers:     producerCurrent.Load(),
		NumConsumers:     consumerCurrent.Load(),
		BytesIn:          bytesIn.Load(),
		BytesOut:         bytesOut.Load(),
		PacketsIn:        packetsIn.Load(),
		PacketsOut:       packetsOut.Load(),
		NumCPUs:          numCPUs,
		CPULoad:          cpuLoad,
		MemoryLoad:       memoryLoad,
		MemoryUsed:       used,
		MemoryTotal:      total,
		LoadAvgLast1Min:  float32(loadAvg.Loadavg1),
		LoadAvgLast5Min:  float32(loadAvg.Loadavg5),
		LoadAvgLast15Min: float32(loadAvg.Loadavg15),
	}

	if initialized.Load() {
		promCPULoadGauge.Set(float64(cpuLoad))
		promMemoryLoad.Set(float64(memoryLoad))
		promLoadAvgGauge.WithLabelValues("1m").Set(loadAvg.Loadavg1)
		promLoadAvgGauge.WithLabelValues("5m").Set(loadAvg.Loadavg5)
		promLoadAvgGauge.WithLabelValues("15m").Set(loadAvg.Loadavg15)
	}

	return stats, nil
}
