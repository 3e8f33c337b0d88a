package prometheus

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/slok/tasks/internal/metrics"
)

const prefix = "tasks"

// RecorderConfig is the configuration of the Prometheus recorder.
type RecorderConfig struct {
	Registry prometheus.Registerer
}

func (c *RecorderConfig) defaults() error {
	if c.Registry == nil {
		c.Registry = prometheus.DefaultRegisterer
	}
	return nil
}

// Recorder is the Prometheus implementation of metrics.Recorder.
type Recorder struct {
	storeOpsTotal   *prometheus.CounterVec
	storeOpDuration *prometheus.HistogramVec
	collectionSize  prometheus.Gauge
}

var _ metrics.Recorder = &Recorder{}

// NewRecorder returns a new Prometheus recorder with its metrics registered.
func NewRecorder(cfg RecorderConfig) (*Recorder, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	r := &Recorder{
		storeOpsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: prefix,
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Total number of task store operations.",
		}, []string{"op", "success"}),

		storeOpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: prefix,
			Subsystem: "store",
			Name:      "operation_duration_seconds",
			Help:      "Duration of task store operations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),

		collectionSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: prefix,
			Subsystem: "collection",
			Name:      "size",
			Help:      "Number of tasks in the collection.",
		}),
	}

	for _, c := range []prometheus.Collector{r.storeOpsTotal, r.storeOpDuration, r.collectionSize} {
		if err := cfg.Registry.Register(c); err != nil {
			return nil, fmt.Errorf("could not register metric: %w", err)
		}
	}

	return r, nil
}

// ObserveTaskStoreOp satisfies metrics.Recorder interface.
func (r *Recorder) ObserveTaskStoreOp(_ context.Context, op string, success bool, duration time.Duration) {
	r.storeOpsTotal.WithLabelValues(op, strconv.FormatBool(success)).Inc()
	r.storeOpDuration.WithLabelValues(op).Observe(duration.Seconds())
}

// SetTaskCount satisfies metrics.Recorder interface.
func (r *Recorder) SetTaskCount(_ context.Context, n int) {
	r.collectionSize.Set(float64(n))
}
