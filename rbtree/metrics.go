package rbtree

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	treeInserts = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "rbtree_inserts_total",
		Help: "The total number of elements inserted as new nodes",
	}, []string{"tree"})

	treeOverwrites = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "rbtree_overwrites_total",
		Help: "The total number of elements replaced in place",
	}, []string{"tree"})

	treeRemovals = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "rbtree_removals_total",
		Help: "The total number of elements removed",
	}, []string{"tree"})

	treeRotations = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "rbtree_rotations_total",
		Help: "The total number of rotations performed while rebalancing",
	}, []string{"tree"})

	treeElements = promauto.NewGaugeVec(prometheus.GaugeOpts{ //nolint:gochecknoglobals
		Name: "rbtree_elements",
		Help: "The number of elements currently stored",
	}, []string{"tree"})
)

// treeMetrics holds the label-bound series of one named tree. A nil
// *treeMetrics (unnamed tree) records nothing.
type treeMetrics struct {
	inserts    prometheus.Counter
	overwrites prometheus.Counter
	removals   prometheus.Counter
	rotations  prometheus.Counter
	elements   prometheus.Gauge
}

func newTreeMetrics(name string) *treeMetrics {
	if name == "" {
		return nil
	}

	slog.Debug("Registering red-black tree metrics", "tree", name)

	return &treeMetrics{
		inserts:    treeInserts.WithLabelValues(name),
		overwrites: treeOverwrites.WithLabelValues(name),
		removals:   treeRemovals.WithLabelValues(name),
		rotations:  treeRotations.WithLabelValues(name),
		elements:   treeElements.WithLabelValues(name),
	}
}

func (m *treeMetrics) insert(size int) {
	if m == nil {
		return
	}

	m.inserts.Inc()
	m.elements.Set(float64(size))
}

func (m *treeMetrics) overwrite() {
	if m == nil {
		return
	}

	m.overwrites.Inc()
}

func (m *treeMetrics) removal(size int) {
	if m == nil {
		return
	}

	m.removals.Inc()
	m.elements.Set(float64(size))
}

func (m *treeMetrics) rotation() {
	if m == nil {
		return
	}

	m.rotations.Inc()
}

func (m *treeMetrics) setElements(size int) {
	if m == nil {
		return
	}

	m.elements.Set(float64(size))
}
