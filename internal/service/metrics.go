package service

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics 关系查询指标
type Metrics struct {
	queries  *prometheus.CounterVec
	duration *prometheus.HistogramVec
	people   prometheus.Gauge
}

// NewMetrics 创建并注册指标，reg 为 nil 时不注册
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "familytree",
			Name:      "queries_total",
			Help:      "Relationship queries served, by relation and outcome.",
		}, []string{"relation", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "familytree",
			Name:      "query_duration_seconds",
			Help:      "Relationship query latency.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
		}, []string{"relation"}),
		people: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "familytree",
			Name:      "people",
			Help:      "People registered in the family tree.",
		}),
	}

	if reg != nil {
		reg.MustRegister(m.queries, m.duration, m.people)
	}
	return m
}

// Observe 记录一次查询
func (m *Metrics) Observe(relation string, start time.Time, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.queries.WithLabelValues(relation, outcome).Inc()
	m.duration.WithLabelValues(relation).Observe(time.Since(start).Seconds())
}

// SetPeople 更新成员数量
func (m *Metrics) SetPeople(n int) {
	if m == nil {
		return
	}
	m.people.Set(float64(n))
}
