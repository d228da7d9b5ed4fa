package datasource

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "daybar",
		Subsystem: "cache",
		Name:      "hits_total",
		Help:      "日线缓存命中次数",
	}, []string{"kind"})

	cacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "daybar",
		Subsystem: "cache",
		Name:      "misses_total",
		Help:      "日线缓存未命中次数",
	}, []string{"kind"})

	queriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "daybar",
		Subsystem: "datasource",
		Name:      "queries_total",
		Help:      "各查询入口的调用次数",
	}, []string{"op"})
)
