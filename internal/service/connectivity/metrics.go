package connectivity

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OnlineGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "connectivity_online",
			Help: "1 if the last reachability check succeeded, 0 otherwise",
		},
	)

	ChecksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "connectivity_checks_total",
			Help: "Total number of reachability checks by result",
		},
		[]string{"result"},
	)
)
