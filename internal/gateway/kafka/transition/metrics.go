package transition

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var notificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "transition_notifications_total",
		Help: "Transition events handed to the broker, by kind and result",
	},
	[]string{"kind", "result"},
)
