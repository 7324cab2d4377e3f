package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "freshly",
		Name:      "delivery_requests_created_total",
		Help:      "Total delivery requests created by buyers",
	})
	RequestsAcceptedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "freshly",
		Name:      "delivery_requests_accepted_total",
		Help:      "Total delivery requests committed to a driver",
	})
	RequestsDeliveredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "freshly",
		Name:      "delivery_requests_delivered_total",
		Help:      "Total delivery requests marked delivered",
	})
	RequestsCancelledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "freshly",
		Name:      "delivery_requests_cancelled_total",
		Help:      "Total stale pending requests cancelled by the expiry job",
	})

	AdmissionRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "freshly",
			Name:      "admission_rejections_total",
			Help:      "Accept attempts rejected, by reason",
		},
		[]string{"reason"},
	)
)
