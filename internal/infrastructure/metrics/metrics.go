// Package metrics registers the service's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TransfersProcessed counts transfer outcomes by reason.
	TransfersProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bankcore_transfers_total",
			Help: "Total number of transfer operations by outcome reason",
		},
		[]string{"reason"},
	)

	// TransferAmount observes applied transfer amounts.
	TransferAmount = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "bankcore_transfer_amount",
		Help:    "Applied transfer amounts",
		Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
	})

	// NotificationsDelivered counts successful notification deliveries.
	NotificationsDelivered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bankcore_notifications_delivered_total",
		Help: "Total number of notifications delivered",
	})

	// NotificationsFailed counts failed delivery attempts.
	NotificationsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bankcore_notifications_failed_total",
		Help: "Total number of failed notification deliveries",
	})

	// NotificationsDropped counts notifications dropped on a full queue.
	NotificationsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bankcore_notifications_dropped_total",
		Help: "Total number of notifications dropped before delivery",
	})
)
