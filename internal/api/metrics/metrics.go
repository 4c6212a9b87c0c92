// Package metrics defines all custom Prometheus metrics for the staffdesk
// API. It is the single source of truth for metric names, labels, and help
// strings. Metrics register themselves with the default registry via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "staffdesk"

// LoginsTotal counts authentication attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// UsersCreatedTotal counts staff accounts created by admins.
// Label:
//   - role: "ADMIN" or "USER"
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of staff accounts created, by role.",
	},
	[]string{"role"},
)

// ShiftsCreatedTotal counts shift assignments.
var ShiftsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shifts_created_total",
		Help:      "Total number of shifts assigned.",
	},
)

// MessagesCreatedTotal counts messages sent to the admin inbox.
var MessagesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_created_total",
		Help:      "Total number of messages created.",
	},
)

// UploadsTotal counts file uploads.
// Label:
//   - result: "success", "blob_error" (object storage write failed) or
//     "metadata_error" (store write failed after the blob was written)
var UploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of upload attempts, by result.",
	},
	[]string{"result"},
)

// UploadBytesTotal sums the payload size of successful uploads.
var UploadBytesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upload_bytes_total",
		Help:      "Total bytes written to object storage by successful uploads.",
	},
)
