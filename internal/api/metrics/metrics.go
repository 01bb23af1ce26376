// Package metrics defines and registers all custom Prometheus metrics for
// the blog API. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "blogapi"

// PostsCreatedTotal counts successfully created posts.
// Label:
//   - category: the post category
var PostsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_created_total",
		Help:      "Total number of posts created, by category.",
	},
	[]string{"category"},
)

// AssetsUploadedTotal counts successful image uploads to the blob store.
// Label:
//   - kind: "post", "event", or "profile"
var AssetsUploadedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assets_uploaded_total",
		Help:      "Total number of images uploaded to the blob store.",
	},
	[]string{"kind"},
)

// BlobDeletesTotal counts remote object deletions.
// Label:
//   - outcome: "ok", "not_found", or "error"
var BlobDeletesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "blob_deletes_total",
		Help:      "Total number of blob delete attempts, by outcome.",
	},
	[]string{"outcome"},
)

// AuthFailuresTotal counts rejected login attempts.
// Label:
//   - reason: "unknown_email" or "bad_password"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of failed login attempts, by reason.",
	},
	[]string{"reason"},
)

// UserCascadeDuration measures end-to-end duration of a cascading user
// delete, from the initial fetch to the final record removal.
var UserCascadeDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "user_cascade_duration_seconds",
		Help:      "Duration of cascading user deletions.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
)
