// Package metrics instruments SID: a Prometheus counter set for a live
// --metrics-addr exporter, and an append-only CSV row format for offline
// experiment comparisons.
package metrics
