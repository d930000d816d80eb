// Trackrec - Track Recommendation Service
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/resonantlabs/trackrec

// Package metrics registers the Prometheus collectors this service
// exposes: HTTP request latency/throughput, Result Cache hit/miss, CF
// candidate-survivor counts, and resource load-state gauges. All
// collectors are package-level vars registered via promauto at import
// time, exactly as the teacher's internal/metrics does.
package metrics
