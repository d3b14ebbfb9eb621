// Package schedmetrics instruments the orchestrator with Prometheus counters
// and histograms around cluster solves and emitted events, grounded in the
// descheduler pack entry's own use of client_golang for scheduling metrics.
package schedmetrics
