// Package metrics provides the Prometheus metrics of the news portal API.
//
// This package centralizes:
//   - HTTP request metrics (count, duration, sizes, in-flight)
//   - Business metrics (articles created, article views, subscriptions, totals)
//   - Storage metrics (degraded reads, circuit breaker state)
//   - Authentication metrics (login attempts by outcome)
//
// All metrics are registered with the Prometheus default registry and
// exposed via the /metrics endpoint.
package metrics
