// Package observability groups the logging, metrics and tracing
// infrastructure of the news portal API.
//
// Subpackages:
//   - logging: slog construction and request-scoped loggers
//   - metrics: Prometheus HTTP, auth and business metrics
//   - tracing: OpenTelemetry tracer provider and HTTP server spans
package observability
