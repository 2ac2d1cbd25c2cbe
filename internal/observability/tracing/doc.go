// Package tracing provides OpenTelemetry tracing integration.
//
// Init installs an SDK tracer provider as the global provider; Middleware
// starts one server span per HTTP request, named after the matched route
// pattern, and echoes the trace ID in the X-Trace-Id response header.
//
// No exporter is configured by default. Spans still carry real trace IDs,
// which are attached to request logs for correlation.
package tracing
