// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// MetricsRecorder receives operational measurements from use cases and middleware.
type MetricsRecorder interface {
	// RecordOperation counts a use case execution and observes its duration.
	RecordOperation(operation string, err error, duration time.Duration)

	// RecordHTTPRequest counts a served request and observes its duration.
	RecordHTTPRequest(method, route string, status int, duration time.Duration)

	// RecordIdempotentReplay counts a create answered from a previously completed key.
	RecordIdempotentReplay()
}

// NoopMetrics discards every measurement.
type NoopMetrics struct{}

func (NoopMetrics) RecordOperation(string, error, time.Duration) {}
func (NoopMetrics) RecordHTTPRequest(string, string, int, time.Duration) {}
func (NoopMetrics) RecordIdempotentReplay() {}
