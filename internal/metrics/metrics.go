// Package metrics provides a small instrumentation surface with a no-op
// default and an optional Prometheus-backed implementation.
package metrics

import (
	"sync"
	"time"
)

// Lookup outcomes.
const (
	ResultFound    = "found"
	ResultNotFound = "not_found"
	ResultInvalid  = "invalid"
)

// Recorder defines the metrics used across the codebase.
type Recorder interface {
	IncLookup(event, result string)
	ObserveBuildSeconds(event string, seconds float64)
	IncHTTPRequest(method, route string, status int)
}

type noopRecorder struct{}

func (noopRecorder) IncLookup(string, string)            {}
func (noopRecorder) ObserveBuildSeconds(string, float64) {}
func (noopRecorder) IncHTTPRequest(string, string, int)  {}

var (
	recMu    sync.RWMutex
	recorder Recorder = noopRecorder{}
)

// Default returns the current recorder.
func Default() Recorder {
	recMu.RLock()
	defer recMu.RUnlock()
	return recorder
}

// SetRecorder swaps the global recorder implementation.
func SetRecorder(r Recorder) {
	recMu.Lock()
	defer recMu.Unlock()
	recorder = r
}

// TimeBuild times a graph build for an event and records its outcome on rec.
func TimeBuild(rec Recorder, event string) func(result string) {
	start := time.Now()
	return func(result string) {
		rec.IncLookup(event, result)
		if result == ResultFound {
			rec.ObserveBuildSeconds(event, time.Since(start).Seconds())
		}
	}
}
