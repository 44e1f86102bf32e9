package service

import "time"

// MetricsRecorder receives business measurements from the use case layer.
type MetricsRecorder interface {
	RecordToggle(outcome string)
	ObserveProximityQuery(strategy string, elapsed time.Duration)
	RecordCacheLookup(operation, result string)
}
