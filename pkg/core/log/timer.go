package log

import (
	"time"
)

// Timer measures the duration of an operation and logs it when stopped
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	stopped   bool
}

// NewTimer creates and starts a timer
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
	}
}

// WithField adds a field to the completion entry
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the elapsed time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop stops the timer and logs the elapsed time
func (t *Timer) Stop() time.Duration {
	if t.stopped {
		return 0
	}
	elapsed := t.Elapsed()
	t.stopped = true

	if t.logger != nil {
		t.logger.log(LevelDebug, t.operation+" completed", nil, t.completion(elapsed, nil))
	}
	return elapsed
}

// StopWithError stops the timer and logs err at warn level
func (t *Timer) StopWithError(err error) time.Duration {
	if t.stopped {
		return 0
	}
	elapsed := t.Elapsed()
	t.stopped = true

	if t.logger != nil {
		t.logger.WarnWithErr(t.operation+" failed", err, t.completion(elapsed, Fields{"success": false}))
	}
	return elapsed
}

// completion collects the timer's fields plus operation and duration in milliseconds
func (t *Timer) completion(elapsed time.Duration, extra Fields) Fields {
	fields := make(Fields, len(t.fields)+len(extra)+2)
	for k, v := range t.fields {
		fields[k] = v
	}
	for k, v := range extra {
		fields[k] = v
	}
	fields["operation"] = t.operation
	fields["duration_ms"] = float64(elapsed.Nanoseconds()) / 1e6
	return fields
}
