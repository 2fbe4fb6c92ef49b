package logger

import "sync/atomic"

// AccessSink is the process-wide switch for access-log emission. The
// suppression middleware disables it around calls to high-frequency polling
// endpoints so they do not dominate log volume.
//
// The switch is shared across in-flight requests: a non-suppressed request
// running concurrently with a suppressed one can have its access log
// transiently muted, and vice versa. That imprecision is accepted; the sink
// is the only cross-request shared-mutation point in the server and no
// locking is applied beyond the atomic itself.
type AccessSink struct {
	disabled atomic.Bool
}

// NewAccessSink returns an enabled sink.
func NewAccessSink() *AccessSink {
	return &AccessSink{}
}

// Enable turns access-log emission back on.
func (s *AccessSink) Enable() error {
	s.disabled.Store(false)

	return nil
}

// Disable mutes access-log emission.
func (s *AccessSink) Disable() error {
	s.disabled.Store(true)

	return nil
}

// Enabled reports whether access logs are currently emitted.
func (s *AccessSink) Enabled() bool {
	return !s.disabled.Load()
}
