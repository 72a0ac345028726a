package api

import "sync"

//go:generate go run github.com/matryer/moq@latest -out mocks/reporter.go -pkg mocks . Reporter

// Reporter is the default sink for failures no call-specific handler
// consumed.
type Reporter interface {
	// Report records the descriptor, replacing any previous one.
	Report(d *ErrorDescriptor)

	// Clear empties the sink.
	Clear()
}

// ErrorStateSnapshot is a point-in-time copy of an ErrorState.
type ErrorStateSnapshot struct {
	// Message is nil when no error is recorded.
	Message     *string             `json:"message"`
	FieldErrors map[string][]string `json:"fieldErrors"`
}

// ErrorState is an in-memory Reporter holding only the latest unhandled
// failure. It is safe for concurrent use; the last write wins.
type ErrorState struct {
	mu          sync.RWMutex
	message     *string
	fieldErrors map[string][]string
	writes      int
}

// NewErrorState returns an empty ErrorState.
func NewErrorState() *ErrorState {
	return &ErrorState{}
}

// Report implements Reporter.
func (s *ErrorState) Report(d *ErrorDescriptor) {
	if d == nil {
		return
	}
	msg := d.Message

	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = &msg
	s.fieldErrors = copyFieldErrors(d.FieldErrors)
	s.writes++
}

// Clear implements Reporter.
func (s *ErrorState) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = nil
	s.fieldErrors = nil
}

// Snapshot returns a copy of the current state.
func (s *ErrorState) Snapshot() ErrorStateSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := ErrorStateSnapshot{FieldErrors: copyFieldErrors(s.fieldErrors)}
	if s.message != nil {
		msg := *s.message
		snap.Message = &msg
	}
	return snap
}

// Writes returns how many descriptors have been reported.
func (s *ErrorState) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}
