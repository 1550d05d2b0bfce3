// Package session runs generation requests and owns the text the user sees.
package session

import "sync"

// Status is the lifecycle state of the display surface.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Surface is the single display area shared by generation results and theme
// notices. Writes are last-write-wins.
type Surface struct {
	mu     sync.RWMutex
	status Status
	text   string
}

func NewSurface() *Surface {
	return &Surface{}
}

func (s *Surface) Set(status Status, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	s.text = text
}

func (s *Surface) Text() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.text
}

func (s *Surface) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Snapshot returns status and text read together.
func (s *Surface) Snapshot() (Status, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status, s.text
}
