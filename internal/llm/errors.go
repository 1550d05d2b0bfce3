package llm

import (
	"fmt"
	"io"
	"strings"
)

const errorBodyLimit = 4 << 10

// TransportError covers network failures, non-2xx statuses and undecodable
// bodies. StatusCode is zero when no HTTP response was received.
type TransportError struct {
	Provider   string
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("server responded with status %d", e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("%s request failed", e.Provider)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func readErrorBody(r io.Reader) string {
	body, _ := io.ReadAll(io.LimitReader(r, errorBodyLimit))
	return strings.TrimSpace(string(body))
}
