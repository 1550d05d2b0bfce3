package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/sant0-9/icebreak/internal/normalize"
)

// WorkerProvider posts {"prompt": ...} to a single endpoint that fronts a
// chat model and answers with JSON of varying shape.
type WorkerProvider struct {
	endpoint   string
	httpClient *http.Client
}

func NewWorkerProvider(endpoint string, timeout time.Duration) *WorkerProvider {
	if timeout <= 0 {
		timeout = time.Minute
	}
	return &WorkerProvider{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (w *WorkerProvider) Name() string {
	return "worker"
}

// Ping treats any HTTP answer as reachable; workers often reject HEAD.
func (w *WorkerProvider) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, w.endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return &TransportError{Provider: w.Name(), Err: err}
	}
	resp.Body.Close()
	return nil
}

type workerRequest struct {
	Prompt string `json:"prompt"`
}

func (w *WorkerProvider) Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error) {
	body, err := json.Marshal(workerRequest{Prompt: req.Prompt})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, w.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Provider: w.Name(), Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Provider: w.Name(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{
			Provider:   w.Name(),
			StatusCode: resp.StatusCode,
			Body:       readErrorBody(resp.Body),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Provider: w.Name(), Err: err}
	}
	raw, err := normalize.Decode(data)
	if err != nil {
		return nil, &TransportError{Provider: w.Name(), Body: truncateBody(data), Err: err}
	}

	return &CompletionResponse{
		Raw:        raw,
		StatusCode: resp.StatusCode,
	}, nil
}

func truncateBody(data []byte) string {
	if len(data) > errorBodyLimit {
		data = data[:errorBodyLimit]
	}
	return string(bytes.TrimSpace(data))
}
