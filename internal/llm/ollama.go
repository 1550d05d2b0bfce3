package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ollama/ollama/api"
)

const defaultOllamaHost = "http://localhost:11434"

// OllamaProvider uses the generate endpoint of a local Ollama instance.
type OllamaProvider struct {
	client *api.Client
	host   string
	model  string
}

func NewOllamaProvider(host, model string, timeout time.Duration) (*OllamaProvider, error) {
	if host == "" {
		host = defaultOllamaHost
	}
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	base, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("parsing ollama host URL: %w", err)
	}
	httpClient := &http.Client{Timeout: timeout}
	return &OllamaProvider{
		client: api.NewClient(base, httpClient),
		host:   host,
		model:  model,
	}, nil
}

func (o *OllamaProvider) Name() string {
	return "ollama"
}

func (o *OllamaProvider) Ping(ctx context.Context) error {
	if err := o.client.Heartbeat(ctx); err != nil {
		return fmt.Errorf("cannot connect to Ollama at %s: %w", o.host, err)
	}
	return nil
}

// Complete exposes the generate result as {"response": ..., "model": ...} so
// it flows through the same normalization as the HTTP backends.
func (o *OllamaProvider) Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error) {
	model := req.Model
	if model == "" {
		model = o.model
	}

	stream := false
	genReq := &api.GenerateRequest{
		Model:  model,
		Prompt: req.Prompt,
		Stream: &stream,
		Options: map[string]any{
			"temperature": req.Temperature,
			"num_predict": req.MaxTokens,
		},
	}

	var final api.GenerateResponse
	err := o.client.Generate(ctx, genReq, func(resp api.GenerateResponse) error {
		final = resp
		return nil
	})
	if err != nil {
		var statusErr api.StatusError
		if errors.As(err, &statusErr) {
			return nil, &TransportError{
				Provider:   o.Name(),
				StatusCode: statusErr.StatusCode,
				Body:       statusErr.ErrorMessage,
			}
		}
		return nil, &TransportError{Provider: o.Name(), Err: err}
	}

	raw := map[string]any{
		"response": final.Response,
		"model":    final.Model,
	}
	if final.DoneReason != "" {
		raw["done_reason"] = final.DoneReason
	}

	return &CompletionResponse{
		Raw:        raw,
		StatusCode: http.StatusOK,
		Model:      final.Model,
	}, nil
}
