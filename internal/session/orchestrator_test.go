package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/sant0-9/icebreak/internal/llm"
	"github.com/sant0-9/icebreak/internal/normalize"
	"github.com/sant0-9/icebreak/internal/prompts"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeProvider struct {
	mu      sync.Mutex
	prompts []string
	raw     any
	err     error
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Ping(ctx context.Context) error { return nil }

func (f *fakeProvider) Complete(ctx context.Context, req *llm.CompletionRequest) (*llm.CompletionResponse, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, req.Prompt)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return &llm.CompletionResponse{Raw: f.raw, StatusCode: 200}, nil
}

func (f *fakeProvider) lastPrompt() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.prompts) == 0 {
		return ""
	}
	return f.prompts[len(f.prompts)-1]
}

func newObserved(t *testing.T, p llm.Provider, sel Selector) (*Orchestrator, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	return New(p, sel, NewSurface(), zap.New(core)), logs
}

func TestRunSuccess(t *testing.T) {
	p := &fakeProvider{raw: map[string]any{"response": "What's your go-to karaoke song?"}}
	o, logs := newObserved(t, p, StaticSelector{Context: prompts.ContextParty, Persona: prompts.PersonaSassy})

	out := o.Run(context.Background(), prompts.KindIcebreaker)
	require.NoError(t, out.Err)

	assert.Equal(t, StatusSuccess, out.Status)
	assert.Equal(t, normalize.ShapeResponse, out.Shape)
	assert.Equal(t, StatusSuccess, o.Surface().Status())
	assert.Equal(t, "What's your go-to karaoke song?", o.Surface().Text())
	assert.Equal(t,
		prompts.Compose(prompts.KindIcebreaker, prompts.ContextParty, prompts.PersonaSassy),
		p.lastPrompt())

	entries := logs.FilterMessage("generation succeeded").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "party", fields["context"])
	assert.Equal(t, "sassy", fields["persona"])
	assert.Equal(t, "fake", fields["provider"])
	assert.NotEmpty(t, fields["request_id"])
}

func TestRunChoicesShape(t *testing.T) {
	p := &fakeProvider{raw: map[string]any{
		"choices": []any{map[string]any{"message": map[string]any{"content": "Octopuses have three hearts."}}},
	}}
	o, _ := newObserved(t, p, StaticSelector{})

	out := o.Run(context.Background(), prompts.KindFact)
	require.NoError(t, out.Err)
	assert.Equal(t, "Octopuses have three hearts.", o.Surface().Text())
}

func TestRunTransportFailure(t *testing.T) {
	p := &fakeProvider{err: &llm.TransportError{Provider: "fake", StatusCode: 500, Body: "boom"}}
	o, logs := newObserved(t, p, StaticSelector{})

	out := o.Run(context.Background(), prompts.KindJoke)
	require.Error(t, out.Err)

	assert.Equal(t, StatusFailed, o.Surface().Status())
	text := o.Surface().Text()
	assert.True(t, strings.HasPrefix(text, ErrorPrefix))
	assert.Contains(t, text, "500")

	entries := logs.FilterMessage("generation failed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, 500, fields["status"])
	assert.Equal(t, "boom", fields["body"])
}

func TestRunUnrecognizedShape(t *testing.T) {
	p := &fakeProvider{raw: map[string]any{"foo": "bar"}}
	o, logs := newObserved(t, p, StaticSelector{})

	out := o.Run(context.Background(), prompts.KindWeather)
	require.Error(t, out.Err)
	assert.ErrorIs(t, out.Err, normalize.ErrUnrecognizedShape)

	assert.Equal(t, ErrorPrefix+"could not find response text in the data", o.Surface().Text())

	entries := logs.FilterMessage("generation failed").All()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].ContextMap(), "raw")
}

func TestRunNoProvider(t *testing.T) {
	o, _ := newObserved(t, nil, StaticSelector{})
	out := o.Run(context.Background(), prompts.KindJoke)
	require.Error(t, out.Err)
	assert.Equal(t, StatusFailed, o.Surface().Status())
}

func TestBeginSetsLoading(t *testing.T) {
	o, _ := newObserved(t, &fakeProvider{}, StaticSelector{})

	t1 := o.Begin(prompts.KindJoke)
	assert.Equal(t, StatusLoading, o.Surface().Status())
	assert.Equal(t, LoadingText, o.Surface().Text())

	t2 := o.Begin(prompts.KindJoke)
	assert.Greater(t, t2.Generation, t1.Generation)
	assert.NotEqual(t, t1.RequestID, t2.RequestID)
}

func TestSelectionReadAtBegin(t *testing.T) {
	var mu sync.Mutex
	current := Selection{Context: prompts.ContextClassroom, Persona: prompts.PersonaProfessor}
	sel := SelectorFunc(func() Selection {
		mu.Lock()
		defer mu.Unlock()
		return current
	})

	p := &fakeProvider{raw: map[string]any{"content": "ok"}}
	o, _ := newObserved(t, p, sel)

	ticket := o.Begin(prompts.KindJoke)

	mu.Lock()
	current = Selection{Context: prompts.ContextParty, Persona: prompts.PersonaZen}
	mu.Unlock()

	o.Apply(o.Execute(context.Background(), ticket))

	want := prompts.PersonaInstruction(prompts.PersonaProfessor) + " " +
		prompts.ContextInstruction(prompts.ContextClassroom) + " " +
		prompts.TaskInstruction(prompts.KindJoke)
	assert.Equal(t, want, p.lastPrompt())
}

func TestStaleOutcomeDiscarded(t *testing.T) {
	p := &fakeProvider{raw: map[string]any{"response": "first"}}
	o, logs := newObserved(t, p, StaticSelector{})

	older := o.Begin(prompts.KindFact)
	newer := o.Begin(prompts.KindJoke)

	assert.True(t, o.Apply(Outcome{Ticket: newer, Status: StatusSuccess, Text: "newer"}))
	assert.False(t, o.Apply(Outcome{Ticket: older, Status: StatusSuccess, Text: "older"}))
	assert.False(t, o.Apply(Outcome{Ticket: older, Status: StatusFailed, Err: errors.New("late failure")}))

	assert.Equal(t, "newer", o.Surface().Text())
	assert.Equal(t, 2, logs.FilterMessage("discarding stale response").Len())
}

func TestConcurrentRuns(t *testing.T) {
	p := &fakeProvider{raw: map[string]any{"message": "hello"}}
	o, _ := newObserved(t, p, StaticSelector{})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			o.Run(context.Background(), prompts.KindIcebreaker)
		}()
	}
	wg.Wait()

	assert.Equal(t, "hello", o.Surface().Text())
	assert.Equal(t, StatusSuccess, o.Surface().Status())
}

func TestUserMessage(t *testing.T) {
	err := &llm.TransportError{StatusCode: 429}
	assert.Equal(t, "❌ Oops! Something went wrong: server responded with status 429", UserMessage(err))
}

func TestSetProvider(t *testing.T) {
	o, _ := newObserved(t, &fakeProvider{raw: map[string]any{"response": "a"}}, StaticSelector{})
	o.SetProvider(&fakeProvider{raw: map[string]any{"response": "b"}})

	o.Run(context.Background(), prompts.KindJoke)
	assert.Equal(t, "b", o.Surface().Text())
}
