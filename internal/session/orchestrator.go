package session

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sant0-9/icebreak/internal/llm"
	"github.com/sant0-9/icebreak/internal/normalize"
	"github.com/sant0-9/icebreak/internal/prompts"
)

const (
	// LoadingText is shown while a request is pending.
	LoadingText = "🚀 Loading awesomeness..."

	// ErrorPrefix starts every failure message.
	ErrorPrefix = "❌ Oops! Something went wrong: "
)

// Selection is the context and persona chosen at activation time.
type Selection struct {
	Context prompts.ContextKey
	Persona prompts.PersonaKey
}

// Selector reports the current selector values.
type Selector interface {
	Selection() Selection
}

// SelectorFunc adapts a function to Selector.
type SelectorFunc func() Selection

func (f SelectorFunc) Selection() Selection { return f() }

// StaticSelector always returns the same selection.
type StaticSelector Selection

func (s StaticSelector) Selection() Selection { return Selection(s) }

// Ticket is one activation: the prompt as composed when the user pressed the
// button, plus identifiers for matching the outcome.
type Ticket struct {
	Generation uint64
	RequestID  string
	Kind       prompts.Kind
	Selection  Selection
	Prompt     string
}

// Outcome is the settled result of a ticket.
type Outcome struct {
	Ticket *Ticket
	Status Status
	Text   string
	Shape  normalize.Shape
	Err    error
}

// Orchestrator turns button activations into provider calls and writes the
// result to the surface.
type Orchestrator struct {
	mu       sync.RWMutex
	provider llm.Provider

	selector Selector
	surface  *Surface
	log      *zap.Logger

	latest atomic.Uint64
}

func New(provider llm.Provider, selector Selector, surface *Surface, log *zap.Logger) *Orchestrator {
	if log == nil {
		log = zap.NewNop()
	}
	if surface == nil {
		surface = NewSurface()
	}
	return &Orchestrator{
		provider: provider,
		selector: selector,
		surface:  surface,
		log:      log,
	}
}

func (o *Orchestrator) Surface() *Surface {
	return o.surface
}

func (o *Orchestrator) Provider() llm.Provider {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.provider
}

// SetProvider swaps the backend for subsequent tickets.
func (o *Orchestrator) SetProvider(p llm.Provider) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.provider = p
}

// Begin reads the selectors, composes the prompt and moves the surface to
// loading. Panics if kind is not a known kind.
func (o *Orchestrator) Begin(kind prompts.Kind) *Ticket {
	sel := o.selector.Selection()
	t := &Ticket{
		Generation: o.latest.Add(1),
		RequestID:  uuid.NewString(),
		Kind:       kind,
		Selection:  sel,
		Prompt:     prompts.Compose(kind, sel.Context, sel.Persona),
	}

	o.surface.Set(StatusLoading, LoadingText)
	o.log.Debug("request started",
		zap.String("request_id", t.RequestID),
		zap.Uint64("generation", t.Generation),
		zap.String("kind", string(kind)),
		zap.String("context", string(sel.Context)),
		zap.String("persona", string(sel.Persona)),
	)
	return t
}

// Execute sends the ticket's prompt once and normalizes the answer. It does
// not touch the surface.
func (o *Orchestrator) Execute(ctx context.Context, t *Ticket) Outcome {
	provider := o.Provider()
	if provider == nil {
		return Outcome{Ticket: t, Status: StatusFailed, Err: errors.New("no provider configured")}
	}

	resp, err := provider.Complete(ctx, llm.NewRequest("", t.Prompt))
	if err != nil {
		return Outcome{Ticket: t, Status: StatusFailed, Err: err}
	}

	res, err := normalize.Normalize(resp.Raw)
	if err != nil {
		return Outcome{Ticket: t, Status: StatusFailed, Err: err}
	}
	return Outcome{Ticket: t, Status: StatusSuccess, Text: res.Text, Shape: res.Shape}
}

// Apply writes the outcome to the surface. Outcomes from a ticket older than
// the latest Begin are dropped and Apply returns false.
func (o *Orchestrator) Apply(out Outcome) bool {
	t := out.Ticket
	fields := []zap.Field{
		zap.String("request_id", t.RequestID),
		zap.String("kind", string(t.Kind)),
		zap.String("context", string(t.Selection.Context)),
		zap.String("persona", string(t.Selection.Persona)),
		zap.String("provider", o.providerName()),
	}

	if t.Generation < o.latest.Load() {
		o.log.Debug("discarding stale response",
			append(fields, zap.Uint64("generation", t.Generation), zap.Uint64("latest", o.latest.Load()))...)
		return false
	}

	if out.Err != nil {
		o.log.Error("generation failed", append(fields, failureFields(t, out.Err)...)...)
		o.surface.Set(StatusFailed, UserMessage(out.Err))
		return true
	}

	o.log.Info("generation succeeded", append(fields, zap.Stringer("shape", out.Shape))...)
	o.surface.Set(StatusSuccess, out.Text)
	return true
}

// Run is Begin, Execute and Apply in sequence.
func (o *Orchestrator) Run(ctx context.Context, kind prompts.Kind) Outcome {
	t := o.Begin(kind)
	out := o.Execute(ctx, t)
	o.Apply(out)
	return out
}

// UserMessage is the text shown for a failed request.
func UserMessage(err error) string {
	return ErrorPrefix + err.Error()
}

func (o *Orchestrator) providerName() string {
	if p := o.Provider(); p != nil {
		return p.Name()
	}
	return ""
}

func failureFields(t *Ticket, err error) []zap.Field {
	fields := []zap.Field{zap.Error(err), zap.String("prompt", t.Prompt)}

	var te *llm.TransportError
	if errors.As(err, &te) {
		fields = append(fields, zap.Int("status", te.StatusCode), zap.String("body", te.Body))
	}
	var se *normalize.ShapeError
	if errors.As(err, &se) {
		fields = append(fields, zap.Any("raw", se.Raw))
	}
	return fields
}
