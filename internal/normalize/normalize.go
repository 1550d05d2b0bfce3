// Package normalize extracts a display string from a generator response whose
// JSON shape depends on which backend answered.
//
// Known shapes are probed in a fixed order and the first match wins:
//
//	{"response": "..."}
//	{"message": "..."}
//	{"choices": [{"message": {"content": "..."}}]}
//	{"content": "..."}
package normalize

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Shape tags which of the known layouts produced the text.
type Shape int

const (
	ShapeResponse Shape = iota + 1
	ShapeMessage
	ShapeChoices
	ShapeContent
)

func (s Shape) String() string {
	switch s {
	case ShapeResponse:
		return "response"
	case ShapeMessage:
		return "message"
	case ShapeChoices:
		return "choices"
	case ShapeContent:
		return "content"
	default:
		return "unknown"
	}
}

// ErrUnrecognizedShape matches any *ShapeError via errors.Is.
var ErrUnrecognizedShape = errors.New("could not find response text in the data")

// ShapeError carries the value that matched no known shape.
type ShapeError struct {
	Raw any
}

func (e *ShapeError) Error() string {
	return ErrUnrecognizedShape.Error()
}

func (e *ShapeError) Is(target error) bool {
	return target == ErrUnrecognizedShape
}

type Result struct {
	Text  string
	Shape Shape
}

type probe struct {
	shape   Shape
	extract func(obj map[string]any) (string, bool)
}

var probes = []probe{
	{ShapeResponse, func(obj map[string]any) (string, bool) { return stringField(obj, "response") }},
	{ShapeMessage, func(obj map[string]any) (string, bool) { return stringField(obj, "message") }},
	{ShapeChoices, firstChoiceContent},
	{ShapeContent, func(obj map[string]any) (string, bool) { return stringField(obj, "content") }},
}

// Normalize returns the text of the first known shape raw satisfies.
// Empty strings count as absent.
func Normalize(raw any) (Result, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return Result{}, &ShapeError{Raw: raw}
	}

	for _, p := range probes {
		if text, ok := p.extract(obj); ok {
			return Result{Text: text, Shape: p.shape}, nil
		}
	}
	return Result{}, &ShapeError{Raw: raw}
}

// Decode parses a JSON body into the generic form Normalize expects.
func Decode(body []byte) (any, error) {
	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decoding response body: %w", err)
	}
	return raw, nil
}

func stringField(obj map[string]any, name string) (string, bool) {
	s, ok := obj[name].(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

func firstChoiceContent(obj map[string]any) (string, bool) {
	choices, ok := obj["choices"].([]any)
	if !ok || len(choices) == 0 {
		return "", false
	}
	first, ok := choices[0].(map[string]any)
	if !ok {
		return "", false
	}
	msg, ok := first["message"].(map[string]any)
	if !ok {
		return "", false
	}
	return stringField(msg, "content")
}
