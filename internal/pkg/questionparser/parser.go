// Package questionparser turns raw model output into validated questions.
//
// Parsing happens in two phases. The decode phase strips a markdown fence
// wrapper and decodes the text into a generic JSON tree that must be an
// array. The shape phase projects every element into an
// entity.GeneratedQuestion according to the generation mode. Both phases
// report failures as *Error wrapping entity.ErrMalformedGenerationOutput.
package questionparser

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/leandroquiroga/interview-platform-ai/internal/entity"
)

type Phase string

const (
	PhaseDecode Phase = "decode"
	PhaseShape  Phase = "shape"
)

const (
	keyQuestion = "question"
	keyAnswer   = "answer"
)

// Error describes why model output was rejected.
// Index is the offending element for shape errors and -1 otherwise.
type Error struct {
	Phase  Phase
	Index  int
	Reason string
}

func (e *Error) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s: %s phase: element %d: %s", entity.ErrMalformedGenerationOutput, e.Phase, e.Index, e.Reason)
	}
	return fmt.Sprintf("%s: %s phase: %s", entity.ErrMalformedGenerationOutput, e.Phase, e.Reason)
}

func (e *Error) Unwrap() error {
	return entity.ErrMalformedGenerationOutput
}

// AsError extracts the parser error from err, if any
func AsError(err error) (*Error, bool) {
	var pe *Error
	ok := errors.As(err, &pe)
	return pe, ok
}

var fenceRe = regexp.MustCompile("(?s)^```[\\w-]*\\s*(.*?)\\s*```$")

// Parse validates raw against the element shape of mode and returns the
// questions in the order the model produced them.
func Parse(raw string, mode entity.GenerationMode) ([]entity.GeneratedQuestion, error) {
	items, err := decode(raw)
	if err != nil {
		return nil, err
	}

	questions := make([]entity.GeneratedQuestion, 0, len(items))
	for i, item := range items {
		q, err := project(item, mode)
		if err != nil {
			return nil, &Error{Phase: PhaseShape, Index: i, Reason: err.Error()}
		}
		questions = append(questions, q)
	}

	return questions, nil
}

// StripFence removes surrounding whitespace and a single ```lang ... ``` wrapper.
func StripFence(raw string) string {
	text := strings.TrimSpace(raw)
	if m := fenceRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return text
}

func decode(raw string) ([]any, error) {
	text := StripFence(raw)
	if text == "" {
		return nil, &Error{Phase: PhaseDecode, Index: -1, Reason: "empty output"}
	}

	var tree any
	if err := json.Unmarshal([]byte(text), &tree); err != nil {
		return nil, &Error{Phase: PhaseDecode, Index: -1, Reason: err.Error()}
	}

	items, ok := tree.([]any)
	if !ok {
		return nil, &Error{Phase: PhaseDecode, Index: -1, Reason: fmt.Sprintf("expected array, got %s", kind(tree))}
	}
	if len(items) == 0 {
		return nil, &Error{Phase: PhaseDecode, Index: -1, Reason: "empty array"}
	}

	return items, nil
}

func project(item any, mode entity.GenerationMode) (entity.GeneratedQuestion, error) {
	if !mode.HasAnswers() {
		question, err := text(item)
		if err != nil {
			return entity.GeneratedQuestion{}, err
		}
		return entity.NewQuestion(question), nil
	}

	obj, ok := item.(map[string]any)
	if !ok {
		return entity.GeneratedQuestion{}, fmt.Errorf("expected object, got %s", kind(item))
	}
	if len(obj) != 2 {
		return entity.GeneratedQuestion{}, fmt.Errorf("expected exactly keys %q and %q, got %d keys", keyQuestion, keyAnswer, len(obj))
	}

	question, err := field(obj, keyQuestion)
	if err != nil {
		return entity.GeneratedQuestion{}, err
	}
	answer, err := field(obj, keyAnswer)
	if err != nil {
		return entity.GeneratedQuestion{}, err
	}

	return entity.NewQuestionWithAnswer(question, answer), nil
}

func field(obj map[string]any, key string) (string, error) {
	v, ok := obj[key]
	if !ok {
		return "", fmt.Errorf("missing key %q", key)
	}
	s, err := text(v)
	if err != nil {
		return "", fmt.Errorf("key %q: %w", key, err)
	}
	return s, nil
}

func text(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("expected string, got %s", kind(v))
	}
	s = Sanitize(s)
	if s == "" {
		return "", errors.New("empty text")
	}
	return s, nil
}

// Sanitize drops backticks, turns control characters into spaces and
// collapses whitespace runs.
func Sanitize(s string) string {
	s = strings.Map(func(r rune) rune {
		switch {
		case r == '`':
			return -1
		case unicode.IsControl(r):
			return ' '
		default:
			return r
		}
	}, s)

	return strings.Join(strings.Fields(s), " ")
}

func kind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
