// Package testhelpers provides shared test doubles for the classifier
// service.
package testhelpers

import (
	"context"
	"sync"

	"github.com/feedbacklens/classifier/internal/classifier"
)

// StubModel is a classifier.Model returning a fixed verdict or error.
// It records every inference call for assertions.
type StubModel struct {
	Verdict *classifier.ModelVerdict
	Err     error

	mu    sync.Mutex
	calls []string
}

// NewStubModel creates a stub that always answers with the given label
// and score.
func NewStubModel(label string, score float64) *StubModel {
	return &StubModel{
		Verdict: &classifier.ModelVerdict{
			Label:        label,
			Score:        score,
			ModelVersion: "stub-1",
		},
	}
}

// Infer returns the configured verdict or error and records the input.
func (s *StubModel) Infer(_ context.Context, text string) (*classifier.ModelVerdict, error) {
	s.mu.Lock()
	s.calls = append(s.calls, text)
	s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}
	return s.Verdict, nil
}

// Calls returns the texts passed to Infer, in call order.
func (s *StubModel) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.calls))
	copy(out, s.calls)
	return out
}

// CallCount returns how many times Infer was invoked.
func (s *StubModel) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}
