package mocks

import (
	"sync"

	"hotel/infras/otel"
)

// Scope records what the code under test traced.
type Scope struct {
	mu         sync.Mutex
	Name       string
	Errors     []error
	Events     []string
	Attributes map[string]any
	Ended      bool
}

var _ otel.Scope = (*Scope)(nil)

func (s *Scope) AddEvent(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Events = append(s.Events, name)
}

func (s *Scope) End() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Ended = true
}

func (s *Scope) SetAttribute(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Attributes[key] = value
}

func (s *Scope) SetAttributes(attributes map[string]any) {
	for key, value := range attributes {
		s.SetAttribute(key, value)
	}
}

func (s *Scope) TraceError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Errors = append(s.Errors, err)
}

func (s *Scope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func NewScope(name string) *Scope {
	return &Scope{
		Name:       name,
		Attributes: map[string]any{},
	}
}
