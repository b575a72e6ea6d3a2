package mocks

import (
	"context"
	"sync"

	"hotel/infras/otel"
)

// Otel hands out recording scopes and keeps them in creation order.
type Otel struct {
	mu     sync.Mutex
	scopes []*Scope
}

var _ otel.Otel = (*Otel)(nil)

func (o *Otel) NewScope(ctx context.Context, _, name string) (context.Context, otel.Scope) {
	scope := NewScope(name)

	o.mu.Lock()
	o.scopes = append(o.scopes, scope)
	o.mu.Unlock()

	return ctx, scope
}

func (o *Otel) Shutdown(_ context.Context) error {
	return nil
}

// Scopes returns the recorded scopes with the given name.
func (o *Otel) Scopes(name string) []*Scope {
	o.mu.Lock()
	defer o.mu.Unlock()

	var found []*Scope

	for _, scope := range o.scopes {
		if scope.Name == name {
			found = append(found, scope)
		}
	}

	return found
}

// Errors returns every error traced in any scope.
func (o *Otel) Errors() []error {
	o.mu.Lock()
	defer o.mu.Unlock()

	var errs []error

	for _, scope := range o.scopes {
		scope.mu.Lock()
		errs = append(errs, scope.Errors...)
		scope.mu.Unlock()
	}

	return errs
}

func NewOtel() *Otel {
	return &Otel{}
}
