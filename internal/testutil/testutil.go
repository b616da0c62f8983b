// Package testutil provides fixtures and mock collaborators shared by the
// package tests.
package testutil

import (
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mhellwig/spendbook/internal/domain"
	"github.com/mhellwig/spendbook/internal/event"
)

// RecordingPublisher captures every published event for assertions.
type RecordingPublisher struct {
	mu     sync.Mutex
	events []event.Event
}

// Publish records the event.
func (p *RecordingPublisher) Publish(e event.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

// Events returns a copy of the captured events.
func (p *RecordingPublisher) Events() []event.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]event.Event, len(p.events))
	copy(out, p.events)
	return out
}

// Types returns the combined type strings of the captured events, in
// order.
func (p *RecordingPublisher) Types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

// MockReassigner records ReassignCategory calls.
type MockReassigner struct {
	Calls []ReassignCall
}

// ReassignCall is a single recorded ReassignCategory invocation.
type ReassignCall struct {
	Old         *domain.Category
	Replacement *domain.Category
}

// ReassignCategory records the call.
func (m *MockReassigner) ReassignCategory(old, replacement *domain.Category) {
	m.Calls = append(m.Calls, ReassignCall{Old: old, Replacement: replacement})
}

// Category builds a category or fails the test.
func Category(t *testing.T, name string) *domain.Category {
	t.Helper()
	c, err := domain.NewCategory(name, domain.ColorFromRGBA(255, 0, 0, 255))
	if err != nil {
		t.Fatalf("new category %q: %v", name, err)
	}
	return c
}

// Expense builds an expense dated on the given ISO day or fails the test.
func Expense(t *testing.T, date string, amount float64, description string) *domain.Expense {
	t.Helper()
	d, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		t.Fatalf("parse date %q: %v", date, err)
	}
	e, err := domain.NewExpense(d, "", decimal.NewFromFloat(amount), description)
	if err != nil {
		t.Fatalf("new expense: %v", err)
	}
	return e
}

// Date parses an ISO calendar date or fails the test.
func Date(t *testing.T, date string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		t.Fatalf("parse date %q: %v", date, err)
	}
	return d
}
