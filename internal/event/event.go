package event

import (
	"fmt"
	"time"
)

// Type represents the kind of mutation an event describes.
type Type string

const (
	TypeCreated    Type = "created"
	TypeUpdated    Type = "updated"
	TypeDeleted    Type = "deleted"
	TypeReplaced   Type = "replaced"
	TypeReassigned Type = "reassigned"
)

// Entity represents the kind of entity the event is about.
type Entity string

const (
	EntityExpense  Entity = "expense"
	EntityCategory Entity = "category"
)

// Event is published by a store after each mutating call, replacing the
// implicit change notification of an observable collection. Subscribers
// must not mutate the payload.
// Format: { type, entity, payload, timestamp }
type Event struct {
	Type      string    // Combined type e.g. "expense.created"
	Entity    Entity    // Entity type e.g. "expense"
	Payload   any       // Entity data relevant to the mutation
	Timestamp time.Time // Event timestamp
}

// New creates an event with the given type, entity, and payload.
func New(eventType Type, entity Entity, payload any) Event {
	return Event{
		Type:      fmt.Sprintf("%s.%s", entity, eventType),
		Entity:    entity,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// ExpenseCreated creates an expense.created event.
func ExpenseCreated(payload any) Event {
	return New(TypeCreated, EntityExpense, payload)
}

// ExpenseUpdated creates an expense.updated event.
func ExpenseUpdated(payload any) Event {
	return New(TypeUpdated, EntityExpense, payload)
}

// ExpenseDeleted creates an expense.deleted event.
func ExpenseDeleted(payload any) Event {
	return New(TypeDeleted, EntityExpense, payload)
}

// ExpensesReplaced creates an expense.replaced event for a bulk reload.
func ExpensesReplaced(payload any) Event {
	return New(TypeReplaced, EntityExpense, payload)
}

// ExpensesReassigned creates an expense.reassigned event for a category
// reference migration.
func ExpensesReassigned(payload any) Event {
	return New(TypeReassigned, EntityExpense, payload)
}

// CategoryCreated creates a category.created event.
func CategoryCreated(payload any) Event {
	return New(TypeCreated, EntityCategory, payload)
}

// CategoryUpdated creates a category.updated event.
func CategoryUpdated(payload any) Event {
	return New(TypeUpdated, EntityCategory, payload)
}

// CategoryDeleted creates a category.deleted event.
func CategoryDeleted(payload any) Event {
	return New(TypeDeleted, EntityCategory, payload)
}

// CategoriesReplaced creates a category.replaced event for a bulk reload.
func CategoriesReplaced(payload any) Event {
	return New(TypeReplaced, EntityCategory, payload)
}
