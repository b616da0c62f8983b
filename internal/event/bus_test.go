package event

import "testing"

func TestNew_CombinedType(t *testing.T) {
	e := New(TypeCreated, EntityExpense, "payload")

	if e.Type != "expense.created" {
		t.Errorf("expected type expense.created, got %s", e.Type)
	}
	if e.Entity != EntityExpense {
		t.Errorf("expected entity expense, got %s", e.Entity)
	}
	if e.Payload != "payload" {
		t.Errorf("expected payload to be carried through, got %v", e.Payload)
	}
	if e.Timestamp.IsZero() {
		t.Error("expected timestamp to be set")
	}
}

func TestConstructors(t *testing.T) {
	cases := []struct {
		event Event
		want  string
	}{
		{ExpenseCreated(nil), "expense.created"},
		{ExpenseUpdated(nil), "expense.updated"},
		{ExpenseDeleted(nil), "expense.deleted"},
		{ExpensesReplaced(nil), "expense.replaced"},
		{ExpensesReassigned(nil), "expense.reassigned"},
		{CategoryCreated(nil), "category.created"},
		{CategoryUpdated(nil), "category.updated"},
		{CategoryDeleted(nil), "category.deleted"},
		{CategoriesReplaced(nil), "category.replaced"},
	}
	for _, tc := range cases {
		if tc.event.Type != tc.want {
			t.Errorf("expected %s, got %s", tc.want, tc.event.Type)
		}
	}
}

func TestBus_DeliversInSubscriptionOrder(t *testing.T) {
	bus := NewBus()

	var order []string
	bus.Subscribe(func(e Event) {
		order = append(order, "first:"+e.Type)
	})
	bus.Subscribe(func(e Event) {
		order = append(order, "second:"+e.Type)
	})

	bus.Publish(ExpenseCreated(nil))

	if len(order) != 2 {
		t.Fatalf("expected 2 deliveries, got %d", len(order))
	}
	if order[0] != "first:expense.created" || order[1] != "second:expense.created" {
		t.Errorf("unexpected delivery order: %v", order)
	}
}

func TestBus_NoSubscribers(t *testing.T) {
	NewBus().Publish(ExpenseDeleted(nil))
}

func TestBus_SubscribeAfterPublish(t *testing.T) {
	bus := NewBus()
	bus.Publish(CategoryCreated(nil))

	delivered := 0
	bus.Subscribe(func(Event) { delivered++ })
	bus.Publish(CategoryUpdated(nil))

	if delivered != 1 {
		t.Errorf("expected only the later event, got %d deliveries", delivered)
	}
}

func TestNoOpPublisher(t *testing.T) {
	var p Publisher = NoOpPublisher{}
	p.Publish(ExpenseCreated(nil))
}
