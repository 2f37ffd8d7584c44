package events

import (
	"context"
	"errors"
	"testing"
)

func TestDispatcherPublishSubscribe(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var received []Event
	dispatcher.Subscribe(EventTicketCreated, func(ctx context.Context, event Event) error {
		received = append(received, event)
		return nil
	})

	event := Event{Type: EventTicketCreated, UserID: "u-1"}
	if err := dispatcher.Publish(context.Background(), event); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if len(received) != 1 || received[0].UserID != "u-1" {
		t.Errorf("received = %v", received)
	}

	// Unsubscribed types are ignored.
	if err := dispatcher.Publish(context.Background(), Event{Type: EventWorkflowStarted}); err != nil {
		t.Fatalf("Publish other type: %v", err)
	}
	if len(received) != 1 {
		t.Errorf("handler invoked for unsubscribed type")
	}
}

func TestDispatcherHandlerErrorsDoNotPropagate(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	dispatcher.Subscribe(EventTicketCreated, func(ctx context.Context, event Event) error {
		return errors.New("handler boom")
	})
	var secondRan bool
	dispatcher.Subscribe(EventTicketCreated, func(ctx context.Context, event Event) error {
		secondRan = true
		return nil
	})

	if err := dispatcher.Publish(context.Background(), Event{Type: EventTicketCreated}); err != nil {
		t.Fatalf("Publish returned %v, handler errors must not propagate", err)
	}
	if !secondRan {
		t.Error("second handler skipped after first errored")
	}
}
