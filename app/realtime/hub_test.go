package realtime

import (
	"testing"
	"time"
)

func receiveEvent(t *testing.T, sub *Subscription) Event {
	t.Helper()
	select {
	case event := <-sub.C:
		return event
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestHubFanOut(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	first := hub.Subscribe()
	second := hub.Subscribe()

	hub.Publish(EventNewAttendance, map[string]int{"id": 7})

	for _, sub := range []*Subscription{first, second} {
		event := receiveEvent(t, sub)
		if event.Name != EventNewAttendance {
			t.Errorf("event name = %q, want %q", event.Name, EventNewAttendance)
		}
	}
}

func TestHubUnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	sub := hub.Subscribe()
	hub.Unsubscribe(sub.ID)

	select {
	case _, ok := <-sub.C:
		if ok {
			t.Error("expected closed channel after unsubscribe")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after unsubscribe")
	}
}

func TestHubPublishWithoutSubscribers(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	// Best effort: publishing into the void must not block or panic.
	hub.Publish(EventDeleteNotice, map[string]int{"id": 1})
}

func TestHubDropsSlowSubscriber(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	slow := hub.Subscribe()

	// Overflow the subscriber's buffer without ever reading from it.
	for i := 0; i < 20; i++ {
		hub.Publish(EventNewNotice, map[string]int{"seq": i})
	}

	// It gets its buffered events, then the hub cuts it off.
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-slow.C:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("slow subscriber was never dropped")
		}
	}
}
