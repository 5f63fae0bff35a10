package events_test

import (
	"testing"

	"github.com/alphire-robotics/team-cms/internal/document"
	"github.com/alphire-robotics/team-cms/internal/events"
)

func TestPublishDeliversToAllSubscribers(t *testing.T) {
	bus := events.NewBus()

	var got []int64
	bus.Subscribe(func(event events.ContentUpdated) {
		got = append(got, event.Revision)
	})
	bus.Subscribe(func(event events.ContentUpdated) {
		got = append(got, event.Revision*10)
	})

	bus.Publish(events.ContentUpdated{Document: document.Document{}, Revision: 3})

	if len(got) != 2 || got[0] != 3 || got[1] != 30 {
		t.Fatalf("deliveries = %v", got)
	}
}

func TestPageScopedSubscriberSkipsAbsentPage(t *testing.T) {
	bus := events.NewBus()

	var homeCalls, robotsCalls int
	bus.SubscribePage("home", func(page document.Page, event events.ContentUpdated) {
		homeCalls++
		if _, ok := page["hero"]; !ok {
			t.Fatal("expected hero section in delivered page")
		}
	})
	bus.SubscribePage("robots", func(page document.Page, event events.ContentUpdated) {
		robotsCalls++
	})

	bus.Publish(events.ContentUpdated{
		Document: document.Document{
			"home": document.Page{"hero": document.Section{"logo": ""}},
		},
		Revision: 1,
	})

	if homeCalls != 1 {
		t.Fatalf("home handler ran %d times", homeCalls)
	}
	if robotsCalls != 0 {
		t.Fatal("robots handler should not run for a document without the robots page")
	}
}

func TestSubscriberMutationDoesNotLeak(t *testing.T) {
	bus := events.NewBus()

	bus.Subscribe(func(event events.ContentUpdated) {
		event.Document["home"]["hero"]["logo"] = "mutated"
	})

	var seen string
	bus.Subscribe(func(event events.ContentUpdated) {
		seen, _ = event.Document.Text("home.hero.logo", document.LanguageEN)
	})

	bus.Publish(events.ContentUpdated{
		Document: document.Document{
			"home": document.Page{"hero": document.Section{"logo": "original"}},
		},
	})

	if seen != "original" {
		t.Fatalf("mutation leaked between subscribers: %q", seen)
	}
}

func TestUnsubscribe(t *testing.T) {
	bus := events.NewBus()

	calls := 0
	cancel := bus.Subscribe(func(events.ContentUpdated) { calls++ })

	bus.Publish(events.ContentUpdated{Document: document.Document{}})
	cancel()
	bus.Publish(events.ContentUpdated{Document: document.Document{}})

	if calls != 1 {
		t.Fatalf("expected exactly one delivery, got %d", calls)
	}
}
