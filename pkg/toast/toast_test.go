package toast_test

import (
	"testing"

	"github.com/skilllink-dev/skilllink/pkg/toast"
)

func TestLevelHelpers(t *testing.T) {
	hub := toast.NewHub()

	var got []toast.Toast
	cancel := hub.Subscribe(func(tt toast.Toast) {
		got = append(got, tt)
	})
	defer cancel()

	hub.Success("Item saved!")
	hub.Error("Something went wrong")
	hub.Warning("This action cannot be undone")
	hub.Info("Verification code sent to your phone!")

	if len(got) != 4 {
		t.Fatalf("expected 4 toasts, got %d", len(got))
	}

	levels := []toast.Type{toast.TypeSuccess, toast.TypeError, toast.TypeWarning, toast.TypeInfo}
	for i, level := range levels {
		if got[i].Level != level {
			t.Errorf("toast %d: expected level %q, got %q", i, level, got[i].Level)
		}
	}
	if got[3].Message != "Verification code sent to your phone!" {
		t.Errorf("unexpected message %q", got[3].Message)
	}
}

func TestWithTitle(t *testing.T) {
	hub := toast.NewHub()

	var got toast.Toast
	cancel := hub.Subscribe(func(tt toast.Toast) { got = tt })
	defer cancel()

	hub.WithTitle(toast.TypeInfo, "New job match", "Construction Helper near you", "/jobs/1")

	if got.Title != "New job match" {
		t.Errorf("expected title, got %q", got.Title)
	}
	if got.Link != "/jobs/1" {
		t.Errorf("expected link, got %q", got.Link)
	}
}

func TestUnsubscribe(t *testing.T) {
	hub := toast.NewHub()

	count := 0
	cancel := hub.Subscribe(func(toast.Toast) { count++ })

	hub.Info("one")
	cancel()
	hub.Info("two")

	if count != 1 {
		t.Errorf("expected 1 toast after cancel, got %d", count)
	}
}

func TestShowWithoutSubscribers(t *testing.T) {
	hub := toast.NewHub()
	// Must not panic or block.
	hub.Success("nobody listening")
}
