package chat

import (
	"context"
	"errors"
	"strings"
	"testing"

	"pawtrack/internal/domain/listings"
)

type fakeCounter struct {
	available int
	adopted   int
	err       error
}

func (f fakeCounter) CountByStatus(_ context.Context, status listings.Status) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	if status == listings.StatusAdopted {
		return f.adopted, nil
	}
	return f.available, nil
}

func respond(t *testing.T, counter fakeCounter, message string) string {
	t.Helper()
	reply, err := NewService(counter).Respond(context.Background(), message)
	if err != nil {
		t.Fatalf("Respond(%q) returned error: %v", message, err)
	}
	return reply
}

func TestRespond_EmptyMessage(t *testing.T) {
	reply := respond(t, fakeCounter{}, "   ")
	if reply != emptyMessageReply {
		t.Fatalf("expected prompt reply, got %q", reply)
	}
}

func TestRespond_AvailableCount(t *testing.T) {
	reply := respond(t, fakeCounter{available: 3}, "How many pets available?")
	if !strings.Contains(reply, "3") {
		t.Fatalf("expected reply to contain the count, got %q", reply)
	}
	if !strings.Contains(reply, "available") {
		t.Fatalf("expected availability reply, got %q", reply)
	}
}

func TestRespond_AvailableNeedsPetWord(t *testing.T) {
	// "available" solo, sin "pet"/"pets", no dispara el conteo vivo.
	reply := respond(t, fakeCounter{available: 3}, "what is available?")
	if strings.Contains(reply, "3") {
		t.Fatalf("expected no live count without pet keyword, got %q", reply)
	}
}

func TestRespond_AdoptedCount(t *testing.T) {
	reply := respond(t, fakeCounter{adopted: 7}, "how many pets were adopted so far")
	if !strings.Contains(reply, "7") {
		t.Fatalf("expected adopted count in reply, got %q", reply)
	}
}

func TestRespond_FAQMatch_Adopt(t *testing.T) {
	reply := respond(t, fakeCounter{}, "How do I adopt a pet?")
	want := "Open a pet detail page and click 'Adopt Now'. Only logged-in users can adopt."
	if reply != want {
		t.Fatalf("expected adopt FAQ answer, got %q", reply)
	}
}

func TestRespond_FAQ_FirstMatchWins(t *testing.T) {
	// Matchea "register" y "adopt"; la tabla está ordenada y register va primero.
	reply := respond(t, fakeCounter{}, "should I register before I adopt?")
	if !strings.Contains(reply, "you need to register first") {
		t.Fatalf("expected first entry (register) to win, got %q", reply)
	}
}

func TestRespond_CaseInsensitive(t *testing.T) {
	reply := respond(t, fakeCounter{}, "  HOW TO LOGIN?  ")
	if !strings.Contains(reply, "Go to Login page") {
		t.Fatalf("expected login FAQ answer, got %q", reply)
	}
}

func TestRespond_Fallback(t *testing.T) {
	reply := respond(t, fakeCounter{}, "what's the weather like")
	if reply != fallbackReply {
		t.Fatalf("expected fallback reply, got %q", reply)
	}
}

func TestRespond_CounterErrorPropagates(t *testing.T) {
	boom := errors.New("store down")
	_, err := NewService(fakeCounter{err: boom}).Respond(context.Background(), "pets available?")
	if !errors.Is(err, boom) {
		t.Fatalf("expected counter error to propagate, got %v", err)
	}
}
