package wellness

import (
	"context"
	"errors"
	"testing"

	"pet-wellness/internal/adapters/storage/memory"
	"pet-wellness/internal/domain/validate"
)

func TestService_Create_ValidatesRatings(t *testing.T) {
	svc := NewService(memory.NewRepo[Entry]())

	ok := Entry{Date: "2026-02-10", Appetite: 4, Energy: 5, Mood: 4, Bathroom: 5, Activity: 3}
	e, err := svc.Create(context.Background(), "1", ok)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if e.ID == "" || e.PetID != "1" {
		t.Fatalf("unexpected entry %+v", e)
	}
	if got := e.Average(); got != 4.2 {
		t.Fatalf("expected average 4.2, got %v", got)
	}

	bad := ok
	bad.Mood = 6
	if _, err := svc.Create(context.Background(), "1", bad); !errors.Is(err, validate.ErrInvalid) {
		t.Fatalf("expected ErrInvalid for mood=6, got %v", err)
	}
	bad = ok
	bad.Energy = 0
	if _, err := svc.Create(context.Background(), "1", bad); !errors.Is(err, validate.ErrInvalid) {
		t.Fatalf("expected ErrInvalid for energy=0, got %v", err)
	}
}

func TestService_ListByPet_DateAscending(t *testing.T) {
	svc := NewService(memory.NewRepo[Entry]())
	ctx := context.Background()

	for _, d := range []string{"2026-02-12", "2026-02-10", "2026-02-11"} {
		if _, err := svc.Create(ctx, "2", Entry{Date: d, Appetite: 3, Energy: 3, Mood: 3, Bathroom: 4, Activity: 3}); err != nil {
			t.Fatalf("Create %s: %v", d, err)
		}
	}

	items, err := svc.ListByPet(ctx, "2")
	if err != nil {
		t.Fatalf("ListByPet: %v", err)
	}
	want := []string{"2026-02-10", "2026-02-11", "2026-02-12"}
	for i, e := range items {
		if e.Date != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], e.Date)
		}
	}
}
