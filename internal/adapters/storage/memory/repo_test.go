package memory

import (
	"context"
	"errors"
	"testing"

	"pet-wellness/internal/ports/storage"
)

type note struct {
	ID    string
	PetID string
	Text  string
}

func (n note) RecordID() string    { return n.ID }
func (n note) RecordScope() string { return n.PetID }

func TestRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	r := NewRepo[note]()

	if err := r.Create(ctx, note{ID: "n1", PetID: "1", Text: "a"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := r.Create(ctx, note{ID: "n1", PetID: "1"}); !errors.Is(err, storage.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if err := r.Create(ctx, note{PetID: "1"}); err == nil {
		t.Fatalf("expected error for empty id")
	}

	if err := r.Update(ctx, note{ID: "n1", PetID: "1", Text: "b"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := r.GetByID(ctx, "n1")
	if err != nil || got.Text != "b" {
		t.Fatalf("GetByID: %+v %v", got, err)
	}

	if err := r.Update(ctx, note{ID: "missing"}); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := r.Delete(ctx, "n1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := r.GetByID(ctx, "n1"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := r.Delete(ctx, "n1"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestRepo_ListByScope_InsertionOrder(t *testing.T) {
	ctx := context.Background()
	r := NewRepo[note]().Seed(
		note{ID: "c", PetID: "1"},
		note{ID: "a", PetID: "1"},
		note{ID: "x", PetID: "2"},
		note{ID: "b", PetID: "1"},
	)

	items, err := r.ListByScope(ctx, "1")
	if err != nil {
		t.Fatalf("ListByScope: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	want := []string{"c", "a", "b"}
	for i, id := range want {
		if items[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, items[i].ID)
		}
	}

	empty, err := r.ListByScope(ctx, "nope")
	if err != nil || len(empty) != 0 {
		t.Fatalf("expected empty list, got %v %v", empty, err)
	}
}
