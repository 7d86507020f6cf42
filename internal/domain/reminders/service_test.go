package reminders

import (
	"context"
	"testing"

	"pet-wellness/internal/adapters/storage/memory"
	"pet-wellness/internal/domain/validate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Create_StartsPending(t *testing.T) {
	svc := NewService(memory.NewRepo[Reminder]())

	rem, err := svc.Create(context.Background(), "1", Reminder{
		Title:     "Heartworm pill",
		Type:      TypeMedication,
		Date:      "2026-03-01",
		Time:      "09:00",
		Recurring: true,
		Completed: true,
		Snoozed:   true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, rem.ID)
	assert.False(t, rem.Completed)
	assert.False(t, rem.Snoozed)
	assert.True(t, rem.Recurring)
	assert.True(t, rem.Pending())
	assert.Equal(t, "2026-03-01 09:00", rem.Due())
}

func TestService_Create_RejectsBadClock(t *testing.T) {
	svc := NewService(memory.NewRepo[Reminder]())

	_, err := svc.Create(context.Background(), "1", Reminder{
		Title: "Walk", Type: TypeCustom, Date: "2026-03-01", Time: "9am",
	})
	assert.ErrorIs(t, err, validate.ErrInvalid)
}

func TestService_Update_ReplacesInPlace(t *testing.T) {
	svc := NewService(memory.NewRepo[Reminder]())
	ctx := context.Background()

	var ids []string
	for _, title := range []string{"a", "b", "c"} {
		rem, err := svc.Create(ctx, "1", Reminder{Title: title, Type: TypeCustom, Date: "2026-03-01", Time: "10:00"})
		require.NoError(t, err)
		ids = append(ids, rem.ID)
	}

	mid, err := svc.GetByID(ctx, ids[1])
	require.NoError(t, err)
	mid.Completed = true
	_, err = svc.Update(ctx, mid)
	require.NoError(t, err)

	items, err := svc.ListByPet(ctx, "1")
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, ids, []string{items[0].ID, items[1].ID, items[2].ID})
	assert.True(t, items[1].Completed)
	assert.False(t, items[1].Pending())
}
