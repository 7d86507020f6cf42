package seed

import (
	"context"
	"testing"
	"time"

	"pet-wellness/internal/adapters/storage/memory"
	"pet-wellness/internal/domain/pets"
	"pet-wellness/internal/domain/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNew_Shape(t *testing.T) {
	today := time.Date(2026, 2, 26, 12, 0, 0, 0, time.UTC)
	ds := New(today, 42)

	require.Len(t, ds.Pets, 2)
	assert.Equal(t, "Luna", ds.Pets[0].Name)
	assert.Equal(t, pets.SpeciesDog, ds.Pets[0].Species)
	assert.Equal(t, "Mochi", ds.Pets[1].Name)
	assert.Equal(t, pets.SpeciesCat, ds.Pets[1].Species)
	for _, p := range ds.Pets {
		assert.NoError(t, p.Validate())
		assert.Len(t, p.WeightHistory, 6)
	}

	assert.Len(t, ds.Health, 5)
	assert.Len(t, ds.Reminders, 4)
	assert.Len(t, ds.Goals, 3)
	assert.Len(t, ds.Insights, 3)
	require.Len(t, ds.Wellness, 14)

	assert.Equal(t, "w-1-6", ds.Wellness[0].ID)
	assert.Equal(t, "2026-02-20", ds.Wellness[0].Date)
	assert.Equal(t, "2026-02-26", ds.Wellness[6].Date)
	for _, e := range ds.Wellness {
		require.NoError(t, e.Validate())
		assert.GreaterOrEqual(t, e.Appetite, 3)
		assert.GreaterOrEqual(t, e.Bathroom, 4)
	}

	again := New(today, 42)
	assert.Equal(t, ds.Wellness, again.Wellness)
}

func TestAccountAndInto(t *testing.T) {
	ds := New(time.Now(), 1)
	acc, err := ds.Account(bcrypt.MinCost)
	require.NoError(t, err)
	assert.Equal(t, DemoUserID, acc.ID)
	assert.True(t, users.CheckPassword(DemoPassword, acc.PasswordHash))

	repo := memory.NewRepo[pets.Pet]()
	require.NoError(t, Into(context.Background(), repo, ds.Pets))
	// segunda pasada: duplicados ignorados
	require.NoError(t, Into(context.Background(), repo, ds.Pets))

	items, err := repo.ListByScope(context.Background(), DemoUserID)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}
