package apiclient

import (
	"context"
	"testing"
	"time"

	"pet-wellness/internal/domain/health"
	"pet-wellness/internal/domain/pets"
	"pet-wellness/internal/domain/reminders"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFake_DemoLoginAndPets(t *testing.T) {
	f := NewFake(FakeOptions{})
	ctx := context.Background()

	res, err := f.Login(ctx, "mary@example.com", "anything")
	require.NoError(t, err)
	assert.Equal(t, "Mary Showcase", res.User.Name)
	assert.NotEmpty(t, res.Token)

	list, err := f.GetPets(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Luna", list[0].Name)
	assert.Equal(t, pets.SpeciesDog, list[0].Species)
	assert.Equal(t, "Mochi", list[1].Name)
	assert.Equal(t, pets.SpeciesCat, list[1].Species)
}

func TestFake_GetUserRequiresToken(t *testing.T) {
	tok := ""
	f := NewFake(FakeOptions{Tokens: TokenFunc(func(context.Context) (string, error) { return tok, nil })})

	_, err := f.GetUser(context.Background())
	assert.ErrorIs(t, err, ErrAuthentication)

	tok = MockToken
	u, err := f.GetUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
}

func TestFake_MutationsAndIsolation(t *testing.T) {
	f := NewFake(FakeOptions{})
	ctx := context.Background()

	rec, err := f.AddHealthRecord(ctx, health.Record{PetID: "1", Type: health.TypeNote, Title: "X", Description: "Y", Date: "2026-02-26"})
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)

	rem, err := f.AddReminder(ctx, reminders.Reminder{PetID: "2", Title: "Brush", Type: reminders.TypeCustom, Date: "2026-03-01", Time: "08:00", Completed: true})
	require.NoError(t, err)
	assert.False(t, rem.Completed)

	rem.Snoozed = true
	_, err = f.UpdateReminder(ctx, rem)
	require.NoError(t, err)
	list, err := f.GetReminders(ctx, "2")
	require.NoError(t, err)
	assert.True(t, list[len(list)-1].Snoozed)

	_, err = f.UpdateReminder(ctx, reminders.Reminder{ID: "missing", PetID: "2", Title: "x", Type: reminders.TypeCustom, Date: "2026-03-01", Time: "08:00"})
	assert.ErrorIs(t, err, ErrNetworkOrServer)
	assert.Equal(t, 404, StatusCode(err))

	// la copia devuelta no comparte historial con el estado interno
	ps, _ := f.GetPets(ctx)
	ps[0].WeightHistory[0].Weight = 999
	again, _ := f.GetPets(ctx)
	assert.NotEqual(t, 999.0, again[0].WeightHistory[0].Weight)

	require.NoError(t, f.DeletePet(ctx, "1"))
	hr, err := f.GetHealthRecords(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, hr)
}

func TestFake_RecordGoalProgressMonotonic(t *testing.T) {
	f := NewFake(FakeOptions{})
	ctx := context.Background()

	prev := 5
	for i := 0; i < 3; i++ {
		g, err := f.RecordGoalProgress(ctx, "t1")
		require.NoError(t, err)
		assert.Greater(t, g.CurrentCount, prev)
		prev = g.CurrentCount
	}
	assert.Equal(t, 8, prev)
}

func TestFake_LatencyHonorsContext(t *testing.T) {
	f := NewFake(FakeOptions{Latency: time.Second})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.GetPets(ctx)
	assert.ErrorIs(t, err, ErrNetworkOrServer)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFake_ShareLink(t *testing.T) {
	f := NewFake(FakeOptions{})
	url, err := f.GenerateShareLink(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "https://vetted.app/share/pet/1", url)
}
