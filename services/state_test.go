package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSessionStore_CreateGetDelete(t *testing.T) {
	store := NewSessionStore(time.Hour)
	st := store.Create(director)
	require.NotEmpty(t, st.ID())
	require.Equal(t, 1, store.Len())

	got, err := store.Get(st.ID())
	require.NoError(t, err)
	require.Same(t, st, got)

	st.beginEditing(EditingTournament, 3)
	st.setOpenTournament(3)
	store.Delete(st.ID())

	_, err = store.Get(st.ID())
	require.ErrorIs(t, err, ErrSessionRequired)
	require.Equal(t, EditingTarget{}, st.Editing())
	require.Zero(t, st.OpenTournament())
	require.Zero(t, st.User().ID)
}

func TestSessionStore_Expiry(t *testing.T) {
	store := NewSessionStore(time.Minute)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	expired := store.Create(player)
	now = now.Add(30 * time.Second)
	alive := store.Create(director)
	now = now.Add(45 * time.Second)

	_, err := store.Get(expired.ID())
	require.ErrorIs(t, err, ErrSessionRequired)
	_, err = store.Get(alive.ID())
	require.NoError(t, err)

	now = now.Add(time.Minute)
	require.Equal(t, 1, store.Sweep())
	require.Zero(t, store.Len())
}

func TestAppState_Tickets(t *testing.T) {
	st := NewSessionStore(time.Hour).Create(player)

	first := st.begin(ViewDetail)
	second := st.begin(ViewDetail)
	other := st.begin(ViewRating)

	require.False(t, st.commit(first))
	require.True(t, st.commit(second))
	require.True(t, st.commit(other))

	st.reset()
	require.False(t, st.commit(second))
	require.False(t, st.commit(other))
}

func TestAppState_FinishEditingKeepsNewerTarget(t *testing.T) {
	st := NewSessionStore(time.Hour).Create(director)

	st.beginEditing(EditingTournament, 0)
	old := st.Editing()
	require.True(t, old.IsCreate())

	st.beginEditing(EditingRating, 4)
	st.finishEditing(old)
	require.Equal(t, EditingTarget{Kind: EditingRating, ID: 4}, st.Editing())

	st.finishEditing(st.Editing())
	require.Equal(t, EditingNone, st.Editing().Kind)
	require.False(t, st.Editing().IsCreate())
}

func TestAppState_CloseTournamentOnlyMatching(t *testing.T) {
	st := NewSessionStore(time.Hour).Create(player)
	st.setOpenTournament(5)
	st.closeTournament(6)
	require.Equal(t, 5, st.OpenTournament())
	st.closeTournament(5)
	require.Zero(t, st.OpenTournament())
}
