package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Dosada05/floppoker-console/models"
)

func TestRatingList(t *testing.T) {
	fb := newFakeBackend()
	fb.rating = []models.RatingEntry{
		{ID: 1, PlayerName: "A", TelegramUsername: "a", Score: 1500},
		{ID: 2, PlayerName: "B", TelegramUsername: "b", Score: 1400},
		{ID: 3, PlayerName: "C", TelegramUsername: "c", Score: 1300},
		{ID: 4, PlayerName: "D", TelegramUsername: "d", Score: 1200},
	}
	svc := NewRatingService(fb)
	store := NewSessionStore(time.Hour)

	view, err := svc.List(context.Background(), store.Create(player))
	require.NoError(t, err)
	require.Nil(t, view.Create)
	require.Equal(t, "🥇", view.Rows[0].Medal)
	require.Equal(t, "🥉", view.Rows[2].Medal)
	require.Empty(t, view.Rows[3].Medal)
	require.Equal(t, 4, view.Rows[3].Position)
	require.Equal(t, "@a", view.Rows[0].TelegramUsername)
	require.Empty(t, view.Rows[0].Actions)

	view, err = svc.List(context.Background(), store.Create(director))
	require.NoError(t, err)
	require.NotNil(t, view.Create)
	require.Len(t, view.Rows[0].Actions, 2)

	fb.rating = nil
	view, err = svc.List(context.Background(), store.Create(player))
	require.NoError(t, err)
	require.Equal(t, "Рейтинг пуст", view.Empty)
}

func TestRatingDelete(t *testing.T) {
	fb := newFakeBackend()
	svc := NewRatingService(fb)
	store := NewSessionStore(time.Hour)

	_, err := svc.Delete(context.Background(), store.Create(player), 1)
	require.ErrorIs(t, err, ErrForbiddenOperation)

	notice, err := svc.Delete(context.Background(), store.Create(director), 1)
	require.NoError(t, err)
	require.Equal(t, "Игрок удалён из рейтинга", notice.Message)
	require.Equal(t, 1, fb.count("DeleteRating"))
}

func TestPlayersList(t *testing.T) {
	fb := newFakeBackend()
	fb.players = []models.Player{{ID: 5, FullName: "Иван", TelegramUsername: "ivan", RatingScore: 1100}}
	svc := NewPlayerService(fb)
	store := NewSessionStore(time.Hour)

	_, err := svc.List(context.Background(), store.Create(player))
	require.ErrorIs(t, err, ErrForbiddenOperation)
	require.Zero(t, fb.total())

	view, err := svc.List(context.Background(), store.Create(director))
	require.NoError(t, err)
	require.Equal(t, "Рейтинг: 1100", view.Rows[0].Rating)
	require.Equal(t, "@ivan", view.Rows[0].TelegramUsername)

	notice, err := svc.Delete(context.Background(), store.Create(director), 5)
	require.NoError(t, err)
	require.Equal(t, "Игрок удалён", notice.Message)
}
