package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Dosada05/floppoker-console/models"
)

func TestRenderDetail(t *testing.T) {
	tour := lateRegTournament()
	tour.Name = "Пятничный турнир"
	tour.RentCost = 1500
	tour.RegisteredPlayers = 2
	tour.StartTime = models.Timestamp{Time: time.Date(2026, 10, 16, 19, 0, 0, 0, time.UTC)}

	view := RenderDetail(tour, director)
	require.Equal(t, "Пятничный турнир", view.Name)
	require.Equal(t, "Поздняя регистрация", view.Status.Text)
	require.Equal(t, "1500 рублей", view.RentCost)
	require.Equal(t, "15 минут", view.LevelTime)
	require.Equal(t, "2 игроков", view.RegisteredPlayers)
	require.Equal(t, "16.10.2026, 19:00:00", view.StartTime)
	require.Equal(t, "—", view.LateRegEndTime)
	require.Equal(t, 9, view.Roster.Rows[0].UserID)
	require.Equal(t, models.ActionClose, view.Actions[len(view.Actions)-1].Kind)
}

func TestRenderCardDirectorActions(t *testing.T) {
	tour := models.Tournament{ID: 3, Name: "Ночной", Status: "paused", RentCost: 1000, RentChips: 10000}

	card := RenderCard(tour, director)
	require.Equal(t, "paused", card.Status.Text)
	require.Equal(t, "1000 руб / 10000 фишек", card.Costs[0].Value)
	require.Len(t, card.Actions, 2)

	require.Empty(t, RenderCard(tour, player3).Actions)
}
