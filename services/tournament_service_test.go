package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Dosada05/floppoker-console/apiclient"
	"github.com/Dosada05/floppoker-console/lifecycle"
	"github.com/Dosada05/floppoker-console/models"
)

func newTournamentFixture(user models.User) (*fakeBackend, *AppState, TournamentService) {
	fb := newFakeBackend()
	fb.tournaments[1] = models.Tournament{
		ID: 1, Name: "Friday Night", Status: models.StatusActive, RentCost: 500, RentChips: 10000,
		Players: []models.Registration{
			{UserID: 7, GameNickname: "petr", Chips: 8000},
			{UserID: 8, GameNickname: "anna", Chips: 15000},
		},
	}
	fb.tournaments[2] = models.Tournament{ID: 2, Name: "Sunday", Status: models.StatusRegistration}
	st := NewSessionStore(time.Hour).Create(user)
	return fb, st, NewTournamentService(fb, discard)
}

func kinds(actions []models.Action) []models.ActionKind {
	out := make([]models.ActionKind, 0, len(actions))
	for _, a := range actions {
		out = append(out, a.Kind)
	}
	return out
}

func TestParseChips(t *testing.T) {
	for raw, want := range map[string]int{"0": 0, "15000": 15000, " 42 ": 42} {
		got, err := ParseChips(raw)
		require.NoError(t, err, raw)
		require.Equal(t, want, got)
	}
	for _, raw := range []string{"", "-5", "12.5", "abc", "1e3"} {
		_, err := ParseChips(raw)
		require.True(t, IsValidation(err), raw)
		require.EqualError(t, err, "chips: "+invalidChipsMessage)
	}
}

func TestUpdateChips_InvalidNeverCallsBackend(t *testing.T) {
	fb, st, svc := newTournamentFixture(director)

	_, err := svc.UpdateChips(context.Background(), st, 1, 7, "-5")
	require.True(t, IsValidation(err))
	require.Zero(t, fb.total())
}

func TestUpdateChips_ZeroAcceptedAndDetailReloaded(t *testing.T) {
	fb, st, svc := newTournamentFixture(director)

	view, err := svc.UpdateChips(context.Background(), st, 1, 7, "0")
	require.NoError(t, err)
	require.Equal(t, 1, fb.count("UpdateChips"))
	require.Zero(t, fb.lastChips)
	require.Equal(t, 1, fb.count("GetTournament"))
	require.Equal(t, 1, view.ID)
	require.Equal(t, 1, st.OpenTournament())
}

func TestUpdateChips_PlayerForbidden(t *testing.T) {
	fb, st, svc := newTournamentFixture(player)

	_, err := svc.UpdateChips(context.Background(), st, 1, 7, "100")
	require.ErrorIs(t, err, ErrForbiddenOperation)
	require.Zero(t, fb.total())
}

func TestDetail_DirectorLiveTournament(t *testing.T) {
	_, st, svc := newTournamentFixture(director)

	view, err := svc.Detail(context.Background(), st, 1, false)
	require.NoError(t, err)
	require.Equal(t, "status-active", view.Status.Class)
	require.Equal(t, []models.ActionKind{
		models.ActionShowTables, models.ActionCloseLateReg, models.ActionComplete,
		models.ActionCreateTables, models.ActionClose,
	}, kinds(view.Actions))
	require.True(t, view.Roster.SortedByChips)
	require.Equal(t, 8, view.Roster.Rows[0].UserID)
	require.NotNil(t, view.Roster.Rows[0].ChipsAction)
	require.Nil(t, view.Tables)
}

func TestDetail_WithTables(t *testing.T) {
	fb, st, svc := newTournamentFixture(player)
	fb.tables[1] = []models.Table{{ID: 10, TableNumber: 1, MaxPlayers: 9, CurrentPlayers: 1,
		Players: []models.Seat{{SeatNumber: 4, FullName: "Пётр", Chips: 8000}}}}

	view, err := svc.Detail(context.Background(), st, 1, true)
	require.NoError(t, err)
	require.NotNil(t, view.Tables)
	require.Equal(t, "Стол 1", view.Tables.Tables[0].Title)
	require.Equal(t, 1, fb.count("Tables"))
}

func TestDetail_InvalidSeating(t *testing.T) {
	fb, st, svc := newTournamentFixture(player)
	fb.tables[1] = []models.Table{{TableNumber: 1, Players: []models.Seat{{FullName: "no seat"}}}}

	_, err := svc.Tables(context.Background(), st, 1)
	require.ErrorIs(t, err, ErrInvalidSeating)
}

func TestDetail_TransportFailureKeepsPreviousView(t *testing.T) {
	fb, st, svc := newTournamentFixture(player)
	_, err := svc.Detail(context.Background(), st, 2, false)
	require.NoError(t, err)

	fb.failWith = errNetwork
	_, err = svc.Detail(context.Background(), st, 1, false)
	require.ErrorIs(t, err, apiclient.ErrTransport)
	require.Equal(t, 2, st.OpenTournament())
}

func TestDetail_StaleResponseDiscarded(t *testing.T) {
	fb, st, svc := newTournamentFixture(player)

	var (
		once  sync.Once
		newer models.TournamentDetailView
		nerr  error
	)
	// Пока грузится турнир 1, пользователь успевает открыть турнир 2.
	fb.beforeGet = func(id int) {
		if id != 1 {
			return
		}
		once.Do(func() {
			newer, nerr = svc.Detail(context.Background(), st, 2, false)
		})
	}

	_, err := svc.Detail(context.Background(), st, 1, false)
	require.ErrorIs(t, err, ErrViewSuperseded)
	require.NoError(t, nerr)
	require.Equal(t, 2, newer.ID)
	require.Equal(t, 2, st.OpenTournament())
}

func TestRegister_PlayerScenario(t *testing.T) {
	fb, st, svc := newTournamentFixture(models.User{ID: 9, Role: models.RolePlayer})

	_, err := svc.Register(context.Background(), st, 2)
	require.ErrorIs(t, err, ErrDetailNotOpen)
	require.Zero(t, fb.count("Register"))

	view, err := svc.Detail(context.Background(), st, 2, false)
	require.NoError(t, err)
	require.Equal(t, []models.ActionKind{models.ActionRegister, models.ActionShowTables, models.ActionClose}, kinds(view.Actions))

	notice, err := svc.Register(context.Background(), st, 2)
	require.NoError(t, err)
	require.Equal(t, "Вы зарегистрированы", notice.Message)
	require.Zero(t, st.OpenTournament())
}

func TestTransition_ClosesDetailWithoutLocalStatusChange(t *testing.T) {
	fb, st, svc := newTournamentFixture(director)
	_, err := svc.Detail(context.Background(), st, 2, false)
	require.NoError(t, err)

	notice, err := svc.Transition(context.Background(), st, 2, lifecycle.TransitionStart)
	require.NoError(t, err)
	require.Equal(t, "Турнир начат", notice.Message)
	require.Equal(t, "start", fb.lastTransition)
	require.Zero(t, st.OpenTournament())
	require.Equal(t, models.StatusRegistration, fb.tournaments[2].Status)
}

func TestTransition_PlayerForbidden(t *testing.T) {
	fb, st, svc := newTournamentFixture(player)
	_, err := svc.Transition(context.Background(), st, 2, lifecycle.TransitionStart)
	require.ErrorIs(t, err, ErrForbiddenOperation)
	require.Zero(t, fb.total())
}

func TestCreateTables_ReturnsSeating(t *testing.T) {
	fb, st, svc := newTournamentFixture(director)

	notice, tables, err := svc.CreateTables(context.Background(), st, 1)
	require.NoError(t, err)
	require.Equal(t, "Столы созданы", notice.Message)
	require.Equal(t, "Столы не созданы", tables.Empty)
	require.Equal(t, 1, fb.count("Tables"))
}

func TestList_DirectorAndPlayer(t *testing.T) {
	_, st, svc := newTournamentFixture(director)
	view, err := svc.List(context.Background(), st, "")
	require.NoError(t, err)
	require.Equal(t, "🏆 Управление турнирами", view.Title)
	require.NotNil(t, view.Create)
	require.Len(t, view.Cards, 2)
	require.Len(t, view.Cards[0].Actions, 2)

	_, pst, psvc := newTournamentFixture(player)
	view, err = psvc.List(context.Background(), pst, string(models.StatusCompleted))
	require.NoError(t, err)
	require.Equal(t, "🏆 Турниры", view.Title)
	require.Nil(t, view.Create)
	require.Empty(t, view.Cards)
	require.Equal(t, "Турниров нет", view.Empty)
}

func TestDelete_Tournament(t *testing.T) {
	fb, st, svc := newTournamentFixture(director)
	notice, err := svc.Delete(context.Background(), st, 2)
	require.NoError(t, err)
	require.Equal(t, "Турнир удалён", notice.Message)
	require.NotContains(t, fb.tournaments, 2)
}
