package lifecycle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Dosada05/floppoker-console/models"
)

func sampleRoster() []models.Registration {
	return []models.Registration{
		{UserID: 1, Chips: 500},
		{UserID: 2, Chips: 3000},
		{UserID: 3, Chips: 500},
		{UserID: 4, Chips: 0},
		{UserID: 5, Chips: 3000},
	}
}

func ids(players []models.Registration) []int {
	out := make([]int, 0, len(players))
	for _, p := range players {
		out = append(out, p.UserID)
	}
	return out
}

func TestSortRosterLiveIsNonIncreasingAndStable(t *testing.T) {
	for _, status := range []models.TournamentStatus{
		models.StatusActive, models.StatusLateRegistration, models.StatusActiveNoLateReg,
	} {
		in := sampleRoster()
		out := SortRoster(in, status)
		for i := 1; i < len(out); i++ {
			require.GreaterOrEqual(t, out[i-1].Chips, out[i].Chips)
		}
		require.Equal(t, []int{2, 5, 1, 3, 4}, ids(out), status)
		require.Equal(t, []int{1, 2, 3, 4, 5}, ids(in), "input must stay untouched")
	}
}

func TestSortRosterIdentityOutsideLive(t *testing.T) {
	for _, status := range []models.TournamentStatus{models.StatusRegistration, models.StatusCompleted, "paused"} {
		in := sampleRoster()
		out := SortRoster(in, status)
		require.Equal(t, ids(in), ids(out))
		out[0].Chips = 99
		require.Equal(t, 500, in[0].Chips, "result must be a copy")
	}
}

func TestSortRosterNil(t *testing.T) {
	require.Empty(t, SortRoster(nil, models.StatusActive))
}

func TestChipsEditable(t *testing.T) {
	require.True(t, ChipsEditable(models.StatusActive, models.RoleDirector))
	require.True(t, ChipsEditable(models.StatusLateRegistration, models.RoleDirector))
	require.True(t, ChipsEditable(models.StatusActiveNoLateReg, models.RoleDirector))
	require.False(t, ChipsEditable(models.StatusRegistration, models.RoleDirector))
	require.False(t, ChipsEditable(models.StatusCompleted, models.RoleDirector))
	require.False(t, ChipsEditable(models.StatusActive, models.RolePlayer))
}

func TestRenderRosterScenarioDirector(t *testing.T) {
	roster := RenderRoster(lateRegTournament(), director)
	require.True(t, roster.SortedByChips)
	require.True(t, strings.HasSuffix(roster.Title, "(сортировка по фишкам)"))
	require.Len(t, roster.Rows, 2)
	require.Equal(t, 9, roster.Rows[0].UserID)
	require.Equal(t, 7, roster.Rows[1].UserID)
	for _, row := range roster.Rows {
		require.True(t, row.ChipsEditable)
		require.NotNil(t, row.ChipsAction)
	}
}

func TestRenderRosterScenarioPlayer(t *testing.T) {
	roster := RenderRoster(lateRegTournament(), player7)
	require.Equal(t, 9, roster.Rows[0].UserID)
	for _, row := range roster.Rows {
		require.False(t, row.ChipsEditable)
		require.Nil(t, row.ChipsAction)
		require.Equal(t, row.UserID == 7, row.IsViewer)
	}
}

func TestRenderRosterEmpty(t *testing.T) {
	roster := RenderRoster(models.Tournament{Status: models.StatusRegistration}, player3)
	require.False(t, roster.SortedByChips)
	require.Empty(t, roster.Rows)
	require.Equal(t, rosterEmpty, roster.Empty)
}

func TestFormatNumberGroupsDigits(t *testing.T) {
	got := FormatNumber(2500)
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, got)
	require.Equal(t, "2500", digits)
	require.NotEqual(t, "2500", got)
	require.Equal(t, "0", FormatNumber(0))
}
