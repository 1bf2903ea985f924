package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Dosada05/floppoker-console/models"
)

func TestClassifyKnownStatuses(t *testing.T) {
	cases := []struct {
		status models.TournamentStatus
		class  string
		text   string
	}{
		{models.StatusRegistration, "status-registration", "Регистрация"},
		{models.StatusLateRegistration, "status-late_registration", "Поздняя регистрация"},
		{models.StatusActive, "status-active", "Идет турнир"},
		{models.StatusActiveNoLateReg, "status-active_no_late_reg", "Регистрация закрыта"},
		{models.StatusCompleted, "status-completed", "Завершен"},
	}
	for _, tc := range cases {
		badge := Classify(tc.status)
		require.Equal(t, tc.class, badge.Class, tc.status)
		require.Equal(t, tc.text, badge.Text, tc.status)
	}
}

func TestClassifyIsTotal(t *testing.T) {
	for _, raw := range []string{"", "paused", "ACTIVE", "registration ", "🂡"} {
		require.NotPanics(t, func() {
			badge := Classify(models.TournamentStatus(raw))
			require.Equal(t, fallbackBadgeClass, badge.Class)
			require.Equal(t, raw, badge.Text)
		})
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range Statuses() {
		got, ok := ParseStatus(string(s))
		require.True(t, ok)
		require.Equal(t, s, got)
	}
	_, ok := ParseStatus("paused")
	require.False(t, ok)
}

func TestLifecycleTransitions(t *testing.T) {
	cases := []struct {
		from models.TournamentStatus
		tr   Transition
		to   models.TournamentStatus
	}{
		{models.StatusRegistration, TransitionStart, models.StatusLateRegistration},
		{models.StatusLateRegistration, TransitionCloseLateReg, models.StatusActiveNoLateReg},
		{models.StatusLateRegistration, TransitionComplete, models.StatusCompleted},
		{models.StatusActive, TransitionCloseLateReg, models.StatusActiveNoLateReg},
		{models.StatusActive, TransitionComplete, models.StatusCompleted},
		{models.StatusActiveNoLateReg, TransitionComplete, models.StatusCompleted},
	}
	for _, tc := range cases {
		to, ok := Next(tc.from, tc.tr)
		require.True(t, ok, "%s --%s-->", tc.from, tc.tr)
		require.Equal(t, tc.to, to)
	}

	require.False(t, CanTransition(models.StatusRegistration, TransitionComplete))
	require.False(t, CanTransition(models.StatusActiveNoLateReg, TransitionCloseLateReg))
	require.False(t, CanTransition(models.StatusActive, TransitionStart))
	require.Empty(t, Transitions(models.StatusCompleted))
	require.True(t, IsTerminal(models.StatusCompleted))
	require.False(t, IsTerminal("paused"))
	require.Empty(t, Transitions("paused"))
}

func TestLiveAndRegistrationFlags(t *testing.T) {
	require.False(t, IsLive(models.StatusRegistration))
	require.True(t, IsLive(models.StatusLateRegistration))
	require.True(t, IsLive(models.StatusActive))
	require.True(t, IsLive(models.StatusActiveNoLateReg))
	require.False(t, IsLive(models.StatusCompleted))
	require.False(t, IsLive("paused"))

	require.True(t, RegistrationOpen(models.StatusRegistration))
	require.True(t, RegistrationOpen(models.StatusLateRegistration))
	require.False(t, RegistrationOpen(models.StatusActive))
	require.False(t, RegistrationOpen(models.StatusCompleted))
}

func TestParseTransition(t *testing.T) {
	tr, ok := ParseTransition("close-late-reg")
	require.True(t, ok)
	require.Equal(t, TransitionCloseLateReg, tr)

	_, ok = ParseTransition("create-tables")
	require.False(t, ok)
}
