package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimestampAcceptsBackendFormats(t *testing.T) {
	want := time.Date(2026, 10, 16, 19, 30, 0, 0, time.UTC)
	for _, raw := range []string{
		`"2026-10-16T19:30:00Z"`,
		`"2026-10-16T19:30:00"`,
		`"2026-10-16T19:30"`,
		`"2026-10-16 19:30:00"`,
		`"Fri, 16 Oct 2026 19:30:00 GMT"`,
	} {
		var ts Timestamp
		require.NoError(t, json.Unmarshal([]byte(raw), &ts), raw)
		require.Equal(t, want.Format(wireLayout), ts.Format(wireLayout), raw)
	}
}

func TestTimestampNullAndEmpty(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`null`), &ts))
	require.True(t, ts.IsZero())
	require.NoError(t, json.Unmarshal([]byte(`""`), &ts))
	require.True(t, ts.IsZero())
	require.Equal(t, "", ts.FormValue())
	require.Equal(t, "—", ts.Human())

	out, err := json.Marshal(ts)
	require.NoError(t, err)
	require.Equal(t, "null", string(out))
}

func TestTimestampRejectsGarbage(t *testing.T) {
	var ts Timestamp
	require.Error(t, json.Unmarshal([]byte(`"завтра"`), &ts))
	require.Error(t, json.Unmarshal([]byte(`12`), &ts))
}

func TestTimestampFormValue(t *testing.T) {
	ts, err := ParseTimestamp("2026-10-16T19:30:45")
	require.NoError(t, err)
	require.Equal(t, "2026-10-16T19:30", ts.FormValue())
	require.Equal(t, "16.10.2026, 19:30:45", ts.Human())
}

func TestTournamentHelpers(t *testing.T) {
	tour := Tournament{Players: []Registration{{UserID: 7}}}
	require.True(t, tour.HasPlayer(7))
	require.False(t, tour.HasPlayer(3))
	require.Equal(t, DefaultLevelTime, tour.EffectiveLevelTime())
	tour.LevelTime = 20
	require.Equal(t, 20, tour.EffectiveLevelTime())
}

func TestFormValueAcceptsStringsAndNumbers(t *testing.T) {
	var body struct {
		A FormValue `json:"a"`
		B FormValue `json:"b"`
		C FormValue `json:"c"`
		D FormValue `json:"d"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": "abc", "b": 1500, "c": null, "d": -1}`), &body))
	require.Equal(t, "abc", body.A.String())
	require.Equal(t, "1500", body.B.String())
	require.Equal(t, "", body.C.String())
	require.Equal(t, "-1", body.D.String())

	require.Error(t, json.Unmarshal([]byte(`{"a": true}`), &body))
}
