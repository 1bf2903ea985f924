package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Dosada05/floppoker-console/models"
)

func newTestClient(t *testing.T, mux *http.ServeMux) *Client {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	c, err := New(srv.URL, 2*time.Second, nil)
	require.NoError(t, err)
	return c
}

func writeBody(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestNewRejectsBadURL(t *testing.T) {
	_, err := New("ftp://example.org", time.Second, nil)
	require.Error(t, err)
	_, err = New("://broken", time.Second, nil)
	require.Error(t, err)
}

func TestLoginDirector(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body models.DirectorCredentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		if body.Password != "secret" {
			writeBody(w, http.StatusOK, `{"success": false, "message": "Неверный пароль"}`)
			return
		}
		writeBody(w, http.StatusOK, `{"success": true, "user": {"id": 1, "role": "director", "full_name": "Иван", "username": "ivan"}}`)
	})
	c := newTestClient(t, mux)

	user, err := c.LoginDirector(context.Background(), models.DirectorCredentials{Username: "ivan", Password: "secret"})
	require.NoError(t, err)
	require.Equal(t, 1, user.ID)
	require.True(t, user.IsDirector())

	_, err = c.LoginDirector(context.Background(), models.DirectorCredentials{Username: "ivan", Password: "nope"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "Неверный пароль", apiErr.Message)
}

func TestGetTournamentApplicationError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/tournaments/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") == "404" {
			writeBody(w, http.StatusOK, `{"success": false, "message": "Турнир не найден"}`)
			return
		}
		writeBody(w, http.StatusOK, `{
			"id": 5, "name": "Пятница", "status": "late_registration",
			"rent_cost": 1500, "rent_chips": 10000, "level_time": 20,
			"start_time": "Fri, 16 Oct 2026 19:00:00 GMT", "late_reg_end_time": "2026-10-16T21:00:00",
			"registered_players": 2, "total_chips": 3500,
			"players": [{"user_id": 7, "game_nickname": "seven", "rating": 1000, "chips": 1000}]
		}`)
	})
	c := newTestClient(t, mux)

	tour, err := c.GetTournament(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, models.StatusLateRegistration, tour.Status)
	require.Equal(t, 19, tour.StartTime.Hour())
	require.Len(t, tour.Players, 1)

	_, err = c.GetTournament(context.Background(), 404)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.False(t, errors.Is(err, ErrTransport))
}

func TestListTournamentsPassesStatusAndHandlesEnvelope(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/tournaments", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("status") {
		case "completed":
			writeBody(w, http.StatusOK, `[{"id": 1, "name": "Старый", "status": "completed"}]`)
		case "broken":
			writeBody(w, http.StatusOK, `{"success": false, "message": "db down"}`)
		default:
			writeBody(w, http.StatusOK, `[]`)
		}
	})
	c := newTestClient(t, mux)

	list, err := c.ListTournaments(context.Background(), "completed")
	require.NoError(t, err)
	require.Len(t, list, 1)

	list, err = c.ListTournaments(context.Background(), "")
	require.NoError(t, err)
	require.NotNil(t, list)
	require.Empty(t, list)

	_, err = c.ListTournaments(context.Background(), "broken")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "db down", apiErr.Message)
}

func TestMutatingCallsSendUserID(t *testing.T) {
	var got map[string]interface{}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/tournaments/{id}/{action}", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		got["path_action"] = r.PathValue("action")
		writeBody(w, http.StatusOK, `{"success": true, "message": "Турнир запущен. Поздняя регистрация доступна."}`)
	})
	c := newTestClient(t, mux)

	res, err := c.Transition(context.Background(), 3, "start", 1)
	require.NoError(t, err)
	require.Equal(t, "Турнир запущен. Поздняя регистрация доступна.", res.Message)
	require.Equal(t, float64(1), got["user_id"])
	require.Equal(t, "start", got["path_action"])

	_, err = c.UpdateChips(context.Background(), 3, 1, 9, 0)
	require.NoError(t, err)
	require.Equal(t, "update-chips", got["path_action"])
	require.Equal(t, float64(9), got["player_user_id"])
	require.Equal(t, float64(0), got["chips"])
}

func TestTransportErrors(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/rating", func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusInternalServerError, `<html>oops</html>`)
	})
	mux.HandleFunc("POST /api/register", func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusOK, `not json`)
	})
	mux.HandleFunc("GET /api/tournaments/{id}/tables", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		writeBody(w, http.StatusOK, `[]`)
	})
	c := newTestClient(t, mux)

	_, err := c.Rating(context.Background())
	require.ErrorIs(t, err, ErrTransport)

	_, err = c.Register(context.Background(), 1, 2)
	require.ErrorIs(t, err, ErrTransport)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = c.Tables(ctx, 1)
	require.ErrorIs(t, err, ErrTransport)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestEnvelopeOnErrorStatusIsApplicationError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /api/admin/players/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusNotFound, `{"success": false, "message": "Игрок не найден"}`)
	})
	c := newTestClient(t, mux)

	_, err := c.DeletePlayer(context.Background(), 8, 1)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "Игрок не найден", apiErr.Message)
}

func TestProfile(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/user/profile/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusOK, `{"success": true, "profile": {"id": 7, "full_name": "Пётр", "role": "player", "rating": {"score": 1200, "position": null}}}`)
	})
	c := newTestClient(t, mux)

	p, err := c.Profile(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, p.Rating)
	require.Equal(t, 1200, p.Rating.Score)
	require.Nil(t, p.Rating.Position)
}
