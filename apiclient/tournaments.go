package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Dosada05/floppoker-console/models"
)

// ListTournaments - GET /api/tournaments[?status=].
func (c *Client) ListTournaments(ctx context.Context, status string) ([]models.Tournament, error) {
	var query url.Values
	if status != "" {
		query = url.Values{"status": []string{status}}
	}
	return getList[models.Tournament](ctx, c, "/api/tournaments", query)
}

// GetTournament - GET /api/tournaments/{id}; success:false вместо турнира → *APIError.
func (c *Client) GetTournament(ctx context.Context, id int) (*models.Tournament, error) {
	var t models.Tournament
	if err := c.getObject(ctx, fmt.Sprintf("/api/tournaments/%d", id), nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) CreateTournament(ctx context.Context, input models.TournamentInput) (Result, error) {
	return c.call(ctx, http.MethodPost, "/api/tournaments", input)
}

func (c *Client) UpdateTournament(ctx context.Context, id int, input models.TournamentInput) (Result, error) {
	return c.call(ctx, http.MethodPut, fmt.Sprintf("/api/tournaments/%d", id), input)
}

func (c *Client) DeleteTournament(ctx context.Context, id, userID int) (Result, error) {
	return c.call(ctx, http.MethodDelete, fmt.Sprintf("/api/tournaments/%d", id), userIDBody{UserID: userID})
}

// Transition запрашивает переход жизненного цикла: start, close-late-reg или complete.
func (c *Client) Transition(ctx context.Context, id int, transition string, userID int) (Result, error) {
	return c.call(ctx, http.MethodPost, fmt.Sprintf("/api/tournaments/%d/%s", id, url.PathEscape(transition)), userIDBody{UserID: userID})
}

func (c *Client) CreateTables(ctx context.Context, id, userID int) (Result, error) {
	return c.call(ctx, http.MethodPost, fmt.Sprintf("/api/tournaments/%d/create-tables", id), userIDBody{UserID: userID})
}

// Tables - GET /api/tournaments/{id}/tables.
func (c *Client) Tables(ctx context.Context, id int) ([]models.Table, error) {
	return getList[models.Table](ctx, c, fmt.Sprintf("/api/tournaments/%d/tables", id), nil)
}

type updateChipsBody struct {
	UserID       int `json:"user_id"`
	PlayerUserID int `json:"player_user_id"`
	Chips        int `json:"chips"`
}

func (c *Client) UpdateChips(ctx context.Context, id, userID, playerUserID, chips int) (Result, error) {
	return c.call(ctx, http.MethodPost, fmt.Sprintf("/api/tournaments/%d/update-chips", id), updateChipsBody{
		UserID:       userID,
		PlayerUserID: playerUserID,
		Chips:        chips,
	})
}

type registerBody struct {
	UserID       int `json:"user_id"`
	TournamentID int `json:"tournament_id"`
}

// Register - POST /api/register.
func (c *Client) Register(ctx context.Context, userID, tournamentID int) (Result, error) {
	return c.call(ctx, http.MethodPost, "/api/register", registerBody{UserID: userID, TournamentID: tournamentID})
}
