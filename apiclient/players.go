package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Dosada05/floppoker-console/models"
)

// Players - административный список игроков (GET /api/admin/players?user_id=).
func (c *Client) Players(ctx context.Context, userID int) ([]models.Player, error) {
	query := url.Values{"user_id": []string{strconv.Itoa(userID)}}
	return getList[models.Player](ctx, c, "/api/admin/players", query)
}

func (c *Client) CreatePlayer(ctx context.Context, input models.PlayerInput) (Result, error) {
	return c.call(ctx, http.MethodPost, "/api/admin/create_player", input)
}

func (c *Client) DeletePlayer(ctx context.Context, id, userID int) (Result, error) {
	return c.call(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/players/%d", id), userIDBody{UserID: userID})
}
