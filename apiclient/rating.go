package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Dosada05/floppoker-console/models"
)

func (c *Client) Rating(ctx context.Context) ([]models.RatingEntry, error) {
	return getList[models.RatingEntry](ctx, c, "/api/rating", nil)
}

func (c *Client) CreateRating(ctx context.Context, input models.RatingInput) (Result, error) {
	return c.call(ctx, http.MethodPost, "/api/rating", input)
}

func (c *Client) UpdateRating(ctx context.Context, id int, input models.RatingInput) (Result, error) {
	return c.call(ctx, http.MethodPut, fmt.Sprintf("/api/rating/%d", id), input)
}

func (c *Client) DeleteRating(ctx context.Context, id, userID int) (Result, error) {
	return c.call(ctx, http.MethodDelete, fmt.Sprintf("/api/rating/%d", id), userIDBody{UserID: userID})
}
