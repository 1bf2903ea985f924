package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Dosada05/floppoker-console/models"
)

type loginResponse struct {
	Success *bool        `json:"success"`
	Message string       `json:"message"`
	User    *models.User `json:"user"`
}

// LoginDirector - вход директора по логину и паролю (POST /api/auth/login).
func (c *Client) LoginDirector(ctx context.Context, creds models.DirectorCredentials) (*models.User, error) {
	return c.login(ctx, "/api/auth/login", creds)
}

// LoginTelegram - вход игрока по Telegram username (POST /api/auth/telegram).
func (c *Client) LoginTelegram(ctx context.Context, creds models.TelegramCredentials) (*models.User, error) {
	return c.login(ctx, "/api/auth/telegram", creds)
}

func (c *Client) login(ctx context.Context, path string, body interface{}) (*models.User, error) {
	var resp loginResponse
	raw, err := c.do(ctx, http.MethodPost, path, nil, body)
	if err != nil {
		return nil, err
	}
	if err := decodeBody(raw, &resp); err != nil {
		return nil, &TransportError{Method: http.MethodPost, Path: path, Err: err}
	}
	if resp.Success == nil {
		return nil, &TransportError{Method: http.MethodPost, Path: path, Err: errors.New("malformed response envelope")}
	}
	if !*resp.Success {
		return nil, &APIError{Message: resp.Message}
	}
	if resp.User == nil {
		return nil, &TransportError{Method: http.MethodPost, Path: path, Err: errors.New("login response without user")}
	}
	return resp.User, nil
}

type profileResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Profile *models.Profile `json:"profile"`
}

// Profile загружает профиль пользователя (GET /api/user/profile/{id}).
func (c *Client) Profile(ctx context.Context, userID int) (*models.Profile, error) {
	var resp profileResponse
	if err := c.getObject(ctx, fmt.Sprintf("/api/user/profile/%d", userID), nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success || resp.Profile == nil {
		return nil, &APIError{Message: resp.Message}
	}
	return resp.Profile, nil
}
