// Package apiclient - типизированный HTTP-клиент удалённого бэкенда турниров.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const maxResponseBytes = 4 << 20 // 4MB

// Client обращается к бэкенду по фиксированному базовому адресу.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

type Option func(*Client)

// WithHTTPClient подменяет http.Client (используется в тестах).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func New(baseURL string, timeout time.Duration, logger *slog.Logger, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid backend url %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("backend url %q must use http or https", baseURL)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// envelope - общий ответ мутирующих эндпоинтов бэкенда.
type envelope struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
}

// Result - успешный ответ мутирующего эндпоинта.
type Result struct {
	Message string
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = c.baseURL.Path + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// do выполняет запрос и возвращает тело ответа. Любая ошибка уровня
// транспорта оборачивается в ErrTransport.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s request: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reader)
	if err != nil {
		return nil, fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &TransportError{Method: method, Path: path, Err: fmt.Errorf("read body: %w", err)}
	}

	c.logger.Debug("backend call",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
	)

	// Бэкенд сообщает об ошибках через success:false, в том числе с кодами 4xx/5xx.
	// Ответ без такого конверта при ошибочном коде считается сбоем транспорта.
	if resp.StatusCode >= http.StatusBadRequest {
		if env, ok := parseEnvelope(raw); ok && env.Success != nil && !*env.Success {
			return raw, nil
		}
		return nil, &TransportError{Method: method, Path: path, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}
	return raw, nil
}

func parseEnvelope(raw []byte) (envelope, bool) {
	var env envelope
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return env, false
	}
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return env, false
	}
	return env, true
}

// call выполняет мутирующий запрос и разбирает конверт {success, message}.
func (c *Client) call(ctx context.Context, method, path string, body interface{}) (Result, error) {
	raw, err := c.do(ctx, method, path, nil, body)
	if err != nil {
		return Result{}, err
	}
	env, ok := parseEnvelope(raw)
	if !ok || env.Success == nil {
		return Result{}, &TransportError{Method: method, Path: path, Err: errors.New("malformed response envelope")}
	}
	if !*env.Success {
		return Result{}, &APIError{Message: env.Message}
	}
	return Result{Message: env.Message}, nil
}

// getObject читает объект, который при ошибке заменяется конвертом success:false.
func (c *Client) getObject(ctx context.Context, path string, query url.Values, dst interface{}) error {
	raw, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	if env, ok := parseEnvelope(raw); ok && env.Success != nil && !*env.Success {
		return &APIError{Message: env.Message}
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return &TransportError{Method: http.MethodGet, Path: path, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// getList читает массив. Объект вместо массива - ошибка приложения.
func getList[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, error) {
	raw, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		env, _ := parseEnvelope(trimmed)
		return nil, &APIError{Message: env.Message}
	}
	var out []T
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return nil, &TransportError{Method: http.MethodGet, Path: path, Err: fmt.Errorf("decode response: %w", err)}
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

type userIDBody struct {
	UserID int `json:"user_id"`
}
