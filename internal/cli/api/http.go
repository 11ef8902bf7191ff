package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client — тонкий HTTP-клиент к серверу ItemKeeper.
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

// NewClient создаёт клиента; token может быть пустым для публичных маршрутов.
func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Do отправляет запрос. payload != nil сериализуется в JSON.
// Если токен задан, он передаётся в заголовке Authorization: Bearer.
func (c *Client) Do(ctx context.Context, method, path string, payload any) (*http.Response, []byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, fmt.Errorf("read response: %w", err)
	}
	return resp, data, nil
}

// ErrorMessage достаёт текст ошибки из ответа сервера:
// {"error":{"message":..}} в обычном режиме или plain text в legacy.
func ErrorMessage(body []byte) string {
	var structured struct {
		Error struct {
			Kind    string `json:"kind"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &structured); err == nil && structured.Error.Message != "" {
		return structured.Error.Message
	}
	return strings.TrimSpace(string(body))
}

// ResultMessage достаёт текст подтверждения: {"result":..} или plain text.
func ResultMessage(body []byte) string {
	var res struct {
		Result string `json:"result"`
	}
	if err := json.Unmarshal(body, &res); err == nil && res.Result != "" {
		return res.Result
	}
	return strings.TrimSpace(string(body))
}
