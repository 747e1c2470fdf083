package hostaway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/listing-reviews/internal/domain/repository"
	"github.com/ignatzorin/listing-reviews/internal/logger"
)

const statusSuccess = "success"

// envelope - общий формат ответа API вендора.
type envelope struct {
	Status string          `json:"status"`
	Count  int             `json:"count"`
	Offset int             `json:"offset"`
	Result json.RawMessage `json:"result"`
}

func (e *envelope) hasResult() bool {
	raw := strings.TrimSpace(string(e.Result))
	return raw != "" && raw != "null"
}

// Client ходит в API вендора. Ошибки транспорта и ответы с неуспешным
// статусом превращаются в repository.ErrUpstream, 404 - в repository.ErrNotFound.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient создаёт клиент. timeout ограничивает каждый запрос целиком.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// do выполняет запрос и разбирает конверт. Статус конверта проверяет вызывающий.
func (c *Client) do(ctx context.Context, method, path string, query url.Values) (*envelope, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("hostaway: не удалось создать запрос: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-control", "no-cache")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hostaway: %w: %w", repository.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, repository.ErrNotFound
	}
	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<10))
		logger.Get().WithFields(logrus.Fields{
			"method": method,
			"path":   path,
			"status": resp.StatusCode,
		}).Warn("hostaway: неуспешный ответ вендора")
		return nil, fmt.Errorf("hostaway: %w: код ответа %d: %s", repository.ErrUpstream, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("hostaway: %w: не удалось разобрать ответ: %w", repository.ErrUpstream, err)
	}
	return &env, nil
}

// get выполняет GET и требует успешный статус конверта.
func (c *Client) get(ctx context.Context, path string, query url.Values) (*envelope, error) {
	env, err := c.do(ctx, http.MethodGet, path, query)
	if err != nil {
		return nil, err
	}
	if env.Status != statusSuccess {
		return nil, fmt.Errorf("hostaway: %w: статус %q", repository.ErrUpstream, env.Status)
	}
	return env, nil
}

// decodeResult разбирает result в dst; отсутствующий result - ErrNotFound.
func decodeResult(env *envelope, dst interface{}) error {
	if !env.hasResult() {
		return repository.ErrNotFound
	}
	if err := json.Unmarshal(env.Result, dst); err != nil {
		return fmt.Errorf("hostaway: %w: некорректный result: %w", repository.ErrUpstream, err)
	}
	return nil
}

// Ping проверяет, что API вендора отвечает.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.get(ctx, "/listings", url.Values{"limit": {"1"}})
	return err
}
