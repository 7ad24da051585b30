package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// --- Response types (дублируются из api, CLI не импортирует internal/api) ---

// Envelope — единый конверт ответа API.
type Envelope struct {
	IsSuccess     bool            `json:"is_success"`
	OfficialEmail string          `json:"official_email"`
	Data          json.RawMessage `json:"data,omitempty"`
	Error         string          `json:"error,omitempty"`
	ErrorCode     string          `json:"error_code,omitempty"`
}

// HealthStatus — содержимое data ответа /health.
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// --- Client ---

// Client — HTTP-клиент для Numerix API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient создаёт клиент для API.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Compute отправляет на /bfhl тело с единственным ключом операции
// и возвращает строку data из конверта.
func (c *Client) Compute(key string, value any) (string, error) {
	body, err := json.Marshal(map[string]any{key: value})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/bfhl", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	env, err := c.do(req)
	if err != nil {
		return "", err
	}

	var data string
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return "", fmt.Errorf("failed to decode data: %w", err)
	}
	return data, nil
}

// Health запрашивает /health.
func (c *Client) Health() (*HealthStatus, error) {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	env, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var status HealthStatus
	if err := json.Unmarshal(env.Data, &status); err != nil {
		return nil, fmt.Errorf("failed to decode health data: %w", err)
	}
	return &status, nil
}

// do выполняет запрос и разбирает конверт.
// Конверт с ошибкой превращается в error вида "код: сообщение".
func (c *Client) do(req *http.Request) (*Envelope, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("API error: HTTP %d", resp.StatusCode)
	}

	if !env.IsSuccess {
		if env.ErrorCode == "" {
			return nil, fmt.Errorf("API error: HTTP %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("%s: %s", env.ErrorCode, env.Error)
	}

	return &env, nil
}
