package answer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// wolframEndpoint — Short Answers API: простой текст в ответ
	// на URL-кодированный вопрос.
	wolframEndpoint = "https://api.wolframalpha.com/v1/result"

	// maxAnswerBody — предел чтения тела ответа.
	// Короткие ответы занимают десятки байт, предел страхует чтение.
	maxAnswerBody = 64 * 1024
)

// WolframProvider — провайдер коротких ответов Wolfram|Alpha.
//
// GET https://api.wolframalpha.com/v1/result?appid=…&i=…
// Успех — 200 с текстом ответа; всё остальное (включая 501,
// которым API сообщает «не могу ответить») — ошибка провайдера.
type WolframProvider struct {
	appID    string
	endpoint string
	client   *http.Client
}

// NewWolframProvider создаёт провайдер с тайм-аутом на весь вызов.
// Пустой appID допустим: Ask вернёт ErrNoCredential без обращения к сети.
func NewWolframProvider(appID string, timeout time.Duration) *WolframProvider {
	return &WolframProvider{
		appID:    appID,
		endpoint: wolframEndpoint,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Ask выполняет один синхронный запрос к Short Answers API.
func (p *WolframProvider) Ask(ctx context.Context, question string) (string, error) {
	if p.appID == "" {
		return "", fmt.Errorf("%w: wolfram app id", ErrNoCredential)
	}

	q := url.Values{}
	q.Set("appid", p.appID)
	q.Set("i", question)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", ErrProvider, err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProvider, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxAnswerBody))
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", ErrProvider, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: HTTP %d: %s",
			ErrProvider, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return string(body), nil
}
