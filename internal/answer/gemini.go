package answer

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// geminiModel — модель генерации для коротких ответов.
const geminiModel = "gemini-2.0-flash"

// geminiInstruction направляет модель к формату коротких ответов:
// дальше по конвейеру из текста берётся только первый токен.
const geminiInstruction = "Answer with a single word or number. No explanations."

// GeminiProvider — провайдер ответов поверх Google GenAI SDK.
type GeminiProvider struct {
	client *genai.Client
}

// NewGeminiProvider создаёт провайдер.
// Пустой apiKey допустим: клиент не создаётся, Ask вернёт ErrNoCredential.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	if apiKey == "" {
		return &GeminiProvider{}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiProvider{client: client}, nil
}

// Ask выполняет один синхронный запрос генерации.
func (p *GeminiProvider) Ask(ctx context.Context, question string) (string, error) {
	if p.client == nil {
		return "", fmt.Errorf("%w: gemini api key", ErrNoCredential)
	}

	contents := []*genai.Content{
		genai.NewContentFromText(question, genai.RoleUser),
	}

	resp, err := p.client.Models.GenerateContent(ctx, geminiModel, contents,
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(geminiInstruction, genai.RoleUser),
		},
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProvider, err)
	}

	return resp.Text(), nil
}

// Close освобождает ресурсы клиента.
// У *genai.Client нет метода Close: освобождать нечего.
func (p *GeminiProvider) Close() error {
	return nil
}
