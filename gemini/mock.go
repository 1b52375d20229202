package gemini

import "context"

// Compile-time interface verification.
var _ GenerativeClient = (*MockGenerativeClient)(nil)

// MockGenerativeClient is a mock implementation of GenerativeClient.
type MockGenerativeClient struct {
	GenerateTextFn func(ctx context.Context, model, prompt string) (string, error)
}

func (m *MockGenerativeClient) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	return m.GenerateTextFn(ctx, model, prompt)
}
