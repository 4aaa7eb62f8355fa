package gateway

import (
	"context"
	"log"
	"os"
	"time"
)

const (
	// EnvMarkMode is the environment variable name for mode selection.
	EnvMarkMode = "MARK_MODE"
	// ModeMock indicates mock mode should be used.
	ModeMock = "MOCK"
)

// NewClient creates a gateway client based on the MARK_MODE environment
// variable. If MARK_MODE=MOCK, returns a MockClient; otherwise returns a
// Gemini-backed client.
func NewClient(ctx context.Context, apiKey, model string, timeout time.Duration) (Client, error) {
	if os.Getenv(EnvMarkMode) == ModeMock {
		log.Println("MARK_MODE=MOCK detected, using mock gateway client")
		return NewMockClient(), nil
	}

	return NewGeminiClient(ctx, apiKey, model, timeout)
}
