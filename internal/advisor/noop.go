package advisor

import (
	"context"

	"stock-advisor/internal/logger"
)

// Noop is the fallback advisor used when no generative model is configured.
// It always recommends Hold.
type Noop struct{}

func NewNoop() *Noop {
	return &Noop{}
}

func (n *Noop) Generate(ctx context.Context, prompt string) (string, error) {
	logger.Debug(ctx, "Noop advisor called - always returns Hold")
	return "Hold\n- No generative model configured; defaulting to Hold.", nil
}
