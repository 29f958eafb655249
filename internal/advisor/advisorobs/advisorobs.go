package advisorobs

import (
	"context"

	"stock-advisor/internal/interfaces"
	"stock-advisor/internal/logger"
	"stock-advisor/internal/trace"
)

// observableAdvisor wraps an Advisor with observability (logging & tracing)
type observableAdvisor struct {
	advisor interfaces.Advisor
}

// Compile-time interface check
var _ interfaces.Advisor = (*observableAdvisor)(nil)

// Wrap wraps an advisor with observability middleware
func Wrap(advisor interfaces.Advisor) interfaces.Advisor {
	return &observableAdvisor{advisor: advisor}
}

func (oa *observableAdvisor) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, span := trace.StartSpan(ctx, "advisor.Generate")
	defer span.End()

	// Skip(1) so logs report the wrapped call site, not this middleware
	logger.DebugSkip(ctx, 1, "Requesting analysis text", "prompt_length", len(prompt))

	text, err := oa.advisor.Generate(ctx, prompt)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Failed to generate analysis text", err)
		return "", err
	}

	logger.InfoSkip(ctx, 1, "Analysis text received", "response_length", len(text))
	return text, nil
}
