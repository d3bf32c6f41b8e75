package llm

import "context"

type purposeKey struct{}

// WithPurpose tags the context with the reason for an upcoming Generate
// call ("plan-generation", "evaluation", "topic-clustering"). The logging
// decorator reads the tag when it records the request event.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom reads the purpose tag, or "unknown" for untagged contexts.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey{}).(string); ok {
		return v
	}
	return "unknown"
}
