package logging

import (
	"context"
	"log/slog"
)

const (
	// FieldComponent is the structured logging key for component names.
	FieldComponent = "component"
	// FieldComparisonID is the structured logging key for history entry IDs.
	FieldComparisonID = "comparison_id"
	// FieldTotalDistance is the structured logging key for aggregate distances.
	FieldTotalDistance = "total_distance"
	// FieldPositions is the structured logging key for aligned position counts.
	FieldPositions = "positions"
)

type comparisonIDKey struct{}

// WithComparisonID returns a context carrying the comparison identifier.
func WithComparisonID(ctx context.Context, id string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, comparisonIDKey{}, id)
}

// ComparisonIDFromContext returns the comparison identifier stored in ctx.
func ComparisonIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(comparisonIDKey{}).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// WithContext returns a logger augmented with fields derived from ctx.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	if id, ok := ComparisonIDFromContext(ctx); ok {
		return logger.With(String(FieldComparisonID, id))
	}
	return logger
}
