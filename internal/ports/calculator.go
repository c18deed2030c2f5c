package ports

import (
	"context"

	"github.com/baditaflorin/go_fuzzy_ratio/internal/core/domain"
)

// SimilarityCalculator defines the interface for scoring a pair of texts.
type SimilarityCalculator interface {
	Compute(ctx context.Context, s1, s2 string) domain.Result
}

// CutoffScorer scores a pair of texts with a caller-supplied cutoff.
type CutoffScorer interface {
	SimilarityCalculator
	Score(ctx context.Context, s1, s2 string, cutoff int) (domain.Result, error)
	Algorithm() domain.Algorithm
}
