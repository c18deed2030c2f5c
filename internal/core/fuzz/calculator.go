package fuzz

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/baditaflorin/go_fuzzy_ratio/internal/core/domain"
	"github.com/baditaflorin/go_fuzzy_ratio/internal/core/score"
	"github.com/baditaflorin/go_fuzzy_ratio/internal/ports"
)

// SimilarityConfig holds configuration for a fuzzy calculator.
type SimilarityConfig struct {
	Cutoff int
}

// DefaultConfig returns a default configuration.
func DefaultConfig() SimilarityConfig {
	return SimilarityConfig{Cutoff: 0}
}

// Validate checks if the configuration is valid.
func (c SimilarityConfig) Validate() error {
	return score.ValidateCutoff(c.Cutoff)
}

// Calculator scores text pairs with a single algorithm.
type Calculator struct {
	algorithm  domain.Algorithm
	config     SimilarityConfig
	logger     ports.Logger
	normalizer ports.Normalizer
}

// NewCalculator creates a calculator for algorithm. A nil normalizer compares the
// inputs exactly as given.
func NewCalculator(algorithm domain.Algorithm, config SimilarityConfig, logger ports.Logger, normalizer ports.Normalizer) (*Calculator, error) {
	if !algorithm.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownAlgorithm, algorithm)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Calculator{
		algorithm:  algorithm,
		config:     config,
		logger:     logger,
		normalizer: normalizer,
	}, nil
}

// Algorithm returns the algorithm this calculator runs.
func (c *Calculator) Algorithm() domain.Algorithm {
	return c.algorithm
}

// Compute scores the pair with the configured cutoff. Failures are reported
// through Details["error"].
func (c *Calculator) Compute(ctx context.Context, s1, s2 string) domain.Result {
	result, err := c.Score(ctx, s1, s2, c.config.Cutoff)
	if err != nil {
		return domain.Result{
			Name:      c.algorithm.String(),
			Algorithm: c.algorithm,
			Cutoff:    c.config.Cutoff,
			Details:   map[string]interface{}{"error": err.Error()},
		}
	}
	return result
}

// Score scores the pair with an explicit cutoff, rejecting cutoffs outside [0, 100].
func (c *Calculator) Score(ctx context.Context, s1, s2 string, cutoff int) (domain.Result, error) {
	if err := score.ValidateCutoff(cutoff); err != nil {
		c.logger.Warn("Rejected cutoff", "algorithm", c.algorithm.String(), "cutoff", cutoff)
		return domain.Result{}, err
	}

	select {
	case <-ctx.Done():
		c.logger.Error("Computation cancelled", "error", ctx.Err())
		return domain.Result{}, fmt.Errorf("%w: %w", domain.ErrCancelled, ctx.Err())
	default:
	}

	if c.normalizer != nil {
		s1 = c.normalizer.Normalize(s1)
		s2 = c.normalizer.Normalize(s2)
		c.logger.Debug("Normalized texts",
			"first", s1,
			"second", s2,
		)
	}

	raw, err := Raw(c.algorithm, s1, s2)
	if err != nil {
		return domain.Result{}, err
	}
	final := score.Normalize(raw, cutoff)

	len1 := utf8.RuneCountInString(s1)
	len2 := utf8.RuneCountInString(s2)
	lengthRatio := 1.0
	if len1 != len2 {
		lengthRatio = float64(min(len1, len2)) / float64(max(len1, len2))
	}

	details := map[string]interface{}{
		"first_length":  len1,
		"second_length": len2,
		"length_ratio":  lengthRatio,
		"cutoff":        cutoff,
	}

	c.logger.Debug("Computed fuzzy score",
		"algorithm", c.algorithm.String(),
		"raw", raw,
		"score", final,
		"details", details,
	)

	return domain.Result{
		Name:         c.algorithm.String(),
		Algorithm:    c.algorithm,
		Score:        final,
		Raw:          raw,
		Cutoff:       cutoff,
		Passed:       final >= cutoff,
		FirstLength:  len1,
		SecondLength: len2,
		LengthRatio:  lengthRatio,
		Details:      details,
	}, nil
}
