// Package fuzzy is the configurable front end of the scoring engine. It validates
// cutoffs, optionally preprocesses text, logs through l.Logger and can warm the
// engine up before first use.
package fuzzy

import (
	"context"
	"fmt"
	"sync"

	"github.com/baditaflorin/go_fuzzy_ratio/internal/adapters/logger"
	"github.com/baditaflorin/go_fuzzy_ratio/internal/adapters/normalizer"
	"github.com/baditaflorin/go_fuzzy_ratio/internal/core/domain"
	"github.com/baditaflorin/go_fuzzy_ratio/internal/core/fuzz"
	"github.com/baditaflorin/go_fuzzy_ratio/internal/ports"
	"github.com/baditaflorin/go_fuzzy_ratio/internal/warmup"
	"github.com/baditaflorin/l"
)

// Result is the outcome of one scoring call.
type Result = domain.Result

// Algorithm names one of the ratio functions.
type Algorithm = domain.Algorithm

// Algorithms, in interface order.
const (
	Ratio                 = domain.AlgorithmRatio
	PartialRatio          = domain.AlgorithmPartialRatio
	TokenSortRatio        = domain.AlgorithmTokenSortRatio
	PartialTokenSortRatio = domain.AlgorithmPartialTokenSortRatio
	TokenSetRatio         = domain.AlgorithmTokenSetRatio
	PartialTokenSetRatio  = domain.AlgorithmPartialTokenSetRatio
	WeightedRatio         = domain.AlgorithmWeightedRatio
	QuickRatio            = domain.AlgorithmQuickRatio
)

// Errors returned by the Scorer.
var (
	ErrInvalidCutoff    = domain.ErrInvalidCutoff
	ErrUnknownAlgorithm = domain.ErrUnknownAlgorithm
	ErrCancelled        = domain.ErrCancelled
)

// DefaultCutoff keeps every score.
const DefaultCutoff = 0

// WarmUpConfig controls how hard WarmUp exercises the engine.
type WarmUpConfig = warmup.WarmupConfig

// DefaultWarmUpConfig returns the warm-up settings New uses with WithWarmUp.
func DefaultWarmUpConfig() WarmUpConfig {
	return warmup.DefaultWarmupConfig()
}

// Algorithms returns every algorithm in interface order.
func Algorithms() []Algorithm {
	return domain.Algorithms()
}

// ParseAlgorithm resolves an algorithm name such as "token_set_ratio".
func ParseAlgorithm(name string) (Algorithm, error) {
	return domain.ParseAlgorithm(name)
}

// Scorer scores text pairs with any of the engine's algorithms.
// It is safe for concurrent use.
type Scorer struct {
	calculators map[Algorithm]ports.CutoffScorer
	cutoff      int
	logger      ports.Logger
	normalizer  ports.Normalizer

	warmMu sync.Mutex
	warmed bool
}

// Option defines a functional option for configuring a Scorer.
type Option func(*scorerConfig)

type scorerConfig struct {
	Cutoff       int
	Logger       ports.Logger
	Normalizer   ports.Normalizer
	WarmUp       bool
	WarmUpConfig warmup.WarmupConfig
	err          error
}

// WithCutoff sets the cutoff used when a call does not supply one.
func WithCutoff(cutoff int) Option {
	return func(cfg *scorerConfig) {
		cfg.Cutoff = cutoff
	}
}

// WithLogger sets a custom logger.
func WithLogger(l l.Logger) Option {
	return func(cfg *scorerConfig) {
		cfg.Logger = logger.FromExisting(l)
	}
}

// WithNormalizer sets a custom text preprocessor.
func WithNormalizer(normalizer ports.Normalizer) Option {
	return func(cfg *scorerConfig) {
		cfg.Normalizer = normalizer
	}
}

// WithDefaultProcessor lower-cases text and strips everything but letters and digits.
func WithDefaultProcessor() Option {
	return withNormalizerType(normalizer.DefaultNormalizerType)
}

// WithASCIIProcessor behaves like WithDefaultProcessor and also drops non-ASCII runes.
func WithASCIIProcessor() Option {
	return withNormalizerType(normalizer.ASCIINormalizerType)
}

// WithFoldingProcessor behaves like WithDefaultProcessor and also strips diacritics.
func WithFoldingProcessor() Option {
	return withNormalizerType(normalizer.FoldingNormalizerType)
}

// WithProcessorType selects a preprocessor by name: none, default, ascii or folding.
func WithProcessorType(name string) Option {
	return func(cfg *scorerConfig) {
		t, err := normalizer.ParseNormalizerType(name)
		if err != nil {
			cfg.err = err
			return
		}
		withNormalizerType(t)(cfg)
	}
}

func withNormalizerType(t normalizer.NormalizerType) Option {
	return func(cfg *scorerConfig) {
		if t == normalizer.NoopNormalizerType {
			cfg.Normalizer = nil
			return
		}
		cfg.Normalizer = normalizer.NewNormalizerFactory().CreateNormalizer(t)
	}
}

// WithWarmUp enables warm-up on initialization.
func WithWarmUp(enable bool) Option {
	return func(cfg *scorerConfig) {
		cfg.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration.
func WithWarmUpConfig(config WarmUpConfig) Option {
	return func(cfg *scorerConfig) {
		cfg.WarmUpConfig = config
		cfg.WarmUp = true
	}
}

// New creates a new Scorer.
func New(opts ...Option) (*Scorer, error) {
	defaultConfig := fuzz.DefaultConfig()

	config := &scorerConfig{
		Cutoff:       defaultConfig.Cutoff,
		WarmUpConfig: warmup.DefaultWarmupConfig(),
	}

	for _, opt := range opts {
		opt(config)
	}
	if config.err != nil {
		return nil, config.err
	}

	if config.Logger == nil {
		var err error
		config.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	coreConfig := fuzz.SimilarityConfig{Cutoff: config.Cutoff}
	calculators := make(map[Algorithm]ports.CutoffScorer, len(domain.Algorithms()))
	for _, algorithm := range domain.Algorithms() {
		calc, err := fuzz.NewCalculator(algorithm, coreConfig, config.Logger, config.Normalizer)
		if err != nil {
			return nil, err
		}
		calculators[algorithm] = calc
	}

	s := &Scorer{
		calculators: calculators,
		cutoff:      config.Cutoff,
		logger:      config.Logger,
		normalizer:  config.Normalizer,
	}

	if config.WarmUp {
		s.WarmUp(context.Background(), config.WarmUpConfig)
	}

	return s, nil
}

// Cutoff returns the cutoff applied when a call does not supply one.
func (s *Scorer) Cutoff() int {
	return s.cutoff
}

// Compute scores s1 and s2 with algorithm using the configured cutoff.
func (s *Scorer) Compute(ctx context.Context, algorithm Algorithm, s1, s2 string) (Result, error) {
	return s.ComputeWithCutoff(ctx, algorithm, s1, s2, s.cutoff)
}

// ComputeWithCutoff scores s1 and s2 with algorithm. A cutoff outside [0, 100]
// is rejected with ErrInvalidCutoff.
func (s *Scorer) ComputeWithCutoff(ctx context.Context, algorithm Algorithm, s1, s2 string, cutoff int) (Result, error) {
	calc, ok := s.calculators[algorithm]
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, algorithm)
	}
	return calc.Score(ctx, s1, s2, cutoff)
}

// ComputeAll scores s1 and s2 with every algorithm, in interface order.
func (s *Scorer) ComputeAll(ctx context.Context, s1, s2 string) ([]Result, error) {
	return s.ComputeAllWithCutoff(ctx, s1, s2, s.cutoff)
}

// ComputeAllWithCutoff is ComputeAll with an explicit cutoff.
func (s *Scorer) ComputeAllWithCutoff(ctx context.Context, s1, s2 string, cutoff int) ([]Result, error) {
	results := make([]Result, 0, len(s.calculators))
	for _, algorithm := range domain.Algorithms() {
		res, err := s.ComputeWithCutoff(ctx, algorithm, s1, s2, cutoff)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

func (s *Scorer) score(ctx context.Context, algorithm Algorithm, s1, s2 string) (int, error) {
	res, err := s.Compute(ctx, algorithm, s1, s2)
	if err != nil {
		return 0, err
	}
	return res.Score, nil
}

// Ratio returns the plain ratio of s1 and s2.
func (s *Scorer) Ratio(ctx context.Context, s1, s2 string) (int, error) {
	return s.score(ctx, Ratio, s1, s2)
}

// PartialRatio returns the ratio of the best alignment of the shorter input.
func (s *Scorer) PartialRatio(ctx context.Context, s1, s2 string) (int, error) {
	return s.score(ctx, PartialRatio, s1, s2)
}

// TokenSortRatio returns the ratio of the inputs with their words sorted.
func (s *Scorer) TokenSortRatio(ctx context.Context, s1, s2 string) (int, error) {
	return s.score(ctx, TokenSortRatio, s1, s2)
}

// PartialTokenSortRatio returns the partial ratio of the inputs with their words sorted.
func (s *Scorer) PartialTokenSortRatio(ctx context.Context, s1, s2 string) (int, error) {
	return s.score(ctx, PartialTokenSortRatio, s1, s2)
}

// TokenSetRatio compares shared and unique words with the plain ratio.
func (s *Scorer) TokenSetRatio(ctx context.Context, s1, s2 string) (int, error) {
	return s.score(ctx, TokenSetRatio, s1, s2)
}

// PartialTokenSetRatio compares shared and unique words with the partial ratio.
func (s *Scorer) PartialTokenSetRatio(ctx context.Context, s1, s2 string) (int, error) {
	return s.score(ctx, PartialTokenSetRatio, s1, s2)
}

// WeightedRatio returns the length-aware combination of the other ratios.
func (s *Scorer) WeightedRatio(ctx context.Context, s1, s2 string) (int, error) {
	return s.score(ctx, WeightedRatio, s1, s2)
}

// QuickRatio returns the order-insensitive character overlap estimate.
func (s *Scorer) QuickRatio(ctx context.Context, s1, s2 string) (int, error) {
	return s.score(ctx, QuickRatio, s1, s2)
}

// WarmUp exercises every calculator and the preprocessor once up front.
// Concurrent callers wait for the first warm-up and then return.
func (s *Scorer) WarmUp(ctx context.Context, config WarmUpConfig) {
	s.warmMu.Lock()
	defer s.warmMu.Unlock()

	if s.warmed {
		s.logger.Debug("Scorer already warmed up, skipping")
		return
	}

	warmupMgr := warmup.NewManager(s.logger, config)
	for _, algorithm := range domain.Algorithms() {
		warmupMgr.RegisterCalculator(s.calculators[algorithm])
	}
	warmupMgr.RegisterNormalizer(s.normalizer)

	warmupMgr.WarmUp(ctx)
	s.warmed = true
}

// Close releases the scorer's logger.
func (s *Scorer) Close() error {
	return s.logger.Close()
}
