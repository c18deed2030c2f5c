package warmup

import (
	"context"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/baditaflorin/go_fuzzy_ratio/internal/ports"
)

// WarmupConfig defines configuration for warming up the scorers
type WarmupConfig struct {
	// Number of concurrent warmup routines to run
	Concurrency int
	// Number of iterations per routine
	Iterations int
	// Sample text size for warmup
	SampleTextSize int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultWarmupConfig returns the default warmup configuration.
// Scoring is quadratic in the input length, so samples stay short.
func DefaultWarmupConfig() WarmupConfig {
	return WarmupConfig{
		Concurrency:    runtime.NumCPU(),
		Iterations:     200,
		SampleTextSize: 120,
		Duration:       5 * time.Second,
		ForceGC:        true,
	}
}

// Manager handles warmup operations
type Manager struct {
	logger      ports.Logger
	calculators []ports.SimilarityCalculator
	normalizers []ports.Normalizer
	config      WarmupConfig
}

// NewManager creates a new warmup manager
func NewManager(logger ports.Logger, config WarmupConfig) *Manager {
	if config.Concurrency <= 0 {
		config.Concurrency = 1
	}
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterCalculator adds a calculator to be warmed up
func (wm *Manager) RegisterCalculator(calc ports.SimilarityCalculator) {
	wm.calculators = append(wm.calculators, calc)
}

// RegisterNormalizer adds a normalizer to be warmed up
func (wm *Manager) RegisterNormalizer(norm ports.Normalizer) {
	if norm == nil {
		return
	}
	wm.normalizers = append(wm.normalizers, norm)
}

// Stats summarises a warmup run.
type Stats struct {
	Calls    int64
	Duration time.Duration
}

// WarmUp runs the warmup process for all registered components
func (wm *Manager) WarmUp(ctx context.Context) Stats {
	startTime := time.Now()
	wm.logger.Info("Starting warmup",
		"components", len(wm.calculators)+len(wm.normalizers),
		"concurrency", wm.config.Concurrency,
		"iterations", wm.config.Iterations,
	)

	warmupCtx := ctx
	if wm.config.Duration > 0 {
		var cancel context.CancelFunc
		warmupCtx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	}

	var calls int64
	calls += wm.run(warmupCtx, "normalizers", len(wm.normalizers), wm.warmUpNormalizers())
	calls += wm.run(warmupCtx, "calculators", len(wm.calculators), wm.warmUpCalculators())

	if wm.config.ForceGC {
		wm.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	stats := Stats{Calls: calls, Duration: time.Since(startTime)}
	wm.logger.Info("Warmup completed",
		"calls", stats.Calls,
		"duration", stats.Duration,
	)
	return stats
}

// run executes step on every routine until the iterations are spent or ctx is done
// and returns the number of component calls made.
func (wm *Manager) run(ctx context.Context, kind string, count int, step func(ctx context.Context, j int) int) int64 {
	if count == 0 {
		return 0
	}
	wm.logger.Debug("Warming up "+kind, "count", count)

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		total int64
	)
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var local int64
			for j := 0; j < wm.config.Iterations && ctx.Err() == nil; j++ {
				local += int64(step(ctx, j))
			}
			mu.Lock()
			total += local
			mu.Unlock()
		}()
	}
	wg.Wait()
	return total
}

func (wm *Manager) warmUpNormalizers() func(context.Context, int) int {
	sample := generateSampleText(wm.config.SampleTextSize)
	return func(_ context.Context, _ int) int {
		for _, n := range wm.normalizers {
			_ = n.Normalize(sample)
		}
		return len(wm.normalizers)
	}
}

func (wm *Manager) warmUpCalculators() func(context.Context, int) int {
	original := generateSampleText(wm.config.SampleTextSize)
	similar := generateSimilarText(original, 0.1)   // 10% difference
	different := generateSimilarText(original, 0.5) // 50% difference
	fragment := original[:len(original)/4]

	return func(ctx context.Context, j int) int {
		for _, calculator := range wm.calculators {
			switch j % 4 {
			case 0:
				_ = calculator.Compute(ctx, original, original)
			case 1:
				_ = calculator.Compute(ctx, original, similar)
			case 2:
				_ = calculator.Compute(ctx, original, different)
			default:
				_ = calculator.Compute(ctx, fragment, original)
			}
		}
		return len(wm.calculators)
	}
}

// generateSampleText creates sample text of the specified size
func generateSampleText(size int) string {
	words := []string{
		"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog",
		"hello", "world", "lorem", "ipsum", "dolor", "sit", "amet", "consectetur",
		"adipiscing", "elit", "sed", "do", "eiusmod", "tempor", "incididunt",
		"ut", "labore", "et", "dolore", "magna", "aliqua",
	}

	var sb strings.Builder
	wordsNeeded := size/5 + 1 // Assuming average word length of 5

	for i := 0; i < wordsNeeded; i++ {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(words[i%len(words)])
	}

	result := sb.String()
	if len(result) > size {
		return result[:size]
	}
	return result
}

// generateSimilarText replaces the first diffRatio share of the words of original
func generateSimilarText(original string, diffRatio float64) string {
	words := strings.Fields(original)
	changeCount := int(float64(len(words)) * diffRatio)

	replacements := []string{
		"replaced", "modified", "changed", "altered", "updated",
		"different", "unique", "new", "fresh", "novel",
	}

	newWords := make([]string, len(words))
	copy(newWords, words)
	for i := 0; i < changeCount && i < len(newWords); i++ {
		newWords[i] = replacements[i%len(replacements)]
	}

	return strings.Join(newWords, " ")
}
