package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/baditaflorin/go_fuzzy_ratio/internal/adapters/logger"
	"github.com/baditaflorin/go_fuzzy_ratio/internal/core/domain"
	"github.com/baditaflorin/go_fuzzy_ratio/internal/core/fuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

// engineScorer runs the real calculators without the facade's logger setup.
type engineScorer struct {
	cutoff int
	calcs  map[domain.Algorithm]*fuzz.Calculator
}

func newEngineScorer(t *testing.T, cutoff int) *engineScorer {
	t.Helper()
	s := &engineScorer{cutoff: cutoff, calcs: make(map[domain.Algorithm]*fuzz.Calculator)}
	for _, a := range domain.Algorithms() {
		c, err := fuzz.NewCalculator(a, fuzz.SimilarityConfig{Cutoff: cutoff}, logger.NewNopLogger(), nil)
		require.NoError(t, err)
		s.calcs[a] = c
	}
	return s
}

func (s *engineScorer) Cutoff() int { return s.cutoff }

func (s *engineScorer) ComputeWithCutoff(ctx context.Context, a domain.Algorithm, s1, s2 string, cutoff int) (domain.Result, error) {
	return s.calcs[a].Score(ctx, s1, s2, cutoff)
}

func (s *engineScorer) ComputeAllWithCutoff(ctx context.Context, s1, s2 string, cutoff int) ([]domain.Result, error) {
	var out []domain.Result
	for _, a := range domain.Algorithms() {
		r, err := s.ComputeWithCutoff(ctx, a, s1, s2, cutoff)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

type failingScorer struct {
	err error
}

func (f failingScorer) Cutoff() int { return 0 }

func (f failingScorer) ComputeWithCutoff(context.Context, domain.Algorithm, string, string, int) (domain.Result, error) {
	return domain.Result{}, f.err
}

func (f failingScorer) ComputeAllWithCutoff(context.Context, string, string, int) ([]domain.Result, error) {
	return nil, f.err
}

func do(h *Handler, method, path, body string) *fasthttp.RequestCtx {
	var ctx fasthttp.RequestCtx
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(path)
	if body != "" {
		ctx.Request.SetBodyString(body)
	}
	h.Handle(&ctx)
	return &ctx
}

func decode[T any](t *testing.T, ctx *fasthttp.RequestCtx) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &v))
	return v
}

func TestScoreEndpoints(t *testing.T) {
	h := NewHandler(newEngineScorer(t, 0), logger.NewNopLogger())

	tests := []struct {
		path  string
		body  string
		score int
	}{
		{"/ratio", `{"s1":"this is a test","s2":"this is a test!"}`, 97},
		{"/partial_ratio", `{"s1":"this is a test","s2":"this is a test!"}`, 100},
		{"/token_sort_ratio", `{"s1":"fuzzy wuzzy was a bear","s2":"wuzzy fuzzy was a bear"}`, 100},
		{"/token_set_ratio", `{"s1":"fuzzy was a bear","s2":"fuzzy fuzzy was a bear"}`, 100},
		{"/partial_token_sort_ratio", `{"s1":"bear fuzzy","s2":"was a fuzzy bear"}`, 100},
		{"/partial_token_set_ratio", `{"s1":"fuzzy","s2":"fuzzy fuzzy was a bear"}`, 100},
		{"/weighted_ratio", `{"s1":"lazy dog","s2":"the quick brown fox jumps over the lazy dog"}`, 100},
		{"/quick_ratio", `{"s1":"abc","s2":"cba"}`, 100},
		{"/ratio", `{"s1":"","s2":""}`, 100},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			ctx := do(h, fasthttp.MethodPost, tt.path, tt.body)
			require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode(), string(ctx.Response.Body()))

			resp := decode[Response](t, ctx)
			assert.Equal(t, tt.path[1:], resp.Algorithm)
			assert.Equal(t, tt.score, resp.Score)
			assert.True(t, resp.Passed)
		})
	}
}

func TestCutoffHandling(t *testing.T) {
	h := NewHandler(newEngineScorer(t, 0), logger.NewNopLogger())
	body := func(cutoff int) string {
		return fmt.Sprintf(`{"s1":"this is a test","s2":"this is a test!","cutoff":%d}`, cutoff)
	}

	t.Run("below cutoff collapses", func(t *testing.T) {
		ctx := do(h, fasthttp.MethodPost, "/ratio", body(98))
		require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
		resp := decode[Response](t, ctx)
		assert.Equal(t, 0, resp.Score)
		assert.False(t, resp.Passed)
		assert.Equal(t, 98, resp.Cutoff)
	})

	t.Run("at cutoff kept", func(t *testing.T) {
		ctx := do(h, fasthttp.MethodPost, "/ratio", body(97))
		resp := decode[Response](t, ctx)
		assert.Equal(t, 97, resp.Score)
	})

	for _, cutoff := range []int{-1, 101} {
		t.Run(fmt.Sprintf("invalid %d", cutoff), func(t *testing.T) {
			ctx := do(h, fasthttp.MethodPost, "/ratio", body(cutoff))
			assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
			assert.Contains(t, decode[ErrorResponse](t, ctx).Error, "cutoff")
		})
	}
}

func TestDefaultCutoffFromScorer(t *testing.T) {
	h := NewHandler(newEngineScorer(t, 98), logger.NewNopLogger())

	ctx := do(h, fasthttp.MethodPost, "/ratio", `{"s1":"this is a test","s2":"this is a test!"}`)
	resp := decode[Response](t, ctx)
	assert.Equal(t, 98, resp.Cutoff)
	assert.Equal(t, 0, resp.Score)
}

func TestAllEndpoint(t *testing.T) {
	h := NewHandler(newEngineScorer(t, 0), logger.NewNopLogger())

	ctx := do(h, fasthttp.MethodPost, "/all", `{"s1":"new york mets","s2":"new york meats"}`)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	resp := decode[AllResponse](t, ctx)
	require.Len(t, resp.Results, len(domain.Algorithms()))
	for i, a := range domain.Algorithms() {
		assert.Equal(t, a.String(), resp.Results[i].Algorithm)
		assert.GreaterOrEqual(t, resp.Results[i].Score, 0)
		assert.LessOrEqual(t, resp.Results[i].Score, 100)
	}
}

func TestRequestErrors(t *testing.T) {
	h := NewHandler(newEngineScorer(t, 0), logger.NewNopLogger(), WithMaxTextLength(5))

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"unknown path", fasthttp.MethodPost, "/levenshtein", `{}`, fasthttp.StatusNotFound},
		{"non canonical path", fasthttp.MethodPost, "/weightedratio", `{"s1":"a","s2":"b"}`, fasthttp.StatusNotFound},
		{"root", fasthttp.MethodGet, "/", "", fasthttp.StatusNotFound},
		{"get on score", fasthttp.MethodGet, "/ratio", "", fasthttp.StatusMethodNotAllowed},
		{"post on health", fasthttp.MethodPost, "/health", "", fasthttp.StatusMethodNotAllowed},
		{"malformed json", fasthttp.MethodPost, "/ratio", `{"s1":`, fasthttp.StatusBadRequest},
		{"missing s2", fasthttp.MethodPost, "/ratio", `{"s1":"abc"}`, fasthttp.StatusBadRequest},
		{"too long", fasthttp.MethodPost, "/all", `{"s1":"abcdef","s2":"abc"}`, fasthttp.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := do(h, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, ctx.Response.StatusCode())
			resp := decode[ErrorResponse](t, ctx)
			assert.NotEmpty(t, resp.Error)
			assert.NotEmpty(t, resp.RequestID)
		})
	}
}

func TestScorerErrors(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("%w: %w", domain.ErrCancelled, context.DeadlineExceeded), fasthttp.StatusServiceUnavailable},
		{fmt.Errorf("boom"), fasthttp.StatusInternalServerError},
	}

	for _, tt := range tests {
		h := NewHandler(failingScorer{err: tt.err}, logger.NewNopLogger())
		ctx := do(h, fasthttp.MethodPost, "/all", `{"s1":"a","s2":"b"}`)
		assert.Equal(t, tt.status, ctx.Response.StatusCode(), tt.err.Error())
	}
}

func TestRequestID(t *testing.T) {
	h := NewHandler(newEngineScorer(t, 0), logger.NewNopLogger())

	t.Run("generated", func(t *testing.T) {
		ctx := do(h, fasthttp.MethodGet, "/health", "")
		assert.Len(t, string(ctx.Response.Header.Peek(RequestIDHeader)), 36)
	})

	t.Run("propagated", func(t *testing.T) {
		var ctx fasthttp.RequestCtx
		ctx.Request.Header.SetMethod(fasthttp.MethodGet)
		ctx.Request.SetRequestURI("/health")
		ctx.Request.Header.Set(RequestIDHeader, "req-42")
		h.Handle(&ctx)
		assert.Equal(t, "req-42", string(ctx.Response.Header.Peek(RequestIDHeader)))
	})
}

func TestAlgorithmsAndHealth(t *testing.T) {
	h := NewHandler(newEngineScorer(t, 40), logger.NewNopLogger())

	ctx := do(h, fasthttp.MethodGet, "/algorithms", "")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	var listing struct {
		Algorithms    []string `json:"algorithms"`
		DefaultCutoff int      `json:"default_cutoff"`
	}
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &listing))
	assert.Len(t, listing.Algorithms, 8)
	assert.Equal(t, "ratio", listing.Algorithms[0])
	assert.Equal(t, 40, listing.DefaultCutoff)

	ctx = do(h, fasthttp.MethodGet, "/health", "")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "ok", decode[map[string]interface{}](t, ctx)["status"])
}
