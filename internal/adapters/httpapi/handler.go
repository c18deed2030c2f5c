// Package httpapi exposes the scorer over fasthttp.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"time"
	"unicode/utf8"

	"github.com/baditaflorin/go_fuzzy_ratio/internal/core/domain"
	"github.com/baditaflorin/go_fuzzy_ratio/internal/ports"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// DefaultRequestTimeout bounds a single scoring request.
const DefaultRequestTimeout = 30 * time.Second

// Scorer is the part of the fuzzy facade the handlers need.
type Scorer interface {
	Cutoff() int
	ComputeWithCutoff(ctx context.Context, algorithm domain.Algorithm, s1, s2 string, cutoff int) (domain.Result, error)
	ComputeAllWithCutoff(ctx context.Context, s1, s2 string, cutoff int) ([]domain.Result, error)
}

// Request is the body of every scoring endpoint. A nil Cutoff means the
// server's configured default.
type Request struct {
	S1     *string `json:"s1"`
	S2     *string `json:"s2"`
	Cutoff *int    `json:"cutoff,omitempty"`
}

// Response is the result of a single algorithm.
type Response struct {
	Algorithm    string                 `json:"algorithm"`
	Score        int                    `json:"score"`
	Raw          float64                `json:"raw"`
	Cutoff       int                    `json:"cutoff"`
	Passed       bool                   `json:"passed"`
	FirstLength  int                    `json:"first_length"`
	SecondLength int                    `json:"second_length"`
	LengthRatio  float64                `json:"length_ratio"`
	Details      map[string]interface{} `json:"details,omitempty"`
}

// AllResponse is the body returned by /all.
type AllResponse struct {
	Results []Response `json:"results"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// Handler routes requests to the scorer.
type Handler struct {
	scorer        Scorer
	logger        ports.Logger
	maxTextLength int
	timeout       time.Duration
	started       time.Time
}

// Option configures a Handler.
type Option func(*Handler)

// WithMaxTextLength rejects inputs longer than n code points; 0 disables the check.
func WithMaxTextLength(n int) Option {
	return func(h *Handler) {
		h.maxTextLength = n
	}
}

// WithTimeout bounds each scoring request.
func WithTimeout(d time.Duration) Option {
	return func(h *Handler) {
		if d > 0 {
			h.timeout = d
		}
	}
}

// NewHandler creates a Handler.
func NewHandler(scorer Scorer, logger ports.Logger, opts ...Option) *Handler {
	h := &Handler{
		scorer:  scorer,
		logger:  logger,
		timeout: DefaultRequestTimeout,
		started: time.Now(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle is the fasthttp.RequestHandler for the server.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()

	requestID := string(ctx.Request.Header.Peek(RequestIDHeader))
	if requestID == "" {
		requestID = uuid.NewString()
	}
	ctx.SetUserValue("request_id", requestID)

	ctx.Response.Header.Set("Content-Type", "application/json")
	ctx.Response.Header.Set(RequestIDHeader, requestID)

	path := string(ctx.Path())
	switch path {
	case "/health":
		h.handleHealth(ctx)
	case "/algorithms":
		h.handleAlgorithms(ctx)
	case "/all":
		h.handleAll(ctx)
	default:
		algorithm, err := domain.ParseAlgorithm(path[1:])
		if err != nil || path[1:] != algorithm.String() {
			h.writeError(ctx, fasthttp.StatusNotFound, "Not found")
			break
		}
		h.handleScore(ctx, algorithm)
	}

	h.logger.Info("Request processed",
		"request_id", requestID,
		"method", string(ctx.Method()),
		"path", path,
		"status", ctx.Response.StatusCode(),
		"ip", ctx.RemoteIP().String(),
		"duration", time.Since(startTime),
	)
}

func (h *Handler) handleHealth(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		h.writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	h.writeJSON(ctx, fasthttp.StatusOK, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
		"uptime": time.Since(h.started).Round(time.Second).String(),
	})
}

func (h *Handler) handleAlgorithms(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		h.writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	algorithms := domain.Algorithms()
	names := make([]string, 0, len(algorithms))
	for _, a := range algorithms {
		names = append(names, a.String())
	}
	h.writeJSON(ctx, fasthttp.StatusOK, map[string]interface{}{
		"algorithms":     names,
		"default_cutoff": h.scorer.Cutoff(),
	})
}

func (h *Handler) handleScore(ctx *fasthttp.RequestCtx, algorithm domain.Algorithm) {
	req, ok := h.parseRequest(ctx)
	if !ok {
		return
	}

	c, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	result, err := h.scorer.ComputeWithCutoff(c, algorithm, *req.S1, *req.S2, h.cutoff(req))
	if err != nil {
		h.writeComputeError(ctx, err)
		return
	}
	h.writeJSON(ctx, fasthttp.StatusOK, toResponse(result))
}

func (h *Handler) handleAll(ctx *fasthttp.RequestCtx) {
	req, ok := h.parseRequest(ctx)
	if !ok {
		return
	}

	c, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	results, err := h.scorer.ComputeAllWithCutoff(c, *req.S1, *req.S2, h.cutoff(req))
	if err != nil {
		h.writeComputeError(ctx, err)
		return
	}

	resp := AllResponse{Results: make([]Response, 0, len(results))}
	for _, r := range results {
		resp.Results = append(resp.Results, toResponse(r))
	}
	h.writeJSON(ctx, fasthttp.StatusOK, resp)
}

// parseRequest decodes and checks the body, writing the error response itself.
func (h *Handler) parseRequest(ctx *fasthttp.RequestCtx) (Request, bool) {
	var req Request
	if !ctx.IsPost() {
		h.writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return req, false
	}
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.writeError(ctx, fasthttp.StatusBadRequest, "Invalid request: "+err.Error())
		return req, false
	}
	if req.S1 == nil || req.S2 == nil {
		h.writeError(ctx, fasthttp.StatusBadRequest, "Both s1 and s2 are required")
		return req, false
	}
	if h.maxTextLength > 0 &&
		(utf8.RuneCountInString(*req.S1) > h.maxTextLength || utf8.RuneCountInString(*req.S2) > h.maxTextLength) {
		h.writeError(ctx, fasthttp.StatusRequestEntityTooLarge, "Input text exceeds the maximum length")
		return req, false
	}
	return req, true
}

func (h *Handler) cutoff(req Request) int {
	if req.Cutoff == nil {
		return h.scorer.Cutoff()
	}
	return *req.Cutoff
}

func (h *Handler) writeComputeError(ctx *fasthttp.RequestCtx, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCutoff):
		h.writeError(ctx, fasthttp.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrCancelled):
		h.writeError(ctx, fasthttp.StatusServiceUnavailable, err.Error())
	default:
		h.logger.Error("Scoring failed", "error", err)
		h.writeError(ctx, fasthttp.StatusInternalServerError, "Internal server error")
	}
}

func toResponse(r domain.Result) Response {
	return Response{
		Algorithm:    r.Name,
		Score:        r.Score,
		Raw:          r.Raw,
		Cutoff:       r.Cutoff,
		Passed:       r.Passed,
		FirstLength:  r.FirstLength,
		SecondLength: r.SecondLength,
		LengthRatio:  r.LengthRatio,
		Details:      r.Details,
	}
}

func (h *Handler) writeJSON(ctx *fasthttp.RequestCtx, status int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		h.logger.Error("Error marshaling JSON response", "error", err)
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		ctx.SetBodyString(`{"error":"Internal server error"}`)
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func (h *Handler) writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	requestID, _ := ctx.UserValue("request_id").(string)
	h.writeJSON(ctx, status, ErrorResponse{Error: message, RequestID: requestID})
}
