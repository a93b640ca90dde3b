// Package upstream sends authenticated calls to the vehicle valuation API and
// normalises their outcome.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	tokenUseCase "github.com/allisson/vehiclebff/internal/token/usecase"
)

const defaultMaxBodyBytes = 10 << 20

// Call describes one upstream request. Path must already have its parameters escaped.
type Call struct {
	Operation string
	Method    string
	Path      string
	Query     url.Values
	Body      any
}

// Outcome is a successful upstream response. Body is nil when upstream sent no content.
type Outcome struct {
	StatusCode int
	Body       json.RawMessage
}

// Relay forwards calls to the upstream API with a bearer token attached.
type Relay interface {
	Do(ctx context.Context, call Call) (*Outcome, error)
}

type relay struct {
	baseURL   string
	client    *http.Client
	tokens    tokenUseCase.TokenProvider
	userAgent string
	maxBody   int64
	logger    *slog.Logger
}

// NewRelay creates a Relay for baseURL. The client's timeout bounds every call.
func NewRelay(
	baseURL string,
	client *http.Client,
	tokens tokenUseCase.TokenProvider,
	userAgent string,
	logger *slog.Logger,
) Relay {
	return &relay{
		baseURL:   strings.TrimRight(baseURL, "/"),
		client:    client,
		tokens:    tokens,
		userAgent: userAgent,
		maxBody:   defaultMaxBodyBytes,
		logger:    logger,
	}
}

func (r *relay) Do(ctx context.Context, call Call) (*Outcome, error) {
	token, err := r.tokens.GetAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	req, err := r.newRequest(ctx, call)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Warn("upstream call failed",
			slog.String("operation", call.Operation),
			slog.Any("error", err),
		)
		return nil, &CallError{Operation: call.Operation, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, r.maxBody+1))
	if err != nil {
		return nil, &CallError{Operation: call.Operation, StatusCode: resp.StatusCode, Err: err}
	}
	if int64(len(body)) > r.maxBody {
		r.logger.Warn("upstream response exceeds the body limit",
			slog.String("operation", call.Operation),
			slog.Int("status_code", resp.StatusCode),
			slog.Int64("limit_bytes", r.maxBody),
		)
		return nil, fmt.Errorf("%s: %w", call.Operation, ErrResponseTooLarge)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		r.logger.Warn("upstream returned an error status",
			slog.String("operation", call.Operation),
			slog.Int("status_code", resp.StatusCode),
		)
		if resp.StatusCode == http.StatusUnauthorized {
			r.tokens.Invalidate(token)
		}
		return nil, &CallError{Operation: call.Operation, StatusCode: resp.StatusCode, Body: string(body)}
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return &Outcome{StatusCode: resp.StatusCode}, nil
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%s: %w", call.Operation, ErrMalformedResponse)
	}

	return &Outcome{StatusCode: resp.StatusCode, Body: json.RawMessage(body)}, nil
}

func (r *relay) newRequest(ctx context.Context, call Call) (*http.Request, error) {
	target := r.baseURL + call.Path
	if len(call.Query) > 0 {
		target += "?" + call.Query.Encode()
	}

	var body io.Reader
	if call.Body != nil {
		payload, err := json.Marshal(call.Body)
		if err != nil {
			return nil, fmt.Errorf("encode %s request body: %w", call.Operation, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, call.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", call.Operation, err)
	}

	req.Header.Set("Accept", "application/json")
	if r.userAgent != "" {
		req.Header.Set("User-Agent", r.userAgent)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}
