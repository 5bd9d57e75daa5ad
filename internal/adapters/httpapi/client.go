// Package httpapi implements the JSON-over-HTTP clients for the user, vehicle,
// reservation and billing services.
//
// Every call follows the same contract: one request, no retry, no client-side
// timeout (cancellation comes only from the caller's context), a non-2xx status is
// domain.ErrUnexpectedStatus and an unparseable or invalid body is
// domain.ErrInvalidResponse.
package httpapi

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

	"github.com/bnema/carshare-cli/internal/domain"
	"github.com/bnema/carshare-cli/internal/logging"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	maxResponseBytes = 1 << 20
	userAgent        = "carshare-cli"
	requestIDHeader  = "X-Request-Id"
)

type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
	validate   *validator.Validate
}

func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	log := cfg.Logger
	if log == nil {
		log = logging.Discard()
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		log:        log,
		validate:   validator.New(),
	}
}

// do issues one request. payload, when non-nil, is sent as a JSON body. out, when
// non-nil, receives the decoded response body; a nil out drains the body unread.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload any, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	request, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set("User-Agent", userAgent)

	requestID := uuid.NewString()
	request.Header.Set(requestIDHeader, requestID)
	log := c.log.With(
		slog.String("request_id", requestID),
		slog.String("method", method),
		slog.String("url", endpoint),
	)
	log.Debug("sending request")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer response.Body.Close()

	data, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	log.Debug("received response", slog.Int("status", response.StatusCode), slog.Int("bytes", len(data)))

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return fmt.Errorf("%w: status %d: %s", domain.ErrUnexpectedStatus, response.StatusCode, strings.TrimSpace(string(data)))
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: decode payload: %w", domain.ErrInvalidResponse, err)
	}

	return nil
}

// expectJSON is used for calls whose response content is unused but must still be
// a JSON document.
func (c *Client) expectJSON(ctx context.Context, method, path string, payload any) error {
	var raw json.RawMessage
	return c.do(ctx, method, path, nil, payload, &raw)
}

func (c *Client) validateStruct(payload any) error {
	if err := c.validate.Struct(payload); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidResponse, err)
	}

	return nil
}

func validateEach[T any](c *Client, items []T) error {
	for i := range items {
		if err := c.validateStruct(items[i]); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}

	return nil
}

func idPath(prefix string, id int) string {
	return fmt.Sprintf("%s/%d", prefix, id)
}
