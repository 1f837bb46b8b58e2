// Package imds implements the MetadataClient port against the EC2 Instance
// Metadata Service (IMDSv2). Every lookup is token-first: a PUT to the token
// endpoint yields a short-lived session token that fact reads present in a
// request header. Responses are plain text, not JSON.
package imds

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/todo-api/internal/domain"
	"github.com/jsamuelsen11/todo-api/internal/platform/httpclient"
	"github.com/jsamuelsen11/todo-api/internal/ports"
)

// Compile-time check that Client implements ports.MetadataClient.
var _ ports.MetadataClient = (*Client)(nil)

const (
	tokenPath    = "/latest/api/token"
	metadataPath = "/latest/meta-data/"

	tokenTTLHeader = "X-aws-ec2-metadata-token-ttl-seconds"
	tokenHeader    = "X-aws-ec2-metadata-token"

	// tokenTTLSeconds is the session token lifetime requested during the
	// handshake; 6 hours is the IMDSv2 maximum.
	tokenTTLSeconds = 21600

	// maxFactSize bounds how much of a metadata response body is read.
	maxFactSize = 1 << 16 // 64 KB
)

// Client fetches instance metadata through the instrumented HTTP client,
// inheriting its circuit breaker, retry, and tracing behavior.
type Client struct {
	client *httpclient.Client
	logger *slog.Logger
}

// New creates an IMDS client backed by the given HTTP client and logger.
func New(client *httpclient.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{client: client, logger: logger}
}

// GetToken requests a session token from the token endpoint.
func (c *Client) GetToken(ctx context.Context) (string, error) {
	url := c.client.BaseURL() + tokenPath

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("creating token request: %w", err)
	}
	req.Header.Set(tokenTTLHeader, strconv.Itoa(tokenTTLSeconds))

	token, err := c.execute(req)
	if err != nil {
		return "", fmt.Errorf("fetching metadata token: %w", err)
	}
	return token, nil
}

// GetFact reads a single metadata fact by path using the session token.
func (c *Client) GetFact(ctx context.Context, token, path string) (string, error) {
	url := c.client.BaseURL() + metadataPath + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("creating fact request for %s: %w", path, err)
	}
	req.Header.Set(tokenHeader, token)

	fact, err := c.execute(req)
	if err != nil {
		return "", fmt.Errorf("fetching metadata fact %s: %w", path, err)
	}
	return fact, nil
}

// execute sends the request and returns the trimmed plain-text body.
// Any status other than 200 maps to domain.ErrUnavailable. It ensures
// resp.Body is closed.
func (c *Client) execute(req *http.Request) (string, error) {
	resp, err := c.client.Do(req.Context(), req)
	if err != nil {
		// httpclient.Do can return both resp and err when retries are
		// exhausted on a retryable status; the body still needs closing.
		if resp != nil {
			c.closeBody(req.Context(), resp)
		}
		return "", fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer c.closeBody(req.Context(), resp)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s %s: status %d: %w",
			req.Method, req.URL.Path, resp.StatusCode, domain.ErrUnavailable)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFactSize))
	if err != nil {
		return "", fmt.Errorf("reading response from %s: %w", req.URL.Path, err)
	}

	return strings.TrimSpace(string(body)), nil
}

// closeBody closes an HTTP response body and logs on failure.
func (c *Client) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		c.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}
