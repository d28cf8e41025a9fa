// Package client submits program search inquiries to the inquiry API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"inquiryapi/internal/catalog"
)

const (
	submitPath      = "/api/submit-form"
	formOptionsPath = "/api/form-options"

	// MsgUnknownError is shown when the server answers without a usable message.
	MsgUnknownError = "An unknown error occurred."
)

// Inquiry is the JSON body of a submission.
type Inquiry struct {
	FieldOfStudy   string `json:"fieldOfStudy"`
	Destination    string `json:"destination"`
	EducationLevel string `json:"educationLevel"`
}

// Response is the body returned by the submission endpoint.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// SubmitError is returned when the server did not accept the submission.
type SubmitError struct {
	// StatusCode is 0 when no response was received.
	StatusCode int
	Message    string
	Err        error
}

func (e *SubmitError) Error() string {
	return e.Message
}

func (e *SubmitError) Unwrap() error {
	return e.Err
}

// Client talks to the inquiry API over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default traced HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New returns a client for the API at baseURL (e.g. http://localhost:8080).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   10 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit posts one inquiry. It succeeds only on HTTP 200 with status "success";
// every other outcome is a *SubmitError carrying the message to display.
func (c *Client) Submit(ctx context.Context, inq Inquiry) (*Response, error) {
	body, err := json.Marshal(inq)
	if err != nil {
		return nil, fmt.Errorf("encode inquiry: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+submitPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &SubmitError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil && !errors.Is(err, io.EOF) {
		return nil, &SubmitError{StatusCode: resp.StatusCode, Message: MsgUnknownError, Err: err}
	}

	if resp.StatusCode == http.StatusOK && out.Status == "success" {
		return &out, nil
	}

	msg := out.Message
	if msg == "" {
		msg = MsgUnknownError
	}
	return nil, &SubmitError{StatusCode: resp.StatusCode, Message: msg}
}

// FormOptions fetches the select options offered by the form.
func (c *Client) FormOptions(ctx context.Context) (*catalog.FormOptions, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+formOptionsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get form options: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get form options: unexpected status %d", resp.StatusCode)
	}

	var opts catalog.FormOptions
	if err := json.NewDecoder(resp.Body).Decode(&opts); err != nil {
		return nil, fmt.Errorf("decode form options: %w", err)
	}
	return &opts, nil
}
