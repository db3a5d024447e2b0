package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"lexcal/pkg/auth"
	"lexcal/pkg/utils"
)

// ErrAuthMissing is returned when no session token is available. It is
// raised before any request goes out.
var ErrAuthMissing = errors.New("no session token found, sign in first")

// RequestError is a non-2xx response from the event store, carrying
// the server's error message when it sent one.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("event store returned %d: %s", e.Status, e.Message)
}

// Client talks to the practice-management REST backend. The token
// source is injected so the "missing token" precondition is explicit
// and the client is testable without a real session store.
type Client struct {
	baseURL string
	tokens  auth.TokenSource
	http    *http.Client
}

// NewClient creates a store client. A nil httpClient falls back to
// http.DefaultClient (no timeout beyond the transport's own).
func NewClient(baseURL string, tokens auth.TokenSource, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: baseURL,
		tokens:  tokens,
		http:    httpClient,
	}
}

// errorBody is the shape of a non-2xx response payload
type errorBody struct {
	Error string `json:"error"`
}

// do issues one authenticated request and decodes the response into
// out when non-nil. Every operation funnels through here so auth and
// error normalization happen in exactly one place.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	token, err := c.tokens.Token()
	if err != nil {
		return err
	}
	if token == "" {
		return ErrAuthMissing
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	utils.Log("%s %s", method, u)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("event store unreachable: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := http.StatusText(resp.StatusCode)
		var eb errorBody
		if json.Unmarshal(data, &eb) == nil && eb.Error != "" {
			msg = eb.Error
		}
		return &RequestError{Status: resp.StatusCode, Message: msg}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}
