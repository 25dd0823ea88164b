// Copyright (C) 2026 PolishAPI-Go Project
//
// This file is part of polishapi-go.
//
// polishapi-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// polishapi-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with polishapi-go.  If not, see <https://www.gnu.org/licenses/>.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/polishapi-project/polishapi-go/pkg/signer"
	"github.com/polishapi-project/polishapi-go/pkg/transport"
	"github.com/polishapi-project/polishapi-go/pkg/validation"
)

// APIError is a non-2xx PolishAPI response.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("API error %s (HTTP %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error (HTTP %d): %s", e.StatusCode, e.Message)
}

// apiErrorBody is the error shape ASPSPs return on rejection.
type apiErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// validatable is implemented by request types that carry financial
// identifiers.
type validatable interface {
	Validate() error
}

// Client is a PolishAPI TPP client. All calls are signed through the
// transport layer; the Client itself never touches key material.
type Client struct {
	config      *Config
	httpClient  *http.Client
	accessToken string
}

// NewClient creates a client signing with key. The wire call goes through
// inner when non-nil, otherwise http.DefaultTransport.
func NewClient(config *Config, key *signer.SigningKey, inner http.RoundTripper) (*Client, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	rt, err := transport.NewSigningRoundTripper(key, transport.Options{
		Inner:  inner,
		Logger: config.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create signing transport: %w", err)
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Transport: rt,
			Timeout:   config.timeout,
		},
	}, nil
}

// SetAccessToken sets the bearer token sent as Authorization. An empty
// token removes the header from subsequent requests.
func (c *Client) SetAccessToken(token string) error {
	if token == "" {
		c.accessToken = ""
		return nil
	}
	header := "Bearer " + token
	if err := validation.AuthorizationHeader(header); err != nil {
		return err
	}
	c.accessToken = header
	return nil
}

// Auth returns the authorization service
func (c *Client) Auth() *AuthService {
	return &AuthService{client: c}
}

// Accounts returns the account information service
func (c *Client) Accounts() *AccountService {
	return &AccountService{client: c}
}

// Payments returns the payment initiation service
func (c *Client) Payments() *PaymentService {
	return &PaymentService{client: c}
}

// Funds returns the funds confirmation service
func (c *Client) Funds() *FundsService {
	return &FundsService{client: c}
}

// post validates, signs, and sends a request body to path, decoding the
// response into out. A nil out discards the response body (204 endpoints).
func (c *Client) post(ctx context.Context, path string, in any, out any) error {
	if v, ok := in.(validatable); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("invalid request: %w", err)
		}
	}

	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	target, err := url.JoinPath(c.config.baseURL.String(), path)
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	req.Header.Set("Accept-Charset", "utf-8")
	req.Header.Set("Accept-Language", c.config.acceptLanguage)
	req.Header.Set("User-Agent", c.config.userAgent)
	if c.accessToken != "" {
		req.Header.Set("Authorization", c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	var body apiErrorBody
	if err := json.Unmarshal(raw, &body); err == nil && body.Code != "" {
		return &APIError{StatusCode: resp.StatusCode, Code: body.Code, Message: body.Message}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: string(raw)}
}
