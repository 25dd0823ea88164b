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
	"fmt"
	"net/url"
	"time"

	polishapi "github.com/polishapi-project/polishapi-go"
	"github.com/rs/zerolog"
)

// Config holds the client configuration.
type Config struct {
	baseURL        *url.URL
	clientID       string
	clientSecret   string
	timeout        time.Duration
	userAgent      string
	acceptLanguage string
	logger         zerolog.Logger
}

// NewConfig creates a configuration for the ASPSP at baseURL.
func NewConfig(baseURL string) (*Config, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("base URL must be absolute: %q", baseURL)
	}

	return &Config{
		baseURL:        parsed,
		timeout:        30 * time.Second,
		userAgent:      "polishapi-go/" + polishapi.Version,
		acceptLanguage: "en-US",
		logger:         zerolog.Nop(),
	}, nil
}

// WithClientID sets the OAuth2 client id
func (c *Config) WithClientID(clientID string) *Config {
	c.clientID = clientID
	return c
}

// WithClientSecret sets the OAuth2 client secret
func (c *Config) WithClientSecret(clientSecret string) *Config {
	c.clientSecret = clientSecret
	return c
}

// WithTimeout sets the request timeout
func (c *Config) WithTimeout(timeout time.Duration) *Config {
	c.timeout = timeout
	return c
}

// WithUserAgent sets the User-Agent header value
func (c *Config) WithUserAgent(userAgent string) *Config {
	c.userAgent = userAgent
	return c
}

// WithAcceptLanguage sets the Accept-Language header value
func (c *Config) WithAcceptLanguage(acceptLanguage string) *Config {
	c.acceptLanguage = acceptLanguage
	return c
}

// WithLogger sets the logger for request events
func (c *Config) WithLogger(logger zerolog.Logger) *Config {
	c.logger = logger
	return c
}

// ClientID returns the configured OAuth2 client id
func (c *Config) ClientID() string {
	return c.clientID
}
