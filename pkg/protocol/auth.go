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

package protocol

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AuthorizeRequest starts the OAuth2 authorization code flow.
type AuthorizeRequest struct {
	BaseRequest
	ResponseType        string `json:"response_type"`
	ClientID            string `json:"client_id"`
	RedirectURI         string `json:"redirect_uri"`
	Scope               string `json:"scope"`
	State               string `json:"state,omitempty"`
	CodeChallenge       string `json:"code_challenge,omitempty"`
	CodeChallengeMethod string `json:"code_challenge_method,omitempty"`
}

// Validate checks the fields the authorization server requires
func (r *AuthorizeRequest) Validate() error {
	if err := r.BaseRequest.Validate(); err != nil {
		return err
	}
	if r.ClientID == "" {
		return fmt.Errorf("client_id cannot be empty")
	}
	if r.RedirectURI == "" {
		return fmt.Errorf("redirect_uri cannot be empty")
	}
	return nil
}

// AuthorizeResponse carries the URL the PSU is redirected to.
type AuthorizeResponse struct {
	RequestID        uuid.UUID `json:"requestId"`
	AuthorizationURL string    `json:"authorization_url"`
	State            string    `json:"state,omitempty"`
}

// EatCodeRequest exchanges an External Authorization Tool code.
type EatCodeRequest struct {
	BaseRequest
	ClientID    string `json:"client_id"`
	EatCode     string `json:"eat_code"`
	RedirectURI string `json:"redirect_uri"`
}

// TokenRequest exchanges an authorization code or refresh token for an
// access token. This is a single mechanical exchange; token persistence and
// refresh policy belong to the caller.
type TokenRequest struct {
	BaseRequest
	GrantType    string `json:"grant_type"`
	Code         string `json:"code,omitempty"`
	RedirectURI  string `json:"redirect_uri,omitempty"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret,omitempty"`
	CodeVerifier string `json:"code_verifier,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// TokenResponse is the issued access token.
type TokenResponse struct {
	RequestID    uuid.UUID `json:"requestId"`
	AccessToken  string    `json:"access_token"`
	TokenType    string    `json:"token_type"`
	ExpiresIn    int64     `json:"expires_in"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	Scope        string    `json:"scope"`
}

// RegisterRequest registers a TPP client with the authorization server.
type RegisterRequest struct {
	BaseRequest
	ClientName              string   `json:"client_name"`
	ClientURI               string   `json:"client_uri,omitempty"`
	RedirectURIs            []string `json:"redirect_uris"`
	GrantTypes              []string `json:"grant_types"`
	ResponseTypes           []string `json:"response_types"`
	Scope                   string   `json:"scope"`
	TokenEndpointAuthMethod string   `json:"token_endpoint_auth_method"`
}

// RegisterResponse is the issued client registration.
type RegisterResponse struct {
	RequestID             uuid.UUID  `json:"requestId"`
	ClientID              string     `json:"client_id"`
	ClientSecret          string     `json:"client_secret,omitempty"`
	ClientIDIssuedAt      *time.Time `json:"client_id_issued_at,omitempty"`
	ClientSecretExpiresAt *time.Time `json:"client_secret_expires_at,omitempty"`
}
