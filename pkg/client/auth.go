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
	"context"

	"github.com/polishapi-project/polishapi-go/pkg/protocol"
)

// AS service endpoints.
const (
	pathAuthorize    = "/v3_0.1/auth/v3_0.1/authorize"
	pathAuthorizeExt = "/v3_0.1/auth/v3_0.1/authorizeExt"
	pathToken        = "/v3_0.1/auth/v3_0.1/token"
	pathRegister     = "/v3_0.1/auth/v3_0.1/register"
)

// AuthService issues authorization (AS) calls.
type AuthService struct {
	client *Client
}

// Authorize requests an OAuth2 authorization code
func (s *AuthService) Authorize(ctx context.Context, req *protocol.AuthorizeRequest) (*protocol.AuthorizeResponse, error) {
	var resp protocol.AuthorizeResponse
	if err := s.client.post(ctx, pathAuthorize, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AuthorizeExt requests authorization using an External Authorization Tool
// code. The ASPSP answers 204 on success.
func (s *AuthService) AuthorizeExt(ctx context.Context, req *protocol.EatCodeRequest) error {
	return s.client.post(ctx, pathAuthorizeExt, req, nil)
}

// Token exchanges an authorization code or refresh token for an access
// token. Persistence and refresh policy are the caller's concern.
func (s *AuthService) Token(ctx context.Context, req *protocol.TokenRequest) (*protocol.TokenResponse, error) {
	var resp protocol.TokenResponse
	if err := s.client.post(ctx, pathToken, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register registers the TPP client with the authorization server
func (s *AuthService) Register(ctx context.Context, req *protocol.RegisterRequest) (*protocol.RegisterResponse, error) {
	var resp protocol.RegisterResponse
	if err := s.client.post(ctx, pathRegister, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
