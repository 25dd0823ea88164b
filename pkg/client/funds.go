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

// CAF service endpoint.
const pathFundsConfirmation = "/v3_0.1/funds/v3_0.1/confirmation"

// FundsService issues confirmation of availability of funds (CAF) calls.
type FundsService struct {
	client *Client
}

// ConfirmFunds asks whether the account covers the instructed amount
func (s *FundsService) ConfirmFunds(ctx context.Context, req *protocol.FundsConfirmationRequest) (*protocol.FundsConfirmationResponse, error) {
	var resp protocol.FundsConfirmationResponse
	if err := s.client.post(ctx, pathFundsConfirmation, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
