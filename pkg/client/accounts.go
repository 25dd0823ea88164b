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

// AIS service endpoints. PolishAPI exposes transaction listing as one
// endpoint per booking status rather than a query parameter.
const (
	pathGetAccounts          = "/v3_0.1/accounts/v3_0.1/getAccounts"
	pathGetAccount           = "/v3_0.1/accounts/v3_0.1/getAccount"
	pathGetTransactionDetail = "/v3_0.1/accounts/v3_0.1/getTransactionDetail"
	pathGetHolds             = "/v3_0.1/accounts/v3_0.1/getHolds"
	pathDeleteConsent        = "/v3_0.1/accounts/v3_0.1/deleteConsent"

	pathTransactionsPrefix = "/v3_0.1/accounts/v3_0.1/"
)

// AccountService issues account information (AIS) calls.
type AccountService struct {
	client *Client
}

// GetAccounts lists the accounts the consent covers
func (s *AccountService) GetAccounts(ctx context.Context, req *protocol.GetAccountsRequest) (*protocol.GetAccountsResponse, error) {
	var resp protocol.GetAccountsResponse
	if err := s.client.post(ctx, pathGetAccounts, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetAccount fetches a single account
func (s *AccountService) GetAccount(ctx context.Context, req *protocol.GetAccountRequest) (*protocol.GetAccountResponse, error) {
	var resp protocol.GetAccountResponse
	if err := s.client.post(ctx, pathGetAccount, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetTransactionsDone lists completed transactions
func (s *AccountService) GetTransactionsDone(ctx context.Context, req *protocol.GetTransactionsRequest) (*protocol.GetTransactionsResponse, error) {
	return s.getTransactionsByStatus(ctx, req, "getTransactionsDone")
}

// GetTransactionsPending lists pending transactions
func (s *AccountService) GetTransactionsPending(ctx context.Context, req *protocol.GetTransactionsRequest) (*protocol.GetTransactionsResponse, error) {
	return s.getTransactionsByStatus(ctx, req, "getTransactionsPending")
}

// GetTransactionsRejected lists rejected transactions
func (s *AccountService) GetTransactionsRejected(ctx context.Context, req *protocol.GetTransactionsRequest) (*protocol.GetTransactionsResponse, error) {
	return s.getTransactionsByStatus(ctx, req, "getTransactionsRejected")
}

// GetTransactionsCancelled lists cancelled transactions
func (s *AccountService) GetTransactionsCancelled(ctx context.Context, req *protocol.GetTransactionsRequest) (*protocol.GetTransactionsResponse, error) {
	return s.getTransactionsByStatus(ctx, req, "getTransactionsCancelled")
}

// GetTransactionsScheduled lists scheduled transactions
func (s *AccountService) GetTransactionsScheduled(ctx context.Context, req *protocol.GetTransactionsRequest) (*protocol.GetTransactionsResponse, error) {
	return s.getTransactionsByStatus(ctx, req, "getTransactionsScheduled")
}

func (s *AccountService) getTransactionsByStatus(ctx context.Context, req *protocol.GetTransactionsRequest, endpoint string) (*protocol.GetTransactionsResponse, error) {
	var resp protocol.GetTransactionsResponse
	if err := s.client.post(ctx, pathTransactionsPrefix+endpoint, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetTransactionDetail fetches a single transaction
func (s *AccountService) GetTransactionDetail(ctx context.Context, req *protocol.GetTransactionDetailRequest) (*protocol.GetTransactionDetailResponse, error) {
	var resp protocol.GetTransactionDetailResponse
	if err := s.client.post(ctx, pathGetTransactionDetail, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetHolds lists blocked amounts on an account
func (s *AccountService) GetHolds(ctx context.Context, req *protocol.GetHoldsRequest) (*protocol.GetHoldsResponse, error) {
	var resp protocol.GetHoldsResponse
	if err := s.client.post(ctx, pathGetHolds, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteConsent revokes an access consent
func (s *AccountService) DeleteConsent(ctx context.Context, req *protocol.DeleteConsentRequest) (*protocol.DeleteConsentResponse, error) {
	var resp protocol.DeleteConsentResponse
	if err := s.client.post(ctx, pathDeleteConsent, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
