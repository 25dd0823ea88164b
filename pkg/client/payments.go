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

// PIS service endpoints.
const (
	pathPaymentDomestic    = "/v3_0.1/payments/v3_0.1/domestic"
	pathPaymentEEA         = "/v3_0.1/payments/v3_0.1/EEA"
	pathPaymentNonEEA      = "/v3_0.1/payments/v3_0.1/nonEEA"
	pathPaymentTax         = "/v3_0.1/payments/v3_0.1/tax"
	pathPaymentStatus      = "/v3_0.1/payments/v3_0.1/status"
	pathPaymentInformation = "/v3_0.1/payments/v3_0.1/information"
)

// PaymentService issues payment initiation (PIS) calls.
type PaymentService struct {
	client *Client
}

// InitiateDomesticPayment initiates a domestic credit transfer
func (s *PaymentService) InitiateDomesticPayment(ctx context.Context, req *protocol.DomesticPaymentRequest) (*protocol.PaymentInitiationResponse, error) {
	var resp protocol.PaymentInitiationResponse
	if err := s.client.post(ctx, pathPaymentDomestic, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// InitiateEEAPayment initiates a credit transfer inside the EEA
func (s *PaymentService) InitiateEEAPayment(ctx context.Context, req *protocol.EEAPaymentRequest) (*protocol.PaymentInitiationResponse, error) {
	var resp protocol.PaymentInitiationResponse
	if err := s.client.post(ctx, pathPaymentEEA, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// InitiateNonEEAPayment initiates a cross-border credit transfer outside
// the EEA
func (s *PaymentService) InitiateNonEEAPayment(ctx context.Context, req *protocol.NonEEAPaymentRequest) (*protocol.PaymentInitiationResponse, error) {
	var resp protocol.PaymentInitiationResponse
	if err := s.client.post(ctx, pathPaymentNonEEA, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// InitiateTaxPayment initiates a transfer to a tax authority
func (s *PaymentService) InitiateTaxPayment(ctx context.Context, req *protocol.TaxPaymentRequest) (*protocol.PaymentInitiationResponse, error) {
	var resp protocol.PaymentInitiationResponse
	if err := s.client.post(ctx, pathPaymentTax, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetPaymentStatus polls an initiated payment
func (s *PaymentService) GetPaymentStatus(ctx context.Context, req *protocol.PaymentStatusRequest) (*protocol.PaymentStatusResponse, error) {
	var resp protocol.PaymentStatusResponse
	if err := s.client.post(ctx, pathPaymentStatus, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetPaymentInformation fetches the stored data of a payment
func (s *PaymentService) GetPaymentInformation(ctx context.Context, req *protocol.PaymentInformationRequest) (*protocol.PaymentInformationResponse, error) {
	var resp protocol.PaymentInformationResponse
	if err := s.client.post(ctx, pathPaymentInformation, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
