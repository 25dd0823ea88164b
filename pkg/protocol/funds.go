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

import "github.com/google/uuid"

// FundsConfirmationRequest asks whether the account covers the instructed
// amount.
type FundsConfirmationRequest struct {
	BaseRequest
	CardNumber       string           `json:"card_number,omitempty"`
	Account          AccountReference `json:"account"`
	Payee            string           `json:"payee,omitempty"`
	InstructedAmount Amount           `json:"instructed_amount"`
}

// Validate checks the account reference and the instructed amount
func (r *FundsConfirmationRequest) Validate() error {
	if err := r.BaseRequest.Validate(); err != nil {
		return err
	}
	if err := r.Account.Validate(); err != nil {
		return err
	}
	return r.InstructedAmount.Validate()
}

// FundsConfirmationResponse is the yes/no answer.
type FundsConfirmationResponse struct {
	RequestID      uuid.UUID `json:"requestId"`
	FundsAvailable bool      `json:"funds_available"`
}
