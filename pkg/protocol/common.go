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
	"time"

	"github.com/google/uuid"
	"github.com/polishapi-project/polishapi-go/pkg/validation"
)

// RequestHeaders carries the common PolishAPI request headers a TPP sends
// with every call. The zero values of Authorization and XJWSSignature mean
// "not yet set"; the transport layer fills XJWSSignature.
type RequestHeaders struct {
	Authorization  string
	AcceptEncoding string
	AcceptLanguage string
	AcceptCharset  string
	XJWSSignature  string
	XRequestID     uuid.UUID
}

// DefaultRequestHeaders returns headers with the PolishAPI default content
// negotiation values and a fresh request id.
func DefaultRequestHeaders() RequestHeaders {
	return RequestHeaders{
		AcceptEncoding: "gzip, deflate",
		AcceptLanguage: "en-US",
		AcceptCharset:  "utf-8",
		XRequestID:     uuid.New(),
	}
}

// BaseRequest carries the fields common to every PolishAPI request body.
type BaseRequest struct {
	// RequestID correlates the request across TPP and ASPSP logs.
	RequestID uuid.UUID `json:"requestId"`
}

// Validate checks the base request fields
func (r *BaseRequest) Validate() error {
	return validation.RequestID(r.RequestID)
}

// BaseResponse carries the fields common to every PolishAPI response body.
type BaseResponse struct {
	RequestID uuid.UUID `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
}

// Amount is a monetary amount paired with its ISO 4217 currency. The amount
// is a decimal string, never a binary float.
type Amount struct {
	Currency string `json:"currency"`
	Amount   string `json:"amount"`
}

// Validate checks the currency code and the amount grammar
func (a *Amount) Validate() error {
	if err := validation.Currency(a.Currency); err != nil {
		return err
	}
	return validation.Amount(a.Amount)
}

// AccountReference identifies a creditor or debtor account. Exactly one of
// the identification schemes is expected to be set.
type AccountReference struct {
	IBAN      string `json:"iban,omitempty"`
	BBAN      string `json:"bban,omitempty"`
	PAN       string `json:"pan,omitempty"`
	MaskedPAN string `json:"masked_pan,omitempty"`
	MSISDN    string `json:"msisdn,omitempty"`
	Currency  string `json:"currency,omitempty"`
}

// Validate checks whichever identification scheme is present
func (a *AccountReference) Validate() error {
	if a.IBAN != "" {
		if err := validation.IBAN(a.IBAN); err != nil {
			return err
		}
	}
	if a.Currency != "" {
		return validation.Currency(a.Currency)
	}
	return nil
}

// Address is a postal address.
type Address struct {
	StreetName     string `json:"street_name,omitempty"`
	BuildingNumber string `json:"building_number,omitempty"`
	TownName       string `json:"town_name,omitempty"`
	PostCode       string `json:"post_code,omitempty"`
	Country        string `json:"country"`
}

// TransactionStatus is the booking status of a transaction.
type TransactionStatus string

const (
	TransactionBooked    TransactionStatus = "BOOKED"
	TransactionPending   TransactionStatus = "PENDING"
	TransactionRejected  TransactionStatus = "REJECTED"
	TransactionCancelled TransactionStatus = "CANCELLED"
	TransactionScheduled TransactionStatus = "SCHEDULED"
)

// PaymentStatus is the processing status of an initiated payment.
type PaymentStatus string

const (
	PaymentReceived                    PaymentStatus = "RECEIVED"
	PaymentPending                     PaymentStatus = "PENDING"
	PaymentAccepted                    PaymentStatus = "ACCEPTED"
	PaymentAcceptedCustomerProfile     PaymentStatus = "ACCEPTEDCUSTOMERPROFILE"
	PaymentAcceptedTechnicalValidation PaymentStatus = "ACCEPTEDTECHNICALVALIDATION"
	PaymentAcceptedWithChange          PaymentStatus = "ACCEPTEDWITHCHANGE"
	PaymentRejected                    PaymentStatus = "REJECTED"
	PaymentCancelled                   PaymentStatus = "CANCELLED"
	PaymentExecuted                    PaymentStatus = "EXECUTED"
)

// ConsentStatus is the lifecycle state of an access consent.
type ConsentStatus string

const (
	ConsentReceived        ConsentStatus = "received"
	ConsentRejected        ConsentStatus = "rejected"
	ConsentValid           ConsentStatus = "valid"
	ConsentRevokedByPSU    ConsentStatus = "revokedByPsy"
	ConsentExpired         ConsentStatus = "expired"
	ConsentTerminatedByTPP ConsentStatus = "terminatedByTPP"
)

// BalanceType distinguishes the balance figures an ASPSP reports.
type BalanceType string

const (
	BalanceClosingBooked    BalanceType = "closingBooked"
	BalanceExpected         BalanceType = "expected"
	BalanceAuthorised       BalanceType = "authorised"
	BalanceOpeningBooked    BalanceType = "openingBooked"
	BalanceInterimAvailable BalanceType = "interimAvailable"
	BalanceInterimBooked    BalanceType = "interimBooked"
	BalanceForwardAvailable BalanceType = "forwardAvailable"
	BalanceNonInvoiced      BalanceType = "nonInvoiced"
)

// Balance is a single balance figure for an account.
type Balance struct {
	BalanceAmount            Amount      `json:"balance_amount"`
	BalanceType              BalanceType `json:"balance_type"`
	CreditLimitIncluded      *bool       `json:"credit_limit_included,omitempty"`
	LastChangeDateTime       *time.Time  `json:"last_change_date_time,omitempty"`
	ReferenceDate            string      `json:"reference_date,omitempty"`
	LastCommittedTransaction string      `json:"last_committed_transaction,omitempty"`
}

// RemittanceInformation carries unstructured and structured payment
// references.
type RemittanceInformation struct {
	Unstructured []string                          `json:"unstructured,omitempty"`
	Structured   []StructuredRemittanceInformation `json:"structured,omitempty"`
}

// StructuredRemittanceInformation is a coded payment reference.
type StructuredRemittanceInformation struct {
	Reference       string `json:"reference,omitempty"`
	ReferenceType   string `json:"reference_type,omitempty"`
	ReferenceIssuer string `json:"reference_issuer,omitempty"`
}

// Links holds HATEOAS navigation links.
type Links struct {
	Self  string `json:"self,omitempty"`
	First string `json:"first,omitempty"`
	Prev  string `json:"prev,omitempty"`
	Next  string `json:"next,omitempty"`
	Last  string `json:"last,omitempty"`
}
