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
	"github.com/polishapi-project/polishapi-go/pkg/validation"
)

// PaymentType selects the payment rail.
type PaymentType string

const (
	PaymentTypeDomestic PaymentType = "domestic"
	PaymentTypeEEA      PaymentType = "eea"
	PaymentTypeNonEEA   PaymentType = "non-eea"
	PaymentTypeTax      PaymentType = "tax"
)

// PaymentProduct selects the clearing product.
type PaymentProduct string

const (
	ProductSEPA                      PaymentProduct = "sepa"
	ProductInstantSEPA               PaymentProduct = "instant-sepa"
	ProductTarget2                   PaymentProduct = "target2"
	ProductCrossBorderCreditTransfer PaymentProduct = "cross-border-credit-transfer"
)

// DomesticPaymentRequest initiates a domestic credit transfer.
type DomesticPaymentRequest struct {
	BaseRequest
	InstructedAmount                  Amount                 `json:"instructed_amount"`
	DebtorAccount                     AccountReference       `json:"debtor_account"`
	CreditorName                      string                 `json:"creditor_name"`
	CreditorAccount                   AccountReference       `json:"creditor_account"`
	CreditorAgent                     string                 `json:"creditor_agent,omitempty"`
	CreditorAddress                   *Address               `json:"creditor_address,omitempty"`
	UltimateCreditor                  string                 `json:"ultimate_creditor,omitempty"`
	DebtorName                        string                 `json:"debtor_name,omitempty"`
	UltimateDebtor                    string                 `json:"ultimate_debtor,omitempty"`
	RemittanceInformationUnstructured string                 `json:"remittance_information_unstructured,omitempty"`
	RemittanceInformationStructured   *RemittanceInformation `json:"remittance_information_structured,omitempty"`
	RequestedExecutionDate            string                 `json:"requested_execution_date,omitempty"`
	RequestedExecutionTime            *time.Time             `json:"requested_execution_time,omitempty"`
}

// Validate routes the financial identifiers through the validation rules
// before the request is signed and sent.
func (r *DomesticPaymentRequest) Validate() error {
	if err := r.BaseRequest.Validate(); err != nil {
		return err
	}
	if err := r.InstructedAmount.Validate(); err != nil {
		return err
	}
	if err := r.DebtorAccount.Validate(); err != nil {
		return err
	}
	if r.CreditorName == "" {
		return fmt.Errorf("creditor_name cannot be empty")
	}
	if err := r.CreditorAccount.Validate(); err != nil {
		return err
	}
	if r.CreditorAgent != "" {
		return validation.BIC(r.CreditorAgent)
	}
	return nil
}

// EEAPaymentRequest initiates a credit transfer inside the EEA.
type EEAPaymentRequest struct {
	DomesticPaymentRequest
	ChargeBearer    string `json:"charge_bearer,omitempty"`
	ServiceLevel    string `json:"service_level,omitempty"`
	CategoryPurpose string `json:"category_purpose,omitempty"`
}

// NonEEAPaymentRequest initiates a cross-border credit transfer outside the
// EEA.
type NonEEAPaymentRequest struct {
	EEAPaymentRequest
	ExchangeRateInformation *ExchangeRateInformation `json:"exchange_rate_information,omitempty"`
}

// TaxPaymentRequest initiates a transfer to a tax authority.
type TaxPaymentRequest struct {
	BaseRequest
	InstructedAmount       Amount            `json:"instructed_amount"`
	DebtorAccount          AccountReference  `json:"debtor_account"`
	CreditorName           string            `json:"creditor_name"`
	CreditorAccount        AccountReference  `json:"creditor_account"`
	CreditorAgent          string            `json:"creditor_agent,omitempty"`
	TaxIdentification      TaxIdentification `json:"tax_identification"`
	TaxPeriod              string            `json:"tax_period,omitempty"`
	TaxType                string            `json:"tax_type,omitempty"`
	RequestedExecutionDate string            `json:"requested_execution_date,omitempty"`
}

// TaxIdentification identifies the taxpayer.
type TaxIdentification struct {
	TaxIdentificationNumber string `json:"tax_identification_number"`
	TaxIdentificationType   string `json:"tax_identification_type"`
	Issuer                  string `json:"issuer,omitempty"`
}

// ExchangeRateInformation describes the conversion terms of a cross-border
// transfer.
type ExchangeRateInformation struct {
	UnitCurrency           string `json:"unit_currency"`
	ExchangeRate           string `json:"exchange_rate,omitempty"`
	RateType               string `json:"rate_type,omitempty"`
	ContractIdentification string `json:"contract_identification,omitempty"`
}

// PaymentInitiationResponse acknowledges an initiated payment.
type PaymentInitiationResponse struct {
	RequestID                          uuid.UUID     `json:"requestId"`
	TransactionStatus                  PaymentStatus `json:"transaction_status"`
	PaymentID                          string        `json:"payment_id"`
	TransactionFees                    *Amount       `json:"transaction_fees,omitempty"`
	CurrencyConversionFee              *Amount       `json:"currency_conversion_fee,omitempty"`
	EstimatedTotalAmount               *Amount       `json:"estimated_total_amount,omitempty"`
	EstimatedInterbankSettlementAmount *Amount       `json:"estimated_interbank_settlement_amount,omitempty"`
	Links                              *Links        `json:"_links,omitempty"`
	PSUMessage                         string        `json:"psu_message,omitempty"`
}

// PaymentStatusRequest polls an initiated payment.
type PaymentStatusRequest struct {
	BaseRequest
	PaymentID string `json:"payment_id"`
}

// Validate checks the request fields
func (r *PaymentStatusRequest) Validate() error {
	if err := r.BaseRequest.Validate(); err != nil {
		return err
	}
	if r.PaymentID == "" {
		return fmt.Errorf("payment_id cannot be empty")
	}
	return nil
}

// PaymentStatusResponse is the current processing state of a payment.
type PaymentStatusResponse struct {
	RequestID         uuid.UUID     `json:"requestId"`
	TransactionStatus PaymentStatus `json:"transaction_status"`
	FundsAvailable    *bool         `json:"funds_available,omitempty"`
	PSUMessage        string        `json:"psu_message,omitempty"`
	Links             *Links        `json:"_links,omitempty"`
}

// PaymentInformationRequest fetches the stored data of a payment.
type PaymentInformationRequest struct {
	BaseRequest
	PaymentID string `json:"payment_id"`
}

// PaymentInformationResponse is the stored data of a payment.
type PaymentInformationResponse struct {
	RequestID         uuid.UUID     `json:"requestId"`
	PaymentData       PaymentData   `json:"payment_data"`
	TransactionStatus PaymentStatus `json:"transaction_status"`
	Links             *Links        `json:"_links,omitempty"`
}

// PaymentData is the payment as the ASPSP stored it.
type PaymentData struct {
	InstructedAmount                  Amount           `json:"instructed_amount"`
	DebtorAccount                     AccountReference `json:"debtor_account"`
	CreditorName                      string           `json:"creditor_name"`
	CreditorAccount                   AccountReference `json:"creditor_account"`
	CreditorAgent                     string           `json:"creditor_agent,omitempty"`
	RemittanceInformationUnstructured string           `json:"remittance_information_unstructured,omitempty"`
	RequestedExecutionDate            string           `json:"requested_execution_date,omitempty"`
}
