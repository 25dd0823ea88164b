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

	"github.com/google/uuid"
)

// Account is an account as the ASPSP reports it.
type Account struct {
	ResourceID      string    `json:"resource_id"`
	IBAN            string    `json:"iban,omitempty"`
	BBAN            string    `json:"bban,omitempty"`
	PAN             string    `json:"pan,omitempty"`
	MaskedPAN       string    `json:"masked_pan,omitempty"`
	MSISDN          string    `json:"msisdn,omitempty"`
	Currency        string    `json:"currency"`
	Name            string    `json:"name,omitempty"`
	Product         string    `json:"product,omitempty"`
	CashAccountType string    `json:"cash_account_type,omitempty"`
	Status          string    `json:"status,omitempty"`
	BIC             string    `json:"bic,omitempty"`
	LinkedAccounts  string    `json:"linked_accounts,omitempty"`
	Usage           string    `json:"usage,omitempty"`
	Details         string    `json:"details,omitempty"`
	Balances        []Balance `json:"balances,omitempty"`
	Links           *Links    `json:"_links,omitempty"`
}

// GetAccountsRequest lists the accounts the consent covers.
type GetAccountsRequest struct {
	BaseRequest
	WithBalance *bool `json:"with_balance,omitempty"`
}

// GetAccountsResponse is the account list.
type GetAccountsResponse struct {
	RequestID uuid.UUID `json:"requestId"`
	Accounts  []Account `json:"accounts"`
	Links     *Links    `json:"_links,omitempty"`
}

// GetAccountRequest fetches a single account.
type GetAccountRequest struct {
	BaseRequest
	AccountID   string `json:"account_id"`
	WithBalance *bool  `json:"with_balance,omitempty"`
}

// Validate checks the request fields
func (r *GetAccountRequest) Validate() error {
	if err := r.BaseRequest.Validate(); err != nil {
		return err
	}
	if r.AccountID == "" {
		return fmt.Errorf("account_id cannot be empty")
	}
	return nil
}

// GetAccountResponse is a single account.
type GetAccountResponse struct {
	RequestID uuid.UUID `json:"requestId"`
	Account   Account   `json:"account"`
	Links     *Links    `json:"_links,omitempty"`
}

// Transaction is a single account entry.
type Transaction struct {
	TransactionID                     string                 `json:"transaction_id,omitempty"`
	EntryReference                    string                 `json:"entry_reference,omitempty"`
	EndToEndID                        string                 `json:"end_to_end_id,omitempty"`
	MandateID                         string                 `json:"mandate_id,omitempty"`
	CheckID                           string                 `json:"check_id,omitempty"`
	CreditorID                        string                 `json:"creditor_id,omitempty"`
	BookingDate                       string                 `json:"booking_date,omitempty"`
	ValueDate                         string                 `json:"value_date,omitempty"`
	TransactionAmount                 Amount                 `json:"transaction_amount"`
	CurrencyExchange                  []CurrencyExchange     `json:"currency_exchange,omitempty"`
	CreditorName                      string                 `json:"creditor_name,omitempty"`
	CreditorAccount                   *AccountReference      `json:"creditor_account,omitempty"`
	CreditorAgent                     string                 `json:"creditor_agent,omitempty"`
	UltimateCreditor                  string                 `json:"ultimate_creditor,omitempty"`
	DebtorName                        string                 `json:"debtor_name,omitempty"`
	DebtorAccount                     *AccountReference      `json:"debtor_account,omitempty"`
	DebtorAgent                       string                 `json:"debtor_agent,omitempty"`
	UltimateDebtor                    string                 `json:"ultimate_debtor,omitempty"`
	RemittanceInformationUnstructured string                 `json:"remittance_information_unstructured,omitempty"`
	RemittanceInformationStructured   *RemittanceInformation `json:"remittance_information_structured,omitempty"`
	AdditionalInformation             string                 `json:"additional_information,omitempty"`
	PurposeCode                       string                 `json:"purpose_code,omitempty"`
	BankTransactionCode               string                 `json:"bank_transaction_code,omitempty"`
	ProprietaryBankTransactionCode    string                 `json:"proprietary_bank_transaction_code,omitempty"`
	Links                             *Links                 `json:"_links,omitempty"`
}

// CurrencyExchange describes a currency conversion applied to an entry.
type CurrencyExchange struct {
	SourceCurrency         string `json:"source_currency"`
	TargetCurrency         string `json:"target_currency"`
	ExchangeRate           string `json:"exchange_rate"`
	UnitCurrency           string `json:"unit_currency,omitempty"`
	ContractIdentification string `json:"contract_identification,omitempty"`
	QuotationDate          string `json:"quotation_date,omitempty"`
}

// GetTransactionsRequest lists entries for an account.
type GetTransactionsRequest struct {
	BaseRequest
	AccountID          string            `json:"account_id"`
	BookingStatus      TransactionStatus `json:"booking_status,omitempty"`
	DateFrom           string            `json:"date_from,omitempty"`
	DateTo             string            `json:"date_to,omitempty"`
	EntryReferenceFrom string            `json:"entry_reference_from,omitempty"`
	EntryReferenceTo   string            `json:"entry_reference_to,omitempty"`
	DeltaList          *bool             `json:"delta_list,omitempty"`
}

// Validate checks the request fields
func (r *GetTransactionsRequest) Validate() error {
	if err := r.BaseRequest.Validate(); err != nil {
		return err
	}
	if r.AccountID == "" {
		return fmt.Errorf("account_id cannot be empty")
	}
	return nil
}

// GetTransactionsResponse is the entry list for an account.
type GetTransactionsResponse struct {
	RequestID    uuid.UUID        `json:"requestId"`
	Account      AccountReference `json:"account"`
	Transactions TransactionList  `json:"transactions"`
	Links        *Links           `json:"_links,omitempty"`
}

// TransactionList groups entries by booking state.
type TransactionList struct {
	Booked  []Transaction `json:"booked,omitempty"`
	Pending []Transaction `json:"pending,omitempty"`
	Links   *Links        `json:"_links,omitempty"`
}

// GetTransactionDetailRequest fetches a single entry.
type GetTransactionDetailRequest struct {
	BaseRequest
	AccountID     string `json:"account_id"`
	TransactionID string `json:"transaction_id"`
}

// GetTransactionDetailResponse is a single entry.
type GetTransactionDetailResponse struct {
	RequestID           uuid.UUID   `json:"requestId"`
	TransactionsDetails Transaction `json:"transactions_details"`
	Links               *Links      `json:"_links,omitempty"`
}

// Hold is a blocked amount on an account.
type Hold struct {
	HoldID                string `json:"hold_id"`
	HoldAmount            Amount `json:"hold_amount"`
	HoldDate              string `json:"hold_date"`
	ExpiryDate            string `json:"expiry_date,omitempty"`
	AdditionalInformation string `json:"additional_information,omitempty"`
}

// GetHoldsRequest lists holds for an account.
type GetHoldsRequest struct {
	BaseRequest
	AccountID string `json:"account_id"`
}

// GetHoldsResponse is the hold list.
type GetHoldsResponse struct {
	RequestID uuid.UUID        `json:"requestId"`
	Account   AccountReference `json:"account"`
	Holds     []Hold           `json:"holds"`
	Links     *Links           `json:"_links,omitempty"`
}

// DeleteConsentRequest revokes an access consent.
type DeleteConsentRequest struct {
	BaseRequest
	ConsentID string `json:"consent_id"`
}

// DeleteConsentResponse reports the consent state after revocation.
type DeleteConsentResponse struct {
	RequestID     uuid.UUID     `json:"requestId"`
	ConsentStatus ConsentStatus `json:"consent_status"`
}
