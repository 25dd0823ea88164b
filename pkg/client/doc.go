// Package client provides a PolishAPI TPP client with automatic request
// signing.
//
// Every call is validated, serialized, signed through the transport layer,
// and decoded into the protocol shapes. The client never touches key
// material directly; signing happens inside the http.RoundTripper.
//
// # Basic Usage
//
//	key, err := signer.LoadSigningKey(pemBytes, "tpp-key-2026")
//	cfg, err := client.NewConfig("https://api.bank.example.com")
//	c, err := client.NewClient(cfg.WithClientID("tpp-42"), key, nil)
//
//	resp, err := c.Payments().InitiateDomesticPayment(ctx, &protocol.DomesticPaymentRequest{
//	    BaseRequest:      protocol.BaseRequest{RequestID: uuid.New()},
//	    InstructedAmount: protocol.Amount{Currency: "PLN", Amount: "100.00"},
//	    DebtorAccount:    protocol.AccountReference{IBAN: debtorIBAN},
//	    CreditorName:     "Acme sp. z o.o.",
//	    CreditorAccount:  protocol.AccountReference{IBAN: creditorIBAN},
//	})
//
// # Service Groups
//
//   - Auth()     - authorize, EAT code, token exchange, registration
//   - Accounts() - accounts, transactions by status, holds, consents
//   - Payments() - domestic, EEA, non-EEA, tax transfers and status
//   - Funds()    - confirmation of availability of funds
//
// # Errors
//
// Requests that fail their own Validate never reach the wire; the returned
// error unwraps to a *validation.Violation. Non-2xx responses come back as
// *APIError carrying the HTTP status and, when the ASPSP provides one, the
// PolishAPI error code:
//
//	var apiErr *client.APIError
//	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusForbidden {
//	    // consent expired or revoked
//	}
package client
