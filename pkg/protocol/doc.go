// Package protocol provides PolishAPI v3 request and response type
// definitions.
//
// The shapes cover the four PolishAPI service groups:
//
//   - AS  - authorization (authorize, EAT code, token, registration)
//   - AIS - account information (accounts, transactions, balances, holds)
//   - PIS - payment initiation (domestic, EEA, non-EEA, tax)
//   - CAF - confirmation of availability of funds
//
// Every request embeds BaseRequest, whose requestId correlates the call
// across TPP and ASPSP logs. Monetary values are decimal strings inside
// Amount, never binary floats.
//
// # Validation
//
// Request types that carry financial identifiers expose a Validate method
// routing them through the validation package:
//
//	req := &protocol.DomesticPaymentRequest{
//	    BaseRequest:      protocol.BaseRequest{RequestID: uuid.New()},
//	    InstructedAmount: protocol.Amount{Currency: "PLN", Amount: "100.00"},
//	    ...
//	}
//	if err := req.Validate(); err != nil {
//	    var v *validation.Violation
//	    if errors.As(err, &v) {
//	        // v.Field, v.Kind, v.Reason
//	    }
//	}
//
// Validation happens before signing; a request that fails its own Validate
// is never put on the wire.
package protocol
