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

// Package validation provides the financial identifier validators that guard
// every PolishAPI request before it is signed and sent.
//
// All validators are pure functions with no side effects and no network
// access, and are safe for concurrent use. Each returns nil on success or a
// *Violation naming the offending field and the kind of failure:
//
//	if err := validation.IBAN(account); err != nil {
//	    var v *validation.Violation
//	    if errors.As(err, &v) {
//	        log.Printf("field %s rejected: %s", v.Field, v.Kind)
//	    }
//	}
//
// # Validators
//
//   - IBAN - length, structure and ISO 7064 MOD 97-10 checksum
//   - BIC - SWIFT code structure with ISO 3166-1 country check
//   - Currency - assigned ISO 4217 codes, case-sensitive
//   - Amount - integer-cent decimal strings, optional ceiling and
//     non-negative modes via AmountOptions
//   - RequestID, AuthorizationHeader - PolishAPI request header values
//
// # Reference data
//
// The ISO 4217 and ISO 3166-1 tables are compiled into the package as
// immutable lookup data; they are never fetched remotely and never mutated,
// which keeps the validators callable from concurrent contexts without
// coordination.
package validation
