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

package validation

const currencyField = "currency"

// Currency validates an ISO 4217 currency code. Matching is case-sensitive:
// PolishAPI carries currency codes in their canonical uppercase form, so
// "pln" is rejected even though "PLN" is assigned.
// It returns nil for a valid code or a *Violation describing the failure.
func Currency(value string) error {
	if len(value) != 3 {
		return violation(currencyField, KindLength, "must be exactly 3 characters")
	}
	for i := 0; i < 3; i++ {
		if !isUpperAlpha(value[i]) {
			return violation(currencyField, KindCharset, "must be three uppercase letters")
		}
	}
	if !IsCurrencyCode(value) {
		return violation(currencyField, KindCurrency, "not an assigned ISO 4217 currency code")
	}
	return nil
}
