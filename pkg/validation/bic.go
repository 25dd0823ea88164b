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

const bicField = "bic"

// BIC validates a BIC/SWIFT code: a 4-letter bank code, a 2-letter
// ISO 3166-1 country code, a 2-character alphanumeric location code and an
// optional 3-character alphanumeric branch code.
// It returns nil for a valid BIC or a *Violation describing the failure.
func BIC(value string) error {
	if len(value) != 8 && len(value) != 11 {
		return violation(bicField, KindLength, "must be 8 or 11 characters long")
	}

	for i := 0; i < 4; i++ {
		if !isUpperAlpha(value[i]) {
			return violation(bicField, KindCharset, "bank code must be four uppercase letters")
		}
	}

	country := value[4:6]
	if !isUpperAlpha(country[0]) || !isUpperAlpha(country[1]) {
		return violation(bicField, KindCharset, "country code must be two uppercase letters")
	}
	if !IsCountryCode(country) {
		return violation(bicField, KindCountry, "country code is not an ISO 3166-1 alpha-2 code")
	}

	for i := 6; i < len(value); i++ {
		if !isUpperAlpha(value[i]) && !isDigit(value[i]) {
			return violation(bicField, KindCharset, "location and branch codes must be uppercase alphanumeric")
		}
	}

	return nil
}
