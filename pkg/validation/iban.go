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

const ibanField = "iban"

// IBAN validates an IBAN's length, structure and ISO 7064 MOD 97-10 checksum.
// It returns nil for a valid IBAN or a *Violation describing the failure.
func IBAN(value string) error {
	if len(value) < 15 || len(value) > 34 {
		return violation(ibanField, KindLength, "length must be between 15 and 34 characters")
	}

	if !isUpperAlpha(value[0]) || !isUpperAlpha(value[1]) {
		return violation(ibanField, KindCountry, "country prefix must be two uppercase letters")
	}
	if !isDigit(value[2]) || !isDigit(value[3]) {
		return violation(ibanField, KindFormat, "check digits must be two ASCII digits")
	}

	for i := 0; i < len(value); i++ {
		if !isUpperAlpha(value[i]) && !isDigit(value[i]) {
			return violation(ibanField, KindCharset, "must contain only uppercase letters and digits")
		}
	}

	if ibanRemainder(value) != 1 {
		return violation(ibanField, KindChecksum, "MOD 97-10 checksum failed")
	}

	return nil
}

// ibanRemainder computes the ISO 7064 MOD 97-10 remainder over the
// rearranged IBAN (first four characters moved to the end, letters mapped
// to their two-digit values). The remainder is reduced digit by digit so
// the intermediate value never exceeds 97*10+9 and no big-integer
// arithmetic is needed.
func ibanRemainder(value string) int {
	rearranged := value[4:] + value[:4]

	rem := 0
	for i := 0; i < len(rearranged); i++ {
		c := rearranged[i]
		if isDigit(c) {
			rem = (rem*10 + int(c-'0')) % 97
			continue
		}
		// A=10 ... Z=35, contributes two decimal digits
		n := int(c-'A') + 10
		rem = (rem*10 + n/10) % 97
		rem = (rem*10 + n%10) % 97
	}
	return rem
}

func isUpperAlpha(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
