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

import "fmt"

// Kind classifies why a value failed validation
type Kind string

const (
	// KindLength means the value has an invalid length
	KindLength Kind = "length"

	// KindCharset means the value contains characters outside the allowed set
	KindCharset Kind = "charset"

	// KindChecksum means the value failed its checksum (IBAN MOD 97-10)
	KindChecksum Kind = "checksum"

	// KindCountry means the embedded country code is not ISO 3166-1 alpha-2
	KindCountry Kind = "country"

	// KindCurrency means the code is not an assigned ISO 4217 currency
	KindCurrency Kind = "currency"

	// KindFormat means the value does not match the required shape
	KindFormat Kind = "format"

	// KindRange means the value is outside the permitted numeric range
	KindRange Kind = "range"

	// KindMissing means a required value is empty or absent
	KindMissing Kind = "missing"
)

// Violation describes a single validation failure. It always names the
// offending field and the kind of violation so callers can render a precise
// user-facing message instead of a bare boolean.
type Violation struct {
	Field  string
	Kind   Kind
	Reason string
}

// Error implements the error interface
func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %s (%s violation)", v.Field, v.Reason, v.Kind)
}

func violation(field string, kind Kind, reason string) *Violation {
	return &Violation{Field: field, Kind: kind, Reason: reason}
}
