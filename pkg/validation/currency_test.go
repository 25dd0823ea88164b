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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrency_Valid(t *testing.T) {
	for _, code := range []string{"PLN", "EUR", "USD", "GBP", "CHF", "JPY"} {
		assert.NoError(t, Currency(code), code)
	}
}

func TestCurrency_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		value string
		kind  Kind
	}{
		{"unassigned code", "XYZ", KindCurrency},
		{"lowercase is a deliberate failure", "pln", KindCharset},
		{"too long", "EURO", KindLength},
		{"too short", "EU", KindLength},
		{"empty", "", KindLength},
		{"digits", "PL1", KindCharset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Currency(tt.value)
			require.Error(t, err)

			var v *Violation
			require.ErrorAs(t, err, &v)
			assert.Equal(t, tt.kind, v.Kind)
		})
	}
}

func TestIsCountryCode(t *testing.T) {
	assert.True(t, IsCountryCode("PL"))
	assert.True(t, IsCountryCode("DE"))
	assert.False(t, IsCountryCode("ZZ"))
	assert.False(t, IsCountryCode("pl"))
}
