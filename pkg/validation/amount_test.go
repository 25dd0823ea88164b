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

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_Valid(t *testing.T) {
	valid := []string{
		"100.00",
		"0",
		"0.50",
		"-5.00", // reversals are negative
		"123456789.99",
		"-0.01",
	}

	for _, amount := range valid {
		assert.NoError(t, Amount(amount), amount)
	}
}

func TestAmount_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		value string
		kind  Kind
	}{
		{"one decimal digit", "100.5", KindFormat},
		{"three decimal digits", "100.500", KindFormat},
		{"leading zero", "01.00", KindFormat},
		{"bare zero pair", "00", KindFormat},
		{"trailing dot", "100.", KindFormat},
		{"bare dot", ".", KindFormat},
		{"empty", "", KindMissing},
		{"bare minus", "-", KindFormat},
		{"letters", "12a.00", KindCharset},
		{"letters in fraction", "12.a0", KindCharset},
		{"double minus", "--5.00", KindCharset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Amount(tt.value)
			require.Error(t, err)

			var v *Violation
			require.ErrorAs(t, err, &v)
			assert.Equal(t, tt.kind, v.Kind)
			assert.Equal(t, "amount", v.Field)
		})
	}
}

func TestAmountWithOptions_NonNegative(t *testing.T) {
	opts := AmountOptions{NonNegative: true}

	assert.NoError(t, AmountWithOptions("5.00", opts))
	assert.NoError(t, AmountWithOptions("0", opts))

	err := AmountWithOptions("-5.00", opts)
	require.Error(t, err)

	var v *Violation
	require.ErrorAs(t, err, &v)
	assert.Equal(t, KindRange, v.Kind)
}

func TestAmountWithOptions_Max(t *testing.T) {
	max := decimal.RequireFromString("1000.00")
	opts := AmountOptions{Max: &max}

	assert.NoError(t, AmountWithOptions("1000.00", opts))
	assert.NoError(t, AmountWithOptions("999.99", opts))

	err := AmountWithOptions("1000.01", opts)
	require.Error(t, err)

	var v *Violation
	require.ErrorAs(t, err, &v)
	assert.Equal(t, KindRange, v.Kind)

	// The ceiling applies to the magnitude, so large negatives fail too
	err = AmountWithOptions("-1000.01", opts)
	require.Error(t, err)
}
