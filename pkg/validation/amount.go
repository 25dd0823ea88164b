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
	"strings"

	"github.com/shopspring/decimal"
)

const amountField = "amount"

// AmountOptions tightens the default amount contract.
type AmountOptions struct {
	// NonNegative rejects amounts with a leading minus sign. The default
	// permits negatives, which PolishAPI uses for reversals.
	NonNegative bool

	// Max, when non-nil, is the largest permitted magnitude. The amount's
	// absolute value must not exceed it.
	Max *decimal.Decimal
}

// Amount validates a financial amount string with the default options:
// an optional leading minus, an integer part without superfluous leading
// zeros, and an optional decimal point followed by exactly two digits.
// It returns nil for a valid amount or a *Violation describing the failure.
func Amount(value string) error {
	return AmountWithOptions(value, AmountOptions{})
}

// AmountWithOptions validates a financial amount string under opts.
func AmountWithOptions(value string, opts AmountOptions) error {
	if value == "" {
		return violation(amountField, KindMissing, "must not be empty")
	}

	rest := value
	negative := false
	if rest[0] == '-' {
		negative = true
		rest = rest[1:]
	}
	if negative && opts.NonNegative {
		return violation(amountField, KindRange, "must not be negative")
	}

	intPart := rest
	fracPart := ""
	if dot := strings.IndexByte(rest, '.'); dot >= 0 {
		intPart = rest[:dot]
		fracPart = rest[dot+1:]

		if len(fracPart) != 2 {
			return violation(amountField, KindFormat, "decimal point must be followed by exactly two digits")
		}
		for i := 0; i < len(fracPart); i++ {
			if !isDigit(fracPart[i]) {
				return violation(amountField, KindCharset, "fractional part must be decimal digits")
			}
		}
	}

	if len(intPart) == 0 {
		return violation(amountField, KindFormat, "integer part must not be empty")
	}
	for i := 0; i < len(intPart); i++ {
		if !isDigit(intPart[i]) {
			return violation(amountField, KindCharset, "integer part must be decimal digits")
		}
	}
	if len(intPart) > 1 && intPart[0] == '0' {
		return violation(amountField, KindFormat, "integer part must not have leading zeros")
	}

	if opts.Max != nil {
		// The shape is already validated, so parsing cannot fail.
		d, err := decimal.NewFromString(value)
		if err != nil {
			return violation(amountField, KindFormat, "not a decimal number")
		}
		if d.Abs().GreaterThan(*opts.Max) {
			return violation(amountField, KindRange, "magnitude exceeds the configured maximum")
		}
	}

	return nil
}
