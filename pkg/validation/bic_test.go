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

func TestBIC_Valid(t *testing.T) {
	valid := []string{
		"DEUTDEFF",    // 8-character form
		"DEUTDEFF500", // 11-character form with branch code
		"BREXPLPW",    // mBank
		"BREXPLPWXXX",
		"INGBPLPW",
	}

	for _, bic := range valid {
		assert.NoError(t, BIC(bic), bic)
	}
}

func TestBIC_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		value string
		kind  Kind
	}{
		{"too short", "DEUTDE", KindLength},
		{"nine characters", "DEUTDEFF5", KindLength},
		{"digit in bank code", "D3UTDEFF", KindCharset},
		{"lowercase", "deutdeff", KindCharset},
		{"unknown country", "DEUTZZFF", KindCountry},
		{"digit in country code", "DEUT12FF", KindCharset},
		{"illegal location code", "DEUTDEF-", KindCharset},
		{"illegal branch code", "DEUTDEFF5-0", KindCharset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := BIC(tt.value)
			require.Error(t, err)

			var v *Violation
			require.ErrorAs(t, err, &v)
			assert.Equal(t, tt.kind, v.Kind)
			assert.Equal(t, "bic", v.Field)
		})
	}
}
