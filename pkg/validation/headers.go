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

	"github.com/google/uuid"
)

// RequestID validates the X-Request-ID value. PolishAPI requires a non-nil
// UUID per request.
func RequestID(id uuid.UUID) error {
	if id == uuid.Nil {
		return violation("x-request-id", KindMissing, "must not be the nil UUID")
	}
	return nil
}

// AuthorizationHeader validates an OAuth2 bearer Authorization header value.
func AuthorizationHeader(value string) error {
	const prefix = "Bearer "
	if !strings.HasPrefix(value, prefix) {
		return violation("authorization", KindFormat, "must start with 'Bearer '")
	}
	if value[len(prefix):] == "" {
		return violation("authorization", KindMissing, "token must not be empty")
	}
	return nil
}
