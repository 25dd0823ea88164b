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

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	assert.NoError(t, RequestID(uuid.New()))
	assert.Error(t, RequestID(uuid.Nil))
}

func TestAuthorizationHeader(t *testing.T) {
	assert.NoError(t, AuthorizationHeader("Bearer some-access-token"))
	assert.Error(t, AuthorizationHeader("Bearer "))
	assert.Error(t, AuthorizationHeader("Basic dXNlcjpwYXNz"))
	assert.Error(t, AuthorizationHeader(""))
}
