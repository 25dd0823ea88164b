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

package signer

import (
	"context"
	"fmt"

	"github.com/polishapi-project/polishapi-go/pkg/canonical"
)

// Signer produces detached signature artifacts over canonical request inputs
type Signer interface {
	// Sign produces an artifact for the canonical input with the current
	// time as the creation timestamp
	Sign(ctx context.Context, key *SigningKey, input *canonical.Input) (string, error)

	// SignWithOptions produces an artifact with custom options
	SignWithOptions(ctx context.Context, key *SigningKey, input *canonical.Input, opts *SigningOptions) (string, error)
}

// SigningOptions contains options for producing an artifact
type SigningOptions struct {
	// IssuedAt is the creation timestamp to embed in the protected header
	// (seconds since epoch, UTC). If 0, the current time is used.
	IssuedAt int64
}

// SigningError reports that the underlying cryptographic primitive rejected
// the signing operation.
type SigningError struct {
	Reason string
	Err    error
}

// Error implements the error interface
func (e *SigningError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("signing failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("signing failed: %s", e.Reason)
}

// Unwrap returns the underlying primitive error, if any
func (e *SigningError) Unwrap() error {
	return e.Err
}
