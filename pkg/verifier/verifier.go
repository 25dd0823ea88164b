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

package verifier

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/polishapi-project/polishapi-go/pkg/canonical"
)

// Verifier checks detached signature artifacts against reconstructed
// canonical inputs
type Verifier interface {
	// Verify confirms integrity and authenticity of an artifact. A nil
	// return means the artifact is valid for the input and key; every
	// failure is a distinct error kind, never a bare false.
	Verify(ctx context.Context, key *VerificationKey, artifact string, input *canonical.Input) error
}

// ErrKeyIDMismatch means the artifact's key identifier does not match the
// verification key's. It is distinct from a cryptographic failure so audit
// logs can tell "wrong key" apart from "bad signature".
var ErrKeyIDMismatch = errors.New("artifact key id does not match verification key")

// ErrSignatureInvalid means the cryptographic check failed.
var ErrSignatureInvalid = errors.New("signature verification failed")

// ExpiredError means the artifact's creation timestamp is older than the
// verifier's configured maximum age.
type ExpiredError struct {
	MaxAge time.Duration
	Age    time.Duration
}

// Error implements the error interface
func (e *ExpiredError) Error() string {
	return fmt.Sprintf("signature expired: age %s exceeds maximum %s", e.Age, e.MaxAge)
}
