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
	"crypto"
	"crypto/ecdsa"
	"crypto/rsa"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/polishapi-project/polishapi-go/pkg/canonical"
	"github.com/polishapi-project/polishapi-go/pkg/codec"
	"github.com/polishapi-project/polishapi-go/pkg/jws"
)

// Options configures a DefaultVerifier.
type Options struct {
	// MaxAge rejects artifacts whose creation timestamp is older than this
	// window. Zero disables the expiry check.
	MaxAge time.Duration

	// Clock supplies the current time for the expiry check. Nil uses
	// time.Now.
	Clock func() time.Time
}

// DefaultVerifier implements Verifier for the PolishAPI detached JWS
// profile. It is stateless apart from its immutable options and safe for
// concurrent use.
type DefaultVerifier struct {
	opts Options
}

// NewDefaultVerifier creates a verifier with no expiry check
func NewDefaultVerifier() *DefaultVerifier {
	return NewDefaultVerifierWithOptions(Options{})
}

// NewDefaultVerifierWithOptions creates a verifier with custom options
func NewDefaultVerifierWithOptions(opts Options) *DefaultVerifier {
	return &DefaultVerifier{opts: opts}
}

// Verify checks an artifact in a fixed order: structural decoding first,
// then key identifier match, then the expiry window, and only then the
// cryptographic check. Each stage fails with its own error kind.
func (v *DefaultVerifier) Verify(ctx context.Context, key *VerificationKey, artifact string, input *canonical.Input) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if key == nil {
		return fmt.Errorf("verification key cannot be nil")
	}
	if input == nil {
		return fmt.Errorf("canonical input cannot be nil")
	}

	parsed, err := jws.Parse(artifact)
	if err != nil {
		return err
	}
	if parsed.Header.Algorithm != jws.AlgPS256 && parsed.Header.Algorithm != jws.AlgES256 {
		return &jws.MalformedArtifactError{Reason: fmt.Sprintf("unsupported algorithm %q", parsed.Header.Algorithm)}
	}

	if parsed.Header.KeyID != key.KeyID() {
		return ErrKeyIDMismatch
	}
	if parsed.Header.Algorithm != key.Algorithm() {
		return fmt.Errorf("artifact algorithm %q does not match key algorithm %q: %w",
			parsed.Header.Algorithm, key.Algorithm(), ErrSignatureInvalid)
	}

	if v.opts.MaxAge > 0 {
		now := time.Now
		if v.opts.Clock != nil {
			now = v.opts.Clock
		}
		age := now().Sub(time.Unix(parsed.Header.IssuedAt, 0))
		if age > v.opts.MaxAge {
			return &ExpiredError{MaxAge: v.opts.MaxAge, Age: age}
		}
	}

	// Recompute the signing input from the header segment exactly as
	// received; re-serializing the header could change byte order
	digest := sha256.Sum256(jws.SigningInput(parsed.HeaderSegment, input.Bytes()))

	return v.verifyDigest(key, digest[:], parsed.Signature)
}

func (v *DefaultVerifier) verifyDigest(key *VerificationKey, digest, signature []byte) error {
	switch key.Algorithm() {
	case jws.AlgPS256:
		err := rsa.VerifyPSS(key.rsaKey, crypto.SHA256, digest, signature, &rsa.PSSOptions{
			SaltLength: rsa.PSSSaltLengthEqualsHash,
			Hash:       crypto.SHA256,
		})
		if err != nil {
			return ErrSignatureInvalid
		}
		return nil

	case jws.AlgES256:
		if len(signature) != 2*ecdsaComponentSize {
			return fmt.Errorf("ES256 signature must be %d bytes: %w", 2*ecdsaComponentSize, ErrSignatureInvalid)
		}
		r := codec.ParseBigEndian(signature[:ecdsaComponentSize])
		s := codec.ParseBigEndian(signature[ecdsaComponentSize:])
		if !ecdsa.Verify(key.ecdsaKey, digest, r, s) {
			return ErrSignatureInvalid
		}
		return nil

	default:
		return fmt.Errorf("unsupported key algorithm %q: %w", key.Algorithm(), ErrSignatureInvalid)
	}
}

// ecdsaComponentSize is the byte length of each of r and s for P-256.
const ecdsaComponentSize = 32
