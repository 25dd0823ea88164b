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
	"crypto"
	"crypto/ecdsa"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/polishapi-project/polishapi-go/pkg/canonical"
	"github.com/polishapi-project/polishapi-go/pkg/codec"
	"github.com/polishapi-project/polishapi-go/pkg/jws"
)

// ecdsaComponentSize is the byte length of each of r and s for P-256.
const ecdsaComponentSize = 32

// DefaultSigner implements Signer with the PolishAPI detached JWS profile.
// It is stateless: no signature is ever cached or reused across inputs.
type DefaultSigner struct{}

// NewDefaultSigner creates a new DefaultSigner
func NewDefaultSigner() *DefaultSigner {
	return &DefaultSigner{}
}

// Sign produces an artifact with the current time as the creation timestamp
func (s *DefaultSigner) Sign(ctx context.Context, key *SigningKey, input *canonical.Input) (string, error) {
	return s.SignWithOptions(ctx, key, input, nil)
}

// SignWithOptions produces a detached artifact over the protected header and
// the canonical input. The signature covers both, so a fresh timestamp
// always yields a fresh signature even for byte-identical inputs.
func (s *DefaultSigner) SignWithOptions(ctx context.Context, key *SigningKey, input *canonical.Input, opts *SigningOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("context error: %w", err)
	}
	if key == nil {
		return "", fmt.Errorf("signing key cannot be nil")
	}
	if input == nil {
		return "", fmt.Errorf("canonical input cannot be nil")
	}

	issuedAt := int64(0)
	if opts != nil {
		issuedAt = opts.IssuedAt
	}
	if issuedAt == 0 {
		issuedAt = time.Now().Unix()
	}

	headerSegment, err := jws.MarshalHeader(jws.ProtectedHeader{
		Algorithm: key.Algorithm(),
		KeyID:     key.KeyID(),
		IssuedAt:  issuedAt,
	})
	if err != nil {
		return "", fmt.Errorf("failed to build protected header: %w", err)
	}

	digest := sha256.Sum256(jws.SigningInput(headerSegment, input.Bytes()))

	signature, err := s.signDigest(key, digest[:])
	if err != nil {
		return "", err
	}

	return jws.Compact(headerSegment, signature), nil
}

func (s *DefaultSigner) signDigest(key *SigningKey, digest []byte) ([]byte, error) {
	switch key.Algorithm() {
	case jws.AlgPS256:
		signature, err := rsa.SignPSS(rand.Reader, key.rsaKey, crypto.SHA256, digest, &rsa.PSSOptions{
			SaltLength: rsa.PSSSaltLengthEqualsHash,
			Hash:       crypto.SHA256,
		})
		if err != nil {
			return nil, &SigningError{Reason: "RSA-PSS signing rejected the operation", Err: err}
		}
		return signature, nil

	case jws.AlgES256:
		r, sv, err := ecdsa.Sign(rand.Reader, key.ecdsaKey, digest)
		if err != nil {
			return nil, &SigningError{Reason: "ECDSA signing rejected the operation", Err: err}
		}
		// Fixed-length big-endian (r, s), not DER, for compactness
		rBytes, err := codec.FixedBigEndian(r, ecdsaComponentSize)
		if err != nil {
			return nil, &SigningError{Reason: "ECDSA r component out of range", Err: err}
		}
		sBytes, err := codec.FixedBigEndian(sv, ecdsaComponentSize)
		if err != nil {
			return nil, &SigningError{Reason: "ECDSA s component out of range", Err: err}
		}
		return append(rBytes, sBytes...), nil

	default:
		return nil, &SigningError{Reason: fmt.Sprintf("unsupported algorithm %q", key.Algorithm())}
	}
}
