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

// Package verifier checks detached PolishAPI signature artifacts.
//
// # Verification
//
// The verifier rebuilds the canonical input from the received request and
// checks the artifact against a VerificationKey:
//
//	key, err := verifier.LoadVerificationKey(certPEM, "tpp-key-2026")
//	v := verifier.NewDefaultVerifierWithOptions(verifier.Options{MaxAge: 5 * time.Minute})
//
//	input, err := builder.Build(r.Method, r.URL.RequestURI(), r.Header, body)
//	err = v.Verify(ctx, key, r.Header.Get(jws.SignatureHeader), input)
//
// # Error Kinds
//
// Every failure is a distinct kind; none is ever collapsed into a generic
// false:
//
//   - *jws.MalformedArtifactError - the artifact could not be decoded
//     structurally; no cryptographic check was attempted
//   - ErrKeyIDMismatch - the artifact names a different key
//   - *ExpiredError - the creation timestamp is outside the MaxAge window
//   - ErrSignatureInvalid - the cryptographic check failed
//
// All kinds are recoverable: the calling pipeline rejects the request with
// a descriptive message and carries on.
//
// # Key Resolution
//
// When requests may be signed by several counterparties, a KeyResolver maps
// the artifact's key id to the right key. KeySet is the in-memory resolver
// for a fixed set of pinned keys:
//
//	set, err := verifier.NewKeySet(bankKey, backupKey)
//	key, err := set.ResolveKey(ctx, artifact.Header.KeyID)
//
// The underlying primitives (crypto/rsa, crypto/ecdsa) provide
// constant-time comparison semantics; verification never short-circuits in
// proportion to the number of matching bytes.
package verifier
