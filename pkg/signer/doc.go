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

// Package signer produces detached JWS signature artifacts for PolishAPI
// requests.
//
// # Key Material
//
// A SigningKey is loaded once at configuration time from a PEM-encoded
// private key together with the provider-assigned key identifier:
//
//	key, err := signer.LoadSigningKey(pemBytes, "tpp-key-2026")
//	if err != nil {
//	    log.Fatal(err) // *signer.KeyLoadError - never deferred to sign time
//	}
//
// The algorithm is derived from the key material: RSA keys of at least
// 2048 bits sign with PS256 (RSA-PSS, salt length equal to the hash
// length); P-256 ECDSA keys sign with ES256 (fixed-length (r, s)
// encoding). The key is immutable for its entire lifetime and safe to use
// from concurrent goroutines.
//
// # Signing
//
//	input, err := builder.Build(req.Method, req.URL.RequestURI(), req.Header, body)
//	artifact, err := signer.NewDefaultSigner().Sign(ctx, key, input)
//	req.Header.Set(jws.SignatureHeader, artifact)
//
// The artifact has the detached two-segment form
//
//	base64url({"alg":"PS256","kid":"tpp-key-2026","iat":1766000000}).base64url(signature)
//
// and the signature covers the protected header concatenated with the
// canonical input, so the creation timestamp is authenticated along with
// the request.
//
// Both PS256 and ES256 are randomized per call: two artifacts for the same
// input are valid but not byte-identical, so equality assertions on
// artifacts are meaningless - verify instead.
package signer
