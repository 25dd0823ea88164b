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

package transport

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/polishapi-project/polishapi-go/pkg/canonical"
	"github.com/polishapi-project/polishapi-go/pkg/jws"
	"github.com/polishapi-project/polishapi-go/pkg/signer"
	"github.com/rs/zerolog"
)

// DigestHeader carries the body digest so the receiving side can check the
// body against the signed canonical input.
const DigestHeader = "Digest"

// SigningRoundTripper implements http.RoundTripper with automatic detached
// JWS signatures on all outgoing requests.
//
// Before delegating to the inner transport it:
//   - stamps X-Request-ID and Date when the caller has not set them
//   - builds the canonical input from the outgoing request
//   - signs it and attaches the artifact as X-JWS-Signature
//   - attaches the body digest as Digest
//
// The incoming *http.Request is never modified; signing happens on a clone,
// per the http.RoundTripper contract.
type SigningRoundTripper struct {
	inner   http.RoundTripper
	key     *signer.SigningKey
	signer  signer.Signer
	builder *canonical.Builder
	logger  zerolog.Logger
}

// Options configures a SigningRoundTripper. The zero value is usable.
type Options struct {
	// Inner is the transport that performs the wire call. Nil uses
	// http.DefaultTransport.
	Inner http.RoundTripper

	// Signer produces the artifacts. Nil uses signer.NewDefaultSigner().
	Signer signer.Signer

	// Builder selects the signing profile. Nil uses the default PolishAPI
	// profile.
	Builder *canonical.Builder

	// Logger receives debug events for signed requests. The zero value
	// disables logging.
	Logger zerolog.Logger
}

// NewSigningRoundTripper creates a transport signing with key.
func NewSigningRoundTripper(key *signer.SigningKey, opts Options) (*SigningRoundTripper, error) {
	if key == nil {
		return nil, fmt.Errorf("signing key cannot be nil")
	}
	if opts.Inner == nil {
		opts.Inner = http.DefaultTransport
	}
	if opts.Signer == nil {
		opts.Signer = signer.NewDefaultSigner()
	}
	if opts.Builder == nil {
		opts.Builder = canonical.NewDefaultBuilder()
	}
	return &SigningRoundTripper{
		inner:   opts.Inner,
		key:     key,
		signer:  opts.Signer,
		builder: opts.Builder,
		logger:  opts.Logger,
	}, nil
}

// RoundTrip implements http.RoundTripper
func (t *SigningRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	body, err := requestBody(req)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}

	signed := req.Clone(req.Context())
	signed.Body = io.NopCloser(bytes.NewReader(body))

	if signed.Header.Get("X-Request-ID") == "" {
		signed.Header.Set("X-Request-ID", uuid.NewString())
	}
	if signed.Header.Get("Date") == "" {
		signed.Header.Set("Date", time.Now().UTC().Format(http.TimeFormat))
	}

	input, err := t.builder.Build(signed.Method, signed.URL.RequestURI(), signed.Header, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build canonical input: %w", err)
	}

	artifact, err := t.signer.Sign(req.Context(), t.key, input)
	if err != nil {
		return nil, fmt.Errorf("failed to sign request: %w", err)
	}

	signed.Header.Set(jws.SignatureHeader, artifact)
	signed.Header.Set(DigestHeader, canonical.BodyDigest(body))

	t.logger.Debug().
		Str("method", signed.Method).
		Str("path", signed.URL.RequestURI()).
		Str("kid", t.key.KeyID()).
		Msg("signed outgoing request")

	return t.inner.RoundTrip(signed)
}

// requestBody drains req.Body without consuming the caller's request: the
// original body is replaced with a replayable copy.
func requestBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	body, err := io.ReadAll(req.Body)
	req.Body.Close()
	if err != nil {
		return nil, err
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	return body, nil
}
