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
	"crypto/elliptic"
	"crypto/rsa"
	"crypto/sha256"
	"net/http"
	"strings"
	"testing"

	"github.com/polishapi-project/polishapi-go/pkg/canonical"
	"github.com/polishapi-project/polishapi-go/pkg/codec"
	"github.com/polishapi-project/polishapi-go/pkg/jws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInput(t *testing.T) *canonical.Input {
	t.Helper()

	h := http.Header{}
	h.Set("X-Request-ID", "4b6fa506-94f0-4b17-a343-7d1ac6ef35f8")
	h.Set("Date", "Tue, 18 Aug 2026 09:30:00 GMT")

	input, err := canonical.NewDefaultBuilder().Build(
		"POST",
		"/v3_0.1/payments/v3_0.1/domestic",
		h,
		[]byte(`{"instructedAmount":{"currency":"PLN","amount":"100.00"}}`),
	)
	require.NoError(t, err)
	return input
}

func TestDefaultSigner_PS256(t *testing.T) {
	pemBytes, rsaKey := rsaKeyPEM(t, 2048)
	key, err := LoadSigningKey(pemBytes, "tpp-key-2026")
	require.NoError(t, err)

	input := testInput(t)
	artifact, err := NewDefaultSigner().SignWithOptions(context.Background(), key, input, &SigningOptions{IssuedAt: 1766000000})
	require.NoError(t, err)

	parsed, err := jws.Parse(artifact)
	require.NoError(t, err)
	assert.Equal(t, jws.AlgPS256, parsed.Header.Algorithm)
	assert.Equal(t, "tpp-key-2026", parsed.Header.KeyID)
	assert.Equal(t, int64(1766000000), parsed.Header.IssuedAt)

	// Check the signature against the documented signing input
	digest := sha256.Sum256(jws.SigningInput(parsed.HeaderSegment, input.Bytes()))
	err = rsa.VerifyPSS(&rsaKey.PublicKey, crypto.SHA256, digest[:], parsed.Signature, &rsa.PSSOptions{
		SaltLength: rsa.PSSSaltLengthEqualsHash,
		Hash:       crypto.SHA256,
	})
	assert.NoError(t, err)
}

func TestDefaultSigner_ES256(t *testing.T) {
	pemBytes, ecKey := ecdsaKeyPEM(t, elliptic.P256())
	key, err := LoadSigningKey(pemBytes, "ec-key")
	require.NoError(t, err)

	input := testInput(t)
	artifact, err := NewDefaultSigner().Sign(context.Background(), key, input)
	require.NoError(t, err)

	parsed, err := jws.Parse(artifact)
	require.NoError(t, err)
	assert.Equal(t, jws.AlgES256, parsed.Header.Algorithm)

	// Fixed-length (r, s) encoding, not DER
	require.Len(t, parsed.Signature, 64)

	digest := sha256.Sum256(jws.SigningInput(parsed.HeaderSegment, input.Bytes()))
	r := codec.ParseBigEndian(parsed.Signature[:32])
	s := codec.ParseBigEndian(parsed.Signature[32:])
	assert.True(t, ecdsa.Verify(&ecKey.PublicKey, digest[:], r, s))
}

func TestDefaultSigner_ArtifactIsDetached(t *testing.T) {
	pemBytes, _ := ecdsaKeyPEM(t, elliptic.P256())
	key, err := LoadSigningKey(pemBytes, "ec-key")
	require.NoError(t, err)

	artifact, err := NewDefaultSigner().Sign(context.Background(), key, testInput(t))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(artifact, "."))
}

func TestDefaultSigner_RandomizedPerCall(t *testing.T) {
	pemBytes, _ := rsaKeyPEM(t, 2048)
	key, err := LoadSigningKey(pemBytes, "k")
	require.NoError(t, err)

	input := testInput(t)
	opts := &SigningOptions{IssuedAt: 1766000000}

	first, err := NewDefaultSigner().SignWithOptions(context.Background(), key, input, opts)
	require.NoError(t, err)
	second, err := NewDefaultSigner().SignWithOptions(context.Background(), key, input, opts)
	require.NoError(t, err)

	// PSS salts are random per call, so identical inputs produce distinct
	// artifacts; both are valid
	assert.NotEqual(t, first, second)
}

func TestDefaultSigner_InputValidation(t *testing.T) {
	pemBytes, _ := rsaKeyPEM(t, 2048)
	key, err := LoadSigningKey(pemBytes, "k")
	require.NoError(t, err)

	ctx := context.Background()
	s := NewDefaultSigner()

	_, err = s.Sign(ctx, nil, testInput(t))
	assert.Error(t, err)

	_, err = s.Sign(ctx, key, nil)
	assert.Error(t, err)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = s.Sign(cancelled, key, testInput(t))
	assert.Error(t, err)
}
