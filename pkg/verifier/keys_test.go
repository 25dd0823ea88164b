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
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"testing"
	"time"

	"github.com/polishapi-project/polishapi-go/pkg/jws"
	"github.com/polishapi-project/polishapi-go/pkg/signer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func publicKeyPEM(t *testing.T, public any) []byte {
	t.Helper()
	der, err := x509.MarshalPKIXPublicKey(public)
	require.NoError(t, err)
	return pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})
}

func selfSignedCertPEM(t *testing.T, key *rsa.PrivateKey) []byte {
	t.Helper()
	template := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "tpp.example.com"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(24 * time.Hour),
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)
	return pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
}

func TestLoadVerificationKey_PKIX(t *testing.T) {
	rsaKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	key, err := LoadVerificationKey(publicKeyPEM(t, &rsaKey.PublicKey), "tpp-key-2026")
	require.NoError(t, err)
	assert.Equal(t, jws.AlgPS256, key.Algorithm())
	assert.Equal(t, "tpp-key-2026", key.KeyID())
}

func TestLoadVerificationKey_Certificate(t *testing.T) {
	rsaKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	key, err := LoadVerificationKey(selfSignedCertPEM(t, rsaKey), "cert-key")
	require.NoError(t, err)
	assert.Equal(t, jws.AlgPS256, key.Algorithm())
}

func TestLoadVerificationKey_ECDSA(t *testing.T) {
	ecKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	key, err := LoadVerificationKey(publicKeyPEM(t, &ecKey.PublicKey), "ec")
	require.NoError(t, err)
	assert.Equal(t, jws.AlgES256, key.Algorithm())
}

func TestLoadVerificationKey_Failures(t *testing.T) {
	ecP384, err := ecdsa.GenerateKey(elliptic.P384(), rand.Reader)
	require.NoError(t, err)

	rsaKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	valid := publicKeyPEM(t, &rsaKey.PublicKey)

	tests := []struct {
		name  string
		pem   []byte
		keyID string
	}{
		{"empty key id", valid, ""},
		{"no PEM block", []byte("not pem"), "k"},
		{"garbage DER", pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: []byte("junk")}), "k"},
		{"garbage certificate", pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: []byte("junk")}), "k"},
		{"unsupported curve", publicKeyPEM(t, &ecP384.PublicKey), "k"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadVerificationKey(tt.pem, tt.keyID)
			require.Error(t, err)

			var loadErr *signer.KeyLoadError
			assert.ErrorAs(t, err, &loadErr)
		})
	}
}

func TestKeySet(t *testing.T) {
	rsaKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	first, err := NewVerificationKey(&rsaKey.PublicKey, "key-1")
	require.NoError(t, err)
	second, err := NewVerificationKey(&rsaKey.PublicKey, "key-2")
	require.NoError(t, err)

	set, err := NewKeySet(first, second)
	require.NoError(t, err)

	resolved, err := set.ResolveKey(context.Background(), "key-2")
	require.NoError(t, err)
	assert.Equal(t, "key-2", resolved.KeyID())

	_, err = set.ResolveKey(context.Background(), "unknown")
	assert.Error(t, err)
}

func TestKeySet_DuplicateKeyID(t *testing.T) {
	rsaKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	first, err := NewVerificationKey(&rsaKey.PublicKey, "key-1")
	require.NoError(t, err)
	second, err := NewVerificationKey(&rsaKey.PublicKey, "key-1")
	require.NoError(t, err)

	_, err = NewKeySet(first, second)
	assert.Error(t, err)
}
