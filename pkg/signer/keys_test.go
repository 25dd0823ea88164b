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
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"

	"github.com/polishapi-project/polishapi-go/pkg/jws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rsaKeyPEM generates a PKCS#1 PEM-encoded RSA private key for tests
func rsaKeyPEM(t *testing.T, bits int) ([]byte, *rsa.PrivateKey) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, bits)
	require.NoError(t, err)
	pemBytes := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
	return pemBytes, key
}

// ecdsaKeyPEM generates a SEC 1 PEM-encoded ECDSA private key for tests
func ecdsaKeyPEM(t *testing.T, curve elliptic.Curve) ([]byte, *ecdsa.PrivateKey) {
	t.Helper()
	key, err := ecdsa.GenerateKey(curve, rand.Reader)
	require.NoError(t, err)
	der, err := x509.MarshalECPrivateKey(key)
	require.NoError(t, err)
	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: der})
	return pemBytes, key
}

func TestLoadSigningKey_RSA(t *testing.T) {
	pemBytes, _ := rsaKeyPEM(t, 2048)

	key, err := LoadSigningKey(pemBytes, "tpp-key-2026")
	require.NoError(t, err)
	assert.Equal(t, jws.AlgPS256, key.Algorithm())
	assert.Equal(t, "tpp-key-2026", key.KeyID())
}

func TestLoadSigningKey_RSA_PKCS8(t *testing.T) {
	rsaKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKCS8PrivateKey(rsaKey)
	require.NoError(t, err)
	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})

	key, err := LoadSigningKey(pemBytes, "k1")
	require.NoError(t, err)
	assert.Equal(t, jws.AlgPS256, key.Algorithm())
}

func TestLoadSigningKey_ECDSA(t *testing.T) {
	pemBytes, _ := ecdsaKeyPEM(t, elliptic.P256())

	key, err := LoadSigningKey(pemBytes, "ec-key")
	require.NoError(t, err)
	assert.Equal(t, jws.AlgES256, key.Algorithm())
}

func TestLoadSigningKey_Failures(t *testing.T) {
	rsaShort, _ := rsaKeyPEM(t, 1024)
	ecP384, _ := ecdsaKeyPEM(t, elliptic.P384())

	_, edKey, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	edDER, err := x509.MarshalPKCS8PrivateKey(edKey)
	require.NoError(t, err)
	edPEM := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: edDER})

	tests := []struct {
		name  string
		pem   []byte
		keyID string
	}{
		{"empty key id", rsaShort, ""},
		{"no PEM block", []byte("not a pem file"), "k"},
		{"garbage PEM body", pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: []byte("junk")}), "k"},
		{"RSA key too short for PS256", rsaShort, "k"},
		{"ECDSA curve not P-256", ecP384, "k"},
		{"unsupported key type", edPEM, "k"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSigningKey(tt.pem, tt.keyID)
			require.Error(t, err)

			var loadErr *KeyLoadError
			assert.ErrorAs(t, err, &loadErr)
		})
	}
}
