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
	"crypto/elliptic"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"

	"github.com/polishapi-project/polishapi-go/pkg/jws"
)

// minRSABits is the smallest RSA modulus accepted for PS256. Shorter keys
// fail at load time, never at signing time.
const minRSABits = 2048

// KeyLoadError reports a PEM parse or algorithm-mismatch failure at key
// construction time.
type KeyLoadError struct {
	Reason string
	Err    error
}

// Error implements the error interface
func (e *KeyLoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("key load failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("key load failed: %s", e.Reason)
}

// Unwrap returns the underlying parse error, if any
func (e *KeyLoadError) Unwrap() error {
	return e.Err
}

// SigningKey holds private key material, its algorithm tag and the
// provider-assigned key identifier. It is immutable once constructed and
// exposes no mutation API, so concurrent signing calls are safe.
type SigningKey struct {
	algorithm string
	keyID     string
	rsaKey    *rsa.PrivateKey
	ecdsaKey  *ecdsa.PrivateKey
}

// LoadSigningKey constructs a SigningKey from a PEM-encoded private key.
// RSA keys (PKCS#1 or PKCS#8) of at least 2048 bits sign with PS256;
// P-256 ECDSA keys (SEC 1 or PKCS#8) sign with ES256. Any other key
// material is a *KeyLoadError.
func LoadSigningKey(pemBytes []byte, keyID string) (*SigningKey, error) {
	if keyID == "" {
		return nil, &KeyLoadError{Reason: "key id cannot be empty"}
	}

	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, &KeyLoadError{Reason: "no PEM block found"}
	}

	parsed, err := parsePrivateKey(block)
	if err != nil {
		return nil, err
	}

	switch key := parsed.(type) {
	case *rsa.PrivateKey:
		if key.N.BitLen() < minRSABits {
			return nil, &KeyLoadError{
				Reason: fmt.Sprintf("RSA key is %d bits, PS256 requires at least %d", key.N.BitLen(), minRSABits),
			}
		}
		return &SigningKey{algorithm: jws.AlgPS256, keyID: keyID, rsaKey: key}, nil
	case *ecdsa.PrivateKey:
		if key.Curve != elliptic.P256() {
			return nil, &KeyLoadError{
				Reason: fmt.Sprintf("ECDSA curve %s is not supported, ES256 requires P-256", key.Curve.Params().Name),
			}
		}
		return &SigningKey{algorithm: jws.AlgES256, keyID: keyID, ecdsaKey: key}, nil
	default:
		return nil, &KeyLoadError{Reason: fmt.Sprintf("unsupported private key type %T", parsed)}
	}
}

func parsePrivateKey(block *pem.Block) (any, error) {
	if key, err := x509.ParsePKCS8PrivateKey(block.Bytes); err == nil {
		return key, nil
	}
	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}
	if key, err := x509.ParseECPrivateKey(block.Bytes); err == nil {
		return key, nil
	}
	return nil, &KeyLoadError{Reason: fmt.Sprintf("PEM block %q does not contain a parseable private key", block.Type)}
}

// Algorithm returns the key's signature algorithm tag.
func (k *SigningKey) Algorithm() string {
	return k.algorithm
}

// KeyID returns the provider-assigned key identifier.
func (k *SigningKey) KeyID() string {
	return k.keyID
}
