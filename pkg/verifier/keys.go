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
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"

	"github.com/polishapi-project/polishapi-go/pkg/jws"
	"github.com/polishapi-project/polishapi-go/pkg/signer"
)

// VerificationKey holds public key material, its algorithm tag and the key
// identifier it verifies for. It is read-only and may be shared across any
// number of concurrent verification calls.
type VerificationKey struct {
	algorithm string
	keyID     string
	rsaKey    *rsa.PublicKey
	ecdsaKey  *ecdsa.PublicKey
}

// LoadVerificationKey constructs a VerificationKey from a PEM-encoded
// public key (PKIX) or X.509 certificate. Malformed input fails here with a
// *signer.KeyLoadError, never at verification time.
func LoadVerificationKey(pemBytes []byte, keyID string) (*VerificationKey, error) {
	if keyID == "" {
		return nil, &signer.KeyLoadError{Reason: "key id cannot be empty"}
	}

	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, &signer.KeyLoadError{Reason: "no PEM block found"}
	}

	var public crypto.PublicKey
	if block.Type == "CERTIFICATE" {
		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, &signer.KeyLoadError{Reason: "failed to parse certificate", Err: err}
		}
		public = cert.PublicKey
	} else {
		key, err := x509.ParsePKIXPublicKey(block.Bytes)
		if err != nil {
			return nil, &signer.KeyLoadError{Reason: "failed to parse public key", Err: err}
		}
		public = key
	}

	return NewVerificationKey(public, keyID)
}

// NewVerificationKey constructs a VerificationKey from an in-memory public
// key. RSA keys verify PS256, P-256 ECDSA keys verify ES256.
func NewVerificationKey(public crypto.PublicKey, keyID string) (*VerificationKey, error) {
	if keyID == "" {
		return nil, &signer.KeyLoadError{Reason: "key id cannot be empty"}
	}

	switch key := public.(type) {
	case *rsa.PublicKey:
		return &VerificationKey{algorithm: jws.AlgPS256, keyID: keyID, rsaKey: key}, nil
	case *ecdsa.PublicKey:
		if key.Curve != elliptic.P256() {
			return nil, &signer.KeyLoadError{
				Reason: fmt.Sprintf("ECDSA curve %s is not supported, ES256 requires P-256", key.Curve.Params().Name),
			}
		}
		return &VerificationKey{algorithm: jws.AlgES256, keyID: keyID, ecdsaKey: key}, nil
	default:
		return nil, &signer.KeyLoadError{Reason: fmt.Sprintf("unsupported public key type %T", public)}
	}
}

// Algorithm returns the key's signature algorithm tag.
func (k *VerificationKey) Algorithm() string {
	return k.algorithm
}

// KeyID returns the key identifier this key verifies for.
func (k *VerificationKey) KeyID() string {
	return k.keyID
}
