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

// Package jws defines the detached signature artifact wire format:
// a protected-header segment and a signature segment, both unpadded
// base64url, joined by a single period with the payload segment omitted
// entirely. The two-segment form distinguishes a true detached artifact
// from the three-segment compact form that embeds its payload.
package jws

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/polishapi-project/polishapi-go/pkg/codec"
)

// Signature algorithm tags carried in the protected header.
const (
	// AlgPS256 is RSASSA-PSS with SHA-256 (salt length equal to the hash
	// output length)
	AlgPS256 = "PS256"

	// AlgES256 is ECDSA over P-256 with SHA-256, the signature encoded as
	// the fixed-length big-endian (r, s) pair
	AlgES256 = "ES256"
)

// SignatureHeader is the HTTP header that carries the detached artifact.
const SignatureHeader = "X-JWS-Signature"

// ProtectedHeader is the signed metadata of an artifact. It is immutable
// once produced: the header bytes are covered by the signature, so any
// change invalidates the artifact.
type ProtectedHeader struct {
	// Algorithm is the signature algorithm tag (AlgPS256 or AlgES256)
	Algorithm string `json:"alg"`

	// KeyID is the provider-assigned identifier of the signing key
	KeyID string `json:"kid"`

	// IssuedAt is the creation timestamp, seconds since epoch, UTC
	IssuedAt int64 `json:"iat"`
}

// Artifact is a parsed detached signature.
type Artifact struct {
	// Header is the decoded protected header
	Header ProtectedHeader

	// HeaderSegment is the base64url header segment exactly as received;
	// verification must rebuild the signing input from these bytes, not
	// from a re-serialization of Header
	HeaderSegment string

	// Signature is the raw signature bytes
	Signature []byte
}

// MalformedArtifactError reports an artifact that could not be decoded
// structurally. It is always distinct from a cryptographic failure.
type MalformedArtifactError struct {
	Reason string
}

// Error implements the error interface
func (e *MalformedArtifactError) Error() string {
	return fmt.Sprintf("malformed signature artifact: %s", e.Reason)
}

// MarshalHeader serializes a protected header into its base64url segment.
func MarshalHeader(header ProtectedHeader) (string, error) {
	if header.Algorithm != AlgPS256 && header.Algorithm != AlgES256 {
		return "", fmt.Errorf("unsupported algorithm %q", header.Algorithm)
	}
	if header.KeyID == "" {
		return "", fmt.Errorf("key id cannot be empty")
	}
	if header.IssuedAt <= 0 {
		return "", fmt.Errorf("creation timestamp must be positive")
	}

	data, err := json.Marshal(header)
	if err != nil {
		return "", fmt.Errorf("failed to serialize protected header: %w", err)
	}
	return codec.EncodeSegment(data), nil
}

// SigningInput builds the byte string the signature covers: the header
// segment, a period, and the canonical input bytes. The timestamp inside
// the header segment is part of what gets signed, so a fresh timestamp
// always forces a fresh signature.
func SigningInput(headerSegment string, canonical []byte) []byte {
	out := make([]byte, 0, len(headerSegment)+1+len(canonical))
	out = append(out, headerSegment...)
	out = append(out, '.')
	out = append(out, canonical...)
	return out
}

// Compact renders the detached artifact string from its header segment and
// raw signature bytes.
func Compact(headerSegment string, signature []byte) string {
	return headerSegment + "." + codec.EncodeSegment(signature)
}

// Parse decodes and structurally validates a detached artifact. It never
// returns partially decoded data: every failure is a *MalformedArtifactError.
func Parse(artifact string) (*Artifact, error) {
	segments := strings.Split(artifact, ".")
	if len(segments) != 2 {
		return nil, &MalformedArtifactError{Reason: fmt.Sprintf("expected 2 segments, got %d", len(segments))}
	}
	if segments[0] == "" {
		return nil, &MalformedArtifactError{Reason: "empty protected header segment"}
	}
	if segments[1] == "" {
		return nil, &MalformedArtifactError{Reason: "empty signature segment"}
	}

	headerBytes, err := codec.DecodeSegment(segments[0])
	if err != nil {
		return nil, &MalformedArtifactError{Reason: fmt.Sprintf("protected header: %v", err)}
	}

	var header ProtectedHeader
	if err := json.Unmarshal(headerBytes, &header); err != nil {
		return nil, &MalformedArtifactError{Reason: fmt.Sprintf("protected header is not valid JSON: %v", err)}
	}
	if header.Algorithm == "" {
		return nil, &MalformedArtifactError{Reason: "protected header is missing alg"}
	}
	if header.KeyID == "" {
		return nil, &MalformedArtifactError{Reason: "protected header is missing kid"}
	}
	if header.IssuedAt <= 0 {
		return nil, &MalformedArtifactError{Reason: "protected header is missing iat"}
	}

	signature, err := codec.DecodeSegment(segments[1])
	if err != nil {
		return nil, &MalformedArtifactError{Reason: fmt.Sprintf("signature: %v", err)}
	}

	return &Artifact{
		Header:        header,
		HeaderSegment: segments[0],
		Signature:     signature,
	}, nil
}
