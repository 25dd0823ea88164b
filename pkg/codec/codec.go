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

// Package codec provides the low-level byte encodings shared by the signing
// engine: unpadded base64url segments, fixed-length big-endian integers and
// constant-time comparison.
package codec

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"math/big"
)

// EncodeSegment encodes data as unpadded base64url, the segment encoding
// used throughout the detached signature wire format.
func EncodeSegment(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// DecodeSegment decodes an unpadded base64url segment.
// Padded or otherwise malformed input is rejected.
func DecodeSegment(segment string) ([]byte, error) {
	data, err := base64.RawURLEncoding.DecodeString(segment)
	if err != nil {
		return nil, fmt.Errorf("invalid base64url segment: %w", err)
	}
	return data, nil
}

// FixedBigEndian encodes n as a big-endian integer in exactly size bytes,
// left-padded with zeros. It fails if n is negative or does not fit.
func FixedBigEndian(n *big.Int, size int) ([]byte, error) {
	if n.Sign() < 0 {
		return nil, fmt.Errorf("cannot encode negative integer")
	}
	if (n.BitLen()+7)/8 > size {
		return nil, fmt.Errorf("integer does not fit in %d bytes", size)
	}
	out := make([]byte, size)
	n.FillBytes(out)
	return out, nil
}

// ParseBigEndian interprets b as an unsigned big-endian integer.
func ParseBigEndian(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// ConstantTimeEqual reports whether a and b are equal without leaking
// timing information proportional to the number of matching bytes.
func ConstantTimeEqual(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
