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
	"fmt"
)

// KeyResolver resolves the verification key for an artifact's key id.
// Implementations back it with whatever key distribution the deployment
// uses (a static set, a certificate directory, a KMS).
type KeyResolver interface {
	ResolveKey(ctx context.Context, keyID string) (*VerificationKey, error)
}

// KeySet is an immutable in-memory KeyResolver. Participants usually pin a
// handful of counterparty keys at configuration time; the set is read-only
// after construction and safe for concurrent lookups.
type KeySet struct {
	keys map[string]*VerificationKey
}

// NewKeySet builds a KeySet from verification keys. Key ids must be unique.
func NewKeySet(keys ...*VerificationKey) (*KeySet, error) {
	set := make(map[string]*VerificationKey, len(keys))
	for _, key := range keys {
		if key == nil {
			return nil, fmt.Errorf("verification key cannot be nil")
		}
		if _, dup := set[key.KeyID()]; dup {
			return nil, fmt.Errorf("duplicate key id %q", key.KeyID())
		}
		set[key.KeyID()] = key
	}
	return &KeySet{keys: set}, nil
}

// ResolveKey implements KeyResolver
func (s *KeySet) ResolveKey(_ context.Context, keyID string) (*VerificationKey, error) {
	key, ok := s.keys[keyID]
	if !ok {
		return nil, fmt.Errorf("no verification key for key id %q", keyID)
	}
	return key, nil
}
