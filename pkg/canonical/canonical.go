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

package canonical

import (
	"crypto/sha256"
	"fmt"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/polishapi-project/polishapi-go/pkg/codec"
)

// Component names for the non-header pairs of the canonical input.
// Parentheses keep them outside the header namespace.
const (
	ComponentMethod = "(method)"
	ComponentPath   = "(path)"
	ComponentDigest = "digest"
)

// Pair is a single (name, value) entry of the canonical input.
type Pair struct {
	Name  string
	Value string
}

// Input is the deterministic byte representation of a request's signable
// surface. It is built fresh per request and never cached across requests.
type Input struct {
	pairs []Pair
}

// Pairs returns a copy of the ordered (name, value) pairs.
func (in *Input) Pairs() []Pair {
	out := make([]Pair, len(in.pairs))
	copy(out, in.pairs)
	return out
}

// Bytes renders the canonical input: one "name: value" line per pair,
// joined by a single newline, no trailing newline. Identical requests
// always render to identical bytes.
func (in *Input) Bytes() []byte {
	var b strings.Builder
	for i, p := range in.pairs {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(p.Name)
		b.WriteString(": ")
		b.WriteString(p.Value)
	}
	return []byte(b.String())
}

// String implements fmt.Stringer.
func (in *Input) String() string {
	return string(in.Bytes())
}

// MissingHeaderError reports a header the signing profile requires but the
// request did not carry. The builder never substitutes a default value.
type MissingHeaderError struct {
	Name string
}

// Error implements the error interface
func (e *MissingHeaderError) Error() string {
	return fmt.Sprintf("missing required header %q", e.Name)
}

// Builder derives canonical inputs from request fields under a fixed
// signing profile. A Builder is immutable and safe for concurrent use.
type Builder struct {
	profile Profile
}

// NewBuilder creates a Builder for the given signing profile.
func NewBuilder(profile Profile) *Builder {
	return &Builder{profile: profile}
}

// NewDefaultBuilder creates a Builder with the default PolishAPI profile.
func NewDefaultBuilder() *Builder {
	return NewBuilder(DefaultProfile())
}

// Build derives the canonical input for a request.
//
// The method is upper-cased; path must include the query string and is
// taken byte-for-byte as supplied (no re-encoding). Header names match
// case-insensitively but values are preserved in their original case; a
// header that is present with an empty value is included, only a truly
// absent required header is an error. The body is always represented by
// its SHA-256 digest; an empty body digests the empty byte string.
func (b *Builder) Build(method, path string, headers http.Header, body []byte) (*Input, error) {
	if method == "" {
		return nil, fmt.Errorf("method cannot be empty")
	}
	if path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}

	pairs := []Pair{
		{Name: ComponentMethod, Value: strings.ToUpper(method)},
		{Name: ComponentPath, Value: path},
	}

	for _, rule := range b.profile.Headers {
		values, ok := headers[textproto.CanonicalMIMEHeaderKey(rule.Name)]
		if !ok || len(values) == 0 {
			if rule.Required {
				return nil, &MissingHeaderError{Name: rule.Name}
			}
			continue
		}
		pairs = append(pairs, Pair{
			Name:  strings.ToLower(rule.Name),
			Value: strings.Join(values, ", "),
		})
	}

	pairs = append(pairs, Pair{Name: ComponentDigest, Value: BodyDigest(body)})

	return &Input{pairs: pairs}, nil
}

// BodyDigest renders the digest pair value for a request body:
// "sha-256=" followed by the unpadded base64url SHA-256 of the body.
func BodyDigest(body []byte) string {
	sum := sha256.Sum256(body)
	return "sha-256=" + codec.EncodeSegment(sum[:])
}
