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
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// HeaderRule names one signed header of a profile. Required headers fail
// the build when absent; optional headers are covered only when present.
type HeaderRule struct {
	Name     string `yaml:"name"`
	Required bool   `yaml:"required"`
}

// Profile is the ordered allow-list of headers covered by the signature.
// The list order is the canonical order; it is part of the wire contract
// between signer and verifier. The profile is injectable rather than
// hardcoded so signing-profile revisions do not require a library release.
type Profile struct {
	Headers []HeaderRule `yaml:"headers"`
}

// DefaultProfile returns the PolishAPI signing profile: the request id and
// date are always covered, the PSU language preference when present.
func DefaultProfile() Profile {
	return Profile{
		Headers: []HeaderRule{
			{Name: "X-Request-ID", Required: true},
			{Name: "Date", Required: true},
			{Name: "Accept-Language", Required: false},
		},
	}
}

// ParseProfile loads a signing profile from a YAML document:
//
//	headers:
//	  - name: X-Request-ID
//	    required: true
//	  - name: Date
//	    required: true
func ParseProfile(data []byte) (Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("failed to parse signing profile: %w", err)
	}
	if err := p.validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func (p Profile) validate() error {
	if len(p.Headers) == 0 {
		return fmt.Errorf("signing profile must list at least one header")
	}
	seen := make(map[string]struct{}, len(p.Headers))
	for _, rule := range p.Headers {
		if rule.Name == "" {
			return fmt.Errorf("signing profile header name cannot be empty")
		}
		key := strings.ToLower(rule.Name)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("signing profile lists header %q twice", rule.Name)
		}
		seen[key] = struct{}{}
	}
	return nil
}
