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

// Package polishapi provides version information for polishapi-go and the
// PolishAPI specification revision it targets.
package polishapi

const (
	// Version is the current version of polishapi-go
	Version = "0.3.0"

	// PolishAPIVersion is the PolishAPI specification version this library targets
	// See: https://polishapi.org
	PolishAPIVersion = "3.0.1"

	// SigningProfileVersion is the revision of the request signing profile
	// implemented by pkg/canonical, pkg/signer and pkg/verifier
	SigningProfileVersion = "1.0"
)

// VersionInfo contains detailed version information
type VersionInfo struct {
	LibraryVersion        string
	PolishAPIVersion      string
	SigningProfileVersion string
}

// GetVersionInfo returns detailed version information
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		LibraryVersion:        Version,
		PolishAPIVersion:      PolishAPIVersion,
		SigningProfileVersion: SigningProfileVersion,
	}
}
