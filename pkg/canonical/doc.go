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

// Package canonical builds the deterministic signing input for PolishAPI
// request signatures.
//
// A request's signable surface - HTTP method, path with query string, the
// profile's allow-listed headers in their fixed order, and the SHA-256
// digest of the body - is serialized into one byte string:
//
//	(method): POST
//	(path): /v3_0.1/payments/v3_0.1/domestic
//	x-request-id: 4b6fa506-94f0-4b17-a343-7d1ac6ef35f8
//	date: Tue, 18 Aug 2026 09:30:00 GMT
//	digest: sha-256=LPJNul-wow4m6DsqxbninhsWHlwfp0JecwQzYpOLmCQ
//
// Identical requests always produce byte-identical input regardless of the
// caller's header map ordering. This determinism is the property the signer
// and verifier depend on for interoperability between independently
// implemented clients and servers.
//
// # Signing profiles
//
// The header allow-list and its order are an injectable Profile rather than
// a constant, so revisions of the PolishAPI signing profile can be adopted
// through configuration:
//
//	profile, err := canonical.ParseProfile(yamlBytes)
//	builder := canonical.NewBuilder(profile)
//	input, err := builder.Build(req.Method, req.URL.RequestURI(), req.Header, body)
//
// Presence is what the allow-list checks: a required header that is absent
// fails the build, while a header present with an empty value is covered
// with that empty value.
package canonical
