// Package transport provides an http.RoundTripper that signs outgoing
// PolishAPI requests with detached JWS artifacts.
//
// Wrap any HTTP client with a SigningRoundTripper and every request it
// issues carries X-JWS-Signature, a fresh X-Request-ID, a Date header, and
// the body Digest:
//
//	key, err := signer.LoadSigningKey(pemBytes, "tpp-key-2026")
//	rt, err := transport.NewSigningRoundTripper(key, transport.Options{})
//	httpClient := &http.Client{Transport: rt}
//
//	resp, err := httpClient.Post(url, "application/json", body)
//
// Headers the caller sets explicitly are left alone; only absent
// X-Request-ID and Date values are stamped. The wire call itself is always
// delegated to the inner transport, so proxies, TLS configuration, and
// timeouts stay under the caller's control.
package transport
