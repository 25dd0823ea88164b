package server

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/polishapi-project/polishapi-go/pkg/canonical"
	"github.com/polishapi-project/polishapi-go/pkg/codec"
	"github.com/polishapi-project/polishapi-go/pkg/jws"
	"github.com/polishapi-project/polishapi-go/pkg/verifier"
	"github.com/rs/zerolog"
)

type contextKey string

const signerKeyIDKey contextKey = "jws_key_id"

// DigestHeader is the body digest header checked against the signed
// canonical input.
const DigestHeader = "Digest"

// ErrorHandler handles verification errors
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// JWSAuthMiddleware provides HTTP middleware for detached JWS signature
// verification on inbound PolishAPI requests.
type JWSAuthMiddleware struct {
	resolver     verifier.KeyResolver
	verifier     verifier.Verifier
	builder      *canonical.Builder
	errorHandler ErrorHandler
	optional     bool
	logger       zerolog.Logger
}

// NewJWSAuthMiddleware creates middleware resolving verification keys
// through resolver and verifying with the default verifier and profile.
func NewJWSAuthMiddleware(resolver verifier.KeyResolver) *JWSAuthMiddleware {
	return NewJWSAuthMiddlewareWithVerifier(resolver, verifier.NewDefaultVerifier(), canonical.NewDefaultBuilder())
}

// NewJWSAuthMiddlewareWithVerifier creates middleware with a custom verifier
// and canonical input builder. A nil builder uses the default profile.
func NewJWSAuthMiddlewareWithVerifier(resolver verifier.KeyResolver, v verifier.Verifier, builder *canonical.Builder) *JWSAuthMiddleware {
	if builder == nil {
		builder = canonical.NewDefaultBuilder()
	}
	return &JWSAuthMiddleware{
		resolver:     resolver,
		verifier:     v,
		builder:      builder,
		errorHandler: defaultErrorHandler,
		optional:     false,
		logger:       zerolog.Nop(),
	}
}

// SetErrorHandler sets a custom error handler
func (m *JWSAuthMiddleware) SetErrorHandler(handler ErrorHandler) {
	m.errorHandler = handler
}

// SetOptional sets whether signature verification is optional.
// If true, requests without an X-JWS-Signature header pass through.
func (m *JWSAuthMiddleware) SetOptional(optional bool) {
	m.optional = optional
}

// SetLogger sets the logger for verification outcomes
func (m *JWSAuthMiddleware) SetLogger(logger zerolog.Logger) {
	m.logger = logger
}

// Wrap wraps an HTTP handler with signature verification
func (m *JWSAuthMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Skip verification for OPTIONS requests (CORS preflight)
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		artifact := r.Header.Get(jws.SignatureHeader)
		if artifact == "" {
			if m.optional {
				next.ServeHTTP(w, r)
				return
			}
			m.errorHandler(w, r, fmt.Errorf("missing %s header", jws.SignatureHeader))
			return
		}

		// Read body to preserve it for the handler
		var bodyBytes []byte
		if r.Body != nil {
			bodyBytes, _ = io.ReadAll(r.Body)
			r.Body.Close()
		}
		r.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		keyID, err := m.verifyRequest(r, artifact, bodyBytes)
		if err != nil {
			r.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
			m.logger.Warn().Err(err).
				Str("method", r.Method).
				Str("path", r.URL.RequestURI()).
				Msg("rejected inbound request")
			m.errorHandler(w, r, err)
			return
		}

		m.logger.Debug().
			Str("kid", keyID).
			Str("path", r.URL.RequestURI()).
			Msg("verified inbound request")

		r.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		r = r.WithContext(context.WithValue(r.Context(), signerKeyIDKey, keyID))
		next.ServeHTTP(w, r)
	})
}

func (m *JWSAuthMiddleware) verifyRequest(r *http.Request, artifact string, body []byte) (string, error) {
	parsed, err := jws.Parse(artifact)
	if err != nil {
		return "", fmt.Errorf("malformed signature artifact: %w", err)
	}

	key, err := m.resolver.ResolveKey(r.Context(), parsed.Header.KeyID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve verification key: %w", err)
	}

	input, err := m.builder.Build(r.Method, r.URL.RequestURI(), r.Header, body)
	if err != nil {
		return "", fmt.Errorf("failed to build canonical input: %w", err)
	}

	if err := m.verifier.Verify(r.Context(), key, artifact, input); err != nil {
		return "", fmt.Errorf("signature verification failed: %w", err)
	}

	// The digest pair inside the canonical input is already covered by the
	// signature; this guards the standalone header against mismatch
	if sent := r.Header.Get(DigestHeader); sent != "" {
		expected := canonical.BodyDigest(body)
		if !codec.ConstantTimeEqual([]byte(sent), []byte(expected)) {
			return "", fmt.Errorf("digest header does not match request body")
		}
	}

	return parsed.Header.KeyID, nil
}

// KeyIDFromContext extracts the verified signer key id from the request
// context.
func KeyIDFromContext(ctx context.Context) (string, bool) {
	keyID, ok := ctx.Value(signerKeyIDKey).(string)
	return keyID, ok
}

// defaultErrorHandler is the default error handler
func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	http.Error(w, fmt.Sprintf("Unauthorized: %s", err.Error()), http.StatusUnauthorized)
}
