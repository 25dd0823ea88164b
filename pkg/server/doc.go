// Package server provides HTTP middleware for detached JWS request
// verification.
//
// The middleware rebuilds the canonical input from each inbound request,
// resolves the verification key named by the artifact's kid, and rejects
// the request unless the X-JWS-Signature header verifies.
//
// # Features
//
//   - Detached JWS verification (PS256, ES256) on incoming requests
//   - Key resolution through verifier.KeyResolver
//   - Verified key id propagation into the request context
//   - Optional verification mode (allow unsigned requests)
//   - CORS preflight support (OPTIONS requests)
//   - Custom error handler support
//   - Request body preservation
//   - Constant-time check of the standalone Digest header
//
// # Basic Usage
//
//	keys, _ := verifier.NewKeySet(tppKey)
//	middleware := server.NewJWSAuthMiddleware(keys)
//
//	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//	    keyID, ok := server.KeyIDFromContext(r.Context())
//	    if !ok {
//	        http.Error(w, "Unauthorized", http.StatusUnauthorized)
//	        return
//	    }
//	    // keyID identifies the signing counterparty
//	})
//
//	http.ListenAndServe(":8080", middleware.Wrap(handler))
//
// # Optional Mode
//
// During migration an endpoint can accept unsigned requests while signed
// ones still get full verification:
//
//	middleware.SetOptional(true)
//
// Unsigned requests then pass through without a key id in the context.
package server
