// Example: an ASPSP-side HTTP server that rejects requests without a valid
// detached JWS signature.
//
// Usage:
//
//	go run ./cmd/examples/verify-server -cert tpp-cert.pem -kid tpp-key-2026 -addr :8080
package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/polishapi-project/polishapi-go/pkg/server"
	"github.com/polishapi-project/polishapi-go/pkg/verifier"
	"github.com/rs/zerolog"
)

func main() {
	certPath := flag.String("cert", "", "PEM file with the TPP certificate or public key")
	keyID := flag.String("kid", "tpp-key-2026", "expected key identifier")
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	if *certPath == "" {
		log.Fatal("missing -cert")
	}

	pemBytes, err := os.ReadFile(*certPath)
	if err != nil {
		log.Fatalf("failed to read certificate: %v", err)
	}

	key, err := verifier.LoadVerificationKey(pemBytes, *keyID)
	if err != nil {
		log.Fatalf("failed to load verification key: %v", err)
	}

	keys, err := verifier.NewKeySet(key)
	if err != nil {
		log.Fatalf("failed to build key set: %v", err)
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	middleware := server.NewJWSAuthMiddlewareWithVerifier(
		keys,
		verifier.NewDefaultVerifierWithOptions(verifier.Options{MaxAge: 5 * time.Minute}),
		nil,
	)
	middleware.SetLogger(logger)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		keyID, _ := server.KeyIDFromContext(r.Context())
		json.NewEncoder(w).Encode(map[string]string{
			"status":   "accepted",
			"signedBy": keyID,
		})
	})

	logger.Info().Str("addr", *addr).Msg("listening")
	if err := http.ListenAndServe(*addr, middleware.Wrap(handler)); err != nil {
		log.Fatal(err)
	}
}
