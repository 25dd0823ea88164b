// Example: build a canonical input for a PolishAPI request and produce a
// detached JWS artifact for it.
//
// Usage:
//
//	go run ./cmd/examples/sign-request -key tpp.pem -kid tpp-key-2026
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/polishapi-project/polishapi-go/pkg/canonical"
	"github.com/polishapi-project/polishapi-go/pkg/jws"
	"github.com/polishapi-project/polishapi-go/pkg/signer"
)

func main() {
	keyPath := flag.String("key", "", "PEM file with the signing key (RSA or P-256)")
	keyID := flag.String("kid", "tpp-key-2026", "key identifier for the protected header")
	flag.Parse()

	if *keyPath == "" {
		log.Fatal("missing -key")
	}

	pemBytes, err := os.ReadFile(*keyPath)
	if err != nil {
		log.Fatalf("failed to read key file: %v", err)
	}

	key, err := signer.LoadSigningKey(pemBytes, *keyID)
	if err != nil {
		log.Fatalf("failed to load signing key: %v", err)
	}

	body := []byte(`{"requestId":"` + uuid.NewString() + `","instructedAmount":{"currency":"PLN","amount":"100.00"}}`)

	headers := http.Header{}
	headers.Set("X-Request-ID", uuid.NewString())
	headers.Set("Date", time.Now().UTC().Format(http.TimeFormat))

	input, err := canonical.NewDefaultBuilder().Build(
		http.MethodPost, "/v3_0.1/payments/v3_0.1/domestic", headers, body)
	if err != nil {
		log.Fatalf("failed to build canonical input: %v", err)
	}

	fmt.Println("=== Canonical input ===")
	fmt.Println(input.String())
	fmt.Println()

	artifact, err := signer.NewDefaultSigner().Sign(context.Background(), key, input)
	if err != nil {
		log.Fatalf("failed to sign: %v", err)
	}

	fmt.Printf("=== %s (%s) ===\n", jws.SignatureHeader, key.Algorithm())
	fmt.Println(artifact)
}
