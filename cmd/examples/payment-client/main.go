// Example: initiate a domestic payment through the signed PolishAPI client.
//
// Usage:
//
//	go run ./cmd/examples/payment-client -key tpp.pem -kid tpp-key-2026 -url https://api.bank.example.com
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/polishapi-project/polishapi-go/pkg/client"
	"github.com/polishapi-project/polishapi-go/pkg/protocol"
	"github.com/polishapi-project/polishapi-go/pkg/signer"
	"github.com/rs/zerolog"
)

func main() {
	keyPath := flag.String("key", "", "PEM file with the signing key")
	keyID := flag.String("kid", "tpp-key-2026", "key identifier")
	baseURL := flag.String("url", "", "ASPSP base URL")
	flag.Parse()

	if *keyPath == "" || *baseURL == "" {
		log.Fatal("missing -key or -url")
	}

	pemBytes, err := os.ReadFile(*keyPath)
	if err != nil {
		log.Fatalf("failed to read key file: %v", err)
	}

	key, err := signer.LoadSigningKey(pemBytes, *keyID)
	if err != nil {
		log.Fatalf("failed to load signing key: %v", err)
	}

	cfg, err := client.NewConfig(*baseURL)
	if err != nil {
		log.Fatalf("invalid base URL: %v", err)
	}
	cfg.WithClientID("example-tpp").
		WithLogger(zerolog.New(os.Stderr).With().Timestamp().Logger())

	c, err := client.NewClient(cfg, key, nil)
	if err != nil {
		log.Fatalf("failed to create client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, err := c.Payments().InitiateDomesticPayment(ctx, &protocol.DomesticPaymentRequest{
		BaseRequest:                       protocol.BaseRequest{RequestID: uuid.New()},
		InstructedAmount:                  protocol.Amount{Currency: "PLN", Amount: "100.00"},
		DebtorAccount:                     protocol.AccountReference{IBAN: "PL61109010140000071219812874"},
		CreditorName:                      "Acme sp. z o.o.",
		CreditorAccount:                   protocol.AccountReference{IBAN: "PL61109010140000071219812874"},
		RemittanceInformationUnstructured: "Invoice 2026/08/42",
	})
	if err != nil {
		log.Fatalf("payment initiation failed: %v", err)
	}

	fmt.Printf("payment %s accepted with status %s\n", resp.PaymentID, resp.TransactionStatus)
}
