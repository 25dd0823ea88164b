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

package e2e

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/polishapi-project/polishapi-go/pkg/client"
	"github.com/polishapi-project/polishapi-go/pkg/jws"
	"github.com/polishapi-project/polishapi-go/pkg/protocol"
	"github.com/polishapi-project/polishapi-go/pkg/server"
	"github.com/polishapi-project/polishapi-go/pkg/signer"
	"github.com/polishapi-project/polishapi-go/pkg/verifier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rsaPair(t *testing.T, keyID string) (*signer.SigningKey, *verifier.VerificationKey) {
	t.Helper()

	rsaKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	priv, err := signer.LoadSigningKey(pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(rsaKey),
	}), keyID)
	require.NoError(t, err)

	pub, err := verifier.NewVerificationKey(&rsaKey.PublicKey, keyID)
	require.NoError(t, err)
	return priv, pub
}

func ecdsaPair(t *testing.T, keyID string) (*signer.SigningKey, *verifier.VerificationKey) {
	t.Helper()

	ecKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	der, err := x509.MarshalECPrivateKey(ecKey)
	require.NoError(t, err)
	priv, err := signer.LoadSigningKey(pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: der}), keyID)
	require.NoError(t, err)

	pub, err := verifier.NewVerificationKey(&ecKey.PublicKey, keyID)
	require.NoError(t, err)
	return priv, pub
}

// aspsp starts a verifying server that answers every signed payment
// initiation with an ACCEPTED response.
func aspsp(t *testing.T, pub *verifier.VerificationKey) *httptest.Server {
	t.Helper()

	keys, err := verifier.NewKeySet(pub)
	require.NoError(t, err)

	middleware := server.NewJWSAuthMiddlewareWithVerifier(
		keys,
		verifier.NewDefaultVerifierWithOptions(verifier.Options{MaxAge: 5 * time.Minute}),
		nil,
	)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := server.KeyIDFromContext(r.Context())
		require.True(t, ok, "verified requests must carry the key id")

		var req protocol.DomesticPaymentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		json.NewEncoder(w).Encode(&protocol.PaymentInitiationResponse{
			RequestID:         req.RequestID,
			TransactionStatus: protocol.PaymentAccepted,
			PaymentID:         "pmt-e2e-1",
		})
	})

	srv := httptest.NewServer(middleware.Wrap(handler))
	t.Cleanup(srv.Close)
	return srv
}

func paymentRequest() *protocol.DomesticPaymentRequest {
	return &protocol.DomesticPaymentRequest{
		BaseRequest:      protocol.BaseRequest{RequestID: uuid.New()},
		InstructedAmount: protocol.Amount{Currency: "PLN", Amount: "100.00"},
		DebtorAccount:    protocol.AccountReference{IBAN: "PL61109010140000071219812874"},
		CreditorName:     "Acme sp. z o.o.",
		CreditorAccount:  protocol.AccountReference{IBAN: "PL61109010140000071219812874"},
	}
}

func TestE2E_SignedPaymentCycle_PS256(t *testing.T) {
	priv, pub := rsaPair(t, "tpp-key-2026")
	srv := aspsp(t, pub)

	cfg, err := client.NewConfig(srv.URL)
	require.NoError(t, err)
	c, err := client.NewClient(cfg, priv, nil)
	require.NoError(t, err)

	resp, err := c.Payments().InitiateDomesticPayment(context.Background(), paymentRequest())
	require.NoError(t, err)
	assert.Equal(t, protocol.PaymentAccepted, resp.TransactionStatus)
	assert.Equal(t, "pmt-e2e-1", resp.PaymentID)
}

func TestE2E_SignedPaymentCycle_ES256(t *testing.T) {
	priv, pub := ecdsaPair(t, "tpp-ec-key")
	srv := aspsp(t, pub)

	cfg, err := client.NewConfig(srv.URL)
	require.NoError(t, err)
	c, err := client.NewClient(cfg, priv, nil)
	require.NoError(t, err)

	resp, err := c.Payments().InitiateDomesticPayment(context.Background(), paymentRequest())
	require.NoError(t, err)
	assert.Equal(t, protocol.PaymentAccepted, resp.TransactionStatus)
}

func TestE2E_UnknownSignerRejected(t *testing.T) {
	priv, _ := rsaPair(t, "rogue-key")
	_, pub := rsaPair(t, "pinned-key")
	srv := aspsp(t, pub)

	cfg, err := client.NewConfig(srv.URL)
	require.NoError(t, err)
	c, err := client.NewClient(cfg, priv, nil)
	require.NoError(t, err)

	_, err = c.Payments().InitiateDomesticPayment(context.Background(), paymentRequest())
	require.Error(t, err)

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

// tamperingTransport flips the body after signing, simulating modification
// in flight.
type tamperingTransport struct{}

func (tamperingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("X-Request-ID", uuid.NewString())
	return http.DefaultTransport.RoundTrip(req)
}

func TestE2E_TamperedRequestRejected(t *testing.T) {
	priv, pub := rsaPair(t, "tpp-key-2026")
	srv := aspsp(t, pub)

	cfg, err := client.NewConfig(srv.URL)
	require.NoError(t, err)
	c, err := client.NewClient(cfg, priv, tamperingTransport{})
	require.NoError(t, err)

	_, err = c.Payments().InitiateDomesticPayment(context.Background(), paymentRequest())
	require.Error(t, err)

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestE2E_UnsignedRequestRejected(t *testing.T) {
	_, pub := rsaPair(t, "tpp-key-2026")
	srv := aspsp(t, pub)

	resp, err := http.Post(srv.URL+"/v3_0.1/payments/v3_0.1/domestic", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, resp.Header.Get(jws.SignatureHeader))
}
