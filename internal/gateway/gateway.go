package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"net/http"

	"github.com/mealtab/mealtab/internal/config"
	"github.com/mealtab/mealtab/pkg/clients"
	"go.uber.org/zap"
)

//go:generate mockgen -source=gateway.go -destination=gateway_mock.go -package=gateway

// ClientI is the boundary with the payment gateway: intent creation before
// the user is redirected to pay, and signature verification of inbound
// confirmations. The signature is the sole proof that money moved.
type ClientI interface {
	CreateIntent(ctx context.Context, amount float64, receipt string) (string, error)
	VerifySignature(gatewayOrderRef, gatewayPaymentRef, signature string) bool
}

type intentRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type intentResponse struct {
	ID string `json:"id"`
}

type Client struct {
	url    string
	keyID  string
	secret []byte
	client clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		url:    cfg.GatewayAddress,
		keyID:  cfg.GatewayKeyID,
		secret: []byte(cfg.GatewaySecret),
		client: client,
	}
}

// CreateIntent registers the order with the gateway and returns the gateway
// order reference. Amounts are sent in minor units.
func (c *Client) CreateIntent(ctx context.Context, amount float64, receipt string) (string, error) {
	body, err := json.Marshal(intentRequest{
		Amount:   int64(math.Round(amount * 100)),
		Currency: "INR",
		Receipt:  receipt,
	})
	if err != nil {
		return "", fmt.Errorf("can't marshal intent request: %w", err)
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("Authorization", "Basic "+basicAuth(c.keyID, string(c.secret)))

	statusCode, respBody, err := c.client.Post(c.url+"/v1/orders", headers, body)
	if err != nil {
		zap.L().Error("gateway intent request failed", zap.Error(err))
		return "", fmt.Errorf("gateway intent request failed: %w", err)
	}
	if statusCode != http.StatusOK && statusCode != http.StatusCreated {
		zap.L().Error("gateway intent rejected", zap.Int("status", statusCode))
		return "", fmt.Errorf("gateway intent rejected with status %d", statusCode)
	}

	var resp intentResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("can't unmarshal intent response: %w", err)
	}
	if resp.ID == "" {
		return "", fmt.Errorf("gateway intent response missing order id")
	}
	return resp.ID, nil
}

func basicAuth(user, password string) string {
	return base64.StdEncoding.EncodeToString([]byte(user + ":" + password))
}

// VerifySignature recomputes the expected HMAC-SHA256 digest over
// "<orderRef>|<paymentRef>" and compares it in constant time.
func (c *Client) VerifySignature(gatewayOrderRef, gatewayPaymentRef, signature string) bool {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(gatewayOrderRef + "|" + gatewayPaymentRef))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
