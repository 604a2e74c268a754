package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"

	"sikshyalaya_backend/internals/constants"
	"sikshyalaya_backend/internals/features/orders/model"
	userModel "sikshyalaya_backend/internals/features/users/model"
)

// KhaltiGateway implements the Khalti ePayment flow: a server-initiated
// call returns a hosted payment URL, and Khalti redirects back with the
// outcome in query parameters.
type KhaltiGateway struct {
	SecretKey  string
	BaseURL    string
	WebsiteURL string
	HTTP       *http.Client
}

func NewKhaltiGateway(secretKey, baseURL, websiteURL string) *KhaltiGateway {
	return &KhaltiGateway{
		SecretKey:  secretKey,
		BaseURL:    baseURL,
		WebsiteURL: websiteURL,
		HTTP:       &http.Client{},
	}
}

type khaltiCustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type khaltiInitiateRequest struct {
	ReturnURL         string             `json:"return_url"`
	WebsiteURL        string             `json:"website_url"`
	Amount            int64              `json:"amount"`
	PurchaseOrderID   string             `json:"purchase_order_id"`
	PurchaseOrderName string             `json:"purchase_order_name"`
	CustomerInfo      khaltiCustomerInfo `json:"customer_info"`
}

type KhaltiInitiateResponse struct {
	Pidx       string `json:"pidx"`
	PaymentURL string `json:"payment_url"`
	ExpiresAt  string `json:"expires_at,omitempty"`
}

// KhaltiAmount converts rupees to the paisa minor unit Khalti expects.
func KhaltiAmount(rupees float64) int64 {
	return int64(math.Round(rupees * 100))
}

func (g *KhaltiGateway) Initiate(order *model.OrderModel, user *userModel.UserModel) (*InitiateResult, error) {
	if g.SecretKey == "" {
		return nil, errors.New("khalti secret key is not configured")
	}

	payload := khaltiInitiateRequest{
		ReturnURL:         g.WebsiteURL + "/api/payment/khalti-callback",
		WebsiteURL:        g.WebsiteURL,
		Amount:            KhaltiAmount(order.OrderAmount),
		PurchaseOrderID:   order.OrderTransactionID,
		PurchaseOrderName: order.OrderTitle,
	}
	if user != nil {
		payload.CustomerInfo = khaltiCustomerInfo{Name: user.UserName, Email: user.UserEmail}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, g.BaseURL+"/epayment/initiate/", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Key "+g.SecretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("khalti initiate call failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("khalti initiate rejected: %d %s", resp.StatusCode, string(respBody))
	}

	var initiated KhaltiInitiateResponse
	if err := json.Unmarshal(respBody, &initiated); err != nil {
		return nil, fmt.Errorf("khalti initiate response invalid: %w", err)
	}
	if initiated.Pidx == "" || initiated.PaymentURL == "" {
		return nil, errors.New("khalti initiate response missing pidx or payment_url")
	}

	return &InitiateResult{
		PaymentMethod: constants.PaymentMethodKhalti,
		PaymentData:   initiated,
	}, nil
}

// VerifyCallback reads the redirect query parameters. Trust is anchored on
// the status sentinel; the order is looked up by purchase_order_id.
func (g *KhaltiGateway) VerifyCallback(raw map[string]string) (*CallbackResult, error) {
	orderKey := raw["purchase_order_id"]
	if orderKey == "" {
		return nil, errors.New("khalti callback missing purchase_order_id")
	}

	txnRef := raw["transaction_id"]
	if txnRef == "" {
		txnRef = raw["txnId"]
	}

	rawAny := make(map[string]any, len(raw))
	for k, v := range raw {
		rawAny[k] = v
	}

	return &CallbackResult{
		Succeeded:      raw["status"] == constants.KhaltiStatusCompleted,
		OrderKey:       orderKey,
		TransactionRef: txnRef,
		Raw:            rawAny,
	}, nil
}
