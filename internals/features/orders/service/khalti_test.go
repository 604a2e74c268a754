package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"sikshyalaya_backend/internals/features/orders/model"
	userModel "sikshyalaya_backend/internals/features/users/model"
)

func TestKhaltiAmount_Paisa(t *testing.T) {
	if got := KhaltiAmount(1800); got != 180000 {
		t.Errorf("Expected 180000 paisa, got %d", got)
	}
	if got := KhaltiAmount(99.99); got != 9999 {
		t.Errorf("Expected 9999 paisa, got %d", got)
	}
}

func TestKhaltiInitiate(t *testing.T) {
	var received khaltiInitiateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/epayment/initiate/" {
			t.Errorf("Unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Key test-secret" {
			t.Errorf("Expected key auth header, got %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(KhaltiInitiateResponse{
			Pidx:       "bZQLD9wRVWo4CdESSfuSsB",
			PaymentURL: "https://test-pay.khalti.com/?pidx=bZQLD9wRVWo4CdESSfuSsB",
		})
	}))
	defer srv.Close()

	g := &KhaltiGateway{
		SecretKey:  "test-secret",
		BaseURL:    srv.URL,
		WebsiteURL: "http://localhost:5173",
		HTTP:       srv.Client(),
	}

	order := &model.OrderModel{
		OrderUserID:        uuid.New(),
		OrderTitle:         "2 Masterclasses",
		OrderAmount:        1800,
		OrderTransactionID: "1756300800000-9f36415e-d931-4f36-a8c9-dca562a2a0a2",
	}
	user := &userModel.UserModel{UserName: "Sita Sharma", UserEmail: "sita@example.com"}

	result, err := g.Initiate(order, user)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if received.Amount != 180000 {
		t.Errorf("Expected amount in paisa 180000, got %d", received.Amount)
	}
	if received.PurchaseOrderID != order.OrderTransactionID {
		t.Errorf("Expected purchase_order_id %q, got %q", order.OrderTransactionID, received.PurchaseOrderID)
	}
	if received.CustomerInfo.Email != "sita@example.com" {
		t.Errorf("Expected customer email forwarded, got %q", received.CustomerInfo.Email)
	}

	data, ok := result.PaymentData.(KhaltiInitiateResponse)
	if !ok {
		t.Fatalf("Expected KhaltiInitiateResponse payment data, got %T", result.PaymentData)
	}
	if data.Pidx == "" || data.PaymentURL == "" {
		t.Errorf("Expected pidx and payment_url, got %+v", data)
	}
}

func TestKhaltiInitiate_ProviderRejects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"Invalid key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	g := &KhaltiGateway{SecretKey: "bad", BaseURL: srv.URL, WebsiteURL: "http://localhost:5173", HTTP: srv.Client()}
	order := &model.OrderModel{OrderAmount: 1500, OrderTransactionID: "1-x"}

	if _, err := g.Initiate(order, nil); err == nil {
		t.Fatal("Expected error when provider rejects initiation")
	}
}

func TestKhaltiVerifyCallback(t *testing.T) {
	g := &KhaltiGateway{}

	ok, err := g.VerifyCallback(map[string]string{
		"pidx":              "bZQLD9wRVWo4CdESSfuSsB",
		"txnId":             "4H7AhhXzXuWGJ5x9",
		"status":            "Completed",
		"purchase_order_id": "1756300800000-user",
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !ok.Succeeded {
		t.Fatal("Expected Completed status to verify")
	}
	if ok.OrderKey != "1756300800000-user" {
		t.Errorf("Expected order key from purchase_order_id, got %q", ok.OrderKey)
	}
	if ok.TransactionRef != "4H7AhhXzXuWGJ5x9" {
		t.Errorf("Expected txnId as transaction ref, got %q", ok.TransactionRef)
	}

	pending, err := g.VerifyCallback(map[string]string{
		"status":            "Pending",
		"purchase_order_id": "1756300800000-user",
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if pending.Succeeded {
		t.Fatal("Expected non-Completed status to fail verification")
	}

	if _, err := g.VerifyCallback(map[string]string{"status": "Completed"}); err == nil {
		t.Fatal("Expected error when purchase_order_id is missing")
	}
}
