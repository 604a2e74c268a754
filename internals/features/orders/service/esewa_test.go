package service

import (
	"encoding/base64"
	"encoding/json"
	"testing"
)

// Vectors computed against eSewa's published UAT secret.
const esewaTestSecret = "8gBm/:&EnhH.1/q"

func testEsewaGateway() *EsewaGateway {
	return NewEsewaGateway(
		"EPAY-TEST",
		esewaTestSecret,
		"https://rc-epay.esewa.com.np/api/epay/main/v2/form",
		"http://localhost:5173/payment/success",
		"http://localhost:5173/payment/failure",
	)
}

func TestEsewaSignatureFor(t *testing.T) {
	g := testEsewaGateway()

	got := g.SignatureFor("110", "241028214703")
	want := "dqDmoR0CduCh5CPmAYf8Fl1qy7Ap9JP3aJ4HH2yrnLk="
	if got != want {
		t.Errorf("Expected signature %q, got %q", want, got)
	}
}

func encodeEsewaPayload(t *testing.T, payload map[string]any) map[string]string {
	t.Helper()
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return map[string]string{"data": base64.StdEncoding.EncodeToString(raw)}
}

func completePayload(g *EsewaGateway) map[string]any {
	payload := map[string]any{
		"transaction_code":   "000ABC",
		"status":             "COMPLETE",
		"total_amount":       "1800.0",
		"transaction_uuid":   "1756300800000-9f36415e-d931-4f36-a8c9-dca562a2a0a2",
		"product_code":       "EPAY-TEST",
		"signed_field_names": "transaction_code,status,total_amount,transaction_uuid,product_code,signed_field_names",
	}
	message := "transaction_code=000ABC,status=COMPLETE,total_amount=1800.0," +
		"transaction_uuid=1756300800000-9f36415e-d931-4f36-a8c9-dca562a2a0a2," +
		"product_code=EPAY-TEST," +
		"signed_field_names=transaction_code,status,total_amount,transaction_uuid,product_code,signed_field_names"
	payload["signature"] = g.sign(message)
	return payload
}

func TestEsewaVerifyCallback_Complete(t *testing.T) {
	g := testEsewaGateway()
	payload := completePayload(g)

	// Cross-check the signing helper against an externally computed vector.
	if payload["signature"] != "P2PwsE6IAFzNF9GLZbVTeEgMIcTclgTmixY8wShPvmc=" {
		t.Fatalf("signature helper drifted from known vector: %v", payload["signature"])
	}

	result, err := g.VerifyCallback(encodeEsewaPayload(t, payload))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !result.Succeeded {
		t.Fatal("Expected callback to verify")
	}
	if result.OrderKey != "1756300800000-9f36415e-d931-4f36-a8c9-dca562a2a0a2" {
		t.Errorf("Expected order key from transaction_uuid, got %q", result.OrderKey)
	}
	if result.TransactionRef != "000ABC" {
		t.Errorf("Expected provider reference 000ABC, got %q", result.TransactionRef)
	}
}

func TestEsewaVerifyCallback_NotComplete(t *testing.T) {
	g := testEsewaGateway()
	payload := completePayload(g)
	payload["status"] = "PENDING"

	result, err := g.VerifyCallback(encodeEsewaPayload(t, payload))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if result.Succeeded {
		t.Fatal("Expected non-COMPLETE status to fail verification")
	}
}

func TestEsewaVerifyCallback_TamperedSignature(t *testing.T) {
	g := testEsewaGateway()
	payload := completePayload(g)
	payload["signature"] = "AAAA" + payload["signature"].(string)[4:]

	result, err := g.VerifyCallback(encodeEsewaPayload(t, payload))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if result.Succeeded {
		t.Fatal("Expected tampered signature to fail verification")
	}
}

func TestDecodeEsewaData_Invalid(t *testing.T) {
	if _, err := DecodeEsewaData("%%%not-base64%%%"); err == nil {
		t.Error("Expected error for invalid base64")
	}
	if _, err := DecodeEsewaData(""); err == nil {
		t.Error("Expected error for empty data")
	}
	if _, err := DecodeEsewaData(base64.StdEncoding.EncodeToString([]byte("not json"))); err == nil {
		t.Error("Expected error for non-JSON payload")
	}
}
