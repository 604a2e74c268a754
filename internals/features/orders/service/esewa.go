package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"sikshyalaya_backend/internals/constants"
	"sikshyalaya_backend/internals/features/orders/model"
	userModel "sikshyalaya_backend/internals/features/users/model"
)

// EsewaGateway implements the eSewa ePay v2 redirect flow: the client
// auto-submits the signed form fields to eSewa's hosted payment page, and
// eSewa redirects back with a base64 JSON payload in the data query param.
type EsewaGateway struct {
	ProductCode string
	SecretKey   string
	PaymentURL  string
	SuccessURL  string
	FailureURL  string
}

func NewEsewaGateway(productCode, secretKey, paymentURL, successURL, failureURL string) *EsewaGateway {
	return &EsewaGateway{
		ProductCode: productCode,
		SecretKey:   secretKey,
		PaymentURL:  paymentURL,
		SuccessURL:  successURL,
		FailureURL:  failureURL,
	}
}

// EsewaPaymentForm carries the declared form fields. Tax, service and
// delivery charges are fixed at zero; courses have no surcharges.
type EsewaPaymentForm struct {
	Amount                string `json:"amount"`
	TaxAmount             string `json:"tax_amount"`
	TotalAmount           string `json:"total_amount"`
	TransactionUUID       string `json:"transaction_uuid"`
	ProductCode           string `json:"product_code"`
	ProductServiceCharge  string `json:"product_service_charge"`
	ProductDeliveryCharge string `json:"product_delivery_charge"`
	SuccessURL            string `json:"success_url"`
	FailureURL            string `json:"failure_url"`
	SignedFieldNames      string `json:"signed_field_names"`
	Signature             string `json:"signature"`
	PaymentURL            string `json:"payment_url"`
}

const esewaSignedFieldNames = "total_amount,transaction_uuid,product_code"

func esewaAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (g *EsewaGateway) sign(message string) string {
	mac := hmac.New(sha256.New, []byte(g.SecretKey))
	mac.Write([]byte(message))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// SignatureFor signs the canonical subset of fields eSewa verifies.
func (g *EsewaGateway) SignatureFor(totalAmount, transactionUUID string) string {
	message := fmt.Sprintf("total_amount=%s,transaction_uuid=%s,product_code=%s",
		totalAmount, transactionUUID, g.ProductCode)
	return g.sign(message)
}

func (g *EsewaGateway) Initiate(order *model.OrderModel, _ *userModel.UserModel) (*InitiateResult, error) {
	if g.SecretKey == "" {
		return nil, errors.New("esewa secret key is not configured")
	}

	total := esewaAmount(order.OrderAmount)
	form := EsewaPaymentForm{
		Amount:                total,
		TaxAmount:             "0",
		TotalAmount:           total,
		TransactionUUID:       order.OrderTransactionID,
		ProductCode:           g.ProductCode,
		ProductServiceCharge:  "0",
		ProductDeliveryCharge: "0",
		SuccessURL:            g.SuccessURL,
		FailureURL:            g.FailureURL,
		SignedFieldNames:      esewaSignedFieldNames,
		Signature:             g.SignatureFor(total, order.OrderTransactionID),
		PaymentURL:            g.PaymentURL,
	}

	return &InitiateResult{
		PaymentMethod: constants.PaymentMethodEsewa,
		PaymentData:   form,
	}, nil
}

// DecodeEsewaData decodes the base64 JSON payload from the callback's
// data query parameter. eSewa pads inconsistently, so try both alphabets.
func DecodeEsewaData(data string) (map[string]any, error) {
	data = strings.TrimSpace(data)
	if data == "" {
		return nil, errors.New("empty esewa data parameter")
	}

	var decoded []byte
	var err error
	for _, enc := range []*base64.Encoding{
		base64.StdEncoding, base64.RawStdEncoding, base64.URLEncoding, base64.RawURLEncoding,
	} {
		if decoded, err = enc.DecodeString(data); err == nil {
			break
		}
	}
	if err != nil {
		return nil, fmt.Errorf("invalid base64 payload: %w", err)
	}

	var payload map[string]any
	if err := json.Unmarshal(decoded, &payload); err != nil {
		return nil, fmt.Errorf("invalid json payload: %w", err)
	}
	return payload, nil
}

// verifyPayloadSignature rebuilds the signed message from the payload's own
// signed_field_names and compares signatures in constant time.
func (g *EsewaGateway) verifyPayloadSignature(payload map[string]any) bool {
	names, _ := payload["signed_field_names"].(string)
	signature, _ := payload["signature"].(string)
	if names == "" || signature == "" {
		return false
	}

	parts := make([]string, 0, 8)
	for _, name := range strings.Split(names, ",") {
		parts = append(parts, fmt.Sprintf("%s=%s", name, stringField(payload, name)))
	}
	expected := g.sign(strings.Join(parts, ","))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func stringField(payload map[string]any, key string) string {
	switch v := payload[key].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// VerifyCallback decodes the redirect payload and anchors trust on the
// status sentinel plus the payload signature.
func (g *EsewaGateway) VerifyCallback(raw map[string]string) (*CallbackResult, error) {
	payload, err := DecodeEsewaData(raw["data"])
	if err != nil {
		return nil, err
	}

	result := &CallbackResult{
		OrderKey:       stringField(payload, "transaction_uuid"),
		TransactionRef: stringField(payload, "transaction_code"),
		Raw:            payload,
	}

	if stringField(payload, "status") != constants.EsewaStatusComplete {
		return result, nil
	}
	if g.SecretKey != "" && !g.verifyPayloadSignature(payload) {
		return result, nil
	}

	result.Succeeded = true
	return result, nil
}
