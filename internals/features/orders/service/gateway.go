package service

import (
	"errors"

	"sikshyalaya_backend/internals/configs"
	"sikshyalaya_backend/internals/constants"
	"sikshyalaya_backend/internals/features/orders/model"
	userModel "sikshyalaya_backend/internals/features/users/model"
)

var ErrUnsupportedPaymentMethod = errors.New("unsupported payment method")

// InitiateResult is handed back to the checkout UI. PaymentData shape is
// provider specific: eSewa returns signed form fields for auto-submit,
// Khalti a redirect URL, cash a plain message.
type InitiateResult struct {
	PaymentMethod string `json:"payment_method"`
	PaymentData   any    `json:"payment_data"`
}

// CallbackResult is the decoded outcome of a provider callback.
type CallbackResult struct {
	Succeeded      bool
	OrderKey       string // correlation key to look the order up by
	TransactionRef string // provider's final transaction reference
	Raw            map[string]any
}

// Gateway is the per-provider variant selected by the order's stored
// payment method tag.
type Gateway interface {
	Initiate(order *model.OrderModel, user *userModel.UserModel) (*InitiateResult, error)
	VerifyCallback(raw map[string]string) (*CallbackResult, error)
}

// GatewayFor resolves the gateway for a payment method from app config.
func GatewayFor(method string) (Gateway, error) {
	switch method {
	case constants.PaymentMethodEsewa:
		return NewEsewaGateway(
			configs.EsewaProductCode,
			configs.EsewaSecretKey,
			configs.EsewaPaymentURL,
			configs.FrontendURL+"/payment/success",
			configs.FrontendURL+"/payment/failure",
		), nil
	case constants.PaymentMethodKhalti:
		return NewKhaltiGateway(
			configs.KhaltiSecretKey,
			configs.KhaltiBaseURL,
			configs.FrontendURL,
		), nil
	case constants.PaymentMethodCash:
		return &CashGateway{}, nil
	default:
		return nil, ErrUnsupportedPaymentMethod
	}
}

// CashGateway: no external call. The order stays pending until an operator
// reconciles it manually.
type CashGateway struct{}

func (g *CashGateway) Initiate(order *model.OrderModel, _ *userModel.UserModel) (*InitiateResult, error) {
	return &InitiateResult{
		PaymentMethod: constants.PaymentMethodCash,
		PaymentData: map[string]string{
			"message": "Order placed. Please complete the payment at our office to activate your courses.",
		},
	}, nil
}

func (g *CashGateway) VerifyCallback(map[string]string) (*CallbackResult, error) {
	return nil, errors.New("cash orders have no provider callback")
}
