package controller

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"sikshyalaya_backend/internals/configs"
	"sikshyalaya_backend/internals/constants"
	"sikshyalaya_backend/internals/features/orders/dto"
	"sikshyalaya_backend/internals/features/orders/model"
	"sikshyalaya_backend/internals/features/orders/service"
	userModel "sikshyalaya_backend/internals/features/users/model"
	helper "sikshyalaya_backend/internals/helpers"
)

type PaymentController struct {
	DB         *gorm.DB
	Orders     *service.OrderService
	Reconciler *service.EnrollmentReconciler
	Validate   *validator.Validate
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{
		DB:         db,
		Orders:     service.NewOrderService(db),
		Reconciler: service.NewEnrollmentReconciler(db),
		Validate:   validator.New(),
	}
}

func successRedirectURL() string {
	return configs.FrontendURL + "/dashboard?payment=success"
}

func failureRedirectURL() string {
	return configs.FrontendURL + "/payment-failed"
}

// 🟢 INITIATE: create a pending order and hand back provider payment data.
func (ctrl *PaymentController) InitiatePayment(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var body dto.InitiatePaymentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	courseIDs, err := body.ResolveCourseIDs()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	gateway, err := service.GatewayFor(body.PaymentMethod)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Unsupported payment method")
	}

	order, err := ctrl.Orders.CreateOrder(userID, courseIDs, body.PaymentMethod, body.CouponCode)
	if err != nil {
		if errors.Is(err, service.ErrNoCoursesFound) {
			return helper.Error(c, fiber.StatusNotFound, "No courses found")
		}
		log.Printf("[ERROR] create order for user %s: %v", userID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create order")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		log.Printf("[WARN] initiate payment: purchaser %s not loaded: %v", userID, err)
	}

	result, err := gateway.Initiate(order, &user)
	if err != nil {
		log.Printf("[ERROR] %s initiate for order %s: %v", body.PaymentMethod, order.OrderID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to initiate payment")
	}

	return helper.Success(c, "Payment initiated", result)
}

// 🟢 ESEWA CALLBACK: provider redirect with ?data=<base64 JSON>.
// Redirect-only response: the paying user never sees diagnostics here.
func (ctrl *PaymentController) EsewaCallback(c *fiber.Ctx) error {
	gateway, _ := service.GatewayFor(constants.PaymentMethodEsewa)
	return ctrl.handleCallback(c, gateway, map[string]string{
		"data": c.Query("data"),
	})
}

// 🟢 KHALTI CALLBACK: provider redirect with the outcome in query params.
func (ctrl *PaymentController) KhaltiCallback(c *fiber.Ctx) error {
	gateway, _ := service.GatewayFor(constants.PaymentMethodKhalti)
	raw := map[string]string{
		"pidx":              c.Query("pidx"),
		"txnId":             c.Query("txnId"),
		"transaction_id":    c.Query("transaction_id"),
		"status":            c.Query("status"),
		"purchase_order_id": c.Query("purchase_order_id"),
		"amount":            c.Query("amount"),
	}
	return ctrl.handleCallback(c, gateway, raw)
}

func (ctrl *PaymentController) handleCallback(c *fiber.Ctx, gateway service.Gateway, raw map[string]string) error {
	result, err := gateway.VerifyCallback(raw)
	if err != nil {
		log.Printf("[ERROR] payment callback rejected: %v", err)
		return c.Redirect(failureRedirectURL())
	}
	if !result.Succeeded {
		// Provider reports non-success: nothing is mutated.
		log.Printf("[INFO] payment callback not successful for %s", result.OrderKey)
		return c.Redirect(failureRedirectURL())
	}

	var order model.OrderModel
	if err := ctrl.DB.First(&order, "order_transaction_id = ?", result.OrderKey).Error; err != nil {
		log.Printf("[ERROR] payment callback: order %s not found: %v", result.OrderKey, err)
		return c.Redirect(failureRedirectURL())
	}

	if order.OrderStatus != constants.OrderStatusCompleted {
		order.OrderStatus = constants.OrderStatusCompleted
		if result.TransactionRef != "" {
			order.OrderTransactionID = result.TransactionRef
		}
		if payload, err := json.Marshal(result.Raw); err == nil {
			order.OrderPaymentDetails = datatypes.JSON(payload)
		}
		if err := ctrl.DB.Save(&order).Error; err != nil {
			log.Printf("[ERROR] payment callback: persist order %s: %v", order.OrderID, err)
			return c.Redirect(failureRedirectURL())
		}
	}

	// Enrollment errors are logged inside the reconciler; the paying user
	// is redirected to the dashboard regardless.
	ctrl.Reconciler.Reconcile(&order)

	return c.Redirect(successRedirectURL())
}
