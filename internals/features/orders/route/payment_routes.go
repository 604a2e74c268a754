package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	orderController "sikshyalaya_backend/internals/features/orders/controller"
)

// PaymentRoutes: checkout initiation (session required) and the public
// provider callbacks. Callbacks carry no auth header; trust is anchored
// inside the verified payload.
func PaymentRoutes(api fiber.Router, db *gorm.DB, authRequired fiber.Handler) {
	ctrl := orderController.NewPaymentController(db)

	api.Post("/initiate", authRequired, ctrl.InitiatePayment)
	api.Get("/esewa-callback", ctrl.EsewaCallback)
	api.Get("/khalti-callback", ctrl.KhaltiCallback)
}

// OrderUserRoutes: the signed-in user's purchase history.
func OrderUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := orderController.NewOrderController(db)
	api.Get("/", ctrl.GetMyOrders)
}

// OrderAdminRoutes: back-office order listing.
func OrderAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := orderController.NewOrderController(db)
	api.Get("/", ctrl.GetAllOrders)
}
