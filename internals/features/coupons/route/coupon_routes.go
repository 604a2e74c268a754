package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	couponController "sikshyalaya_backend/internals/features/coupons/controller"
)

// CouponUserRoutes: preview validation for the checkout UI.
func CouponUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := couponController.NewCouponController(db)
	api.Post("/validate", ctrl.ValidateCoupon)
}

// CouponAdminRoutes: CRUD over coupons.
func CouponAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := couponController.NewCouponController(db)
	api.Post("/", ctrl.CreateCoupon)
	api.Get("/", ctrl.GetAllCoupons)
	api.Put("/:id", ctrl.UpdateCoupon)
	api.Delete("/:id", ctrl.DeleteCoupon)
}
