package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sikshyalaya_backend/internals/configs"
	couponRoute "sikshyalaya_backend/internals/features/coupons/route"
	courseRoute "sikshyalaya_backend/internals/features/courses/route"
	orderRoute "sikshyalaya_backend/internals/features/orders/route"
	userRoute "sikshyalaya_backend/internals/features/users/route"
	authMiddleware "sikshyalaya_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	authJWT := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	userRoute.AuthRoutes(app.Group("/api/auth"), db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	courseRoute.CoursePublicRoutes(public.Group("/courses"), db)

	// Coupon preview for the checkout UI; reads only, no usage consumed.
	couponRoute.CouponUserRoutes(app.Group("/api/coupons"), db)

	// ===================== PAYMENT =====================
	// Initiation needs a session; provider callbacks arrive with no auth
	// header and anchor trust inside the verified payload.
	log.Println("[INFO] Setting up Payment routes...")
	orderRoute.PaymentRoutes(app.Group("/api/payment"), db, authJWT)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", authJWT)
	userRoute.UserRoutes(private, db)
	orderRoute.OrderUserRoutes(private.Group("/orders"), db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a", authJWT, authMiddleware.IsAdmin())
	courseRoute.CourseAdminRoutes(admin.Group("/courses"), db)
	couponRoute.CouponAdminRoutes(admin.Group("/coupons"), db)
	orderRoute.OrderAdminRoutes(admin.Group("/orders"), db)
}
