package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "sikshyalaya_backend/internals/features/users/controller"
	middlewares "sikshyalaya_backend/internals/middlewares"
)

// AuthRoutes: public register/login endpoints.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := userController.NewAuthController(db)
	api.Post("/register", ctrl.Register)
	api.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	api.Post("/google", middlewares.LoginRateLimiter(), ctrl.GoogleLogin)
}

// UserRoutes: authenticated profile + dashboard progress.
func UserRoutes(api fiber.Router, db *gorm.DB) {
	authCtrl := userController.NewAuthController(db)
	progressCtrl := userController.NewProgressController(db)

	api.Get("/me", authCtrl.Me)
	api.Get("/dashboard/courses", progressCtrl.GetMyCourses)
	api.Post("/progress/complete", progressCtrl.CompleteLesson)
}
