package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseController "sikshyalaya_backend/internals/features/courses/controller"
)

// CoursePublicRoutes: read-only catalog, no session required.
func CoursePublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := courseController.NewCourseController(db)
	api.Get("/", ctrl.GetAllCourses)
	api.Get("/:id", ctrl.GetCourseByID)
}

// CourseAdminRoutes: CRUD over the catalog.
func CourseAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := courseController.NewCourseController(db)
	api.Post("/", ctrl.CreateCourse)
	api.Put("/:id", ctrl.UpdateCourse)
	api.Delete("/:id", ctrl.DeleteCourse)
}
