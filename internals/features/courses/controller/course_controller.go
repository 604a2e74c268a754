package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sikshyalaya_backend/internals/features/courses/dto"
	"sikshyalaya_backend/internals/features/courses/model"
	helper "sikshyalaya_backend/internals/helpers"
)

type CourseController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db, Validate: validator.New()}
}

// 🟢 GET ALL (public catalog, no session required)
func (ctrl *CourseController) GetAllCourses(c *fiber.Ctx) error {
	q := ctrl.DB.Where("course_is_published = ?", true).Order("created_at desc")
	if courseType := c.Query("type"); courseType != "" {
		q = q.Where("course_type = ?", courseType)
	}

	var courses []model.CourseModel
	if err := q.Find(&courses).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch courses")
	}
	return helper.Success(c, "Courses fetched", courses)
}

// 🟢 GET BY ID (public)
func (ctrl *CourseController) GetCourseByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var course model.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ? AND course_is_published = ?", id, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch course")
	}
	return helper.Success(c, "Course fetched", course)
}

// 🟢 CREATE (admin)
func (ctrl *CourseController) CreateCourse(c *fiber.Ctx) error {
	var body dto.CreateCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	published := true
	if body.IsPublished != nil {
		published = *body.IsPublished
	}

	course := model.CourseModel{
		CourseTitle:        body.Title,
		CourseDescription:  body.Description,
		CourseType:         body.Type,
		CoursePrice:        body.Price,
		CourseThumbnailURL: body.ThumbnailURL,
		CourseInstructor:   body.Instructor,
		CourseIsPublished:  published,
	}

	if err := ctrl.DB.Create(&course).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create course")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Course created", course)
}

// 🟢 UPDATE (admin)
func (ctrl *CourseController) UpdateCourse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var body dto.UpdateCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var course model.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch course")
	}

	if body.Title != nil {
		course.CourseTitle = *body.Title
	}
	if body.Description != nil {
		course.CourseDescription = *body.Description
	}
	if body.Type != nil {
		course.CourseType = *body.Type
	}
	if body.Price != nil {
		course.CoursePrice = *body.Price
	}
	if body.ThumbnailURL != nil {
		course.CourseThumbnailURL = *body.ThumbnailURL
	}
	if body.Instructor != nil {
		course.CourseInstructor = *body.Instructor
	}
	if body.IsPublished != nil {
		course.CourseIsPublished = *body.IsPublished
	}

	if err := ctrl.DB.Save(&course).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update course")
	}
	return helper.Success(c, "Course updated", course)
}

// 🟢 DELETE (admin, soft delete)
func (ctrl *CourseController) DeleteCourse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid course id")
	}
	if err := ctrl.DB.Delete(&model.CourseModel{}, "course_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete course")
	}
	return helper.Success(c, "Course deleted", nil)
}
