package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "sikshyalaya_backend/internals/features/courses/model"
	"sikshyalaya_backend/internals/features/users/dto"
	"sikshyalaya_backend/internals/features/users/model"
	helper "sikshyalaya_backend/internals/helpers"
)

type ProgressController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewProgressController(db *gorm.DB) *ProgressController {
	return &ProgressController{DB: db, Validate: validator.New()}
}

// 🟢 MY COURSES: courses the user has been enrolled into by completed
// orders (or manual reconciliation).
func (ctrl *ProgressController) GetMyCourses(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}

	if len(user.UserEnrolledCourseIDs) == 0 {
		return helper.Success(c, "Courses fetched", []courseModel.CourseModel{})
	}

	ids := make([]uuid.UUID, 0, len(user.UserEnrolledCourseIDs))
	for _, s := range user.UserEnrolledCourseIDs {
		if id, err := uuid.Parse(s); err == nil {
			ids = append(ids, id)
		}
	}

	var courses []courseModel.CourseModel
	if err := ctrl.DB.Where("course_id IN ?", ids).Find(&courses).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch courses")
	}
	return helper.Success(c, "Courses fetched", courses)
}

// 🟢 COMPLETE LESSON: append to the progress log. Repeat completions of
// the same lesson are no-ops.
func (ctrl *ProgressController) CompleteLesson(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var body dto.CompleteLessonRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	courseID, err := uuid.Parse(body.CourseID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}

	enrolled := false
	for _, id := range user.UserEnrolledCourseIDs {
		if id == courseID.String() {
			enrolled = true
			break
		}
	}
	if !enrolled {
		return helper.Error(c, fiber.StatusForbidden, "You are not enrolled in this course")
	}

	for _, done := range user.UserCompletedLessons {
		if done.CourseID == courseID && done.LessonID == body.LessonID {
			return helper.Success(c, "Lesson already completed", user.UserCompletedLessons)
		}
	}

	user.UserCompletedLessons = append(user.UserCompletedLessons, model.CompletedLesson{
		CourseID:    courseID,
		LessonID:    body.LessonID,
		CompletedAt: time.Now(),
	})
	if err := ctrl.DB.Save(&user).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save progress")
	}
	return helper.Success(c, "Lesson completed", user.UserCompletedLessons)
}
