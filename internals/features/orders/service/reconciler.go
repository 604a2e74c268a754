package service

import (
	"errors"
	"log"

	"github.com/lib/pq"
	"gorm.io/gorm"

	courseModel "sikshyalaya_backend/internals/features/courses/model"
	"sikshyalaya_backend/internals/features/orders/model"
	userModel "sikshyalaya_backend/internals/features/users/model"
)

// EnrollmentReconciler grants course access once an order is completed.
// Roster and user writes are separate operations with no transaction; a
// crash between them leaves one side to be corrected out-of-band.
type EnrollmentReconciler struct {
	DB *gorm.DB
}

func NewEnrollmentReconciler(db *gorm.DB) *EnrollmentReconciler {
	return &EnrollmentReconciler{DB: db}
}

func ContainsID(arr pq.StringArray, id string) bool {
	for _, v := range arr {
		if v == id {
			return true
		}
	}
	return false
}

// AppendUniqueID keeps the membership append idempotent under duplicate
// webhook delivery.
func AppendUniqueID(arr pq.StringArray, id string) pq.StringArray {
	if ContainsID(arr, id) {
		return arr
	}
	return append(arr, id)
}

// Reconcile enrolls the purchasing user into every course on the order.
// Called only after the order status is set to completed. A missing course
// skips that item and keeps going; errors are logged, never surfaced to
// the paying user.
func (r *EnrollmentReconciler) Reconcile(order *model.OrderModel) {
	userID := order.OrderUserID.String()

	var user userModel.UserModel
	if err := r.DB.First(&user, "user_id = ?", order.OrderUserID).Error; err != nil {
		log.Printf("[ERROR] reconcile order %s: user %s not found: %v", order.OrderID, userID, err)
		return
	}

	userChanged := false
	for _, item := range order.OrderItems {
		var course courseModel.CourseModel
		if err := r.DB.First(&course, "course_id = ?", item.CourseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("[WARN] reconcile order %s: course %s missing, skipping item", order.OrderID, item.CourseID)
			} else {
				log.Printf("[ERROR] reconcile order %s: fetch course %s: %v", order.OrderID, item.CourseID, err)
			}
			continue
		}

		if !ContainsID(course.CourseEnrolledStudentIDs, userID) {
			course.CourseEnrolledStudentIDs = AppendUniqueID(course.CourseEnrolledStudentIDs, userID)
			if err := r.DB.Save(&course).Error; err != nil {
				log.Printf("[ERROR] reconcile order %s: save course roster %s: %v", order.OrderID, course.CourseID, err)
				continue
			}
		}

		courseID := course.CourseID.String()
		if !ContainsID(user.UserEnrolledCourseIDs, courseID) {
			user.UserEnrolledCourseIDs = AppendUniqueID(user.UserEnrolledCourseIDs, courseID)
			userChanged = true
		}
	}

	if userChanged {
		if err := r.DB.Save(&user).Error; err != nil {
			log.Printf("[ERROR] reconcile order %s: save user enrollments: %v", order.OrderID, err)
		}
	}
}
