package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type CourseModel struct {
	CourseID uuid.UUID `gorm:"column:course_id;type:uuid;default:gen_random_uuid();primaryKey" json:"course_id"`

	CourseTitle       string `gorm:"column:course_title;type:varchar(200);not null" json:"course_title"`
	CourseDescription string `gorm:"column:course_description;type:text" json:"course_description"`

	// video | live
	CourseType string `gorm:"column:course_type;type:varchar(20);not null;default:'video'" json:"course_type"`

	CoursePrice float64 `gorm:"column:course_price;not null;check:course_price >= 0" json:"course_price"`

	CourseThumbnailURL string `gorm:"column:course_thumbnail_url;type:text" json:"course_thumbnail_url"`
	CourseInstructor   string `gorm:"column:course_instructor;type:varchar(100)" json:"course_instructor"`

	CourseIsPublished bool `gorm:"column:course_is_published;default:true" json:"course_is_published"`

	// Back side of the enrollment invariant: user ids granted access.
	CourseEnrolledStudentIDs pq.StringArray `gorm:"column:course_enrolled_student_ids;type:text[]" json:"course_enrolled_student_ids"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (CourseModel) TableName() string {
	return "courses"
}
