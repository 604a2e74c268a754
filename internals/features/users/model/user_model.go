package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CompletedLesson is one entry in the user's progress log.
type CompletedLesson struct {
	CourseID    uuid.UUID `json:"course_id"`
	LessonID    string    `json:"lesson_id"`
	CompletedAt time.Time `json:"completed_at"`
}

type UserModel struct {
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`

	UserName  string `gorm:"column:user_name;type:varchar(100);not null" json:"user_name"`
	UserEmail string `gorm:"column:user_email;type:varchar(255);not null;unique" json:"user_email"`

	UserPassword string  `gorm:"column:user_password;type:text" json:"-"`
	UserGoogleID *string `gorm:"column:user_google_id;type:varchar(100)" json:"-"`

	UserRole string `gorm:"column:user_role;type:varchar(20);default:'user'" json:"user_role"`

	// Forward side of the enrollment invariant: a course id appears here
	// iff this user id appears in the course roster.
	UserEnrolledCourseIDs pq.StringArray `gorm:"column:user_enrolled_course_ids;type:text[]" json:"user_enrolled_course_ids"`

	UserCompletedLessons datatypes.JSONSlice[CompletedLesson] `gorm:"column:user_completed_lessons" json:"user_completed_lessons"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}
