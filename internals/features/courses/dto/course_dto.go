package dto

type CreateCourseRequest struct {
	Title        string  `json:"title" validate:"required,min=3,max=200"`
	Description  string  `json:"description"`
	Type         string  `json:"type" validate:"required,oneof=video live"`
	Price        float64 `json:"price" validate:"gte=0"`
	ThumbnailURL string  `json:"thumbnail_url" validate:"omitempty,url"`
	Instructor   string  `json:"instructor"`
	IsPublished  *bool   `json:"is_published"`
}

type UpdateCourseRequest struct {
	Title        *string  `json:"title" validate:"omitempty,min=3,max=200"`
	Description  *string  `json:"description"`
	Type         *string  `json:"type" validate:"omitempty,oneof=video live"`
	Price        *float64 `json:"price" validate:"omitempty,gte=0"`
	ThumbnailURL *string  `json:"thumbnail_url" validate:"omitempty,url"`
	Instructor   *string  `json:"instructor"`
	IsPublished  *bool    `json:"is_published"`
}
