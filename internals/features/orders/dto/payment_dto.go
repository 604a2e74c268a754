package dto

import (
	"errors"

	"github.com/google/uuid"
)

// InitiatePaymentRequest accepts either a single course id or a cart of
// course ids. The array takes precedence when both are present.
type InitiatePaymentRequest struct {
	CourseID      string   `json:"course_id"`
	CourseIDs     []string `json:"course_ids"`
	PaymentMethod string   `json:"payment_method" validate:"required,oneof=esewa khalti cash"`
	CouponCode    string   `json:"coupon_code"`
}

var ErrNoCourseSelected = errors.New("no course selected")

func (r *InitiatePaymentRequest) ResolveCourseIDs() ([]uuid.UUID, error) {
	raw := r.CourseIDs
	if len(raw) == 0 && r.CourseID != "" {
		raw = []string{r.CourseID}
	}
	if len(raw) == 0 {
		return nil, ErrNoCourseSelected
	}

	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, errors.New("invalid course id: " + s)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
