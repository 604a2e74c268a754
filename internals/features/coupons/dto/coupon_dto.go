package dto

import "time"

type CreateCouponRequest struct {
	Code           string    `json:"code" validate:"required,min=3,max=50"`
	DiscountType   string    `json:"discount_type" validate:"required,oneof=percentage fixed"`
	DiscountValue  float64   `json:"discount_value" validate:"required,gt=0"`
	ExpiryDate     time.Time `json:"expiry_date" validate:"required"`
	UsageLimit     int       `json:"usage_limit" validate:"required,gt=0"`
	MinOrderAmount float64   `json:"min_order_amount" validate:"gte=0"`
	IsActive       *bool     `json:"is_active"`
}

type UpdateCouponRequest struct {
	DiscountType   *string    `json:"discount_type" validate:"omitempty,oneof=percentage fixed"`
	DiscountValue  *float64   `json:"discount_value" validate:"omitempty,gt=0"`
	ExpiryDate     *time.Time `json:"expiry_date"`
	UsageLimit     *int       `json:"usage_limit" validate:"omitempty,gt=0"`
	MinOrderAmount *float64   `json:"min_order_amount" validate:"omitempty,gte=0"`
	IsActive       *bool      `json:"is_active"`
}

// ValidateCouponRequest previews a discount without consuming usage.
type ValidateCouponRequest struct {
	Code   string  `json:"code" validate:"required"`
	Amount float64 `json:"amount" validate:"gte=0"`
}
