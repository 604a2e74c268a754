package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Discount types
const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

type CouponModel struct {
	CouponID uuid.UUID `gorm:"column:coupon_id;type:uuid;default:gen_random_uuid();primaryKey" json:"coupon_id"`

	// Stored canonical uppercase; lookups normalize first.
	CouponCode string `gorm:"column:coupon_code;type:varchar(50);not null;unique" json:"coupon_code"`

	CouponDiscountType  string  `gorm:"column:coupon_discount_type;type:varchar(20);not null" json:"coupon_discount_type"`
	CouponDiscountValue float64 `gorm:"column:coupon_discount_value;not null;check:coupon_discount_value >= 0" json:"coupon_discount_value"`

	CouponExpiryDate time.Time `gorm:"column:coupon_expiry_date;not null" json:"coupon_expiry_date"`

	CouponUsageLimit int `gorm:"column:coupon_usage_limit;not null;default:0" json:"coupon_usage_limit"`
	CouponUsageCount int `gorm:"column:coupon_usage_count;not null;default:0" json:"coupon_usage_count"`

	CouponMinOrderAmount float64 `gorm:"column:coupon_min_order_amount;not null;default:0" json:"coupon_min_order_amount"`

	CouponIsActive bool `gorm:"column:coupon_is_active;default:true" json:"coupon_is_active"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (CouponModel) TableName() string {
	return "coupons"
}
