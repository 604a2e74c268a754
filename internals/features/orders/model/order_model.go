package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OrderItem is one priced line captured at checkout time. The captured
// price, not a live recomputation, is what gets charged and reconciled.
type OrderItem struct {
	CourseID   uuid.UUID `json:"course_id"`
	CourseType string    `json:"course_type"`
	Title      string    `json:"title"`
	Price      float64   `json:"price"`
}

type OrderModel struct {
	OrderID uuid.UUID `gorm:"column:order_id;type:uuid;default:gen_random_uuid();primaryKey" json:"order_id"`

	OrderUserID uuid.UUID `gorm:"column:order_user_id;type:uuid;not null;index" json:"order_user_id"`

	OrderItems datatypes.JSONSlice[OrderItem] `gorm:"column:order_items" json:"order_items"`

	// Single course: its title. Multiple: "N Masterclasses".
	OrderTitle string `gorm:"column:order_title;type:varchar(255)" json:"order_title"`

	OrderOriginalAmount float64 `gorm:"column:order_original_amount;not null" json:"order_original_amount"`
	OrderDiscountAmount float64 `gorm:"column:order_discount_amount;not null;default:0" json:"order_discount_amount"`
	OrderAmount         float64 `gorm:"column:order_amount;not null" json:"order_amount"`

	OrderCouponCode *string `gorm:"column:order_coupon_code;type:varchar(50)" json:"order_coupon_code,omitempty"`

	OrderPaymentMethod string `gorm:"column:order_payment_method;type:varchar(20);not null" json:"order_payment_method"`

	// pending -> completed | failed; only the callback handler of the
	// provider that created the order moves it. Orders are never deleted.
	OrderStatus string `gorm:"column:order_status;type:varchar(20);not null;default:'pending'" json:"order_status"`

	// Correlation key handed to the provider at initiation; overwritten
	// with the provider's final transaction reference on completion.
	OrderTransactionID string `gorm:"column:order_transaction_id;type:varchar(100);not null;unique" json:"order_transaction_id"`

	// Raw provider callback payload, stored opaque.
	OrderPaymentDetails datatypes.JSON `gorm:"column:order_payment_details" json:"order_payment_details,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (OrderModel) TableName() string {
	return "orders"
}
