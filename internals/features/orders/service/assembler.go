package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sikshyalaya_backend/internals/constants"
	couponService "sikshyalaya_backend/internals/features/coupons/service"
	courseModel "sikshyalaya_backend/internals/features/courses/model"
	"sikshyalaya_backend/internals/features/orders/model"
)

var ErrNoCoursesFound = errors.New("no courses found")

type OrderService struct {
	DB      *gorm.DB
	Coupons *couponService.CouponService
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{
		DB:      db,
		Coupons: couponService.NewCouponService(db),
	}
}

// BuildItems captures priced line items from resolved courses and returns
// them with the pre-discount total.
func BuildItems(courses []courseModel.CourseModel) ([]model.OrderItem, float64) {
	items := make([]model.OrderItem, 0, len(courses))
	var total float64
	for _, course := range courses {
		items = append(items, model.OrderItem{
			CourseID:   course.CourseID,
			CourseType: course.CourseType,
			Title:      course.CourseTitle,
			Price:      course.CoursePrice,
		})
		total += course.CoursePrice
	}
	return items, total
}

// AggregateTitle names the order: the course title for a single item,
// "N Masterclasses" for a cart.
func AggregateTitle(items []model.OrderItem) string {
	if len(items) == 1 {
		return items[0].Title
	}
	return fmt.Sprintf("%d Masterclasses", len(items))
}

// NewTransactionID builds the provider correlation key. Unique per order
// attempt; callers must not reuse one.
func NewTransactionID(now time.Time, userID uuid.UUID) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), userID)
}

// CreateOrder resolves the courses, applies an optional coupon and persists
// a pending order. A failing coupon never blocks the purchase: the order
// proceeds at full price and the failure is only logged.
func (s *OrderService) CreateOrder(userID uuid.UUID, courseIDs []uuid.UUID, paymentMethod, couponCode string) (*model.OrderModel, error) {
	var courses []courseModel.CourseModel
	if err := s.DB.
		Where("course_id IN ? AND course_is_published = ?", courseIDs, true).
		Find(&courses).Error; err != nil {
		return nil, err
	}
	if len(courses) == 0 {
		return nil, ErrNoCoursesFound
	}

	items, originalAmount := BuildItems(courses)

	var (
		discountAmount float64
		finalAmount    = originalAmount
		appliedCoupon  *string
	)
	if couponCode != "" {
		// Checkout-time evaluation: consumes a usage slot on success, even
		// if payment later fails.
		ev, err := s.Coupons.Redeem(couponCode, originalAmount)
		if err != nil {
			log.Printf("[WARN] coupon %q ignored at checkout: %v", couponCode, err)
		} else {
			discountAmount = ev.DiscountAmount
			finalAmount = ev.FinalAmount
			code := couponService.NormalizeCode(couponCode)
			appliedCoupon = &code
		}
	}

	order := model.OrderModel{
		OrderUserID:         userID,
		OrderItems:          items,
		OrderTitle:          AggregateTitle(items),
		OrderOriginalAmount: originalAmount,
		OrderDiscountAmount: discountAmount,
		OrderAmount:         finalAmount,
		OrderCouponCode:     appliedCoupon,
		OrderPaymentMethod:  paymentMethod,
		OrderStatus:         constants.OrderStatusPending,
		OrderTransactionID:  NewTransactionID(time.Now(), userID),
	}

	if err := s.DB.Create(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}
