package service

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"sikshyalaya_backend/internals/features/coupons/model"
)

var (
	ErrCouponNotFound      = errors.New("coupon not found")
	ErrCouponExpired       = errors.New("coupon has expired")
	ErrCouponUsageExceeded = errors.New("coupon usage limit reached")
)

// BelowMinimumError carries the minimum order amount in its message.
type BelowMinimumError struct {
	Minimum float64
}

func (e *BelowMinimumError) Error() string {
	return fmt.Sprintf("minimum order amount of %.2f required to use this coupon", e.Minimum)
}

// Evaluation is the outcome of applying a coupon to a candidate amount.
type Evaluation struct {
	Valid          bool    `json:"valid"`
	DiscountAmount float64 `json:"discount_amount"`
	FinalAmount    float64 `json:"final_amount"`
}

// NormalizeCode returns the canonical uppercase form used for lookup.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// endOfDay widens a date to 23:59:59.999 so a coupon stays valid through
// the whole of its expiry date.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// Check evaluates a coupon against a candidate amount without touching the
// database. Order of checks: expiry, usage limit, minimum order.
func Check(cp *model.CouponModel, amount float64, now time.Time) (*Evaluation, error) {
	if now.After(endOfDay(cp.CouponExpiryDate)) {
		return nil, ErrCouponExpired
	}
	if cp.CouponUsageCount >= cp.CouponUsageLimit {
		return nil, ErrCouponUsageExceeded
	}
	if amount < cp.CouponMinOrderAmount {
		return nil, &BelowMinimumError{Minimum: cp.CouponMinOrderAmount}
	}

	var discount float64
	switch cp.CouponDiscountType {
	case model.DiscountTypePercentage:
		discount = amount * cp.CouponDiscountValue / 100
	case model.DiscountTypeFixed:
		discount = cp.CouponDiscountValue
	default:
		return nil, ErrCouponNotFound
	}

	final := amount - discount
	if final < 0 {
		discount = amount
		final = 0
	}

	return &Evaluation{Valid: true, DiscountAmount: discount, FinalAmount: final}, nil
}

type CouponService struct {
	DB *gorm.DB
}

func NewCouponService(db *gorm.DB) *CouponService {
	return &CouponService{DB: db}
}

func (s *CouponService) lookup(code string) (*model.CouponModel, error) {
	var cp model.CouponModel
	err := s.DB.
		Where("coupon_code = ? AND coupon_is_active = ?", NormalizeCode(code), true).
		First(&cp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}
	return &cp, nil
}

// Preview evaluates a coupon for UI display. Never mutates usage, so an
// abandoned checkout does not burn a usage slot.
func (s *CouponService) Preview(code string, amount float64) (*Evaluation, error) {
	cp, err := s.lookup(code)
	if err != nil {
		return nil, err
	}
	return Check(cp, amount, time.Now())
}

// Redeem evaluates a coupon at checkout initiation and consumes one usage
// slot on success. The slot is consumed even if payment later fails; that
// is the agreed policy, not an accident. The read-then-write increment has
// no compare-and-swap guard, so two simultaneous redemptions near the
// limit can both pass the usage check.
func (s *CouponService) Redeem(code string, amount float64) (*Evaluation, error) {
	cp, err := s.lookup(code)
	if err != nil {
		return nil, err
	}
	ev, err := Check(cp, amount, time.Now())
	if err != nil {
		return nil, err
	}

	cp.CouponUsageCount++
	if err := s.DB.Save(cp).Error; err != nil {
		log.Printf("[ERROR] failed to persist coupon usage for %s: %v", cp.CouponCode, err)
		return nil, err
	}

	return ev, nil
}
