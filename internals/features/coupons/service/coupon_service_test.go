package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"sikshyalaya_backend/internals/features/coupons/model"
)

func testCoupon() *model.CouponModel {
	return &model.CouponModel{
		CouponCode:           "SAVE10",
		CouponDiscountType:   model.DiscountTypePercentage,
		CouponDiscountValue:  10,
		CouponExpiryDate:     time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		CouponUsageLimit:     5,
		CouponUsageCount:     0,
		CouponMinOrderAmount: 1000,
		CouponIsActive:       true,
	}
}

func TestCheck_PercentageDiscount(t *testing.T) {
	cp := testCoupon()
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	ev, err := Check(cp, 2000, now)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !ev.Valid {
		t.Fatal("Expected evaluation to be valid")
	}
	if ev.DiscountAmount != 200 {
		t.Errorf("Expected discount 200, got %.2f", ev.DiscountAmount)
	}
	if ev.FinalAmount != 1800 {
		t.Errorf("Expected final amount 1800, got %.2f", ev.FinalAmount)
	}
}

func TestCheck_FixedDiscountClampsToZero(t *testing.T) {
	cp := testCoupon()
	cp.CouponDiscountType = model.DiscountTypeFixed
	cp.CouponDiscountValue = 500
	cp.CouponMinOrderAmount = 0
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	ev, err := Check(cp, 300, now)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if ev.DiscountAmount != 300 {
		t.Errorf("Expected discount clamped to 300, got %.2f", ev.DiscountAmount)
	}
	if ev.FinalAmount != 0 {
		t.Errorf("Expected final amount 0, got %.2f", ev.FinalAmount)
	}
}

func TestCheck_ExpiryIsWidenedToEndOfDay(t *testing.T) {
	cp := testCoupon()

	// Exactly 23:59:59.999 of the expiry date is still valid.
	lastMoment := time.Date(2026, 12, 31, 23, 59, 59, int(999*time.Millisecond), time.UTC)
	if _, err := Check(cp, 2000, lastMoment); err != nil {
		t.Fatalf("Expected coupon valid at last moment of expiry day, got: %v", err)
	}

	// One millisecond later it is expired.
	if _, err := Check(cp, 2000, lastMoment.Add(time.Millisecond)); !errors.Is(err, ErrCouponExpired) {
		t.Fatalf("Expected ErrCouponExpired just after end of day, got: %v", err)
	}
}

func TestCheck_UsageLimitReached(t *testing.T) {
	cp := testCoupon()
	cp.CouponUsageCount = cp.CouponUsageLimit
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	// Not expired yet, but exhausted.
	if _, err := Check(cp, 2000, now); !errors.Is(err, ErrCouponUsageExceeded) {
		t.Fatalf("Expected ErrCouponUsageExceeded, got: %v", err)
	}
}

func TestCheck_BelowMinimumCarriesMinimum(t *testing.T) {
	cp := testCoupon()
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	_, err := Check(cp, 500, now)
	var bm *BelowMinimumError
	if !errors.As(err, &bm) {
		t.Fatalf("Expected BelowMinimumError, got: %v", err)
	}
	if bm.Minimum != 1000 {
		t.Errorf("Expected minimum 1000 in error, got %.2f", bm.Minimum)
	}
	if !strings.Contains(bm.Error(), "1000") {
		t.Errorf("Expected minimum in message, got %q", bm.Error())
	}
}

func TestCheck_ZeroAmountBelowMinimum(t *testing.T) {
	cp := testCoupon()
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	var bm *BelowMinimumError
	if _, err := Check(cp, 0, now); !errors.As(err, &bm) {
		t.Fatalf("Expected BelowMinimumError for zero amount, got: %v", err)
	}
}

func TestNormalizeCode(t *testing.T) {
	if got := NormalizeCode("  save10 "); got != "SAVE10" {
		t.Errorf("Expected SAVE10, got %q", got)
	}
}
