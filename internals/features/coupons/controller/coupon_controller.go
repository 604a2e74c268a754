package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sikshyalaya_backend/internals/features/coupons/dto"
	"sikshyalaya_backend/internals/features/coupons/model"
	"sikshyalaya_backend/internals/features/coupons/service"
	helper "sikshyalaya_backend/internals/helpers"
)

type CouponController struct {
	DB       *gorm.DB
	Service  *service.CouponService
	Validate *validator.Validate
}

func NewCouponController(db *gorm.DB) *CouponController {
	return &CouponController{
		DB:       db,
		Service:  service.NewCouponService(db),
		Validate: validator.New(),
	}
}

// 🟢 VALIDATE: discount preview for the checkout UI. Never consumes usage.
func (ctrl *CouponController) ValidateCoupon(c *fiber.Ctx) error {
	var body dto.ValidateCouponRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	ev, err := ctrl.Service.Preview(body.Code, body.Amount)
	if err != nil {
		return couponErrorResponse(c, err)
	}
	return helper.Success(c, "Coupon applied", ev)
}

// Maps evaluator failures to a 400 with a human-readable message per kind.
func couponErrorResponse(c *fiber.Ctx, err error) error {
	var bm *service.BelowMinimumError
	switch {
	case errors.Is(err, service.ErrCouponNotFound):
		return helper.Error(c, fiber.StatusBadRequest, "Invalid coupon code")
	case errors.Is(err, service.ErrCouponExpired):
		return helper.Error(c, fiber.StatusBadRequest, "This coupon has expired")
	case errors.Is(err, service.ErrCouponUsageExceeded):
		return helper.Error(c, fiber.StatusBadRequest, "This coupon has reached its usage limit")
	case errors.As(err, &bm):
		return helper.Error(c, fiber.StatusBadRequest, bm.Error())
	default:
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to validate coupon")
	}
}

// 🟢 CREATE (admin)
func (ctrl *CouponController) CreateCoupon(c *fiber.Ctx) error {
	var body dto.CreateCouponRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	isActive := true
	if body.IsActive != nil {
		isActive = *body.IsActive
	}

	coupon := model.CouponModel{
		CouponCode:           service.NormalizeCode(body.Code),
		CouponDiscountType:   body.DiscountType,
		CouponDiscountValue:  body.DiscountValue,
		CouponExpiryDate:     body.ExpiryDate,
		CouponUsageLimit:     body.UsageLimit,
		CouponMinOrderAmount: body.MinOrderAmount,
		CouponIsActive:       isActive,
	}

	if err := ctrl.DB.Create(&coupon).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create coupon")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Coupon created", coupon)
}

// 🟢 GET ALL (admin)
func (ctrl *CouponController) GetAllCoupons(c *fiber.Ctx) error {
	var coupons []model.CouponModel
	if err := ctrl.DB.Order("created_at desc").Find(&coupons).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch coupons")
	}
	return helper.Success(c, "Coupons fetched", coupons)
}

// 🟢 UPDATE (admin)
func (ctrl *CouponController) UpdateCoupon(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid coupon id")
	}

	var body dto.UpdateCouponRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var coupon model.CouponModel
	if err := ctrl.DB.First(&coupon, "coupon_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Coupon not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch coupon")
	}

	if body.DiscountType != nil {
		coupon.CouponDiscountType = *body.DiscountType
	}
	if body.DiscountValue != nil {
		coupon.CouponDiscountValue = *body.DiscountValue
	}
	if body.ExpiryDate != nil {
		coupon.CouponExpiryDate = *body.ExpiryDate
	}
	if body.UsageLimit != nil {
		coupon.CouponUsageLimit = *body.UsageLimit
	}
	if body.MinOrderAmount != nil {
		coupon.CouponMinOrderAmount = *body.MinOrderAmount
	}
	if body.IsActive != nil {
		coupon.CouponIsActive = *body.IsActive
	}

	if err := ctrl.DB.Save(&coupon).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update coupon")
	}
	return helper.Success(c, "Coupon updated", coupon)
}

// 🟢 DELETE (admin, soft delete)
func (ctrl *CouponController) DeleteCoupon(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid coupon id")
	}
	if err := ctrl.DB.Delete(&model.CouponModel{}, "coupon_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete coupon")
	}
	return helper.Success(c, "Coupon deleted", nil)
}
