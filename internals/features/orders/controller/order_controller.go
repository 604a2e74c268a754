package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sikshyalaya_backend/internals/features/orders/model"
	helper "sikshyalaya_backend/internals/helpers"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

// 🟢 GET MY ORDERS: purchase history for the signed-in user.
func (ctrl *OrderController) GetMyOrders(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var orders []model.OrderModel
	if err := ctrl.DB.
		Where("order_user_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch orders")
	}
	return helper.Success(c, "Orders fetched", orders)
}

// 🟢 GET ALL ORDERS (admin): newest first, optional status filter.
func (ctrl *OrderController) GetAllOrders(c *fiber.Ctx) error {
	q := ctrl.DB.Order("created_at desc")
	if status := c.Query("status"); status != "" {
		q = q.Where("order_status = ?", status)
	}

	var orders []model.OrderModel
	if err := q.Find(&orders).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch orders")
	}
	return helper.Success(c, "Orders fetched", orders)
}
