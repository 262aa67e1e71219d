package controllers

import (
	"errors"
	"strconv"

	"masalacafe/entity"
	"masalacafe/pkg/resp"
	"masalacafe/services"
	"masalacafe/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AdminController struct {
	Admin *services.AdminService
}

func NewAdminController(admin *services.AdminService) *AdminController {
	return &AdminController{Admin: admin}
}

// GET /admin/orders
func (ctl *AdminController) ListOrders(c *gin.Context) {
	orders, err := ctl.Admin.ListOrders()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// PATCH /admin/orders/:id/status
func (ctl *AdminController) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Admin.UpdateOrderStatus(uint(id), req.Status); err != nil {
		switch {
		case errors.Is(err, services.ErrBadOrderStatus):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "order not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OKMessage(c, "Order status updated to "+entity.OrderStatusLabel(req.Status), nil)
}

// GET /admin/pending — คำขอ admin ที่รออนุมัติ
func (ctl *AdminController) ListPendingAdmins(c *gin.Context) {
	admins, err := ctl.Admin.PendingAdmins()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, admins)
}

// PATCH /admin/pending/:id/approve
func (ctl *AdminController) ApproveAdmin(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid admin id")
		return
	}

	if err := ctl.Admin.ApproveAdmin(uint(id), utils.CurrentUserID(c)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "admin not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OKMessage(c, "Admin approved successfully", nil)
}
