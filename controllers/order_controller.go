package controllers

import (
	"errors"
	"strconv"

	"masalacafe/entity"
	"masalacafe/pkg/clientstore"
	"masalacafe/pkg/resp"
	"masalacafe/repository"
	"masalacafe/services"
	"masalacafe/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CheckoutRequest struct {
	Address       string `json:"address"`
	PaymentMethod string `json:"paymentMethod"`
}

type OrderController struct {
	Checkout *services.CheckoutService
	Orders   *repository.OrderRepository
	Profiles *repository.ProfileRepository
	Store    clientstore.Store
}

func NewOrderController(checkout *services.CheckoutService, orders *repository.OrderRepository,
	profiles *repository.ProfileRepository, store clientstore.Store) *OrderController {
	return &OrderController{Checkout: checkout, Orders: orders, Profiles: profiles, Store: store}
}

// POST /checkout
func (ctl *OrderController) PlaceOrder(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	userID := utils.CurrentUserID(c)
	cart := services.NewUserCartService(ctl.Store, userID)

	out, err := ctl.Checkout.PlaceOrder(userID, cart, services.PlaceOrderIn{
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCheckoutInFlight):
			resp.Conflict(c, err.Error())
		case errors.Is(err, services.ErrCartEmpty),
			errors.Is(err, services.ErrAddressRequired),
			errors.Is(err, services.ErrAddressIncomplete),
			errors.Is(err, services.ErrBadPaymentMethod):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	resp.CreatedRedirect(c, "Order placed successfully!", "/orders", out)
}

type orderView struct {
	ID              uint               `json:"id"`
	DeliveryAddress string             `json:"deliveryAddress"`
	Status          string             `json:"status"`
	StatusLabel     string             `json:"statusLabel"`
	TotalAmount     float64            `json:"totalAmount"`
	DeliveryFee     float64            `json:"deliveryFee"`
	PaymentMethod   string             `json:"paymentMethod"`
	CreatedAt       string             `json:"createdAt"`
	Items           []entity.OrderItem `json:"items"`
}

func (ctl *OrderController) view(o *entity.Order, items []entity.OrderItem) orderView {
	if items == nil {
		items = []entity.OrderItem{}
	}
	return orderView{
		ID:              o.ID,
		DeliveryAddress: o.DeliveryAddress,
		Status:          o.Status,
		StatusLabel:     entity.OrderStatusLabel(o.Status),
		TotalAmount:     o.TotalAmount,
		DeliveryFee:     o.DeliveryFee,
		PaymentMethod:   o.PaymentMethod,
		CreatedAt:       o.CreatedAt.Format("2006-01-02 15:04:05"),
		Items:           items,
	}
}

// GET /orders — ประวัติของ user ใหม่สุดก่อน
func (ctl *OrderController) ListMine(c *gin.Context) {
	orders, err := ctl.Orders.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	views := make([]orderView, 0, len(orders))
	for i := range orders {
		items, err := ctl.Orders.GetItems(orders[i].ID)
		if err != nil {
			items = nil
		}
		views = append(views, ctl.view(&orders[i], items))
	}
	resp.OK(c, views)
}

// GET /orders/:id — ดูได้เฉพาะใบของตัวเอง
func (ctl *OrderController) GetMine(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	order, err := ctl.Orders.GetForUser(utils.CurrentUserID(c), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	items, err := ctl.Orders.GetItems(order.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, ctl.view(order, items))
}

// GET /checkout/prefill — address ที่เคยบันทึกไว้ใน profile
func (ctl *OrderController) CheckoutPrefill(c *gin.Context) {
	address, err := ctl.Profiles.SavedAddress(utils.CurrentUserID(c))
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"address": address})
}
