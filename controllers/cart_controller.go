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

type AddCartItemRequest struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
}

type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type CartController struct {
	Store clientstore.Store
	Menu  *repository.MenuRepository
}

func NewCartController(store clientstore.Store, menu *repository.MenuRepository) *CartController {
	return &CartController{Store: store, Menu: menu}
}

func (ctl *CartController) cart(c *gin.Context) *services.CartService {
	return services.NewUserCartService(ctl.Store, utils.CurrentUserID(c))
}

func (ctl *CartController) snapshot(c *gin.Context, cart *services.CartService) {
	lines, err := cart.Lines()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if lines == nil {
		lines = []entity.CartLine{}
	}
	totalItems := 0
	var subtotal float64
	for _, l := range lines {
		totalItems += l.Quantity
		subtotal += l.Price * float64(l.Quantity)
	}
	deliveryFee := 0.0
	if subtotal > 0 {
		deliveryFee = 2.99
	}
	resp.OK(c, gin.H{
		"lines":       lines,
		"totalItems":  totalItems,
		"subtotal":    subtotal,
		"deliveryFee": deliveryFee,
		"total":       subtotal + deliveryFee,
	})
}

// GET /cart
func (ctl *CartController) Get(c *gin.Context) {
	ctl.snapshot(c, ctl.cart(c))
}

// POST /cart/items — snapshot ราคา ณ ตอน add
func (ctl *CartController) AddItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := ctl.Menu.FindItem(req.MenuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	if !item.IsAvailable {
		resp.BadRequest(c, "This item is currently unavailable")
		return
	}

	cart := ctl.cart(c)
	if err := cart.Add(entity.CartLine{
		ID:    item.ID,
		Name:  item.Name,
		Price: item.Price,
		Image: item.ImageURL,
	}); err != nil {
		resp.ServerError(c, err)
		return
	}
	ctl.snapshot(c, cart)
}

// PATCH /cart/items/:id
func (ctl *CartController) SetQuantity(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid cart item id")
		return
	}
	var req SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cart := ctl.cart(c)
	if err := cart.SetQuantity(uint(id), req.Quantity); err != nil {
		resp.ServerError(c, err)
		return
	}
	ctl.snapshot(c, cart)
}

// DELETE /cart/items/:id
func (ctl *CartController) RemoveItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid cart item id")
		return
	}
	cart := ctl.cart(c)
	if err := cart.Remove(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OKMessage(c, "Item removed from cart", nil)
}

// DELETE /cart
func (ctl *CartController) Clear(c *gin.Context) {
	if err := ctl.cart(c).Clear(); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OKMessage(c, "Cart cleared", nil)
}
