package controllers

import (
	"errors"
	"strconv"

	"masalacafe/pkg/resp"
	"masalacafe/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuController struct {
	Menu *repository.MenuRepository
}

func NewMenuController(menu *repository.MenuRepository) *MenuController {
	return &MenuController{Menu: menu}
}

// GET /categories
func (ctl *MenuController) ListCategories(c *gin.Context) {
	cats, err := ctl.Menu.Categories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cats)
}

// GET /menu?category=cafe (slug หรือ id ก็ได้)
func (ctl *MenuController) ListItems(c *gin.Context) {
	items, err := ctl.Menu.List(c.Query("category"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /menu/popular
func (ctl *MenuController) ListPopular(c *gin.Context) {
	items, err := ctl.Menu.Popular()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /menu/:id
func (ctl *MenuController) GetItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid menu item id")
		return
	}
	item, err := ctl.Menu.FindItem(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}
