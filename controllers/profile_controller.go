package controllers

import (
	"errors"

	"masalacafe/pkg/resp"
	"masalacafe/repository"
	"masalacafe/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpdateProfileRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
}

type ProfileController struct {
	Profiles *repository.ProfileRepository
}

func NewProfileController(profiles *repository.ProfileRepository) *ProfileController {
	return &ProfileController{Profiles: profiles}
}

// GET /profile
func (ctl *ProfileController) Get(c *gin.Context) {
	profile, err := ctl.Profiles.FindByID(utils.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "profile not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, profile)
}

// PATCH /profile — partial update เฉพาะ field ที่ส่งมา
func (ctl *ProfileController) Update(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	patch := map[string]any{}
	if req.FirstName != nil {
		patch["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		patch["last_name"] = *req.LastName
	}
	if req.Phone != nil {
		patch["phone"] = *req.Phone
	}
	if req.Address != nil {
		patch["address"] = *req.Address
	}
	if len(patch) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	userID := utils.CurrentUserID(c)
	if err := ctl.Profiles.Update(userID, patch); err != nil {
		resp.ServerError(c, err)
		return
	}
	profile, err := ctl.Profiles.FindByID(userID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OKMessage(c, "Profile updated", profile)
}
