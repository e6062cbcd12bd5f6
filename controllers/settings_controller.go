package controllers

import (
	"github.com/gin-gonic/gin"

	"restaurant-backend/pkg/resp"
	"restaurant-backend/services"
)

type SettingsController struct{ Settings *services.SettingsService }

func NewSettingsController(settings *services.SettingsService) *SettingsController {
	return &SettingsController{Settings: settings}
}

// GET /manager/settings
func (sc *SettingsController) Get(c *gin.Context) {
	s, err := sc.Settings.Get()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, s)
}

// PATCH /manager/settings
func (sc *SettingsController) Update(c *gin.Context) {
	var req services.UpdateSettingsIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	s, err := sc.Settings.Update(req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, s)
}
