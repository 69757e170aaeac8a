package controllers

import (
	"net/http"

	"neocal-backend/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	auth *services.AuthService
}

func NewUserController(auth *services.AuthService) *UserController {
	return &UserController{auth: auth}
}

func (uc *UserController) GetProfile(c *gin.Context) {
	user, err := uc.auth.GetProfile(currentUserID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user_id":              user.UserID,
		"daily_calorie_target": user.DailyCalorieTarget,
		"timezone":             user.Timezone,
	})
}

func (uc *UserController) UpdateProfile(c *gin.Context) {
	var req struct {
		DailyCalorieTarget *int    `json:"daily_calorie_target"`
		Timezone           *string `json:"timezone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := uc.auth.UpdateProfile(currentUserID(c), req.DailyCalorieTarget, req.Timezone)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user_id":              user.UserID,
		"daily_calorie_target": user.DailyCalorieTarget,
		"timezone":             user.Timezone,
	})
}
