package controllers

import (
	"net/http"

	"neocal-backend/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// CreateSession bootstraps an anonymous user and hands back its token.
func (ac *AuthController) CreateSession(c *gin.Context) {
	user, token, err := ac.auth.CreateAnonymousSession()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"user_id":              user.UserID,
		"token":                token,
		"daily_calorie_target": user.DailyCalorieTarget,
		"timezone":             user.Timezone,
	})
}
