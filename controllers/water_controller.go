package controllers

import (
	"net/http"
	"time"

	"neocal-backend/services"

	"github.com/gin-gonic/gin"
)

type WaterController struct {
	water *services.WaterService
}

func NewWaterController(water *services.WaterService) *WaterController {
	return &WaterController{water: water}
}

func (wc *WaterController) Create(c *gin.Context) {
	var req struct {
		AmountML  int        `json:"amount_ml" binding:"required"`
		Timestamp *time.Time `json:"timestamp"`
		Date      string     `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := wc.water.Create(currentUserID(c), req.AmountML, req.Timestamp, req.Date)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, log)
}

func (wc *WaterController) List(c *gin.Context) {
	logs, err := wc.water.ListForDate(currentUserID(c), c.Query("date"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (wc *WaterController) Delete(c *gin.Context) {
	if err := wc.water.Delete(currentUserID(c), c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
