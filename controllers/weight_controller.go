package controllers

import (
	"net/http"
	"time"

	"neocal-backend/services"

	"github.com/gin-gonic/gin"
)

type WeightController struct {
	weight *services.WeightService
}

func NewWeightController(weight *services.WeightService) *WeightController {
	return &WeightController{weight: weight}
}

func (wc *WeightController) Create(c *gin.Context) {
	var req struct {
		WeightKG  float64    `json:"weight_kg" binding:"required"`
		Timestamp *time.Time `json:"timestamp"`
		Date      string     `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := wc.weight.Create(currentUserID(c), req.WeightKG, req.Timestamp, req.Date)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, log)
}

func (wc *WeightController) List(c *gin.Context) {
	logs, err := wc.weight.List(currentUserID(c), c.Query("start"), c.Query("end"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (wc *WeightController) Delete(c *gin.Context) {
	if err := wc.weight.Delete(currentUserID(c), c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
