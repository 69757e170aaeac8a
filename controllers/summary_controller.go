package controllers

import (
	"net/http"

	"neocal-backend/services"

	"github.com/gin-gonic/gin"
)

type SummaryController struct {
	summary *services.SummaryService
}

func NewSummaryController(summary *services.SummaryService) *SummaryController {
	return &SummaryController{summary: summary}
}

func (sc *SummaryController) GetDaySummary(c *gin.Context) {
	summary, err := sc.summary.GetDailySummary(currentUserID(c), c.Query("date"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
