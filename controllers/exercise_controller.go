package controllers

import (
	"net/http"
	"time"

	"neocal-backend/services"

	"github.com/gin-gonic/gin"
)

type ExerciseController struct {
	exercise *services.ExerciseService
}

func NewExerciseController(exercise *services.ExerciseService) *ExerciseController {
	return &ExerciseController{exercise: exercise}
}

func (ec *ExerciseController) Create(c *gin.Context) {
	var req struct {
		Name            string     `json:"name" binding:"required"`
		DurationMinutes int        `json:"duration_minutes" binding:"required"`
		CaloriesBurned  int        `json:"calories_burned"`
		Timestamp       *time.Time `json:"timestamp"`
		Date            string     `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := ec.exercise.Create(currentUserID(c), req.Name, req.DurationMinutes, req.CaloriesBurned, req.Timestamp, req.Date)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, log)
}

func (ec *ExerciseController) List(c *gin.Context) {
	logs, err := ec.exercise.ListForDate(currentUserID(c), c.Query("date"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (ec *ExerciseController) Delete(c *gin.Context) {
	if err := ec.exercise.Delete(currentUserID(c), c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
